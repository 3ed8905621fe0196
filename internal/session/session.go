package session

import (
	"github.com/google/uuid"
	"github.com/nudah/clinic-portal/internal/chat"
	"github.com/nudah/clinic-portal/internal/navigation"
	"github.com/nudah/clinic-portal/internal/store"
	"github.com/nudah/clinic-portal/pkg/clock"
	"github.com/nudah/clinic-portal/pkg/config"
	"github.com/nudah/clinic-portal/pkg/interfaces"
	"github.com/nudah/clinic-portal/pkg/logger"
	"github.com/nudah/clinic-portal/pkg/monitoring"
	"github.com/nudah/clinic-portal/pkg/types"
)

// Session is the explicit context object holding one user's portal
// state: domain store, navigation, auth simulation and chat. There are
// no package-level singletons; a session is created at start and closed
// on process exit.
type Session struct {
	ID string

	Store interfaces.Store
	Nav   interfaces.Navigator
	Auth  interfaces.AuthSimulator
	Chat  interfaces.ChatEngine

	cfg    *config.Config
	logger *logger.Logger
}

// New creates a session on the wall clock
func New(cfg *config.Config, log *logger.Logger) *Session {
	return NewWithScheduler(cfg, clock.Real(), log)
}

// NewWithScheduler creates a session with an injected scheduler; tests
// pass a deterministic fake.
func NewWithScheduler(cfg *config.Config, scheduler interfaces.Scheduler, log *logger.Logger) *Session {
	id := uuid.New().String()

	st := store.New(log)
	if cfg.Store.SeedDemoData {
		st.Seed()
	}

	nav := navigation.New(st, log)
	auth := NewSimulator(nav, scheduler, id, cfg.LoginDelay(), cfg.TokenTTL(), cfg.Session.JWTSecret, log)
	chatEngine := chat.New(st, scheduler, cfg.ReplyDelay(), cfg.Chat.CannedReply, log)

	monitoring.SessionStarted()
	log.WithSession(id).Infof("Session started for %s", cfg.Clinic.Name)

	return &Session{
		ID:     id,
		Store:  st,
		Nav:    nav,
		Auth:   auth,
		Chat:   chatEngine,
		cfg:    cfg,
		logger: log,
	}
}

// RequestAppointment submits an appointment request and lands on the
// dashboard with the appointments tab active.
func (s *Session) RequestAppointment(draft *types.AppointmentDraft) (*types.Appointment, error) {
	apt, err := s.Store.AddAppointment(draft)
	if err != nil {
		return nil, err
	}

	if err := s.Nav.SelectTab(types.TabAppointments); err != nil {
		return nil, err
	}
	return apt, nil
}

// Logout resets navigation and auth to the unauthenticated state. Store
// contents survive a logout/login cycle, and chat replies already in
// flight are still delivered.
func (s *Session) Logout() {
	s.Nav.Reset()
	s.Auth.Reset()
	monitoring.RecordLogout()
	s.logger.WithSession(s.ID).Info("Logged out")
}

// Close ends the session
func (s *Session) Close() {
	monitoring.SessionEnded()
	s.logger.WithSession(s.ID).Info("Session closed")
}
