package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nudah/clinic-portal/pkg/interfaces"
	"github.com/nudah/clinic-portal/pkg/logger"
	"github.com/nudah/clinic-portal/pkg/monitoring"
	"github.com/nudah/clinic-portal/pkg/types"
)

// Simulator fakes a login round-trip: submit moves the attempt to
// pending, a fixed-delay timer resolves it, commits the role and lands
// on the dashboard home tab. No credential validation happens here.
type Simulator struct {
	mu        sync.Mutex
	logger    *logger.Logger
	nav       interfaces.Navigator
	scheduler interfaces.Scheduler

	sessionID string
	delay     time.Duration
	tokenTTL  time.Duration
	secret    []byte

	state  types.AuthState
	token  *types.SessionToken
	cancel interfaces.CancelFunc
}

// NewSimulator creates an auth simulator in the idle state
func NewSimulator(nav interfaces.Navigator, scheduler interfaces.Scheduler, sessionID string, delay, tokenTTL time.Duration, secret string, log *logger.Logger) *Simulator {
	return &Simulator{
		logger:    log,
		nav:       nav,
		scheduler: scheduler,
		sessionID: sessionID,
		delay:     delay,
		tokenTTL:  tokenTTL,
		secret:    []byte(secret),
		state:     types.AuthIdle,
	}
}

var _ interfaces.AuthSimulator = (*Simulator)(nil)

// State returns the login simulation state
func (s *Simulator) State() types.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the mock session token, nil until a login resolves
func (s *Simulator) Token() *types.SessionToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return nil
	}
	cp := *s.token
	return &cp
}

// SubmitLogin starts the simulated login round-trip. Repeated submits
// while an attempt is pending are no-ops against the same timer.
func (s *Simulator) SubmitLogin(role types.UserRole) error {
	if !role.Valid() {
		s.logger.RefusedOperation("submit_login", types.ErrCodeNoRoleSelected, map[string]interface{}{"role": string(role)})
		monitoring.RecordRefusedOperation(types.ErrCodeNoRoleSelected)
		return types.NewValidationError(types.ErrCodeNoRoleSelected, "a role must be selected before logging in", nil)
	}

	s.mu.Lock()
	if s.state == types.AuthPending {
		s.mu.Unlock()
		s.logger.WithComponent("session").Debug("Login already pending, ignoring resubmit")
		return nil
	}
	s.state = types.AuthPending
	s.cancel = s.scheduler.After(s.delay, func() { s.resolve(role) })
	s.mu.Unlock()

	s.logger.WithSession(s.sessionID).Infof("Login submitted as %s, resolving in %s", role, s.delay)
	return nil
}

// Reset returns the simulator to idle and clears the token. A pending
// login attempt is abandoned along with its timer.
func (s *Simulator) Reset() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.state = types.AuthIdle
	s.token = nil
	s.mu.Unlock()
}

// resolve commits the login: role set, dashboard home tab active, mock
// token minted.
func (s *Simulator) resolve(role types.UserRole) {
	token := s.mintToken(role)

	s.mu.Lock()
	s.state = types.AuthResolved
	s.token = token
	s.cancel = nil
	s.mu.Unlock()

	if err := s.nav.SelectRole(role); err != nil {
		s.logger.WithComponent("session").WithError(err).Error("Failed to commit role")
		return
	}
	if err := s.nav.SelectTab(types.TabHome); err != nil {
		s.logger.WithComponent("session").WithError(err).Error("Failed to land on dashboard")
		return
	}

	monitoring.RecordLogin(string(role))
	s.logger.WithSession(s.sessionID).Infof("Login resolved as %s", role)
}

// mintToken issues the signed mock session token. Signing failures are
// non-fatal; the session simply carries no token.
func (s *Simulator) mintToken(role types.UserRole) *types.SessionToken {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)

	claims := jwt.MapClaims{
		"sid":  s.sessionID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.WithComponent("session").WithError(err).Error("Failed to sign session token")
		return nil
	}

	return &types.SessionToken{
		Token:     signed,
		Role:      role,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}
}
