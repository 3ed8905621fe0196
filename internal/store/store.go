package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nudah/clinic-portal/pkg/interfaces"
	"github.com/nudah/clinic-portal/pkg/logger"
	"github.com/nudah/clinic-portal/pkg/monitoring"
	"github.com/nudah/clinic-portal/pkg/types"
)

// Store implements the in-memory domain store. Collections preserve
// insertion order; accessors return copies so callers cannot mutate
// store state behind the lock.
type Store struct {
	mu     sync.RWMutex
	logger *logger.Logger

	appointments []*types.Appointment
	records      []*types.MedicalRecord
	photos       []*types.Photo
	articles     []*types.Article
	messages     []*types.Message
	profile      *types.PatientProfile
}

// New creates a new empty domain store
func New(log *logger.Logger) *Store {
	return &Store{
		logger:  log,
		profile: &types.PatientProfile{},
	}
}

var _ interfaces.Store = (*Store)(nil)

// ListAppointments returns all appointments in insertion order
func (s *Store) ListAppointments() []*types.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.Appointment, 0, len(s.appointments))
	for _, apt := range s.appointments {
		cp := *apt
		out = append(out, &cp)
	}
	return out
}

// GetAppointment retrieves an appointment by ID
func (s *Store) GetAppointment(id string) (*types.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, apt := range s.appointments {
		if apt.ID == id {
			cp := *apt
			return &cp, nil
		}
	}
	return nil, types.NewNotFoundError(types.ErrCodeUnknownAppointment, "appointment not found: "+id)
}

// AddAppointment appends a new appointment from a request draft. Newly
// requested appointments start pending until confirmed by staff.
func (s *Store) AddAppointment(draft *types.AppointmentDraft) (*types.Appointment, error) {
	if draft == nil {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "appointment draft is required", nil)
	}
	if strings.TrimSpace(draft.Type) == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "appointment type is required", nil)
	}
	if strings.TrimSpace(draft.Date) == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "appointment date is required", nil)
	}
	if strings.TrimSpace(draft.Time) == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "appointment time is required", nil)
	}

	apt := &types.Appointment{
		ID:        uuid.New().String(),
		Type:      strings.TrimSpace(draft.Type),
		Date:      strings.TrimSpace(draft.Date),
		Time:      strings.TrimSpace(draft.Time),
		Doctor:    strings.TrimSpace(draft.Doctor),
		Status:    types.StatusPending,
		Notes:     strings.TrimSpace(draft.Notes),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.appointments = append(s.appointments, apt)
	s.mu.Unlock()

	monitoring.RecordAppointmentRequest()
	s.logger.WithComponent("store").Infof("Appointment %s requested for %s %s", apt.ID, apt.Date, apt.Time)

	cp := *apt
	return &cp, nil
}

// CancelAppointment transitions an appointment to cancelled. Appointments
// already completed or cancelled are left untouched and the refusal is
// reported to the caller.
func (s *Store) CancelAppointment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, apt := range s.appointments {
		if apt.ID != id {
			continue
		}
		if !apt.Status.Cancellable() {
			s.logger.RefusedOperation("cancel_appointment", types.ErrCodeAlreadyFinal, map[string]interface{}{
				"appointment_id": id,
				"status":         string(apt.Status),
			})
			return types.NewStateError(types.ErrCodeAlreadyFinal, "appointment is already "+string(apt.Status))
		}
		apt.Status = types.StatusCancelled
		s.logger.WithComponent("store").Infof("Appointment %s cancelled", id)
		return nil
	}
	return types.NewNotFoundError(types.ErrCodeUnknownAppointment, "appointment not found: "+id)
}

// ListMedicalRecords returns all medical records in insertion order
func (s *Store) ListMedicalRecords() []*types.MedicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.MedicalRecord, 0, len(s.records))
	for _, rec := range s.records {
		cp := *rec
		out = append(out, &cp)
	}
	return out
}

// ListPhotos returns photos filtered by category in insertion order.
// The zero category returns every photo.
func (s *Store) ListPhotos(category types.PhotoCategory) []*types.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.Photo, 0, len(s.photos))
	for _, p := range s.photos {
		if category != "" && p.Category != category {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out
}

// CountPhotos returns the number of photos in a category
func (s *Store) CountPhotos(category types.PhotoCategory) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.photos {
		if category == "" || p.Category == category {
			n++
		}
	}
	return n
}

// AddPhoto appends a new progress photo
func (s *Store) AddPhoto(category types.PhotoCategory, date, notes string) (*types.Photo, error) {
	if !category.Valid() {
		return nil, types.NewValidationError(types.ErrCodeInvalidCategory, "unknown photo category: "+string(category), nil)
	}
	if strings.TrimSpace(date) == "" {
		date = time.Now().Format("2006-01-02")
	}

	photo := &types.Photo{
		ID:       uuid.New().String(),
		Category: category,
		Date:     date,
		Notes:    strings.TrimSpace(notes),
	}

	s.mu.Lock()
	s.photos = append(s.photos, photo)
	s.mu.Unlock()

	s.logger.WithComponent("store").Infof("Photo %s added to category %s", photo.ID, category)

	cp := *photo
	return &cp, nil
}

// ListArticles returns articles filtered by category in insertion order.
// The zero category returns every article.
func (s *Store) ListArticles(category types.ArticleCategory) []*types.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if category != "" && a.Category != category {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out
}

// GetArticle retrieves an article by ID
func (s *Store) GetArticle(id string) (*types.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, types.NewNotFoundError(types.ErrCodeUnknownArticle, "article not found: "+id)
}

// CountArticles returns the number of articles in a category
func (s *Store) CountArticles(category types.ArticleCategory) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, a := range s.articles {
		if category == "" || a.Category == category {
			n++
		}
	}
	return n
}

// ListMessages returns all chat messages in insertion order
func (s *Store) ListMessages() []*types.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.Message, 0, len(s.messages))
	for _, m := range s.messages {
		cp := *m
		out = append(out, &cp)
	}
	return out
}

// AppendMessage appends a chat message. Messages that trim to empty are
// rejected without changing store state.
func (s *Store) AppendMessage(text string, sender types.MessageSender) (*types.Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, types.NewValidationError(types.ErrCodeEmptyMessage, "message text is required", nil)
	}
	if !sender.Valid() {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "unknown message sender: "+string(sender), nil)
	}

	msg := &types.Message{
		ID:        uuid.New().String(),
		Text:      trimmed,
		Sender:    sender,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	monitoring.RecordMessage(string(sender))

	cp := *msg
	return &cp, nil
}

// Profile returns the session's patient profile
func (s *Store) Profile() *types.PatientProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := *s.profile
	return &cp
}
