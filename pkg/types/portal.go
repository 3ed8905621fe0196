package types

import "time"

// AppointmentStatus represents appointment status values
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusPending   AppointmentStatus = "pending"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether the status is part of the closed enumeration
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Cancellable reports whether an appointment in this status may still be cancelled
func (s AppointmentStatus) Cancellable() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusPending:
		return true
	}
	return false
}

// Appointment represents a clinic appointment
type Appointment struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Date      string            `json:"date"` // YYYY-MM-DD
	Time      string            `json:"time"` // HH:MM
	Doctor    string            `json:"doctor"`
	Status    AppointmentStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// AppointmentDraft represents the payload of a request-appointment submission
type AppointmentDraft struct {
	Type   string `json:"type"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Doctor string `json:"doctor,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// MedicalRecord represents a read-only clinical record entry
type MedicalRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// PhotoCategory represents the progress-photo partitions
type PhotoCategory string

const (
	PhotoBefore   PhotoCategory = "before"
	PhotoDuring   PhotoCategory = "during"
	PhotoAfter    PhotoCategory = "after"
	PhotoProgress PhotoCategory = "progress"
)

// Valid reports whether the category is part of the closed enumeration
func (c PhotoCategory) Valid() bool {
	switch c {
	case PhotoBefore, PhotoDuring, PhotoAfter, PhotoProgress:
		return true
	}
	return false
}

// Photo represents a progress photo entry
type Photo struct {
	ID       string        `json:"id"`
	Category PhotoCategory `json:"category"`
	Date     string        `json:"date"`
	Notes    string        `json:"notes,omitempty"`
}

// ArticleCategory represents the education-library partitions
type ArticleCategory string

const (
	ArticleProcedures ArticleCategory = "procedures"
	ArticleTechnology ArticleCategory = "technology"
	ArticleRecovery   ArticleCategory = "recovery"
	ArticleWellness   ArticleCategory = "wellness"
)

// Valid reports whether the category is part of the closed enumeration
func (c ArticleCategory) Valid() bool {
	switch c {
	case ArticleProcedures, ArticleTechnology, ArticleRecovery, ArticleWellness:
		return true
	}
	return false
}

// Article represents an education-library article
type Article struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Excerpt  string          `json:"excerpt"`
	Category ArticleCategory `json:"category"`
	ReadTime int             `json:"read_time"` // minutes
	Content  string          `json:"content"`
	Date     string          `json:"date"`
}

// MessageSender represents the two chat parties
type MessageSender string

const (
	SenderPatient MessageSender = "patient"
	SenderStaff   MessageSender = "staff"
)

// Valid reports whether the sender is one of the two chat parties
func (s MessageSender) Valid() bool {
	return s == SenderPatient || s == SenderStaff
}

// Message represents a chat message; messages are append-only and ordered by insertion
type Message struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Sender    MessageSender `json:"sender"`
	Timestamp time.Time     `json:"timestamp"`
}

// PatientProfile represents the session's patient profile (immutable in this core)
type PatientProfile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
}

// SessionToken represents the mock token minted when a simulated login resolves
type SessionToken struct {
	Token     string    `json:"token"`
	Role      UserRole  `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
