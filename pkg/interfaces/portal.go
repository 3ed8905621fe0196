package interfaces

import (
	"github.com/nudah/clinic-portal/pkg/types"
)

// Store defines the interface for the in-memory domain store.
// All list accessors return copies in insertion order.
type Store interface {
	// Appointments
	ListAppointments() []*types.Appointment
	GetAppointment(id string) (*types.Appointment, error)
	AddAppointment(draft *types.AppointmentDraft) (*types.Appointment, error)
	CancelAppointment(id string) error

	// Medical records
	ListMedicalRecords() []*types.MedicalRecord

	// Photos; the zero category lists all photos
	ListPhotos(category types.PhotoCategory) []*types.Photo
	CountPhotos(category types.PhotoCategory) int
	AddPhoto(category types.PhotoCategory, date, notes string) (*types.Photo, error)

	// Articles; the zero category lists all articles
	ListArticles(category types.ArticleCategory) []*types.Article
	GetArticle(id string) (*types.Article, error)
	CountArticles(category types.ArticleCategory) int

	// Chat
	ListMessages() []*types.Message
	AppendMessage(text string, sender types.MessageSender) (*types.Message, error)

	// Profile
	Profile() *types.PatientProfile
}

// Navigator defines the interface for the screen-navigation state machine
type Navigator interface {
	// State accessors
	Screen() types.Screen
	ActiveTab() types.Tab
	Role() types.UserRole
	SelectedAppointmentID() string
	SelectedArticleID() string
	PhotoCategory() types.PhotoCategory

	// Transitions
	Navigate(target types.Screen) error
	SelectRole(role types.UserRole) error
	SelectTab(tab types.Tab) error
	OpenAppointmentDetail(id string) error
	OpenArticleDetail(id string) error
	SelectPhotoCategory(category types.PhotoCategory) error
	Back() types.Screen

	// Reset returns navigation to the unauthenticated landing state
	Reset()
}

// AuthSimulator defines the interface for the simulated login round-trip
type AuthSimulator interface {
	State() types.AuthState
	SubmitLogin(role types.UserRole) error
	Token() *types.SessionToken
	Reset()
}

// ChatEngine defines the interface for the two-party chat exchange
type ChatEngine interface {
	SetDraft(text string)
	Draft() string
	Send(text string) error
	PendingReplies() int
}
