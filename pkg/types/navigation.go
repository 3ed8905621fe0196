package types

// Screen represents a top-level named view in the portal
type Screen string

const (
	ScreenGetStarted         Screen = "get-started"
	ScreenSignup             Screen = "signup"
	ScreenStaffLogin         Screen = "staff-login"
	ScreenUserSelect         Screen = "user-select"
	ScreenLogin              Screen = "login"
	ScreenDashboard          Screen = "dashboard"
	ScreenAppointmentDetail  Screen = "appointment-detail"
	ScreenRequestAppointment Screen = "request-appointment"
	ScreenPhotoComparison    Screen = "photo-comparison"
	ScreenEducation          Screen = "education"
	ScreenArticleDetail      Screen = "article-detail"
)

// Valid reports whether the screen is part of the navigation graph
func (s Screen) Valid() bool {
	switch s {
	case ScreenGetStarted, ScreenSignup, ScreenStaffLogin, ScreenUserSelect,
		ScreenLogin, ScreenDashboard, ScreenAppointmentDetail,
		ScreenRequestAppointment, ScreenPhotoComparison, ScreenEducation,
		ScreenArticleDetail:
		return true
	}
	return false
}

// Tab represents a dashboard bottom-bar panel
type Tab string

const (
	TabHome         Tab = "home"
	TabAppointments Tab = "appointments"
	TabChat         Tab = "chat"
	TabRecords      Tab = "records"
	TabProfile      Tab = "profile"
)

// Valid reports whether the tab is one of the five dashboard panels
func (t Tab) Valid() bool {
	switch t {
	case TabHome, TabAppointments, TabChat, TabRecords, TabProfile:
		return true
	}
	return false
}

// UserRole represents the portal user roles
type UserRole string

const (
	RoleNone    UserRole = ""
	RolePatient UserRole = "patient"
	RoleStaff   UserRole = "staff"
)

// Valid reports whether the role is an authenticated role
func (r UserRole) Valid() bool {
	return r == RolePatient || r == RoleStaff
}

// AuthState represents the login simulation state
type AuthState string

const (
	AuthIdle     AuthState = "idle"
	AuthPending  AuthState = "pending"
	AuthResolved AuthState = "resolved"
)
