package navigation

import (
	"sync"

	"github.com/nudah/clinic-portal/pkg/interfaces"
	"github.com/nudah/clinic-portal/pkg/logger"
	"github.com/nudah/clinic-portal/pkg/monitoring"
	"github.com/nudah/clinic-portal/pkg/types"
)

// Controller implements the screen-navigation state machine. It owns
// the active screen, the dashboard tab sub-state, the user role and the
// cross-screen selection context. Selection is a view concern: entities
// themselves never know they are selected.
type Controller struct {
	mu     sync.RWMutex
	logger *logger.Logger
	store  interfaces.Store

	screen    types.Screen
	activeTab types.Tab
	role      types.UserRole

	selectedAppointmentID string
	selectedArticleID     string
	photoCategory         types.PhotoCategory
}

// New creates a navigation controller at the unauthenticated landing screen
func New(store interfaces.Store, log *logger.Logger) *Controller {
	return &Controller{
		logger:        log,
		store:         store,
		screen:        types.ScreenGetStarted,
		activeTab:     types.TabHome,
		role:          types.RoleNone,
		photoCategory: types.PhotoBefore,
	}
}

var _ interfaces.Navigator = (*Controller)(nil)

// Screen returns the active screen
func (c *Controller) Screen() types.Screen {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.screen
}

// ActiveTab returns the dashboard tab sub-state
func (c *Controller) ActiveTab() types.Tab {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activeTab
}

// Role returns the current user role
func (c *Controller) Role() types.UserRole {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.role
}

// SelectedAppointmentID returns the appointment selection context
func (c *Controller) SelectedAppointmentID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selectedAppointmentID
}

// SelectedArticleID returns the article selection context
func (c *Controller) SelectedArticleID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selectedArticleID
}

// PhotoCategory returns the selected photo gallery partition
func (c *Controller) PhotoCategory() types.PhotoCategory {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.photoCategory
}

// Navigate performs an unconditional transition to a known screen.
// It never touches domain data.
func (c *Controller) Navigate(target types.Screen) error {
	if !target.Valid() {
		c.refuse("navigate", types.ErrCodeUnknownScreen, string(target))
		return types.NewValidationError(types.ErrCodeUnknownScreen, "unknown screen: "+string(target), nil)
	}

	c.mu.Lock()
	from := c.screen
	c.screen = target
	c.mu.Unlock()

	c.logger.NavigationEvent(string(from), string(target), "navigate")
	monitoring.RecordNavigation(string(target))
	return nil
}

// SelectRole sets the user role independently of navigation. A role
// must be selected before a login submission is meaningful.
func (c *Controller) SelectRole(role types.UserRole) error {
	if !role.Valid() {
		c.refuse("select_role", types.ErrCodeInvalidRole, string(role))
		return types.NewValidationError(types.ErrCodeInvalidRole, "unknown role: "+string(role), nil)
	}

	c.mu.Lock()
	c.role = role
	c.mu.Unlock()
	return nil
}

// SelectTab activates a dashboard tab. Selecting a tab always returns
// to the dashboard shell; the two writes are one atomic transition.
func (c *Controller) SelectTab(tab types.Tab) error {
	if !tab.Valid() {
		c.refuse("select_tab", types.ErrCodeUnknownTab, string(tab))
		return types.NewValidationError(types.ErrCodeUnknownTab, "unknown tab: "+string(tab), nil)
	}

	c.mu.Lock()
	from := c.screen
	c.activeTab = tab
	c.screen = types.ScreenDashboard
	c.mu.Unlock()

	c.logger.NavigationEvent(string(from), string(types.ScreenDashboard), "select_tab:"+string(tab))
	monitoring.RecordNavigation(string(types.ScreenDashboard))
	return nil
}

// OpenAppointmentDetail records the appointment as selected and
// navigates to its detail screen. Unknown ids leave navigation
// untouched and report the invalid reference.
func (c *Controller) OpenAppointmentDetail(id string) error {
	if _, err := c.store.GetAppointment(id); err != nil {
		c.refuse("open_appointment_detail", types.ErrCodeUnknownAppointment, id)
		return err
	}

	c.mu.Lock()
	from := c.screen
	c.selectedAppointmentID = id
	c.screen = types.ScreenAppointmentDetail
	c.mu.Unlock()

	c.logger.NavigationEvent(string(from), string(types.ScreenAppointmentDetail), "open_appointment")
	monitoring.RecordNavigation(string(types.ScreenAppointmentDetail))
	return nil
}

// OpenArticleDetail records the article as selected and navigates to
// its detail screen. Unknown ids leave navigation untouched.
func (c *Controller) OpenArticleDetail(id string) error {
	if _, err := c.store.GetArticle(id); err != nil {
		c.refuse("open_article_detail", types.ErrCodeUnknownArticle, id)
		return err
	}

	c.mu.Lock()
	from := c.screen
	c.selectedArticleID = id
	c.screen = types.ScreenArticleDetail
	c.mu.Unlock()

	c.logger.NavigationEvent(string(from), string(types.ScreenArticleDetail), "open_article")
	monitoring.RecordNavigation(string(types.ScreenArticleDetail))
	return nil
}

// SelectPhotoCategory sets the photo gallery partition
func (c *Controller) SelectPhotoCategory(category types.PhotoCategory) error {
	if !category.Valid() {
		c.refuse("select_photo_category", types.ErrCodeInvalidCategory, string(category))
		return types.NewValidationError(types.ErrCodeInvalidCategory, "unknown photo category: "+string(category), nil)
	}

	c.mu.Lock()
	c.photoCategory = category
	c.mu.Unlock()
	return nil
}

// Back returns to the current screen's fixed return target and clears
// the selection context owned by the screen being left.
func (c *Controller) Back() types.Screen {
	c.mu.Lock()
	from := c.screen
	target := backTarget(from)

	switch from {
	case types.ScreenAppointmentDetail:
		c.selectedAppointmentID = ""
	case types.ScreenArticleDetail:
		c.selectedArticleID = ""
	}

	c.screen = target
	c.mu.Unlock()

	if target != from {
		c.logger.NavigationEvent(string(from), string(target), "back")
		monitoring.RecordNavigation(string(target))
	}
	return target
}

// Reset returns navigation to the unauthenticated landing state. Domain
// store contents are not touched here.
func (c *Controller) Reset() {
	c.mu.Lock()
	from := c.screen
	c.screen = types.ScreenGetStarted
	c.activeTab = types.TabHome
	c.role = types.RoleNone
	c.selectedAppointmentID = ""
	c.selectedArticleID = ""
	c.photoCategory = types.PhotoBefore
	c.mu.Unlock()

	c.logger.NavigationEvent(string(from), string(types.ScreenGetStarted), "reset")
}

func (c *Controller) refuse(operation, code, value string) {
	c.logger.RefusedOperation(operation, code, map[string]interface{}{"value": value})
	monitoring.RecordRefusedOperation(code)
}
