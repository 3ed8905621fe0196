package navigation

import (
	"testing"

	"github.com/nudah/clinic-portal/internal/store"
	"github.com/nudah/clinic-portal/pkg/logger"
	"github.com/nudah/clinic-portal/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestController(t *testing.T) (*Controller, *store.Store) {
	t.Helper()
	log := logger.New("error")
	st := store.New(log)
	st.Seed()
	return New(st, log), st
}

func TestNew_StartsAtLanding(t *testing.T) {
	nav, _ := setupTestController(t)

	assert.Equal(t, types.ScreenGetStarted, nav.Screen())
	assert.Equal(t, types.TabHome, nav.ActiveTab())
	assert.Equal(t, types.RoleNone, nav.Role())
	assert.Equal(t, types.PhotoBefore, nav.PhotoCategory())
}

func TestNavigate_KnownScreen(t *testing.T) {
	nav, _ := setupTestController(t)

	require.NoError(t, nav.Navigate(types.ScreenSignup))
	assert.Equal(t, types.ScreenSignup, nav.Screen())
}

func TestNavigate_UnknownScreen(t *testing.T) {
	nav, _ := setupTestController(t)

	err := nav.Navigate("settings")
	require.Error(t, err)
	assert.Equal(t, types.ScreenGetStarted, nav.Screen())
}

func TestSelectTab_AlwaysReturnsToDashboard(t *testing.T) {
	nav, _ := setupTestController(t)

	// From any prior screen the tab selection lands on the dashboard shell
	for _, from := range []types.Screen{types.ScreenGetStarted, types.ScreenEducation, types.ScreenRequestAppointment} {
		require.NoError(t, nav.Navigate(from))
		require.NoError(t, nav.SelectTab(types.TabChat))
		assert.Equal(t, types.ScreenDashboard, nav.Screen())
		assert.Equal(t, types.TabChat, nav.ActiveTab())
	}
}

func TestSelectTab_UnknownTab(t *testing.T) {
	nav, _ := setupTestController(t)
	require.NoError(t, nav.Navigate(types.ScreenEducation))

	err := nav.SelectTab("settings")
	require.Error(t, err)
	assert.Equal(t, types.ScreenEducation, nav.Screen())
	assert.Equal(t, types.TabHome, nav.ActiveTab())
}

func TestOpenAppointmentDetail_Known(t *testing.T) {
	nav, st := setupTestController(t)
	require.NoError(t, nav.SelectTab(types.TabAppointments))

	apt := st.ListAppointments()[0]
	require.NoError(t, nav.OpenAppointmentDetail(apt.ID))
	assert.Equal(t, types.ScreenAppointmentDetail, nav.Screen())
	assert.Equal(t, apt.ID, nav.SelectedAppointmentID())
}

func TestOpenAppointmentDetail_UnknownLeavesScreen(t *testing.T) {
	nav, _ := setupTestController(t)
	require.NoError(t, nav.SelectTab(types.TabAppointments))

	err := nav.OpenAppointmentDetail("nonexistent-id")
	require.Error(t, err)

	var portalErr *types.PortalError
	require.ErrorAs(t, err, &portalErr)
	assert.Equal(t, types.ErrorTypeNotFound, portalErr.Type)

	assert.Equal(t, types.ScreenDashboard, nav.Screen())
	assert.Empty(t, nav.SelectedAppointmentID())
}

func TestOpenArticleDetail_Known(t *testing.T) {
	nav, st := setupTestController(t)
	require.NoError(t, nav.Navigate(types.ScreenEducation))

	article := st.ListArticles("")[0]
	require.NoError(t, nav.OpenArticleDetail(article.ID))
	assert.Equal(t, types.ScreenArticleDetail, nav.Screen())
	assert.Equal(t, article.ID, nav.SelectedArticleID())
}

func TestOpenArticleDetail_Unknown(t *testing.T) {
	nav, _ := setupTestController(t)
	require.NoError(t, nav.Navigate(types.ScreenEducation))

	err := nav.OpenArticleDetail("nonexistent-id")
	require.Error(t, err)
	assert.Equal(t, types.ScreenEducation, nav.Screen())
}

func TestBack_StaticReturnTargets(t *testing.T) {
	nav, st := setupTestController(t)

	cases := []struct {
		from types.Screen
		to   types.Screen
	}{
		{types.ScreenSignup, types.ScreenGetStarted},
		{types.ScreenStaffLogin, types.ScreenGetStarted},
		{types.ScreenLogin, types.ScreenUserSelect},
		{types.ScreenRequestAppointment, types.ScreenDashboard},
		{types.ScreenEducation, types.ScreenDashboard},
		{types.ScreenArticleDetail, types.ScreenEducation},
	}

	for _, tc := range cases {
		require.NoError(t, nav.Navigate(tc.from))
		assert.Equal(t, tc.to, nav.Back(), "back from %s", tc.from)
	}

	// Back from a detail screen clears its selection context
	apt := st.ListAppointments()[0]
	require.NoError(t, nav.OpenAppointmentDetail(apt.ID))
	assert.Equal(t, types.ScreenDashboard, nav.Back())
	assert.Empty(t, nav.SelectedAppointmentID())
}

func TestSelectPhotoCategory(t *testing.T) {
	nav, _ := setupTestController(t)

	require.NoError(t, nav.SelectPhotoCategory(types.PhotoProgress))
	assert.Equal(t, types.PhotoProgress, nav.PhotoCategory())

	err := nav.SelectPhotoCategory("sideways")
	require.Error(t, err)
	assert.Equal(t, types.PhotoProgress, nav.PhotoCategory())
}

func TestReset_ReturnsToUnauthenticatedState(t *testing.T) {
	nav, st := setupTestController(t)

	require.NoError(t, nav.SelectRole(types.RolePatient))
	require.NoError(t, nav.SelectTab(types.TabChat))
	require.NoError(t, nav.OpenAppointmentDetail(st.ListAppointments()[0].ID))

	nav.Reset()

	assert.Equal(t, types.ScreenGetStarted, nav.Screen())
	assert.Equal(t, types.TabHome, nav.ActiveTab())
	assert.Equal(t, types.RoleNone, nav.Role())
	assert.Empty(t, nav.SelectedAppointmentID())
	assert.Empty(t, nav.SelectedArticleID())
}
