package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nudah/clinic-portal/pkg/clock"
	"github.com/nudah/clinic-portal/pkg/config"
	"github.com/nudah/clinic-portal/pkg/logger"
	"github.com/nudah/clinic-portal/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestSession(t *testing.T) (*Session, *clock.FakeScheduler) {
	t.Helper()
	cfg := config.Default()
	sched := clock.NewFake()
	sess := NewWithScheduler(cfg, sched, logger.New("error"))
	t.Cleanup(sess.Close)
	return sess, sched
}

func TestLoginScenario_PatientReachesDashboard(t *testing.T) {
	sess, sched := setupTestSession(t)

	require.NoError(t, sess.Nav.SelectRole(types.RolePatient))
	require.NoError(t, sess.Nav.Navigate(types.ScreenLogin))
	require.NoError(t, sess.Auth.SubmitLogin(types.RolePatient))

	// Before the delay elapses the login is pending and navigation is untouched
	assert.Equal(t, types.AuthPending, sess.Auth.State())
	assert.Equal(t, types.ScreenLogin, sess.Nav.Screen())
	assert.Nil(t, sess.Auth.Token())

	sched.Advance(1500 * time.Millisecond)

	assert.Equal(t, types.AuthResolved, sess.Auth.State())
	assert.Equal(t, types.ScreenDashboard, sess.Nav.Screen())
	assert.Equal(t, types.TabHome, sess.Nav.ActiveTab())
	assert.Equal(t, types.RolePatient, sess.Nav.Role())
}

func TestSubmitLogin_RepeatedWhilePendingArmsOneTimer(t *testing.T) {
	sess, sched := setupTestSession(t)

	require.NoError(t, sess.Auth.SubmitLogin(types.RoleStaff))
	require.NoError(t, sess.Auth.SubmitLogin(types.RoleStaff))
	require.NoError(t, sess.Auth.SubmitLogin(types.RoleStaff))

	assert.Equal(t, 1, sched.Pending())

	sched.Advance(1500 * time.Millisecond)
	assert.Equal(t, types.AuthResolved, sess.Auth.State())
	assert.Equal(t, types.RoleStaff, sess.Nav.Role())
}

func TestSubmitLogin_WithoutRoleIsRefused(t *testing.T) {
	sess, sched := setupTestSession(t)

	err := sess.Auth.SubmitLogin(types.RoleNone)
	require.Error(t, err)

	var portalErr *types.PortalError
	require.ErrorAs(t, err, &portalErr)
	assert.Equal(t, types.ErrCodeNoRoleSelected, portalErr.Code)
	assert.Equal(t, types.AuthIdle, sess.Auth.State())
	assert.Equal(t, 0, sched.Pending())
}

func TestLogin_MintsVerifiableToken(t *testing.T) {
	sess, sched := setupTestSession(t)

	require.NoError(t, sess.Auth.SubmitLogin(types.RolePatient))
	sched.Advance(1500 * time.Millisecond)

	token := sess.Auth.Token()
	require.NotNil(t, token)
	assert.Equal(t, types.RolePatient, token.Role)
	assert.True(t, token.ExpiresAt.After(token.IssuedAt))

	parsed, err := jwt.Parse(token.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.Default().Session.JWTSecret), nil
	})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, string(types.RolePatient), claims["role"])
	assert.Equal(t, sess.ID, claims["sid"])
}

func TestLogout_KeepsStoreContents(t *testing.T) {
	sess, sched := setupTestSession(t)

	require.NoError(t, sess.Auth.SubmitLogin(types.RolePatient))
	sched.Advance(1500 * time.Millisecond)

	appointmentsBefore := len(sess.Store.ListAppointments())
	messagesBefore := len(sess.Store.ListMessages())

	sess.Logout()

	assert.Equal(t, types.ScreenGetStarted, sess.Nav.Screen())
	assert.Equal(t, types.TabHome, sess.Nav.ActiveTab())
	assert.Equal(t, types.RoleNone, sess.Nav.Role())
	assert.Equal(t, types.AuthIdle, sess.Auth.State())
	assert.Nil(t, sess.Auth.Token())

	// Mock data survives the logout/login cycle
	assert.Len(t, sess.Store.ListAppointments(), appointmentsBefore)
	assert.Len(t, sess.Store.ListMessages(), messagesBefore)
}

func TestLogout_InFlightChatReplyStillDelivered(t *testing.T) {
	sess, sched := setupTestSession(t)

	require.NoError(t, sess.Auth.SubmitLogin(types.RolePatient))
	sched.Advance(1500 * time.Millisecond)

	require.NoError(t, sess.Chat.Send("one last question"))
	before := len(sess.Store.ListMessages())

	sess.Logout()
	sched.Advance(2 * time.Second)

	messages := sess.Store.ListMessages()
	require.Len(t, messages, before+1)
	assert.Equal(t, types.SenderStaff, messages[len(messages)-1].Sender)
}

func TestLogout_AbandonsPendingLogin(t *testing.T) {
	sess, sched := setupTestSession(t)

	require.NoError(t, sess.Auth.SubmitLogin(types.RolePatient))
	sess.Logout()
	sched.Advance(5 * time.Second)

	assert.Equal(t, types.AuthIdle, sess.Auth.State())
	assert.Equal(t, types.ScreenGetStarted, sess.Nav.Screen())
	assert.Equal(t, types.RoleNone, sess.Nav.Role())
}

func TestRequestAppointment_LandsOnAppointmentsTab(t *testing.T) {
	sess, sched := setupTestSession(t)

	require.NoError(t, sess.Auth.SubmitLogin(types.RolePatient))
	sched.Advance(1500 * time.Millisecond)

	before := len(sess.Store.ListAppointments())
	apt, err := sess.RequestAppointment(&types.AppointmentDraft{
		Type: "Evaluation",
		Date: "2026-02-01",
		Time: "11:00",
	})
	require.NoError(t, err)

	assert.Equal(t, types.StatusPending, apt.Status)
	assert.Len(t, sess.Store.ListAppointments(), before+1)
	assert.Equal(t, types.ScreenDashboard, sess.Nav.Screen())
	assert.Equal(t, types.TabAppointments, sess.Nav.ActiveTab())
}

func TestRequestAppointment_InvalidDraftLeavesNavigation(t *testing.T) {
	sess, sched := setupTestSession(t)

	require.NoError(t, sess.Auth.SubmitLogin(types.RolePatient))
	sched.Advance(1500 * time.Millisecond)
	require.NoError(t, sess.Nav.Navigate(types.ScreenRequestAppointment))

	_, err := sess.RequestAppointment(&types.AppointmentDraft{Type: "Evaluation"})
	require.Error(t, err)
	assert.Equal(t, types.ScreenRequestAppointment, sess.Nav.Screen())
}
