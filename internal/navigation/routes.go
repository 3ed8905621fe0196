package navigation

import "github.com/nudah/clinic-portal/pkg/types"

// backTargets maps each secondary screen to its fixed return target.
// The portal has no arbitrary-depth back stack; every detail screen
// returns to exactly one place.
var backTargets = map[types.Screen]types.Screen{
	types.ScreenSignup:             types.ScreenGetStarted,
	types.ScreenStaffLogin:         types.ScreenGetStarted,
	types.ScreenUserSelect:         types.ScreenGetStarted,
	types.ScreenLogin:              types.ScreenUserSelect,
	types.ScreenAppointmentDetail:  types.ScreenDashboard,
	types.ScreenRequestAppointment: types.ScreenDashboard,
	types.ScreenPhotoComparison:    types.ScreenDashboard,
	types.ScreenEducation:          types.ScreenDashboard,
	types.ScreenArticleDetail:      types.ScreenEducation,
}

// backTarget returns the fixed return screen; screens without an entry
// (the landing screen and the dashboard shell) are their own target.
func backTarget(s types.Screen) types.Screen {
	if target, ok := backTargets[s]; ok {
		return target
	}
	return s
}
