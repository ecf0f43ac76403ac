package models

import (
	"errors"
	"fmt"
)

// ViewState names the screen a client should render. The machine has no
// terminal state; it cycles for the life of the session.
type ViewState string

const (
	// ViewUnauthenticated shows the login screen.
	ViewUnauthenticated ViewState = "unauthenticated"
	// ViewOnboarding shows the role-selection modal: authenticated, no
	// mentor profile, onboarding not yet seen.
	ViewOnboarding ViewState = "onboarding"
	// ViewDashboard shows the mentor directory: authenticated, no mentor
	// profile, onboarding dismissed.
	ViewDashboard ViewState = "dashboard"
	// ViewRegistering shows the mentor registration form.
	ViewRegistering ViewState = "registering"
	// ViewMentorDashboard shows the directory for users with their own
	// mentor profile.
	ViewMentorDashboard ViewState = "mentor_dashboard"
)

// ViewEvent drives transitions between view states.
type ViewEvent string

const (
	// EventOnboardingJunior dismisses onboarding as a junior (browse only).
	EventOnboardingJunior ViewEvent = "onboarding_junior"
	// EventOnboardingSenior dismisses onboarding as a senior (go register).
	EventOnboardingSenior ViewEvent = "onboarding_senior"
	// EventStartRegistration opens the registration form from a dashboard.
	EventStartRegistration ViewEvent = "start_registration"
	// EventRegistrationCompleted records a successful registration.
	EventRegistrationCompleted ViewEvent = "registration_completed"
	// EventLogout returns to the login screen from any state.
	EventLogout ViewEvent = "logout"
)

// ErrInvalidTransition is returned when an event does not apply to a state.
var ErrInvalidTransition = errors.New("invalid view transition")

// ResolveView computes the view for a (possibly absent) session. Login
// success is resolved through here rather than through Transition, because
// the post-login view depends on persisted profile and onboarding state.
func ResolveView(authenticated, hasProfile, seenOnboarding bool) ViewState {
	switch {
	case !authenticated:
		return ViewUnauthenticated
	case hasProfile:
		return ViewMentorDashboard
	case seenOnboarding:
		return ViewDashboard
	default:
		return ViewOnboarding
	}
}

var transitions = map[ViewState]map[ViewEvent]ViewState{
	ViewOnboarding: {
		EventOnboardingJunior: ViewDashboard,
		EventOnboardingSenior: ViewRegistering,
	},
	ViewDashboard: {
		EventStartRegistration: ViewRegistering,
	},
	ViewMentorDashboard: {
		// Re-opening the form to view/edit the own profile
		EventStartRegistration: ViewRegistering,
	},
	ViewRegistering: {
		EventRegistrationCompleted: ViewMentorDashboard,
	},
}

// Transition applies event to current and returns the next state. Logout is
// valid from every state; all other pairs must appear in the table.
func Transition(current ViewState, event ViewEvent) (ViewState, error) {
	if event == EventLogout {
		return ViewUnauthenticated, nil
	}

	if next, ok := transitions[current][event]; ok {
		return next, nil
	}

	return current, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, event, current)
}
