package smoketests

import (
	"net/http"

	"github.com/startupops/api-smoke-tests/client"
	"github.com/startupops/api-smoke-tests/servicedef"
)

// Check inspects a response whose status matched. It may capture values into the session, log
// them, or fail the case.
type Check func(t *T, resp *client.Response)

// Case is one request/assert pair.
type Case struct {
	Name   string
	Method string
	// Path is relative to the API root and may contain session placeholders like {startup_id}.
	Path           string
	ExpectedStatus int
	Body           interface{}
	Headers        map[string]string
	// Fatal cases abort the whole run when they do not pass.
	Fatal bool
	// Gate cases skip the rest of their phase when they do not pass.
	Gate  bool
	Check Check
}

// Phase is an ordered group of cases. If any of the Requires keys is missing from the session when
// the phase starts, none of its cases run and none are counted.
type Phase struct {
	Name     string
	Banner   string
	Requires []SessionKey
	Cases    []Case
}

// CatalogParams are the run-specific inputs of DefaultCatalog.
type CatalogParams struct {
	Identity  Identity
	OriginURL string
	Package   string
	// StrictResponses makes informational response fields (chat response, pitch outline, checkout
	// URL) required.
	StrictResponses bool
	// VerifyInvite adds a case that lists the team after inviting and requires the invitee to
	// appear there.
	VerifyInvite bool
}

// DefaultCatalog returns the StartupOps smoke test catalog.
func DefaultCatalog(p CatalogParams) []Phase {
	teamCases := []Case{
		{
			Name:           "Get Team",
			Method:         http.MethodGet,
			Path:           "startups/{startup_id}/team",
			ExpectedStatus: http.StatusOK,
		},
		{
			// The invitee has no account; the invitation is expected to succeed and stay pending.
			Name:           "Invite Team Member",
			Method:         http.MethodPost,
			Path:           "startups/{startup_id}/team/invite",
			ExpectedStatus: http.StatusOK,
			Body:           servicedef.InviteMemberParams{Email: p.Identity.InviteEmail, Role: "member"},
			Gate:           p.VerifyInvite,
		},
	}
	if p.VerifyInvite {
		teamCases = append(teamCases, Case{
			Name:           "Verify Pending Invitation",
			Method:         http.MethodGet,
			Path:           "startups/{startup_id}/team",
			ExpectedStatus: http.StatusOK,
			Check:          verifyPendingInvite(p.Identity.InviteEmail),
		})
	}

	return []Phase{
		{
			Name:   "Authentication",
			Banner: "AUTHENTICATION TESTS",
			Cases: []Case{
				{
					Name:           "Auth Signup",
					Method:         http.MethodPost,
					Path:           "auth/signup",
					ExpectedStatus: http.StatusOK,
					Body: servicedef.SignupParams{
						Email:    p.Identity.Email,
						Password: p.Identity.Password,
						Name:     p.Identity.Name,
					},
					Fatal: true,
					Check: captureSignup,
				},
				{
					Name:           "Auth Me",
					Method:         http.MethodGet,
					Path:           "auth/me",
					ExpectedStatus: http.StatusOK,
				},
			},
		},
		{
			Name:   "Startup Management",
			Banner: "STARTUP MANAGEMENT TESTS",
			Cases: []Case{
				{
					Name:           "Create Startup",
					Method:         http.MethodPost,
					Path:           "startups",
					ExpectedStatus: http.StatusOK,
					Body: servicedef.CreateStartupParams{
						Name:        p.Identity.StartupName,
						Description: "A test startup for API testing",
						Industry:    "Technology",
						Vision:      "To revolutionize testing",
					},
					Gate:  true,
					Check: captureStartup,
				},
				{
					Name:           "Get Startups",
					Method:         http.MethodGet,
					Path:           "startups",
					ExpectedStatus: http.StatusOK,
				},
				{
					Name:           "Get Startup Details",
					Method:         http.MethodGet,
					Path:           "startups/{startup_id}",
					ExpectedStatus: http.StatusOK,
				},
				{
					Name:           "Update Startup",
					Method:         http.MethodPut,
					Path:           "startups/{startup_id}",
					ExpectedStatus: http.StatusOK,
					Body: servicedef.UpdateStartupParams{
						Description: "Updated description for testing",
						Vision:      "Updated vision statement",
					},
				},
			},
		},
		{
			Name:     "Task Management",
			Banner:   "TASK MANAGEMENT TESTS",
			Requires: []SessionKey{KeyStartupID},
			Cases: []Case{
				{
					Name:           "Create Task",
					Method:         http.MethodPost,
					Path:           "startups/{startup_id}/tasks",
					ExpectedStatus: http.StatusOK,
					Body: servicedef.CreateTaskParams{
						Title:       "Test Task",
						Description: "A test task for API testing",
						Priority:    "high",
						Status:      "todo",
					},
					Check: captureTask,
				},
				{
					Name:           "Get Tasks",
					Method:         http.MethodGet,
					Path:           "startups/{startup_id}/tasks",
					ExpectedStatus: http.StatusOK,
				},
				{
					Name:           "Update Task",
					Method:         http.MethodPut,
					Path:           "startups/{startup_id}/tasks/{task_id}",
					ExpectedStatus: http.StatusOK,
					Body: servicedef.UpdateTaskParams{
						Status:      "in_progress",
						Description: "Updated task description",
					},
				},
			},
		},
		{
			Name:     "Team Management",
			Banner:   "TEAM MANAGEMENT TESTS",
			Requires: []SessionKey{KeyStartupID},
			Cases:    teamCases,
		},
		{
			Name:     "Feedback System",
			Banner:   "FEEDBACK SYSTEM TESTS",
			Requires: []SessionKey{KeyStartupID},
			Cases: []Case{
				{
					Name:           "Create Feedback",
					Method:         http.MethodPost,
					Path:           "startups/{startup_id}/feedback",
					ExpectedStatus: http.StatusOK,
					Body: servicedef.CreateFeedbackParams{
						Content: "Great progress on the MVP!",
						Rating:  5,
						Tags:    []string{"positive", "mvp"},
						Source:  "internal",
					},
				},
				{
					Name:           "Get Feedback",
					Method:         http.MethodGet,
					Path:           "startups/{startup_id}/feedback",
					ExpectedStatus: http.StatusOK,
				},
			},
		},
		{
			Name:     "Analytics",
			Banner:   "ANALYTICS TESTS",
			Requires: []SessionKey{KeyStartupID},
			Cases: []Case{
				{
					Name:           "Get Analytics",
					Method:         http.MethodGet,
					Path:           "startups/{startup_id}/analytics",
					ExpectedStatus: http.StatusOK,
					Check:          logAnalyticsKeys,
				},
			},
		},
		{
			Name:     "AI Features",
			Banner:   "AI FEATURES TESTS",
			Requires: []SessionKey{KeyStartupID},
			Cases: []Case{
				{
					Name:           "AI Chat",
					Method:         http.MethodPost,
					Path:           "startups/{startup_id}/ai/chat",
					ExpectedStatus: http.StatusOK,
					Body:           servicedef.ChatParams{Message: "What are some good strategies for user acquisition?"},
					Check:          inspectChat(p.StrictResponses),
				},
				{
					Name:           "AI Pitch Generation",
					Method:         http.MethodPost,
					Path:           "startups/{startup_id}/ai/pitch",
					ExpectedStatus: http.StatusOK,
					Body:           servicedef.PitchParams{},
					Check:          inspectPitch(p.StrictResponses),
				},
			},
		},
		{
			Name:   "Payments",
			Banner: "PAYMENT TESTS",
			Cases: []Case{
				{
					Name:           "Create Checkout Session",
					Method:         http.MethodPost,
					Path:           "payments/checkout/session",
					ExpectedStatus: http.StatusOK,
					Body:           servicedef.CheckoutParams{OriginURL: p.OriginURL, Package: p.Package},
					Check:          inspectCheckout(p.StrictResponses),
				},
			},
		},
	}
}
