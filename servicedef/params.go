package servicedef

type SignupParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type CreateStartupParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Vision      string `json:"vision"`
}

// UpdateStartupParams is a partial update; only these fields change.
type UpdateStartupParams struct {
	Description string `json:"description"`
	Vision      string `json:"vision"`
}

type CreateTaskParams struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

type UpdateTaskParams struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

type InviteMemberParams struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type CreateFeedbackParams struct {
	Content string   `json:"content"`
	Rating  int      `json:"rating"`
	Tags    []string `json:"tags"`
	Source  string   `json:"source"`
}

type ChatParams struct {
	Message string `json:"message"`
}

// PitchParams has no fields; the request body is an empty JSON object.
type PitchParams struct{}

type CheckoutParams struct {
	OriginURL string `json:"origin_url"`
	Package   string `json:"package"`
}
