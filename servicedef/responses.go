package servicedef

import (
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// MissingFieldError means a response did not contain a field that the tests depend on.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("response is missing required field %q", e.Field)
}

func requireString(field string, value ldvalue.OptionalString) error {
	if !value.IsDefined() || value.StringValue() == "" {
		return MissingFieldError{Field: field}
	}
	return nil
}

type SignupResponse struct {
	Token  ldvalue.OptionalString `json:"token"`
	UserID ldvalue.OptionalString `json:"user_id"`
}

func (r SignupResponse) Validate() error {
	if err := requireString("token", r.Token); err != nil {
		return err
	}
	return requireString("user_id", r.UserID)
}

type StartupCreatedResponse struct {
	StartupID ldvalue.OptionalString `json:"startup_id"`
}

func (r StartupCreatedResponse) Validate() error {
	return requireString("startup_id", r.StartupID)
}

type TaskCreatedResponse struct {
	TaskID ldvalue.OptionalString `json:"task_id"`
}

func (r TaskCreatedResponse) Validate() error {
	return requireString("task_id", r.TaskID)
}

type ChatResponse struct {
	Response ldvalue.OptionalString `json:"response"`
}

func (r ChatResponse) Validate() error {
	return requireString("response", r.Response)
}

type PitchResponse struct {
	PitchOutline ldvalue.OptionalString `json:"pitch_outline"`
}

func (r PitchResponse) Validate() error {
	return requireString("pitch_outline", r.PitchOutline)
}

type CheckoutResponse struct {
	URL ldvalue.OptionalString `json:"url"`
}

func (r CheckoutResponse) Validate() error {
	return requireString("url", r.URL)
}
