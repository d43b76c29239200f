package smoketests

import (
	"fmt"
	"unicode/utf8"

	"github.com/startupops/api-smoke-tests/client"
	"github.com/startupops/api-smoke-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	tokenLogPrefix    = 20
	checkoutLogPrefix = 50
)

type schema interface {
	Validate() error
}

// decodeRequired fails the case unless the body decodes into target and target validates.
func decodeRequired(t *T, resp *client.Response, target schema) {
	if err := resp.Decode(target); err != nil {
		t.Require(fmt.Errorf("malformed response body: %w", err))
	}
	t.Require(target.Validate())
}

// decodeInformational decodes target for logging only, unless strict is set, in which case it
// behaves like decodeRequired. It reports whether target is usable.
func decodeInformational(t *T, resp *client.Response, target schema, strict bool) bool {
	if strict {
		decodeRequired(t, resp, target)
		return true
	}
	if err := resp.Decode(target); err != nil {
		t.Debug("Not inspecting response: %s", err)
		return false
	}
	if err := target.Validate(); err != nil {
		t.Debug("Not inspecting response: %s", err)
		return false
	}
	return true
}

// truncate returns at most n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func captureSignup(t *T, resp *client.Response) {
	var body servicedef.SignupResponse
	decodeRequired(t, resp, &body)
	token := body.Token.StringValue()
	t.Session().Set(KeyToken, token)
	t.Session().Set(KeyUserID, body.UserID.StringValue())
	t.Logf("Session token obtained: %s...", truncate(token, tokenLogPrefix))
}

func captureStartup(t *T, resp *client.Response) {
	var body servicedef.StartupCreatedResponse
	decodeRequired(t, resp, &body)
	id := body.StartupID.StringValue()
	t.Session().Set(KeyStartupID, id)
	t.Logf("Startup created: %s", id)
}

func captureTask(t *T, resp *client.Response) {
	var body servicedef.TaskCreatedResponse
	decodeRequired(t, resp, &body)
	t.Session().Set(KeyTaskID, body.TaskID.StringValue())
}

func logAnalyticsKeys(t *T, resp *client.Response) {
	t.Logf("Analytics data keys: %v", resp.JSON().Keys())
}

func inspectChat(strict bool) Check {
	return func(t *T, resp *client.Response) {
		var body servicedef.ChatResponse
		if decodeInformational(t, resp, &body, strict) {
			t.Logf("AI Response received: %d characters", utf8.RuneCountInString(body.Response.StringValue()))
		}
	}
}

func inspectPitch(strict bool) Check {
	return func(t *T, resp *client.Response) {
		var body servicedef.PitchResponse
		if decodeInformational(t, resp, &body, strict) {
			t.Logf("Pitch outline generated: %d characters", utf8.RuneCountInString(body.PitchOutline.StringValue()))
		}
	}
}

func inspectCheckout(strict bool) Check {
	return func(t *T, resp *client.Response) {
		var body servicedef.CheckoutResponse
		if decodeInformational(t, resp, &body, strict) {
			t.Logf("Checkout URL created: %s...", truncate(body.URL.StringValue(), checkoutLogPrefix))
		}
	}
}

// verifyPendingInvite accepts a team list given either as a bare array or as {"members": [...]}.
// The invitee must be listed; if the entry has a string status, it must be "pending".
func verifyPendingInvite(email string) Check {
	return func(t *T, resp *client.Response) {
		members := resp.JSON()
		if members.Type() == ldvalue.ObjectType {
			members = members.GetByKey("members")
		}
		if members.Type() != ldvalue.ArrayType {
			t.Errorf("team list is not an array of members")
			return
		}
		for i := 0; i < members.Count(); i++ {
			m := members.GetByIndex(i)
			if m.GetByKey("email").StringValue() != email {
				continue
			}
			status := m.GetByKey("status")
			if status.Type() == ldvalue.StringType && status.StringValue() != "pending" {
				t.Errorf("invited member %s has status %q, expected \"pending\"", email, status.StringValue())
			}
			return
		}
		t.Errorf("no team entry for invited address %s", email)
	}
}
