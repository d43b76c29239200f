package smoketests

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const defaultPassword = "TestPass123!"

// Identity is the set of generated names used by one run. The Unix time keeps names readable and
// ordered; the random suffix keeps suites started in the same second apart.
type Identity struct {
	Email       string
	Password    string
	Name        string
	StartupName string
	InviteEmail string
}

func NewIdentity(now time.Time) Identity {
	ts := now.Unix()
	suffix := uuid.New().String()[:8]
	return Identity{
		Email:       fmt.Sprintf("test.user.%d.%s@example.com", ts, suffix),
		Password:    defaultPassword,
		Name:        fmt.Sprintf("Test User %d", ts),
		StartupName: fmt.Sprintf("Test Startup %d", ts),
		InviteEmail: fmt.Sprintf("nonexistent.%d.%s@example.com", ts, suffix),
	}
}
