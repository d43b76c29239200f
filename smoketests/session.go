package smoketests

import (
	"net/url"
	"regexp"
)

// SessionKey names a value carried from one test case to later ones.
type SessionKey string

const (
	KeyToken     SessionKey = "token"
	KeyUserID    SessionKey = "user_id"
	KeyStartupID SessionKey = "startup_id"
	KeyTaskID    SessionKey = "task_id"
)

var pathPlaceholder = regexp.MustCompile(`\{([a-z_]+)\}`)

// Session is the state accumulated during one run. It starts empty, values are only ever added,
// and it is owned by a single Suite so independent suites never share it.
type Session struct {
	values map[SessionKey]string
}

func NewSession() *Session {
	return &Session{values: make(map[SessionKey]string)}
}

// Get returns the value for key, and false if it was never set or is empty.
func (s *Session) Get(key SessionKey) (string, bool) {
	v, ok := s.values[key]
	return v, ok && v != ""
}

func (s *Session) Set(key SessionKey, value string) {
	s.values[key] = value
}

func (s *Session) Token() string {
	v, _ := s.Get(KeyToken)
	return v
}

// Missing returns the keys that have no value, in the order given.
func (s *Session) Missing(keys ...SessionKey) []SessionKey {
	var ret []SessionKey
	for _, k := range keys {
		if _, ok := s.Get(k); !ok {
			ret = append(ret, k)
		}
	}
	return ret
}

// ResolvePath replaces placeholders such as {startup_id} with path-escaped session values. It
// fails with a MissingPrerequisiteError for the first placeholder that has no value.
func (s *Session) ResolvePath(template string) (string, error) {
	var missing error
	resolved := pathPlaceholder.ReplaceAllStringFunc(template, func(m string) string {
		key := SessionKey(pathPlaceholder.FindStringSubmatch(m)[1])
		v, ok := s.Get(key)
		if !ok {
			if missing == nil {
				missing = MissingPrerequisiteError{Key: key}
			}
			return m
		}
		return url.PathEscape(v)
	})
	if missing != nil {
		return "", missing
	}
	return resolved, nil
}
