package client

import (
	"net/http"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

const redactedCredential = "Bearer <redacted>"

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// CurlCommand renders a shell command that repeats a request. The bearer token is never included.
func CurlCommand(method, url string, header http.Header, body []byte) string {
	var b commandBuilder
	b.add("curl", "-sS", "-X", method)

	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range header[name] {
			if http.CanonicalHeaderKey(name) == "Authorization" {
				value = redactedCredential
			}
			b.add("-H", name+": "+value)
		}
	}
	if len(body) > 0 {
		b.add("--data", string(body))
	}
	b.add(url)
	return b.String()
}
