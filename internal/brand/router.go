package brand

import "strings"

// Action is what the host router decided to do with a request path.
type Action int

const (
	ActionPass Action = iota
	ActionRewrite
	ActionRedirect
)

// Decision is the outcome of routing one (host, path) pair.
type Decision struct {
	Action Action
	// Target is the rewritten or redirect path; empty for pass-through.
	Target string
}

// Prefixes that are never rewritten: API routes, operational endpoints, and
// static assets. Paths containing a dot are assumed to be files.
var skipPrefixes = []string{"/api", "/assets", "/images", "/healthz", "/metrics"}

// Route decides how a request path is served for the brand matching host.
// Pure function of (host, path); no error conditions, defaults to pass-through.
//
// For a secondary brand (one with a PathPrefix), requests on its hostname are
// rewritten into its page tree, and direct hits on the prefixed tree are
// redirected back to clean URLs.
func (r *Registry) Route(host, path string) Decision {
	b := r.ByHost(host)
	if b.PathPrefix == "" {
		return Decision{Action: ActionPass}
	}

	if path == "/" {
		return Decision{Action: ActionRewrite, Target: b.PathPrefix}
	}

	if strings.HasPrefix(path, b.PathPrefix) {
		target := strings.TrimPrefix(path, b.PathPrefix)
		if target == "" {
			target = "/"
		}
		return Decision{Action: ActionRedirect, Target: target}
	}

	for _, p := range skipPrefixes {
		if strings.HasPrefix(path, p) {
			return Decision{Action: ActionPass}
		}
	}
	if strings.Contains(path, ".") {
		return Decision{Action: ActionPass}
	}

	return Decision{Action: ActionRewrite, Target: b.PathPrefix + path}
}
