package markdown

import (
	"fmt"
	"net/url"
	"strings"
)

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// URLSanitizer resolves link targets against a trusted origin and rejects
// anything outside http, https and mailto. It is safe for concurrent use.
type URLSanitizer struct {
	base *url.URL
}

// NewURLSanitizer creates a sanitizer resolving relative links against
// origin, which must be an absolute http(s) URL taken from configuration.
func NewURLSanitizer(origin string) (*URLSanitizer, error) {
	base, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("parsing site origin: %w", err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("site origin %q must be an absolute http(s) URL", origin)
	}
	return &URLSanitizer{base: base}, nil
}

// Sanitize returns the absolute form of raw and true, or "" and false when
// raw cannot be parsed or uses a scheme that is not allowed.
func (s *URLSanitizer) Sanitize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	ref, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	var u *url.URL
	if isWebScheme(ref.Scheme) && ref.Host == "" && ref.User == nil {
		if u, err = s.resolveSchemeRelative(ref.Scheme, raw); err != nil {
			return "", false
		}
	} else {
		u = s.base.ResolveReference(ref)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	if !allowedSchemes[u.Scheme] {
		return "", false
	}

	if isWebScheme(u.Scheme) {
		if u.Host == "" {
			return "", false
		}
		u.Host = strings.ToLower(u.Host)
		if u.Path == "" && u.Opaque == "" {
			u.Path = "/"
		}
	}

	return u.String(), true
}

// resolveSchemeRelative handles "https:foo" style references, which carry a
// web scheme but no authority. With the base's scheme the rest is a relative
// reference; with the other scheme the rest names the host.
func (s *URLSanitizer) resolveSchemeRelative(scheme, raw string) (*url.URL, error) {
	rest := raw[strings.IndexByte(raw, ':')+1:]
	if scheme == s.base.Scheme {
		rel, err := url.Parse(rest)
		if err != nil {
			return nil, err
		}
		return s.base.ResolveReference(rel), nil
	}
	return url.Parse(scheme + "://" + strings.TrimLeft(rest, "/\\"))
}

func isWebScheme(scheme string) bool {
	return scheme == "http" || scheme == "https"
}
