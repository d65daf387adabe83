package core

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

var (
	// ErrInvalidURL is the only failure an analysis surfaces to the caller
	ErrInvalidURL = errors.New("invalid url")
	// ErrUnsupportedType is returned for unknown content generation types
	ErrUnsupportedType = errors.New("unsupported generation type")
)

// NormalizeURL coerces user input into an absolute http(s) URL. A bare
// host such as "example.com" is treated as https.
func NormalizeURL(raw string) (*url.URL, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Hostname() == "" || strings.ContainsAny(u.Hostname(), " \t") {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	return u, nil
}

// siteRoot returns scheme://host of u
func siteRoot(u *url.URL) *url.URL {
	return &url.URL{Scheme: u.Scheme, Host: u.Host}
}

// sameSite reports whether host belongs to the page host, ignoring a leading www.
func sameSite(host, pageHost string) bool {
	return strings.EqualFold(strings.TrimPrefix(strings.ToLower(host), "www."),
		strings.TrimPrefix(strings.ToLower(pageHost), "www."))
}

// hasFileExtension reports whether the last path segment looks like a file
func hasFileExtension(p string) bool {
	return path.Ext(path.Base(p)) != ""
}

// withCacheBuster appends cb=<stamp> to dynamic-looking URLs
func withCacheBuster(u *url.URL, stamp int64) string {
	if hasFileExtension(u.Path) {
		return u.String()
	}
	c := *u
	q := c.Query()
	q.Set("cb", fmt.Sprintf("%d", stamp))
	c.RawQuery = q.Encode()
	return c.String()
}

// resolve resolves ref against base and keeps only http(s) results, with
// the host lower-cased
func resolve(base *url.URL, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || base == nil {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	abs := base.ResolveReference(u)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return "", false
	}
	abs.Host = strings.ToLower(abs.Host)
	return abs.String(), true
}

// comparableURL normalizes a URL for equality checks: lower-case host,
// no fragment, no trailing slash.
func comparableURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return strings.TrimSuffix(strings.TrimSpace(raw), "/")
	}
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	q := u.Query()
	q.Del("cb")
	u.RawQuery = q.Encode()
	return strings.TrimSuffix(u.String(), "/")
}
