package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateBaseURL checks that a generation endpoint is an absolute http(s)
// URL without credentials, query or fragment.
func ValidateBaseURL(baseURL string) error {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("invalid base URL %q: absolute URL with host is required", baseURL)
	}
	if u.User != nil {
		return fmt.Errorf("invalid base URL %q: userinfo is not allowed", baseURL)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("invalid base URL %q: query and fragment are not allowed", baseURL)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("invalid base URL %q: host is required", baseURL)
	}
	return nil
}
