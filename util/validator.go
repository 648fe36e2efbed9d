package util

import (
	"net/url"
	"regexp"
)

var codePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Check if the provided url is an absolute http or https address
func IsUrlValid(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Check if the provided short code is at least 3 URL-safe characters
func IsCodeValid(code string) bool {
	return len(code) >= 3 && codePattern.MatchString(code)
}
