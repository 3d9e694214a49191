package user

import "strings"

// NormalizeEmail is applied on both signup and login.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeSearch prepares an admin search term matched against name or email.
func NormalizeSearch(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}
