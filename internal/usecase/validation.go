package usecase

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail reports whether the string looks like an email address.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// MaskEmail hides the middle of the local part so recent-sale banners do not
// leak buyer identities: "customer@mail.com" becomes "cu****er@mail.com".
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return email
	}
	local, domain := email[:at], email[at:]
	if len(local) <= 4 {
		return strings.Repeat("*", len(local)) + domain
	}
	return local[:2] + strings.Repeat("*", len(local)-4) + local[len(local)-2:] + domain
}
