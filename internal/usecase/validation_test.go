package usecase

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@mail.com", "a.b+c@sub.domain.org", "x@y.io"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "user@", "@mail.com", "user@mail", "a b@mail.com", "a@b@c.com"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestMaskEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"customer@mail.com", "cu****er@mail.com"},
		{"abcde@mail.com", "ab*de@mail.com"},
		{"abcd@mail.com", "****@mail.com"},
		{"ab@mail.com", "**@mail.com"},
		{"nodomain", "nodomain"},
	}
	for _, tc := range cases {
		if got := MaskEmail(tc.in); got != tc.want {
			t.Errorf("MaskEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
