package services

import "testing"

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Admin@Example.com", "admin@example.com"},
		{"  user@test.com  ", "user@test.com"},
		{"PLAIN@DOMAIN.COM", "plain@domain.com"},
		{"already@lower.com", "already@lower.com"},
	}
	for _, tc := range cases {
		if got := normalizeEmail(tc.in); got != tc.want {
			t.Fatalf("normalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
