package kernel_test

import (
	"testing"

	"github.com/placedly/backend/pkg/kernel"
)

func TestIsObjectIDHex(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"65f2a1b3c4d5e6f708192a3b", true},
		{"65F2A1B3C4D5E6F708192A3B", true},
		{"65f2a1b3c4d5e6f708192a3", false},   // 23 chars
		{"65f2a1b3c4d5e6f708192a3bc", false}, // 25 chars
		{"65f2a1b3c4d5e6f708192a3g", false},  // non-hex
		{"", false},
		{" 65f2a1b3c4d5e6f708192a3b", false},
	}
	for _, c := range cases {
		if got := kernel.IsObjectIDHex(c.in); got != c.want {
			t.Errorf("IsObjectIDHex(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestBlobIDIsValid(t *testing.T) {
	if !kernel.BlobID("65f2a1b3c4d5e6f708192a3b").IsValid() {
		t.Error("well-formed blob id should be valid")
	}
	if kernel.BlobID("resume-1").IsValid() {
		t.Error("non-hex blob id should be invalid")
	}
}

func TestEmailNormalized(t *testing.T) {
	cases := []struct {
		in   kernel.Email
		want kernel.Email
	}{
		{"One@Example.com", "one@example.com"},
		{"  padded@example.com ", "padded@example.com"},
		{"plain@example.com", "plain@example.com"},
		{"", ""},
	}
	for _, c := range cases {
		if got := c.in.Normalized(); got != c.want {
			t.Errorf("Normalized(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
