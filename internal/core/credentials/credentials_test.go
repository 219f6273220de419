package credentials

import (
	"strings"
	"testing"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	h, err := Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h == "s3cret-pass" {
		t.Fatalf("hash equals plaintext")
	}
	if !strings.HasPrefix(h, "$2a$10$") {
		t.Fatalf("unexpected hash prefix: %s", h)
	}
	if !Verify("s3cret-pass", h) {
		t.Fatalf("Verify rejected the original password")
	}
	if Verify("wrong-pass", h) {
		t.Fatalf("Verify accepted a different password")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same input are identical")
	}
	if !Verify("same-input", h1) || !Verify("same-input", h2) {
		t.Fatalf("salted hashes failed verification")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	for _, hashed := range []string{"", "not-a-bcrypt-hash", "$2a$10$tooshort"} {
		if Verify("anything", hashed) {
			t.Fatalf("Verify accepted malformed hash %q", hashed)
		}
	}
}
