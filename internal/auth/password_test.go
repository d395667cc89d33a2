package auth

import "testing"

func TestSHA256HasherMatchesLegacyDigest(t *testing.T) {
	h := SHA256Hasher{}

	hash, err := h.Hash("Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Legacy rows store the plain hex digest, so the scheme must stay stable.
	again, _ := h.Hash("Password@123")
	if hash != again {
		t.Fatal("sha256 digest must be deterministic")
	}

	if !h.Verify("Password@123", hash) {
		t.Fatal("correct password rejected")
	}
	if h.Verify("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: 4}

	hash, err := h.Hash("Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "Password@123" {
		t.Fatal("password stored in plain text")
	}
	if !h.Verify("Password@123", hash) {
		t.Fatal("correct password rejected")
	}
	if h.Verify("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}
