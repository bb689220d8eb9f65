package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == "" || digest == "s3cret" {
		t.Fatalf("digest must be a non-empty one-way hash, got %q", digest)
	}

	if !CheckPassword("s3cret", digest) {
		t.Fatalf("expected correct password to verify")
	}
	if CheckPassword("wrong", digest) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	d1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	d2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("two hashes of the same plaintext must differ by salt")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest must not verify")
	}
	if CheckPassword("anything", "") {
		t.Fatalf("empty digest must not verify")
	}
}
