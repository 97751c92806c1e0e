package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Abc12345!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "Abc12345!" {
		t.Fatalf("hash must not equal plaintext")
	}

	if err := ComparePassword(hash, "Abc12345!"); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	first, err := HashPassword("Abc12345!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	second, err := HashPassword("Abc12345!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct hashes for the same password")
	}
}
