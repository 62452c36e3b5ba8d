package auth

import "testing"

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash must differ from password")
	}

	if err := hasher.Compare(hash, "hunter2"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestNewBcryptHasherDefaultCost(t *testing.T) {
	if hasher := NewBcryptHasher(0); hasher.cost != LoginHashCost {
		t.Fatalf("expected login hash cost, got %d", hasher.cost)
	}
	if hasher := NewBcryptHasher(-3); hasher.cost != LoginHashCost {
		t.Fatalf("expected login hash cost, got %d", hasher.cost)
	}
}
