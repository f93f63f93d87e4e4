package controller

import "testing"

func TestCartObjectIDs(t *testing.T) {
	ids, err := cartObjectIDs([]string{
		"65a1f0aa3cbbde0d1c1a2b3c",
		"65a1f0aa3cbbde0d1c1a2b3d",
	})
	if err != nil {
		t.Fatalf("cartObjectIDs: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("parsed %d ids, want 2", len(ids))
	}
	if ids[0].Hex() != "65a1f0aa3cbbde0d1c1a2b3c" {
		t.Errorf("first id = %s", ids[0].Hex())
	}
}

func TestCartObjectIDsRejectsBadHex(t *testing.T) {
	if _, err := cartObjectIDs([]string{"65a1f0aa3cbbde0d1c1a2b3c", "nope"}); err == nil {
		t.Error("expected error for malformed id")
	}
}

func TestCartObjectIDsEmpty(t *testing.T) {
	ids, err := cartObjectIDs(nil)
	if err != nil {
		t.Fatalf("cartObjectIDs(nil): %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("parsed %d ids, want 0", len(ids))
	}
}
