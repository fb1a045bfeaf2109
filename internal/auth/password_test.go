// Book Catalog - CRUD API for user-owned book records
// Copyright 2026 Hendrich
// SPDX-License-Identifier: MIT
// https://github.com/Hendrich/book-catalog

package auth

import "testing"

func TestPasswordHashAndCompare(t *testing.T) {
	h := NewPasswordHasher(4) // minimum cost keeps the test fast

	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals plaintext")
	}

	if !h.Compare(hash, "correct horse battery staple") {
		t.Error("Compare rejected the correct password")
	}
	if h.Compare(hash, "wrong password") {
		t.Error("Compare accepted a wrong password")
	}
	if h.Compare("not-a-bcrypt-hash", "anything") {
		t.Error("Compare accepted a malformed hash")
	}
}

func TestPasswordHasherCostClamped(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default rather than failing.
	for _, cost := range []int{-1, 0, 99} {
		h := NewPasswordHasher(cost)
		hash, err := h.Hash("pw1234")
		if err != nil {
			t.Errorf("Hash with cost %d: %v", cost, err)
			continue
		}
		if !h.Compare(hash, "pw1234") {
			t.Errorf("Compare failed for cost %d", cost)
		}
	}
}
