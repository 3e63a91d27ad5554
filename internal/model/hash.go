package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content hashing. The version suffix leaves room for
// algorithm migration without colliding with old hashes.
const (
	domainGuest   = "planora/guest/v1"
	domainGroup   = "planora/group/v1"
	domainExpense = "planora/expense/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data). The null separator
// prevents ambiguity between domain and payload bytes.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// GuestHash returns a content hash of a guest's canonical form. Two guests
// hash equal iff they are structurally equal, independent of how their
// source representation ordered fields.
func GuestHash(g Guest) (string, error) {
	canonical, err := MarshalCanonical(g)
	if err != nil {
		return "", fmt.Errorf("guest hash: %w", err)
	}
	return hashWithDomain(domainGuest, canonical), nil
}

// GroupHash returns a content hash of a guest group's canonical form.
func GroupHash(gr GuestGroup) (string, error) {
	canonical, err := MarshalCanonical(gr)
	if err != nil {
		return "", fmt.Errorf("group hash: %w", err)
	}
	return hashWithDomain(domainGroup, canonical), nil
}

// ExpenseHash returns a content hash of an expense item's canonical form.
func ExpenseHash(e ExpenseItem) (string, error) {
	canonical, err := MarshalCanonical(e)
	if err != nil {
		return "", fmt.Errorf("expense hash: %w", err)
	}
	return hashWithDomain(domainExpense, canonical), nil
}
