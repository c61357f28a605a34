// Package matchid generates short, time-sortable match identifiers.
//
// An ID is a UUIDv7 encoded as 26 characters of lowercase Crockford base32,
// so IDs generated later sort after earlier ones.
package matchid

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32 alphabet, lowercased.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generate returns a new match ID.
func Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the system random source does.
		panic("failed to generate match id: " + err.Error())
	}
	return Encode(id)
}

// Encode renders a UUID as a match ID.
func Encode(id uuid.UUID) string {
	return encoding.EncodeToString(id[:])
}

// Parse decodes a match ID back into its UUID.
func Parse(s string) (uuid.UUID, error) {
	if len(s) != 26 {
		return uuid.Nil, fmt.Errorf("match ID must be exactly 26 characters, got %d", len(s))
	}
	raw, err := encoding.DecodeString(strings.ToLower(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid match ID %q: %w", s, err)
	}
	return uuid.FromBytes(raw)
}

// Validate checks that s is a well-formed match ID.
func Validate(s string) error {
	_, err := Parse(s)
	return err
}
