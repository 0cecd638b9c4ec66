package palette

import (
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// encoding is the alphabet documents store identity tokens in: the URL-safe
// unpadded base64 of the 16 raw UUID bytes, 22 characters long.
var encoding = base64.RawURLEncoding

// ID is the opaque, immutable identity token of a palette entry.
type ID uuid.UUID

// NewID mints a fresh random identity token.
func NewID() ID {
	return ID(uuid.New())
}

// ParseID decodes the document representation of an identity token.
func ParseID(s string) (ID, error) {
	raw, err := encoding.DecodeString(s)
	if err != nil {
		return ID{}, fmt.Errorf("malformed id %q: %w", s, err)
	}

	u, err := uuid.FromBytes(raw)
	if err != nil {
		return ID{}, fmt.Errorf("malformed id %q: %w", s, err)
	}

	return ID(u), nil
}

// String renders the token the way documents store it.
func (id ID) String() string {
	return encoding.EncodeToString(id[:])
}
