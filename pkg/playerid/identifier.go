package playerid

import (
	"github.com/google/uuid"

	dErrors "playerid/pkg/domain-errors"
)

// Version tags carried in the identifier's version nibble.
const (
	VersionOnline  = uuid.Version(4) // random, issued by the directory
	VersionOffline = uuid.Version(3) // MD5 name hash
)

// Identifier is a 128-bit player identifier in RFC 4122 byte layout.
type Identifier uuid.UUID

// IdentifierFromUUID converts a uuid.UUID without validation.
func IdentifierFromUUID(u uuid.UUID) Identifier { return Identifier(u) }

// ParseIdentifier parses the textual forms accepted by uuid.Parse
// (hyphenated, hyphenless, urn and braced). Anything that does not decode to
// exactly 16 bytes is ErrInvalidIdentifier.
func ParseIdentifier(s string) (Identifier, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Identifier{}, dErrors.Wrap(err, dErrors.CodeInvalidIdentifier, "invalid identifier format")
	}
	return Identifier(u), nil
}

// UUID returns id as a uuid.UUID.
func (id Identifier) UUID() uuid.UUID { return uuid.UUID(id) }

// String returns the lower-case 8-4-4-4-12 form.
func (id Identifier) String() string { return uuid.UUID(id).String() }

// Bytes returns the 16 raw bytes, most significant first, in the same order
// as the textual form.
func (id Identifier) Bytes() [16]byte { return [16]byte(id) }

// Version returns the high nibble of byte 6: 4 for online, 3 for offline.
func (id Identifier) Version() uuid.Version { return uuid.UUID(id).Version() }

// Variant returns the layout encoded in the top bits of byte 8.
func (id Identifier) Variant() uuid.Variant { return uuid.UUID(id).Variant() }

// IsNil reports whether every byte is zero.
func (id Identifier) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText implements encoding.TextMarshaler using String's form.
func (id Identifier) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// Compact renders the 32-digit hyphenless form used by the directory endpoints.
func (id Identifier) Compact() string {
	s := uuid.UUID(id).String()
	return s[0:8] + s[9:13] + s[14:18] + s[19:23] + s[24:]
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identifier) UnmarshalText(data []byte) error {
	parsed, err := ParseIdentifier(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
