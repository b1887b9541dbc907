package playerid

import (
	"bytes"
	"fmt"

	dErrors "playerid/pkg/domain-errors"
)

// PlayerID is an identity whose variant always agrees with the version nibble
// of the wrapped identifier. The interface is sealed: OnlineID and OfflineID
// are the only implementations, and their fields are unexported so a value can
// only come from Classify, Parse or one of the From* constructors.
type PlayerID interface {
	// Identifier returns the wrapped identifier.
	Identifier() Identifier
	// Bytes returns the identifier in network byte order.
	Bytes() [16]byte
	// Online reports whether the identity was issued by the directory.
	Online() bool
	String() string

	playerID()
}

// Classify wraps id in the variant selected by its version nibble. Versions
// other than 4 and 3, and versions whose mode is compiled out, fail with
// ErrInvalidIdentifier. The variant bits are not inspected.
func Classify(id Identifier) (PlayerID, error) {
	switch id.Version() {
	case VersionOnline:
		if p, ok := wrapOnline(id); ok {
			return p, nil
		}
	case VersionOffline:
		if p, ok := wrapOffline(id); ok {
			return p, nil
		}
	}
	return nil, dErrors.Wrap(ErrInvalidIdentifier, dErrors.CodeInvalidIdentifier,
		fmt.Sprintf("invalid identifier: unsupported version %d", id.Version()))
}

// Parse reads a textual identifier and classifies it.
func Parse(s string) (PlayerID, error) {
	id, err := ParseIdentifier(s)
	if err != nil {
		return nil, err
	}
	return Classify(id)
}

// Compare orders identities by identifier bytes.
func Compare(a, b PlayerID) int {
	ab, bb := a.Bytes(), b.Bytes()
	return bytes.Compare(ab[:], bb[:])
}

// Equal reports whether a and b wrap the same identifier. Variants cannot
// differ for equal identifiers.
func Equal(a, b PlayerID) bool {
	return a.Identifier() == b.Identifier()
}
