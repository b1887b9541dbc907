//go:build !playerid_nooffline

package playerid

import (
	"crypto/md5"
	"fmt"

	"github.com/google/uuid"
)

// OfflinePrefix is prepended to the username before hashing.
const OfflinePrefix = "OfflinePlayer:"

// OfflineSupported reports whether offline identities are compiled in.
const OfflineSupported = true

// OfflineID is a version 3 identity derived from a username.
type OfflineID struct {
	id Identifier
}

// DeriveOffline hashes "OfflinePlayer:"+username with MD5 and stamps version 3
// and the RFC 4122 variant. The username is used byte for byte, so case and
// encoding matter.
func DeriveOffline(username string) Identifier {
	hash := md5.Sum([]byte(OfflinePrefix + username))
	hash[6] = hash[6]&0x0f | 0x30
	hash[8] = hash[8]&0x3f | 0x80
	return Identifier(uuid.UUID(hash))
}

// FromOfflineUsername derives the offline identity for username. It never fails.
func FromOfflineUsername(username string) OfflineID {
	return OfflineID{id: DeriveOffline(username)}
}

// Identifier returns the wrapped identifier.
func (o OfflineID) Identifier() Identifier { return o.id }

// Bytes returns the identifier's 16 bytes in big-endian order.
func (o OfflineID) Bytes() [16]byte { return o.id.Bytes() }

// Online reports false.
func (o OfflineID) Online() bool { return false }

func (o OfflineID) String() string { return o.id.String() }

func (o OfflineID) playerID() {}

// MustOffline narrows p to OfflineID. It panics if p is not offline; callers
// are expected to have checked Online() or to know the variant from context.
func MustOffline(p PlayerID) OfflineID {
	o, ok := p.(OfflineID)
	if !ok {
		panic(fmt.Sprintf("playerid: MustOffline called on %T %s", p, p))
	}
	return o
}

func wrapOffline(id Identifier) (PlayerID, bool) {
	return OfflineID{id: id}, true
}

var _ PlayerID = OfflineID{}
