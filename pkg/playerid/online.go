//go:build !playerid_noonline

package playerid

//go:generate mockgen -source=online.go -destination=mocks/resolver_mock.go -package=mocks Resolver

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"playerid/pkg/directory"
)

// OnlineSupported reports whether online identities are compiled in.
const OnlineSupported = true

// Resolver performs directory lookups. *directory.Client satisfies it.
type Resolver interface {
	ProfileByName(ctx context.Context, username string) (directory.Profile, error)
	ProfileByID(ctx context.Context, id uuid.UUID) (directory.Profile, error)
}

var _ Resolver = (*directory.Client)(nil)

// OnlineID is a version 4 identity issued by the directory.
type OnlineID struct {
	id Identifier
}

// FromOnlineUsername resolves username through r. The returned identifier is
// trusted as issued; its version is not re-checked. Errors carry the codes
// ErrInvalidUsername, ErrTransport or ErrUnknown.
func FromOnlineUsername(ctx context.Context, r Resolver, username string) (OnlineID, error) {
	profile, err := r.ProfileByName(ctx, username)
	if err != nil {
		return OnlineID{}, err
	}
	return OnlineID{id: Identifier(profile.ID)}, nil
}

// Username asks the directory for the current name of o.
func (o OnlineID) Username(ctx context.Context, r Resolver) (string, error) {
	profile, err := r.ProfileByID(ctx, o.id.UUID())
	if err != nil {
		return "", err
	}
	return profile.Name, nil
}

// Identifier returns the wrapped identifier.
func (o OnlineID) Identifier() Identifier { return o.id }

// Bytes returns the identifier's 16 bytes in big-endian order.
func (o OnlineID) Bytes() [16]byte { return o.id.Bytes() }

// Online reports true.
func (o OnlineID) Online() bool { return true }

func (o OnlineID) String() string { return o.id.String() }

func (o OnlineID) playerID() {}

// MustOnline narrows p to OnlineID. It panics if p is not online.
func MustOnline(p PlayerID) OnlineID {
	o, ok := p.(OnlineID)
	if !ok {
		panic(fmt.Sprintf("playerid: MustOnline called on %T %s", p, p))
	}
	return o
}

func wrapOnline(id Identifier) (PlayerID, bool) {
	return OnlineID{id: id}, true
}

var _ PlayerID = OnlineID{}
