//go:build playerid_noonline

package playerid

// OnlineSupported reports whether online identities are compiled in.
const OnlineSupported = false

func wrapOnline(Identifier) (PlayerID, bool) { return nil, false }
