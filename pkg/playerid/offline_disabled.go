//go:build playerid_nooffline

package playerid

// OfflineSupported reports whether offline identities are compiled in.
const OfflineSupported = false

func wrapOffline(Identifier) (PlayerID, bool) { return nil, false }
