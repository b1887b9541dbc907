// Package playerid derives, classifies and resolves player identities.
//
// A player identity is a 128-bit UUID whose version nibble says where it came
// from. Version 4 identities are issued by the account directory and can only
// be obtained through a lookup. Version 3 identities are derived offline from
// a username, so the same name maps to the same identity on every machine.
//
// PlayerID is a closed sum over OnlineID and OfflineID. Either mode can be
// compiled out with the build tags playerid_noonline and playerid_nooffline;
// an excluded mode has no types, no constructors, and Classify rejects its
// version as ErrInvalidIdentifier.
package playerid
