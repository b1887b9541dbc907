//go:build playerid_noonline && playerid_nooffline

package playerid

// With both modes excluded no PlayerID can exist.
var _ int = "playerid: build with at most one of playerid_noonline and playerid_nooffline"
