//go:build !playerid_noonline && !playerid_nooffline

package playerid

import (
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var notchID = Identifier(uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5"))

func TestModesCompiledIn(t *testing.T) {
	assert.True(t, OnlineSupported)
	assert.True(t, OfflineSupported)
}

func TestClassify_DispatchesOnVersion(t *testing.T) {
	online, err := Classify(notchID)
	require.NoError(t, err)
	assert.True(t, online.Online())
	assert.IsType(t, OnlineID{}, online)
	assert.Equal(t, notchID, MustOnline(online).Identifier())

	offline, err := Classify(DeriveOffline("Notch"))
	require.NoError(t, err)
	assert.False(t, offline.Online())
	assert.IsType(t, OfflineID{}, offline)
}

func TestClassify_ExhaustiveSwitch(t *testing.T) {
	ids := []Identifier{notchID, DeriveOffline("a"), DeriveOffline("b")}
	var online, offline int
	for _, id := range ids {
		p, err := Classify(id)
		require.NoError(t, err)
		switch p.(type) {
		case OnlineID:
			online++
		case OfflineID:
			offline++
		default:
			t.Fatalf("unexpected variant %T", p)
		}
	}
	assert.Equal(t, 1, online)
	assert.Equal(t, 2, offline)
}

func TestNarrowing_PanicsOnMismatch(t *testing.T) {
	online, err := Classify(notchID)
	require.NoError(t, err)
	offline := FromOfflineUsername("Notch")

	assert.PanicsWithValue(t,
		"playerid: MustOffline called on playerid.OnlineID 069a79f4-44e9-4726-a5be-fca90e38aaf5",
		func() { MustOffline(online) })
	assert.Panics(t, func() { MustOnline(offline) })
	assert.NotPanics(t, func() { MustOnline(online) })
	assert.NotPanics(t, func() { MustOffline(offline) })
}

func TestCompareAndEqual(t *testing.T) {
	a, err := Parse("069a79f4-44e9-4726-a5be-fca90e38aaf5")
	require.NoError(t, err)
	b, err := Parse("61699b2e-d327-4a01-9f1e-0ea8c3f06bc6")
	require.NoError(t, err)
	c := FromOfflineUsername("BOOL") // c5d0...

	ids := []PlayerID{c, b, a}
	slices.SortFunc(ids, Compare)
	assert.Equal(t, []PlayerID{a, b, c}, ids)

	assert.Equal(t, 0, Compare(a, a))
	assert.True(t, Equal(c, FromOfflineUsername("BOOL")))
	assert.False(t, Equal(a, b))
}

func TestPlayerID_UsableAsMapKey(t *testing.T) {
	seen := map[PlayerID]string{}
	seen[FromOfflineUsername("Notch")] = "offline"
	p, err := Classify(notchID)
	require.NoError(t, err)
	seen[p] = "online"

	assert.Equal(t, "offline", seen[FromOfflineUsername("Notch")])
	assert.Equal(t, "online", seen[OnlineID{id: notchID}])
	assert.Len(t, seen, 2)
}
