package path_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/plotopt/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSequence(t *testing.T) {
	want := []int{0, 1, 2}

	good := path.PathSequence{Order: []path.Placement{
		{OriginalIndex: 2}, {OriginalIndex: 0}, {OriginalIndex: 1},
	}}
	require.NoError(t, path.ValidateSequence(good, want))

	dup := path.PathSequence{Order: []path.Placement{
		{OriginalIndex: 0}, {OriginalIndex: 0}, {OriginalIndex: 1},
	}}
	require.ErrorIs(t, path.ValidateSequence(dup, want), path.ErrInternal)

	wrongLen := path.PathSequence{Order: []path.Placement{{OriginalIndex: 0}}}
	require.ErrorIs(t, path.ValidateSequence(wrongLen, want), path.ErrInternal)

	foreign := path.PathSequence{Order: []path.Placement{
		{OriginalIndex: 5}, {OriginalIndex: 0}, {OriginalIndex: 1},
	}}
	require.ErrorIs(t, path.ValidateSequence(foreign, want), path.ErrInternal)
}

func TestCopySequenceIndependence(t *testing.T) {
	orig := path.PathSequence{Order: []path.Placement{{OriginalIndex: 0}, {OriginalIndex: 1}}}
	cp := path.CopySequence(orig)
	if diff := cmp.Diff(orig, cp); diff != "" {
		t.Fatalf("fresh copy should be structurally identical to the original (-orig +cp):\n%s", diff)
	}

	cp.Order[0].Flipped = true
	assert.False(t, orig.Order[0].Flipped)
	assert.True(t, cp.Order[0].Flipped)
}

func TestEmitRoundTrip(t *testing.T) {
	paths := []path.Path{
		{Points: []path.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}}},
	}
	seq := path.PathSequence{Order: []path.Placement{{OriginalIndex: 0, Flipped: true}}}
	emitted := path.Emit(paths, seq, 0)
	require.Len(t, emitted, 3)
	assert.Equal(t, path.Point{X: 2, Y: 1}, emitted[0])
	assert.Equal(t, path.Point{X: 0, Y: 0}, emitted[2])

	// Feeding the emitted polyline back as a fresh path and flipping again
	// reproduces the original geometry (round-trip / idempotence).
	roundTripped := path.Path{Points: emitted}
	back := roundTripped.Reversed()
	assert.Equal(t, paths[0].Points, back)
}

func TestRound1e9(t *testing.T) {
	assert.InDelta(t, 1.0, path.Round1e9(1.0000000001), 1e-12)
	assert.InDelta(t, 1.000000001, path.Round1e9(1.0000000009), 1e-12)
}
