package path_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/plotopt/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       path.Path
		wantErr error
	}{
		{
			name:    "too short",
			p:       path.Path{Points: []path.Point{{X: 0, Y: 0}}},
			wantErr: path.ErrMalformedPath,
		},
		{
			name:    "non-finite coordinate",
			p:       path.Path{Points: []path.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}}},
			wantErr: path.ErrMalformedPath,
		},
		{
			name:    "valid",
			p:       path.Path{Points: []path.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}},
			wantErr: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPathEffectiveEndpointsAndFlip(t *testing.T) {
	p := path.Path{Points: []path.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}}

	assert.Equal(t, path.Point{X: 0, Y: 0}, p.EffectiveStart(false))
	assert.Equal(t, path.Point{X: 1, Y: 1}, p.EffectiveEnd(false))
	assert.Equal(t, path.Point{X: 1, Y: 1}, p.EffectiveStart(true))
	assert.Equal(t, path.Point{X: 0, Y: 0}, p.EffectiveEnd(true))

	rev := p.Reversed()
	require.Len(t, rev, 3)
	assert.Equal(t, path.Point{X: 1, Y: 1}, rev[0])
	assert.Equal(t, path.Point{X: 0, Y: 0}, rev[2])
	// Original is untouched.
	assert.Equal(t, path.Point{X: 0, Y: 0}, p.Points[0])
}

func TestPathDrawLength(t *testing.T) {
	p := path.Path{Points: []path.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}}}
	assert.InDelta(t, 7.0, p.DrawLength(), 1e-9)
}

func TestPenUp(t *testing.T) {
	// Two unflipped paths: 0 from the origin to the first start, plus a
	// 1mm gap from (0,10) to (0,11).
	paths := []path.Path{
		{Points: []path.Point{{X: 0, Y: 0}, {X: 0, Y: 10}}},
		{Points: []path.Point{{X: 0, Y: 11}, {X: 0, Y: 20}}},
	}
	seq := path.PathSequence{Order: []path.Placement{
		{OriginalIndex: 0, Flipped: false},
		{OriginalIndex: 1, Flipped: false},
	}}
	assert.InDelta(t, 1.0, path.PenUp(paths, seq), 1e-9)
}

func TestPenUpEmptySequence(t *testing.T) {
	assert.Equal(t, 0.0, path.PenUp(nil, path.PathSequence{}))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     path.Config
		wantErr bool
	}{
		{"defaults ok", path.DefaultConfig(), false},
		{"negative pen width", path.Config{PenWidth: -1}, true},
		{"threshold too high", path.Config{VisibilityThreshold: 101}, true},
		{"threshold negative", path.Config{VisibilityThreshold: -1}, true},
		{"negative iterations", path.Config{MaxIterations: -1}, true},
		{"negative merge threshold", path.Config{MergeThreshold: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, path.ErrConfigRange)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
