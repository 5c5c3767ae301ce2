package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/hitsquads/internal/model"
)

func TestSnapToRoad(t *testing.T) {
	tests := []struct {
		name        string
		in          model.Position
		want        model.Position
		wantHeading float32
	}{
		{
			name:        "closer to vertical road",
			in:          model.NewPosition(70, 100, 3),
			want:        model.NewPosition(64, 100, 3),
			wantHeading: HeadingNorth,
		},
		{
			name:        "closer to horizontal road",
			in:          model.NewPosition(100, 130, 0),
			want:        model.NewPosition(100, 128, 0),
			wantHeading: HeadingEast,
		},
		{
			name:        "negative coordinates",
			in:          model.NewPosition(-60, -10, 0),
			want:        model.NewPosition(-64, -10, 0),
			wantHeading: HeadingNorth,
		},
		{
			name:        "already on road",
			in:          model.NewPosition(0, 37, 0),
			want:        model.NewPosition(0, 37, 0),
			wantHeading: HeadingNorth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, heading := SnapToRoad(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantHeading, heading)
		})
	}
}

func TestSnapToSidewalk(t *testing.T) {
	// Right of the vertical road x=64.
	assert.Equal(t, model.NewPosition(70, 100, 0), SnapToSidewalk(model.NewPosition(75, 100, 0)))
	// Left of it.
	assert.Equal(t, model.NewPosition(58, 100, 0), SnapToSidewalk(model.NewPosition(60, 100, 0)))
	// Below the horizontal road y=128.
	assert.Equal(t, model.NewPosition(100, 122, 0), SnapToSidewalk(model.NewPosition(100, 125, 0)))
}

func TestHandleGenerator_Ranges(t *testing.T) {
	gen := NewHandleGenerator()

	assert.Equal(t, uint32(0x10000001), gen.NextGroup())
	assert.Equal(t, uint32(0x20000001), gen.NextAgent())
	assert.Equal(t, uint32(0x20000002), gen.NextAgent())
	assert.Equal(t, uint32(0x30000001), gen.NextVehicle())
	assert.Equal(t, uint32(0x40000001), gen.NextMarker())
}
