package colliders

import (
	"testing"

	"github.com/automoto/wallmerge/shared/leveldata"
	"github.com/automoto/wallmerge/shared/wallmerge"
	"github.com/yohamta/donburi/features/math"
)

func TestPlace(t *testing.T) {
	tests := []struct {
		name       string
		rect       wallmerge.Rect
		tileSize   float64
		anchor     math.Vec2
		wantCenter math.Vec2
		wantHalf   math.Vec2
	}{
		{
			name:       "single cell at origin",
			rect:       wallmerge.Rect{Left: 0, Right: 0, Top: 0, Bottom: 0},
			tileSize:   16,
			wantCenter: math.Vec2{X: 8, Y: 8},
			wantHalf:   math.Vec2{X: 8, Y: 8},
		},
		{
			name:       "horizontal run",
			rect:       wallmerge.Rect{Left: 0, Right: 2, Top: 0, Bottom: 0},
			tileSize:   16,
			wantCenter: math.Vec2{X: 24, Y: 8},
			wantHalf:   math.Vec2{X: 24, Y: 8},
		},
		{
			name:       "block with anchor",
			rect:       wallmerge.Rect{Left: 2, Right: 3, Top: 4, Bottom: 1},
			tileSize:   10,
			anchor:     math.Vec2{X: 100, Y: -50},
			wantCenter: math.Vec2{X: 130, Y: -20},
			wantHalf:   math.Vec2{X: 10, Y: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Place([]wallmerge.Rect{tt.rect}, tt.tileSize, tt.anchor)
			if len(got) != 1 {
				t.Fatalf("got %d placements, want 1", len(got))
			}
			p := got[0]
			if p.Center != tt.wantCenter {
				t.Errorf("Center = %v, want %v", p.Center, tt.wantCenter)
			}
			if p.HalfExtent != tt.wantHalf {
				t.Errorf("HalfExtent = %v, want %v", p.HalfExtent, tt.wantHalf)
			}
			if p.Body != Static || p.Friction != HighFriction {
				t.Errorf("got body %v friction %v, want static high friction", p.Body, p.Friction)
			}
			if p.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", p.Rect, tt.rect)
			}
		})
	}
}

func TestPlaceEmpty(t *testing.T) {
	if got := Place(nil, 16, math.Vec2{}); len(got) != 0 {
		t.Errorf("Place(nil) = %v, want none", got)
	}
}

func TestBounds(t *testing.T) {
	p := Place([]wallmerge.Rect{{Left: 1, Right: 2, Top: 3, Bottom: 3}}, 16, math.Vec2{X: 4, Y: 0})[0]
	x, y, w, h := p.Bounds()
	if x != 20 || y != 48 || w != 32 || h != 16 {
		t.Errorf("Bounds() = (%v, %v, %v, %v), want (20, 48, 32, 16)", x, y, w, h)
	}
}

func TestPlaceTile(t *testing.T) {
	p := PlaceTile(leveldata.GridCoord{X: 3, Y: 1}, 16, math.Vec2{})
	x, y, w, h := p.Bounds()
	if x != 48 || y != 16 || w != 16 || h != 16 {
		t.Errorf("Bounds() = (%v, %v, %v, %v), want (48, 16, 16, 16)", x, y, w, h)
	}
}
