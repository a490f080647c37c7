package annotate

import (
	"testing"

	"github.com/labelpix/labelpix/internal/detect"
)

func TestToPixelBox(t *testing.T) {
	tests := []struct {
		name          string
		box           detect.BoundingBox
		width, height int
		want          PixelBox
	}{
		{
			name:  "centered half on 800x600",
			box:   detect.BoundingBox{Left: 0.25, Top: 0.25, Width: 0.5, Height: 0.5},
			width: 800, height: 600,
			want: PixelBox{Left: 200, Top: 150, Right: 600, Bottom: 450},
		},
		{
			name:  "full frame",
			box:   detect.BoundingBox{Left: 0, Top: 0, Width: 1, Height: 1},
			width: 400, height: 400,
			want: PixelBox{Left: 0, Top: 0, Right: 400, Bottom: 400},
		},
		{
			name:  "negative fraction passes through",
			box:   detect.BoundingBox{Left: -0.125, Top: 0, Width: 0.5, Height: 0.5},
			width: 100, height: 100,
			want: PixelBox{Left: -12.5, Top: 0, Right: 37.5, Bottom: 50},
		},
		{
			name:  "overflow passes through",
			box:   detect.BoundingBox{Left: 0.75, Top: 0.75, Width: 0.5, Height: 0.5},
			width: 100, height: 200,
			want: PixelBox{Left: 75, Top: 150, Right: 125, Bottom: 250},
		},
		{
			name:  "zero-size box",
			box:   detect.BoundingBox{Left: 0.5, Top: 0.5},
			width: 640, height: 480,
			want: PixelBox{Left: 320, Top: 240, Right: 320, Bottom: 240},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPixelBox(tt.box, tt.width, tt.height)
			if got != tt.want {
				t.Errorf("ToPixelBox: got %+v, want %+v", got, tt.want)
			}
		})
	}
}
