package placement

import "testing"

func TestCompute(t *testing.T) {
	tests := []struct {
		name           string
		anchor         Rect
		viewportHeight int
		menuHeight     int
		want           Placement
	}{
		{
			name:           "fits below",
			anchor:         Rect{Y: 50, Width: 120, Height: 50},
			viewportHeight: 600,
			menuHeight:     200,
			want:           Placement{DY: 55, Width: 120, Height: 200},
		},
		{
			name:           "flips above when space below is short",
			anchor:         Rect{Y: 500, Width: 120, Height: 50},
			viewportHeight: 600,
			menuHeight:     200,
			want:           Placement{DY: -190, Width: 120, Height: 200, OpenUpward: true},
		},
		{
			name:           "exact fit stays below",
			anchor:         Rect{Y: 350, Width: 80, Height: 50},
			viewportHeight: 600,
			menuHeight:     200,
			want:           Placement{DY: 55, Width: 80, Height: 200},
		},
		{
			name:           "one short of fitting flips",
			anchor:         Rect{Y: 351, Width: 80, Height: 50},
			viewportHeight: 600,
			menuHeight:     200,
			want:           Placement{DY: -(200 - 199 + Margin), Width: 80, Height: 200, OpenUpward: true},
		},
		{
			name:           "menu taller than viewport is clamped",
			anchor:         Rect{Y: 0, Width: 40, Height: 3},
			viewportHeight: 20,
			menuHeight:     50,
			want:           Placement{DY: -(20 - 17 + Margin), Width: 40, Height: 20, OpenUpward: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(tc.anchor, tc.viewportHeight, tc.menuHeight)
			if got != tc.want {
				t.Fatalf("Compute(%+v, %d, %d) = %+v, want %+v",
					tc.anchor, tc.viewportHeight, tc.menuHeight, got, tc.want)
			}
		})
	}
}

func TestComputeWidthTracksAnchor(t *testing.T) {
	for _, w := range []int{1, 37, 200} {
		got := Compute(Rect{Width: w, Height: 1}, 100, 10)
		if got.Width != w {
			t.Fatalf("menu width %d, want anchor width %d", got.Width, w)
		}
	}
}
