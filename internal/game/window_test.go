package game

import "testing"

func TestWindowSizeFitsMonitor(t *testing.T) {
	cases := []struct {
		monW, monH int
		want       int
	}{
		{0, 0, WindowWidth},
		{2560, 1440, WindowWidth},
		{1366, 768, 691},
		{400, 300, MinWindowWidth},
	}
	for _, tc := range cases {
		w, h := windowSize(tc.monW, tc.monH)
		if w != tc.want || h != tc.want {
			t.Errorf("windowSize(%d,%d) = %dx%d, want %dx%d", tc.monW, tc.monH, w, h, tc.want, tc.want)
		}
	}
}

func TestCentredOn(t *testing.T) {
	x, y := centredOn(1920, 0, 1920, 1080, 900, 900)
	if x != 1920+510 || y != 90 {
		t.Errorf("centredOn = (%d,%d), want (2430,90)", x, y)
	}
}
