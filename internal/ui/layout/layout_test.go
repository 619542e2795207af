package layout

import "testing"

func TestPanelWide(t *testing.T) {
	p := Panel(1280, 720)
	if p.W != PanelWidth || p.X+p.W != 1280-Margin {
		t.Errorf("panel = %+v, want right-aligned %v wide", p, PanelWidth)
	}
	if p.Y != Margin || p.Y+p.H != 720-Margin {
		t.Errorf("panel = %+v, want full height within margins", p)
	}
}

func TestPanelNarrowIsBottomSheet(t *testing.T) {
	p := Panel(400, 800)
	if p.X != 0 || p.W != 400 {
		t.Errorf("sheet = %+v, want full width", p)
	}
	if p.Y+p.H != 800 {
		t.Errorf("sheet = %+v, want anchored to the bottom", p)
	}
}

func TestLabelCentered(t *testing.T) {
	for _, w := range []float32{320, 1280, 3840} {
		l := Label(w, 720)
		if left, right := l.X, w-(l.X+l.W); left != right {
			t.Errorf("width %v: label not centered (%v vs %v)", w, left, right)
		}
		if l.W > 600 {
			t.Errorf("width %v: label too wide (%v)", w, l.W)
		}
	}
}

func TestNavButtonsDoNotOverlap(t *testing.T) {
	b := NavButtons(1280, 720)
	if b[0].X+b[0].W > b[1].X {
		t.Errorf("buttons overlap: %+v", b)
	}
	if b[0].Contains(b[1].X, b[1].Y) {
		t.Error("first button contains the second's corner")
	}
}

func TestLoaderAlpha(t *testing.T) {
	tests := []struct {
		elapsed, want float32
	}{
		{0, 1},
		{1.49, 1},
		{1.5, 1},
		{1.75, 0.5},
		{2, 0},
		{10, 0},
	}
	for _, tt := range tests {
		if got := LoaderAlpha(tt.elapsed, 1.5, 0.5); got != tt.want {
			t.Errorf("LoaderAlpha(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
	if got := LoaderAlpha(2, 1.5, 0); got != 0 {
		t.Errorf("no fade: alpha = %v, want 0 after hold", got)
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		width, minW float32
		n           int
		wantW       float32
		wantPerRow  int
	}{
		{400, 100, 2, 200, 2},
		{400, 150, 3, 200, 2},
		{100, 150, 3, 100, 1},
		{400, 100, 0, 0, 0},
	}
	for _, tt := range tests {
		w, per := Columns(tt.width, tt.minW, tt.n)
		if w != tt.wantW || per != tt.wantPerRow {
			t.Errorf("Columns(%v, %v, %d) = %v, %d; want %v, %d", tt.width, tt.minW, tt.n, w, per, tt.wantW, tt.wantPerRow)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	if !r.Contains(10, 10) || r.Contains(30, 30) || r.Contains(9, 15) {
		t.Error("Contains uses half-open bounds")
	}
}
