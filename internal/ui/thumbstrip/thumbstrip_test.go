package thumbstrip

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/peek/internal/gallery"
	"github.com/llehouerou/peek/internal/ui/testutil"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name                string
		center, count, size int
		start, end          int
	}{
		{"empty", 0, 0, 5, 0, 0},
		{"no room", 3, 10, 0, 0, 0},
		{"fits entirely", 1, 3, 5, 0, 3},
		{"centred", 5, 20, 5, 3, 8},
		{"clamped at start", 0, 20, 5, 0, 5},
		{"clamped at end", 19, 20, 5, 15, 20},
		{"even size", 5, 20, 4, 3, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(tt.center, tt.count, tt.size)
			if start != tt.start || end != tt.end {
				t.Errorf("Window(%d, %d, %d) = [%d, %d), want [%d, %d)",
					tt.center, tt.count, tt.size, start, end, tt.start, tt.end)
			}
		})
	}
}

func images(n int) []gallery.Image {
	out := make([]gallery.Image, n)
	for i := range out {
		out[i] = gallery.Image{Src: "/img/" + string(rune('a'+i)) + ".png"}
	}
	return out
}

func newStrip(width, n int) Model {
	m := New()
	m.SetSize(width, Height)
	m.SetImages(images(n))
	return m
}

func TestModel_Visible(t *testing.T) {
	// 3 slots fit in 32 columns: 3*10 + 2 spacing
	m := newStrip(32, 10)
	m.SetCurrent(5)
	start, end := m.Visible()
	if start != 4 || end != 7 {
		t.Errorf("Visible() = [%d, %d), want [4, 7)", start, end)
	}
}

func TestModel_HitTest(t *testing.T) {
	m := newStrip(32, 10)
	m.SetCurrent(5)

	tests := []struct {
		name     string
		col, row int
		want     int
		ok       bool
	}{
		{"first slot", 0, 0, 4, true},
		{"first slot label", 9, Height - 1, 4, true},
		{"gap", 10, 0, 0, false},
		{"second slot", 11, 1, 5, true},
		{"third slot", 31, 2, 6, true},
		{"past strip", 40, 0, 0, false},
		{"below strip", 0, Height, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.HitTest(tt.col, tt.row)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("HitTest(%d, %d) = %d, %v; want %d, %v", tt.col, tt.row, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestModel_HitTest_Centred(t *testing.T) {
	// two images in a wide strip are centred
	m := newStrip(41, 2)
	if _, ok := m.HitTest(0, 0); ok {
		t.Error("left padding is not a slot")
	}
	// used = 21, pad = 10
	if got, ok := m.HitTest(10, 0); !ok || got != 0 {
		t.Errorf("HitTest(10, 0) = %d, %v; want 0, true", got, ok)
	}
	if got, ok := m.HitTest(21, 0); !ok || got != 1 {
		t.Errorf("HitTest(21, 0) = %d, %v; want 1, true", got, ok)
	}
}

func TestModel_RequestOnlyOnce(t *testing.T) {
	m := newStrip(32, 10)
	if cmd := m.Request(); cmd == nil {
		t.Fatal("expected load commands")
	}
	if len(m.pending) != 3 {
		t.Errorf("pending = %d, want 3", len(m.pending))
	}
	if cmd := m.Request(); cmd != nil {
		t.Error("pending thumbnails should not be requested again")
	}

	m.Update(ThumbMsg{Src: "/img/a.png", Lines: []string{"x", "y", "z"}})
	m.Update(ThumbMsg{Src: "/img/b.png", Err: errors.New("boom")})
	if len(m.pending) != 1 {
		t.Errorf("pending = %d, want 1", len(m.pending))
	}
	if !m.failed["/img/b.png"] {
		t.Error("failure should be remembered")
	}
}

func TestLoadThumb(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for y := range 20 {
		for x := range 40 {
			img.Set(x, y, color.NRGBA{G: 200, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	msg := testutil.ExecuteCmd(loadThumb(path))
	thumb, ok := msg.(ThumbMsg)
	if !ok {
		t.Fatalf("got %T, want ThumbMsg", msg)
	}
	if thumb.Err != nil {
		t.Fatalf("unexpected error: %v", thumb.Err)
	}
	if len(thumb.Lines) != ThumbRows {
		t.Errorf("lines = %d, want %d", len(thumb.Lines), ThumbRows)
	}
	for _, line := range thumb.Lines {
		if w := testutil.MeasureWidth(line); w != ThumbCols {
			t.Errorf("line width = %d, want %d", w, ThumbCols)
		}
	}

	msg = testutil.ExecuteCmd(loadThumb(filepath.Join(dir, "missing.png")))
	if thumb, ok := msg.(ThumbMsg); !ok || thumb.Err == nil {
		t.Errorf("missing file should fail, got %#v", msg)
	}
}

func TestHalfBlocks(t *testing.T) {
	if got := HalfBlocks(nil, 0, 3); got != nil {
		t.Error("zero columns renders nothing")
	}
	blank := HalfBlocks(nil, 4, 2)
	if len(blank) != 2 || blank[0] != "    " {
		t.Errorf("nil image should be blank, got %q", blank)
	}

	// a wide image is letterboxed: 10x2 pixels in 10x3 cells uses one row
	img := image.NewNRGBA(image.Rect(0, 0, 10, 2))
	lines := HalfBlocks(img, 10, 3)
	if strings.TrimSpace(testutil.StripANSI(lines[0])) != "" {
		t.Error("top row should be padding")
	}
	if !strings.Contains(lines[1], halfBlock) {
		t.Error("middle row should hold the image")
	}
}

func TestModel_View(t *testing.T) {
	m := newStrip(32, 10)
	m.SetCurrent(0)
	m.Update(ThumbMsg{Src: "/img/b.png", Err: errors.New("boom")})

	view := testutil.StripANSI(m.View())
	lines := strings.Split(view, "\n")
	if len(lines) != Height {
		t.Fatalf("view has %d lines, want %d", len(lines), Height)
	}
	if !strings.Contains(lines[Height-1], "a.png") {
		t.Errorf("label line should name the first image: %q", lines[Height-1])
	}
	if !strings.Contains(view, "×") {
		t.Error("failed thumbnail should be marked")
	}
	if !strings.Contains(view, "…") {
		t.Error("loading thumbnail should be marked")
	}

	empty := New()
	if empty.View() != "" {
		t.Error("unsized strip renders nothing")
	}
}

var _ tea.Msg = ThumbMsg{}
