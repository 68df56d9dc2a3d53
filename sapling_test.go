package sapling

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// newTestWindow returns a window that sees only injected input and whose
// glides are cancelled and joined when the test ends.
func newTestWindow(t *testing.T) *Window {
	t.Helper()
	w := NewWindow(WindowConfig{Source: NoInput})
	t.Cleanup(func() {
		w.stop()
		w.Wait()
	})
	return w
}

func solidImage(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(color.RGBA{200, 80, 40, 255})
	return img
}

// writeTestPNG writes a w x h opaque PNG into dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"left edge", 10, 40, true},
		{"top edge", 50, 20, true},
		{"right edge", 110, 40, false},
		{"bottom edge", 50, 70, false},
		{"just inside bottom-right", 109.9, 69.9, true},
		{"outside left", 9, 40, false},
		{"outside above", 50, 19, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRectContainsEmpty(t *testing.T) {
	var r Rect
	if r.Contains(0, 0) {
		t.Error("empty rect should contain nothing")
	}
}

func TestRectOffset(t *testing.T) {
	r := Rect{1, 2, 3, 4}.Offset(10, -2)
	want := Rect{11, 0, 3, 4}
	if r != want {
		t.Errorf("Offset = %v, want %v", r, want)
	}
}

// --- Color ---

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.RGBA
	}{
		{"opaque white", Color{1, 1, 1, 1}, color.RGBA{255, 255, 255, 255}},
		{"background", ColorBackground, color.RGBA{250, 250, 250, 255}},
		{"half alpha premultiplies", Color{1, 0, 0, 0.5}, color.RGBA{128, 0, 0, 128}},
		{"clamped", Color{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.toRGBA(); got != tt.want {
				t.Errorf("toRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}
