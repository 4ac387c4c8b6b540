package viewer

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"

	"github.com/iafilius/uwbmeasure/src/render"
)

func TestPresent_WritesPNGWhenHeadless(t *testing.T) {
	out := filepath.Join(t.TempDir(), "distance.png")
	if err := Present("Distanz", render.Blank(64, 32), out); err != nil {
		t.Fatalf("present: %v", err)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Fatalf("expected png at %s: %v", out, err)
	}
}

func TestPresent_BadPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "no", "such", "dir.png")
	if err := Present("x", render.Blank(4, 4), out); err == nil {
		t.Fatalf("expected write error")
	}
}

func TestNewWindow_ContentAndMenu(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	img := render.Blank(320, 240)
	w := NewWindow(a, "Positionen", img)
	defer w.Close()

	if w.Title() != "Positionen" {
		t.Fatalf("title %q", w.Title())
	}
	ci, ok := w.Content().(*canvas.Image)
	if !ok {
		t.Fatalf("content is %T, want *canvas.Image", w.Content())
	}
	if ci.Image != img {
		t.Fatalf("window shows a different image")
	}
	if sz := ci.MinSize(); sz.Width != 320 || sz.Height != 240 {
		t.Fatalf("min size %v want 320x240", sz)
	}
	menu := w.MainMenu()
	if menu == nil || len(menu.Items) != 1 || menu.Items[0].Label != "File" {
		t.Fatalf("unexpected main menu: %+v", menu)
	}
}
