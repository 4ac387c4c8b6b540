// Package viewer puts a rendered chart on screen, or on disk when running headless.
package viewer

import (
	"image"
	"image/png"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/iafilius/uwbmeasure/src/applog"
	"github.com/iafilius/uwbmeasure/src/render"
)

// AppID identifies the viewer to fyne's preference store.
const AppID = "com.uwbmeasure.viewer"

// Present writes img to out as PNG when out is set, otherwise shows it and blocks until the window closes.
func Present(title string, img image.Image, out string) error {
	if out != "" {
		if err := render.WritePNG(out, img); err != nil {
			return err
		}
		applog.Infof("[viewer] wrote %s", out)
		return nil
	}
	Show(title, img)
	return nil
}

// Show opens a window with img and blocks until it is dismissed.
func Show(title string, img image.Image) {
	a := app.NewWithID(AppID)
	w := NewWindow(a, title, img)
	w.ShowAndRun()
}

// NewWindow builds the chart window: image content, File menu and close shortcuts.
func NewWindow(a fyne.App, title string, img image.Image) fyne.Window {
	w := a.NewWindow(title)
	ci := chartImage(img)
	w.SetContent(ci)
	w.Resize(ci.MinSize())

	exportItem := fyne.NewMenuItem("Export PNG…", func() { exportChartPNG(w, img, "chart.png") })
	fileMenu := fyne.NewMenu("File",
		exportItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { w.Close() }),
	)
	w.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := w.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { w.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { w.Close() })
	}
	return w
}

// chartImage shows img at its native pixel size.
func chartImage(img image.Image) *canvas.Image {
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	if img != nil {
		b := img.Bounds()
		ci.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	}
	return ci
}

func exportChartPNG(w fyne.Window, img image.Image, defaultName string) {
	if img == nil {
		dialog.ShowInformation("Export", "No chart to export.", w)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, img); err != nil {
			dialog.ShowError(err, w)
		}
	}, w)
	fs.SetFileName(defaultName)
	fs.Show()
}
