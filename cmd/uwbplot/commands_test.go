package main

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iafilius/uwbmeasure/src/dataset"
)

type presented struct {
	title string
	img   image.Image
	out   string
}

// stubPresent records the call instead of opening a window.
func stubPresent(t *testing.T) *[]presented {
	t.Helper()
	var calls []presented
	saved := presentFunc
	presentFunc = func(title string, img image.Image, out string) error {
		calls = append(calls, presented{title, img, out})
		return nil
	}
	t.Cleanup(func() { presentFunc = saved })
	return &calls
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDistanceCommand_PrintsMean(t *testing.T) {
	calls := stubPresent(t)
	f := writeFixture(t, "messwerte_10m.txt", "1.0\n2.0\n3.0\n")
	out, err := execute(t, "distance", "--file", f, "--window", "3", "--width", "640", "--height", "360")
	if err != nil {
		t.Fatalf("distance: %v", err)
	}
	if strings.TrimSpace(out) != "2.0" {
		t.Fatalf("stdout %q want 2", out)
	}
	if len(*calls) != 1 {
		t.Fatalf("expected one present call, got %d", len(*calls))
	}
	c := (*calls)[0]
	if c.out != "" || c.img == nil || !strings.Contains(c.title, "Distanz") {
		t.Fatalf("unexpected present call %+v", c)
	}
	if c.img.Bounds().Dx() != 640 {
		t.Fatalf("width flag ignored: %d", c.img.Bounds().Dx())
	}
}

func TestPositionCommand_PrintsCenterAndStd(t *testing.T) {
	stubPresent(t)
	f := writeFixture(t, "positionsdaten.txt", "1.0, 2.0\n3.0, 4.0\n")
	out, err := execute(t, "position", "--file", f)
	if err != nil {
		t.Fatalf("position: %v", err)
	}
	want := "Mittelpunkt X: 2.0, Mittelpunkt Y: 3.0\nStandardabweichung X: 1.0, Standardabweichung Y: 1.0\n"
	if out != want {
		t.Fatalf("stdout %q want %q", out, want)
	}
}

func TestTimingCommand_OutFlag(t *testing.T) {
	calls := stubPresent(t)
	out, err := execute(t, "timing", "--out", "timing.png")
	if err != nil {
		t.Fatalf("timing: %v", err)
	}
	if out != "" {
		t.Fatalf("timing should print nothing, got %q", out)
	}
	if len(*calls) != 1 || (*calls)[0].out != "timing.png" {
		t.Fatalf("out flag not forwarded: %+v", *calls)
	}
}

func TestDistanceCommand_MalformedNoChart(t *testing.T) {
	calls := stubPresent(t)
	f := writeFixture(t, "m.txt", "abc\n")
	_, err := execute(t, "distance", "--file", f)
	if !errors.Is(err, dataset.ErrMalformedLine) {
		t.Fatalf("expected malformed line error, got %v", err)
	}
	if len(*calls) != 0 {
		t.Fatalf("chart presented despite parse error")
	}
}

func TestConfigFile(t *testing.T) {
	stubPresent(t)
	data := writeFixture(t, "d.txt", "4\n8\n100\n")
	cfgPath := writeFixture(t, "uwbplot.yaml", "distance:\n  window: 2\n  file: "+data+"\n")
	out, err := execute(t, "--config", cfgPath, "distance")
	if err != nil {
		t.Fatalf("distance: %v", err)
	}
	if strings.TrimSpace(out) != "6.0" {
		t.Fatalf("stdout %q want 6", out)
	}
}

func TestUnexpectedArgs(t *testing.T) {
	stubPresent(t)
	if _, err := execute(t, "distance", "extra"); err == nil {
		t.Fatalf("expected error for positional args")
	}
}
