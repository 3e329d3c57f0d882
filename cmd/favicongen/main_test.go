package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"favicongen/favicon"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func writeLogo(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 20, G: 80, B: 200, A: 255})
		}
	}
	path := filepath.Join(dir, "logo.png")
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

func TestGenerateMissingSource(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "icons")
	_, err := execute(t, "--source", filepath.Join(dir, "da_sportz_logo.png"), "--out", out)
	if !errors.Is(err, favicon.ErrMissingSource) {
		t.Fatalf("error = %v, want ErrMissingSource", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output directory was created: %v", err)
	}
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	src := writeLogo(t, dir, 400, 200)
	out := filepath.Join(dir, "public")

	stdout, err := execute(t, "generate", "--source", src, "--out", out, "--manifest", "--html", "--name", "DA Sportz")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, o := range favicon.Transparent.Outputs {
		if _, err := os.Stat(filepath.Join(out, o.Name)); err != nil {
			t.Errorf("missing %s: %v", o.Name, err)
		}
		if !strings.Contains(stdout, o.Name+"\t") {
			t.Errorf("summary lacks %s:\n%s", o.Name, stdout)
		}
	}
	if _, err := os.Stat(filepath.Join(out, favicon.ManifestName)); err != nil {
		t.Errorf("manifest not written: %v", err)
	}
	if !strings.Contains(stdout, `<link rel="manifest" href="/site.webmanifest">`) {
		t.Errorf("html snippet missing:\n%s", stdout)
	}
}

func TestGenerateWhitePresetFlags(t *testing.T) {
	dir := t.TempDir()
	src := writeLogo(t, dir, 64, 64)
	out := filepath.Join(dir, "public")

	if _, err := execute(t, "-p", "white", "-s", src, "-o", out, "--padding", "0", "--filter", "catmullrom"); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(filepath.Join(out, "favicon.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 48 {
		t.Errorf("favicon.png is %v", img.Bounds())
	}
	// No padding: the logo reaches the corner.
	if got := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA); got.B < 150 {
		t.Errorf("corner = %v, want logo colour", got)
	}
}

func TestGenerateInvalidFlags(t *testing.T) {
	dir := t.TempDir()
	src := writeLogo(t, dir, 10, 10)
	tests := [][]string{
		{"--source", src, "--out", dir, "--padding", "0.5"},
		{"--source", src, "--out", dir, "--filter", "nearest"},
		{"--source", src, "--out", dir, "--background", "#12"},
		{"--source", src, "--out", dir, "--preset", "sepia"},
	}
	for _, args := range tests {
		if _, err := execute(t, args...); !errors.Is(err, favicon.ErrInvalidConfig) {
			t.Errorf("%v: error = %v, want ErrInvalidConfig", args, err)
		}
	}
}

func TestSizesCommand(t *testing.T) {
	stdout, err := execute(t, "sizes")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"favicon.ico", "android-chrome-512x512.png", "180x180", "162x162"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("sizes output lacks %q:\n%s", want, stdout)
		}
	}
}

func TestPrintSummary(t *testing.T) {
	results := []favicon.Result{{Output: favicon.Transparent.Outputs[0], ETag: `W/"1-a"`}}

	var buf bytes.Buffer
	printSummary(&buf, results, true)
	if !strings.Contains(buf.String(), "• favicon.ico (32x32)") {
		t.Errorf("tty summary = %q", buf.String())
	}

	buf.Reset()
	printSummary(&buf, results, false)
	if got, want := buf.String(), "favicon.ico\t32x32\tW/\"1-a\"\n"; got != want {
		t.Errorf("piped summary = %q, want %q", got, want)
	}
}
