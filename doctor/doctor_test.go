package doctor

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"brainicon/icon"
)

func renderAll(t *testing.T, dir string) {
	t.Helper()
	for _, s := range icon.DefaultSpecs {
		if _, _, err := icon.Render(dir, s); err != nil {
			t.Fatalf("Render %s: %v", s.Filename, err)
		}
	}
}

func failed(results []Result) []string {
	var names []string
	for _, r := range results {
		if !r.OK() {
			names = append(names, r.Probe)
		}
	}
	return names
}

func TestCheckRenderedIcons(t *testing.T) {
	dir := t.TempDir()
	renderAll(t, dir)

	for _, s := range icon.DefaultSpecs {
		results := Check(dir, s)
		if len(results) != 4 {
			t.Errorf("%s: got %d results, want 4", s.Filename, len(results))
		}
		if f := failed(results); len(f) > 0 {
			t.Errorf("%s: failed probes %v", s.Filename, f)
		}
	}
}

func TestCheckMissingFile(t *testing.T) {
	results := Check(t.TempDir(), icon.DefaultSpecs[0])
	if len(results) != 1 || results[0].Probe != "decode" || results[0].OK() {
		t.Fatalf("got %+v, want single failing decode result", results)
	}
}

func TestCheckNotPNG(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "icon16.png"), []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	results := Check(dir, icon.DefaultSpecs[0])
	if f := failed(results); len(f) != 1 || f[0] != "decode" {
		t.Errorf("failed probes = %v, want [decode]", f)
	}
}

func TestCheckWrongDimensions(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "icon16.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 20, 16))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	results := Check(dir, icon.DefaultSpecs[0])
	if f := failed(results); len(f) != 1 || f[0] != "dimensions" {
		t.Errorf("failed probes = %v, want [dimensions]", f)
	}
}

func TestCheckWrongPixels(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "icon16.png"))
	if err != nil {
		t.Fatal(err)
	}
	// Transparent canvas: right size, wrong colours.
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 16, 16))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	f2 := failed(Check(dir, icon.DefaultSpecs[0]))
	if len(f2) != 2 || f2[0] != "background" || f2[1] != "center" {
		t.Errorf("failed probes = %v, want [background center]", f2)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	renderAll(t, dir)

	var out bytes.Buffer
	if code := Run(&out, dir); code != 0 {
		t.Fatalf("Run = %d, want 0\n%s", code, out.String())
	}
	s := out.String()
	for _, want := range []string{"[1/3] icon16.png", "[3/3] icon128.png", "All checks passed!"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "FAIL") {
		t.Errorf("unexpected failure:\n%s", s)
	}
}

func TestRunMissingIcons(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := icon.Render(dir, icon.DefaultSpecs[0]); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if code := Run(&out, dir); code != 1 {
		t.Fatalf("Run = %d, want 1", code)
	}
	s := out.String()
	if !strings.Contains(s, "Some checks failed") {
		t.Errorf("output missing failure summary:\n%s", s)
	}
	if got := strings.Count(s, "FAIL"); got != 2 {
		t.Errorf("got %d FAIL lines, want 2:\n%s", got, s)
	}
}
