// Package doctor verifies icons already written to disk.
package doctor

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"brainicon/icon"
	"brainicon/log"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

type Result struct {
	Probe string
	Err   error
}

func (r Result) OK() bool { return r.Err == nil }

// Check decodes dir/s.Filename and probes it. A file that cannot be read
// or decoded yields a single failing "decode" result.
func Check(dir string, s icon.Spec) []Result {
	path := filepath.Join(dir, s.Filename)
	img, err := decode(path)
	if err != nil {
		log.CheckFailed(path, "decode", err)
		return []Result{{Probe: "decode", Err: err}}
	}

	results := []Result{{Probe: "decode"}}
	b := img.Bounds()
	if b.Dx() != s.Size || b.Dy() != s.Size {
		err := fmt.Errorf("dimensions %dx%d, want %dx%d", b.Dx(), b.Dy(), s.Size, s.Size)
		log.CheckFailed(path, "dimensions", err)
		// Pixel probes are meaningless on the wrong canvas.
		return append(results, Result{Probe: "dimensions", Err: err})
	}
	results = append(results, Result{Probe: "dimensions"})

	probes := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"background", b.Min.X, b.Min.Y, icon.Blue},
		{"center", b.Min.X + s.Size/2, b.Min.Y + s.Size/2, icon.White},
	}
	for _, p := range probes {
		got := color.RGBAModel.Convert(img.At(p.x, p.y)).(color.RGBA)
		r := Result{Probe: p.name}
		if got != p.want {
			r.Err = fmt.Errorf("pixel (%d,%d) is %v, want %v", p.x, p.y, got, p.want)
			log.CheckFailed(path, p.name, r.Err)
		}
		results = append(results, r)
	}
	return results
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("not a valid PNG: %w", err)
	}
	return img, nil
}

// Run checks every default icon in dir and returns an exit code (0=all pass, 1=any fail).
func Run(w io.Writer, dir string) int {
	fmt.Fprintln(w, "brainicon doctor - icon checks")
	fmt.Fprintln(w, "==============================")

	allPass := true
	n := len(icon.DefaultSpecs)
	for i, s := range icon.DefaultSpecs {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "[%d/%d] %s\n", i+1, n, s.Filename)
		for _, r := range Check(dir, s) {
			if r.OK() {
				fmt.Fprintf(w, "  %s %s\n", passStyle.Render("PASS:"), r.Probe)
			} else {
				allPass = false
				fmt.Fprintf(w, "  %s %s: %v\n", failStyle.Render("FAIL:"), r.Probe, r.Err)
			}
		}
	}

	fmt.Fprintln(w)
	if allPass {
		fmt.Fprintln(w, "All checks passed!")
		return 0
	}
	fmt.Fprintln(w, "Some checks failed. See details above.")
	return 1
}
