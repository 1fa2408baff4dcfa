// Package icon draws the brain logo used for the extension icons.
package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// OutputDir is where Render writes icons when driven from the command line.
// It is never created here.
const OutputDir = "icons"

var ErrInvalidSize = errors.New("icon size must be positive")

var (
	Blue  = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

type Spec struct {
	Size     int
	Filename string
}

// DefaultSpecs lists the icons the extension manifest references, in render order.
var DefaultSpecs = []Spec{
	{Size: 16, Filename: "icon16.png"},
	{Size: 48, Filename: "icon48.png"},
	{Size: 128, Filename: "icon128.png"},
}

// Box is an ellipse bounding box. Right and Bottom are the last pixel
// column and row the ellipse may cover, not one past it.
type Box struct {
	Left, Top, Right, Bottom int
}

func (b Box) ellipse() (cx, cy, rx, ry float64) {
	cx = float64(b.Left+b.Right+1) / 2
	cy = float64(b.Top+b.Bottom+1) / 2
	rx = float64(b.Right-b.Left+1) / 2
	ry = float64(b.Bottom-b.Top+1) / 2
	return
}

type Shape struct {
	Box   Box
	Color color.RGBA
}

// Layout returns the filled ellipses for a canvas of the given size,
// in paint order.
func Layout(size int) []Shape {
	return []Shape{
		{Box{size / 6, size / 6, 5 * size / 6, 5 * size / 6}, White},
		{Box{size / 4, size / 3, 3 * size / 4, 2 * size / 3}, Blue},
		{Box{size / 3, size / 4, 2 * size / 3, 3 * size / 4}, White},
	}
}

// Draw renders the logo onto a fresh size×size canvas.
func Draw(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	dc := gg.NewContextForRGBA(img)
	dc.SetColor(Blue)
	dc.Clear()
	for _, s := range Layout(size) {
		cx, cy, rx, ry := s.Box.ellipse()
		dc.DrawEllipse(cx, cy, rx, ry)
		dc.SetColor(s.Color)
		dc.Fill()
	}
	return img, nil
}

func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// EncodeBytes draws and encodes an icon in memory.
func EncodeBytes(size int) ([]byte, error) {
	img, err := Draw(size)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Render draws s and writes it to dir/s.Filename, replacing any existing
// file. It returns the path written and the number of bytes.
func Render(dir string, s Spec) (string, int, error) {
	data, err := EncodeBytes(s.Size)
	if err != nil {
		return "", 0, err
	}
	path := filepath.Join(dir, s.Filename)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create icon file: %w", err)
	}
	n, err := f.Write(data)
	if err != nil {
		f.Close()
		return "", n, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", n, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, n, nil
}
