// Package asset decodes particle sprites into tightly packed RGBA8 pixels
// ready for texture upload.
package asset

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is non-premultiplied RGBA8, rows top to bottom, no padding.
type Image struct {
	Width, Height int
	Pix           []uint8
}

// LoadError reports a sprite that could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load asset %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and decodes the image at path.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return img, nil
}

// Decode reads any registered image format from r.
func Decode(r io.Reader) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty %s image", format)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, src, b, xdraw.Src, nil)
	return &Image{Width: b.Dx(), Height: b.Dy(), Pix: dst.Pix}, nil
}

// RadialSprite generates a size x size white mask with a quadratic falloff
// from the centre, used when no sprite file is configured.
func RadialSprite(size int) *Image {
	if size < 2 {
		size = 2
	}
	img := &Image{Width: size, Height: size, Pix: make([]uint8, size*size*4)}
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			f := 1 - math.Hypot(dx, dy)
			if f < 0 {
				f = 0
			}
			v := uint8(math.Round(f * f * 255))
			i := (y*size + x) * 4
			img.Pix[i+0] = v
			img.Pix[i+1] = v
			img.Pix[i+2] = v
			img.Pix[i+3] = 255
		}
	}
	return img
}
