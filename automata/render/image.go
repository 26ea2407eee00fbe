package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/orome/automata-go/automata"
)

// DefaultPalette returns a grayscale palette for the given base: state 0 is
// white, state base-1 is black, intermediate states spaced evenly between.
func DefaultPalette(base int) []color.RGBA {
	palette := make([]color.RGBA, base)
	for s := 0; s < base; s++ {
		v := uint8(255 - (255*s)/(base-1))
		palette[s] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return palette
}

// Raster draws the window as an image, one row of pixels per generation and
// one column per cell, each cell scale×scale pixels. Cell states index the
// palette; states past its end clamp to the last entry.
func Raster(h *automata.History, spec *automata.SliceSpec, palette []color.RGBA, scale int) (*image.RGBA, error) {
	if scale < 1 {
		scale = 1
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	lats, err := window(h, spec)
	if err != nil {
		return nil, err
	}
	width := lats[0].Len()
	img := image.NewRGBA(image.Rect(0, 0, width*scale, len(lats)*scale))
	for row, lat := range lats {
		fillRow(img, row, lat, palette, scale)
	}
	return img, nil
}

// fillRow blits one generation into rows [row*scale, (row+1)*scale) of img.
func fillRow(img *image.RGBA, row int, lat *automata.Lattice, palette []color.RGBA, scale int) {
	last := len(palette) - 1
	states := lat.States()
	for x, s := range states {
		idx := int(s)
		if idx > last {
			idx = last
		}
		col := palette[idx]
		for dy := 0; dy < scale; dy++ {
			y := row*scale + dy
			base := img.PixOffset(x*scale, y)
			for dx := 0; dx < scale; dx++ {
				o := base + dx*4
				img.Pix[o+0] = col.R
				img.Pix[o+1] = col.G
				img.Pix[o+2] = col.B
				img.Pix[o+3] = col.A
			}
		}
	}
}

// EncodePNG writes the window to w as a PNG image.
func EncodePNG(w io.Writer, h *automata.History, spec *automata.SliceSpec, palette []color.RGBA, scale int) error {
	img, err := Raster(h, spec, palette, scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// EncodeJPEG writes the window to w as a JPEG image.
func EncodeJPEG(w io.Writer, h *automata.History, spec *automata.SliceSpec, palette []color.RGBA, scale int) error {
	img, err := Raster(h, spec, palette, scale)
	if err != nil {
		return err
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
}

// AnimatedGIF builds an animation of the run: frame i shows the raster of
// generations up to and including the i-th of the window, so the automaton
// appears to grow row by row. delay is in hundredths of a second per frame.
func AnimatedGIF(h *automata.History, spec *automata.SliceSpec, palette []color.RGBA, scale, delay int) (*gif.GIF, error) {
	if scale < 1 {
		scale = 1
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	lats, err := window(h, spec)
	if err != nil {
		return nil, err
	}

	gifPalette := make(color.Palette, len(palette))
	for i, c := range palette {
		gifPalette[i] = c
	}

	width := lats[0].Len()
	bounds := image.Rect(0, 0, width*scale, len(lats)*scale)
	anim := &gif.GIF{}
	canvas := image.NewRGBA(bounds)
	for i, lat := range lats {
		fillRow(canvas, i, lat, palette, scale)
		frame := image.NewPaletted(bounds, gifPalette)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				frame.Set(x, y, canvas.At(x, y))
			}
		}
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return anim, nil
}

// EncodeGIF writes the animated window to w.
func EncodeGIF(w io.Writer, h *automata.History, spec *automata.SliceSpec, palette []color.RGBA, scale, delay int) error {
	anim, err := AnimatedGIF(h, spec, palette, scale, delay)
	if err != nil {
		return err
	}
	return gif.EncodeAll(w, anim)
}
