// Package ppmio encodes a rendered image as a PPM bitstream (P6 binary
// or P3 ASCII).
package ppmio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kvassilev/raytracer/pkg/renderer"
)

// Write encodes img as binary PPM (P6).
func Write(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	buf := make([]byte, 3)
	for _, c := range img.Pixels {
		tone := renderer.ToneMap(c)
		buf[0] = quantize(tone.X)
		buf[1] = quantize(tone.Y)
		buf[2] = quantize(tone.Z)
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteASCII encodes img as ASCII PPM (P3).
func WriteASCII(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	for _, c := range img.Pixels {
		tone := renderer.ToneMap(c)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", quantize(tone.X), quantize(tone.Y), quantize(tone.Z)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func quantize(v float64) byte {
	n := int(v*255 + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return byte(n)
}
