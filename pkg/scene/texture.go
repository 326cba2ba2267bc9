package scene

import (
	"bufio"
	"fmt"
	"os"

	"github.com/kvassilev/raytracer/pkg/core"
	"github.com/kvassilev/raytracer/pkg/material"
)

// LoadTexture decodes a binary PPM (P6) image file into a material.Texture.
// No third-party PNM decoder is wired here; see DESIGN.md for why a hand
// rolled reader is used instead.
func LoadTexture(path string) (*material.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	magic, err := readToken(r)
	if err != nil {
		return nil, fmt.Errorf("reading magic number: %w", err)
	}
	if magic != "P6" && magic != "P3" {
		return nil, fmt.Errorf("unsupported PPM magic %q", magic)
	}

	width, err := readIntToken(r)
	if err != nil {
		return nil, fmt.Errorf("reading width: %w", err)
	}
	height, err := readIntToken(r)
	if err != nil {
		return nil, fmt.Errorf("reading height: %w", err)
	}
	maxVal, err := readIntToken(r)
	if err != nil {
		return nil, fmt.Errorf("reading max value: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if maxVal <= 0 || maxVal > 65535 {
		return nil, fmt.Errorf("invalid max value %d", maxVal)
	}

	tex := material.NewTexture(width, height)
	scale := 1.0 / float64(maxVal)

	if magic == "P6" {
		// Exactly one whitespace byte separates the header from the
		// binary body; readIntToken already consumed up to and
		// including it via its trailing-whitespace skip.
		buf := make([]byte, width*height*3)
		if _, err := readFull(r, buf); err != nil {
			return nil, fmt.Errorf("reading pixel data: %w", err)
		}
		for i := 0; i < width*height; i++ {
			c := core.NewVec3(
				float64(buf[i*3])*scale,
				float64(buf[i*3+1])*scale,
				float64(buf[i*3+2])*scale,
			)
			tex.Pixels[i] = c
		}
	} else {
		for i := 0; i < width*height; i++ {
			r8, err := readIntToken(r)
			if err != nil {
				return nil, fmt.Errorf("reading pixel %d: %w", i, err)
			}
			g8, err := readIntToken(r)
			if err != nil {
				return nil, fmt.Errorf("reading pixel %d: %w", i, err)
			}
			b8, err := readIntToken(r)
			if err != nil {
				return nil, fmt.Errorf("reading pixel %d: %w", i, err)
			}
			tex.Pixels[i] = core.NewVec3(float64(r8)*scale, float64(g8)*scale, float64(b8)*scale)
		}
	}

	return tex, nil
}

// readToken reads a whitespace-delimited token, skipping '#'-prefixed
// comment lines, as PPM headers allow.
func readToken(r *bufio.Reader) (string, error) {
	var b []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			if len(b) > 0 {
				return string(b), nil
			}
			return "", err
		}
		if c == '#' {
			for {
				c, err := r.ReadByte()
				if err != nil || c == '\n' {
					break
				}
			}
			continue
		}
		if isPPMSpace(c) {
			if len(b) > 0 {
				return string(b), nil
			}
			continue
		}
		b = append(b, c)
	}
}

func readIntToken(r *bufio.Reader) (int, error) {
	tok, err := readToken(r)
	if err != nil {
		return 0, err
	}
	var n int
	if _, err := fmt.Sscanf(tok, "%d", &n); err != nil {
		return 0, fmt.Errorf("expected integer, got %q", tok)
	}
	return n, nil
}

func isPPMSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
