package ppmio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kvassilev/raytracer/pkg/core"
	"github.com/kvassilev/raytracer/pkg/renderer"
)

func tinyImage() *renderer.Image {
	img := renderer.NewImage(2, 1)
	img.Pixels[0] = core.NewVec3(1, 0, 0)
	img.Pixels[1] = core.NewVec3(0, 2, 0) // over-bright, exercises tone mapping
	return img
}

func TestWriteP6Header(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, tinyImage()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("P6\n2 1\n255\n")) {
		t.Errorf("unexpected header: %q", buf.Bytes()[:11])
	}
}

func TestWriteASCIIRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteASCII(&buf, tinyImage()); err != nil {
		t.Fatalf("WriteASCII failed: %v", err)
	}
	text := buf.String()
	if !strings.HasPrefix(text, "P3\n2 1\n255\n") {
		t.Errorf("unexpected header: %q", text)
	}
	if !strings.Contains(text, "255 0 0") {
		t.Errorf("expected a pure red pixel line, got %q", text)
	}
}

func TestQuantizeClampsRange(t *testing.T) {
	if got := quantize(-1); got != 0 {
		t.Errorf("quantize(-1) = %d, want 0", got)
	}
	if got := quantize(2); got != 255 {
		t.Errorf("quantize(2) = %d, want 255", got)
	}
}
