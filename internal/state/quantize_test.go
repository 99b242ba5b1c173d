package state

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

func TestQuantizeTwoByTwoScenario(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, white)
	src.SetNRGBA(1, 0, black)
	src.SetNRGBA(0, 1, color.NRGBA{R: 200, A: 255}) // near neither reference
	src.SetNRGBA(1, 1, white)

	got := Quantize(src, white, black)

	want := []struct {
		x, y int
		c    color.NRGBA
	}{
		{0, 0, white},
		{1, 0, black},
		{0, 1, color.NRGBA{}}, // fully transparent
		{1, 1, white},
	}
	for _, w := range want {
		if c := got.NRGBAAt(w.x, w.y); c != w.c {
			t.Errorf("pixel (%d, %d) = %v, want %v", w.x, w.y, c, w.c)
		}
	}
}

func TestQuantizeThresholdIsStrict(t *testing.T) {
	tests := []struct {
		name  string
		pixel color.NRGBA
		want  color.NRGBA
	}{
		{
			name:  "sum exactly 50 from primary is not primary",
			pixel: color.NRGBA{R: 205, G: 255, B: 255, A: 255}, // |205-255| = 50
			want:  color.NRGBA{},
		},
		{
			name:  "sum 49 from primary is primary",
			pixel: color.NRGBA{R: 206, G: 255, B: 255, A: 255},
			want:  white,
		},
		{
			name:  "sum exactly 50 from secondary is not secondary",
			pixel: color.NRGBA{R: 20, G: 20, B: 10, A: 255},
			want:  color.NRGBA{},
		},
		{
			name:  "sum 49 from secondary is secondary",
			pixel: color.NRGBA{R: 20, G: 20, B: 9, A: 255},
			want:  black,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
			src.SetNRGBA(0, 0, tt.pixel)
			got := Quantize(src, white, black).NRGBAAt(0, 0)
			if got != tt.want {
				t.Errorf("Quantize(%v) = %v, want %v", tt.pixel, got, tt.want)
			}
		})
	}
}

func TestQuantizeAlphaIgnoredInComparison(t *testing.T) {
	// A fully transparent white pixel still classifies as primary white;
	// only the RGB channels are compared.
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})

	got := Quantize(src, white, black).NRGBAAt(0, 0)
	if got != white {
		t.Errorf("transparent white pixel = %v, want opaque primary %v", got, white)
	}
}

func TestQuantizePrimaryWinsWhenBothMatch(t *testing.T) {
	// References within the threshold of each other: the pixel matches
	// both, and the primary check runs first.
	primary := color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	secondary := color.NRGBA{R: 110, G: 100, B: 100, A: 255}
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 105, G: 100, B: 100, A: 255})

	got := Quantize(src, primary, secondary).NRGBAAt(0, 0)
	if got != primary {
		t.Errorf("ambiguous pixel = %v, want primary %v", got, primary)
	}
}

func TestQuantizePartition(t *testing.T) {
	// Every output pixel is exactly one of: opaque primary, opaque
	// secondary, fully transparent.
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 17), G: uint8(y * 17), B: uint8((x + y) * 8), A: 255})
		}
	}

	got := Quantize(src, white, black)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := got.NRGBAAt(x, y)
			switch c {
			case white, black, color.NRGBA{}:
			default:
				t.Fatalf("pixel (%d, %d) = %v, not primary, secondary, or transparent", x, y, c)
			}
		}
	}
}

func TestQuantizeIdempotent(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 32), G: uint8(y * 32), B: 128, A: 255})
		}
	}

	first := Quantize(src, white, black)
	second := Quantize(src, white, black)
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("quantizing the same source twice produced different buffers")
	}
}

func TestQuantizePreservesDimensions(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 13, 7))
	got := Quantize(src, white, black)
	if b := got.Bounds(); b.Dx() != 13 || b.Dy() != 7 {
		t.Errorf("bounds = %dx%d, want 13x7", b.Dx(), b.Dy())
	}
}

func TestQuantizeNonZeroOriginSource(t *testing.T) {
	// Sources with a shifted Min (e.g. cropped images) land at (0, 0)
	// in the output.
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(5, 5, white)
	src.SetNRGBA(6, 5, black)

	got := Quantize(src, white, black)
	if b := got.Bounds(); b.Min.X != 0 || b.Min.Y != 0 || b.Dx() != 2 || b.Dy() != 1 {
		t.Fatalf("bounds = %v, want (0,0)-(2,1)", b)
	}
	if got.NRGBAAt(0, 0) != white || got.NRGBAAt(1, 0) != black {
		t.Errorf("pixels = %v, %v, want white, black", got.NRGBAAt(0, 0), got.NRGBAAt(1, 0))
	}
}
