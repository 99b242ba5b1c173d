package state

import (
	"image"
	"image/color"
)

// similarityThreshold is the channel-sum cutoff below which a pixel
// counts as "the same color". Strict less-than: a sum of exactly 50
// does not match.
const similarityThreshold = 50

// Quantize reduces src to a buffer of the same dimensions where every
// pixel is opaque primary, opaque secondary, or fully transparent.
// Primary wins when a pixel is within the threshold of both colors.
// Alpha takes no part in the comparison.
func Quantize(src image.Image, primary, secondary color.Color) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	p := toNRGBA(primary)
	s := toNRGBA(secondary)
	opaqueP := color.NRGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
	opaqueS := color.NRGBA{R: s.R, G: s.G, B: s.B, A: 0xff}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := toNRGBA(src.At(x, y))
			dx, dy := x-bounds.Min.X, y-bounds.Min.Y
			switch {
			case channelSumDiff(px, p) < similarityThreshold:
				dst.SetNRGBA(dx, dy, opaqueP)
			case channelSumDiff(px, s) < similarityThreshold:
				dst.SetNRGBA(dx, dy, opaqueS)
			default:
				// Transparent; RGB left at zero.
			}
		}
	}
	return dst
}

// channelSumDiff is the sum of absolute per-channel RGB differences.
func channelSumDiff(a, b color.NRGBA) int {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// toNRGBA gives the straight (non-premultiplied) 8-bit channels of c.
func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
