package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
)

// gradient stops used by the placeholder, top to bottom.
var (
	gradientTop    = color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff} // #667eea
	gradientBottom = color.NRGBA{R: 0x76, G: 0x4b, B: 0xa2, A: 0xff} // #764ba2
)

// GradientPlaceholder renders a two-stop vertical gradient PNG and returns
// it as a data URL. Purely local, it is the terminal fallback of the image
// chain and cannot fail.
func GradientPlaceholder(width, height int) string {
	if width <= 0 {
		width = 1200
	}
	if height <= 0 {
		height = 800
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		c := color.NRGBA{
			R: lerp(gradientTop.R, gradientBottom.R, t),
			G: lerp(gradientTop.G, gradientBottom.G, t),
			B: lerp(gradientTop.B, gradientBottom.B, t),
			A: 0xff,
		}
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// encoding an in-memory NRGBA image cannot realistically fail;
		// return an empty pixel data URL rather than propagate
		return "data:image/png;base64,"
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
