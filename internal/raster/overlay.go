package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawLabel renders a line of debug text into the framebuffer at the given
// baseline position, with a one-pixel drop shadow for readability.
func (fb *Framebuffer) DrawLabel(x, y int, text string, c color.RGBA) {
	shadow := &font.Drawer{
		Dst:  fb.img,
		Src:  image.NewUniform(color.RGBA{A: 200}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x+1, y+1),
	}
	shadow.DrawString(text)

	d := &font.Drawer{
		Dst:  fb.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
