package graphics

import (
	"fmt"
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Screenshot copies the current back buffer. Call it while drawing, after the frame content is complete.
func Screenshot() image.Image {
	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)
	return img.ToImage()
}

// LoadFont loads a TTF/OTF file rasterized at size pixels.
func LoadFont(path string, size int32) (rl.Font, error) {
	f := rl.LoadFontEx(path, size, nil)
	if f.Texture.ID == 0 {
		return rl.Font{}, fmt.Errorf("load font %s: no glyph texture", path)
	}
	return f, nil
}
