package window

import "github.com/hajimehoshi/ebiten/v2"

const blockTextureSize = 16

// Shades of the block texture. Vertex colors multiply these.
const (
	shadeFace      = 0xee
	shadeHighlight = 0xff
	shadeEdge      = 0x99
	shadeShadow    = 0x66
)

// blockPixels returns RGBA pixels for a bevelled square: a light top-left
// edge, a dark bottom-right edge and a white face.
func blockPixels(size int) []byte {
	pix := make([]byte, size*size*4)
	for y := range size {
		for x := range size {
			shade := byte(shadeFace)
			switch {
			case x == 0 || y == 0:
				shade = shadeHighlight
			case x == size-1 || y == size-1:
				shade = shadeShadow
			case x == 1 || y == 1 || x == size-2 || y == size-2:
				shade = shadeEdge
			}
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = shade, shade, shade, 0xff
		}
	}
	return pix
}

func newBlockImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.WritePixels(blockPixels(size))
	return img
}
