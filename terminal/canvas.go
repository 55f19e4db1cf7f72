package terminal

import (
	"gridmap/render"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// A terminal cell shows two canvas pixels stacked vertically: the upper
// half block takes the top pixel as foreground and the bottom pixel as
// background.
const (
	halfBlock    = '▀'
	pixelsPerRow = 2
)

// toTcell converts any colour to a 24-bit terminal colour.
func toTcell(c color.Color) tcell.Color {
	r, g, b := render.RGB255(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// drawCanvas paints img into the top rows of the screen. Cells not
// covered by the image get bg.
func drawCanvas(screen tcell.Screen, img *render.ImageSurface, rows int, bg color.Color) {
	width, _ := screen.Size()
	bounds := img.Bounds()

	pixel := func(x, y int) tcell.Color {
		if x < bounds.Max.X && y < bounds.Max.Y {
			return toTcell(img.At(x, y))
		}
		return toTcell(bg)
	}

	for row := 0; row < rows; row++ {
		for x := 0; x < width; x++ {
			top := pixel(x, row*pixelsPerRow)
			bottom := pixel(x, row*pixelsPerRow+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
}

// canvasPoint maps a terminal position to canvas pixels.
func canvasPoint(col, row int) (px, py int) {
	return col, row * pixelsPerRow
}
