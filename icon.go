// Package appicon renders the WMS Suite application icon.
//
// The artwork is drawn procedurally: a diagonal blue gradient background,
// three stacked warehouse boxes, barcode stripes across the top box, and a
// green checkmark badge. Render produces the full-resolution bitmap; the
// export helpers in this package write it out as PNG or as a multi-size
// Windows icon.
package appicon

import (
	"image"

	"github.com/gogpu/gg"
)

// Size is the edge length of the rendered icon in pixels. The artwork is
// authored at this resolution; smaller variants are produced by Scale.
const Size = 1024

// Artwork palette.
var (
	gradientStart = gg.Hex("#2563eb") // top-left corner
	gradientEnd   = gg.Hex("#1e40af") // bottom-right corner
	boxFill       = gg.Hex("#60a5fa")
	boxOutline    = gg.Hex("#1e40af")
	badgeGreen    = gg.Hex("#10b981")
)

// Render draws the icon and returns the finished Size x Size bitmap.
// Each call builds its own drawing context, so Render is safe to call from
// multiple goroutines.
func Render() image.Image {
	dc := gg.NewContext(Size, Size)

	drawBackground(dc)
	drawBoxes(dc)
	drawBarcode(dc)
	drawBadge(dc)

	return dc.Image()
}

// drawBackground fills the canvas with a gradient running diagonally from
// the top-left corner to the bottom-right one.
func drawBackground(dc *gg.Context) {
	dc.SetFillBrush(gg.LinearGradient(gradientStart, gradientEnd, 0, 0, Size, Size))
	dc.DrawRectangle(0, 0, Size, Size)
	_ = dc.Fill()
}

// box is one warehouse box: a filled rectangle with an outline, a vertical
// center seam, and a horizontal flap seam.
type box struct {
	x0, y0, x1, y1 float64
	outline        float64 // outline and vertical seam width
	flap           float64 // horizontal seam width
}

// Stacked bottom to top so each upper box overdraws the one below it.
// All three share the vertical center line at x = 512.
var boxes = []box{
	{312, 600, 712, 880, 4, 3},
	{362, 380, 662, 620, 3, 3},
	{412, 200, 612, 400, 2, 2},
}

func drawBoxes(dc *gg.Context) {
	for _, b := range boxes {
		w := b.x1 - b.x0
		h := b.y1 - b.y0
		midX := b.x0 + w/2
		midY := b.y0 + h/2

		dc.SetFillBrush(gg.Solid(boxFill))
		dc.DrawRectangle(b.x0, b.y0, w, h)
		_ = dc.Fill()

		dc.SetStrokeBrush(gg.Solid(boxOutline))
		dc.SetLineWidth(b.outline)
		dc.DrawRectangle(b.x0, b.y0, w, h)
		_ = dc.Stroke()

		dc.DrawLine(midX, b.y0, midX, b.y1)
		_ = dc.Stroke()

		dc.SetLineWidth(b.flap)
		dc.DrawLine(b.x0, midY, b.x1, midY)
		_ = dc.Stroke()
	}
}

// Barcode stripes across the top box: x position and width of each bar.
var barcodeStripes = [][2]float64{
	{442, 8}, {458, 12}, {478, 6}, {492, 14},
	{514, 10}, {532, 8}, {548, 12}, {568, 14},
}

const (
	barcodeTop    = 260
	barcodeHeight = 80
)

func drawBarcode(dc *gg.Context) {
	dc.SetFillBrush(gg.Solid(gg.White))
	for _, s := range barcodeStripes {
		dc.DrawRectangle(s[0], barcodeTop, s[1], barcodeHeight)
		_ = dc.Fill()
	}
}

// drawBadge draws the green circle with a white two-segment checkmark in the
// top-right corner. The badge is drawn last so it sits above everything else.
func drawBadge(dc *gg.Context) {
	dc.SetFillBrush(gg.Solid(badgeGreen))
	dc.DrawCircle(780, 280, 100)
	_ = dc.Fill()

	dc.SetStrokeBrush(gg.Solid(gg.White))
	dc.SetLineWidth(20)
	dc.MoveTo(730, 280)
	dc.LineTo(760, 310)
	dc.LineTo(830, 240)
	_ = dc.Stroke()
}
