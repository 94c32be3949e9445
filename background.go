package main

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// renderBackground composites the installer artwork onto a fresh canvas
// and returns the context ready to be saved.
func renderBackground() *gg.Context {
	dc := gg.NewContext(canvasWidth, canvasHeight)
	dc.SetColor(backgroundGray)
	dc.Clear()

	drawArrow(dc)
	drawInstruction(dc, loadFontFace(systemFontPath, fontSize))

	return dc
}

func drawArrow(dc *gg.Context) {
	startX := float64(appIconX + arrowInset)
	endX := float64(folderIconX - arrowInset)
	y := float64(appIconY + arrowDrop)

	// Shaft
	dc.SetColor(arrowBlue)
	dc.SetLineWidth(arrowLineWidth)
	dc.DrawLine(startX, y, endX, y)
	dc.Stroke()

	// Head: filled triangle over the shaft's last segment, pointing at
	// the folder slot
	dc.MoveTo(endX, y)
	dc.LineTo(endX-arrowheadLength, y-arrowheadHalfWidth)
	dc.LineTo(endX-arrowheadLength, y+arrowheadHalfWidth)
	dc.ClosePath()
	dc.Fill()
}

func drawInstruction(dc *gg.Context, face font.Face) {
	dc.SetFontFace(face)
	dc.SetColor(instructionGray)

	textWidth, _ := dc.MeasureString(instruction)
	x := (canvasWidth - textWidth) / 2
	y := float64(canvasHeight - textBottomOffset)
	dc.DrawString(instruction, x, y)
}
