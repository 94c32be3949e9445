package main

import "image/color"

// Layout of the installer window artwork. The icon slots must match the
// positions the DMG window script arranges its icons at.
const (
	canvasWidth  = 600
	canvasHeight = 400

	appIconX = 150
	appIconY = 180

	folderIconX = 450
	folderIconY = 180

	arrowInset         = 80 // horizontal gap between an icon slot and the arrow
	arrowDrop          = 50 // arrow sits this far below the icon row
	arrowLineWidth     = 4
	arrowheadLength    = 15
	arrowheadHalfWidth = 8

	fontSize         = 18
	textBottomOffset = 50
)

const (
	systemFontPath = "/System/Library/Fonts/Helvetica.ttc"
	instruction    = "Drag the app to the Applications folder"
	outputName     = "dmg-background.png"
)

var (
	backgroundGray  = color.RGBA{245, 245, 245, 255}
	instructionGray = color.RGBA{100, 100, 100, 255}
	arrowBlue       = color.RGBA{0, 122, 255, 255}
)
