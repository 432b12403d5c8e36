package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for board elements
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloorDot   = tcell.NewRGBColor(60, 62, 80)    // Dim grid dots
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbBox        = tcell.NewRGBColor(200, 160, 100) // Crate tan
	RgbWall       = tcell.NewRGBColor(140, 140, 150) // Stone gray
	RgbHybrid     = tcell.NewRGBColor(180, 120, 220) // Movable and immovable both
	RgbFunnel     = tcell.NewRGBColor(0, 200, 200)   // Vibrant cyan arrow
	RgbFunnelBg   = tcell.NewRGBColor(15, 45, 55)    // Dark cyan under occupants

	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusDim  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbBlockedMsg = tcell.NewRGBColor(255, 80, 80)   // Normal red
)
