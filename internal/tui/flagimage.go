package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderFlag rasterizes an image into half-block characters, width columns
// wide. Each character cell carries two vertical pixels: the upper half block
// takes the foreground color, the lower half the background.
func renderFlag(img image.Image, width int) string {
	if img == nil || width < 2 {
		return ""
	}

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return ""
	}

	// A character cell is roughly twice as tall as it is wide, and each cell
	// holds two pixel rows, so pixels come out square-ish when the pixel grid
	// keeps the source aspect ratio.
	pxW := width
	pxH := int(float64(width) * float64(srcH) / float64(srcW))
	if pxH < 2 {
		pxH = 2
	}
	if pxH%2 == 1 {
		pxH++
	}

	var b strings.Builder
	for y := 0; y < pxH; y += 2 {
		for x := 0; x < pxW; x++ {
			upper := sampleHex(img, bounds, x, y, pxW, pxH)
			lower := sampleHex(img, bounds, x, y+1, pxW, pxH)
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(upper)).
				Background(lipgloss.Color(lower)).
				Render("▀")
			b.WriteString(cell)
		}
		if y+2 < pxH {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// sampleHex nearest-neighbor samples the source image at a target pixel and
// returns the color as a hex string.
func sampleHex(img image.Image, bounds image.Rectangle, x, y, pxW, pxH int) string {
	srcX := bounds.Min.X + x*bounds.Dx()/pxW
	srcY := bounds.Min.Y + y*bounds.Dy()/pxH
	r, g, b, _ := img.At(srcX, srcY).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// flagPlaceholder is shown when the flag could not be fetched; the viewer
// never fails over a missing flag.
func flagPlaceholder(theme Theme, width int) string {
	inner := theme.Muted.Render("no flag available")
	return theme.Border.Width(width).Align(lipgloss.Center).Render(inner)
}
