package tui

import (
	"math"
	"strings"

	_ "embed"
)

// worldMask is a coarse equirectangular land raster: 90 columns by 45 rows,
// 4 degrees per cell, '#' for land. Fine enough for a glanceable terminal
// globe; not a cartographic product.
//
//go:embed worldmask.txt
var worldMask string

var landRows = func() []string {
	return strings.Split(strings.TrimRight(worldMask, "\n"), "\n")
}()

// landAt reports whether the mask cell containing (lat, lon) is land.
func landAt(lat, lon float64) bool {
	// Normalize longitude into [-180, 180).
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	lon -= 180

	row := int((90 - lat) / 4)
	col := int((lon + 180) / 4)
	if row < 0 || row >= len(landRows) {
		return false
	}
	r := landRows[row]
	if col < 0 || col >= len(r) {
		return false
	}
	return r[col] == '#'
}

// globeOptions controls one orthographic globe render.
type globeOptions struct {
	CenterLat float64
	CenterLon float64
	Rows      int // terminal rows; columns are 2*Rows for character aspect
	Graticule bool
}

// renderGlobe draws an orthographic projection of the world centered on the
// given coordinates, with the center cell marked. The disc fills Rows
// terminal rows.
func renderGlobe(opts globeOptions, theme Theme) string {
	rows := opts.Rows
	if rows < 8 {
		rows = 8
	}
	cols := rows * 2

	lat0 := opts.CenterLat * math.Pi / 180
	lon0 := opts.CenterLon * math.Pi / 180
	sinLat0, cosLat0 := math.Sin(lat0), math.Cos(lat0)

	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			// Map the cell center onto the unit disc, north up.
			nx := (float64(x)+0.5)/float64(cols)*2 - 1
			ny := 1 - (float64(y)+0.5)/float64(rows)*2

			rho := math.Hypot(nx, ny)
			if rho > 1 {
				b.WriteByte(' ')
				continue
			}

			lat, lon := inverseOrthographic(nx, ny, rho, sinLat0, cosLat0, lon0)

			if y == rows/2 && x == cols/2 {
				b.WriteString(theme.Marker.Render("X"))
				continue
			}

			switch {
			case landAt(lat, lon):
				b.WriteString(theme.Land.Render("█"))
			case opts.Graticule && onGraticule(lat, lon):
				b.WriteString(theme.Graticule.Render("+"))
			default:
				b.WriteString(theme.Ocean.Render("·"))
			}
		}
		if y < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// inverseOrthographic converts unit-disc coordinates back to degrees of
// latitude and longitude for a sphere centered on (lat0, lon0).
func inverseOrthographic(x, y, rho, sinLat0, cosLat0, lon0 float64) (float64, float64) {
	if rho == 0 {
		return math.Asin(sinLat0) * 180 / math.Pi, lon0 * 180 / math.Pi
	}

	c := math.Asin(rho)
	sinC, cosC := math.Sin(c), math.Cos(c)

	lat := math.Asin(cosC*sinLat0 + y*sinC*cosLat0/rho)
	lon := lon0 + math.Atan2(x*sinC, rho*cosC*cosLat0-y*sinC*sinLat0)

	return lat * 180 / math.Pi, lon * 180 / math.Pi
}

// onGraticule reports whether a point lies near a 30-degree grid line.
func onGraticule(lat, lon float64) bool {
	const tolerance = 1.6
	nearLat := math.Abs(math.Mod(math.Abs(lat)+tolerance, 30)) < 2*tolerance
	nearLon := math.Abs(math.Mod(math.Abs(lon)+tolerance, 30)) < 2*tolerance
	return nearLat || nearLon
}
