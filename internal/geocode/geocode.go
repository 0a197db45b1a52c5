// Package geocode converts between ISO 3166-1 country code formats and
// formats coordinates for display. The code table is embedded at build time
// so lookups never touch the network.
package geocode

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	_ "embed"
)

//go:embed country_codes.csv
var countryCodesCSV []byte

// ErrUnknownCode is returned when a country code matches no table entry.
var ErrUnknownCode = errors.New("unknown country code")

// ErrUnknownName is returned when a country name matches no table entry.
var ErrUnknownName = errors.New("unknown country name")

type countryEntry struct {
	name    string
	alpha2  string
	alpha3  string
	numeric string
}

var (
	byAlpha2  map[string]countryEntry
	byAlpha3  map[string]countryEntry
	byNumeric map[string]countryEntry
	byName    map[string]countryEntry
)

var (
	alpha2Re  = regexp.MustCompile(`^[a-zA-Z]{2}$`)
	alpha3Re  = regexp.MustCompile(`^[a-zA-Z]{3}$`)
	numericRe = regexp.MustCompile(`^[0-9]{3}$`)
)

func init() {
	byAlpha2 = make(map[string]countryEntry)
	byAlpha3 = make(map[string]countryEntry)
	byNumeric = make(map[string]countryEntry)
	byName = make(map[string]countryEntry)

	r := csv.NewReader(bytes.NewReader(countryCodesCSV))
	if _, err := r.Read(); err != nil { // header
		panic(fmt.Sprintf("geocode: embedded table header: %v", err))
	}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(fmt.Sprintf("geocode: embedded table: %v", err))
		}
		e := countryEntry{name: rec[0], alpha2: rec[1], alpha3: rec[2], numeric: rec[3]}
		byAlpha2[e.alpha2] = e
		byAlpha3[e.alpha3] = e
		byNumeric[e.numeric] = e
		byName[normalizeName(e.name)] = e
	}
}

// lookup resolves a code in any supported format to its table entry.
func lookup(code string) (countryEntry, error) {
	code = strings.TrimSpace(code)
	switch {
	case alpha2Re.MatchString(code):
		if e, ok := byAlpha2[strings.ToUpper(code)]; ok {
			return e, nil
		}
	case alpha3Re.MatchString(code):
		if e, ok := byAlpha3[strings.ToUpper(code)]; ok {
			return e, nil
		}
	case numericRe.MatchString(code):
		if e, ok := byNumeric[code]; ok {
			return e, nil
		}
	}
	return countryEntry{}, fmt.Errorf("%w: %q", ErrUnknownCode, code)
}

// AlphaTwo converts a country code in alpha-2, alpha-3, or numeric format to
// its ISO 3166-1 alpha-2 form.
func AlphaTwo(code string) (string, error) {
	e, err := lookup(code)
	if err != nil {
		return "", err
	}
	return e.alpha2, nil
}

// AlphaTwoForName resolves a short English country name to its ISO 3166-1
// alpha-2 code. Matching is case-insensitive on the table's short names;
// long-form official names ("United Republic of Tanzania") do not match and
// must be resolved by other means.
func AlphaTwoForName(name string) (string, error) {
	if e, ok := byName[normalizeName(name)]; ok {
		return e.alpha2, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownName, name)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FormatCoordinates renders a signed decimal lat/lon pair in hemisphere
// notation: (-12.5, 30.25) becomes ("12.5 °S", "30.25 °E").
func FormatCoordinates(lat, lon float64) (string, string) {
	latStr := fmt.Sprintf("%g °N", lat)
	if lat < 0 {
		latStr = fmt.Sprintf("%g °S", -lat)
	}
	lonStr := fmt.Sprintf("%g °E", lon)
	if lon < 0 {
		lonStr = fmt.Sprintf("%g °W", -lon)
	}
	return latStr, lonStr
}
