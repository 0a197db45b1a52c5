package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	t.Run("known codes", func(t *testing.T) {
		assert.Equal(t, CategoryTropicalCyclone, ParseCategory("TC"))
		assert.Equal(t, CategoryEarthquake, ParseCategory("eq"))
		assert.Equal(t, CategoryFlood, ParseCategory(" FL "))
		assert.Equal(t, CategoryVolcano, ParseCategory("VO"))
		assert.Equal(t, CategoryWildfire, ParseCategory("WF"))
		assert.Equal(t, CategoryDrought, ParseCategory("DR"))
	})

	t.Run("unrecognized maps to unspecified", func(t *testing.T) {
		assert.Equal(t, CategoryUnspecified, ParseCategory("XX"))
		assert.Equal(t, CategoryUnspecified, ParseCategory(""))
		assert.Equal(t, CategoryUnspecified, ParseCategory("tsunami"))
		assert.Equal(t, CategoryUnspecified, ParseCategory("NA"))
	})

	t.Run("every parse result is in the fixed set", func(t *testing.T) {
		known := map[Category]bool{}
		for _, c := range Categories() {
			known[c] = true
		}
		for _, in := range []string{"TC", "EQ", "FL", "VO", "WF", "DR", "NA", "??", "", "meteor"} {
			assert.True(t, known[ParseCategory(in)], "input %q", in)
		}
	})
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Earthquake", CategoryEarthquake.Label())
	assert.Equal(t, "Unspecified", CategoryUnspecified.Label())
	assert.Equal(t, "Unspecified", Category("bogus").Label())
}

func TestParseAlertLevel(t *testing.T) {
	assert.Equal(t, AlertGreen, ParseAlertLevel("Green"))
	assert.Equal(t, AlertOrange, ParseAlertLevel("ORANGE"))
	assert.Equal(t, AlertRed, ParseAlertLevel("red"))

	// Unknown levels default to green so the three-level invariant holds.
	assert.Equal(t, AlertGreen, ParseAlertLevel(""))
	assert.Equal(t, AlertGreen, ParseAlertLevel("purple"))
}

func TestEventPrimaryCountry(t *testing.T) {
	t.Run("first country wins", func(t *testing.T) {
		e := Event{Countries: []string{"Fiji", "Tonga"}, PrimaryCountryCode: "fj"}
		assert.Equal(t, "Fiji", e.PrimaryCountry())
		assert.Equal(t, []string{"Tonga"}, e.OtherCountries())
	})

	t.Run("no countries means off-shore", func(t *testing.T) {
		e := Event{}
		assert.Equal(t, OffShoreCountry, e.PrimaryCountry())
		assert.Nil(t, e.OtherCountries())
	})
}

func TestEventListLimit(t *testing.T) {
	el := EventList{{ID: 1}, {ID: 2}, {ID: 3}}

	assert.Len(t, el.Limit(2), 2)
	assert.Len(t, el.Limit(0), 0)
	assert.Len(t, el.Limit(-1), 0)
	assert.Len(t, el.Limit(10), 3)
	assert.Equal(t, 1, el.Limit(2)[0].ID)
}
