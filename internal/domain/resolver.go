package domain

import (
	"context"
	"image"
)

// CountryCodeResolver resolves coordinates to an ISO 3166-1 alpha-2 country
// code. Used as a fallback when a feed entry names countries but carries no
// usable ISO code.
type CountryCodeResolver interface {
	CountryCode(ctx context.Context, lat, lon float64) (string, error)
}

// FlagSource fetches the flag image for an alpha-2 country code. The viewer
// treats failures as non-fatal and renders a placeholder instead.
type FlagSource interface {
	Flag(ctx context.Context, code string) (image.Image, error)
}
