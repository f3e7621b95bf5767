// Package config loads station defaults for the eto command line tool
// from environment variables, honouring a .env file in the working
// directory.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/eto/convert"
	"github.com/couchcryptid/eto/validate"
)

// Config holds the observation-station defaults applied when the
// corresponding command line flags are not set.
type Config struct {
	// LatitudeDeg is the station latitude in decimal degrees, north
	// positive. HasLatitude reports whether it was configured at all;
	// there is no sensible default latitude.
	LatitudeDeg float64
	HasLatitude bool

	// AltitudeM is the station elevation above sea level in metres.
	AltitudeM float64

	// Coastal marks stations where a large body of water dominates the
	// air mass, which selects the coastal solar radiation coefficient.
	Coastal bool
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first; real environment variables win
// over it.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}

	if v := os.Getenv("ETO_LATITUDE_DEG"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ETO_LATITUDE_DEG %q: %w", v, err)
		}
		if err := validate.Latitude(convert.DegToRad(lat)); err != nil {
			return nil, fmt.Errorf("invalid ETO_LATITUDE_DEG: %w", err)
		}
		cfg.LatitudeDeg = lat
		cfg.HasLatitude = true
	}

	if v := os.Getenv("ETO_ALTITUDE_M"); v != "" {
		alt, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ETO_ALTITUDE_M %q: %w", v, err)
		}
		cfg.AltitudeM = alt
	}

	if v := os.Getenv("ETO_COASTAL"); v != "" {
		coastal, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ETO_COASTAL %q: %w", v, err)
		}
		cfg.Coastal = coastal
	}

	return cfg, nil
}
