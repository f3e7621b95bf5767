// Command eto estimates daily reference evapotranspiration (ETo) for a
// grass reference crop from routine weather observations, using the
// FAO-56 equations.
//
// Usage:
//
//	eto daily --lat-deg 50.8 --altitude 100 --date 2026-07-06 \
//	  --tmin 12.3 --tmax 21.5 --rh-min 63 --rh-max 84 \
//	  --wind-kph 10 --wind-height 10 --sol-rad 22.07
//	eto hargreaves --lat-deg 45.72 --date 2026-07-15 --tmin 14.8 --tmax 26.6
//	eto solar --lat-deg -22.9 --date 2026-05-15
//
// Reports go to stdout. With --verbose, every intermediate quantity is
// also logged to stderr. Station defaults can be supplied through the
// environment; see the config package.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/eto"
	"github.com/couchcryptid/eto/convert"
	"github.com/couchcryptid/eto/internal/config"
)

var logger = newLogger(false)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "eto",
		Short: "Estimate reference evapotranspiration from daily weather observations",
		Long: `eto estimates reference evapotranspiration (ETo) for a grass
reference crop from routine weather observations, using the FAO-56
equations (Allen et al., 1998).

Station defaults for --lat-deg, --altitude and --coastal can be set in
the environment (ETO_LATITUDE_DEG, ETO_ALTITUDE_M, ETO_COASTAL) or a
.env file, so daily runs only need the day's observations.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every intermediate quantity to stderr")
	rootCmd.PersistentFlags().String("date", "", "observation date as YYYY-MM-DD (default today)")
	rootCmd.PersistentFlags().Float64("lat-deg", 0, "station latitude in decimal degrees, north positive")
	rootCmd.PersistentFlags().Float64("altitude", 0, "station altitude above sea level [m]")
	rootCmd.PersistentFlags().Bool("coastal", false, "station air mass is dominated by a large body of water")

	rootCmd.AddCommand(newDailyCmd())
	rootCmd.AddCommand(newHargreavesCmd())
	rootCmd.AddCommand(newSolarCmd())

	return rootCmd
}

func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Estimate daily ETo with the FAO-56 Penman-Monteith equation",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := resolveStation(cmd)
			if err != nil {
				return err
			}
			res, err := computeDaily(st, obsFromFlags(cmd))
			if err != nil {
				return err
			}
			logDaily(res)
			printDailyReport(st, res)
			return nil
		},
	}

	cmd.Flags().Float64("tmin", 0, "minimum air temperature [degC]")
	cmd.Flags().Float64("tmax", 0, "maximum air temperature [degC]")
	cmd.Flags().Float64("rh-min", 0, "minimum relative humidity [%]")
	cmd.Flags().Float64("rh-max", 0, "maximum relative humidity [%]")
	cmd.Flags().Float64("rh-mean", 0, "mean relative humidity [%]")
	cmd.Flags().Float64("tdew", 0, "dew point temperature [degC]")
	cmd.Flags().Float64("wind", 0, "wind speed [m/s]")
	cmd.Flags().Float64("wind-kph", 0, "wind speed [km/h], alternative to --wind")
	cmd.Flags().Float64("wind-height", 2, "anemometer height above ground [m]")
	cmd.Flags().Float64("sol-rad", 0, "measured solar radiation [MJ/m2/day]")
	cmd.Flags().Int("sunshine-hours", -1, "bright sunshine duration [whole hours]")
	cmd.Flags().Float64("shf", 0, "soil heat flux [MJ/m2/day]")
	cmd.MarkFlagRequired("tmin")
	cmd.MarkFlagRequired("tmax")

	return cmd
}

func newHargreavesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hargreaves",
		Short: "Estimate daily ETo from temperature extremes alone",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := resolveStation(cmd)
			if err != nil {
				return err
			}
			tmin, _ := cmd.Flags().GetFloat64("tmin")
			tmax, _ := cmd.Flags().GetFloat64("tmax")
			tmean := optionalFloat(cmd, "tmean")
			if math.IsNaN(tmean) {
				tmean = eto.DailyMeanT(tmin, tmax)
			}
			geom, et, err := computeHargreaves(st, tmin, tmax, tmean)
			if err != nil {
				return err
			}
			logger.Debug("solar geometry", "et_rad", geom.etRad, "daylight_h", geom.daylight)
			printHargreavesReport(st, geom, et)
			return nil
		},
	}

	cmd.Flags().Float64("tmin", 0, "minimum air temperature [degC]")
	cmd.Flags().Float64("tmax", 0, "maximum air temperature [degC]")
	cmd.Flags().Float64("tmean", 0, "mean air temperature [degC] (default midpoint of tmin and tmax)")
	cmd.MarkFlagRequired("tmin")
	cmd.MarkFlagRequired("tmax")

	return cmd
}

func newSolarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solar",
		Short: "Print the solar geometry and radiation ceiling for a date and station",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := resolveStation(cmd)
			if err != nil {
				return err
			}
			geom, err := computeSolar(st)
			if err != nil {
				return err
			}
			printSolarReport(st, geom)
			return nil
		},
	}
}

// resolveStation merges command line flags with environment defaults.
// Flags win; latitude must come from one of the two.
func resolveStation(cmd *cobra.Command) (station, error) {
	cfg, err := config.Load()
	if err != nil {
		return station{}, err
	}

	st := station{altitudeM: cfg.AltitudeM, coastal: cfg.Coastal}

	switch {
	case cmd.Flags().Changed("lat-deg"):
		st.latitudeDeg, _ = cmd.Flags().GetFloat64("lat-deg")
	case cfg.HasLatitude:
		st.latitudeDeg = cfg.LatitudeDeg
	default:
		return station{}, errors.New("latitude required: pass --lat-deg or set ETO_LATITUDE_DEG")
	}

	if cmd.Flags().Changed("altitude") {
		st.altitudeM, _ = cmd.Flags().GetFloat64("altitude")
	}
	if cmd.Flags().Changed("coastal") {
		st.coastal, _ = cmd.Flags().GetBool("coastal")
	}

	dateFlag, _ := cmd.Flags().GetString("date")
	date, err := resolveDate(dateFlag)
	if err != nil {
		return station{}, err
	}
	st.date = date
	st.doy = date.YearDay()

	return st, nil
}

func obsFromFlags(cmd *cobra.Command) dailyObs {
	tmin, _ := cmd.Flags().GetFloat64("tmin")
	tmax, _ := cmd.Flags().GetFloat64("tmax")
	windHeight, _ := cmd.Flags().GetFloat64("wind-height")
	sunshineHours, _ := cmd.Flags().GetInt("sunshine-hours")
	shf, _ := cmd.Flags().GetFloat64("shf")

	obs := dailyObs{
		tmin:          tmin,
		tmax:          tmax,
		rhMin:         optionalFloat(cmd, "rh-min"),
		rhMax:         optionalFloat(cmd, "rh-max"),
		rhMean:        optionalFloat(cmd, "rh-mean"),
		tdew:          optionalFloat(cmd, "tdew"),
		windSpeed:     optionalFloat(cmd, "wind"),
		windHeight:    windHeight,
		solRad:        optionalFloat(cmd, "sol-rad"),
		sunshineHours: sunshineHours,
		soilHeatFlux:  shf,
	}
	if kph := optionalFloat(cmd, "wind-kph"); !math.IsNaN(kph) {
		obs.windSpeed = convert.KphToMps(kph)
	}
	return obs
}

// optionalFloat reads a flag that distinguishes "not given" from zero,
// returning NaN when the flag was left unset.
func optionalFloat(cmd *cobra.Command, name string) float64 {
	if !cmd.Flags().Changed(name) {
		return math.NaN()
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return v
}

func logDaily(res dailyResult) {
	logger.Debug("atmosphere", "pressure_kpa", res.pressure, "psy_kpa_per_c", res.psy)
	logger.Debug("vapour pressure", "es_kpa", res.es, "ea_kpa", res.ea, "ea_source", res.eaSource)
	logger.Debug("wind", "u2_mps", res.u2)
	logger.Debug("solar radiation", "rs_mj_m2_day", res.solRad, "source", res.rsSource)
	logger.Debug("net radiation", "shortwave", res.netShortwave, "longwave", res.netLongwave, "net", res.netRad)
}

func printHeader(title string, st station) {
	site := "inland"
	if st.coastal {
		site = "coastal"
	}
	fmt.Printf("%s for %s (day %d)\n", title, st.date.Format("2006-01-02"), st.doy)
	fmt.Printf("Station: %.2f deg, %.0f m, %s\n\n", st.latitudeDeg, st.altitudeM, site)
}

func printQuantity(name string, value float64, unit string) {
	fmt.Printf("  %-38s %12.4f %s\n", name, value, unit)
}

func printSolarReport(st station, geom solarGeometry) {
	printHeader("Solar geometry", st)
	printQuantity("Solar declination", geom.solDec, "rad")
	printQuantity("Sunset hour angle", geom.sunsetHour, "rad")
	printQuantity("Inverse relative earth-sun distance", geom.invRelDist, "")
	printQuantity("Daylight hours", geom.daylight, "h")
	printQuantity("Extraterrestrial radiation", geom.etRad, "MJ/m2/day")
	printQuantity("Clear-sky radiation", geom.clearSkyRad, "MJ/m2/day")
}

func printDailyReport(st station, res dailyResult) {
	printHeader("Reference evapotranspiration", st)
	printQuantity("Atmospheric pressure", res.pressure, "kPa")
	printQuantity("Psychrometric constant", res.psy, "kPa/degC")
	printQuantity("Mean temperature", res.tmean, "degC")
	printQuantity("Saturation vapour pressure", res.es, "kPa")
	printQuantity("Actual vapour pressure ("+res.eaSource+")", res.ea, "kPa")
	printQuantity("Saturation curve slope", res.deltaSvp, "kPa/degC")
	printQuantity("Wind speed at 2 m", res.u2, "m/s")
	printQuantity("Extraterrestrial radiation", res.geometry.etRad, "MJ/m2/day")
	printQuantity("Solar radiation ("+res.rsSource+")", res.solRad, "MJ/m2/day")
	printQuantity("Net shortwave radiation", res.netShortwave, "MJ/m2/day")
	printQuantity("Net longwave radiation", res.netLongwave, "MJ/m2/day")
	printQuantity("Net radiation", res.netRad, "MJ/m2/day")
	fmt.Printf("\n  ETo  %.2f mm/day\n", res.et)
}

func printHargreavesReport(st station, geom solarGeometry, et float64) {
	printHeader("Hargreaves evapotranspiration", st)
	printQuantity("Extraterrestrial radiation", geom.etRad, "MJ/m2/day")
	printQuantity("Daylight hours", geom.daylight, "h")
	fmt.Printf("\n  ETo  %.2f mm/day\n", et)
}
