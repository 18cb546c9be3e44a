// Command rangecard prints a range card for a configured load: one line
// per range step with velocity, flight time, energy, drop and windage.
//
// Configuration is read from rangecard.yaml in the working directory;
// every key has a default so the command runs without a file.
package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	trajectory "github.com/truescope/go-trajectory"
	"github.com/truescope/go-trajectory/bmath/unit"
	"github.com/truescope/go-trajectory/drag"
)

func setDefaults() {
	viper.SetDefault("projectile.dragTable", "g1")
	viper.SetDefault("projectile.ballisticCoefficient", 0.465)
	viper.SetDefault("projectile.muzzleVelocityFps", 2750.0)
	viper.SetDefault("projectile.weightGrains", 175.0)
	viper.SetDefault("projectile.diameterInches", 0.308)
	viper.SetDefault("projectile.lengthInches", 1.24)

	viper.SetDefault("rifle.twistInches", 11.24)
	viper.SetDefault("rifle.twistDirection", "right")
	viper.SetDefault("rifle.sightHeightInches", 2.0)
	viper.SetDefault("rifle.zeroDistanceYards", 100.0)

	viper.SetDefault("environment.altitudeFeet", 0.0)
	viper.SetDefault("environment.temperatureF", 59.0)
	viper.SetDefault("environment.pressureInHg", 29.92)
	viper.SetDefault("environment.humidityPercent", 50.0)

	viper.SetDefault("wind.speedMph", 0.0)
	viper.SetDefault("wind.headingDegrees", 90.0)

	viper.SetDefault("card.startYards", 100.0)
	viper.SetDefault("card.stopYards", 1000.0)
	viper.SetDefault("card.stepYards", 100.0)
	viper.SetDefault("card.timeStepMicros", 0)

	viper.SetDefault("log.level", "info")
}

func dragTable(name string) (drag.Table, error) {
	switch strings.ToLower(name) {
	case "g1":
		return drag.G1(), nil
	case "g7":
		return drag.G7(), nil
	default:
		return nil, fmt.Errorf("unknown drag table %q", name)
	}
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	setDefaults()
	viper.SetConfigName("rangecard")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			log.Warn().Msg("no rangecard.yaml found, using defaults")
		} else {
			log.Fatal().Err(err).Msg("failed to read configuration")
		}
	}

	if level, err := zerolog.ParseLevel(viper.GetString("log.level")); err == nil {
		log = log.Level(level)
	}

	table, err := dragTable(viper.GetString("projectile.dragTable"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	builder := trajectory.NewBuilder().
		WithLogger(log).
		SetDragTable(table).
		SetBallisticCoefficient(viper.GetFloat64("projectile.ballisticCoefficient")).
		SetMuzzleVelocity(unit.MustCreate(viper.GetFloat64("projectile.muzzleVelocityFps"), unit.VelocityFPS)).
		SetWeight(unit.MustCreate(viper.GetFloat64("projectile.weightGrains"), unit.WeightGrain)).
		SetDiameter(unit.MustCreate(viper.GetFloat64("projectile.diameterInches"), unit.DistanceInch)).
		SetLength(unit.MustCreate(viper.GetFloat64("projectile.lengthInches"), unit.DistanceInch)).
		SetSightHeight(unit.MustCreate(viper.GetFloat64("rifle.sightHeightInches"), unit.DistanceInch)).
		SetZeroDistance(unit.MustCreate(viper.GetFloat64("rifle.zeroDistanceYards"), unit.DistanceYard)).
		SetAltitude(unit.MustCreate(viper.GetFloat64("environment.altitudeFeet"), unit.DistanceFoot)).
		SetTemperature(unit.MustCreate(viper.GetFloat64("environment.temperatureF"), unit.TemperatureFahrenheit)).
		SetPressure(unit.MustCreate(viper.GetFloat64("environment.pressureInHg"), unit.PressureInHg)).
		SetHumidity(viper.GetFloat64("environment.humidityPercent"))

	if twist := viper.GetFloat64("rifle.twistInches"); twist > 0 {
		direction := trajectory.TwistRight
		if strings.EqualFold(viper.GetString("rifle.twistDirection"), "left") {
			direction = trajectory.TwistLeft
		}
		builder.SetTwist(unit.MustCreate(twist, unit.DistanceInch), direction)
	}
	if speed := viper.GetFloat64("wind.speedMph"); speed > 0 {
		builder.SetWind(
			unit.MustCreate(speed, unit.VelocityMPH),
			unit.MustCreate(viper.GetFloat64("wind.headingDegrees"), unit.AngularDegree))
	}

	input, err := builder.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid shot configuration")
	}
	log.Info().
		Str("zeroAngle", input.ZeroAngle().Convert(unit.AngularMOA).String()).
		Float64("stability", input.StabilityFactor()).
		Msg("shot resolved")

	start := viper.GetFloat64("card.startYards")
	stop := viper.GetFloat64("card.stopYards")
	step := viper.GetFloat64("card.stepYards")
	if step <= 0 || stop < start {
		log.Fatal().Msg("card range must have a positive step and stop >= start")
	}
	var ranges []unit.Distance
	for r := start; r <= stop+step/2; r += step {
		ranges = append(ranges, unit.MustCreate(r, unit.DistanceYard))
	}

	opts := trajectory.Options{
		TimeStep: time.Duration(viper.GetInt("card.timeStepMicros")) * time.Microsecond,
	}
	samples := trajectory.Solve(input, ranges, opts)

	w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Range\tVelocity\tTime\tEnergy\tDrop\tDrop\tWind\tWind\t")
	fmt.Fprintln(w, "(yd)\t(fps)\t(s)\t(ft·lb)\t(in)\t(MOA)\t(in)\t(MOA)\t")
	for _, s := range samples {
		if s.Reason != trajectory.StopNone {
			fmt.Fprintf(w, "\t\t\t\t\t\t\t%s\t\n", s.Reason)
			break
		}
		fmt.Fprintf(w, "%.0f\t%.0f\t%.3f\t%.0f\t%.1f\t%.2f\t%.1f\t%.2f\t\n",
			s.Range.In(unit.DistanceYard),
			s.Velocity.In(unit.VelocityFPS),
			s.Time.TotalSeconds(),
			s.Energy.In(unit.EnergyFootPound),
			s.Elevation.In(unit.DistanceInch),
			correctionMOA(s.Elevation, s.Range),
			s.Deflection.In(unit.DistanceInch),
			correctionMOA(s.Deflection, s.Range))
	}
	if err := w.Flush(); err != nil {
		log.Fatal().Err(err).Msg("failed to write range card")
	}
}

// correctionMOA converts a linear offset at a given range into the sight
// adjustment in minutes of angle.
func correctionMOA(offset, distance unit.Distance) float64 {
	d := distance.In(unit.DistanceFoot)
	if d <= 0 {
		return 0
	}
	angle := math.Atan(offset.In(unit.DistanceFoot) / d)
	return unit.MustCreate(angle, unit.AngularRadian).In(unit.AngularMOA)
}
