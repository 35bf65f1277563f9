// Package cli implements the offline command-line interface. Everything here
// runs against the local computation engine and the bundled mosque dataset;
// no server or network is involved.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/qiblatech/minaret/internal/locate"
	"github.com/qiblatech/minaret/internal/model"
	"github.com/qiblatech/minaret/internal/prayer"
	"github.com/qiblatech/minaret/internal/settings"
)

// Global flags shared across all subcommands.
var (
	flagLatitude   float64
	flagLongitude  float64
	flagMethod     string
	flagTimezone   string
	flagJSON       bool
	flagTimeFormat string
)

// NewRootCmd creates the root command. The version parameter is set by the
// calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "minaret",
		Short:   "Prayer times and nearby mosques",
		Long:    "Compute daily prayer times and rank nearby mosques, entirely offline.",
		Version: version,
		// Default action: show today's prayer schedule.
		RunE:          runToday,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagLatitude, "lat", 0, "Latitude (defaults to Karachi when unset)")
	pf.Float64Var(&flagLongitude, "lon", 0, "Longitude")
	pf.StringVar(&flagMethod, "method", "", "Calculation method: MWL, ISNA, Egypt, Makkah, Karachi, Tehran")
	pf.StringVar(&flagTimezone, "timezone", "", "IANA timezone (default: local)")
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")
	pf.StringVar(&flagTimeFormat, "time-format", "12h", "Time format: 12h or 24h")

	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newMosquesCmd())
	rootCmd.AddCommand(newMethodsCmd())

	return rootCmd
}

// resolveFlags turns the global flags into the concrete inputs of a
// computation: coordinate, method, timezone, and clock layout.
func resolveFlags(cmd *cobra.Command) (model.Coordinate, prayer.Method, *time.Location, string, error) {
	latSet, lonSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lon")
	if latSet != lonSet {
		return model.Coordinate{}, "", nil, "", fmt.Errorf("--lat and --lon must be given together")
	}
	var query *model.Coordinate
	if latSet {
		query = &model.Coordinate{Latitude: flagLatitude, Longitude: flagLongitude}
	}
	coord, _ := locate.Resolve(query, settings.Defaults())

	method, err := prayer.ParseMethod(flagMethod)
	if err != nil {
		return model.Coordinate{}, "", nil, "", err
	}

	loc := time.Local
	if flagTimezone != "" {
		loc, err = time.LoadLocation(flagTimezone)
		if err != nil {
			return model.Coordinate{}, "", nil, "", fmt.Errorf("invalid timezone %q: %w", flagTimezone, err)
		}
	}

	clockFace := "3:04 PM"
	if flagTimeFormat == "24h" {
		clockFace = "15:04"
	}

	return coord, method, loc, clockFace, nil
}

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List supported calculation methods",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range prayer.Methods {
				fmt.Printf("  %-8s  %s\n", m.ID, m.Name)
			}
			return nil
		},
	}
}
