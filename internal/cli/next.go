package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/qiblatech/minaret/internal/prayer"
)

var flagActionable bool

func newNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		Long:  "Display the next upcoming prayer with a countdown, rolling over to tomorrow's Fajr after Isha. Suited for status bars.",
		RunE:  runNext,
	}

	cmd.Flags().BoolVar(&flagActionable, "actionable", false, "Skip Sunrise and report the next actionable prayer")

	return cmd
}

func runNext(cmd *cobra.Command, args []string) error {
	coord, method, loc, clockFace, err := resolveFlags(cmd)
	if err != nil {
		return err
	}

	now := time.Now().In(loc)
	set := prayer.ComputeSet(coord, now, method, loc)

	next := prayer.NextPrayer(set, now)
	if flagActionable && !prayer.Actionable(next.Name) {
		next = prayer.NextPrayer(set, next.Time)
	}

	if flagJSON {
		out := nextJSON{
			Prayer:    strings.ToLower(next.Name),
			Time:      next.Time.Format(clockFace),
			Remaining: prayer.FormatRemaining(next.Remaining),
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s %s (in %s)\n", next.Name, next.Time.Format(clockFace), prayer.FormatRemaining(next.Remaining))
	return nil
}
