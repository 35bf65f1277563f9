package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/qiblatech/minaret/internal/prayer"
)

func runToday(cmd *cobra.Command, args []string) error {
	coord, method, loc, clockFace, err := resolveFlags(cmd)
	if err != nil {
		return err
	}

	now := time.Now().In(loc)
	set := prayer.ComputeSet(coord, now, method, loc)
	next := prayer.NextPrayer(set, now)

	if flagJSON {
		return printTodayJSON(set, next, clockFace)
	}

	fmt.Println()
	fmt.Printf("  %s  (%.4f, %.4f)  %s\n", now.Format("02 Jan 2006"), coord.Latitude, coord.Longitude, method)
	fmt.Println()
	for _, e := range set.Events() {
		line := fmt.Sprintf("  %-8s %s", e.Name, e.Time.Format(clockFace))
		if e.Name == next.Name && e.Time.Equal(next.Time) {
			line += fmt.Sprintf("  <- next in %s", prayer.FormatRemaining(next.Remaining))
		}
		fmt.Println(line)
	}
	fmt.Println()
	return nil
}

type todayJSON struct {
	Date    string            `json:"date"`
	Method  string            `json:"method"`
	Timings map[string]string `json:"timings"`
	Next    nextJSON          `json:"next"`
}

type nextJSON struct {
	Prayer    string `json:"prayer"`
	Time      string `json:"time"`
	Remaining string `json:"remaining"`
}

func printTodayJSON(set prayer.Set, next prayer.Next, clockFace string) error {
	timings := make(map[string]string)
	for _, e := range set.Events() {
		timings[strings.ToLower(e.Name)] = e.Time.Format(clockFace)
	}

	out := todayJSON{
		Date:    set.Day.Format("2006-01-02"),
		Method:  string(set.Method),
		Timings: timings,
		Next: nextJSON{
			Prayer:    strings.ToLower(next.Name),
			Time:      next.Time.Format(clockFace),
			Remaining: prayer.FormatRemaining(next.Remaining),
		},
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
