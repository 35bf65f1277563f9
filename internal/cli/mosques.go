package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qiblatech/minaret/internal/directory"
	"github.com/qiblatech/minaret/internal/rank"
)

var flagLimit int

func newMosquesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mosques",
		Short: "Rank bundled mosques by distance",
		RunE:  runMosques,
	}

	cmd.Flags().IntVar(&flagLimit, "limit", 5, "Number of mosques to show")

	return cmd
}

func runMosques(cmd *cobra.Command, args []string) error {
	coord, _, _, _, err := resolveFlags(cmd)
	if err != nil {
		return err
	}

	ranked := rank.ByDistance(directory.Bundled(), coord)
	if flagLimit > 0 && len(ranked) > flagLimit {
		ranked = ranked[:flagLimit]
	}

	if flagJSON {
		data, err := json.MarshalIndent(ranked, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println()
	for _, m := range ranked {
		fmt.Printf("  %-8s %s\n", m.FormattedDistance, m.Name)
		if m.Address != "" {
			fmt.Printf("           %s\n", m.Address)
		}
	}
	fmt.Println()
	return nil
}
