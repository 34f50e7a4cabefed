package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/einvoice/internal/capability"
	"github.com/rezonia/einvoice/internal/dialect"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the producible version, profile and dialect combinations",
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

// ProfileRow is one producible combination
type ProfileRow struct {
	Dialect     string `json:"dialect"`
	Version     string `json:"version"`
	Profile     string `json:"profile"`
	GuidelineID string `json:"guideline_id"`
}

func runProfiles(cmd *cobra.Command, args []string) error {
	var rows []ProfileRow
	for _, c := range capability.Combinations() {
		id, _ := dialect.GuidelineID(c.Version, c.Profile)
		rows = append(rows, ProfileRow{
			Dialect:     c.Dialect.String(),
			Version:     c.Version.String(),
			Profile:     c.Profile.String(),
			GuidelineID: id,
		})
	}

	switch outputFormat {
	case "json":
		return writeJSON(cmd.OutOrStdout(), rows)
	case "table":
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "DIALECT\tVERSION\tPROFILE\tGUIDELINE")
		fmt.Fprintln(tw, "-------\t-------\t-------\t---------")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Dialect, r.Version, r.Profile, r.GuidelineID)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}
