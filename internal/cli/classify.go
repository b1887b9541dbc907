package cli

import (
	"github.com/spf13/cobra"

	"playerid/pkg/playerid"
)

func modeOf(p playerid.PlayerID) string {
	if p.Online() {
		return "online"
	}
	return "offline"
}

func newClassifyCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <id>...",
		Short: "Report whether identifiers are online or offline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := make([]Record, 0, len(args))
			for _, arg := range args {
				p, err := playerid.Parse(arg)
				if err != nil {
					return err
				}
				records = append(records, Record{ID: p.String(), Mode: modeOf(p)})
			}
			NewOutput(opts.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(records...)
			return nil
		},
	}
}
