//go:build !playerid_nooffline

package cli

import (
	"github.com/spf13/cobra"

	"playerid/pkg/playerid"
)

func addOfflineCommands(root *cobra.Command, opts *Options) {
	root.AddCommand(newOfflineCmd(opts))
}

func newOfflineCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "offline <username>...",
		Short: "Derive offline identifiers from usernames",
		Long:  "Derive offline identifiers. No network access; usernames are used byte for byte.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := make([]Record, 0, len(args))
			for _, name := range args {
				id := playerid.FromOfflineUsername(name)
				records = append(records, Record{Username: name, ID: id.String(), Mode: modeOf(id)})
			}
			NewOutput(opts.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(records...)
			return nil
		},
	}
}
