//go:build !playerid_noonline

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	dErrors "playerid/pkg/domain-errors"
	"playerid/pkg/playerid"
)

// lookupConcurrency caps in-flight directory requests from one invocation.
const lookupConcurrency = 4

type directoryResolver = playerid.Resolver

func addOnlineCommands(root *cobra.Command, opts *Options) {
	root.AddCommand(newOnlineCmd(opts))
	root.AddCommand(newNameCmd(opts))
}

func newOnlineCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "online <username>...",
		Short: "Resolve usernames to online identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			records := make([]Record, len(args))

			var g errgroup.Group
			g.SetLimit(lookupConcurrency)
			for i, name := range args {
				g.Go(func() error {
					id, err := playerid.FromOnlineUsername(ctx, opts.resolver, name)
					if err != nil {
						opts.logger.WarnContext(ctx, "online lookup failed",
							slog.String("username", name),
							slog.String("code", string(dErrors.CodeOf(err))),
						)
						records[i] = errorRecord(name, err)
						return err
					}
					records[i] = Record{Username: name, ID: id.String(), Mode: modeOf(id)}
					return nil
				})
			}
			err := g.Wait()

			NewOutput(opts.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(records...)
			if err != nil {
				return fmt.Errorf("one or more lookups failed: %w", err)
			}
			return nil
		},
	}
}

func newNameCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "name <id>",
		Short: "Resolve an online identifier to its current username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := playerid.Parse(args[0])
			if err != nil {
				return err
			}
			if !p.Online() {
				return dErrors.New(dErrors.CodeInvalidInput,
					fmt.Sprintf("%s is an offline identifier; it has no directory entry", p))
			}

			name, err := playerid.MustOnline(p).Username(cmd.Context(), opts.resolver)
			if err != nil {
				return err
			}
			NewOutput(opts.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(Record{Username: name, ID: p.String()})
			return nil
		},
	}
}
