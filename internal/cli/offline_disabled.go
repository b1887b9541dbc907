//go:build playerid_nooffline

package cli

import "github.com/spf13/cobra"

func addOfflineCommands(*cobra.Command, *Options) {}
