//go:build playerid_noonline

package cli

import "github.com/spf13/cobra"

// directoryResolver is unused without online support.
type directoryResolver = any

func addOnlineCommands(*cobra.Command, *Options) {}
