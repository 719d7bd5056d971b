package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/xrinput"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of xrinput",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "xrinput version %s\n", strings.TrimSpace(xrinput.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
