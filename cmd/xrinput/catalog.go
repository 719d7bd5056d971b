package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/xrinput/internal/presentation/tui"
	"github.com/aretw0/xrinput/pkg/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the actions registered by xrinput",
	Run: func(cmd *cobra.Command, args []string) {
		cat := catalog.Default()

		if md, _ := cmd.Flags().GetBool("markdown"); md {
			out, err := tui.NewRenderer()(tui.CatalogMarkdown(cat))
			if err != nil {
				fmt.Printf("Error rendering catalog: %v\n", err)
				os.Exit(1)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ACTION\tBINDING\tHANDS\tKIND\tHANDLER")
		for _, s := range cat.Specs() {
			hands := make([]string, len(s.Hands))
			for i, h := range s.Hands {
				hands[i] = string(h)
			}
			handler := "-"
			if s.Dispatched() {
				handler = cat.HandlerID(s.Name)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.Name, s.BindingName, strings.Join(hands, ","), s.Kind, handler)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().Bool("markdown", false, "Render the catalog as a markdown document")
}
