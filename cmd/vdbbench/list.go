package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dase955/VectorDBBench/cases"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered benchmark cases in catalog order",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tIDENTIFIER\tLABEL\tNAME")

		for _, id := range cases.ListIdentifiers() {
			c, err := cases.Resolve(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", int(id), id, c.Label, c.Name)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
