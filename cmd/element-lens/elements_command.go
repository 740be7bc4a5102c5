package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/element-lens/internal/elements"
)

func newElementsCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "elements",
		Short:       "List the element symbols the lookup recognizes",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			recs := elements.Default().All()
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(recs)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderElements(recs))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

func renderElements(recs []elements.Record) string {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{strconv.Itoa(r.AtomicNumber), r.Symbol, r.Name})
	}
	return renderTable(
		[]string{"#", "Symbol", "Name"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft},
	)
}
