package main

import (
	"fmt"

	"github.com/cyberweblabs/propdata/internal/rates"
	"github.com/cyberweblabs/propdata/pkg/format"
	"github.com/spf13/cobra"
)

// locationsCommand prints the rate tables grouped by market tier.
func locationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the known locations and their base land rates",
		Run: func(cmd *cobra.Command, args []string) {
			table := rates.NewTable()
			for _, cluster := range table.ClusterNames() {
				fmt.Printf("--- %s ---\n", cluster)
				for _, location := range table.ClusterLocations(cluster) {
					rate, _ := table.BaseRate(location)
					fmt.Printf("%-26s %s / sqyd\n", location, format.Currency(rate))
				}
				fmt.Printf("\n")
			}
		},
	}
}
