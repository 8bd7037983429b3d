package main

import (
	"fmt"
	"io"
	"os"

	"github.com/matst80/gilded-rose/pkg/common/jsoncompat"
	"github.com/matst80/gilded-rose/pkg/types"
	"github.com/spf13/cobra"
)

var (
	simulateDays int
	itemsFile    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Print the inventory for each day",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := types.DefaultItems()
		if itemsFile != "" {
			loaded, err := readItems(itemsFile)
			if err != nil {
				return err
			}
			items = loaded
		}
		return simulate(cmd.OutOrStdout(), items, simulateDays)
	},
}

func init() {
	simulateCmd.Flags().IntVarP(&simulateDays, "days", "d", 2, "number of days to simulate")
	simulateCmd.Flags().StringVarP(&itemsFile, "file", "f", "", `JSON file shaped {"items":[{"name","sell_in","quality"}]}`)
}

func readItems(fileName string) ([]types.Item, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var payload types.Items
	if err := jsoncompat.Decode(file, &payload); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", fileName, err)
	}
	if err := types.ValidateItems(payload.Items); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

func simulate(w io.Writer, items []types.Item, days int) error {
	if days < 0 {
		return fmt.Errorf("days must not be negative")
	}
	for day := 0; day <= days; day++ {
		fmt.Fprintf(w, "-------- day %d --------\n", day)
		fmt.Fprintln(w, "name, sellIn, quality")
		for _, item := range items {
			fmt.Fprintln(w, item.String())
		}
		fmt.Fprintln(w)
		items = types.UpdateInventory(items)
	}
	return nil
}
