// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/cardinput/internal/cardfield"
)

// now is replaced in tests.
var now = time.Now

type pickerOptions struct {
	Months []string `yaml:"months"`
	Years  []string `yaml:"years"`
}

type pickerSelection struct {
	MonthIndex int    `yaml:"month_index"`
	YearIndex  int    `yaml:"year_index"`
	Display    string `yaml:"display"`
	Reported   string `yaml:"reported"`
}

func newExpiryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expiry",
		Short: "Show the expiration date picker",
		Long: `Without flags, prints the months and years the picker offers today.
--select composes the value for a month and year index, --index finds the
indices of a value such as 12/30.`,
		Example: `  cardinput expiry
  cardinput expiry --select 11,4
  cardinput expiry --index 12/30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			picker := cardfield.NewPicker(now())
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("select") {
				indices, err := cmd.Flags().GetIntSlice("select")
				if err != nil {
					return err
				}
				if len(indices) != 2 {
					return fmt.Errorf("--select wants MONTH,YEAR indices, got %d values", len(indices))
				}
				return writeSelection(cmd, picker, indices[0], indices[1])
			}

			if value, _ := cmd.Flags().GetString("index"); value != "" {
				m, y, err := picker.IndexOf(value)
				if err != nil {
					return err
				}
				return writeSelection(cmd, picker, m, y)
			}

			months, years := picker.Options()
			return writeYAML(out, pickerOptions{Months: months, Years: years})
		},
	}

	cmd.Flags().IntSlice("select", nil, "month and year index, e.g. 11,4")
	cmd.Flags().String("index", "", "expiration value to look up (MM/YY, MM/YYYY or MMYY)")
	cmd.MarkFlagsMutuallyExclusive("select", "index")
	return cmd
}

func writeSelection(cmd *cobra.Command, picker *cardfield.Picker, month, year int) error {
	sel, err := picker.Select(month, year)
	if err != nil {
		return err
	}
	return writeYAML(cmd.OutOrStdout(), pickerSelection{
		MonthIndex: month,
		YearIndex:  year,
		Display:    sel.Display(),
		Reported:   sel.Reported(),
	})
}
