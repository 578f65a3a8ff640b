// Copyright (c) 2026 Keymaster Team
// Cardinput - credit card input field
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/toeirei/cardinput/internal/cardfield"
)

type formatOutput struct {
	Kind     string `yaml:"kind"`
	Display  string `yaml:"display"`
	Reported string `yaml:"reported"`
	Valid    bool   `yaml:"valid"`
	EndInput bool   `yaml:"end_input"`
	Changed  bool   `yaml:"changed"`
	Border   string `yaml:"border"`
}

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <input>",
		Short: "Run one formatting pass and print the result",
		Long: `Formats input the way the card form does for the given field kind and
prints display text, reported value, validity and whether focus would move
on. --previous is the text the field held before this change.`,
		Example: `  cardinput format --kind card-number 4111111111111111
  cardinput format --kind security-code --previous 12 123`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("kind")
			kind, err := cardfield.ParseKind(name)
			if err != nil {
				return err
			}
			previous, _ := cmd.Flags().GetString("previous")

			res := cardfield.Format(kind, previous, args[0])
			return writeYAML(cmd.OutOrStdout(), formatOutput{
				Kind:     kind.String(),
				Display:  res.Display,
				Reported: res.Reported,
				Valid:    res.Valid,
				EndInput: res.EndInput,
				Changed:  res.Changed,
				Border:   cardfield.Border(kind, res.Display).String(),
			})
		},
	}

	cmd.Flags().StringP("kind", "k", cardfield.CardNumber.String(), "field kind (card-number, card-holder, expiration-date, security-code)")
	cmd.Flags().String("previous", "", "text before this change")
	return cmd
}
