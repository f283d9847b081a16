package main

import (
	"github.com/spf13/cobra"

	"flowboard/internal/codec"
)

func newElementsCommand(opts *globalOptions) *cobra.Command {
	var (
		format   string
		seedPath string
	)

	cmd := &cobra.Command{
		Use:   "elements",
		Short: "Print the seed element sequence",
		Long:  `Prints the element sequence the diagram starts from, as json or yaml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := codec.ForFormat(format)
			if err != nil {
				return err
			}

			path := seedPath
			if !cmd.Flags().Changed("seed") {
				cfg, _, err := loadConfig(opts)
				if err != nil {
					return err
				}
				path = cfg.Seed.Path
			}

			els, err := seedFunc(path)()
			if err != nil {
				return err
			}
			return c.Export(els, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&seedPath, "seed", "s", "", "Seed file (.json or .yaml)")

	return cmd
}
