package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var flagConfig string
var flagJSON bool

var rootCmd = &cobra.Command{
	Use:   appName + " [file]",
	Short: "Evaluate a tab-delimited spreadsheet",
	Long: "Evaluate a tab-delimited spreadsheet read from a file or stdin.\n\n" +
		"The first input line declares the dimensions (`rows cols`); the rest\n" +
		"are tab-delimited cells. A cell is a positive number, a string\n" +
		"literal starting with ', empty, or a formula starting with =\n" +
		"(flat left-to-right arithmetic over numbers and cell references,\n" +
		"no precedence). Malformed cells evaluate to their error code.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := LoadConfig(flagConfig)
		if err != nil {
			return err
		}

		var input io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			input = f
		}

		return EvaluateTable(input, cmd.OutOrStdout(), cmd.ErrOrStderr(), flagJSON, config.MaxReferenceDepth)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to the YAML config file")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "render the evaluated grid as JSON keyed by cell id")

	rootCmd.AddCommand(serveCmd)
}
