package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/einvoice/internal/processor"
	"github.com/rezonia/einvoice/internal/writer"
)

var (
	convertOutput string
	convertIndent int
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert an invoice to another version, profile or dialect",
	Long: `Decode a CII or UBL document, or a hybrid PDF invoice, and write it again
for the chosen version, profile and dialect.

Examples:
  einvoice convert zugferd1.xml --version 2.3 --profile comfort
  einvoice convert factur-x.pdf --profile xrechnung --dialect ubl -o xrechnung.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	addTargetFlags(convertCmd)
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().IntVar(&convertIndent, "indent", writer.DefaultIndent, "Spaces per nesting level, negative for compact output")
	convertCmd.Flags().DurationVar(&timeout, "timeout", defaultTimeout, "Processing timeout")
}

func runConvert(cmd *cobra.Command, args []string) error {
	v, p, d, err := target(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	pipeline := processor.NewPipeline(processor.WithLogger(log), processor.WithIndent(convertIndent))
	out, res, err := pipeline.Convert(ctx, data, v, p, d)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		printVerbose(cmd, "  Warning: %s\n", w)
	}
	printVerbose(cmd, "Converted %s %s %s to %s %s %s\n",
		res.Tag.Dialect, res.Tag.Version, res.Tag.Profile, d, v, p)

	if convertOutput == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	return os.WriteFile(convertOutput, out, 0o644)
}
