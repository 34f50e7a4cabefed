package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/einvoice/internal/model"
	"github.com/rezonia/einvoice/internal/writer"
)

var (
	encodeOutput string
	encodeIndent int
)

var encodeCmd = &cobra.Command{
	Use:   "encode <invoice.json>",
	Short: "Write an invoice model as CII or UBL XML",
	Long: `Read an invoice model in JSON form (as printed by decode) and write the
XML document for the chosen version, profile and dialect. Fields the
profile does not carry are dropped.

Examples:
  einvoice encode invoice.json --profile extended
  einvoice encode invoice.json --version 2.3 --profile xrechnung --dialect ubl -o xrechnung.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	addTargetFlags(encodeCmd)
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Output file (default: stdout)")
	encodeCmd.Flags().IntVar(&encodeIndent, "indent", writer.DefaultIndent, "Spaces per nesting level, negative for compact output")
}

func runEncode(cmd *cobra.Command, args []string) error {
	v, p, d, err := target(cmd)
	if err != nil {
		return err
	}

	inv, err := readInvoiceJSON(args[0])
	if err != nil {
		return err
	}

	w := writer.New(writer.WithLogger(log), writer.WithIndent(encodeIndent))
	printVerbose(cmd, "Encoding %s as %s %s %s\n", inv.InvoiceNo, d, v, p)

	return withOutput(encodeOutput, cmd.OutOrStdout(), func(out io.Writer) error {
		return w.Write(cmd.Context(), out, inv, v, p, d)
	})
}

func readInvoiceJSON(path string) (*model.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// decode prints a result envelope; accept it as well as a bare invoice
	var envelope struct {
		Invoice *model.Invoice `json:"invoice"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Invoice != nil {
		return envelope.Invoice, nil
	}

	var inv model.Invoice
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("invalid invoice JSON: %w", err)
	}
	return &inv, nil
}
