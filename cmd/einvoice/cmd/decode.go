package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/einvoice/internal/model"
	"github.com/rezonia/einvoice/internal/processor"
	"github.com/rezonia/einvoice/internal/signature"
)

const defaultTimeout = time.Minute

var (
	outputFile string
	timeout    time.Duration
)

var decodeCmd = &cobra.Command{
	Use:   "decode [files...]",
	Short: "Decode invoice documents into the invoice model",
	Long: `Decode one or more CII or UBL documents, or hybrid PDF invoices, and
print the invoice model as JSON.

Examples:
  einvoice decode invoice.xml
  einvoice decode factur-x.pdf -o invoice.json
  einvoice decode invoices/ -f table`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	decodeCmd.Flags().DurationVar(&timeout, "timeout", defaultTimeout, "Processing timeout per file")
}

// DecodeResult holds the result of decoding a single file
type DecodeResult struct {
	File     string         `json:"file"`
	JobID    string         `json:"job_id,omitempty"`
	Tag      *signature.Tag `json:"tag,omitempty"`
	Invoice  *model.Invoice `json:"invoice,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
	Error    string         `json:"error,omitempty"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to decode")
	}
	printVerbose(cmd, "Found %d files to decode\n", len(files))

	pipeline := processor.NewPipeline(processor.WithLogger(log))
	results := make([]*DecodeResult, 0, len(files))
	failed := 0
	for _, file := range files {
		printVerbose(cmd, "Decoding: %s\n", file)
		result := decodeFile(cmd.Context(), pipeline, file)
		if result.Error != "" {
			failed++
			printVerbose(cmd, "  Error: %s\n", result.Error)
		}
		results = append(results, result)
	}

	err = withOutput(outputFile, cmd.OutOrStdout(), func(w io.Writer) error {
		switch outputFormat {
		case "json":
			if len(results) == 1 {
				return writeJSON(w, results[0])
			}
			return writeJSON(w, results)
		case "table":
			return decodeTable(w, results)
		default:
			return fmt.Errorf("unsupported output format: %s", outputFormat)
		}
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to decode", failed, len(files))
	}
	return nil
}

func decodeFile(ctx context.Context, pipeline *processor.Pipeline, file string) *DecodeResult {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := &DecodeResult{File: file}
	data, err := os.ReadFile(file)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read file: %v", err)
		return result
	}

	res := pipeline.ProcessBytes(ctx, data)
	result.JobID = res.JobID
	result.Warnings = res.Warnings
	if res.Error != nil {
		result.Error = res.Error.Error()
		return result
	}
	result.Tag = &res.Tag
	result.Invoice = res.Invoice
	return result
}

func decodeTable(w io.Writer, results []*DecodeResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tNUMBER\tDATE\tPROFILE\tSELLER\tTOTAL\tCURRENCY")
	fmt.Fprintln(tw, "----\t------\t----\t-------\t------\t-----\t--------")

	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\tERROR: %s\t\t\t\t\t\n", r.File, r.Error)
			continue
		}

		inv := r.Invoice
		date, seller, total := "", "", ""
		if inv.InvoiceDate != nil {
			date = inv.InvoiceDate.Format("2006-01-02")
		}
		if inv.Seller != nil {
			seller = inv.Seller.Name
		}
		if inv.GrandTotalAmount != nil {
			total = inv.GrandTotalAmount.StringFixed(2)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.File,
			inv.InvoiceNo,
			date,
			r.Tag.Profile,
			seller,
			total,
			inv.Currency,
		)
	}

	return tw.Flush()
}
