package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/einvoice/internal/parser/pdf"
	"github.com/rezonia/einvoice/internal/processor"
	"github.com/rezonia/einvoice/internal/signature"
)

var detectCmd = &cobra.Command{
	Use:   "detect [files...]",
	Short: "Identify version, profile and dialect of invoice files",
	Long: `Identify invoice documents without decoding them.

For PDF files the embedded invoice XML is located first.

Examples:
  einvoice detect invoice.xml
  einvoice detect invoices/ -f table`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

// DetectResult is the detection outcome for one file
type DetectResult struct {
	File       string         `json:"file"`
	Format     string         `json:"format"`
	Attachment string         `json:"attachment,omitempty"`
	Tag        *signature.Tag `json:"tag,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found")
	}

	extractor := pdf.NewExtractor(pdf.WithLogger(log))
	results := make([]*DetectResult, 0, len(files))
	for _, file := range files {
		printVerbose(cmd, "Detecting: %s\n", file)
		results = append(results, detectFile(cmd, extractor, file))
	}

	switch outputFormat {
	case "json":
		return writeJSON(cmd.OutOrStdout(), results)
	case "table":
		return detectTable(cmd.OutOrStdout(), results)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

func detectFile(cmd *cobra.Command, extractor *pdf.Extractor, file string) *DetectResult {
	result := &DetectResult{File: file}

	data, err := os.ReadFile(file)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read file: %v", err)
		return result
	}

	format := processor.DetectFormat(data)
	result.Format = format.String()
	switch format {
	case processor.FormatXML:
	case processor.FormatPDF:
		content, name, err := extractor.ExtractInvoiceXML(cmd.Context(), bytes.NewReader(data))
		if err != nil {
			result.Error = err.Error()
			return result
		}
		result.Attachment = name
		data = content
	default:
		result.Error = "unsupported file format"
		return result
	}

	tag, err := signature.DetectVersion(data)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Tag = &tag
	return result
}

func detectTable(w io.Writer, results []*DetectResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tFORMAT\tDIALECT\tVERSION\tPROFILE\tGUIDELINE")
	fmt.Fprintln(tw, "----\t------\t-------\t-------\t-------\t---------")

	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\t%s\tERROR: %s\t\t\t\n", r.File, r.Format, r.Error)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.File,
			r.Format,
			r.Tag.Dialect,
			r.Tag.Version,
			r.Tag.Profile,
			r.Tag.GuidelineID,
		)
	}

	return tw.Flush()
}
