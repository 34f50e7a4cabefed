package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rezonia/einvoice/internal/config"
	"github.com/rezonia/einvoice/internal/logger"
	"github.com/rezonia/einvoice/internal/model"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	envFile      string
	logLevel     string
	logFormat    string

	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "einvoice",
	Short: "Read and write ZUGFeRD, Factur-X and XRechnung invoices",
	Long: `einvoice converts between the invoice model and the XML documents of the
German and French e-invoicing standards.

Supports:
  - ZUGFeRD 1.0, ZUGFeRD 2.0, ZUGFeRD 2.1-2.3 / Factur-X
  - Profiles MINIMUM to EXTENDED, XRechnung and EREPORTING
  - UN/CEFACT CII and OASIS UBL syntax
  - Hybrid PDF/A-3 invoices (decode only)

Examples:
  # Identify a document
  einvoice detect invoice.xml

  # Decode an XML or PDF invoice to JSON
  einvoice decode factur-x.pdf -o invoice.json

  # Write an XRechnung in UBL syntax from JSON
  einvoice encode invoice.json --profile xrechnung --dialect ubl

  # List the producible combinations
  einvoice profiles`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file with EINVOICE_* settings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (env: EINVOICE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format, json or console (env: EINVOICE_LOG_FORMAT)")
}

// setup loads the configuration and builds the logger. Flags win over the
// environment.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(envFile)
	if err != nil {
		return err
	}
	cfg = loaded

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if verbose && logLevel == "" {
		cfg.Log.Level = "debug"
	}

	log, err = logger.New(cfg.Log)
	return err
}

// target resolves the output triple from flags, falling back to the
// configured defaults
func target(cmd *cobra.Command) (model.Version, model.Profile, model.Dialect, error) {
	v, p, d := cfg.Codec.Version, cfg.Codec.Profile, cfg.Codec.Dialect
	var err error

	if f := cmd.Flags().Lookup("version"); f != nil && f.Changed {
		if v, err = model.ParseVersion(f.Value.String()); err != nil {
			return v, p, d, err
		}
	}
	if f := cmd.Flags().Lookup("profile"); f != nil && f.Changed {
		if p, err = model.ParseProfile(f.Value.String()); err != nil {
			return v, p, d, err
		}
	}
	if f := cmd.Flags().Lookup("dialect"); f != nil && f.Changed {
		if d, err = model.ParseDialect(f.Value.String()); err != nil {
			return v, p, d, err
		}
	}
	return v, p, d, nil
}

func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String("version", "", "Schema version: 1.0, 2.0, 2.3 (env: EINVOICE_VERSION)")
	cmd.Flags().String("profile", "", "Profile, e.g. basic, comfort, extended, xrechnung (env: EINVOICE_PROFILE)")
	cmd.Flags().String("dialect", "", "Syntax: cii or ubl (env: EINVOICE_DIALECT)")
}

func printVerbose(cmd *cobra.Command, format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
	}
}
