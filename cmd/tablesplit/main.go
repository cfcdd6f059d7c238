// Package main provides the CLI entry point for tablesplit-go.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/tablesplit/tablesplit-go/pkg/tablesplit"
	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/models"
	"github.com/tablesplit/tablesplit-go/pkg/tablesplit/output"
)

var (
	templatePath string
	configPath   string
	outputPath   string
	csvDir       string
	sheetsDir    string
	overlap      float64
	pretty       bool
	quiet        bool
)

// fileConfig mirrors the optional TOML configuration file. Flags set
// on the command line take precedence over file values.
type fileConfig struct {
	Templates         string   `toml:"templates"`
	Overlap           *float64 `toml:"overlap"`
	SpecialCharacters string   `toml:"special_characters"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "tablesplit [input.xlsx]",
		Short: "Split spreadsheet sheets into tables by reference headers",
		Long: `tablesplit-go scans each sheet of an Excel workbook for the header
patterns enumerated in a reference template workbook and extracts one
table per discovered header, outputting JSON or CSV.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&templatePath, "templates", "t", "", "Reference template workbook (required unless set in config)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML configuration file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&csvDir, "csv-dir", "", "Directory for per-table CSV files")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet JSON files")
	rootCmd.Flags().Float64Var(&overlap, "overlap", tablesplit.DefaultOverlapThreshold, "Minimum header overlap percentage (0-100)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Log warnings only")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	opts := tablesplit.DefaultOptions()
	opts.OverlapThreshold = overlap

	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if templatePath == "" {
			templatePath = cfg.Templates
		}
		if cfg.Overlap != nil && !cmd.Flags().Changed("overlap") {
			opts.OverlapThreshold = *cfg.Overlap
		}
		if cfg.SpecialCharacters != "" {
			opts.SpecialCharacters = cfg.SpecialCharacters
		}
	}

	if templatePath == "" {
		return errors.New("no reference template workbook: use --templates or a config file")
	}

	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	wb, err := tablesplit.Extract(inputPath, templatePath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if csvDir == "" && sheetsDir == "" {
		fmt.Println(string(jsonData))
	}

	if csvDir != "" {
		if err := output.WriteCSVDir(wb, csvDir); err != nil {
			return fmt.Errorf("failed to write CSV files: %w", err)
		}
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func writeSheetFiles(wb *models.WorkbookTables, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, tables := range wb.Sheets {
		jsonData, err := output.SheetToJSON(tables, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, output.SafeFileName(sheetName)+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
