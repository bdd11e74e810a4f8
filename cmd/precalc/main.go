package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/matheusvprentacar-blip/precalc/internal/calculation"
	"github.com/matheusvprentacar-blip/precalc/internal/config"
	"github.com/matheusvprentacar-blip/precalc/internal/output"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "precalc",
	Short: "Precatorio restatement and withholding calculator",
	Long:  "Monetary restatement, statutory withholdings and settlement offers for court-ordered payments",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Run the full calculation pipeline on an input record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		engine := calculation.NewEngine()
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(simpleCLILogger{})
		}
		result := engine.Compute(input)

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("unsupported format: %s", format)
		}
		data, err := f.Format(result)
		if err != nil {
			return err
		}
		fmt.Print(string(data))

		if export, _ := cmd.Flags().GetBool("export"); export {
			now := time.Now()
			doc := &output.ExportDocument{GeneratedAt: now, Input: input, Result: result}
			payload, err := output.MarshalExport(doc)
			if err != nil {
				return err
			}
			name := output.ExportFilename(now)
			if err := os.WriteFile(name, payload, 0o644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Printf("\nExport gravado em %s\n", name)
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an input file without computing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			return err
		}
		fmt.Println("Input valido.")
		return nil
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "precalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func init() {
	calculateCmd.Flags().String("format", "console", "Output format: console, csv, json")
	calculateCmd.Flags().Bool("export", false, "Write the timestamped JSON audit export")
	calculateCmd.Flags().Bool("debug", false, "Log calculation degradations")
	rootCmd.AddCommand(calculateCmd, validateCmd, versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
