package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	involute "github.com/chazu/involute"
)

var (
	scriptFormat string
	scriptOut    string
)

// scriptCmd evaluates a Lisp script of spline cases.
var scriptCmd = &cobra.Command{
	Use:   "script <file.lisp>",
	Short: "Run a spline script",
	Long: `Evaluate a Lisp script that defines spline cases with the (spline ...),
(profile ...) and (report ...) builtins. The default output is the text
report of every case in script order; --format json emits the full
session including profile meshes for profiled cases.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runScript(args[0])
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)

	scriptCmd.Flags().StringVar(&scriptFormat, "format", "report", "Output format: report, json")
	scriptCmd.Flags().StringVarP(&scriptOut, "output", "o", "", "Output file path (default: stdout)")
}

func runScript(path string) (err error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	app := involute.NewApp()
	result := app.Evaluate(string(source))

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			if e.Line > 0 {
				fmt.Fprintf(os.Stderr, "%s:%d: %s\n", path, e.Line, e.Message)
			} else {
				fmt.Fprintf(os.Stderr, "%s: %s\n", path, e.Message)
			}
		}
		return fmt.Errorf("script failed with %d error(s)", len(result.Errors))
	}

	w, closer, err := outputWriter(scriptOut)
	if err != nil {
		return err
	}
	defer closeOutput(closer, &err)

	switch scriptFormat {
	case "report":
		for _, c := range result.Cases {
			if _, err := fmt.Fprintln(w, c.Report); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		return fmt.Errorf("unknown format: %s (supported: report, json)", scriptFormat)
	}
}
