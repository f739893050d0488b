// Command categorize assigns categories to material names offline, using the
// same engine as POST /categorize.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"ai-processor/internal/categorize"
)

type result struct {
	MaterialType  string  `json:"material_type"`
	Category      string  `json:"category"`
	Confidence    float64 `json:"confidence"`
	AICategorized bool    `json:"ai_categorized"`
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var (
		format    string
		fromStdin bool
	)
	cmd := &cobra.Command{
		Use:   "categorize [material...]",
		Short: "Categorize material names",
		Long: `Categorize assigns each material name a category and confidence using
keyword and fuzzy matching against the built-in category table.

Example:
  categorize "steel beam" "cotton shirt"
  categorize --format table "glass jar"
  cat materials.txt | categorize --stdin`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if fromStdin {
				lines, err := readLines(in)
				if err != nil {
					return err
				}
				names = append(names, lines...)
			}
			if len(names) == 0 {
				return fmt.Errorf("no materials given")
			}
			results := run(categorize.NewDefaultEngine(), names)
			switch format {
			case "json":
				return writeJSON(out, results)
			case "table":
				return writeTable(out, results)
			default:
				return fmt.Errorf("unknown format %q (want json or table)", format)
			}
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.Flags().StringVar(&format, "format", "json", "output format (json, table)")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read material names from stdin, one per line")
	return cmd
}

func run(engine *categorize.Engine, names []string) []result {
	out := make([]result, 0, len(names))
	for _, name := range names {
		category, confidence := engine.Categorize(name)
		out = append(out, result{
			MaterialType:  name,
			Category:      category,
			Confidence:    confidence,
			AICategorized: categorize.IsAICategorized(confidence),
		})
	}
	return out
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

func writeJSON(w io.Writer, results []result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeTable(w io.Writer, results []result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MATERIAL\tCATEGORY\tCONFIDENCE\tAI")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%t\n", r.MaterialType, r.Category, r.Confidence, r.AICategorized)
	}
	return tw.Flush()
}
