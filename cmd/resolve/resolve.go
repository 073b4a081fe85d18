// Package resolve provides the resolve command, which prints resolved tokens
// and resolution diagnostics without writing output files.
package resolve

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivanyeors/solar-design-system/config"
	"github.com/ivanyeors/solar-design-system/fs"
	"github.com/ivanyeors/solar-design-system/pipeline"
	"github.com/ivanyeors/solar-design-system/token"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve [files...]",
	Short: "Resolve token references and print the results",
	Long:  `Resolve loads token files, runs the reference resolver over every scope and prints the resolved tokens with any diagnostics.`,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().String("format", "table", "Output format: table, json, css")
	Cmd.Flags().Bool("diagnostics-only", false, "Print only resolution diagnostics")
}

func run(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	format, _ := cmd.Flags().GetString("format")
	diagOnly, _ := cmd.Flags().GetBool("diagnostics-only")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	paths, err := pipeline.InputPaths(filesystem, cfg, ".", args)
	if err != nil {
		return err
	}
	pipe, err := pipeline.Resolve(filesystem, cfg, paths)
	if err != nil {
		return err
	}
	pipe.PrintDiagnostics(os.Stderr)
	if diagOnly {
		if pipe.Clean() {
			fmt.Println("all references resolved")
		}
		return nil
	}

	tokens := pipe.Merged.Tokens()
	if typeFilter != "" {
		filtered := make([]*token.Token, 0)
		for _, tok := range tokens {
			if string(tok.Type) == typeFilter {
				filtered = append(filtered, tok)
			}
		}
		tokens = filtered
	}

	switch format {
	case "json":
		return outputJSON(tokens)
	case "css":
		return outputCSS(pipe)
	default:
		return outputTable(tokens)
	}
}

func outputTable(tokens []*token.Token) error {
	for _, tok := range tokens {
		fmt.Printf("%-50s %-14s %s\n", tok.DotPath(), tok.Type, tok.Value())
	}
	return nil
}

func outputJSON(tokens []*token.Token) error {
	type tokenOutput struct {
		Path        string `json:"path"`
		Type        string `json:"type"`
		Value       string `json:"value"`
		RawValue    string `json:"rawValue,omitempty"`
		State       string `json:"state"`
		Description string `json:"description,omitempty"`
	}

	output := make([]tokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, tokenOutput{
			Path:        tok.DotPath(),
			Type:        string(tok.Type),
			Value:       tok.Value(),
			RawValue:    tok.RawValue,
			State:       tok.State.String(),
			Description: tok.Description,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputCSS prints the classified, normalized names as custom properties, the
// same identifiers the emit command writes.
func outputCSS(pipe *pipeline.Run) error {
	fmt.Println(":root {")
	for _, rec := range pipe.Records() {
		fmt.Printf("  --%s: %s;\n", rec.Name, rec.Value)
	}
	fmt.Println("}")
	return nil
}
