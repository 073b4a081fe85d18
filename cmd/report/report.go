// Package report provides the report command, which compares the current
// token files against the previous cached run without writing outputs.
package report

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivanyeors/solar-design-system/cache"
	"github.com/ivanyeors/solar-design-system/config"
	"github.com/ivanyeors/solar-design-system/fs"
	"github.com/ivanyeors/solar-design-system/pipeline"
	changereport "github.com/ivanyeors/solar-design-system/report"
)

// Cmd is the report cobra command.
var Cmd = &cobra.Command{
	Use:   "report [files...]",
	Short: "Report token changes since the last extraction",
	Long:  `Report resolves the current token files and prints what changed against the previous cached run. The cache is left untouched.`,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Report format: text, markdown")
	Cmd.Flags().String("cache-dir", ".cache", "Directory holding the run cache and token backup")
	Cmd.Flags().StringP("output", "o", "", "Write the report to this path instead of stdout")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	outPath, _ := cmd.Flags().GetString("output")

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

	store := cache.NewStore(filesystem, cacheDir)
	prevInfo, hadPrev, err := store.Load()
	if err != nil {
		return err
	}
	prevSnap, err := store.LoadSnapshot()
	if err != nil {
		return err
	}

	rendered, err := changereport.Diff(prevInfo, hadPrev, prevSnap, pipe.Snapshot()).Render(format)
	if err != nil {
		return err
	}
	if outPath != "" {
		return filesystem.WriteFile(outPath, []byte(rendered), 0o644)
	}
	fmt.Println(rendered)
	return nil
}
