// Package extract provides the extract command, the full token pipeline:
// load, resolve, classify, emit, and record the run for change detection.
package extract

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ivanyeors/solar-design-system/cache"
	"github.com/ivanyeors/solar-design-system/config"
	"github.com/ivanyeors/solar-design-system/emit"
	"github.com/ivanyeors/solar-design-system/fs"
	"github.com/ivanyeors/solar-design-system/pipeline"
	"github.com/ivanyeors/solar-design-system/report"
)

// Cmd is the extract cobra command.
var Cmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract, resolve and emit design tokens",
	Long: `Extract flattens the given token files (or the ones configured in
.config/solar-tokens), resolves every token reference, classifies the results
and writes SCSS, CSS or JS variable files. Unless forced, the run is skipped
when the input files are unchanged since the last run.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output directory (overrides config)")
	Cmd.Flags().StringSlice("format", nil, "Output formats: scss, css, js (overrides config)")
	Cmd.Flags().Bool("force", false, "Regenerate even when token files are unchanged")
	Cmd.Flags().String("cache-dir", ".cache", "Directory for the run cache and token backup")
	Cmd.Flags().String("report", "", "Write a change report to this path")
	Cmd.Flags().String("report-format", "text", "Change report format: text, markdown")

	viper.SetEnvPrefix("SOLAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"output", "format", "force", "cache-dir", "report", "report-format"} {
		_ = viper.BindPFlag("extract."+name, Cmd.Flags().Lookup(name))
	}
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()

	cfg := config.LoadOrDefault(filesystem, ".")
	if out := viper.GetString("extract.output"); out != "" {
		cfg.OutputDir = out
	}
	if formats := viper.GetStringSlice("extract.format"); len(formats) > 0 {
		cfg.Formats = formats
	}

	paths, err := pipeline.InputPaths(filesystem, cfg, ".", args)
	if err != nil {
		return err
	}

	store := cache.NewStore(filesystem, viper.GetString("extract.cache-dir"))
	if !viper.GetBool("extract.force") {
		if changed, reason := store.Changed(paths); !changed {
			fmt.Println(reason)
			fmt.Println("Nothing to do; rerun with --force to regenerate.")
			return nil
		}
	}

	// The previous run's data has to be read before this run overwrites it.
	prevInfo, hadPrev, err := store.Load()
	if err != nil {
		return err
	}
	prevSnap, err := store.LoadSnapshot()
	if err != nil {
		return err
	}

	pipe, err := pipeline.Resolve(filesystem, cfg, paths)
	if err != nil {
		return err
	}
	pipe.PrintDiagnostics(os.Stderr)

	files := emit.BuildFiles(pipe.Records())
	var written []string
	for _, name := range cfg.Formats {
		formatter, err := emit.ForFormat(name)
		if err != nil {
			return err
		}
		outPaths, err := emit.Write(filesystem, cfg.OutputDir, files, formatter)
		if err != nil {
			return err
		}
		written = append(written, outPaths...)
	}

	snapshot := pipe.Snapshot()
	if reportPath := viper.GetString("extract.report"); reportPath != "" {
		rendered, err := report.Diff(prevInfo, hadPrev, prevSnap, snapshot).
			Render(viper.GetString("extract.report-format"))
		if err != nil {
			return err
		}
		if err := filesystem.WriteFile(reportPath, []byte(rendered), 0o644); err != nil {
			return err
		}
	}

	hashes, err := store.Hashes(paths)
	if err != nil {
		return err
	}
	if err := store.Save(cache.Info{
		LastRun:     time.Now(),
		TokenCount:  pipe.Merged.Len(),
		Files:       hashes,
		OutputFiles: written,
	}); err != nil {
		return err
	}
	if err := store.SaveSnapshot(snapshot); err != nil {
		return err
	}

	fmt.Printf("Extracted %d tokens, wrote %d files to %s\n", pipe.Merged.Len(), len(written), cfg.OutputDir)
	return nil
}
