// Package emit turns classified output records into stylesheet and module
// source files. Formatters decide concrete syntax; the grouping and ordering
// logic here is shared across all of them.
package emit

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ivanyeors/solar-design-system/classify"
	"github.com/ivanyeors/solar-design-system/fs"
)

// Group is one titled section of an output file.
type Group struct {
	Title   string
	Records []classify.OutputRecord
}

// File is one output file: a name (without extension), a description for
// the header comment, and its sections.
type File struct {
	// Name is the path relative to the output root, without extension,
	// e.g. "option-tokens/colors" or "semantic-tokens/brands/evyd-core".
	Name        string
	Description string
	Groups      []Group
}

// Formatter renders a file into one concrete output syntax.
type Formatter interface {
	// Extension returns the file extension including the dot.
	Extension() string

	// FileName adapts a file's base name to the syntax's conventions, e.g.
	// SCSS partials get a leading underscore.
	FileName(name string) string

	// Format renders the file contents.
	Format(file File) []byte

	// FormatIndex renders the index that ties the written files together.
	FormatIndex(files []File) []byte

	// IndexName is the index file path relative to the output root, without
	// extension.
	IndexName() string
}

// ForFormat returns the formatter for a configured format name.
func ForFormat(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "scss":
		return NewSCSSFormatter(), nil
	case "css":
		return NewCSSFormatter(), nil
	case "js":
		return NewJSFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", name)
	}
}

var titleCaser = cases.Title(language.English)

// sectionTitle renders a category key as a section heading.
func sectionTitle(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "-", " "))
}

// BuildFiles partitions records into the output file layout: option token
// files for colors, scale and font, one semantic file per brand, and a theme
// file for dark-theme colors. Palette sections are ordered lightest to
// darkest.
func BuildFiles(records []classify.OutputRecord) []File {
	var (
		colors, scale, font, themes []classify.OutputRecord
		brands                      = make(map[string][]classify.OutputRecord)
		brandOrder                  []string
	)

	for _, rec := range records {
		switch {
		case rec.Kind == classify.KindSemantic || rec.Brand != "":
			brand := rec.Brand
			if brand == "" {
				brand = "common"
			}
			if _, seen := brands[brand]; !seen {
				brandOrder = append(brandOrder, brand)
			}
			brands[brand] = append(brands[brand], rec)
		case rec.Dark:
			themes = append(themes, rec)
		case rec.Kind == classify.KindColor:
			colors = append(colors, rec)
		case rec.Kind == classify.KindScale:
			scale = append(scale, rec)
		case rec.Kind == classify.KindFont:
			font = append(font, rec)
		default:
			scale = append(scale, rec)
		}
	}

	var files []File
	if len(colors) > 0 {
		files = append(files, File{
			Name:        "option-tokens/colors",
			Description: "Color option tokens",
			Groups:      groupByCategory(SortColors(colors)),
		})
	}
	if len(scale) > 0 {
		files = append(files, File{
			Name:        "option-tokens/scale",
			Description: "Scale option tokens",
			Groups:      groupByCategory(scale),
		})
	}
	if len(font) > 0 {
		files = append(files, File{
			Name:        "option-tokens/font",
			Description: "Font option tokens",
			Groups:      groupByCategory(font),
		})
	}
	for _, brand := range brandOrder {
		files = append(files, File{
			Name:        "semantic-tokens/brands/" + brand,
			Description: "Semantic tokens for " + brand,
			Groups:      groupSemantic(brands[brand]),
		})
	}
	if len(themes) > 0 {
		files = append(files, File{
			Name:        "semantic-tokens/themes",
			Description: "Dark theme tokens",
			Groups:      groupByCategory(SortColors(themes)),
		})
	}
	return files
}

// groupByCategory splits records into sections by category, keeping the
// incoming record order within each.
func groupByCategory(records []classify.OutputRecord) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, rec := range records {
		key := rec.Category
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Title: sectionTitle(key)})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}

// groupSemantic sections brand records by component, with system groups
// after all components.
func groupSemantic(records []classify.OutputRecord) []Group {
	var components []Group
	var systems []Group
	compIndex := make(map[string]int)
	sysIndex := make(map[string]int)

	for _, rec := range records {
		if rec.Component != "" {
			i, ok := compIndex[rec.Component]
			if !ok {
				i = len(components)
				compIndex[rec.Component] = i
				components = append(components, Group{Title: sectionTitle(rec.Component) + " Component"})
			}
			components[i].Records = append(components[i].Records, rec)
			continue
		}
		key := rec.SystemGroup
		if key == "" {
			key = "other"
		}
		i, ok := sysIndex[key]
		if !ok {
			i = len(systems)
			sysIndex[key] = i
			systems = append(systems, Group{Title: "System: " + sectionTitle(key)})
		}
		systems[i].Records = append(systems[i].Records, rec)
	}
	return append(components, systems...)
}

// Write renders every file with the formatter and writes the results plus an
// index under outputDir. It returns the written paths.
func Write(filesystem fs.FileSystem, outputDir string, files []File, formatter Formatter) ([]string, error) {
	var written []string
	for _, file := range files {
		rel := formatter.FileName(file.Name) + formatter.Extension()
		path := filepath.Join(outputDir, rel)
		if err := filesystem.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, err
		}
		if err := filesystem.WriteFile(path, formatter.Format(file), 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if len(files) > 0 {
		index := filepath.Join(outputDir, formatter.FileName(formatter.IndexName())+formatter.Extension())
		if err := filesystem.MkdirAll(filepath.Dir(index), 0o755); err != nil {
			return written, err
		}
		if err := filesystem.WriteFile(index, formatter.FormatIndex(files), 0o644); err != nil {
			return written, err
		}
		written = append(written, index)
	}
	return written, nil
}
