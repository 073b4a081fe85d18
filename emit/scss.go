package emit

import (
	"path"
	"strings"
)

// SCSSFormatter renders token files as SCSS partials.
type SCSSFormatter struct{}

// NewSCSSFormatter creates an SCSS formatter.
func NewSCSSFormatter() *SCSSFormatter {
	return &SCSSFormatter{}
}

// Extension returns ".scss".
func (f *SCSSFormatter) Extension() string {
	return ".scss"
}

// FileName prefixes the base name with an underscore, the SCSS partial
// convention.
func (f *SCSSFormatter) FileName(name string) string {
	dir, base := path.Split(name)
	return dir + "_" + base
}

// IndexName returns the aggregating partial's name.
func (f *SCSSFormatter) IndexName() string {
	return "tokens"
}

// Format renders one SCSS partial.
func (f *SCSSFormatter) Format(file File) []byte {
	var b strings.Builder
	b.WriteString("/* ========================================================================\n")
	b.WriteString("   #" + strings.ToUpper(path.Base(file.Name)) + " TOKENS\n")
	b.WriteString("   ======================================================================== */\n\n")
	b.WriteString("/**\n * " + file.Description + "\n * Generated file, do not edit directly.\n */\n")

	for _, group := range file.Groups {
		b.WriteString("\n/* " + group.Title + " */\n")
		for _, rec := range group.Records {
			b.WriteString("$" + rec.Name + ": " + rec.Value + ";\n")
		}
	}
	b.WriteString("\n")
	return []byte(b.String())
}

// FormatIndex renders the partial that forwards every generated file.
func (f *SCSSFormatter) FormatIndex(files []File) []byte {
	var b strings.Builder
	b.WriteString("/**\n * Design token entry point.\n * Generated file, do not edit directly.\n */\n\n")
	for _, file := range files {
		b.WriteString("@import '" + file.Name + "';\n")
	}
	return []byte(b.String())
}
