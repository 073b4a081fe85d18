package emit

import (
	"path"
	"strings"
)

// JSFormatter renders token files as ES modules.
type JSFormatter struct{}

// NewJSFormatter creates a JavaScript module formatter.
func NewJSFormatter() *JSFormatter {
	return &JSFormatter{}
}

// Extension returns ".js".
func (f *JSFormatter) Extension() string {
	return ".js"
}

// FileName keeps the base name unchanged.
func (f *JSFormatter) FileName(name string) string {
	return name
}

// IndexName returns the module entry point's name.
func (f *JSFormatter) IndexName() string {
	return "index"
}

// Format renders one token module.
func (f *JSFormatter) Format(file File) []byte {
	var b strings.Builder
	b.WriteString("/**\n")
	b.WriteString(" * " + file.Description + "\n")
	b.WriteString(" * @module tokens/" + path.Base(file.Name) + "\n")
	b.WriteString(" * Generated file, do not edit directly.\n")
	b.WriteString(" */\n\n")
	b.WriteString("const tokens = {\n")
	for _, group := range file.Groups {
		b.WriteString("\n  /* " + group.Title + " */\n")
		for _, rec := range group.Records {
			b.WriteString("  '" + rec.Name + "': '" + escapeJS(rec.Value) + "',\n")
		}
	}
	b.WriteString("};\n\nexport default tokens;\n")
	return []byte(b.String())
}

// FormatIndex renders the entry point re-exporting every module.
func (f *JSFormatter) FormatIndex(files []File) []byte {
	var b strings.Builder
	b.WriteString("/**\n * Design token entry point.\n * Generated file, do not edit directly.\n */\n\n")

	names := make([]string, 0, len(files))
	for _, file := range files {
		name := exportName(file.Name)
		names = append(names, name)
		b.WriteString("import " + name + " from './" + file.Name + "';\n")
	}
	b.WriteString("\nexport {\n")
	for _, name := range names {
		b.WriteString("  " + name + ",\n")
	}
	b.WriteString("};\n")
	return []byte(b.String())
}

// exportName converts a file path into a camelCase identifier.
func exportName(name string) string {
	parts := strings.FieldsFunc(path.Base(name), func(r rune) bool {
		return r == '-' || r == '_'
	})
	out := ""
	for i, part := range parts {
		if i == 0 {
			out += part
			continue
		}
		out += strings.ToUpper(part[:1]) + part[1:]
	}
	return out
}

func escapeJS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
