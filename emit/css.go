package emit

import "strings"

// CSSFormatter renders token files as CSS custom property blocks.
type CSSFormatter struct{}

// NewCSSFormatter creates a CSS formatter.
func NewCSSFormatter() *CSSFormatter {
	return &CSSFormatter{}
}

// Extension returns ".css".
func (f *CSSFormatter) Extension() string {
	return ".css"
}

// FileName keeps the base name unchanged.
func (f *CSSFormatter) FileName(name string) string {
	return name
}

// IndexName returns the aggregating stylesheet's name.
func (f *CSSFormatter) IndexName() string {
	return "tokens"
}

// Format renders one stylesheet with a :root block of custom properties.
func (f *CSSFormatter) Format(file File) []byte {
	var b strings.Builder
	b.WriteString("/* " + file.Description + " */\n")
	b.WriteString("/* Generated file, do not edit directly. */\n\n")
	b.WriteString(":root {\n")
	for _, group := range file.Groups {
		b.WriteString("\n  /* " + group.Title + " */\n")
		for _, rec := range group.Records {
			b.WriteString("  --" + rec.Name + ": " + rec.Value + ";\n")
		}
	}
	b.WriteString("}\n")
	return []byte(b.String())
}

// FormatIndex renders the stylesheet importing every generated file.
func (f *CSSFormatter) FormatIndex(files []File) []byte {
	var b strings.Builder
	b.WriteString("/* Design token entry point. Generated file, do not edit directly. */\n\n")
	for _, file := range files {
		b.WriteString("@import './" + file.Name + ".css';\n")
	}
	return []byte(b.String())
}
