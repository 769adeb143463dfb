package report

import "strings"

// Text renders the report as a plain key: value dump. This is also the
// degradation target when PDF rendering fails.
func Text(doc Document) []byte {
	var b strings.Builder
	for _, row := range doc.Rows {
		b.WriteString(row[0])
		b.WriteString(": ")
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	if len(doc.Flags) > 0 {
		b.WriteString("\nFlags & Interpretations:\n")
		for _, f := range doc.Flags {
			b.WriteString("- ")
			b.WriteString(f)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(doc.SourceNote)
	b.WriteString("\n")
	return []byte(b.String())
}
