package foamdict

import (
	"io"
	"strings"
)

const keyWidth = 16

// Format writes d in OpenFOAM layout, four spaces per nesting level.
func Format(d *Dict) string {
	var b strings.Builder
	writeDict(&b, d, 0)
	return b.String()
}

func Write(w io.Writer, d *Dict) (err error) {
	_, err = io.WriteString(w, Format(d))
	return
}

// FormatInline writes d on one line, as used for dictionaries inside lists.
func FormatInline(d *Dict) string {
	var b strings.Builder
	for i, k := range d.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch v := d.values[k].(type) {
		case *Dict:
			b.WriteString(k + " { " + FormatInline(v) + " }")
		case string:
			b.WriteString(entry(k, v, false))
		}
	}
	return b.String()
}

// Entry formats a single "keyword value;" line with OpenFOAM's padding.
func Entry(key, value string) string {
	return entry(key, value, true)
}

func entry(key, value string, pad bool) string {
	switch {
	case strings.HasPrefix(key, "#"):
		return strings.TrimSpace(key + " " + value)
	case value == "":
		return key + ";"
	case pad && len(key) < keyWidth:
		return key + strings.Repeat(" ", keyWidth-len(key)) + value + ";"
	default:
		return key + " " + value + ";"
	}
}

func writeDict(b *strings.Builder, d *Dict, level int) {
	indent := strings.Repeat("    ", level)
	for i, k := range d.keys {
		switch v := d.values[k].(type) {
		case *Dict:
			if level == 0 && i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(indent + k + "\n")
			b.WriteString(indent + "{\n")
			writeDict(b, v, level+1)
			b.WriteString(indent + "}\n")
		case string:
			b.WriteString(indent + Entry(k, v) + "\n")
		}
	}
}
