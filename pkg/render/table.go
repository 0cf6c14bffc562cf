package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/charta/pkg/style"
)

var titler = cases.Title(language.English)

// Row is one key/value line in a rendered table.
type Row struct {
	Key   string
	Value string
}

// Table renders rows as a two-column table with the values aligned. Widths
// are computed with go-runewidth so East Asian Wide characters line up.
func Table(theme Theme, title string, rows []Row) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(theme.Title.Render(titler.String(title)))
		sb.WriteString("\n")
	}

	keyWidth := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Key); w > keyWidth {
			keyWidth = w
		}
	}
	for _, r := range rows {
		pad := keyWidth - runewidth.StringWidth(r.Key)
		sb.WriteString("  ")
		sb.WriteString(theme.Key.Render(r.Key))
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString("  ")
		sb.WriteString(theme.Value.Render(r.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

// ConfigRows converts a resolved configuration to sorted table rows.
func ConfigRows(cfg style.Config) []Row {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]Row, len(keys))
	for i, k := range keys {
		rows[i] = Row{Key: k, Value: FormatValue(cfg[k])}
	}
	return rows
}

// ConfigLines renders a resolved configuration in matplotlibrc form, one
// "key: value" line per option, sorted by key.
func ConfigLines(cfg style.Config) []string {
	rows := ConfigRows(cfg)
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.Key + ": " + r.Value
	}
	return lines
}

// FormatValue renders an option value the way the rc file format expects it.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	case [2]float64:
		return FormatValue(t[0]) + ", " + FormatValue(t[1])
	case []float64:
		parts := make([]string, len(t))
		for i, f := range t {
			parts[i] = FormatValue(f)
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(t, ", ")
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = FormatValue(e)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", t)
	}
}
