package schemaeditor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chrisdamba/foodadmin/internal/database"
)

type ColumnDef struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	PrimaryKey bool   `json:"primary_key,omitempty"`
	NotNull    bool   `json:"not_null,omitempty"`
	Unique     bool   `json:"unique,omitempty"`
}

// SQL renders the definition with a quoted column name.
func (c ColumnDef) SQL() string {
	var b strings.Builder
	b.WriteString(quote(c.Name))
	b.WriteByte(' ')
	b.WriteString(c.Type)
	if c.PrimaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	if c.NotNull {
		b.WriteString(" NOT NULL")
	}
	if c.Unique {
		b.WriteString(" UNIQUE")
	}
	return b.String()
}

var (
	typePattern = regexp.MustCompile(`^(DOUBLE PRECISION|VARCHAR\s*\(\s*\d{1,5}\s*\)|NUMERIC(\s*\(\s*\d{1,3}\s*(,\s*\d{1,3}\s*)?\))?|TEXT|INTEGER|INT|BIGINT|SMALLINT|REAL|BOOLEAN|DATE|TIMESTAMPTZ|TIMESTAMP|BIGSERIAL|SERIAL)(\s+|$)`)
	spaces      = regexp.MustCompile(`\s+`)
)

// ParseColumnType accepts one type from the allow-list and returns it in
// canonical upper case form.
func ParseColumnType(t string) (string, error) {
	typ, rest, err := splitType(t)
	if err != nil {
		return "", err
	}
	if rest != "" {
		return "", fmt.Errorf("%w: unexpected %q after column type", database.ErrMalformedQuery, rest)
	}
	return typ, nil
}

func splitType(s string) (string, string, error) {
	upper := strings.ToUpper(strings.TrimSpace(spaces.ReplaceAllString(s, " ")))
	m := typePattern.FindStringSubmatch(upper)
	if m == nil {
		return "", "", fmt.Errorf("%w: unsupported column type in %q", database.ErrMalformedQuery, s)
	}
	typ := m[1]
	if strings.Contains(typ, "(") {
		typ = strings.ReplaceAll(typ, " ", "")
	}
	return typ, strings.TrimSpace(upper[len(m[0]):]), nil
}

// ParseColumnSpec parses a comma separated list of column definitions such
// as "id INTEGER PRIMARY KEY, name TEXT NOT NULL".
func ParseColumnSpec(spec string) ([]ColumnDef, error) {
	parts, err := splitTopLevel(spec)
	if err != nil {
		return nil, err
	}

	var (
		cols []ColumnDef
		seen = map[string]bool{}
		pk   bool
	)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("%w: empty column definition", database.ErrMalformedQuery)
		}
		fields := strings.Fields(part)
		name, err := ValidateIdentifier(fields[0])
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column %q", database.ErrMalformedQuery, name)
		}
		seen[name] = true

		typ, rest, err := splitType(strings.Join(fields[1:], " "))
		if err != nil {
			return nil, err
		}
		col := ColumnDef{Name: name, Type: typ}
		if err := parseConstraints(&col, rest); err != nil {
			return nil, err
		}
		if col.PrimaryKey {
			if pk {
				return nil, fmt.Errorf("%w: more than one primary key", database.ErrMalformedQuery)
			}
			pk = true
		}
		cols = append(cols, col)
	}
	return cols, nil
}

func parseConstraints(col *ColumnDef, rest string) error {
	tokens := strings.Fields(rest)
	for i := 0; i < len(tokens); i++ {
		switch {
		case tokens[i] == "PRIMARY" && i+1 < len(tokens) && tokens[i+1] == "KEY":
			col.PrimaryKey = true
			i++
		case tokens[i] == "NOT" && i+1 < len(tokens) && tokens[i+1] == "NULL":
			col.NotNull = true
			i++
		case tokens[i] == "UNIQUE":
			col.Unique = true
		default:
			return fmt.Errorf("%w: unsupported constraint %q on column %q", database.ErrMalformedQuery, tokens[i], col.Name)
		}
	}
	return nil
}

// splitTopLevel splits on commas outside parentheses.
func splitTopLevel(spec string) ([]string, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("%w: no columns given", database.ErrMalformedQuery)
	}

	var (
		parts []string
		depth int
		start int
	)
	for i, r := range spec {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced parentheses", database.ErrMalformedQuery)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, spec[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced parentheses", database.ErrMalformedQuery)
	}
	return append(parts, spec[start:]), nil
}
