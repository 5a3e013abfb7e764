package export

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/chrisdamba/foodadmin/internal/catalog"
)

type fieldKind int

const (
	kindUnknown fieldKind = iota
	kindInt
	kindDouble
	kindBool
	kindString
)

func kindOf(v any) fieldKind {
	switch v.(type) {
	case nil:
		return kindUnknown
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		return kindInt
	case float32, float64:
		return kindDouble
	case bool:
		return kindBool
	}
	return kindString
}

func merge(a, b fieldKind) fieldKind {
	switch {
	case a == kindUnknown:
		return b
	case b == kindUnknown || a == b:
		return a
	case (a == kindInt && b == kindDouble) || (a == kindDouble && b == kindInt):
		return kindDouble
	}
	return kindString
}

type field struct {
	Name string
	Kind fieldKind
}

func (f field) tag() string {
	switch f.Kind {
	case kindInt:
		return fmt.Sprintf("name=%s, type=INT64, repetitiontype=OPTIONAL", f.Name)
	case kindDouble:
		return fmt.Sprintf("name=%s, type=DOUBLE, repetitiontype=OPTIONAL", f.Name)
	case kindBool:
		return fmt.Sprintf("name=%s, type=BOOLEAN, repetitiontype=OPTIONAL", f.Name)
	}
	return fmt.Sprintf("name=%s, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL", f.Name)
}

var nonWord = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// fieldName turns a result column into a parquet field name.
func fieldName(column string, seen map[string]int) string {
	name := strings.Trim(nonWord.ReplaceAllString(strings.ToLower(column), "_"), "_")
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = "c_" + name
	}
	if n := seen[name]; n > 0 {
		seen[name] = n + 1
		name = fmt.Sprintf("%s_%d", name, n)
	}
	seen[name]++
	return name
}

// inferFields derives one field per column from the values it holds.
func inferFields(res catalog.Result) []field {
	seen := map[string]int{}
	fields := make([]field, len(res.Columns))
	for i, col := range res.Columns {
		fields[i].Name = fieldName(col, seen)
		for _, row := range res.Rows {
			if i < len(row) {
				fields[i].Kind = merge(fields[i].Kind, kindOf(row[i]))
			}
		}
		if fields[i].Kind == kindUnknown {
			fields[i].Kind = kindString
		}
	}
	return fields
}

type schemaNode struct {
	Tag    string       `json:"Tag"`
	Fields []schemaNode `json:"Fields,omitempty"`
}

func schemaJSON(fields []field) (string, error) {
	root := schemaNode{Tag: "name=parquet_go_root, repetitiontype=REQUIRED"}
	for _, f := range fields {
		root.Fields = append(root.Fields, schemaNode{Tag: f.tag()})
	}
	b, err := json.Marshal(root)
	return string(b), err
}

// encodeRow renders a result row as the JSON object the parquet writer reads.
func encodeRow(fields []field, row []any) (string, error) {
	obj := make(map[string]any, len(fields))
	for i, f := range fields {
		var v any
		if i < len(row) {
			v = row[i]
		}
		obj[f.Name] = convert(f.Kind, v)
	}
	b, err := json.Marshal(obj)
	return string(b), err
}

func convert(kind fieldKind, v any) any {
	if v == nil {
		return nil
	}
	switch kind {
	case kindDouble:
		switch x := v.(type) {
		case float32:
			return float64(x)
		case float64:
			return x
		}
		return v
	case kindString:
		switch x := v.(type) {
		case string:
			return x
		case time.Time:
			return x.Format(time.RFC3339)
		case []byte:
			return string(x)
		}
		return fmt.Sprint(v)
	}
	return v
}
