package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"element-attributes/core/compile"
)

// Format is an artifact encoding.
type Format string

const (
	// FormatJSON is plain JSON data.
	FormatJSON Format = "json"
	// FormatModule is an ES module exporting the table.
	FormatModule Format = "module"
)

// ModuleExport is the name of the constant exported by FormatModule.
const ModuleExport = "svgElementAttributes"

const moduleHeader = `/**
 * Map of SVG elements to allowed attributes.
 *
 * @type {Record<string, ReadonlyArray<string>>}
 */
export const ` + ModuleExport + ` = `

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatModule:
		return f, nil
	default:
		return "", fmt.Errorf("unknown artifact format %q (expected %q or %q)", name, FormatJSON, FormatModule)
	}
}

// Normalize returns a copy of t with "*" present and every list sorted and deduplicated.
func Normalize(t compile.Table) compile.Table {
	out := make(compile.Table, len(t)+1)
	out[compile.GlobalKey] = []string{}
	for key, list := range t {
		out[key] = compile.NewAttributeSet(list...).Sorted()
	}
	return out
}

// Encode renders t in the given format.
func Encode(t compile.Table, format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatJSON:
	case FormatModule:
		buf.WriteString(moduleHeader)
	default:
		return nil, fmt.Errorf("unknown artifact format %q", format)
	}

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	// encoding/json writes map keys sorted, so "*" comes first
	if err := enc.Encode(map[string][]string(Normalize(t))); err != nil {
		return nil, fmt.Errorf("failed to encode table: %w", err)
	}

	return buf.Bytes(), nil
}

// Decode parses an artifact produced by Encode.
func Decode(data []byte, format Format) (compile.Table, error) {
	switch format {
	case FormatJSON:
	case FormatModule:
		marker := []byte("export const " + ModuleExport + " = ")
		i := bytes.Index(data, marker)
		if i == -1 {
			return nil, fmt.Errorf("module does not export %s", ModuleExport)
		}
		data = data[i+len(marker):]
	default:
		return nil, fmt.Errorf("unknown artifact format %q", format)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode table: %w", err)
	}
	t := make(compile.Table, len(raw))
	for key, list := range raw {
		if list == nil {
			list = []string{}
		}
		t[key] = list
	}
	return t, nil
}

// DetectFormat guesses the format of data.
func DetectFormat(data []byte) Format {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return FormatJSON
	}
	return FormatModule
}

// Keys returns the keys of t in output order.
func Keys(t compile.Table) []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
