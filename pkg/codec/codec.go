// Package codec decodes raw document bytes into a value.Value and encodes a
// value.Value back to bytes, one sub-file per supported format. Format is
// always explicit; there is no auto-detection from content or file
// extension.
package codec

import (
	"fmt"
	"strings"

	"github.com/eladbash/jdx/pkg/value"
)

// Format names a supported input/output encoding.
type Format uint8

const (
	JSON Format = iota
	YAML
	TOML
	CSV
	NDJSON
)

// String names a Format; ParseFormat accepts these same names.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	case CSV:
		return "csv"
	case NDJSON:
		return "ndjson"
	default:
		return "unknown"
	}
}

// ParseFormat resolves a format name (case-insensitive, as typed on the
// CLI or read from config) into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "csv":
		return CSV, nil
	case "ndjson", "jsonl":
		return NDJSON, nil
	default:
		return 0, fmt.Errorf("codec: unknown format %q", s)
	}
}

// Decode parses data in the given format into a value.Value. Every format is normalized to the same six-variant data model:
// CSV rows and bare YAML/TOML scalars are coerced to Number/String/Bool/Null
// the same way JSON numbers already are.
func Decode(format Format, data []byte) (*value.Value, error) {
	switch format {
	case JSON:
		return decodeJSON(data)
	case YAML:
		return decodeYAML(data)
	case TOML:
		return decodeTOML(data)
	case CSV:
		return decodeCSV(data)
	case NDJSON:
		return decodeNDJSON(data)
	default:
		return nil, fmt.Errorf("codec: unsupported format %v", format)
	}
}

// Encode serializes v back to bytes in the given format. pretty requests
// indented, human-readable output where the format distinguishes it (JSON
// and NDJSON's JSON lines); YAML/TOML/CSV have no separate compact form.
func Encode(v *value.Value, format Format, pretty bool) ([]byte, error) {
	switch format {
	case JSON:
		return encodeJSON(v, pretty)
	case YAML:
		return encodeYAML(v)
	case TOML:
		return encodeTOML(v)
	case CSV:
		return encodeCSV(v)
	case NDJSON:
		return encodeNDJSON(v, pretty)
	default:
		return nil, fmt.Errorf("codec: unsupported format %v", format)
	}
}
