package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eladbash/jdx/pkg/codec"
	"github.com/eladbash/jdx/pkg/value"
)

// decodeFile reads path and decodes it using formatName if non-empty, else
// the extension of path, else the JSON default.
func decodeFile(path, formatName string) (*value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if formatName == "" {
		formatName = formatFromExt(path)
	}
	format, err := codec.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	v, err := codec.Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s as %s: %w", path, format, err)
	}
	return v, nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".csv":
		return "csv"
	case ".ndjson", ".jsonl":
		return "ndjson"
	default:
		return "json"
	}
}
