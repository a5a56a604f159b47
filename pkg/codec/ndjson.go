package codec

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/eladbash/jdx/pkg/value"
)

// decodeNDJSON reads one JSON value per line (blank lines skipped) into an
// Array, the newline-delimited-JSON convention.
func decodeNDJSON(data []byte) (*value.Value, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var items []*value.Value
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := value.DecodeJSON([]byte(line))
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return value.NewArray(items), nil
}

// encodeNDJSON serializes each element of an Array on its own line; any
// other value is written as a single line.
func encodeNDJSON(v *value.Value, pretty bool) ([]byte, error) {
	arr, ok := v.Array()
	if !ok {
		arr = []*value.Value{v}
	}

	var buf bytes.Buffer
	for _, e := range arr {
		line, err := encodeJSON(e, pretty)
		if err != nil {
			return nil, err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
