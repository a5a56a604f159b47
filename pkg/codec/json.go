package codec

import (
	"bytes"
	"encoding/json"

	"github.com/eladbash/jdx/pkg/value"
)

func decodeJSON(data []byte) (*value.Value, error) {
	return value.DecodeJSON(data)
}

func encodeJSON(v *value.Value, pretty bool) ([]byte, error) {
	if !pretty {
		return json.Marshal(v)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
