package codec

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/eladbash/jdx/pkg/value"
)

// decodeCSV reads a header row plus data rows into an Array of Objects
// keyed by the header, coercing each cell to Number/Bool/Null/String with
// the same scalar heuristics JSON would apply to the same text.
func decodeCSV(data []byte) (*value.Value, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if err.Error() == "EOF" {
			return value.NewArray(nil), nil
		}
		return nil, err
	}

	var rows []*value.Value
	for {
		rec, err := r.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, err
		}
		obj := value.NewOrderedObject()
		for i, col := range header {
			var cell string
			if i < len(rec) {
				cell = rec[i]
			}
			obj.Set(col, coerceCSVCell(cell))
		}
		rows = append(rows, value.NewObject(obj))
	}
	return value.NewArray(rows), nil
}

func coerceCSVCell(s string) *value.Value {
	if s == "" {
		return value.Null
	}
	if s == "true" {
		return value.NewBool(true)
	}
	if s == "false" {
		return value.NewBool(false)
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return value.NewNumber(n)
	}
	return value.NewString(s)
}

// encodeCSV requires v to be an Array of Objects; the header row is the
// first element's keys in insertion order (columns a later element
// introduces that the first element lacks are not representable in this
// fixed-header output, a documented limitation of CSV's tabular shape).
func encodeCSV(v *value.Value) ([]byte, error) {
	if v.Kind() != value.KindArray {
		return nil, fmt.Errorf("codec: CSV output requires an array of objects, got %s", v.Kind())
	}
	arr, _ := v.Array()
	if len(arr) == 0 {
		return []byte{}, nil
	}
	first, ok := arr[0].Object()
	if !ok {
		return nil, fmt.Errorf("codec: CSV output requires an array of objects, got array of %s", arr[0].Kind())
	}
	header := first.Keys()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range arr {
		obj, ok := e.Object()
		if !ok {
			return nil, fmt.Errorf("codec: CSV output requires an array of objects, got array of %s", e.Kind())
		}
		rec := make([]string, len(header))
		for i, col := range header {
			if fv, ok := obj.Get(col); ok {
				rec[i] = value.Stringify(fv)
				if fv.IsNull() {
					rec[i] = ""
				}
			}
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
