package codec

import (
	"testing"

	"github.com/eladbash/jdx/pkg/value"
)

func TestJSONRoundTrip(t *testing.T) {
	v, err := value.DecodeJSON([]byte(`{"a":1,"b":[true,null,"x"]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	encoded, err := Encode(v, JSON, false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := Decode(JSON, encoded)
	if err != nil {
		t.Fatalf("decode back: %v", err)
	}
	if !v.Equal(decoded) {
		t.Fatalf("expected a lossless JSON round-trip, got %v vs %v", v, decoded)
	}
}

func TestJSONPrettyIsIndented(t *testing.T) {
	v, _ := value.DecodeJSON([]byte(`{"a":1}`))
	pretty, err := Encode(v, JSON, true)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(pretty) == `{"a":1}` {
		t.Fatalf("expected pretty output to differ from compact, got %q", pretty)
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"json": JSON, "yaml": YAML, "yml": YAML, "toml": TOML, "csv": CSV, "ndjson": NDJSON, "jsonl": NDJSON}
	for name, want := range cases {
		got, err := ParseFormat(name)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q): expected %v, got %v (err=%v)", name, want, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected an error for an unsupported format name")
	}
}

func TestYAMLDecodePreservesObjectOrder(t *testing.T) {
	// Many keys, not map-iteration-order luck: decodeYAML walks a
	// yaml.Node tree, so this holds regardless of Go's randomized map
	// iteration order (which a decode through map[string]interface{}
	// would be at the mercy of).
	v, err := Decode(YAML, []byte("z: 1\ny: 2\nx: 3\nw: 4\na: 5\nb: 6\nc: 7\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	obj, ok := v.Object()
	if !ok {
		t.Fatalf("expected an object")
	}
	want := []string{"z", "y", "x", "w", "a", "b", "c"}
	got := obj.Keys()
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), got)
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("expected source key order %v, got %v", want, got)
		}
	}
}

func TestYAMLDecodePreservesNestedObjectOrder(t *testing.T) {
	v, err := Decode(YAML, []byte("outer:\n  z: 1\n  y: 2\n  x: 3\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	obj, _ := v.Object()
	outerVal, _ := obj.Get("outer")
	outer, ok := outerVal.Object()
	if !ok {
		t.Fatalf("expected a nested object")
	}
	if keys := outer.Keys(); keys[0] != "z" || keys[1] != "y" || keys[2] != "x" {
		t.Fatalf("expected nested source key order preserved, got %v", keys)
	}
}

func TestYAMLEncodePreservesObjectOrder(t *testing.T) {
	v, err := value.DecodeJSON([]byte(`{"z":1,"a":2}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out, err := Encode(v, YAML, false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	zIdx, aIdx := indexOf(string(out), "z:"), indexOf(string(out), "a:")
	if zIdx < 0 || aIdx < 0 || zIdx > aIdx {
		t.Fatalf("expected 'z' to precede 'a' in encoded YAML, got %q", out)
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestTOMLRequiresObjectRoot(t *testing.T) {
	v, _ := value.DecodeJSON([]byte(`[1,2,3]`))
	if _, err := Encode(v, TOML, false); err == nil {
		t.Fatalf("expected an error encoding a non-object root as TOML")
	}
}

func TestTOMLDecode(t *testing.T) {
	v, err := Decode(TOML, []byte("name = \"jdx\"\ncount = 3\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	obj, ok := v.Object()
	if !ok {
		t.Fatalf("expected an object")
	}
	nameVal, _ := obj.Get("name")
	name, _ := nameVal.Str()
	if name != "jdx" {
		t.Fatalf("expected name 'jdx', got %v", nameVal)
	}
}

func TestTOMLDecodePreservesObjectOrder(t *testing.T) {
	v, err := Decode(TOML, []byte("z = 1\ny = 2\nx = 3\nw = 4\na = 5\nb = 6\nc = 7\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	obj, ok := v.Object()
	if !ok {
		t.Fatalf("expected an object")
	}
	want := []string{"z", "y", "x", "w", "a", "b", "c"}
	got := obj.Keys()
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), got)
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("expected source key order %v, got %v", want, got)
		}
	}
}

func TestTOMLDecodePreservesNestedTableOrder(t *testing.T) {
	v, err := Decode(TOML, []byte("[outer]\nz = 1\ny = 2\nx = 3\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	obj, _ := v.Object()
	outerVal, _ := obj.Get("outer")
	outer, ok := outerVal.Object()
	if !ok {
		t.Fatalf("expected a nested table")
	}
	if keys := outer.Keys(); keys[0] != "z" || keys[1] != "y" || keys[2] != "x" {
		t.Fatalf("expected nested table key order preserved, got %v", keys)
	}
}

func TestCSVDecodeProducesArrayOfObjects(t *testing.T) {
	v, err := Decode(CSV, []byte("name,age\nAlice,30\nBob,22\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	arr, ok := v.Array()
	if !ok || len(arr) != 2 {
		t.Fatalf("expected a 2-element array, got %v", v)
	}
	first, _ := arr[0].Object()
	ageVal, _ := first.Get("age")
	age, _ := ageVal.Number()
	if age != 30 {
		t.Fatalf("expected CSV numeric cells coerced to Number, got %v", ageVal)
	}
}

func TestCSVDecodeEmptyCellIsNull(t *testing.T) {
	v, err := Decode(CSV, []byte("a,b\n1,\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	arr, _ := v.Array()
	row, _ := arr[0].Object()
	bVal, _ := row.Get("b")
	if !bVal.IsNull() {
		t.Fatalf("expected an empty CSV cell to decode as Null, got %v", bVal)
	}
}

func TestCSVEncodeRequiresArrayOfObjects(t *testing.T) {
	v, _ := value.DecodeJSON([]byte(`{"a":1}`))
	if _, err := Encode(v, CSV, false); err == nil {
		t.Fatalf("expected an error encoding a non-array as CSV")
	}
}

func TestCSVRoundTripHeaderFromFirstElement(t *testing.T) {
	v, err := value.DecodeJSON([]byte(`[{"name":"Alice","age":30}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out, err := Encode(v, CSV, false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := Decode(CSV, out)
	if err != nil {
		t.Fatalf("decode back: %v", err)
	}
	arr, _ := back.Array()
	row, _ := arr[0].Object()
	nameVal, _ := row.Get("name")
	name, _ := nameVal.Str()
	if name != "Alice" {
		t.Fatalf("expected round-tripped name 'Alice', got %v", nameVal)
	}
}

func TestNDJSONDecode(t *testing.T) {
	v, err := Decode(NDJSON, []byte("{\"a\":1}\n{\"a\":2}\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	arr, ok := v.Array()
	if !ok || len(arr) != 2 {
		t.Fatalf("expected 2 lines decoded into a 2-element array, got %v", v)
	}
}

func TestNDJSONEncodeOneObjectPerLine(t *testing.T) {
	v, err := value.DecodeJSON([]byte(`[{"a":1},{"a":2}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out, err := Encode(v, NDJSON, false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := Decode(NDJSON, out)
	if err != nil {
		t.Fatalf("decode back: %v", err)
	}
	if !v.Equal(back) {
		t.Fatalf("expected a lossless NDJSON round-trip, got %v vs %v", v, back)
	}
}
