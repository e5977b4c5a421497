package iojson

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, map[string]int{"value": 1}))

	assert.Equal(t, "{\n  \"value\": 1\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_marshal_error(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, map[string]any{"ch": make(chan int)}))

	assert.Empty(t, out.String())

	var e map[string]any
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &e))
	assert.Equal(t, "error marshaling in iojson.Write", e["message"])
}

func TestWriteLine(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteLine(&out, []int{1, 2}))
	require.NoError(t, WriteLine(&out, "x"))

	assert.Equal(t, "[1,2]\n\"x\"\n", out.String())
}

func TestFileReader_from_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"type":"INCREMENT"}]`), 0o644))

	var fr FileReader[[]json.RawMessage]
	fr.SetFile(path)

	got, err := fr.Read()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.JSONEq(t, `{"type":"INCREMENT"}`, string(got[0]))
}

func TestFileReader_from_pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	_, err = w.WriteString(`{"a":1}`)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	fr := FileReader[map[string]int]{Stdin: r}
	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1}, got)
}

func TestFileReader_missing_file(t *testing.T) {
	var fr FileReader[any]
	fr.SetFile(filepath.Join(t.TempDir(), "missing.json"))

	_, err := fr.Read()
	assert.ErrorContains(t, err, "open file")
}

func TestFileReader_bad_json(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))

	var fr FileReader[any]
	fr.SetFile(path)

	_, err := fr.Read()
	assert.ErrorContains(t, err, "decode JSON")
}

func TestFileReader_Flag(t *testing.T) {
	var fr FileReader[any]
	f := fr.Flag()
	assert.Equal(t, "file", f.Name)
	assert.Equal(t, []string{"f"}, f.Aliases)
}
