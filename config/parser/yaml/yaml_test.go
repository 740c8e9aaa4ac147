package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_Struct(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
name: test-app
version: "1.0"
`)

	var result struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	}

	err := parser.Parse(data, &result)

	require.NoError(t, err)
	assert.Equal(t, "test-app", result.Name)
	assert.Equal(t, "1.0", result.Version)
}

func TestParser_Parse_NestedMapping(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
db:
  local:
    host: localhost
  shared:
    host: 192.168.10.1
`)

	var result any

	err := parser.Parse(data, &result)
	require.NoError(t, err)

	root, ok := result.(map[string]any)
	require.True(t, ok, "document should decode to map[string]any")

	db, ok := root["db"].(map[string]any)
	require.True(t, ok, "nested mapping should decode to map[string]any")

	local, ok := db["local"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "localhost", local["host"])
}

func TestParser_Parse_Sequence(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
hosts:
  - host1.example.com
  - host2.example.com
`)

	var result map[string]any

	err := parser.Parse(data, &result)
	require.NoError(t, err)

	hosts, ok := result["hosts"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"host1.example.com", "host2.example.com"}, hosts)
}

func TestParser_Parse_ScalarValues(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
enabled: true
disabled: false
port: 8080
ratio: 3.14159
`)

	var result map[string]any

	err := parser.Parse(data, &result)
	require.NoError(t, err)

	assert.Equal(t, true, result["enabled"])
	assert.Equal(t, false, result["disabled"])
	assert.EqualValues(t, 8080, result["port"])
	assert.InDelta(t, 3.14159, result["ratio"], 0.00001)
}

func TestParser_Parse_JSON(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`{"name": "foo", "db": {"port": 5432}}`)

	var result map[string]any

	err := parser.Parse(data, &result)
	require.NoError(t, err)

	assert.Equal(t, "foo", result["name"])

	db, ok := result["db"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 5432, db["port"])
}

func TestParser_Parse_NonMappingDocument(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	var result any

	err := parser.Parse([]byte("- one\n- two\n"), &result)
	require.NoError(t, err)

	_, isMap := result.(map[string]any)
	assert.False(t, isMap)
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	var result struct{}

	err := parser.Parse([]byte{}, &result)

	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmptyData)
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
invalid: yaml: content: [
`)

	var result any

	err := parser.Parse(data, &result)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal error")
}
