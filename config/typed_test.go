package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func typedStore() *Store {
	loader := newCountingLoader().with("", "app", map[string]any{
		"name":     "foo",
		"port":     uint64(8080),
		"port_str": "9090",
		"ratio":    0.5,
		"debug":    "true",
		"timeout":  "1m30s",
		"hosts":    []any{"a", "b"},
		"db":       map[string]any{"host": "localhost"},
		"nothing":  nil,
	})

	return NewStore(loader, "")
}

func TestStore_GetString(t *testing.T) {
	t.Parallel()

	store := typedStore()

	assert.Equal(t, "foo", store.GetString("app.name", "def"))
	assert.Equal(t, "8080", store.GetString("app.port", "def"))
	assert.Equal(t, "def", store.GetString("app.missing", "def"))
	assert.Equal(t, "def", store.GetString("app.nothing", "def"))
	assert.Equal(t, "def", store.GetString("app.db", "def"))
}

func TestStore_GetNumbers(t *testing.T) {
	t.Parallel()

	store := typedStore()

	assert.Equal(t, 8080, store.GetInt("app.port", 1))
	assert.Equal(t, 9090, store.GetInt("app.port_str", 1))
	assert.Equal(t, 1, store.GetInt("app.name", 1))
	assert.Equal(t, 1, store.GetInt("app.missing", 1))
	assert.Equal(t, int64(8080), store.GetInt64("app.port", 1))
	assert.InDelta(t, 0.5, store.GetFloat64("app.ratio", 1), 0.0001)
	assert.InDelta(t, 2.5, store.GetFloat64("app.missing", 2.5), 0.0001)
}

func TestStore_GetBool(t *testing.T) {
	t.Parallel()

	store := typedStore()

	assert.True(t, store.GetBool("app.debug", false))
	assert.True(t, store.GetBool("app.missing", true))
	assert.False(t, store.GetBool("app.db", false))
}

func TestStore_GetDuration(t *testing.T) {
	t.Parallel()

	store := typedStore()

	assert.Equal(t, 90*time.Second, store.GetDuration("app.timeout", time.Second))
	assert.Equal(t, time.Second, store.GetDuration("app.missing", time.Second))
}

func TestStore_GetCollections(t *testing.T) {
	t.Parallel()

	store := typedStore()

	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("app.hosts", nil))
	assert.Equal(t, []string{"x"}, store.GetStringSlice("app.missing", []string{"x"}))
	assert.Equal(t, map[string]any{"host": "localhost"}, store.GetStringMap("app.db", nil))
	assert.Nil(t, store.GetStringMap("app.missing", nil))
}
