package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    any
		expected Kind
	}{
		{value: nil, expected: KindNull},
		{value: true, expected: KindBool},
		{value: 1, expected: KindNumber},
		{value: uint64(1), expected: KindNumber},
		{value: 1.5, expected: KindNumber},
		{value: "foo", expected: KindString},
		{value: []any{"a"}, expected: KindSequence},
		{value: map[string]any{"a": 1}, expected: KindMapping},
		{value: []string{"a"}, expected: KindOther},
		{value: map[string]string{"a": "b"}, expected: KindOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, KindOf(tt.value), "%#v", tt.value)
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
