package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "0xA|1", Key("0xA", "1"))
	assert.Equal(t, Key("0xA", "1"), Key("0xA", "1"), "Key must be deterministic")
}

func TestKey_DiffersOnEitherInput(t *testing.T) {
	tests := []struct {
		name  string
		other string
	}{
		{"Different contract", Key("0xB", "1")},
		{"Different token id", Key("0xA", "2")},
		{"Different case", Key("0xa", "1")},
		{"Padded token id", Key("0xA", "01")},
	}

	base := Key("0xA", "1")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, tt.other)
		})
	}
}

