package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatYParseID(t *testing.T) {
	// los IDs viajan como string para no perder precisión en JSON
	grande := int64(9007199254740993) // 2^53 + 1
	s := FormatID(grande)
	assert.Equal(t, "9007199254740993", s)

	back, err := ParseID(s)
	require.NoError(t, err)
	assert.Equal(t, grande, back)
}

func TestParseIDInvalido(t *testing.T) {
	for _, caso := range []string{"", "abc", "12.5", "12abc"} {
		_, err := ParseID(caso)
		assert.Error(t, err, "caso %q", caso)
	}
}

func TestFormatIDPtr(t *testing.T) {
	assert.Nil(t, FormatIDPtr(nil))

	id := int64(42)
	s := FormatIDPtr(&id)
	require.NotNil(t, s)
	assert.Equal(t, "42", *s)
}
