package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFecha(t *testing.T) {
	f, err := ParseFecha("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 2026, f.Year())
	assert.Equal(t, time.March, f.Month())
	assert.Equal(t, 2, f.Day())

	_, err = ParseFecha("02/03/2026")
	assert.Error(t, err)
}

func TestInicioDeAnio(t *testing.T) {
	ahora := time.Date(2026, 8, 15, 17, 30, 0, 0, time.UTC)
	inicio := InicioDeAnio(ahora)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), inicio)
}

func TestDateRoundTrip(t *testing.T) {
	f, err := ParseFecha("2026-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31", FormatDate(ToDate(f)))
}
