package helper

import (
	"time"

	"gorm.io/datatypes"
)

const LayoutFecha = "2006-01-02"

// ParseFecha interpreta "YYYY-MM-DD".
func ParseFecha(s string) (time.Time, error) {
	return time.Parse(LayoutFecha, s)
}

func FormatFecha(t time.Time) string {
	return t.Format(LayoutFecha)
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(LayoutFecha)
}

func ToDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// InicioDeAnio: 1 de enero del año de t (para el cómputo anual de inasistencias).
func InicioDeAnio(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}
