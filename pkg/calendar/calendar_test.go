package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meruhub/clientes-api/pkg/calendar"
)

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Enero", calendar.MonthName(time.January))
	assert.Equal(t, "Septiembre", calendar.MonthName(time.September))
	assert.Equal(t, "Diciembre", calendar.MonthName(time.December))
}

func TestPeriodOf(t *testing.T) {
	p := calendar.PeriodOf(time.Date(2024, time.November, 29, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, calendar.Period{Year: 2024, Month: time.November}, p)
	assert.Equal(t, "Noviembre", p.Name())
}

func TestPeriod_Next_CruzaAnio(t *testing.T) {
	p := calendar.Period{Year: 2023, Month: time.December}
	assert.Equal(t, calendar.Period{Year: 2024, Month: time.January}, p.Next())
}

func TestMonthRange_Inclusivo(t *testing.T) {
	got := calendar.MonthRange(
		calendar.Period{Year: 2024, Month: time.January},
		calendar.Period{Year: 2024, Month: time.April},
	)
	require.Len(t, got, 4)
	assert.Equal(t, calendar.Period{Year: 2024, Month: time.January}, got[0])
	assert.Equal(t, calendar.Period{Year: 2024, Month: time.April}, got[3])
}

func TestMonthRange_CruzaAnio(t *testing.T) {
	got := calendar.MonthRange(
		calendar.Period{Year: 2023, Month: time.November},
		calendar.Period{Year: 2024, Month: time.February},
	)
	require.Len(t, got, 4)
	assert.Equal(t, calendar.Period{Year: 2023, Month: time.December}, got[1])
	assert.Equal(t, calendar.Period{Year: 2024, Month: time.January}, got[2])
}

func TestMonthRange_UnSoloMes(t *testing.T) {
	p := calendar.Period{Year: 2024, Month: time.July}
	got := calendar.MonthRange(p, p)
	assert.Equal(t, []calendar.Period{p}, got)
}

func TestMonthRange_RangoInvertido(t *testing.T) {
	got := calendar.MonthRange(
		calendar.Period{Year: 2024, Month: time.May},
		calendar.Period{Year: 2024, Month: time.January},
	)
	assert.Empty(t, got)
}

func TestMonthRange_Reiniciable(t *testing.T) {
	from := calendar.Period{Year: 2024, Month: time.January}
	to := calendar.Period{Year: 2024, Month: time.June}
	assert.Equal(t, calendar.MonthRange(from, to), calendar.MonthRange(from, to))
}
