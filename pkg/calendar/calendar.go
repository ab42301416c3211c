// Package calendar traduce meses a su nombre en español y enumera rangos de
// periodos (cubetas año-mes). Utilidad pura, sin estado.
package calendar

import "time"

// Nombres de los meses en español, indexados por time.Month - 1.
var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName devuelve el nombre del mes en español (Enero..Diciembre).
// El mes debe estar en el rango 1..12; un valor fuera de rango es un error
// de programación del llamador.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// Period identifica un mes calendario concreto (cubeta año-mes).
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf devuelve el periodo al que pertenece una fecha.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Name devuelve el nombre en español del mes del periodo.
func (p Period) Name() string {
	return MonthName(p.Month)
}

// Before indica si p es estrictamente anterior a q.
func (p Period) Before(q Period) bool {
	if p.Year != q.Year {
		return p.Year < q.Year
	}
	return p.Month < q.Month
}

// Next devuelve el periodo del mes siguiente.
func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// MonthRange enumera los periodos entre from y to, ambos inclusive, en orden
// ascendente. Si to es anterior a from devuelve un slice vacío.
func MonthRange(from, to Period) []Period {
	if to.Before(from) {
		return nil
	}
	var out []Period
	for p := from; !to.Before(p); p = p.Next() {
		out = append(out, p)
	}
	return out
}
