// Package currency formatea montos como cadenas de moneda ("$1,234.56").
// Es una preocupación de presentación: el motor de análisis produce montos
// crudos y este paquete los convierte a texto al armar la respuesta.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Printer con la convención de agrupación de es-MX: coma de millares y punto
// decimal, igual que el formato "${:,.2f}" del servicio legado.
var printer = message.NewPrinter(language.MustParse("es-MX"))

// Format devuelve el monto con símbolo de pesos, separador de millares y
// exactamente 2 decimales, ej. "$1,234.56".
func Format(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
