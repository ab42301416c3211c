// Package analytics implementa el motor de métricas de comportamiento de
// compra: dado el conjunto de filas de un cliente ya resuelto, deriva el
// paquete completo de métricas (recencia, cadencia, afinidad de producto,
// extremos mensuales, promedios por tier, top de productos y huecos de
// compra). Todo es cómputo puro en memoria; el reloj se inyecta para que el
// resultado sea determinista y testeable.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meruhub/clientes-api/internal/domain"
	"github.com/meruhub/clientes-api/internal/domain/entity"
	"github.com/meruhub/clientes-api/pkg/calendar"
)

// topProductsCount tamaño del ranking de productos del paquete de métricas.
const topProductsCount = 3

// ProductRanking un puesto del top de productos: cantidad y monto sumados por
// el par (producto, tier).
type ProductRanking struct {
	Product  string
	Tier     entity.ListingTier
	Quantity int64
	Amount   decimal.Decimal
}

// MetricsBundle paquete de forma fija con las métricas derivadas del
// historial de un cliente. Los montos van crudos; el formato de moneda es
// responsabilidad de la capa de presentación.
type MetricsBundle struct {
	LastPurchase   time.Time
	DaysSinceLast  int
	AvgDaysBetween *float64 // nil con una sola compra: promedio indefinido, no cero

	TopProduct string

	// Extremos mensuales. La cubeta interna es (año, mes); hacia afuera solo
	// se emite el nombre del mes, como en el contrato legado.
	BestMonth  string
	WorstMonth string

	AvgQuantity1P decimal.Decimal // 0 si el cliente no tiene compras 1P
	AvgQuantity3P decimal.Decimal

	TopProducts []ProductRanking // hasta 3, descendente por cantidad

	MissingMonths      []string // meses sin compras del año de now, enero..mes de now
	PriorYearLastMonth string   // nombre de mes, o el sentinel "No realizo compras en <año>"
}

// productTierKey clave de agrupación del top de productos.
type productTierKey struct {
	Product string
	Tier    entity.ListingTier
}

// ComputeMetrics deriva el MetricsBundle del conjunto de filas de un cliente.
// Es una función pura de (records, now): misma entrada, mismo resultado.
// Falla con ErrEmptyRecordSet si records está vacío; el resolver garantiza que
// eso no ocurre en el flujo normal.
func ComputeMetrics(records []entity.OrderLine, now time.Time) (*MetricsBundle, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyRecordSet
	}
	b := &MetricsBundle{}

	// 1. Recencia: fecha máxima y días transcurridos (piso).
	last := records[0].FulfilmentDate
	for _, r := range records[1:] {
		if r.FulfilmentDate.After(last) {
			last = r.FulfilmentDate
		}
	}
	b.LastPurchase = last
	b.DaysSinceLast = int(now.Sub(last).Hours() / 24)

	// 2. Cadencia: promedio de los huecos en días entre compras consecutivas
	// (orden cronológico), redondeado a 1 decimal. Con una sola compra el
	// promedio queda indefinido (nil), que no es lo mismo que cero.
	if len(records) >= 2 {
		dates := make([]time.Time, len(records))
		for i, r := range records {
			dates[i] = r.FulfilmentDate
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		var total float64
		for i := 1; i < len(dates); i++ {
			total += dates[i].Sub(dates[i-1]).Hours() / 24
		}
		avg := math.Round(total/float64(len(dates)-1)*10) / 10
		b.AvgDaysBetween = &avg
	}

	// 3. Producto más comprado por cantidad sumada.
	byProduct := newGroupSum[string]()
	for _, r := range records {
		byProduct.add(r.ProductDescription, r.Quantity, decimal.Zero)
	}
	b.TopProduct = byProduct.argMax()

	// 4. Extremos mensuales por cubeta (año, mes).
	byMonth := newGroupSum[calendar.Period]()
	for _, r := range records {
		byMonth.add(calendar.PeriodOf(r.FulfilmentDate), r.Quantity, decimal.Zero)
	}
	b.BestMonth = byMonth.argMax().Name()
	b.WorstMonth = byMonth.argMin().Name()

	// 5. Promedio de cantidad por tier. Tier sin filas -> 0, nunca NaN.
	b.AvgQuantity1P = tierAverage(records, entity.TierFirstParty)
	b.AvgQuantity3P = tierAverage(records, entity.TierThirdParty)

	// 6. Top 3 por (producto, tier) con cantidad y monto sumados.
	byProductTier := newGroupSum[productTierKey]()
	for _, r := range records {
		byProductTier.add(productTierKey{r.ProductDescription, r.ListingTier}, r.Quantity, r.Amount)
	}
	for _, k := range byProductTier.top(topProductsCount) {
		t := byProductTier.total(k)
		b.TopProducts = append(b.TopProducts, ProductRanking{
			Product:  k.Product,
			Tier:     k.Tier,
			Quantity: t.Quantity,
			Amount:   t.Amount,
		})
	}

	// 7. Meses sin compras del año en curso, de enero al mes de now inclusive.
	purchased := make(map[calendar.Period]bool, len(records))
	for _, r := range records {
		purchased[calendar.PeriodOf(r.FulfilmentDate)] = true
	}
	year := now.Year()
	from := calendar.Period{Year: year, Month: time.January}
	to := calendar.Period{Year: year, Month: now.Month()}
	b.MissingMonths = []string{}
	for _, p := range calendar.MonthRange(from, to) {
		if !purchased[p] {
			b.MissingMonths = append(b.MissingMonths, p.Name())
		}
	}

	// 8. Mes de la última compra del año calendario anterior.
	b.PriorYearLastMonth = priorYearLastMonth(records, year-1)

	return b, nil
}

// tierAverage promedio de cantidad de las filas del tier, redondeado a 2
// decimales. Partición vacía -> cero (guarda explícita de división por cero).
func tierAverage(records []entity.OrderLine, tier entity.ListingTier) decimal.Decimal {
	var sum, count int64
	for _, r := range records {
		if r.ListingTier == tier {
			sum += r.Quantity
			count++
		}
	}
	if count == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(count)).Round(2)
}

// priorYearLastMonth nombre del mes de la compra más reciente del año dado, o
// el sentinel si el cliente no compró ese año.
func priorYearLastMonth(records []entity.OrderLine, year int) string {
	var last time.Time
	found := false
	for _, r := range records {
		if r.FulfilmentDate.Year() == year && (!found || r.FulfilmentDate.After(last)) {
			last = r.FulfilmentDate
			found = true
		}
	}
	if !found {
		return fmt.Sprintf("No realizo compras en %d", year)
	}
	return calendar.MonthName(last.Month())
}
