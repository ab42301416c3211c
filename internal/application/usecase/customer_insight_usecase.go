package usecase

import (
	"fmt"
	"time"

	"github.com/meruhub/clientes-api/internal/application/dto"
	"github.com/meruhub/clientes-api/internal/domain/analytics"
	"github.com/meruhub/clientes-api/internal/domain/ledger"
	"github.com/meruhub/clientes-api/internal/domain/resolver"
	"github.com/meruhub/clientes-api/pkg/currency"
)

// AvgUndefinedMsg sentinel del contrato legado cuando el cliente tiene una
// sola compra y el promedio de días entre compras queda indefinido.
const AvgUndefinedMsg = "No es posible calcular el promedio con una sola compra"

// CustomerInsightUseCase orquesta la consulta completa: resolver la identidad
// contra el ledger, calcular el paquete de métricas y armar el DTO de
// respuesta con los montos ya formateados.
type CustomerInsightUseCase struct {
	ledger *ledger.Ledger
	res    *resolver.Resolver
}

// NewCustomerInsightUseCase construye el caso de uso.
func NewCustomerInsightUseCase(l *ledger.Ledger) *CustomerInsightUseCase {
	return &CustomerInsightUseCase{ledger: l, res: resolver.New(l)}
}

// Lookup resuelve el criterio y devuelve el análisis del cliente. Los errores
// de dominio (criterio vacío, sin coincidencia cercana, cliente no
// encontrado) se devuelven tal cual para que el handler los mapee a HTTP.
func (uc *CustomerInsightUseCase) Lookup(criterion string, mode resolver.Mode, now time.Time) (*dto.CustomerInsightDTO, error) {
	records, matched, err := uc.res.Resolve(criterion, mode)
	if err != nil {
		return nil, err
	}

	bundle, err := analytics.ComputeMetrics(records, now)
	if err != nil {
		return nil, fmt.Errorf("calcular métricas de %q: %w", matched, err)
	}

	return buildInsightDTO(matched, bundle), nil
}

// buildInsightDTO convierte el MetricsBundle crudo al contrato de respuesta.
func buildInsightDTO(cliente string, b *analytics.MetricsBundle) *dto.CustomerInsightDTO {
	var promedio any = AvgUndefinedMsg
	if b.AvgDaysBetween != nil {
		promedio = *b.AvgDaysBetween
	}

	top3 := make([]dto.TopProductoDTO, 0, len(b.TopProducts))
	for _, p := range b.TopProducts {
		top3 = append(top3, dto.TopProductoDTO{
			Producto: p.Product,
			Cantidad: p.Quantity,
			Monto:    currency.Format(p.Amount),
			Tier:     string(p.Tier),
		})
	}

	return &dto.CustomerInsightDTO{
		Cliente:         cliente,
		UltimaCompra:    b.LastPurchase.Format("2006-01-02"),
		DiasSinComprar:  b.DaysSinceLast,
		PromedioDias:    promedio,
		ProductoTop:     b.TopProduct,
		MesMasCompras:   b.BestMonth,
		MesMenosCompras: b.WorstMonth,
		Promedio1P:      b.AvgQuantity1P.InexactFloat64(),
		Promedio3P:      b.AvgQuantity3P.InexactFloat64(),
		Top3:            top3,
		MesesSinCompras: b.MissingMonths,
		MesNoCompraba:   b.PriorYearLastMonth,
	}
}

// ListCustomers devuelve el directorio de clientes distintos del ledger en
// orden de primera aparición, con su número de órdenes.
func (uc *CustomerInsightUseCase) ListCustomers() []dto.CustomerSummaryDTO {
	var order []string
	byID := make(map[string]*dto.CustomerSummaryDTO)
	for _, r := range uc.ledger.Rows() {
		s, ok := byID[r.CustomerID]
		if !ok {
			s = &dto.CustomerSummaryDTO{ID: r.CustomerID, Nombre: r.FullName, Correo: r.Email}
			byID[r.CustomerID] = s
			order = append(order, r.CustomerID)
		}
		s.Ordenes++
	}

	out := make([]dto.CustomerSummaryDTO, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}
