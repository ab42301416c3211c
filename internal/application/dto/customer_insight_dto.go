package dto

import "encoding/json"

// ── Cuerpos de petición ───────────────────────────────────────────────────────

// SearchByIDRequest cuerpo de POST /buscar_por_id.
type SearchByIDRequest struct {
	BuscarPorID string `json:"buscar_por_id"`
}

// SearchByNameRequest cuerpo de POST /buscar_por_nombre.
type SearchByNameRequest struct {
	BuscarPorNombre string `json:"buscar_por_nombre"`
}

// SearchByEmailRequest cuerpo de POST /buscar_por_correo.
type SearchByEmailRequest struct {
	BuscarPorCorreo string `json:"buscar_por_correo"`
}

// ── Respuesta ─────────────────────────────────────────────────────────────────

// TopProductoDTO un puesto del top de productos. Se serializa como tupla
// [producto, cantidad, monto, tier], igual que el contrato legado.
type TopProductoDTO struct {
	Producto string
	Cantidad int64
	Monto    string // monto ya formateado, ej. "$1,234.56"
	Tier     string
}

// MarshalJSON emite la tupla posicional.
func (t TopProductoDTO) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Producto, t.Cantidad, t.Monto, t.Tier})
}

// CustomerInsightDTO respuesta del análisis de histórico de compras de un
// cliente. Las claves JSON reproducen el contrato legado del servicio tal
// cual (incluidos los años literales de las dos últimas claves); los valores
// se calculan respecto al año del reloj inyectado.
type CustomerInsightDTO struct {
	Cliente         string           `json:"Cliente"`
	UltimaCompra    string           `json:"Ultima compra"` // YYYY-MM-DD
	DiasSinComprar  int              `json:"Dias sin comprarnos"`
	PromedioDias    any              `json:"Cada cuantos dias compra (promedio)"` // float64, o el sentinel con una sola compra
	ProductoTop     string           `json:"Producto mas comprado"`
	MesMasCompras   string           `json:"Mes con mas compras"`
	MesMenosCompras string           `json:"Mes con menos compras"`
	Promedio1P      float64          `json:"Promedio cantidad 1P"`
	Promedio3P      float64          `json:"Promedio cantidad 3P"`
	Top3            []TopProductoDTO `json:"Top 3 productos"`
	MesesSinCompras []string         `json:"Meses sin compras en 2024"`
	MesNoCompraba   string           `json:"Desde que mes no compraba en 2023"`
}

// CustomerSummaryDTO entrada del directorio GET /clientes.
type CustomerSummaryDTO struct {
	ID      string `json:"id"`
	Nombre  string `json:"nombre"`
	Correo  string `json:"correo"`
	Ordenes int    `json:"ordenes"`
}
