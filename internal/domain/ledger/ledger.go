// Package ledger expone la vista inmutable en memoria del histórico de
// órdenes. Se construye una sola vez al arrancar el proceso; después solo se
// lee, por lo que es seguro consultarlo desde peticiones concurrentes sin
// sincronización.
package ledger

import "github.com/meruhub/clientes-api/internal/domain/entity"

// Ledger histórico completo de líneas de orden, en el orden del dataset.
type Ledger struct {
	rows   []entity.OrderLine
	names  []string // columna FullName, alineada por índice de fila
	emails []string // columna Email, alineada por índice de fila
}

// New construye el ledger a partir de las líneas cargadas. Copia el slice de
// entrada para que ninguna referencia externa pueda mutar el histórico.
func New(rows []entity.OrderLine) *Ledger {
	owned := make([]entity.OrderLine, len(rows))
	copy(owned, rows)

	names := make([]string, len(owned))
	emails := make([]string, len(owned))
	for i, r := range owned {
		names[i] = r.FullName
		emails[i] = r.Email
	}
	return &Ledger{rows: owned, names: names, emails: emails}
}

// Len devuelve el número de líneas del histórico.
func (l *Ledger) Len() int {
	return len(l.rows)
}

// Rows devuelve la secuencia completa de líneas en orden del dataset.
// El slice devuelto no debe modificarse.
func (l *Ledger) Rows() []entity.OrderLine {
	return l.rows
}

// FilterByCustomerID devuelve las líneas cuyo CustomerID coincide exactamente,
// en orden del dataset. Un ID desconocido devuelve un slice vacío.
func (l *Ledger) FilterByCustomerID(id string) []entity.OrderLine {
	var out []entity.OrderLine
	for _, r := range l.rows {
		if r.CustomerID == id {
			out = append(out, r)
		}
	}
	return out
}

// CustomerNames devuelve la columna de nombres completos alineada por fila.
// La usa el resolver para generar candidatos de búsqueda difusa.
func (l *Ledger) CustomerNames() []string {
	return l.names
}

// CustomerEmails devuelve la columna de correos alineada por fila.
func (l *Ledger) CustomerEmails() []string {
	return l.emails
}
