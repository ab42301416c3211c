// Package resolver localiza el grupo de filas de un cliente a partir de un
// criterio libre: ID exacto, o nombre/correo aproximado por similitud difusa.
package resolver

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/meruhub/clientes-api/internal/domain"
	"github.com/meruhub/clientes-api/internal/domain/entity"
	"github.com/meruhub/clientes-api/internal/domain/ledger"
)

// Mode indica contra qué columna del ledger se resuelve el criterio.
// Los valores coinciden con los nombres de columna del dataset.
type Mode string

const (
	ByID    Mode = "CUSTOMER_MOS_ID"
	ByName  Mode = "CUSTOMER_FULL_NAME"
	ByEmail Mode = "EMAIL"
)

// matchThreshold puntuación token-sort mínima (0-100) para aceptar una
// coincidencia difusa. Por debajo de esto la búsqueda falla con
// ErrNoCloseMatch en lugar de devolver un cliente dudoso.
const matchThreshold = 80

// Resolver resuelve criterios de búsqueda contra el ledger. No guarda estado
// entre llamadas; es seguro compartirlo entre peticiones.
type Resolver struct {
	ledger *ledger.Ledger
}

// New construye el resolver sobre el ledger dado.
func New(l *ledger.Ledger) *Resolver {
	return &Resolver{ledger: l}
}

// Resolve devuelve el grupo de filas del cliente y el valor ganador con el que
// se resolvió (el propio criterio en modo ID, o el candidato con mejor
// puntuación en los modos difusos).
//
// En los modos difusos gana el único candidato con mayor puntuación; los
// empates se resuelven a favor del primero en orden de fila del ledger, para
// que el resultado sea reproducible. Se devuelven solo las filas cuyo valor
// es exactamente igual al ganador, no todas las que superen el umbral.
func (r *Resolver) Resolve(criterion string, mode Mode) ([]entity.OrderLine, string, error) {
	criterion = strings.TrimSpace(criterion)
	if criterion == "" {
		return nil, "", domain.ErrEmptyCriterion
	}

	switch mode {
	case ByName:
		return r.resolveFuzzy(criterion, r.ledger.CustomerNames(), func(ol entity.OrderLine) string {
			return ol.FullName
		})
	case ByEmail:
		return r.resolveFuzzy(criterion, r.ledger.CustomerEmails(), func(ol entity.OrderLine) string {
			return ol.Email
		})
	default:
		// Igual que el servicio legado: cualquier otro modo busca por ID exacto.
		rows := r.ledger.FilterByCustomerID(criterion)
		if len(rows) == 0 {
			return nil, "", domain.ErrCustomerNotFound
		}
		return rows, criterion, nil
	}
}

// resolveFuzzy puntúa el criterio contra cada candidato en orden de fila y se
// queda con el mejor. La comparación estricta (>) garantiza que en empate gana
// la primera aparición.
func (r *Resolver) resolveFuzzy(criterion string, candidates []string, value func(entity.OrderLine) string) ([]entity.OrderLine, string, error) {
	best := ""
	bestScore := -1
	for _, cand := range candidates {
		if score := fuzzy.TokenSortRatio(criterion, cand); score > bestScore {
			best, bestScore = cand, score
		}
	}
	if bestScore < matchThreshold {
		return nil, "", domain.ErrNoCloseMatch
	}

	var rows []entity.OrderLine
	for _, row := range r.ledger.Rows() {
		if value(row) == best {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		// No debería ocurrir: el ganador salió de una columna del propio ledger.
		return nil, "", domain.ErrCustomerNotFound
	}
	return rows, best, nil
}
