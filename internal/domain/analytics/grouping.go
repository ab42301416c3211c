package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// groupTotals sumas acumuladas de un grupo.
type groupTotals struct {
	Quantity int64
	Amount   decimal.Decimal
}

// groupSum acumula sumas por clave preservando el orden de primera aparición.
// Ese orden es el criterio de desempate de todas las selecciones (arg-max,
// arg-min y top-K): a igual cantidad gana el grupo visto primero en el ledger.
type groupSum[K comparable] struct {
	keys   []K
	totals map[K]groupTotals
}

func newGroupSum[K comparable]() *groupSum[K] {
	return &groupSum[K]{totals: make(map[K]groupTotals)}
}

func (g *groupSum[K]) add(key K, qty int64, amount decimal.Decimal) {
	t, ok := g.totals[key]
	if !ok {
		g.keys = append(g.keys, key)
	}
	t.Quantity += qty
	t.Amount = t.Amount.Add(amount)
	g.totals[key] = t
}

func (g *groupSum[K]) total(key K) groupTotals {
	return g.totals[key]
}

// argMax devuelve la primera clave con cantidad sumada máxima.
// Requiere al menos un grupo.
func (g *groupSum[K]) argMax() K {
	best := g.keys[0]
	for _, k := range g.keys[1:] {
		if g.totals[k].Quantity > g.totals[best].Quantity {
			best = k
		}
	}
	return best
}

// argMin devuelve la primera clave con cantidad sumada mínima.
func (g *groupSum[K]) argMin() K {
	best := g.keys[0]
	for _, k := range g.keys[1:] {
		if g.totals[k].Quantity < g.totals[best].Quantity {
			best = k
		}
	}
	return best
}

// top devuelve hasta n claves ordenadas por cantidad sumada descendente. El
// sort estable conserva el orden de primera aparición entre cantidades
// iguales. Con menos de n grupos devuelve todos, nunca es un error.
func (g *groupSum[K]) top(n int) []K {
	ordered := make([]K, len(g.keys))
	copy(ordered, g.keys)
	sort.SliceStable(ordered, func(i, j int) bool {
		return g.totals[ordered[i]].Quantity > g.totals[ordered[j]].Quantity
	})
	if len(ordered) > n {
		ordered = ordered[:n]
	}
	return ordered
}
