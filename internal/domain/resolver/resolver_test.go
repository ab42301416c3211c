package resolver_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meruhub/clientes-api/internal/domain"
	"github.com/meruhub/clientes-api/internal/domain/entity"
	"github.com/meruhub/clientes-api/internal/domain/ledger"
	"github.com/meruhub/clientes-api/internal/domain/resolver"
)

func fila(id, nombre, correo, producto string) entity.OrderLine {
	return entity.OrderLine{
		CustomerID:         id,
		FullName:           nombre,
		Email:              correo,
		FulfilmentDate:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		ProductDescription: producto,
		ListingTier:        entity.TierFirstParty,
		Quantity:           1,
		Amount:             decimal.NewFromInt(10),
	}
}

func buildResolver() *resolver.Resolver {
	l := ledger.New([]entity.OrderLine{
		fila("C1", "John Smith", "john.smith@example.com", "Café soluble 200g"),
		fila("C2", "Jane Doe", "jane.doe@example.com", "Arroz blanco 900g"),
		fila("C1", "John Smith", "john.smith@example.com", "Atún en agua 140g"),
	})
	return resolver.New(l)
}

func TestResolve_PorID_Exacto(t *testing.T) {
	rows, matched, err := buildResolver().Resolve("C1", resolver.ByID)
	require.NoError(t, err)

	assert.Equal(t, "C1", matched)
	require.Len(t, rows, 2)
	assert.Equal(t, "Café soluble 200g", rows[0].ProductDescription)
	assert.Equal(t, "Atún en agua 140g", rows[1].ProductDescription)
}

func TestResolve_PorID_NoEncontrado(t *testing.T) {
	rows, _, err := buildResolver().Resolve("ZZZ", resolver.ByID)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	assert.Nil(t, rows, "un ID ausente nunca devuelve un grupo vacío silencioso")
}

func TestResolve_PorNombre_ToleraErratas(t *testing.T) {
	// "Jon Smyth" debe resolver a "John Smith" (token sort ratio >= 80)
	// y devolver el grupo exacto del ganador, no todo lo que supere el umbral.
	rows, matched, err := buildResolver().Resolve("Jon Smyth", resolver.ByName)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", matched)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "C1", r.CustomerID)
	}
}

func TestResolve_PorNombre_SinCoincidenciaCercana(t *testing.T) {
	_, _, err := buildResolver().Resolve("Xyzzyx Nobody", resolver.ByName)
	assert.ErrorIs(t, err, domain.ErrNoCloseMatch)
}

func TestResolve_PorNombre_OrdenDeTokensNoImporta(t *testing.T) {
	_, matched, err := buildResolver().Resolve("Smith John", resolver.ByName)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", matched)
}

func TestResolve_PorCorreo_ToleraErratas(t *testing.T) {
	rows, matched, err := buildResolver().Resolve("jane.do@example.com", resolver.ByEmail)
	require.NoError(t, err)

	assert.Equal(t, "jane.doe@example.com", matched)
	require.Len(t, rows, 1)
	assert.Equal(t, "C2", rows[0].CustomerID)
}

func TestResolve_CriterioVacio(t *testing.T) {
	r := buildResolver()

	_, _, err := r.Resolve("", resolver.ByName)
	assert.ErrorIs(t, err, domain.ErrEmptyCriterion)

	_, _, err = r.Resolve("   ", resolver.ByID)
	assert.ErrorIs(t, err, domain.ErrEmptyCriterion, "solo espacios cuenta como vacío")
}
