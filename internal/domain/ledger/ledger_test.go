package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meruhub/clientes-api/internal/domain/entity"
	"github.com/meruhub/clientes-api/internal/domain/ledger"
)

func lineaDe(id, nombre, correo string) entity.OrderLine {
	return entity.OrderLine{
		CustomerID:         id,
		FullName:           nombre,
		Email:              correo,
		FulfilmentDate:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		ProductDescription: "Jabón de tocador 3 pack",
		ListingTier:        entity.TierThirdParty,
		Quantity:           2,
		Amount:             decimal.NewFromFloat(45.90),
	}
}

func TestLedger_RowsConservaOrden(t *testing.T) {
	l := ledger.New([]entity.OrderLine{
		lineaDe("A", "Ana Torres", "ana@example.com"),
		lineaDe("B", "Luis Hernández", "luis@example.com"),
		lineaDe("A", "Ana Torres", "ana@example.com"),
	})

	require.Equal(t, 3, l.Len())
	rows := l.Rows()
	assert.Equal(t, "A", rows[0].CustomerID)
	assert.Equal(t, "B", rows[1].CustomerID)
	assert.Equal(t, "A", rows[2].CustomerID)
}

func TestLedger_FilterByCustomerID(t *testing.T) {
	l := ledger.New([]entity.OrderLine{
		lineaDe("A", "Ana Torres", "ana@example.com"),
		lineaDe("B", "Luis Hernández", "luis@example.com"),
		lineaDe("A", "Ana Torres", "ana@example.com"),
	})

	assert.Len(t, l.FilterByCustomerID("A"), 2)
	assert.Len(t, l.FilterByCustomerID("B"), 1)
	assert.Empty(t, l.FilterByCustomerID("nadie"))
}

func TestLedger_ColumnasAlineadasPorFila(t *testing.T) {
	l := ledger.New([]entity.OrderLine{
		lineaDe("A", "Ana Torres", "ana@example.com"),
		lineaDe("B", "Luis Hernández", "luis@example.com"),
	})

	assert.Equal(t, []string{"Ana Torres", "Luis Hernández"}, l.CustomerNames())
	assert.Equal(t, []string{"ana@example.com", "luis@example.com"}, l.CustomerEmails())
}

func TestLedger_NoCompartePropiedadConElSliceDeEntrada(t *testing.T) {
	input := []entity.OrderLine{
		lineaDe("A", "Ana Torres", "ana@example.com"),
	}
	l := ledger.New(input)

	// Mutar el slice original no debe tocar el ledger.
	input[0].CustomerID = "HACKED"
	assert.Equal(t, "A", l.Rows()[0].CustomerID)
}

func TestLedger_DatasetVacio(t *testing.T) {
	l := ledger.New(nil)

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Rows())
	assert.Empty(t, l.FilterByCustomerID("A"))
	assert.Empty(t, l.CustomerNames())
}
