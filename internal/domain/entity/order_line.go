package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingTier clasifica el canal de venta de una línea: inventario propio (1P)
// o de vendedores terceros (3P).
type ListingTier string

const (
	TierFirstParty ListingTier = "1P"
	TierThirdParty ListingTier = "3P"
)

// Valid indica si el tier es uno de los valores conocidos.
func (t ListingTier) Valid() bool {
	return t == TierFirstParty || t == TierThirdParty
}

// OrderLine representa una línea histórica de orden de venta tal como viene
// del dataset. Es un valor inmutable: una vez cargado el ledger nadie lo modifica.
//
// FulfilmentDate es una fecha calendario (medianoche UTC, sin hora).
// Quantity es un entero no negativo; Amount un decimal no negativo sin moneda.
type OrderLine struct {
	CustomerID         string
	FullName           string
	Email              string
	FulfilmentDate     time.Time
	ProductDescription string
	ListingTier        ListingTier
	Quantity           int64
	Amount             decimal.Decimal
}
