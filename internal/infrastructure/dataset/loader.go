// Package dataset carga el histórico de órdenes desde el CSV fuente y lo
// convierte en líneas del ledger. La ingesta ocurre una sola vez al arrancar;
// las filas inválidas se saltan con un warn en lugar de tumbar el proceso.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meruhub/clientes-api/internal/domain/entity"
	"github.com/meruhub/clientes-api/pkg/logger"
)

// dateLayout formato de fecha del dataset: dd/mm/aa.
const dateLayout = "02/01/06"

// Columnas requeridas del CSV, con los nombres del sistema origen.
const (
	colCustomerID  = "CUSTOMER_MOS_ID"
	colFullName    = "CUSTOMER_FULL_NAME"
	colEmail       = "EMAIL"
	colDate        = "SO_FULFILMENT_DATE"
	colProduct     = "PRODUCT_DESCRIPTION"
	colListingTier = "LISTING_TIER"
	colQuantity    = "TOTAL_QUANTITY"
	colAmount      = "TOTAL_AMOUNT"
)

// Load abre el CSV en path y devuelve las líneas de orden parseadas.
func Load(path string, log *logger.Logger) ([]entity.OrderLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir dataset: %w", err)
	}
	defer f.Close()
	return Parse(f, log)
}

// Parse lee el CSV desde r. La primera fila es el encabezado; el orden de las
// columnas es libre, pero las ocho requeridas deben estar presentes.
func Parse(r io.Reader, log *logger.Logger) ([]entity.OrderLine, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var lines []entity.OrderLine
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer fila %d: %w", row, err)
		}

		line, err := parseLine(record, idx)
		if err != nil {
			log.Warn().Int("fila", row).Err(err).Msg("fila del dataset descartada")
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// columnIndex mapea nombre de columna -> posición y valida las requeridas.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	required := []string{
		colCustomerID, colFullName, colEmail, colDate,
		colProduct, colListingTier, colQuantity, colAmount,
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("columna requerida ausente: %s", name)
		}
	}
	return idx, nil
}

func parseLine(record []string, idx map[string]int) (entity.OrderLine, error) {
	field := func(name string) string {
		return strings.TrimSpace(record[idx[name]])
	}

	date, err := time.ParseInLocation(dateLayout, field(colDate), time.UTC)
	if err != nil {
		return entity.OrderLine{}, fmt.Errorf("fecha inválida %q: %w", field(colDate), err)
	}

	tier := entity.ListingTier(field(colListingTier))
	if !tier.Valid() {
		return entity.OrderLine{}, fmt.Errorf("listing tier desconocido %q", field(colListingTier))
	}

	qty, err := strconv.ParseInt(field(colQuantity), 10, 64)
	if err != nil || qty < 0 {
		return entity.OrderLine{}, fmt.Errorf("cantidad inválida %q", field(colQuantity))
	}

	amount, err := decimal.NewFromString(field(colAmount))
	if err != nil || amount.IsNegative() {
		return entity.OrderLine{}, fmt.Errorf("monto inválido %q", field(colAmount))
	}

	return entity.OrderLine{
		CustomerID:         field(colCustomerID),
		FullName:           field(colFullName),
		Email:              field(colEmail),
		FulfilmentDate:     date,
		ProductDescription: field(colProduct),
		ListingTier:        tier,
		Quantity:           qty,
		Amount:             amount,
	}, nil
}
