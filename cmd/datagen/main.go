// datagen genera un CSV de ejemplo con el histórico de órdenes para correr la
// API en local sin el dataset real.
//
// Uso: go run ./cmd/datagen [-out archivos_clientes.csv] [-clientes 25] [-filas 400] [-seed 1]
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var productos = []string{
	"Detergente líquido 5L",
	"Papel higiénico 12 rollos",
	"Aceite vegetal 1L",
	"Arroz blanco 900g",
	"Refresco cola 600ml",
	"Galletas surtidas 1kg",
	"Jabón de tocador 3 pack",
	"Café soluble 200g",
	"Atún en agua 140g",
	"Shampoo familiar 750ml",
}

var nombres = []string{
	"Ana Torres", "Luis Hernández", "María García", "Jorge Ramírez",
	"Lucía Fernández", "Carlos Mendoza", "Sofía Castillo", "Pedro Aguilar",
	"Elena Vargas", "Miguel Soto",
}

func main() {
	out := flag.String("out", "archivos_clientes.csv", "ruta del CSV de salida")
	nClientes := flag.Int("clientes", 25, "número de clientes distintos")
	nFilas := flag.Int("filas", 400, "número de líneas de orden")
	seed := flag.Int64("seed", 1, "semilla del generador")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	type cliente struct {
		id, nombre, correo string
	}
	clientes := make([]cliente, *nClientes)
	for i := range clientes {
		nombre := nombres[rng.Intn(len(nombres))]
		clientes[i] = cliente{
			id:     uuid.NewString(),
			nombre: fmt.Sprintf("%s %d", nombre, i+1),
			correo: fmt.Sprintf("cliente%d@example.com", i+1),
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crear salida: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{
		"CUSTOMER_MOS_ID", "CUSTOMER_FULL_NAME", "EMAIL", "SO_FULFILMENT_DATE",
		"PRODUCT_DESCRIPTION", "LISTING_TIER", "TOTAL_QUANTITY", "TOTAL_AMOUNT",
	})

	// Fechas repartidas en los últimos ~18 meses para que el análisis de año
	// en curso y año anterior tenga datos en ambos.
	hoy := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < *nFilas; i++ {
		c := clientes[rng.Intn(len(clientes))]
		fecha := hoy.AddDate(0, 0, -rng.Intn(548))
		tier := "1P"
		if rng.Intn(2) == 1 {
			tier = "3P"
		}
		cantidad := 1 + rng.Intn(12)
		precio := decimal.NewFromFloat(19.90 + 10*rng.Float64()*float64(1+rng.Intn(40)))
		monto := precio.Mul(decimal.NewFromInt(int64(cantidad))).Round(2)

		_ = w.Write([]string{
			c.id,
			c.nombre,
			c.correo,
			fecha.Format("02/01/06"),
			productos[rng.Intn(len(productos))],
			tier,
			strconv.Itoa(cantidad),
			monto.String(),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "escribir CSV: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Escrito %s: %d filas, %d clientes\n", *out, *nFilas, *nClientes)
}
