package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meruhub/clientes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InsightUC *usecase.CustomerInsightUseCase
}

// Router registra las rutas de la API. Las rutas de búsqueda cuelgan de la
// raíz para conservar el contrato del servicio legado.
func Router(app *fiber.App, deps RouterDeps) {
	handler := NewSearchHandler(deps.InsightUC)

	app.Post("/buscar_por_id", handler.BuscarPorID)
	app.Post("/buscar_por_nombre", handler.BuscarPorNombre)
	app.Post("/buscar_por_correo", handler.BuscarPorCorreo)

	app.Get("/clientes", handler.ListClientes)
}
