package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/meruhub/clientes-api/internal/application/dto"
	"github.com/meruhub/clientes-api/internal/application/usecase"
	"github.com/meruhub/clientes-api/internal/domain"
	"github.com/meruhub/clientes-api/internal/domain/resolver"
)

// SearchHandler maneja las peticiones de búsqueda de clientes y su análisis
// de histórico de compras.
type SearchHandler struct {
	uc *usecase.CustomerInsightUseCase
}

// NewSearchHandler construye el handler.
func NewSearchHandler(uc *usecase.CustomerInsightUseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// BuscarPorID POST /buscar_por_id
func (h *SearchHandler) BuscarPorID(c *fiber.Ctx) error {
	var in dto.SearchByIDRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.BuscarPorID == "" {
		return badRequest(c, "El campo buscar_por_id es requerido")
	}
	return h.lookup(c, in.BuscarPorID, resolver.ByID)
}

// BuscarPorNombre POST /buscar_por_nombre
func (h *SearchHandler) BuscarPorNombre(c *fiber.Ctx) error {
	var in dto.SearchByNameRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.BuscarPorNombre == "" {
		return badRequest(c, "El campo buscar_por_nombre es requerido")
	}
	return h.lookup(c, in.BuscarPorNombre, resolver.ByName)
}

// BuscarPorCorreo POST /buscar_por_correo
func (h *SearchHandler) BuscarPorCorreo(c *fiber.Ctx) error {
	var in dto.SearchByEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.BuscarPorCorreo == "" {
		return badRequest(c, "El campo buscar_por_correo es requerido")
	}
	return h.lookup(c, in.BuscarPorCorreo, resolver.ByEmail)
}

// ListClientes GET /clientes
func (h *SearchHandler) ListClientes(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListCustomers())
}

// lookup ejecuta el caso de uso y mapea los errores de dominio a HTTP.
func (h *SearchHandler) lookup(c *fiber.Ctx, criterion string, mode resolver.Mode) error {
	res, err := h.uc.Lookup(criterion, mode, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCriterion):
			return badRequest(c, "el criterio de búsqueda es requerido")
		case errors.Is(err, domain.ErrNoCloseMatch):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "NO_MATCH",
				Message: noMatchMessage(criterion, mode),
			})
		case errors.Is(err, domain.ErrCustomerNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "NOT_FOUND",
				Message: fmt.Sprintf("No se encontraron datos para el cliente con %s: %s", mode, criterion),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// noMatchMessage mensaje del contrato legado cuando la puntuación difusa no
// alcanza el umbral.
func noMatchMessage(criterion string, mode resolver.Mode) string {
	if mode == resolver.ByEmail {
		return fmt.Sprintf("No se encontraron coincidencias cercanas para el correo: %s", criterion)
	}
	return fmt.Sprintf("No se encontraron coincidencias cercanas para el nombre del cliente: %s", criterion)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
}
