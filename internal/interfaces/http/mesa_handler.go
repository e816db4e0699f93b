package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lanchefacil/lanchefacil-api/internal/application/dto"
	"github.com/lanchefacil/lanchefacil-api/internal/application/usecase"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
)

// MesaHandler trata as requisições HTTP para mesas.
type MesaHandler struct {
	uc *usecase.MesaUseCase
}

// NewMesaHandler constrói o handler.
func NewMesaHandler(uc *usecase.MesaUseCase) *MesaHandler {
	return &MesaHandler{uc: uc}
}

// Create godoc
// @Summary      Criar mesa
// @Tags         mesas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MesaRequest  true  "Dados da mesa"
// @Success      201   {object}  dto.MesaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/mesas [post]
func (h *MesaHandler) Create(c *fiber.Ctx) error {
	var in dto.MesaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Numero <= 0 {
		return validation(c, "numero deve ser maior que zero")
	}
	if in.Status != "" && !entity.StatusMesaValido(in.Status) {
		return validation(c, "status deve ser livre, ocupada ou reservada")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter mesa por ID
// @Tags         mesas
// @Produce      json
// @Param        id   path  string  true  "ID da mesa"
// @Success      200  {object}  dto.MesaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mesas/{id} [get]
func (h *MesaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "mesa não encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar mesas
// @Tags         mesas
// @Produce      json
// @Success      200  {array}  dto.MesaResponse
// @Router       /api/mesas [get]
func (h *MesaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Alterar mesa (parcial)
// @Tags         mesas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da mesa"
// @Param        body  body  dto.MesaPatchRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.MesaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/mesas/{id} [patch]
func (h *MesaHandler) Patch(c *fiber.Ctx) error {
	var in dto.MesaPatchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Numero != nil && *in.Numero <= 0 {
		return validation(c, "numero deve ser maior que zero")
	}
	if in.Status != nil && !entity.StatusMesaValido(*in.Status) {
		return validation(c, "status deve ser livre, ocupada ou reservada")
	}
	out, err := h.uc.Patch(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "mesa não encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir mesa
// @Tags         mesas
// @Produce      json
// @Param        id   path  string  true  "ID da mesa"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/mesas/{id} [delete]
func (h *MesaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeleteResponse{Deleted: true, ID: id})
}
