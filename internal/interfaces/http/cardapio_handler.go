package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lanchefacil/lanchefacil-api/internal/application/dto"
	"github.com/lanchefacil/lanchefacil-api/internal/application/usecase"
)

// CardapioHandler trata as requisições HTTP para pratos do cardápio.
type CardapioHandler struct {
	uc *usecase.CardapioUseCase
}

// NewCardapioHandler constrói o handler.
func NewCardapioHandler(uc *usecase.CardapioUseCase) *CardapioHandler {
	return &CardapioHandler{uc: uc}
}

// Create godoc
// @Summary      Criar prato do cardápio
// @Tags         cardapio
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CardapioRequest  true  "Dados do prato"
// @Success      201   {object}  dto.CardapioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cardapio [post]
func (h *CardapioHandler) Create(c *fiber.Ctx) error {
	var in dto.CardapioRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Nome == "" {
		return validation(c, "nome é obrigatório")
	}
	if in.Preco.IsNegative() {
		return validation(c, "preco não pode ser negativo")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter prato por ID
// @Tags         cardapio
// @Produce      json
// @Param        id   path  string  true  "ID do prato"
// @Success      200  {object}  dto.CardapioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cardapio/{id} [get]
func (h *CardapioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "prato não encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cardápio
// @Tags         cardapio
// @Produce      json
// @Success      200  {array}  dto.CardapioResponse
// @Router       /api/cardapio [get]
func (h *CardapioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Substituir prato do cardápio
// @Tags         cardapio
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do prato"
// @Param        body  body  dto.CardapioRequest  true  "Dados do prato"
// @Success      200   {object}  dto.CardapioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cardapio/{id} [put]
func (h *CardapioHandler) Update(c *fiber.Ctx) error {
	var in dto.CardapioRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Nome == "" {
		return validation(c, "nome é obrigatório")
	}
	if in.Preco.IsNegative() {
		return validation(c, "preco não pode ser negativo")
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "prato não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir prato do cardápio
// @Tags         cardapio
// @Produce      json
// @Param        id   path  string  true  "ID do prato"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cardapio/{id} [delete]
func (h *CardapioHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeleteResponse{Deleted: true, ID: id})
}
