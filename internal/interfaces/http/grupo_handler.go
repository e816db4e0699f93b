package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lanchefacil/lanchefacil-api/internal/application/dto"
	"github.com/lanchefacil/lanchefacil-api/internal/application/usecase"
)

// GrupoHandler trata as requisições HTTP para grupos de itens.
type GrupoHandler struct {
	uc *usecase.GrupoUseCase
}

// NewGrupoHandler constrói o handler.
func NewGrupoHandler(uc *usecase.GrupoUseCase) *GrupoHandler {
	return &GrupoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar grupo
// @Tags         grupos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GrupoRequest  true  "Dados do grupo"
// @Success      201   {object}  dto.GrupoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/grupos [post]
func (h *GrupoHandler) Create(c *fiber.Ctx) error {
	var in dto.GrupoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Nome == "" {
		return validation(c, "nome é obrigatório")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter grupo por ID
// @Tags         grupos
// @Produce      json
// @Param        id   path  string  true  "ID do grupo"
// @Success      200  {object}  dto.GrupoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/grupos/{id} [get]
func (h *GrupoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "grupo não encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar grupos
// @Tags         grupos
// @Produce      json
// @Success      200  {array}  dto.GrupoResponse
// @Router       /api/grupos [get]
func (h *GrupoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Substituir grupo
// @Tags         grupos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do grupo"
// @Param        body  body  dto.GrupoRequest  true  "Dados do grupo"
// @Success      200   {object}  dto.GrupoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/grupos/{id} [put]
func (h *GrupoHandler) Update(c *fiber.Ctx) error {
	var in dto.GrupoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Nome == "" {
		return validation(c, "nome é obrigatório")
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "grupo não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir grupo
// @Tags         grupos
// @Produce      json
// @Param        id   path  string  true  "ID do grupo"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/grupos/{id} [delete]
func (h *GrupoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeleteResponse{Deleted: true, ID: id})
}
