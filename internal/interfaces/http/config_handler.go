package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lanchefacil/lanchefacil-api/internal/application/dto"
	"github.com/lanchefacil/lanchefacil-api/internal/application/usecase"
)

// ConfigHandler trata as requisições HTTP de configuração (chave/valor).
type ConfigHandler struct {
	uc *usecase.ConfigUseCase
}

// NewConfigHandler constrói o handler.
func NewConfigHandler(uc *usecase.ConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// Create godoc
// @Summary      Criar par de configuração
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfigRequest  true  "Par chave/valor"
// @Success      201   {object}  dto.ConfigResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/config [post]
func (h *ConfigHandler) Create(c *fiber.Ctx) error {
	var in dto.ConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Chave == "" {
		return validation(c, "chave é obrigatória")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByChave godoc
// @Summary      Obter configuração por chave
// @Tags         config
// @Produce      json
// @Param        chave  path  string  true  "Chave"
// @Success      200    {object}  dto.ConfigResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/config/{chave} [get]
func (h *ConfigHandler) GetByChave(c *fiber.Ctx) error {
	out, err := h.uc.GetByChave(c.UserContext(), c.Params("chave"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "configuração não encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar configuração
// @Tags         config
// @Produce      json
// @Success      200  {array}  dto.ConfigResponse
// @Router       /api/config [get]
func (h *ConfigHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar valor de uma chave
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        chave  path  string  true  "Chave"
// @Param        body   body  dto.ConfigRequest  true  "Novo valor"
// @Success      200    {object}  dto.ConfigResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/config/{chave} [put]
func (h *ConfigHandler) Update(c *fiber.Ctx) error {
	var in dto.ConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("chave"), in.Valor)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "configuração não encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir par de configuração
// @Tags         config
// @Produce      json
// @Param        chave  path  string  true  "Chave"
// @Success      200    {object}  dto.DeleteResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/config/{chave} [delete]
func (h *ConfigHandler) Delete(c *fiber.Ctx) error {
	chave := c.Params("chave")
	if err := h.uc.Delete(c.UserContext(), chave); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeleteResponse{Deleted: true, ID: chave})
}
