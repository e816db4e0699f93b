package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lanchefacil/lanchefacil-api/internal/application/dto"
	"github.com/lanchefacil/lanchefacil-api/internal/application/estoque"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
)

// EstoqueHandler trata as requisições HTTP de movimentações de estoque.
type EstoqueHandler struct {
	uc *estoque.UseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(uc *estoque.UseCase) *EstoqueHandler {
	return &EstoqueHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar movimentação de estoque
// @Description  Aplica entrada, saída ou ajuste ao item. As quantidades
// @Description  anterior e nova são derivadas pelo servidor na transação.
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovimentacaoRequest  true  "Dados da movimentação"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/estoque [post]
func (h *EstoqueHandler) Registrar(c *fiber.Ctx) error {
	var in dto.MovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.ItemID == "" || in.Tipo == "" {
		return validation(c, "itemId e tipo são obrigatórios")
	}
	if !entity.TipoMovimentacaoValido(in.Tipo) {
		return validation(c, "tipo deve ser entrada, saida ou ajuste")
	}
	out, err := h.uc.Registrar(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar movimentações
// @Tags         estoque
// @Produce      json
// @Param        itemId  query  string  false  "Filtra pelas movimentações de um item"
// @Success      200     {array}  dto.MovimentacaoResponse
// @Router       /api/estoque [get]
func (h *EstoqueHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.UserContext(), c.Query("itemId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
