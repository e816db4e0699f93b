package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lanchefacil/lanchefacil-api/internal/application/dto"
	"github.com/lanchefacil/lanchefacil-api/internal/application/pedidos"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
)

// PedidoHandler trata as requisições HTTP do ciclo de vida dos pedidos.
type PedidoHandler struct {
	uc *pedidos.UseCase
}

// NewPedidoHandler constrói o handler.
func NewPedidoHandler(uc *pedidos.UseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir pedido
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PedidoRequest  true  "Dados do pedido"
// @Success      201   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.PedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter pedido por ID (com itens)
// @Tags         pedidos
// @Produce      json
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {object}  dto.PedidoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "pedido não encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Produce      json
// @Param        status  query  string  false  "Filtra por status"
// @Success      200     {array}  dto.PedidoResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	status := c.Query("status")
	if status != "" && !entity.StatusPedidoValido(status) {
		return validation(c, "status de pedido inválido")
	}
	out, err := h.uc.List(c.UserContext(), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Alterar pedido (parcial)
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do pedido"
// @Param        body  body  dto.PedidoPatchRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [patch]
func (h *PedidoHandler) Patch(c *fiber.Ctx) error {
	var in dto.PedidoPatchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Status != nil && !entity.StatusPedidoValido(*in.Status) {
		return validation(c, "status de pedido inválido")
	}
	out, err := h.uc.Patch(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "pedido não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir pedido
// @Tags         pedidos
// @Produce      json
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [delete]
func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeleteResponse{Deleted: true, ID: id})
}

// ListItens godoc
// @Summary      Listar itens de um pedido
// @Tags         pedidos
// @Produce      json
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {array}  dto.PedidoItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/itens [get]
func (h *PedidoHandler) ListItens(c *fiber.Ctx) error {
	out, err := h.uc.ListItens(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Incluir item no pedido
// @Description  O preço unitário é o do cardápio no momento da inclusão.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do pedido"
// @Param        body  body  dto.PedidoItemRequest  true  "Dados do item"
// @Success      201   {object}  dto.PedidoItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/itens [post]
func (h *PedidoHandler) AddItem(c *fiber.Ctx) error {
	var in dto.PedidoItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.CardapioID == "" {
		return validation(c, "cardapioId é obrigatório")
	}
	if in.Quantidade <= 0 {
		return validation(c, "quantidade deve ser maior que zero")
	}
	out, err := h.uc.AddItem(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem godoc
// @Summary      Alterar item do pedido (parcial)
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do item do pedido"
// @Param        body  body  dto.PedidoItemPatchRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.PedidoItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pedidos/itens/{id} [patch]
func (h *PedidoHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.PedidoItemPatchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Quantidade != nil && *in.Quantidade <= 0 {
		return validation(c, "quantidade deve ser maior que zero")
	}
	out, err := h.uc.UpdateItem(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "item do pedido não encontrado")
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Remover item do pedido
// @Tags         pedidos
// @Produce      json
// @Param        id   path  string  true  "ID do item do pedido"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/itens/{id} [delete]
func (h *PedidoHandler) RemoveItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.RemoveItem(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeleteResponse{Deleted: true, ID: id})
}
