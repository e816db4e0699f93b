package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PedidoRequest entrada para criar um pedido (mesa e cliente opcionais).
type PedidoRequest struct {
	MesaID      *string `json:"mesaId"`
	ClienteID   *string `json:"clienteId"`
	Observacoes string  `json:"observacoes"`
}

// PedidoPatchRequest entrada parcial para PATCH de pedido.
type PedidoPatchRequest struct {
	Status      *string `json:"status"`
	MesaID      *string `json:"mesaId"`
	ClienteID   *string `json:"clienteId"`
	Observacoes *string `json:"observacoes"`
}

// PedidoItemRequest entrada para incluir um item do cardápio no pedido.
// O preço unitário é um retrato do cardápio no momento da inclusão, nunca
// informado pelo cliente.
type PedidoItemRequest struct {
	CardapioID string `json:"cardapioId" validate:"required"`
	Quantidade int    `json:"quantidade" validate:"required,min=1"`
	Observacao string `json:"observacao"`
}

// PedidoItemPatchRequest entrada parcial para alterar uma linha do pedido.
type PedidoItemPatchRequest struct {
	Quantidade *int    `json:"quantidade" validate:"omitempty,min=1"`
	Observacao *string `json:"observacao"`
}

// PedidoItemResponse saída de uma linha do pedido.
type PedidoItemResponse struct {
	ID            string          `json:"id"`
	PedidoID      string          `json:"pedidoId"`
	CardapioID    string          `json:"cardapioId"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Observacao    string          `json:"observacao"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PedidoResponse saída de um pedido. Itens só vem preenchido no GET por ID.
type PedidoResponse struct {
	ID          string               `json:"id"`
	MesaID      *string              `json:"mesaId,omitempty"`
	ClienteID   *string              `json:"clienteId,omitempty"`
	Status      string               `json:"status"`
	Total       decimal.Decimal      `json:"total"`
	Observacoes string               `json:"observacoes"`
	Itens       []PedidoItemResponse `json:"itens,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}
