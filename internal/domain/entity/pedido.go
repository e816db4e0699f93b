package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de um pedido.
const (
	PedidoAberto     = "aberto"
	PedidoPreparando = "preparando"
	PedidoPronto     = "pronto"
	PedidoEntregue   = "entregue"
	PedidoCancelado  = "cancelado"
)

// StatusPedidoValido informa se o status é um dos cinco aceitos.
func StatusPedidoValido(status string) bool {
	switch status {
	case PedidoAberto, PedidoPreparando, PedidoPronto, PedidoEntregue, PedidoCancelado:
		return true
	}
	return false
}

// PedidoFechado indica um status terminal (libera a mesa).
func PedidoFechado(status string) bool {
	return status == PedidoEntregue || status == PedidoCancelado
}

// Pedido representa um pedido de mesa ou balcão. Total é derivado da soma dos
// itens (quantidade × preço unitário) e recalculado a cada alteração de item.
type Pedido struct {
	ID          string          `db:"id"`
	MesaID      *string         `db:"mesa_id"`    // nulo = balcão/retirada
	ClienteID   *string         `db:"cliente_id"` // nulo = consumidor avulso
	Status      string          `db:"status"`
	Total       decimal.Decimal `db:"total"`
	Observacoes string          `db:"observacoes"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// PedidoItem é uma linha do pedido. PrecoUnitario é um retrato do preço do
// cardápio no momento da inclusão; mudanças posteriores de preço não o afetam.
type PedidoItem struct {
	ID            string          `db:"id"`
	PedidoID      string          `db:"pedido_id"`
	CardapioID    string          `db:"cardapio_id"`
	Quantidade    int             `db:"quantidade"`
	PrecoUnitario decimal.Decimal `db:"preco_unitario"`
	Observacao    string          `db:"observacao"`
	CreatedAt     time.Time       `db:"created_at"`
}

// Subtotal da linha.
func (pi *PedidoItem) Subtotal() decimal.Decimal {
	return pi.PrecoUnitario.Mul(decimal.NewFromInt(int64(pi.Quantidade)))
}
