package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemCardapio representa um produto vendável do cardápio (lanches, bebidas).
// Distinto de Item (insumo de estoque): o cardápio é o que aparece no pedido.
type ItemCardapio struct {
	ID         string          `db:"id"`
	Nome       string          `db:"nome"`
	Descricao  string          `db:"descricao"`
	Categoria  string          `db:"categoria"`
	Preco      decimal.Decimal `db:"preco"`
	Disponivel bool            `db:"disponivel"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}
