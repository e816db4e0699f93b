package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa um insumo do estoque. Quantidade é mantida pelo registro de
// movimentações; edições diretas geram um ajuste correspondente.
type Item struct {
	ID            string          `db:"id"`
	Nome          string          `db:"nome"`
	Descricao     string          `db:"descricao"`
	GrupoID       string          `db:"grupo_id"`
	Quantidade    decimal.Decimal `db:"quantidade"`
	Unidade       string          `db:"unidade"` // un, kg, l, cx...
	ValorUnitario decimal.Decimal `db:"valor_unitario"`
	EstoqueMinimo decimal.Decimal `db:"estoque_minimo"` // 0 = sem alerta
	EstoqueIdeal  decimal.Decimal `db:"estoque_ideal"`
	Localizacao   string          `db:"localizacao"`
	SKU           string          `db:"sku"`
	Observacoes   string          `db:"observacoes"`
	Ativo         bool            `db:"ativo"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// EstoqueBaixo indica se o item está no nível de alerta de reposição.
func (i *Item) EstoqueBaixo() bool {
	return i.EstoqueMinimo.IsPositive() && i.Quantidade.LessThanOrEqual(i.EstoqueMinimo)
}
