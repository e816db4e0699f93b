package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovimentacaoEntrada = "entrada"
	MovimentacaoSaida   = "saida"
	MovimentacaoAjuste  = "ajuste" // define a quantidade absoluta
)

// TipoMovimentacaoValido informa se o tipo é um dos três aceitos.
func TipoMovimentacaoValido(tipo string) bool {
	return tipo == MovimentacaoEntrada || tipo == MovimentacaoSaida || tipo == MovimentacaoAjuste
}

// Movimentacao registra uma alteração de quantidade de um item.
// QuantidadeAnterior e QuantidadeNova são derivadas no servidor a partir do
// estado do item no momento do registro, nunca informadas pelo cliente.
type Movimentacao struct {
	ID                 string          `db:"id"`
	ItemID             string          `db:"item_id"`
	Tipo               string          `db:"tipo"`
	Quantidade         decimal.Decimal `db:"quantidade"`
	QuantidadeAnterior decimal.Decimal `db:"quantidade_anterior"`
	QuantidadeNova     decimal.Decimal `db:"quantidade_nova"`
	Motivo             string          `db:"motivo"`
	Observacoes        string          `db:"observacoes"`
	Usuario            string          `db:"usuario"`
	CreatedAt          time.Time       `db:"created_at"`
}
