package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovimentacaoRequest entrada para registrar uma movimentação de estoque.
// quantidadeAnterior/quantidadeNova não são aceitas: o servidor as deriva do
// estado do item dentro da transação.
type MovimentacaoRequest struct {
	ItemID      string          `json:"itemId" validate:"required"`
	Tipo        string          `json:"tipo" validate:"required,oneof=entrada saida ajuste"`
	Quantidade  decimal.Decimal `json:"quantidade" validate:"required"`
	Motivo      string          `json:"motivo"`
	Observacoes string          `json:"observacoes"`
	Usuario     string          `json:"usuario"`
}

// MovimentacaoResponse saída de uma movimentação.
type MovimentacaoResponse struct {
	ID                 string          `json:"id"`
	ItemID             string          `json:"itemId"`
	Tipo               string          `json:"tipo"`
	Quantidade         decimal.Decimal `json:"quantidade"`
	QuantidadeAnterior decimal.Decimal `json:"quantidadeAnterior"`
	QuantidadeNova     decimal.Decimal `json:"quantidadeNova"`
	Motivo             string          `json:"motivo"`
	Observacoes        string          `json:"observacoes"`
	Usuario            string          `json:"usuario"`
	CreatedAt          time.Time       `json:"createdAt"`
}
