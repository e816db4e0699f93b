package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest entrada para criar ou substituir um item.
// Campos numéricos aceitam número ou string (coerção do decimal no unmarshal).
type ItemRequest struct {
	Nome          string          `json:"nome" validate:"required,min=1,max=200"`
	Descricao     string          `json:"descricao"`
	GrupoID       string          `json:"grupoId" validate:"required"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	Unidade       string          `json:"unidade" validate:"required"`
	ValorUnitario decimal.Decimal `json:"valorUnitario"`
	EstoqueMinimo decimal.Decimal `json:"estoqueMinimo"`
	EstoqueIdeal  decimal.Decimal `json:"estoqueIdeal"`
	Localizacao   string          `json:"localizacao"`
	SKU           string          `json:"sku"`
	Observacoes   string          `json:"observacoes"`
	Ativo         *bool           `json:"ativo"`
}

// ItemResponse saída de um item.
type ItemResponse struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	GrupoID       string          `json:"grupoId"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	Unidade       string          `json:"unidade"`
	ValorUnitario decimal.Decimal `json:"valorUnitario"`
	EstoqueMinimo decimal.Decimal `json:"estoqueMinimo"`
	EstoqueIdeal  decimal.Decimal `json:"estoqueIdeal"`
	Localizacao   string          `json:"localizacao"`
	SKU           string          `json:"sku"`
	Observacoes   string          `json:"observacoes"`
	Ativo         bool            `json:"ativo"`
	EstoqueBaixo  bool            `json:"estoqueBaixo"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
