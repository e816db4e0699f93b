package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CardapioRequest entrada para criar ou substituir um item do cardápio.
type CardapioRequest struct {
	Nome       string          `json:"nome" validate:"required,min=1,max=200"`
	Descricao  string          `json:"descricao"`
	Categoria  string          `json:"categoria"`
	Preco      decimal.Decimal `json:"preco" validate:"required"`
	Disponivel *bool           `json:"disponivel"`
}

// CardapioResponse saída de um item do cardápio.
type CardapioResponse struct {
	ID         string          `json:"id"`
	Nome       string          `json:"nome"`
	Descricao  string          `json:"descricao"`
	Categoria  string          `json:"categoria"`
	Preco      decimal.Decimal `json:"preco"`
	Disponivel bool            `json:"disponivel"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
