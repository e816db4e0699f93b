package dto

import "time"

// ClienteRequest entrada para criar ou substituir um cliente.
type ClienteRequest struct {
	Nome        string `json:"nome" validate:"required,min=1,max=200"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email"`
	Endereco    string `json:"endereco"`
	Observacoes string `json:"observacoes"`
	Ativo       *bool  `json:"ativo"`
}

// ClienteResponse saída de um cliente.
type ClienteResponse struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Telefone    string    `json:"telefone"`
	Email       string    `json:"email"`
	Endereco    string    `json:"endereco"`
	Observacoes string    `json:"observacoes"`
	Ativo       bool      `json:"ativo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
