package dto

import "time"

// FornecedorRequest entrada para criar ou substituir um fornecedor.
type FornecedorRequest struct {
	Nome        string `json:"nome" validate:"required,min=1,max=200"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	Endereco    string `json:"endereco"`
	CNPJ        string `json:"cnpj"`
	Observacoes string `json:"observacoes"`
	Ativo       *bool  `json:"ativo"`
}

// FornecedorResponse saída de um fornecedor.
type FornecedorResponse struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email"`
	Telefone    string    `json:"telefone"`
	Endereco    string    `json:"endereco"`
	CNPJ        string    `json:"cnpj"`
	Observacoes string    `json:"observacoes"`
	Ativo       bool      `json:"ativo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
