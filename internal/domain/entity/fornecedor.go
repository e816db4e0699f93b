package entity

import "time"

// Fornecedor representa um fornecedor de insumos.
type Fornecedor struct {
	ID          string    `db:"id"`
	Nome        string    `db:"nome"`
	Email       string    `db:"email"`
	Telefone    string    `db:"telefone"`
	Endereco    string    `db:"endereco"`
	CNPJ        string    `db:"cnpj"`
	Observacoes string    `db:"observacoes"`
	Ativo       bool      `db:"ativo"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
