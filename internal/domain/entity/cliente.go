package entity

import "time"

// Cliente representa um cliente da lanchonete.
type Cliente struct {
	ID          string    `db:"id"`
	Nome        string    `db:"nome"`
	Telefone    string    `db:"telefone"`
	Email       string    `db:"email"`
	Endereco    string    `db:"endereco"`
	Observacoes string    `db:"observacoes"`
	Ativo       bool      `db:"ativo"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
