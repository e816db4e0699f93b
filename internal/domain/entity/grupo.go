package entity

import "time"

// CorPadrao cor atribuída a um grupo quando o cadastro não informa uma.
const CorPadrao = "#3B82F6"

// Grupo representa uma categoria de itens do estoque (ex: Bebidas, Carnes).
type Grupo struct {
	ID        string    `db:"id"`
	Nome      string    `db:"nome"` // único
	Descricao string    `db:"descricao"`
	Cor       string    `db:"cor"` // hexadecimal, ex: #3B82F6
	Ativo     bool      `db:"ativo"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
