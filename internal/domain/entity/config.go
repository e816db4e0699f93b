package entity

import "time"

// Config par chave/valor de configuração da aplicação (chave única).
type Config struct {
	ID        string    `db:"id"`
	Chave     string    `db:"chave"`
	Valor     string    `db:"valor"`
	CreatedAt time.Time `db:"created_at"`
}
