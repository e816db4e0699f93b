package entity

import "time"

// Status possíveis de uma mesa.
const (
	MesaLivre     = "livre"
	MesaOcupada   = "ocupada"
	MesaReservada = "reservada"
)

// StatusMesaValido informa se o status é um dos três aceitos.
func StatusMesaValido(status string) bool {
	return status == MesaLivre || status == MesaOcupada || status == MesaReservada
}

// Mesa representa uma mesa do salão (número único).
type Mesa struct {
	ID         string    `db:"id"`
	Numero     int       `db:"numero"`
	Capacidade int       `db:"capacidade"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
