package dto

import "time"

// MesaRequest entrada para criar uma mesa.
type MesaRequest struct {
	Numero     int    `json:"numero" validate:"required,min=1"`
	Capacidade int    `json:"capacidade"`
	Status     string `json:"status"`
}

// MesaPatchRequest entrada parcial para PATCH de mesa (somente campos presentes).
type MesaPatchRequest struct {
	Numero     *int    `json:"numero"`
	Capacidade *int    `json:"capacidade"`
	Status     *string `json:"status"`
}

// MesaResponse saída de uma mesa.
type MesaResponse struct {
	ID         string    `json:"id"`
	Numero     int       `json:"numero"`
	Capacidade int       `json:"capacidade"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
