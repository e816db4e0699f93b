package dto

import "time"

// ConfigRequest entrada para criar ou atualizar um par de configuração.
type ConfigRequest struct {
	Chave string `json:"chave" validate:"required,min=1,max=100"`
	Valor string `json:"valor"`
}

// ConfigResponse saída de um par de configuração.
type ConfigResponse struct {
	ID        string    `json:"id"`
	Chave     string    `json:"chave"`
	Valor     string    `json:"valor"`
	CreatedAt time.Time `json:"createdAt"`
}
