package dto

import "time"

// GrupoRequest entrada para criar ou substituir um grupo (PUT é full-replace).
type GrupoRequest struct {
	Nome      string `json:"nome" validate:"required,min=1,max=100"`
	Descricao string `json:"descricao"`
	Cor       string `json:"cor"`
	Ativo     *bool  `json:"ativo"` // omitido = ativo
}

// GrupoResponse saída de um grupo.
type GrupoResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Descricao string    `json:"descricao"`
	Cor       string    `json:"cor"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
