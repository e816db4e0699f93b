package repository

import (
	"context"

	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
)

// GrupoRepository define o porto de persistência para Grupo (DIP).
// GetByID e GetByNome retornam (nil, nil) quando não encontrado.
type GrupoRepository interface {
	Create(ctx context.Context, grupo *entity.Grupo) error
	GetByID(ctx context.Context, id string) (*entity.Grupo, error)
	GetByNome(ctx context.Context, nome string) (*entity.Grupo, error)
	List(ctx context.Context) ([]*entity.Grupo, error)
	Update(ctx context.Context, grupo *entity.Grupo) error
	Delete(ctx context.Context, id string) error
	CountItens(ctx context.Context, grupoID string) (int, error)
}
