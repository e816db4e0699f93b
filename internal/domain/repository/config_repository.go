package repository

import (
	"context"

	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
)

// ConfigRepository define o porto de persistência para Config (endereçada por chave).
type ConfigRepository interface {
	Create(ctx context.Context, cfg *entity.Config) error
	GetByChave(ctx context.Context, chave string) (*entity.Config, error)
	List(ctx context.Context) ([]*entity.Config, error)
	Update(ctx context.Context, cfg *entity.Config) error
	Delete(ctx context.Context, chave string) error
}
