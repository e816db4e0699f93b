package repository

import (
	"context"

	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
)

// MesaRepository define o porto de persistência para Mesa.
type MesaRepository interface {
	Create(ctx context.Context, mesa *entity.Mesa) error
	GetByID(ctx context.Context, id string) (*entity.Mesa, error)
	GetByNumero(ctx context.Context, numero int) (*entity.Mesa, error)
	List(ctx context.Context) ([]*entity.Mesa, error)
	Update(ctx context.Context, mesa *entity.Mesa) error
	Delete(ctx context.Context, id string) error
	CountPedidosAbertos(ctx context.Context, mesaID string) (int, error)
}
