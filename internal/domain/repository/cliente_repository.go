package repository

import (
	"context"

	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
)

// ClienteRepository define o porto de persistência para Cliente.
type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	GetByID(ctx context.Context, id string) (*entity.Cliente, error)
	List(ctx context.Context) ([]*entity.Cliente, error)
	Update(ctx context.Context, cliente *entity.Cliente) error
	Delete(ctx context.Context, id string) error
	CountPedidos(ctx context.Context, clienteID string) (int, error)
}
