package repository

import (
	"context"

	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
)

// PedidoRepository define o porto de persistência para Pedido e suas linhas.
type PedidoRepository interface {
	Create(ctx context.Context, pedido *entity.Pedido) error
	GetByID(ctx context.Context, id string) (*entity.Pedido, error)
	List(ctx context.Context, status string) ([]*entity.Pedido, error) // status vazio = todos
	Update(ctx context.Context, pedido *entity.Pedido) error
	Delete(ctx context.Context, id string) error

	CreateItem(ctx context.Context, item *entity.PedidoItem) error
	GetItemByID(ctx context.Context, id string) (*entity.PedidoItem, error)
	ListItens(ctx context.Context, pedidoID string) ([]*entity.PedidoItem, error)
	UpdateItem(ctx context.Context, item *entity.PedidoItem) error
	DeleteItem(ctx context.Context, id string) error
}
