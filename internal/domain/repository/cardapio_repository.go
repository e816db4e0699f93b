package repository

import (
	"context"

	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
)

// CardapioRepository define o porto de persistência para ItemCardapio.
type CardapioRepository interface {
	Create(ctx context.Context, item *entity.ItemCardapio) error
	GetByID(ctx context.Context, id string) (*entity.ItemCardapio, error)
	List(ctx context.Context) ([]*entity.ItemCardapio, error)
	Update(ctx context.Context, item *entity.ItemCardapio) error
	Delete(ctx context.Context, id string) error
	CountPedidoItens(ctx context.Context, cardapioID string) (int, error)
}
