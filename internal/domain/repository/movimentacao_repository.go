package repository

import (
	"context"

	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
)

// MovimentacaoRepository define o porto de persistência para Movimentacao.
// Movimentações são imutáveis: apenas inserção e leitura.
type MovimentacaoRepository interface {
	Create(ctx context.Context, mov *entity.Movimentacao) error
	List(ctx context.Context, itemID string) ([]*entity.Movimentacao, error) // itemID vazio = todas
}
