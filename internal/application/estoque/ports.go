package estoque

import (
	"context"

	"github.com/lanchefacil/lanchefacil-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação com os repos de estoque atados a ela.
// Implementado pela infraestrutura (SQLite).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovimentacaoRepository,
	) error) error
}
