package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lanchefacil/lanchefacil-api/internal/domain"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação do porto MovimentacaoRepository sobre SQLite.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador de persistência para movimentações.
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create persiste uma movimentação (imutável após inserida).
func (r *MovimentacaoRepo) Create(ctx context.Context, mov *entity.Movimentacao) error {
	if _, err := sqlx.NamedExecContext(ctx, r.q, Movimentacoes.InsertSQL(), mov); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert movimentação: %w", err)
	}
	return nil
}

// List lista movimentações da mais recente para a mais antiga.
// itemID vazio retorna o histórico completo.
func (r *MovimentacaoRepo) List(ctx context.Context, itemID string) ([]*entity.Movimentacao, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", Movimentacoes.SelectColumns(), Movimentacoes.Name)
	args := []any{}
	if itemID != "" {
		query += " WHERE item_id = ?"
		args = append(args, itemID)
	}
	query += " ORDER BY created_at DESC"

	var list []*entity.Movimentacao
	if err := sqlx.SelectContext(ctx, r.q, &list, query, args...); err != nil {
		return nil, fmt.Errorf("list movimentações: %w", err)
	}
	return list, nil
}
