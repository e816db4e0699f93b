package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lanchefacil/lanchefacil-api/internal/domain"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/repository"
)

var _ repository.CardapioRepository = (*CardapioRepo)(nil)

// CardapioRepo implementação do porto CardapioRepository sobre SQLite.
type CardapioRepo struct {
	q Querier
}

// NewCardapioRepository constrói o adaptador de persistência para o cardápio.
func NewCardapioRepository(q Querier) *CardapioRepo {
	return &CardapioRepo{q: q}
}

// Create persiste um novo item do cardápio.
func (r *CardapioRepo) Create(ctx context.Context, item *entity.ItemCardapio) error {
	if _, err := sqlx.NamedExecContext(ctx, r.q, Cardapio.InsertSQL(), item); err != nil {
		return fmt.Errorf("insert item do cardápio: %w", err)
	}
	return nil
}

// GetByID obtém um item do cardápio por ID. Retorna (nil, nil) quando não existe.
func (r *CardapioRepo) GetByID(ctx context.Context, id string) (*entity.ItemCardapio, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", Cardapio.SelectColumns(), Cardapio.Name)
	var it entity.ItemCardapio
	if err := sqlx.GetContext(ctx, r.q, &it, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item do cardápio: %w", err)
	}
	return &it, nil
}

// List lista o cardápio por categoria e nome.
func (r *CardapioRepo) List(ctx context.Context) ([]*entity.ItemCardapio, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY categoria, nome", Cardapio.SelectColumns(), Cardapio.Name)
	var list []*entity.ItemCardapio
	if err := sqlx.SelectContext(ctx, r.q, &list, query); err != nil {
		return nil, fmt.Errorf("list cardápio: %w", err)
	}
	return list, nil
}

// Update atualiza um item do cardápio existente.
func (r *CardapioRepo) Update(ctx context.Context, item *entity.ItemCardapio) error {
	res, err := sqlx.NamedExecContext(ctx, r.q, Cardapio.UpdateSQL(), item)
	if err != nil {
		return fmt.Errorf("update item do cardápio: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um item do cardápio. Itens referenciados por pedidos viram ErrConflict.
func (r *CardapioRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", Cardapio.Name), id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete item do cardápio: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountPedidoItens conta linhas de pedido que referenciam o item do cardápio.
func (r *CardapioRepo) CountPedidoItens(ctx context.Context, cardapioID string) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, r.q, &n,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE cardapio_id = ?", PedidoItens.Name), cardapioID)
	if err != nil {
		return 0, fmt.Errorf("count linhas de pedido do item: %w", err)
	}
	return n, nil
}
