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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementação do porto ItemRepository sobre SQLite.
type ItemRepo struct {
	q Querier
}

// NewItemRepository constrói o adaptador de persistência para itens.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste um novo item. grupo_id inexistente vira ErrInvalidInput.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	if _, err := sqlx.NamedExecContext(ctx, r.q, Itens.InsertSQL(), item); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtém um item por ID. Retorna (nil, nil) quando não existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", Itens.SelectColumns(), Itens.Name)
	var it entity.Item
	if err := sqlx.GetContext(ctx, r.q, &it, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// List lista todos os itens em ordem alfabética.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY nome", Itens.SelectColumns(), Itens.Name)
	var list []*entity.Item
	if err := sqlx.SelectContext(ctx, r.q, &list, query); err != nil {
		return nil, fmt.Errorf("list itens: %w", err)
	}
	return list, nil
}

// ListEstoqueBaixo lista itens ativos com quantidade no nível de alerta.
// estoque_minimo 0 significa "sem alerta" e fica de fora.
func (r *ItemRepo) ListEstoqueBaixo(ctx context.Context) ([]*entity.Item, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE ativo = 1 AND estoque_minimo > 0 AND quantidade <= estoque_minimo ORDER BY nome",
		Itens.SelectColumns(), Itens.Name)
	var list []*entity.Item
	if err := sqlx.SelectContext(ctx, r.q, &list, query); err != nil {
		return nil, fmt.Errorf("list estoque baixo: %w", err)
	}
	return list, nil
}

// Update atualiza um item existente (inclusive quantidade; o caso de uso
// registra o ajuste correspondente na mesma transação).
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	res, err := sqlx.NamedExecContext(ctx, r.q, Itens.UpdateSQL(), item)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um item e seu histórico de movimentações.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE item_id = ?", Movimentacoes.Name), id); err != nil {
		return fmt.Errorf("delete movimentações do item: %w", err)
	}
	res, err := r.q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", Itens.Name), id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
