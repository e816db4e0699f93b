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

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementação do porto PedidoRepository sobre SQLite.
// Cobre o pedido e suas linhas (pedido_itens).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository constrói o adaptador de persistência para pedidos.
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste um novo pedido. Mesa ou cliente inexistente vira ErrInvalidInput.
func (r *PedidoRepo) Create(ctx context.Context, pedido *entity.Pedido) error {
	if _, err := sqlx.NamedExecContext(ctx, r.q, Pedidos.InsertSQL(), pedido); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtém um pedido por ID. Retorna (nil, nil) quando não existe.
func (r *PedidoRepo) GetByID(ctx context.Context, id string) (*entity.Pedido, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", Pedidos.SelectColumns(), Pedidos.Name)
	var p entity.Pedido
	if err := sqlx.GetContext(ctx, r.q, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// List lista pedidos do mais recente para o mais antigo, com filtro opcional de status.
func (r *PedidoRepo) List(ctx context.Context, status string) ([]*entity.Pedido, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", Pedidos.SelectColumns(), Pedidos.Name)
	args := []any{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	var list []*entity.Pedido
	if err := sqlx.SelectContext(ctx, r.q, &list, query, args...); err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	return list, nil
}

// Update atualiza um pedido existente (status, total, observações, mesa, cliente).
func (r *PedidoRepo) Update(ctx context.Context, pedido *entity.Pedido) error {
	res, err := sqlx.NamedExecContext(ctx, r.q, Pedidos.UpdateSQL(), pedido)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update pedido: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um pedido e suas linhas.
func (r *PedidoRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE pedido_id = ?", PedidoItens.Name), id); err != nil {
		return fmt.Errorf("delete linhas do pedido: %w", err)
	}
	res, err := r.q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", Pedidos.Name), id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateItem persiste uma linha do pedido.
func (r *PedidoRepo) CreateItem(ctx context.Context, item *entity.PedidoItem) error {
	if _, err := sqlx.NamedExecContext(ctx, r.q, PedidoItens.InsertSQL(), item); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert linha do pedido: %w", err)
	}
	return nil
}

// GetItemByID obtém uma linha do pedido por ID. Retorna (nil, nil) quando não existe.
func (r *PedidoRepo) GetItemByID(ctx context.Context, id string) (*entity.PedidoItem, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", PedidoItens.SelectColumns(), PedidoItens.Name)
	var pi entity.PedidoItem
	if err := sqlx.GetContext(ctx, r.q, &pi, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get linha do pedido: %w", err)
	}
	return &pi, nil
}

// ListItens lista as linhas de um pedido na ordem de inclusão.
func (r *PedidoRepo) ListItens(ctx context.Context, pedidoID string) ([]*entity.PedidoItem, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE pedido_id = ? ORDER BY created_at",
		PedidoItens.SelectColumns(), PedidoItens.Name)
	var list []*entity.PedidoItem
	if err := sqlx.SelectContext(ctx, r.q, &list, query, pedidoID); err != nil {
		return nil, fmt.Errorf("list linhas do pedido: %w", err)
	}
	return list, nil
}

// UpdateItem atualiza uma linha do pedido (quantidade e observação).
func (r *PedidoRepo) UpdateItem(ctx context.Context, item *entity.PedidoItem) error {
	res, err := sqlx.NamedExecContext(ctx, r.q, PedidoItens.UpdateSQL(), item)
	if err != nil {
		return fmt.Errorf("update linha do pedido: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteItem remove uma linha do pedido.
func (r *PedidoRepo) DeleteItem(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", PedidoItens.Name), id)
	if err != nil {
		return fmt.Errorf("delete linha do pedido: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
