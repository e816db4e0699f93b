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

var _ repository.MesaRepository = (*MesaRepo)(nil)

// MesaRepo implementação do porto MesaRepository sobre SQLite.
type MesaRepo struct {
	q Querier
}

// NewMesaRepository constrói o adaptador de persistência para mesas.
func NewMesaRepository(q Querier) *MesaRepo {
	return &MesaRepo{q: q}
}

// Create persiste uma nova mesa. Número duplicado vira ErrDuplicate.
func (r *MesaRepo) Create(ctx context.Context, mesa *entity.Mesa) error {
	if _, err := sqlx.NamedExecContext(ctx, r.q, Mesas.InsertSQL(), mesa); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert mesa: %w", err)
	}
	return nil
}

// GetByID obtém uma mesa por ID. Retorna (nil, nil) quando não existe.
func (r *MesaRepo) GetByID(ctx context.Context, id string) (*entity.Mesa, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", Mesas.SelectColumns(), Mesas.Name)
	var m entity.Mesa
	if err := sqlx.GetContext(ctx, r.q, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mesa: %w", err)
	}
	return &m, nil
}

// GetByNumero obtém uma mesa pelo número (único).
func (r *MesaRepo) GetByNumero(ctx context.Context, numero int) (*entity.Mesa, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE numero = ?", Mesas.SelectColumns(), Mesas.Name)
	var m entity.Mesa
	if err := sqlx.GetContext(ctx, r.q, &m, query, numero); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mesa por número: %w", err)
	}
	return &m, nil
}

// List lista todas as mesas em ordem de número.
func (r *MesaRepo) List(ctx context.Context) ([]*entity.Mesa, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY numero", Mesas.SelectColumns(), Mesas.Name)
	var list []*entity.Mesa
	if err := sqlx.SelectContext(ctx, r.q, &list, query); err != nil {
		return nil, fmt.Errorf("list mesas: %w", err)
	}
	return list, nil
}

// Update atualiza uma mesa existente.
func (r *MesaRepo) Update(ctx context.Context, mesa *entity.Mesa) error {
	res, err := sqlx.NamedExecContext(ctx, r.q, Mesas.UpdateSQL(), mesa)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update mesa: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma mesa. Mesas referenciadas por pedidos viram ErrConflict.
func (r *MesaRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", Mesas.Name), id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete mesa: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountPedidosAbertos conta pedidos não fechados vinculados à mesa.
func (r *MesaRepo) CountPedidosAbertos(ctx context.Context, mesaID string) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, r.q, &n,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE mesa_id = ? AND status NOT IN (?, ?)", Pedidos.Name),
		mesaID, entity.PedidoEntregue, entity.PedidoCancelado)
	if err != nil {
		return 0, fmt.Errorf("count pedidos abertos da mesa: %w", err)
	}
	return n, nil
}
