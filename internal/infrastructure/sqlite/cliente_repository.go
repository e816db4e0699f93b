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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementação do porto ClienteRepository sobre SQLite.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador de persistência para clientes.
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste um novo cliente.
func (r *ClienteRepo) Create(ctx context.Context, cliente *entity.Cliente) error {
	if _, err := sqlx.NamedExecContext(ctx, r.q, Clientes.InsertSQL(), cliente); err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID. Retorna (nil, nil) quando não existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id string) (*entity.Cliente, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", Clientes.SelectColumns(), Clientes.Name)
	var c entity.Cliente
	if err := sqlx.GetContext(ctx, r.q, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista todos os clientes em ordem alfabética.
func (r *ClienteRepo) List(ctx context.Context) ([]*entity.Cliente, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY nome", Clientes.SelectColumns(), Clientes.Name)
	var list []*entity.Cliente
	if err := sqlx.SelectContext(ctx, r.q, &list, query); err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return list, nil
}

// Update atualiza um cliente existente.
func (r *ClienteRepo) Update(ctx context.Context, cliente *entity.Cliente) error {
	res, err := sqlx.NamedExecContext(ctx, r.q, Clientes.UpdateSQL(), cliente)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um cliente. Clientes referenciados por pedidos viram ErrConflict.
func (r *ClienteRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", Clientes.Name), id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete cliente: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountPedidos conta pedidos vinculados ao cliente (checagem de integridade no delete).
func (r *ClienteRepo) CountPedidos(ctx context.Context, clienteID string) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, r.q, &n,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE cliente_id = ?", Pedidos.Name), clienteID)
	if err != nil {
		return 0, fmt.Errorf("count pedidos do cliente: %w", err)
	}
	return n, nil
}
