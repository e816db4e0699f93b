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

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação do porto FornecedorRepository sobre SQLite.
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador de persistência para fornecedores.
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

// Create persiste um novo fornecedor.
func (r *FornecedorRepo) Create(ctx context.Context, fornecedor *entity.Fornecedor) error {
	if _, err := sqlx.NamedExecContext(ctx, r.q, Fornecedores.InsertSQL(), fornecedor); err != nil {
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID. Retorna (nil, nil) quando não existe.
func (r *FornecedorRepo) GetByID(ctx context.Context, id string) (*entity.Fornecedor, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", Fornecedores.SelectColumns(), Fornecedores.Name)
	var f entity.Fornecedor
	if err := sqlx.GetContext(ctx, r.q, &f, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return &f, nil
}

// List lista todos os fornecedores em ordem alfabética.
func (r *FornecedorRepo) List(ctx context.Context) ([]*entity.Fornecedor, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY nome", Fornecedores.SelectColumns(), Fornecedores.Name)
	var list []*entity.Fornecedor
	if err := sqlx.SelectContext(ctx, r.q, &list, query); err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	return list, nil
}

// Update atualiza um fornecedor existente.
func (r *FornecedorRepo) Update(ctx context.Context, fornecedor *entity.Fornecedor) error {
	res, err := sqlx.NamedExecContext(ctx, r.q, Fornecedores.UpdateSQL(), fornecedor)
	if err != nil {
		return fmt.Errorf("update fornecedor: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um fornecedor.
func (r *FornecedorRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", Fornecedores.Name), id)
	if err != nil {
		return fmt.Errorf("delete fornecedor: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
