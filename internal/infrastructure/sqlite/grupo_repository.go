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

var _ repository.GrupoRepository = (*GrupoRepo)(nil)

// GrupoRepo implementação do porto GrupoRepository sobre SQLite (usável com db ou tx).
type GrupoRepo struct {
	q Querier
}

// NewGrupoRepository constrói o adaptador de persistência para grupos.
func NewGrupoRepository(q Querier) *GrupoRepo {
	return &GrupoRepo{q: q}
}

// Create persiste um novo grupo. Nome duplicado vira ErrDuplicate.
func (r *GrupoRepo) Create(ctx context.Context, grupo *entity.Grupo) error {
	if _, err := sqlx.NamedExecContext(ctx, r.q, Grupos.InsertSQL(), grupo); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert grupo: %w", err)
	}
	return nil
}

// GetByID obtém um grupo por ID. Retorna (nil, nil) quando não existe.
func (r *GrupoRepo) GetByID(ctx context.Context, id string) (*entity.Grupo, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", Grupos.SelectColumns(), Grupos.Name)
	var g entity.Grupo
	if err := sqlx.GetContext(ctx, r.q, &g, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get grupo: %w", err)
	}
	return &g, nil
}

// GetByNome obtém um grupo pelo nome (único).
func (r *GrupoRepo) GetByNome(ctx context.Context, nome string) (*entity.Grupo, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE nome = ?", Grupos.SelectColumns(), Grupos.Name)
	var g entity.Grupo
	if err := sqlx.GetContext(ctx, r.q, &g, query, nome); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get grupo por nome: %w", err)
	}
	return &g, nil
}

// List lista todos os grupos em ordem alfabética.
func (r *GrupoRepo) List(ctx context.Context) ([]*entity.Grupo, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY nome", Grupos.SelectColumns(), Grupos.Name)
	var list []*entity.Grupo
	if err := sqlx.SelectContext(ctx, r.q, &list, query); err != nil {
		return nil, fmt.Errorf("list grupos: %w", err)
	}
	return list, nil
}

// Update atualiza um grupo existente.
func (r *GrupoRepo) Update(ctx context.Context, grupo *entity.Grupo) error {
	res, err := sqlx.NamedExecContext(ctx, r.q, Grupos.UpdateSQL(), grupo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update grupo: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um grupo. Grupos referenciados por itens viram ErrConflict.
func (r *GrupoRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", Grupos.Name), id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete grupo: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountItens conta itens vinculados ao grupo (checagem de integridade no delete).
func (r *GrupoRepo) CountItens(ctx context.Context, grupoID string) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, r.q, &n,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE grupo_id = ?", Itens.Name), grupoID)
	if err != nil {
		return 0, fmt.Errorf("count itens do grupo: %w", err)
	}
	return n, nil
}
