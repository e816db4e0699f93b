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

var _ repository.ConfigRepository = (*ConfigRepo)(nil)

// ConfigRepo implementação do porto ConfigRepository sobre SQLite.
// Config é endereçada pela chave (única), não pelo id.
type ConfigRepo struct {
	q Querier
}

// NewConfigRepository constrói o adaptador de persistência para config.
func NewConfigRepository(q Querier) *ConfigRepo {
	return &ConfigRepo{q: q}
}

// Create persiste um novo par chave/valor. Chave duplicada vira ErrDuplicate.
func (r *ConfigRepo) Create(ctx context.Context, cfg *entity.Config) error {
	if _, err := sqlx.NamedExecContext(ctx, r.q, Configs.InsertSQL(), cfg); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert config: %w", err)
	}
	return nil
}

// GetByChave obtém um par pela chave. Retorna (nil, nil) quando não existe.
func (r *ConfigRepo) GetByChave(ctx context.Context, chave string) (*entity.Config, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE chave = ?", Configs.SelectColumns(), Configs.Name)
	var c entity.Config
	if err := sqlx.GetContext(ctx, r.q, &c, query, chave); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get config: %w", err)
	}
	return &c, nil
}

// List lista todos os pares em ordem de chave.
func (r *ConfigRepo) List(ctx context.Context) ([]*entity.Config, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY chave", Configs.SelectColumns(), Configs.Name)
	var list []*entity.Config
	if err := sqlx.SelectContext(ctx, r.q, &list, query); err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	return list, nil
}

// Update atualiza o valor de uma chave existente.
func (r *ConfigRepo) Update(ctx context.Context, cfg *entity.Config) error {
	res, err := r.q.ExecContext(ctx,
		fmt.Sprintf("UPDATE %s SET valor = ? WHERE chave = ?", Configs.Name), cfg.Valor, cfg.Chave)
	if err != nil {
		return fmt.Errorf("update config: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um par pela chave.
func (r *ConfigRepo) Delete(ctx context.Context, chave string) error {
	res, err := r.q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE chave = ?", Configs.Name), chave)
	if err != nil {
		return fmt.Errorf("delete config: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
