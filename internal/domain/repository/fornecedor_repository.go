package repository

import (
	"context"

	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
)

// FornecedorRepository define o porto de persistência para Fornecedor.
type FornecedorRepository interface {
	Create(ctx context.Context, fornecedor *entity.Fornecedor) error
	GetByID(ctx context.Context, id string) (*entity.Fornecedor, error)
	List(ctx context.Context) ([]*entity.Fornecedor, error)
	Update(ctx context.Context, fornecedor *entity.Fornecedor) error
	Delete(ctx context.Context, id string) error
}
