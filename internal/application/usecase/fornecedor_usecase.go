package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lanchefacil/lanchefacil-api/internal/application/dto"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/repository"
)

// FornecedorUseCase casos de uso CRUD para fornecedores.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Create cria um novo fornecedor.
func (uc *FornecedorUseCase) Create(ctx context.Context, in dto.FornecedorRequest) (*dto.FornecedorResponse, error) {
	now := time.Now()
	f := &entity.Fornecedor{
		ID:          uuid.New().String(),
		Nome:        in.Nome,
		Email:       in.Email,
		Telefone:    in.Telefone,
		Endereco:    in.Endereco,
		CNPJ:        in.CNPJ,
		Observacoes: in.Observacoes,
		Ativo:       in.Ativo == nil || *in.Ativo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return toFornecedorResponse(f), nil
}

// GetByID obtém um fornecedor por ID. Retorna (nil, nil) quando não existe.
func (uc *FornecedorUseCase) GetByID(ctx context.Context, id string) (*dto.FornecedorResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil || f == nil {
		return nil, err
	}
	return toFornecedorResponse(f), nil
}

// List lista todos os fornecedores.
func (uc *FornecedorUseCase) List(ctx context.Context) ([]dto.FornecedorResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FornecedorResponse, 0, len(list))
	for _, f := range list {
		out = append(out, *toFornecedorResponse(f))
	}
	return out, nil
}

// Update substitui os campos editáveis de um fornecedor.
func (uc *FornecedorUseCase) Update(ctx context.Context, id string, in dto.FornecedorRequest) (*dto.FornecedorResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil || f == nil {
		return nil, err
	}
	f.Nome = in.Nome
	f.Email = in.Email
	f.Telefone = in.Telefone
	f.Endereco = in.Endereco
	f.CNPJ = in.CNPJ
	f.Observacoes = in.Observacoes
	if in.Ativo != nil {
		f.Ativo = *in.Ativo
	}
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return toFornecedorResponse(f), nil
}

// Delete remove um fornecedor.
func (uc *FornecedorUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toFornecedorResponse(f *entity.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:          f.ID,
		Nome:        f.Nome,
		Email:       f.Email,
		Telefone:    f.Telefone,
		Endereco:    f.Endereco,
		CNPJ:        f.CNPJ,
		Observacoes: f.Observacoes,
		Ativo:       f.Ativo,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
