package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lanchefacil/lanchefacil-api/internal/application/dto"
	"github.com/lanchefacil/lanchefacil-api/internal/domain"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create cria um novo cliente.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	now := time.Now()
	c := &entity.Cliente{
		ID:          uuid.New().String(),
		Nome:        in.Nome,
		Telefone:    in.Telefone,
		Email:       in.Email,
		Endereco:    in.Endereco,
		Observacoes: in.Observacoes,
		Ativo:       in.Ativo == nil || *in.Ativo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByID obtém um cliente por ID. Retorna (nil, nil) quando não existe.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// List lista todos os clientes.
func (uc *ClienteUseCase) List(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClienteResponse(c))
	}
	return out, nil
}

// Update substitui os campos editáveis de um cliente.
func (uc *ClienteUseCase) Update(ctx context.Context, id string, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	c.Nome = in.Nome
	c.Telefone = in.Telefone
	c.Email = in.Email
	c.Endereco = in.Endereco
	c.Observacoes = in.Observacoes
	if in.Ativo != nil {
		c.Ativo = *in.Ativo
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Delete remove um cliente. Clientes com pedidos viram ErrConflict (restrict).
func (uc *ClienteUseCase) Delete(ctx context.Context, id string) error {
	n, err := uc.repo.CountPedidos(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(ctx, id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:          c.ID,
		Nome:        c.Nome,
		Telefone:    c.Telefone,
		Email:       c.Email,
		Endereco:    c.Endereco,
		Observacoes: c.Observacoes,
		Ativo:       c.Ativo,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
