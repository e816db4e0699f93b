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

// CardapioUseCase casos de uso CRUD para o cardápio.
type CardapioUseCase struct {
	repo repository.CardapioRepository
}

// NewCardapioUseCase constrói o caso de uso.
func NewCardapioUseCase(repo repository.CardapioRepository) *CardapioUseCase {
	return &CardapioUseCase{repo: repo}
}

// Create cria um novo item do cardápio.
func (uc *CardapioUseCase) Create(ctx context.Context, in dto.CardapioRequest) (*dto.CardapioResponse, error) {
	if in.Preco.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.ItemCardapio{
		ID:         uuid.New().String(),
		Nome:       in.Nome,
		Descricao:  in.Descricao,
		Categoria:  in.Categoria,
		Preco:      in.Preco,
		Disponivel: in.Disponivel == nil || *in.Disponivel,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toCardapioResponse(item), nil
}

// GetByID obtém um item do cardápio por ID. Retorna (nil, nil) quando não existe.
func (uc *CardapioUseCase) GetByID(ctx context.Context, id string) (*dto.CardapioResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}
	return toCardapioResponse(item), nil
}

// List lista o cardápio.
func (uc *CardapioUseCase) List(ctx context.Context) ([]dto.CardapioResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CardapioResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toCardapioResponse(it))
	}
	return out, nil
}

// Update substitui os campos editáveis de um item do cardápio. Pedidos já
// feitos não mudam: o preço da linha é um retrato do momento da inclusão.
func (uc *CardapioUseCase) Update(ctx context.Context, id string, in dto.CardapioRequest) (*dto.CardapioResponse, error) {
	if in.Preco.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}
	item.Nome = in.Nome
	item.Descricao = in.Descricao
	item.Categoria = in.Categoria
	item.Preco = in.Preco
	if in.Disponivel != nil {
		item.Disponivel = *in.Disponivel
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toCardapioResponse(item), nil
}

// Delete remove um item do cardápio. Itens referenciados por pedidos viram ErrConflict.
func (uc *CardapioUseCase) Delete(ctx context.Context, id string) error {
	n, err := uc.repo.CountPedidoItens(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(ctx, id)
}

func toCardapioResponse(i *entity.ItemCardapio) *dto.CardapioResponse {
	return &dto.CardapioResponse{
		ID:         i.ID,
		Nome:       i.Nome,
		Descricao:  i.Descricao,
		Categoria:  i.Categoria,
		Preco:      i.Preco,
		Disponivel: i.Disponivel,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}
