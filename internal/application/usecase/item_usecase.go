package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lanchefacil/lanchefacil-api/internal/application/dto"
	"github.com/lanchefacil/lanchefacil-api/internal/application/estoque"
	"github.com/lanchefacil/lanchefacil-api/internal/domain"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para itens do estoque.
type ItemUseCase struct {
	repo      repository.ItemRepository
	grupoRepo repository.GrupoRepository
	tx        estoque.TxRunner
}

// NewItemUseCase constrói o caso de uso.
func NewItemUseCase(repo repository.ItemRepository, grupoRepo repository.GrupoRepository, tx estoque.TxRunner) *ItemUseCase {
	return &ItemUseCase{repo: repo, grupoRepo: grupoRepo, tx: tx}
}

// Create cria um novo item. O grupo informado precisa existir.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.ItemRequest) (*dto.ItemResponse, error) {
	grupo, err := uc.grupoRepo.GetByID(ctx, in.GrupoID)
	if err != nil {
		return nil, err
	}
	if grupo == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantidade.IsNegative() || in.ValorUnitario.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		ID:            uuid.New().String(),
		Nome:          in.Nome,
		Descricao:     in.Descricao,
		GrupoID:       in.GrupoID,
		Quantidade:    in.Quantidade,
		Unidade:       in.Unidade,
		ValorUnitario: in.ValorUnitario,
		EstoqueMinimo: in.EstoqueMinimo,
		EstoqueIdeal:  in.EstoqueIdeal,
		Localizacao:   in.Localizacao,
		SKU:           in.SKU,
		Observacoes:   in.Observacoes,
		Ativo:         in.Ativo == nil || *in.Ativo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtém um item por ID. Retorna (nil, nil) quando não existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista todos os itens.
func (uc *ItemUseCase) List(ctx context.Context) ([]dto.ItemResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toItemResponses(list), nil
}

// ListEstoqueBaixo lista itens no nível de alerta de reposição.
func (uc *ItemUseCase) ListEstoqueBaixo(ctx context.Context) ([]dto.ItemResponse, error) {
	list, err := uc.repo.ListEstoqueBaixo(ctx)
	if err != nil {
		return nil, err
	}
	return toItemResponses(list), nil
}

// Update substitui os campos editáveis de um item. Se a quantidade mudar, um
// ajuste é registrado na mesma transação para o histórico não ficar furado.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.ItemRequest) (*dto.ItemResponse, error) {
	if in.Quantidade.IsNegative() || in.ValorUnitario.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	grupo, err := uc.grupoRepo.GetByID(ctx, in.GrupoID)
	if err != nil {
		return nil, err
	}
	if grupo == nil {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.ItemResponse
	err = uc.tx.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovimentacaoRepository) error {
		item, err := itemRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		if !in.Quantidade.Equal(item.Quantidade) {
			mov := &entity.Movimentacao{
				ID:                 uuid.New().String(),
				ItemID:             item.ID,
				Tipo:               entity.MovimentacaoAjuste,
				Quantidade:         in.Quantidade,
				QuantidadeAnterior: item.Quantidade,
				QuantidadeNova:     in.Quantidade,
				Motivo:             "edição direta do item",
				CreatedAt:          now,
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}
		}

		item.Nome = in.Nome
		item.Descricao = in.Descricao
		item.GrupoID = in.GrupoID
		item.Quantidade = in.Quantidade
		item.Unidade = in.Unidade
		item.ValorUnitario = in.ValorUnitario
		item.EstoqueMinimo = in.EstoqueMinimo
		item.EstoqueIdeal = in.EstoqueIdeal
		item.Localizacao = in.Localizacao
		item.SKU = in.SKU
		item.Observacoes = in.Observacoes
		if in.Ativo != nil {
			item.Ativo = *in.Ativo
		}
		item.UpdatedAt = now
		if err := itemRepo.Update(ctx, item); err != nil {
			return err
		}
		out = toItemResponse(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete remove um item e seu histórico de movimentações.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:            i.ID,
		Nome:          i.Nome,
		Descricao:     i.Descricao,
		GrupoID:       i.GrupoID,
		Quantidade:    i.Quantidade,
		Unidade:       i.Unidade,
		ValorUnitario: i.ValorUnitario,
		EstoqueMinimo: i.EstoqueMinimo,
		EstoqueIdeal:  i.EstoqueIdeal,
		Localizacao:   i.Localizacao,
		SKU:           i.SKU,
		Observacoes:   i.Observacoes,
		Ativo:         i.Ativo,
		EstoqueBaixo:  i.EstoqueBaixo(),
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func toItemResponses(list []*entity.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		out = append(out, *toItemResponse(i))
	}
	return out
}
