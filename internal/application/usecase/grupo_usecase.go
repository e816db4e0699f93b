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

// GrupoUseCase casos de uso CRUD para grupos de itens.
type GrupoUseCase struct {
	repo repository.GrupoRepository
}

// NewGrupoUseCase constrói o caso de uso.
func NewGrupoUseCase(repo repository.GrupoRepository) *GrupoUseCase {
	return &GrupoUseCase{repo: repo}
}

// Create cria um novo grupo. Nome duplicado vira ErrDuplicate; cor vazia
// recebe a cor padrão da paleta.
func (uc *GrupoUseCase) Create(ctx context.Context, in dto.GrupoRequest) (*dto.GrupoResponse, error) {
	existing, err := uc.repo.GetByNome(ctx, in.Nome)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Cor == "" {
		in.Cor = entity.CorPadrao
	}
	now := time.Now()
	grupo := &entity.Grupo{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Descricao: in.Descricao,
		Cor:       in.Cor,
		Ativo:     in.Ativo == nil || *in.Ativo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, grupo); err != nil {
		return nil, err
	}
	return toGrupoResponse(grupo), nil
}

// GetByID obtém um grupo por ID. Retorna (nil, nil) quando não existe.
func (uc *GrupoUseCase) GetByID(ctx context.Context, id string) (*dto.GrupoResponse, error) {
	grupo, err := uc.repo.GetByID(ctx, id)
	if err != nil || grupo == nil {
		return nil, err
	}
	return toGrupoResponse(grupo), nil
}

// List lista todos os grupos.
func (uc *GrupoUseCase) List(ctx context.Context) ([]dto.GrupoResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GrupoResponse, 0, len(list))
	for _, g := range list {
		out = append(out, *toGrupoResponse(g))
	}
	return out, nil
}

// Update substitui os campos editáveis de um grupo (full-replace).
func (uc *GrupoUseCase) Update(ctx context.Context, id string, in dto.GrupoRequest) (*dto.GrupoResponse, error) {
	grupo, err := uc.repo.GetByID(ctx, id)
	if err != nil || grupo == nil {
		return nil, err
	}
	if in.Nome != grupo.Nome {
		existing, err := uc.repo.GetByNome(ctx, in.Nome)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	grupo.Nome = in.Nome
	grupo.Descricao = in.Descricao
	if in.Cor != "" {
		grupo.Cor = in.Cor
	}
	if in.Ativo != nil {
		grupo.Ativo = *in.Ativo
	}
	grupo.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, grupo); err != nil {
		return nil, err
	}
	return toGrupoResponse(grupo), nil
}

// Delete remove um grupo. Grupos com itens vinculados viram ErrConflict
// (política restrict: nunca apagar em cascata nem órfãos).
func (uc *GrupoUseCase) Delete(ctx context.Context, id string) error {
	n, err := uc.repo.CountItens(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(ctx, id)
}

func toGrupoResponse(g *entity.Grupo) *dto.GrupoResponse {
	return &dto.GrupoResponse{
		ID:        g.ID,
		Nome:      g.Nome,
		Descricao: g.Descricao,
		Cor:       g.Cor,
		Ativo:     g.Ativo,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
