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

// ConfigUseCase casos de uso para pares chave/valor de configuração.
type ConfigUseCase struct {
	repo repository.ConfigRepository
}

// NewConfigUseCase constrói o caso de uso.
func NewConfigUseCase(repo repository.ConfigRepository) *ConfigUseCase {
	return &ConfigUseCase{repo: repo}
}

// Create cria um novo par. Chave duplicada vira ErrDuplicate.
func (uc *ConfigUseCase) Create(ctx context.Context, in dto.ConfigRequest) (*dto.ConfigResponse, error) {
	cfg := &entity.Config{
		ID:        uuid.New().String(),
		Chave:     in.Chave,
		Valor:     in.Valor,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, cfg); err != nil {
		return nil, err
	}
	return toConfigResponse(cfg), nil
}

// GetByChave obtém um par pela chave. Retorna (nil, nil) quando não existe.
func (uc *ConfigUseCase) GetByChave(ctx context.Context, chave string) (*dto.ConfigResponse, error) {
	cfg, err := uc.repo.GetByChave(ctx, chave)
	if err != nil || cfg == nil {
		return nil, err
	}
	return toConfigResponse(cfg), nil
}

// List lista todos os pares.
func (uc *ConfigUseCase) List(ctx context.Context) ([]dto.ConfigResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConfigResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toConfigResponse(c))
	}
	return out, nil
}

// Update atualiza o valor de uma chave existente.
func (uc *ConfigUseCase) Update(ctx context.Context, chave, valor string) (*dto.ConfigResponse, error) {
	cfg, err := uc.repo.GetByChave(ctx, chave)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}
	cfg.Valor = valor
	if err := uc.repo.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return toConfigResponse(cfg), nil
}

// Delete remove um par pela chave.
func (uc *ConfigUseCase) Delete(ctx context.Context, chave string) error {
	return uc.repo.Delete(ctx, chave)
}

func toConfigResponse(c *entity.Config) *dto.ConfigResponse {
	return &dto.ConfigResponse{
		ID:        c.ID,
		Chave:     c.Chave,
		Valor:     c.Valor,
		CreatedAt: c.CreatedAt,
	}
}
