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

const capacidadePadrao = 4

// MesaUseCase casos de uso para mesas. Diferente dos demais recursos, a
// atualização é um PATCH parcial: só os campos presentes mudam.
type MesaUseCase struct {
	repo repository.MesaRepository
}

// NewMesaUseCase constrói o caso de uso.
func NewMesaUseCase(repo repository.MesaRepository) *MesaUseCase {
	return &MesaUseCase{repo: repo}
}

// Create cria uma nova mesa. Número duplicado vira ErrDuplicate.
func (uc *MesaUseCase) Create(ctx context.Context, in dto.MesaRequest) (*dto.MesaResponse, error) {
	if in.Numero <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.MesaLivre
	}
	if !entity.StatusMesaValido(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNumero(ctx, in.Numero)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Capacidade <= 0 {
		in.Capacidade = capacidadePadrao
	}
	now := time.Now()
	mesa := &entity.Mesa{
		ID:         uuid.New().String(),
		Numero:     in.Numero,
		Capacidade: in.Capacidade,
		Status:     in.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, mesa); err != nil {
		return nil, err
	}
	return toMesaResponse(mesa), nil
}

// GetByID obtém uma mesa por ID. Retorna (nil, nil) quando não existe.
func (uc *MesaUseCase) GetByID(ctx context.Context, id string) (*dto.MesaResponse, error) {
	mesa, err := uc.repo.GetByID(ctx, id)
	if err != nil || mesa == nil {
		return nil, err
	}
	return toMesaResponse(mesa), nil
}

// List lista todas as mesas por número.
func (uc *MesaUseCase) List(ctx context.Context) ([]dto.MesaResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MesaResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMesaResponse(m))
	}
	return out, nil
}

// Patch aplica uma atualização parcial na mesa (número, capacidade, status).
func (uc *MesaUseCase) Patch(ctx context.Context, id string, in dto.MesaPatchRequest) (*dto.MesaResponse, error) {
	mesa, err := uc.repo.GetByID(ctx, id)
	if err != nil || mesa == nil {
		return nil, err
	}
	if in.Numero != nil && *in.Numero != mesa.Numero {
		if *in.Numero <= 0 {
			return nil, domain.ErrInvalidInput
		}
		existing, err := uc.repo.GetByNumero(ctx, *in.Numero)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		mesa.Numero = *in.Numero
	}
	if in.Capacidade != nil {
		if *in.Capacidade <= 0 {
			return nil, domain.ErrInvalidInput
		}
		mesa.Capacidade = *in.Capacidade
	}
	if in.Status != nil {
		if !entity.StatusMesaValido(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		mesa.Status = *in.Status
	}
	mesa.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, mesa); err != nil {
		return nil, err
	}
	return toMesaResponse(mesa), nil
}

// Delete remove uma mesa. Mesas com pedido aberto viram ErrConflict.
func (uc *MesaUseCase) Delete(ctx context.Context, id string) error {
	n, err := uc.repo.CountPedidosAbertos(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(ctx, id)
}

func toMesaResponse(m *entity.Mesa) *dto.MesaResponse {
	return &dto.MesaResponse{
		ID:         m.ID,
		Numero:     m.Numero,
		Capacidade: m.Capacidade,
		Status:     m.Status,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
