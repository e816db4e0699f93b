// Package pedidos contém o ciclo de vida do pedido: criação, mudança de
// status com ocupação/liberação de mesa e manutenção das linhas com total
// derivado, tudo transacional.
package pedidos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lanchefacil/lanchefacil-api/internal/application/dto"
	"github.com/lanchefacil/lanchefacil-api/internal/domain"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UseCase casos de uso do pedido.
type UseCase struct {
	tx   TxRunner
	repo repository.PedidoRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(tx TxRunner, repo repository.PedidoRepository) *UseCase {
	return &UseCase{tx: tx, repo: repo}
}

// Create abre um pedido. Com mesa informada, a mesa passa a ocupada na mesma
// transação; mesa inexistente vira ErrInvalidInput.
func (uc *UseCase) Create(ctx context.Context, in dto.PedidoRequest) (*dto.PedidoResponse, error) {
	var out *dto.PedidoResponse
	err := uc.tx.RunPedido(ctx, func(pedidoRepo repository.PedidoRepository, _ repository.CardapioRepository, mesaRepo repository.MesaRepository) error {
		if in.MesaID != nil {
			mesa, err := mesaRepo.GetByID(ctx, *in.MesaID)
			if err != nil {
				return err
			}
			if mesa == nil {
				return domain.ErrInvalidInput
			}
			mesa.Status = entity.MesaOcupada
			mesa.UpdatedAt = time.Now()
			if err := mesaRepo.Update(ctx, mesa); err != nil {
				return err
			}
		}
		now := time.Now()
		pedido := &entity.Pedido{
			ID:          uuid.New().String(),
			MesaID:      in.MesaID,
			ClienteID:   in.ClienteID,
			Status:      entity.PedidoAberto,
			Total:       decimal.Zero,
			Observacoes: in.Observacoes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := pedidoRepo.Create(ctx, pedido); err != nil {
			return err
		}
		out = toPedidoResponse(pedido, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtém um pedido com suas linhas. Retorna (nil, nil) quando não existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.PedidoResponse, error) {
	pedido, err := uc.repo.GetByID(ctx, id)
	if err != nil || pedido == nil {
		return nil, err
	}
	itens, err := uc.repo.ListItens(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido, itens), nil
}

// List lista pedidos (status vazio = todos), sem as linhas.
func (uc *UseCase) List(ctx context.Context, status string) ([]dto.PedidoResponse, error) {
	if status != "" && !entity.StatusPedidoValido(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPedidoResponse(p, nil))
	}
	return out, nil
}

// Patch aplica uma atualização parcial. Fechar o pedido (entregue/cancelado)
// libera a mesa; trocar de mesa libera a antiga e ocupa a nova.
func (uc *UseCase) Patch(ctx context.Context, id string, in dto.PedidoPatchRequest) (*dto.PedidoResponse, error) {
	if in.Status != nil && !entity.StatusPedidoValido(*in.Status) {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.PedidoResponse
	err := uc.tx.RunPedido(ctx, func(pedidoRepo repository.PedidoRepository, _ repository.CardapioRepository, mesaRepo repository.MesaRepository) error {
		pedido, err := pedidoRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if pedido == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		liberar := func(mesaID *string) error {
			if mesaID == nil {
				return nil
			}
			mesa, err := mesaRepo.GetByID(ctx, *mesaID)
			if err != nil || mesa == nil {
				return err
			}
			mesa.Status = entity.MesaLivre
			mesa.UpdatedAt = now
			return mesaRepo.Update(ctx, mesa)
		}
		ocupar := func(mesaID string) error {
			mesa, err := mesaRepo.GetByID(ctx, mesaID)
			if err != nil {
				return err
			}
			if mesa == nil {
				return domain.ErrInvalidInput
			}
			mesa.Status = entity.MesaOcupada
			mesa.UpdatedAt = now
			return mesaRepo.Update(ctx, mesa)
		}

		if in.MesaID != nil && (pedido.MesaID == nil || *in.MesaID != *pedido.MesaID) {
			if err := liberar(pedido.MesaID); err != nil {
				return err
			}
			if err := ocupar(*in.MesaID); err != nil {
				return err
			}
			pedido.MesaID = in.MesaID
		}
		if in.ClienteID != nil {
			pedido.ClienteID = in.ClienteID
		}
		if in.Observacoes != nil {
			pedido.Observacoes = *in.Observacoes
		}
		if in.Status != nil && *in.Status != pedido.Status {
			pedido.Status = *in.Status
			if entity.PedidoFechado(pedido.Status) {
				if err := liberar(pedido.MesaID); err != nil {
					return err
				}
			}
		}
		pedido.UpdatedAt = now
		if err := pedidoRepo.Update(ctx, pedido); err != nil {
			return err
		}
		out = toPedidoResponse(pedido, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete remove um pedido e suas linhas; pedido aberto com mesa libera a mesa.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.RunPedido(ctx, func(pedidoRepo repository.PedidoRepository, _ repository.CardapioRepository, mesaRepo repository.MesaRepository) error {
		pedido, err := pedidoRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if pedido == nil {
			return domain.ErrNotFound
		}
		if pedido.MesaID != nil && !entity.PedidoFechado(pedido.Status) {
			mesa, err := mesaRepo.GetByID(ctx, *pedido.MesaID)
			if err != nil {
				return err
			}
			if mesa != nil {
				mesa.Status = entity.MesaLivre
				mesa.UpdatedAt = time.Now()
				if err := mesaRepo.Update(ctx, mesa); err != nil {
					return err
				}
			}
		}
		return pedidoRepo.Delete(ctx, id)
	})
}

// ListItens lista as linhas de um pedido.
func (uc *UseCase) ListItens(ctx context.Context, pedidoID string) ([]dto.PedidoItemResponse, error) {
	pedido, err := uc.repo.GetByID(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	itens, err := uc.repo.ListItens(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PedidoItemResponse, 0, len(itens))
	for _, it := range itens {
		out = append(out, *toPedidoItemResponse(it))
	}
	return out, nil
}

// AddItem inclui um item do cardápio no pedido com retrato do preço atual e
// recalcula o total na mesma transação. Pedido fechado vira ErrConflict.
func (uc *UseCase) AddItem(ctx context.Context, pedidoID string, in dto.PedidoItemRequest) (*dto.PedidoItemResponse, error) {
	if in.Quantidade <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.PedidoItemResponse
	err := uc.tx.RunPedido(ctx, func(pedidoRepo repository.PedidoRepository, cardapioRepo repository.CardapioRepository, _ repository.MesaRepository) error {
		pedido, err := pedidoRepo.GetByID(ctx, pedidoID)
		if err != nil {
			return err
		}
		if pedido == nil {
			return domain.ErrNotFound
		}
		if entity.PedidoFechado(pedido.Status) {
			return domain.ErrConflict
		}
		prato, err := cardapioRepo.GetByID(ctx, in.CardapioID)
		if err != nil {
			return err
		}
		if prato == nil {
			return domain.ErrInvalidInput
		}
		if !prato.Disponivel {
			return domain.ErrConflict
		}

		item := &entity.PedidoItem{
			ID:            uuid.New().String(),
			PedidoID:      pedido.ID,
			CardapioID:    prato.ID,
			Quantidade:    in.Quantidade,
			PrecoUnitario: prato.Preco,
			Observacao:    in.Observacao,
			CreatedAt:     time.Now(),
		}
		if err := pedidoRepo.CreateItem(ctx, item); err != nil {
			return err
		}
		if err := recalcularTotal(ctx, pedidoRepo, pedido); err != nil {
			return err
		}
		out = toPedidoItemResponse(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateItem altera quantidade/observação de uma linha e recalcula o total.
func (uc *UseCase) UpdateItem(ctx context.Context, itemID string, in dto.PedidoItemPatchRequest) (*dto.PedidoItemResponse, error) {
	if in.Quantidade != nil && *in.Quantidade <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.PedidoItemResponse
	err := uc.tx.RunPedido(ctx, func(pedidoRepo repository.PedidoRepository, _ repository.CardapioRepository, _ repository.MesaRepository) error {
		item, err := pedidoRepo.GetItemByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		pedido, err := pedidoRepo.GetByID(ctx, item.PedidoID)
		if err != nil {
			return err
		}
		if pedido == nil {
			return domain.ErrNotFound
		}
		if entity.PedidoFechado(pedido.Status) {
			return domain.ErrConflict
		}
		if in.Quantidade != nil {
			item.Quantidade = *in.Quantidade
		}
		if in.Observacao != nil {
			item.Observacao = *in.Observacao
		}
		if err := pedidoRepo.UpdateItem(ctx, item); err != nil {
			return err
		}
		if err := recalcularTotal(ctx, pedidoRepo, pedido); err != nil {
			return err
		}
		out = toPedidoItemResponse(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveItem exclui uma linha e recalcula o total do pedido.
func (uc *UseCase) RemoveItem(ctx context.Context, itemID string) error {
	return uc.tx.RunPedido(ctx, func(pedidoRepo repository.PedidoRepository, _ repository.CardapioRepository, _ repository.MesaRepository) error {
		item, err := pedidoRepo.GetItemByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		pedido, err := pedidoRepo.GetByID(ctx, item.PedidoID)
		if err != nil {
			return err
		}
		if pedido == nil {
			return domain.ErrNotFound
		}
		if entity.PedidoFechado(pedido.Status) {
			return domain.ErrConflict
		}
		if err := pedidoRepo.DeleteItem(ctx, itemID); err != nil {
			return err
		}
		return recalcularTotal(ctx, pedidoRepo, pedido)
	})
}

// recalcularTotal soma as linhas e grava o total no pedido.
func recalcularTotal(ctx context.Context, pedidoRepo repository.PedidoRepository, pedido *entity.Pedido) error {
	itens, err := pedidoRepo.ListItens(ctx, pedido.ID)
	if err != nil {
		return err
	}
	total := decimal.Zero
	for _, it := range itens {
		total = total.Add(it.Subtotal())
	}
	pedido.Total = total
	pedido.UpdatedAt = time.Now()
	return pedidoRepo.Update(ctx, pedido)
}

func toPedidoResponse(p *entity.Pedido, itens []*entity.PedidoItem) *dto.PedidoResponse {
	out := &dto.PedidoResponse{
		ID:          p.ID,
		MesaID:      p.MesaID,
		ClienteID:   p.ClienteID,
		Status:      p.Status,
		Total:       p.Total,
		Observacoes: p.Observacoes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, it := range itens {
		out.Itens = append(out.Itens, *toPedidoItemResponse(it))
	}
	return out
}

func toPedidoItemResponse(it *entity.PedidoItem) *dto.PedidoItemResponse {
	return &dto.PedidoItemResponse{
		ID:            it.ID,
		PedidoID:      it.PedidoID,
		CardapioID:    it.CardapioID,
		Quantidade:    it.Quantidade,
		PrecoUnitario: it.PrecoUnitario,
		Subtotal:      it.Subtotal(),
		Observacao:    it.Observacao,
		CreatedAt:     it.CreatedAt,
	}
}
