// Package estoque contém o ciclo de movimentação de estoque: registro
// transacional de entradas, saídas e ajustes com derivação das quantidades.
package estoque

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

// UseCase registra movimentações e consulta o histórico.
//
// quantidadeAnterior e quantidadeNova nunca vêm do cliente: são derivadas do
// item lido dentro da mesma transação que grava a movimentação e atualiza o
// item, então o histórico é sempre consistente com o estoque.
type UseCase struct {
	tx      TxRunner
	movRepo repository.MovimentacaoRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(tx TxRunner, movRepo repository.MovimentacaoRepository) *UseCase {
	return &UseCase{tx: tx, movRepo: movRepo}
}

// Registrar aplica uma movimentação a um item:
//
//	entrada: nova = anterior + quantidade
//	saida:   nova = anterior - quantidade (ErrEstoqueInsuficiente se negativa)
//	ajuste:  nova = quantidade (valor absoluto informado)
func (uc *UseCase) Registrar(ctx context.Context, in dto.MovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	if !entity.TipoMovimentacaoValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.MovimentacaoAjuste && !in.Quantidade.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantidade.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.MovimentacaoResponse
	err := uc.tx.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovimentacaoRepository) error {
		item, err := itemRepo.GetByID(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		anterior := item.Quantidade
		var nova decimal.Decimal
		switch in.Tipo {
		case entity.MovimentacaoEntrada:
			nova = anterior.Add(in.Quantidade)
		case entity.MovimentacaoSaida:
			nova = anterior.Sub(in.Quantidade)
			if nova.IsNegative() {
				return domain.ErrEstoqueInsuficiente
			}
		case entity.MovimentacaoAjuste:
			nova = in.Quantidade
		}

		mov := &entity.Movimentacao{
			ID:                 uuid.New().String(),
			ItemID:             item.ID,
			Tipo:               in.Tipo,
			Quantidade:         in.Quantidade,
			QuantidadeAnterior: anterior,
			QuantidadeNova:     nova,
			Motivo:             in.Motivo,
			Observacoes:        in.Observacoes,
			Usuario:            in.Usuario,
			CreatedAt:          time.Now(),
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}

		item.Quantidade = nova
		item.UpdatedAt = mov.CreatedAt
		if err := itemRepo.Update(ctx, item); err != nil {
			return err
		}

		out = toMovimentacaoResponse(mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Listar histórico de movimentações (itemID vazio = todas), mais recentes primeiro.
func (uc *UseCase) Listar(ctx context.Context, itemID string) ([]dto.MovimentacaoResponse, error) {
	list, err := uc.movRepo.List(ctx, itemID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMovimentacaoResponse(m))
	}
	return out, nil
}

func toMovimentacaoResponse(m *entity.Movimentacao) *dto.MovimentacaoResponse {
	return &dto.MovimentacaoResponse{
		ID:                 m.ID,
		ItemID:             m.ItemID,
		Tipo:               m.Tipo,
		Quantidade:         m.Quantidade,
		QuantidadeAnterior: m.QuantidadeAnterior,
		QuantidadeNova:     m.QuantidadeNova,
		Motivo:             m.Motivo,
		Observacoes:        m.Observacoes,
		Usuario:            m.Usuario,
		CreatedAt:          m.CreatedAt,
	}
}
