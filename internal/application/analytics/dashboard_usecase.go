// Package analytics contém os casos de uso dos contadores agregados
// (/api/stats e /api/dashboard/stats).
package analytics

import (
	"context"
	"fmt"

	"github.com/lanchefacil/lanchefacil-api/internal/application/dto"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardUseCase monta os resumos do estoque e da operação do dia.
//
// Fonte de dados: StatsRepository (consultas read-only). Não acessa as
// tabelas diretamente; delega tudo ao repositório.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

type countResult struct {
	n   int
	err error
}

type valorResult struct {
	v   decimal.Decimal
	err error
}

// GetStats contadores do estoque: quatro consultas em paralelo.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	itensCh := make(chan countResult, 1)
	gruposCh := make(chan countResult, 1)
	baixoCh := make(chan countResult, 1)
	valorCh := make(chan valorResult, 1)

	go func() {
		n, err := uc.statsRepo.CountItens(ctx)
		itensCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountGrupos(ctx)
		gruposCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountEstoqueBaixo(ctx)
		baixoCh <- countResult{n, err}
	}()
	go func() {
		v, err := uc.statsRepo.ValorTotalEstoque(ctx)
		valorCh <- valorResult{v, err}
	}()

	itens := <-itensCh
	grupos := <-gruposCh
	baixo := <-baixoCh
	valor := <-valorCh

	if itens.err != nil {
		return nil, fmt.Errorf("stats: itens: %w", itens.err)
	}
	if grupos.err != nil {
		return nil, fmt.Errorf("stats: grupos: %w", grupos.err)
	}
	if baixo.err != nil {
		return nil, fmt.Errorf("stats: estoque baixo: %w", baixo.err)
	}
	if valor.err != nil {
		return nil, fmt.Errorf("stats: valor total: %w", valor.err)
	}

	return &dto.StatsResponse{
		TotalItens:        itens.n,
		TotalGrupos:       grupos.n,
		ValorTotalEstoque: valor.v.Round(2),
		ItensEstoqueBaixo: baixo.n,
	}, nil
}

// GetDashboard contadores do estoque + operação do dia.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	stats, err := uc.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	pedidosCh := make(chan countResult, 1)
	mesasCh := make(chan countResult, 1)
	movsCh := make(chan countResult, 1)
	fatCh := make(chan valorResult, 1)

	go func() {
		n, err := uc.statsRepo.CountPedidosAbertos(ctx)
		pedidosCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountMesasOcupadas(ctx)
		mesasCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountMovimentacoesHoje(ctx)
		movsCh <- countResult{n, err}
	}()
	go func() {
		v, err := uc.statsRepo.FaturamentoHoje(ctx)
		fatCh <- valorResult{v, err}
	}()

	pedidos := <-pedidosCh
	mesas := <-mesasCh
	movs := <-movsCh
	fat := <-fatCh

	if pedidos.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos abertos: %w", pedidos.err)
	}
	if mesas.err != nil {
		return nil, fmt.Errorf("dashboard: mesas ocupadas: %w", mesas.err)
	}
	if movs.err != nil {
		return nil, fmt.Errorf("dashboard: movimentações de hoje: %w", movs.err)
	}
	if fat.err != nil {
		return nil, fmt.Errorf("dashboard: faturamento de hoje: %w", fat.err)
	}

	return &dto.DashboardStatsResponse{
		StatsResponse:     *stats,
		PedidosAbertos:    pedidos.n,
		MesasOcupadas:     mesas.n,
		MovimentacoesHoje: movs.n,
		FaturamentoHoje:   fat.v.Round(2),
	}, nil
}
