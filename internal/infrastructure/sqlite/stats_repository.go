package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas read-only para /api/stats e /api/dashboard/stats.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository constrói o adaptador de consultas agregadas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

func (r *StatsRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, r.q, &n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}

// CountItens total de itens ativos do estoque.
func (r *StatsRepo) CountItens(ctx context.Context) (int, error) {
	n, err := r.count(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE ativo = 1", Itens.Name))
	if err != nil {
		return 0, fmt.Errorf("count itens: %w", err)
	}
	return n, nil
}

// CountGrupos total de grupos ativos.
func (r *StatsRepo) CountGrupos(ctx context.Context) (int, error) {
	n, err := r.count(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE ativo = 1", Grupos.Name))
	if err != nil {
		return 0, fmt.Errorf("count grupos: %w", err)
	}
	return n, nil
}

// ValorTotalEstoque soma de quantidade × valor unitário de todos os itens ativos.
func (r *StatsRepo) ValorTotalEstoque(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(quantidade * valor_unitario), 0) FROM %s WHERE ativo = 1", Itens.Name)
	if err := sqlx.GetContext(ctx, r.q, &total, query); err != nil {
		return decimal.Zero, fmt.Errorf("valor total do estoque: %w", err)
	}
	return total, nil
}

// CountEstoqueBaixo itens ativos no nível de alerta de reposição.
func (r *StatsRepo) CountEstoqueBaixo(ctx context.Context) (int, error) {
	n, err := r.count(ctx, fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE ativo = 1 AND estoque_minimo > 0 AND quantidade <= estoque_minimo",
		Itens.Name))
	if err != nil {
		return 0, fmt.Errorf("count estoque baixo: %w", err)
	}
	return n, nil
}

// CountPedidosAbertos pedidos em status não terminal.
func (r *StatsRepo) CountPedidosAbertos(ctx context.Context) (int, error) {
	n, err := r.count(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE status NOT IN (?, ?)", Pedidos.Name),
		entity.PedidoEntregue, entity.PedidoCancelado)
	if err != nil {
		return 0, fmt.Errorf("count pedidos abertos: %w", err)
	}
	return n, nil
}

// CountMesasOcupadas mesas com status ocupada.
func (r *StatsRepo) CountMesasOcupadas(ctx context.Context) (int, error) {
	n, err := r.count(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE status = ?", Mesas.Name), entity.MesaOcupada)
	if err != nil {
		return 0, fmt.Errorf("count mesas ocupadas: %w", err)
	}
	return n, nil
}

// CountMovimentacoesHoje movimentações registradas desde a meia-noite local.
func (r *StatsRepo) CountMovimentacoesHoje(ctx context.Context) (int, error) {
	n, err := r.count(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE created_at >= ?", Movimentacoes.Name), inicioDoDia())
	if err != nil {
		return 0, fmt.Errorf("count movimentações de hoje: %w", err)
	}
	return n, nil
}

// FaturamentoHoje soma dos totais de pedidos não cancelados criados hoje.
func (r *StatsRepo) FaturamentoHoje(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(total), 0) FROM %s WHERE status != ? AND created_at >= ?", Pedidos.Name)
	if err := sqlx.GetContext(ctx, r.q, &total, query, entity.PedidoCancelado, inicioDoDia()); err != nil {
		return decimal.Zero, fmt.Errorf("faturamento de hoje: %w", err)
	}
	return total, nil
}

// inicioDoDia meia-noite de hoje no fuso local.
func inicioDoDia() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
