package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatsRepository consultas agregadas read-only para o dashboard.
type StatsRepository interface {
	CountItens(ctx context.Context) (int, error)
	CountGrupos(ctx context.Context) (int, error)
	ValorTotalEstoque(ctx context.Context) (decimal.Decimal, error)
	CountEstoqueBaixo(ctx context.Context) (int, error)
	CountPedidosAbertos(ctx context.Context) (int, error)
	CountMesasOcupadas(ctx context.Context) (int, error)
	CountMovimentacoesHoje(ctx context.Context) (int, error)
	FaturamentoHoje(ctx context.Context) (decimal.Decimal, error)
}
