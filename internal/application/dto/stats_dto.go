package dto

import "github.com/shopspring/decimal"

// StatsResponse contadores do estoque (/api/stats).
type StatsResponse struct {
	TotalItens        int             `json:"totalItens"`
	TotalGrupos       int             `json:"totalGrupos"`
	ValorTotalEstoque decimal.Decimal `json:"valorTotalEstoque"`
	ItensEstoqueBaixo int             `json:"itensEstoqueBaixo"`
}

// DashboardStatsResponse contadores do estoque + operação (/api/dashboard/stats).
type DashboardStatsResponse struct {
	StatsResponse
	PedidosAbertos    int             `json:"pedidosAbertos"`
	MesasOcupadas     int             `json:"mesasOcupadas"`
	MovimentacoesHoje int             `json:"movimentacoesHoje"`
	FaturamentoHoje   decimal.Decimal `json:"faturamentoHoje"`
}
