package analytics_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanchefacil/lanchefacil-api/internal/application/analytics"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
	"github.com/lanchefacil/lanchefacil-api/internal/infrastructure/sqlite"
)

func TestGetDashboard_AgregaEstoqueEOperacao(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "dash.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now()
	grupoRepo := sqlite.NewGrupoRepository(db)
	itemRepo := sqlite.NewItemRepository(db)
	mesaRepo := sqlite.NewMesaRepository(db)
	pedidoRepo := sqlite.NewPedidoRepository(db)

	g := &entity.Grupo{ID: uuid.New().String(), Nome: "Bebidas", Cor: entity.CorPadrao,
		Ativo: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, grupoRepo.Create(ctx, g))

	it := &entity.Item{ID: uuid.New().String(), Nome: "Refrigerante", GrupoID: g.ID,
		Quantidade: decimal.NewFromInt(2), Unidade: "un",
		ValorUnitario: decimal.NewFromInt(5), EstoqueMinimo: decimal.NewFromInt(3),
		Ativo: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, itemRepo.Create(ctx, it))

	mesa := &entity.Mesa{ID: uuid.New().String(), Numero: 1, Capacidade: 4,
		Status: entity.MesaOcupada, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, mesaRepo.Create(ctx, mesa))

	pedido := &entity.Pedido{ID: uuid.New().String(), MesaID: &mesa.ID,
		Status: entity.PedidoAberto, Total: decimal.NewFromInt(30),
		CreatedAt: now, UpdatedAt: now}
	require.NoError(t, pedidoRepo.Create(ctx, pedido))

	uc := analytics.NewDashboardUseCase(sqlite.NewStatsRepository(db))

	out, err := uc.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, out.TotalItens)
	assert.Equal(t, 1, out.TotalGrupos)
	assert.Equal(t, 1, out.ItensEstoqueBaixo, "2 <= mínimo 3")
	assert.True(t, out.ValorTotalEstoque.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 1, out.PedidosAbertos)
	assert.Equal(t, 1, out.MesasOcupadas)
	assert.True(t, out.FaturamentoHoje.Equal(decimal.NewFromInt(30)),
		"pedido criado hoje entra no faturamento do dia")
}
