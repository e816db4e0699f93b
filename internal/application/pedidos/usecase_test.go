package pedidos_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanchefacil/lanchefacil-api/internal/application/dto"
	"github.com/lanchefacil/lanchefacil-api/internal/application/pedidos"
	"github.com/lanchefacil/lanchefacil-api/internal/domain"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
	"github.com/lanchefacil/lanchefacil-api/internal/infrastructure/sqlite"
)

type pedidoEnv struct {
	uc           *pedidos.UseCase
	mesaRepo     *sqlite.MesaRepo
	cardapioRepo *sqlite.CardapioRepo
	mesaID       string
	pratoID      string
}

// setupPedidos monta o caso de uso com uma mesa livre e um prato disponível.
func setupPedidos(t *testing.T) *pedidoEnv {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "pedidos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mesaRepo := sqlite.NewMesaRepository(db)
	cardapioRepo := sqlite.NewCardapioRepository(db)
	pedidoRepo := sqlite.NewPedidoRepository(db)

	now := time.Now()
	mesa := &entity.Mesa{ID: uuid.New().String(), Numero: 1, Capacidade: 4,
		Status: entity.MesaLivre, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, mesaRepo.Create(ctx, mesa))

	prato := &entity.ItemCardapio{ID: uuid.New().String(), Nome: "X-Salada",
		Categoria: "lanches", Preco: decimal.NewFromFloat(18.50), Disponivel: true,
		CreatedAt: now, UpdatedAt: now}
	require.NoError(t, cardapioRepo.Create(ctx, prato))

	return &pedidoEnv{
		uc:           pedidos.NewUseCase(sqlite.NewTxRunner(db), pedidoRepo),
		mesaRepo:     mesaRepo,
		cardapioRepo: cardapioRepo,
		mesaID:       mesa.ID,
		pratoID:      prato.ID,
	}
}

func (e *pedidoEnv) statusDaMesa(t *testing.T) string {
	t.Helper()
	mesa, err := e.mesaRepo.GetByID(context.Background(), e.mesaID)
	require.NoError(t, err)
	require.NotNil(t, mesa)
	return mesa.Status
}

func TestCreate_ComMesaOcupaAMesa(t *testing.T) {
	env := setupPedidos(t)

	pedido, err := env.uc.Create(context.Background(), dto.PedidoRequest{MesaID: &env.mesaID})
	require.NoError(t, err)

	assert.Equal(t, entity.PedidoAberto, pedido.Status)
	assert.True(t, pedido.Total.IsZero(), "pedido nasce com total zero")
	assert.Equal(t, entity.MesaOcupada, env.statusDaMesa(t),
		"abrir pedido de mesa deve ocupá-la na mesma transação")
}

func TestCreate_SemMesaEhBalcao(t *testing.T) {
	env := setupPedidos(t)

	pedido, err := env.uc.Create(context.Background(), dto.PedidoRequest{})
	require.NoError(t, err)

	assert.Nil(t, pedido.MesaID)
	assert.Equal(t, entity.MesaLivre, env.statusDaMesa(t), "pedido de balcão não toca as mesas")
}

func TestCreate_MesaInexistente(t *testing.T) {
	env := setupPedidos(t)
	fantasma := uuid.New().String()

	_, err := env.uc.Create(context.Background(), dto.PedidoRequest{MesaID: &fantasma})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddItem_RetrataPrecoERecalculaTotal(t *testing.T) {
	env := setupPedidos(t)
	ctx := context.Background()

	pedido, err := env.uc.Create(ctx, dto.PedidoRequest{MesaID: &env.mesaID})
	require.NoError(t, err)

	linha, err := env.uc.AddItem(ctx, pedido.ID, dto.PedidoItemRequest{
		CardapioID: env.pratoID, Quantidade: 2,
	})
	require.NoError(t, err)

	assert.True(t, linha.PrecoUnitario.Equal(decimal.NewFromFloat(18.50)),
		"o preço unitário é um retrato do cardápio na inclusão")
	assert.True(t, linha.Subtotal.Equal(decimal.NewFromFloat(37)))

	// Subir o preço do cardápio depois não muda a linha nem o total.
	prato, err := env.cardapioRepo.GetByID(ctx, env.pratoID)
	require.NoError(t, err)
	prato.Preco = decimal.NewFromFloat(25)
	prato.UpdatedAt = time.Now()
	require.NoError(t, env.cardapioRepo.Update(ctx, prato))

	depois, err := env.uc.GetByID(ctx, pedido.ID)
	require.NoError(t, err)
	assert.True(t, depois.Total.Equal(decimal.NewFromFloat(37)),
		"total usa o preço retratado, não o preço atual do cardápio")
	require.Len(t, depois.Itens, 1)
}

func TestAddItem_PedidoFechado(t *testing.T) {
	env := setupPedidos(t)
	ctx := context.Background()

	pedido, err := env.uc.Create(ctx, dto.PedidoRequest{})
	require.NoError(t, err)

	entregue := entity.PedidoEntregue
	_, err = env.uc.Patch(ctx, pedido.ID, dto.PedidoPatchRequest{Status: &entregue})
	require.NoError(t, err)

	_, err = env.uc.AddItem(ctx, pedido.ID, dto.PedidoItemRequest{
		CardapioID: env.pratoID, Quantidade: 1,
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "pedido fechado não aceita itens")
}

func TestAddItem_PratoIndisponivel(t *testing.T) {
	env := setupPedidos(t)
	ctx := context.Background()

	prato, err := env.cardapioRepo.GetByID(ctx, env.pratoID)
	require.NoError(t, err)
	prato.Disponivel = false
	prato.UpdatedAt = time.Now()
	require.NoError(t, env.cardapioRepo.Update(ctx, prato))

	pedido, err := env.uc.Create(ctx, dto.PedidoRequest{})
	require.NoError(t, err)

	_, err = env.uc.AddItem(ctx, pedido.ID, dto.PedidoItemRequest{
		CardapioID: env.pratoID, Quantidade: 1,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateItem_RecalculaTotal(t *testing.T) {
	env := setupPedidos(t)
	ctx := context.Background()

	pedido, err := env.uc.Create(ctx, dto.PedidoRequest{})
	require.NoError(t, err)
	linha, err := env.uc.AddItem(ctx, pedido.ID, dto.PedidoItemRequest{
		CardapioID: env.pratoID, Quantidade: 1,
	})
	require.NoError(t, err)

	tres := 3
	alterada, err := env.uc.UpdateItem(ctx, linha.ID, dto.PedidoItemPatchRequest{Quantidade: &tres})
	require.NoError(t, err)
	assert.True(t, alterada.Subtotal.Equal(decimal.NewFromFloat(55.50)))

	depois, err := env.uc.GetByID(ctx, pedido.ID)
	require.NoError(t, err)
	assert.True(t, depois.Total.Equal(decimal.NewFromFloat(55.50)))
}

func TestRemoveItem_ZeraTotal(t *testing.T) {
	env := setupPedidos(t)
	ctx := context.Background()

	pedido, err := env.uc.Create(ctx, dto.PedidoRequest{})
	require.NoError(t, err)
	linha, err := env.uc.AddItem(ctx, pedido.ID, dto.PedidoItemRequest{
		CardapioID: env.pratoID, Quantidade: 2,
	})
	require.NoError(t, err)

	require.NoError(t, env.uc.RemoveItem(ctx, linha.ID))

	depois, err := env.uc.GetByID(ctx, pedido.ID)
	require.NoError(t, err)
	assert.True(t, depois.Total.IsZero())
	assert.Empty(t, depois.Itens)
}

func TestPatch_EntregarLiberaAMesa(t *testing.T) {
	env := setupPedidos(t)
	ctx := context.Background()

	pedido, err := env.uc.Create(ctx, dto.PedidoRequest{MesaID: &env.mesaID})
	require.NoError(t, err)
	require.Equal(t, entity.MesaOcupada, env.statusDaMesa(t))

	entregue := entity.PedidoEntregue
	depois, err := env.uc.Patch(ctx, pedido.ID, dto.PedidoPatchRequest{Status: &entregue})
	require.NoError(t, err)

	assert.Equal(t, entity.PedidoEntregue, depois.Status)
	assert.Equal(t, entity.MesaLivre, env.statusDaMesa(t),
		"status terminal deve liberar a mesa")
}

func TestDelete_PedidoAbertoLiberaAMesa(t *testing.T) {
	env := setupPedidos(t)
	ctx := context.Background()

	pedido, err := env.uc.Create(ctx, dto.PedidoRequest{MesaID: &env.mesaID})
	require.NoError(t, err)

	require.NoError(t, env.uc.Delete(ctx, pedido.ID))
	assert.Equal(t, entity.MesaLivre, env.statusDaMesa(t))

	sumido, err := env.uc.GetByID(ctx, pedido.ID)
	require.NoError(t, err)
	assert.Nil(t, sumido)
}

func TestList_FiltraPorStatus(t *testing.T) {
	env := setupPedidos(t)
	ctx := context.Background()

	aberto, err := env.uc.Create(ctx, dto.PedidoRequest{})
	require.NoError(t, err)
	fechado, err := env.uc.Create(ctx, dto.PedidoRequest{})
	require.NoError(t, err)

	cancelado := entity.PedidoCancelado
	_, err = env.uc.Patch(ctx, fechado.ID, dto.PedidoPatchRequest{Status: &cancelado})
	require.NoError(t, err)

	abertos, err := env.uc.List(ctx, entity.PedidoAberto)
	require.NoError(t, err)
	require.Len(t, abertos, 1)
	assert.Equal(t, aberto.ID, abertos[0].ID)

	_, err = env.uc.List(ctx, "finalizado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "status desconhecido no filtro é rejeitado")
}
