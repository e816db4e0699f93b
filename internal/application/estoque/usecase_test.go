package estoque_test

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
	"github.com/lanchefacil/lanchefacil-api/internal/application/estoque"
	"github.com/lanchefacil/lanchefacil-api/internal/domain"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
	"github.com/lanchefacil/lanchefacil-api/internal/infrastructure/sqlite"
)

// testEnv banco real + caso de uso montados como em produção.
type testEnv struct {
	uc       *estoque.UseCase
	itemRepo *sqlite.ItemRepo
	itemID   string
}

// setup cria grupo e item com a quantidade inicial informada.
func setup(t *testing.T, qtdInicial float64) *testEnv {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "estoque.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	grupoRepo := sqlite.NewGrupoRepository(db)
	itemRepo := sqlite.NewItemRepository(db)
	movRepo := sqlite.NewMovimentacaoRepository(db)

	now := time.Now()
	g := &entity.Grupo{ID: uuid.New().String(), Nome: "Bebidas", Cor: entity.CorPadrao,
		Ativo: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, grupoRepo.Create(ctx, g))

	it := &entity.Item{
		ID:            uuid.New().String(),
		Nome:          "Refrigerante",
		GrupoID:       g.ID,
		Quantidade:    decimal.NewFromFloat(qtdInicial),
		Unidade:       "un",
		ValorUnitario: decimal.NewFromFloat(5),
		Ativo:         true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, itemRepo.Create(ctx, it))

	return &testEnv{
		uc:       estoque.NewUseCase(sqlite.NewTxRunner(db), movRepo),
		itemRepo: itemRepo,
		itemID:   it.ID,
	}
}

func (e *testEnv) quantidadeAtual(t *testing.T) decimal.Decimal {
	t.Helper()
	it, err := e.itemRepo.GetByID(context.Background(), e.itemID)
	require.NoError(t, err)
	require.NotNil(t, it)
	return it.Quantidade
}

func TestRegistrar_EntradaSomaAoEstoque(t *testing.T) {
	env := setup(t, 10)

	out, err := env.uc.Registrar(context.Background(), dto.MovimentacaoRequest{
		ItemID:     env.itemID,
		Tipo:       entity.MovimentacaoEntrada,
		Quantidade: decimal.NewFromInt(5),
		Motivo:     "compra semanal",
	})
	require.NoError(t, err)

	assert.True(t, out.QuantidadeAnterior.Equal(decimal.NewFromInt(10)),
		"anterior deve refletir o estoque no momento do registro")
	assert.True(t, out.QuantidadeNova.Equal(decimal.NewFromInt(15)))
	assert.True(t, env.quantidadeAtual(t).Equal(decimal.NewFromInt(15)),
		"o item deve ser atualizado na mesma transação")
}

func TestRegistrar_SaidaSubtraiDoEstoque(t *testing.T) {
	env := setup(t, 10)

	out, err := env.uc.Registrar(context.Background(), dto.MovimentacaoRequest{
		ItemID:     env.itemID,
		Tipo:       entity.MovimentacaoSaida,
		Quantidade: decimal.NewFromInt(4),
	})
	require.NoError(t, err)

	assert.True(t, out.QuantidadeNova.Equal(decimal.NewFromInt(6)))
	assert.True(t, env.quantidadeAtual(t).Equal(decimal.NewFromInt(6)))
}

func TestRegistrar_SaidaMaiorQueEstoque(t *testing.T) {
	env := setup(t, 3)

	_, err := env.uc.Registrar(context.Background(), dto.MovimentacaoRequest{
		ItemID:     env.itemID,
		Tipo:       entity.MovimentacaoSaida,
		Quantidade: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)

	assert.True(t, env.quantidadeAtual(t).Equal(decimal.NewFromInt(3)),
		"movimentação rejeitada não pode alterar o estoque")
}

func TestRegistrar_AjusteDefineQuantidadeAbsoluta(t *testing.T) {
	env := setup(t, 10)

	out, err := env.uc.Registrar(context.Background(), dto.MovimentacaoRequest{
		ItemID:     env.itemID,
		Tipo:       entity.MovimentacaoAjuste,
		Quantidade: decimal.NewFromInt(2),
		Motivo:     "contagem física",
	})
	require.NoError(t, err)

	assert.True(t, out.QuantidadeAnterior.Equal(decimal.NewFromInt(10)))
	assert.True(t, out.QuantidadeNova.Equal(decimal.NewFromInt(2)),
		"ajuste grava o valor absoluto informado")
	assert.True(t, env.quantidadeAtual(t).Equal(decimal.NewFromInt(2)))
}

func TestRegistrar_TipoInvalido(t *testing.T) {
	env := setup(t, 10)

	_, err := env.uc.Registrar(context.Background(), dto.MovimentacaoRequest{
		ItemID:     env.itemID,
		Tipo:       "transferencia",
		Quantidade: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrar_QuantidadeNaoPositiva(t *testing.T) {
	env := setup(t, 10)

	_, err := env.uc.Registrar(context.Background(), dto.MovimentacaoRequest{
		ItemID:     env.itemID,
		Tipo:       entity.MovimentacaoEntrada,
		Quantidade: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada e saída exigem quantidade > 0")
}

func TestRegistrar_ItemInexistente(t *testing.T) {
	env := setup(t, 10)

	_, err := env.uc.Registrar(context.Background(), dto.MovimentacaoRequest{
		ItemID:     uuid.New().String(),
		Tipo:       entity.MovimentacaoEntrada,
		Quantidade: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListar_HistoricoDoItem(t *testing.T) {
	env := setup(t, 10)
	ctx := context.Background()

	for _, q := range []int64{5, 3} {
		_, err := env.uc.Registrar(ctx, dto.MovimentacaoRequest{
			ItemID:     env.itemID,
			Tipo:       entity.MovimentacaoEntrada,
			Quantidade: decimal.NewFromInt(q),
		})
		require.NoError(t, err)
	}

	movs, err := env.uc.Listar(ctx, env.itemID)
	require.NoError(t, err)
	assert.Len(t, movs, 2)
}
