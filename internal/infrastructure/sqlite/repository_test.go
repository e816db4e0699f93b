package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanchefacil/lanchefacil-api/internal/domain"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
	"github.com/lanchefacil/lanchefacil-api/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste: banco real em arquivo temporário, descartado no Cleanup.
// ──────────────────────────────────────────────────────────────────────────────

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "lanchefacil.db"))
	require.NoError(t, err, "Open deve criar o arquivo e as tabelas")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func novoGrupo(nome string) *entity.Grupo {
	now := time.Now()
	return &entity.Grupo{
		ID:        uuid.New().String(),
		Nome:      nome,
		Cor:       entity.CorPadrao,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func novoItem(grupoID, nome string, qtd, minimo float64) *entity.Item {
	now := time.Now()
	return &entity.Item{
		ID:            uuid.New().String(),
		Nome:          nome,
		GrupoID:       grupoID,
		Quantidade:    decimal.NewFromFloat(qtd),
		Unidade:       "un",
		ValorUnitario: decimal.NewFromFloat(2.5),
		EstoqueMinimo: decimal.NewFromFloat(minimo),
		EstoqueIdeal:  decimal.NewFromFloat(minimo * 2),
		Ativo:         true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Grupos
// ──────────────────────────────────────────────────────────────────────────────

func TestGrupoRepository_CicloCompleto(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewGrupoRepository(db)
	ctx := context.Background()

	g := novoGrupo("Bebidas")
	g.Descricao = "Refrigerantes e sucos"
	require.NoError(t, repo.Create(ctx, g))

	lido, err := repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, lido, "grupo recém-criado deve ser encontrado")
	assert.Equal(t, "Bebidas", lido.Nome)
	assert.Equal(t, entity.CorPadrao, lido.Cor)
	assert.True(t, lido.Ativo)

	porNome, err := repo.GetByNome(ctx, "Bebidas")
	require.NoError(t, err)
	require.NotNil(t, porNome)
	assert.Equal(t, g.ID, porNome.ID)

	lido.Descricao = "Somente refrigerantes"
	lido.UpdatedAt = time.Now()
	require.NoError(t, repo.Update(ctx, lido))

	depois, err := repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Somente refrigerantes", depois.Descricao)

	require.NoError(t, repo.Delete(ctx, g.ID))
	sumido, err := repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Nil(t, sumido, "grupo excluído deve devolver (nil, nil)")
}

func TestGrupoRepository_NaoEncontradoDevolveNilNil(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewGrupoRepository(db)

	g, err := repo.GetByID(context.Background(), uuid.New().String())
	require.NoError(t, err, "não encontrado não é erro")
	assert.Nil(t, g)
}

func TestGrupoRepository_NomeDuplicado(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewGrupoRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, novoGrupo("Carnes")))
	err := repo.Create(ctx, novoGrupo("Carnes"))
	assert.ErrorIs(t, err, domain.ErrDuplicate, "nome de grupo é único")
}

func TestGrupoRepository_DeleteComItensVinculados(t *testing.T) {
	db := openTestDB(t)
	grupoRepo := sqlite.NewGrupoRepository(db)
	itemRepo := sqlite.NewItemRepository(db)
	ctx := context.Background()

	g := novoGrupo("Bebidas")
	require.NoError(t, grupoRepo.Create(ctx, g))
	require.NoError(t, itemRepo.Create(ctx, novoItem(g.ID, "Refrigerante", 10, 0)))

	n, err := grupoRepo.CountItens(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	err = grupoRepo.Delete(ctx, g.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"grupo com itens não pode ser excluído (sem cascata, sem órfãos)")
}

func TestGrupoRepository_UpdateInexistente(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewGrupoRepository(db)

	g := novoGrupo("Fantasma")
	err := repo.Update(context.Background(), g)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Itens
// ──────────────────────────────────────────────────────────────────────────────

func TestItemRepository_CreateComGrupoInexistente(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewItemRepository(db)

	err := repo.Create(context.Background(), novoItem(uuid.New().String(), "Órfão", 1, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "grupo_id precisa existir")
}

func TestItemRepository_ListEstoqueBaixo(t *testing.T) {
	db := openTestDB(t)
	grupoRepo := sqlite.NewGrupoRepository(db)
	itemRepo := sqlite.NewItemRepository(db)
	ctx := context.Background()

	g := novoGrupo("Bebidas")
	require.NoError(t, grupoRepo.Create(ctx, g))

	// quantidade 3 <= mínimo 5: em alerta
	require.NoError(t, itemRepo.Create(ctx, novoItem(g.ID, "Refrigerante", 3, 5)))
	// quantidade 10 > mínimo 5: fora do alerta
	require.NoError(t, itemRepo.Create(ctx, novoItem(g.ID, "Suco", 10, 5)))
	// mínimo 0: sem alerta configurado
	require.NoError(t, itemRepo.Create(ctx, novoItem(g.ID, "Água", 0, 0)))

	baixos, err := itemRepo.ListEstoqueBaixo(ctx)
	require.NoError(t, err)
	require.Len(t, baixos, 1, "só o item abaixo do mínimo deve aparecer")
	assert.Equal(t, "Refrigerante", baixos[0].Nome)
}

func TestItemRepository_DeleteRemoveHistorico(t *testing.T) {
	db := openTestDB(t)
	grupoRepo := sqlite.NewGrupoRepository(db)
	itemRepo := sqlite.NewItemRepository(db)
	movRepo := sqlite.NewMovimentacaoRepository(db)
	ctx := context.Background()

	g := novoGrupo("Bebidas")
	require.NoError(t, grupoRepo.Create(ctx, g))
	it := novoItem(g.ID, "Refrigerante", 10, 0)
	require.NoError(t, itemRepo.Create(ctx, it))

	mov := &entity.Movimentacao{
		ID:                 uuid.New().String(),
		ItemID:             it.ID,
		Tipo:               entity.MovimentacaoEntrada,
		Quantidade:         decimal.NewFromInt(10),
		QuantidadeAnterior: decimal.Zero,
		QuantidadeNova:     decimal.NewFromInt(10),
		CreatedAt:          time.Now(),
	}
	require.NoError(t, movRepo.Create(ctx, mov))

	require.NoError(t, itemRepo.Delete(ctx, it.ID))

	movs, err := movRepo.List(ctx, it.ID)
	require.NoError(t, err)
	assert.Empty(t, movs, "as movimentações do item excluído vão junto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimentações
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimentacaoRepository_ListMaisRecentesPrimeiro(t *testing.T) {
	db := openTestDB(t)
	grupoRepo := sqlite.NewGrupoRepository(db)
	itemRepo := sqlite.NewItemRepository(db)
	movRepo := sqlite.NewMovimentacaoRepository(db)
	ctx := context.Background()

	g := novoGrupo("Bebidas")
	require.NoError(t, grupoRepo.Create(ctx, g))
	it := novoItem(g.ID, "Refrigerante", 10, 0)
	require.NoError(t, itemRepo.Create(ctx, it))

	base := time.Now().Add(-time.Hour)
	for i, tipo := range []string{entity.MovimentacaoEntrada, entity.MovimentacaoSaida} {
		mov := &entity.Movimentacao{
			ID:                 uuid.New().String(),
			ItemID:             it.ID,
			Tipo:               tipo,
			Quantidade:         decimal.NewFromInt(1),
			QuantidadeAnterior: decimal.NewFromInt(int64(10 + i)),
			QuantidadeNova:     decimal.NewFromInt(int64(11 - i)),
			CreatedAt:          base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, movRepo.Create(ctx, mov))
	}

	movs, err := movRepo.List(ctx, it.ID)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.Equal(t, entity.MovimentacaoSaida, movs[0].Tipo, "a mais recente vem primeiro")

	todas, err := movRepo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, todas, 2, "itemID vazio lista tudo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mesas, config e agregados
// ──────────────────────────────────────────────────────────────────────────────

func TestMesaRepository_NumeroUnico(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewMesaRepository(db)
	ctx := context.Background()
	now := time.Now()

	m := &entity.Mesa{ID: uuid.New().String(), Numero: 7, Capacidade: 4,
		Status: entity.MesaLivre, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, m))

	outra := &entity.Mesa{ID: uuid.New().String(), Numero: 7, Capacidade: 2,
		Status: entity.MesaLivre, CreatedAt: now, UpdatedAt: now}
	assert.ErrorIs(t, repo.Create(ctx, outra), domain.ErrDuplicate)

	porNumero, err := repo.GetByNumero(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, porNumero)
	assert.Equal(t, m.ID, porNumero.ID)
}

func TestConfigRepository_ChaveUnica(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewConfigRepository(db)
	ctx := context.Background()

	c := &entity.Config{ID: uuid.New().String(), Chave: "nome_estabelecimento",
		Valor: "Lanche Fácil", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, c))

	dup := &entity.Config{ID: uuid.New().String(), Chave: "nome_estabelecimento",
		Valor: "Outro", CreatedAt: time.Now()}
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrDuplicate)

	lido, err := repo.GetByChave(ctx, "nome_estabelecimento")
	require.NoError(t, err)
	require.NotNil(t, lido)
	assert.Equal(t, "Lanche Fácil", lido.Valor)
}

func TestStatsRepository_Contadores(t *testing.T) {
	db := openTestDB(t)
	grupoRepo := sqlite.NewGrupoRepository(db)
	itemRepo := sqlite.NewItemRepository(db)
	statsRepo := sqlite.NewStatsRepository(db)
	ctx := context.Background()

	g := novoGrupo("Bebidas")
	require.NoError(t, grupoRepo.Create(ctx, g))

	// 4 unidades × R$ 2,50 = R$ 10,00; mínimo 5 deixa o item em alerta
	require.NoError(t, itemRepo.Create(ctx, novoItem(g.ID, "Refrigerante", 4, 5)))

	nItens, err := statsRepo.CountItens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, nItens)

	nGrupos, err := statsRepo.CountGrupos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, nGrupos)

	nBaixo, err := statsRepo.CountEstoqueBaixo(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, nBaixo)

	valor, err := statsRepo.ValorTotalEstoque(ctx)
	require.NoError(t, err)
	assert.True(t, valor.Equal(decimal.NewFromFloat(10)),
		"valor total deve ser 4 × 2.50 = 10, veio %s", valor)
}
