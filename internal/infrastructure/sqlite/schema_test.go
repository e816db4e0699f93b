package sqlite_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanchefacil/lanchefacil-api/internal/infrastructure/sqlite"
)

// O esquema declarativo alimenta DDL e SQL dos repositórios a partir da mesma
// lista de colunas; estes testes garantem que os dois lados não divergem.

func TestCreateDDL_GeraCreateTableIfNotExists(t *testing.T) {
	ddl := sqlite.Grupos.CreateDDL()

	assert.True(t, strings.HasPrefix(ddl, "CREATE TABLE IF NOT EXISTS grupos ("),
		"o DDL deve ser idempotente (IF NOT EXISTS)")
	assert.Contains(t, ddl, "id TEXT PRIMARY KEY")
	assert.Contains(t, ddl, "nome TEXT NOT NULL UNIQUE")
}

func TestCreateDDL_IncluiStatementsExtras(t *testing.T) {
	ddl := sqlite.Itens.CreateDDL()

	assert.Contains(t, ddl, "CREATE INDEX IF NOT EXISTS idx_itens_grupo",
		"os índices declarados em Extra devem sair junto do CREATE TABLE")
}

func TestInsertSQL_CobreTodasAsColunas(t *testing.T) {
	sql := sqlite.Mesas.InsertSQL()

	require.True(t, strings.HasPrefix(sql, "INSERT INTO mesas ("))
	for _, col := range []string{"id", "numero", "capacidade", "status", "created_at", "updated_at"} {
		assert.Contains(t, sql, col, "a coluna %s deve aparecer no INSERT", col)
		assert.Contains(t, sql, ":"+col, "a coluna %s deve ter placeholder nomeado", col)
	}
}

func TestUpdateSQL_NaoAlteraIDNemCreatedAt(t *testing.T) {
	sql := sqlite.Fornecedores.UpdateSQL()

	assert.NotContains(t, sql, "id = :id,", "id não pode entrar no SET")
	assert.NotContains(t, sql, "created_at = :created_at", "created_at é imutável")
	assert.Contains(t, sql, "updated_at = :updated_at")
	assert.True(t, strings.HasSuffix(sql, "WHERE id = :id"))
}

func TestSelectColumns_SegueAOrdemDoEsquema(t *testing.T) {
	cols := sqlite.Configs.SelectColumns()

	assert.Equal(t, "id, chave, valor, created_at", cols)
}

func TestSchema_TabelasReferenciadasVemPrimeiro(t *testing.T) {
	pos := make(map[string]int, len(sqlite.Schema))
	for i, tab := range sqlite.Schema {
		pos[tab.Name] = i
	}

	assert.Less(t, pos["grupos"], pos["itens"], "grupos precisa existir antes de itens")
	assert.Less(t, pos["itens"], pos["movimentacoes"], "itens precisa existir antes de movimentacoes")
	assert.Less(t, pos["pedidos"], pos["pedido_itens"], "pedidos precisa existir antes de pedido_itens")
	assert.Less(t, pos["mesas"], pos["pedidos"], "mesas precisa existir antes de pedidos")
	assert.Less(t, pos["cardapio"], pos["pedido_itens"], "cardapio precisa existir antes de pedido_itens")
}
