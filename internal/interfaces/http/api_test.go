package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanchefacil/lanchefacil-api/internal/application/analytics"
	"github.com/lanchefacil/lanchefacil-api/internal/application/estoque"
	"github.com/lanchefacil/lanchefacil-api/internal/application/pedidos"
	"github.com/lanchefacil/lanchefacil-api/internal/application/relatorio"
	"github.com/lanchefacil/lanchefacil-api/internal/application/usecase"
	"github.com/lanchefacil/lanchefacil-api/internal/infrastructure/sqlite"
	apphttp "github.com/lanchefacil/lanchefacil-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: a aplicação inteira sobre um banco de arquivo temporário, com o
// mesmo wiring do main.
// ──────────────────────────────────────────────────────────────────────────────

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	grupoRepo := sqlite.NewGrupoRepository(db)
	itemRepo := sqlite.NewItemRepository(db)
	movRepo := sqlite.NewMovimentacaoRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	app := fiber.New()
	app.Use(recover.New())
	apphttp.Router(app, apphttp.RouterDeps{
		GrupoUC:      usecase.NewGrupoUseCase(grupoRepo),
		ItemUC:       usecase.NewItemUseCase(itemRepo, grupoRepo, txRunner),
		EstoqueUC:    estoque.NewUseCase(txRunner, movRepo),
		FornecedorUC: usecase.NewFornecedorUseCase(sqlite.NewFornecedorRepository(db)),
		ClienteUC:    usecase.NewClienteUseCase(sqlite.NewClienteRepository(db)),
		MesaUC:       usecase.NewMesaUseCase(sqlite.NewMesaRepository(db)),
		CardapioUC:   usecase.NewCardapioUseCase(sqlite.NewCardapioRepository(db)),
		PedidoUC:     pedidos.NewUseCase(txRunner, sqlite.NewPedidoRepository(db)),
		ConfigUC:     usecase.NewConfigUseCase(sqlite.NewConfigRepository(db)),
		DashboardUC:  analytics.NewDashboardUseCase(sqlite.NewStatsRepository(db)),
		RelatorioUC:  relatorio.NewEstoqueUseCase(itemRepo, grupoRepo),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, path string) (*http.Response, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	return resp, list
}

func criarGrupo(t *testing.T, app *fiber.App, nome string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/grupos", map[string]any{"nome": nome})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["id"].(string)
}

func criarItem(t *testing.T, app *fiber.App, grupoID, nome string, qtd float64) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/itens", map[string]any{
		"nome":          nome,
		"grupoId":       grupoID,
		"quantidade":    qtd,
		"unidade":       "un",
		"valorUnitario": "4.50",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["id"].(string)
}

// ──────────────────────────────────────────────────────────────────────────────
// Grupos e itens
// ──────────────────────────────────────────────────────────────────────────────

func TestGrupos_CriarListarExcluir(t *testing.T) {
	app := newTestApp(t)

	id := criarGrupo(t, app, "Bebidas")

	resp, list := doJSONList(t, app, "/api/grupos")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	assert.Equal(t, "Bebidas", list[0]["nome"])
	assert.Equal(t, "#3B82F6", list[0]["cor"], "grupo sem cor recebe a cor padrão")

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/grupos/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/api/grupos/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestGrupos_NomeDuplicado(t *testing.T) {
	app := newTestApp(t)
	criarGrupo(t, app, "Bebidas")

	resp, body := doJSON(t, app, http.MethodPost, "/api/grupos", map[string]any{"nome": "Bebidas"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", body["code"])
}

func TestGrupos_SemNomeEh400(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/grupos", map[string]any{"descricao": "sem nome"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestGrupos_ExcluirComItensEh409(t *testing.T) {
	app := newTestApp(t)
	grupoID := criarGrupo(t, app, "Bebidas")
	criarItem(t, app, grupoID, "Refrigerante", 10)

	resp, body := doJSON(t, app, http.MethodDelete, "/api/grupos/"+grupoID, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body["code"],
		"grupo com itens vinculados não pode ser excluído")
}

func TestItens_QuantidadeAceitaNumeroEString(t *testing.T) {
	app := newTestApp(t)
	grupoID := criarGrupo(t, app, "Bebidas")

	// número JSON
	resp, body := doJSON(t, app, http.MethodPost, "/api/itens", map[string]any{
		"nome": "Suco", "grupoId": grupoID, "quantidade": 7.5, "unidade": "l",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "7.5", body["quantidade"])

	// string JSON
	resp, body = doJSON(t, app, http.MethodPost, "/api/itens", map[string]any{
		"nome": "Água", "grupoId": grupoID, "quantidade": "12", "unidade": "un",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "12", body["quantidade"])
}

func TestItens_GrupoInexistenteEh400(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/itens", map[string]any{
		"nome": "Órfão", "grupoId": "nao-existe", "unidade": "un",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estoque
// ──────────────────────────────────────────────────────────────────────────────

func TestEstoque_FluxoDeMovimentacoes(t *testing.T) {
	app := newTestApp(t)
	grupoID := criarGrupo(t, app, "Bebidas")
	itemID := criarItem(t, app, grupoID, "Refrigerante", 10)

	resp, body := doJSON(t, app, http.MethodPost, "/api/estoque", map[string]any{
		"itemId": itemID, "tipo": "saida", "quantidade": 4, "motivo": "venda",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "10", body["quantidadeAnterior"])
	assert.Equal(t, "6", body["quantidadeNova"])

	// saída maior que o saldo
	resp, body = doJSON(t, app, http.MethodPost, "/api/estoque", map[string]any{
		"itemId": itemID, "tipo": "saida", "quantidade": 100,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "ESTOQUE_INSUFICIENTE", body["code"])

	// histórico filtrado por item
	resp, list := doJSONList(t, app, "/api/estoque?itemId="+itemID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 1, "a movimentação rejeitada não entra no histórico")
}

func TestEstoque_TipoInvalidoEh400(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/estoque", map[string]any{
		"itemId": "x", "tipo": "emprestimo", "quantidade": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestEstoque_BaixoListaSoItensEmAlerta(t *testing.T) {
	app := newTestApp(t)
	grupoID := criarGrupo(t, app, "Bebidas")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/itens", map[string]any{
		"nome": "Refrigerante", "grupoId": grupoID, "quantidade": 2,
		"unidade": "un", "estoqueMinimo": 5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	criarItem(t, app, grupoID, "Suco", 50)

	resp, list := doJSONList(t, app, "/api/estoque/baixo")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	assert.Equal(t, "Refrigerante", list[0]["nome"])
	assert.Equal(t, true, list[0]["estoqueBaixo"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Mesas e pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestMesas_CriarEPatchParcial(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/mesas", map[string]any{"numero": 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	mesaID := body["id"].(string)
	assert.Equal(t, float64(4), body["capacidade"], "capacidade omitida recebe o padrão 4")
	assert.Equal(t, "livre", body["status"])

	resp, body = doJSON(t, app, http.MethodPatch, "/api/mesas/"+mesaID, map[string]any{
		"numero": 7, "capacidade": 4,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(7), body["numero"])
	assert.Equal(t, "livre", body["status"], "campos ausentes no PATCH ficam como estavam")
}

func TestMesas_NumeroDuplicadoEh409(t *testing.T) {
	app := newTestApp(t)
	doJSON(t, app, http.MethodPost, "/api/mesas", map[string]any{"numero": 3})

	resp, _ := doJSON(t, app, http.MethodPost, "/api/mesas", map[string]any{"numero": 3})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPedidos_FluxoCompleto(t *testing.T) {
	app := newTestApp(t)

	_, mesa := doJSON(t, app, http.MethodPost, "/api/mesas", map[string]any{"numero": 1})
	mesaID := mesa["id"].(string)

	resp, prato := doJSON(t, app, http.MethodPost, "/api/cardapio", map[string]any{
		"nome": "X-Salada", "preco": "18.50",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, pedido := doJSON(t, app, http.MethodPost, "/api/pedidos", map[string]any{"mesaId": mesaID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	pedidoID := pedido["id"].(string)

	_, mesaDepois := doJSON(t, app, http.MethodGet, "/api/mesas/"+mesaID, nil)
	assert.Equal(t, "ocupada", mesaDepois["status"])

	resp, linha := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/pedidos/%s/itens", pedidoID),
		map[string]any{"cardapioId": prato["id"], "quantidade": 2})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "37", linha["subtotal"])

	resp, completo := doJSON(t, app, http.MethodGet, "/api/pedidos/"+pedidoID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "37", completo["total"])

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/pedidos/"+pedidoID,
		map[string]any{"status": "entregue"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, mesaFinal := doJSON(t, app, http.MethodGet, "/api/mesas/"+mesaID, nil)
	assert.Equal(t, "livre", mesaFinal["status"], "entregar o pedido libera a mesa")
}

func TestPedidos_StatusInvalidoNoFiltro(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/pedidos?status=finalizado", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stats e relatórios
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_ContadoresDoEstoque(t *testing.T) {
	app := newTestApp(t)
	grupoID := criarGrupo(t, app, "Bebidas")
	criarItem(t, app, grupoID, "Refrigerante", 10)

	resp, body := doJSON(t, app, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["totalItens"])
	assert.Equal(t, float64(1), body["totalGrupos"])
	assert.Equal(t, "45", body["valorTotalEstoque"], "10 × 4.50")

	resp, dash := doJSON(t, app, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), dash["totalItens"])
	assert.Contains(t, dash, "pedidosAbertos")
	assert.Contains(t, dash, "faturamentoHoje")
}

func TestRelatorio_EstoqueXLSX(t *testing.T) {
	app := newTestApp(t)
	grupoID := criarGrupo(t, app, "Bebidas")
	criarItem(t, app, grupoID, "Refrigerante", 10)

	req := httptest.NewRequest(http.MethodGet, "/api/relatorios/estoque", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, raw, "a planilha não pode vir vazia")
}

func TestCorpoInvalidoEh400(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/grupos", bytes.NewReader([]byte("{nope")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
