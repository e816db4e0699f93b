package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanchefacil/lanchefacil-api/pkg/client"
)

// servidor fake que conta os GETs por caminho e aceita qualquer mutação.
type fakeAPI struct {
	srv      *httptest.Server
	gets     map[string]*int64
	failNext atomic.Bool
}

func newFakeAPI(t *testing.T) (*fakeAPI, *client.Client) {
	t.Helper()
	f := &fakeAPI{gets: map[string]*int64{}}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			key := r.URL.Path
			if _, ok := f.gets[key]; !ok {
				var n int64
				f.gets[key] = &n
			}
			atomic.AddInt64(f.gets[key], 1)
			w.Header().Set("Content-Type", "application/json")
			switch key {
			case "/api/grupos":
				_ = json.NewEncoder(w).Encode([]client.Grupo{{ID: "g1", Nome: "Bebidas"}})
			case "/api/stats":
				_ = json.NewEncoder(w).Encode(client.Stats{TotalGrupos: 1})
			case "/api/fornecedores":
				_ = json.NewEncoder(w).Encode([]client.Fornecedor{})
			default:
				_, _ = w.Write([]byte(`{}`))
			}
			return
		}
		// mutações
		if f.failNext.Swap(false) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"code": "DUPLICATE", "message": "nome já existe",
			})
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(client.Grupo{ID: "g2", Nome: "Carnes"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	f.srv = srv
	return f, client.New(srv.URL)
}

func (f *fakeAPI) getsPara(path string) int64 {
	if n, ok := f.gets[path]; ok {
		return atomic.LoadInt64(n)
	}
	return 0
}

func TestFetch_SegundaLeituraVemDoCache(t *testing.T) {
	api, c := newFakeAPI(t)
	ctx := context.Background()

	primeiro, err := c.ListarGrupos(ctx)
	require.NoError(t, err)
	require.Len(t, primeiro, 1)

	segundo, err := c.ListarGrupos(ctx)
	require.NoError(t, err)
	assert.Equal(t, primeiro, segundo)
	assert.EqualValues(t, 1, api.getsPara("/api/grupos"),
		"a segunda leitura não deve ir à rede")
}

func TestMutacao_InvalidaAsChavesDoRecurso(t *testing.T) {
	api, c := newFakeAPI(t)
	ctx := context.Background()

	_, err := c.ListarGrupos(ctx)
	require.NoError(t, err)
	_, err = c.ObterStats(ctx)
	require.NoError(t, err)

	_, err = c.CriarGrupo(ctx, client.GrupoInput{Nome: "Carnes"})
	require.NoError(t, err)

	_, err = c.ListarGrupos(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, api.getsPara("/api/grupos"),
		"criar grupo deve invalidar a lista de grupos")

	_, err = c.ObterStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, api.getsPara("/api/stats"),
		"criar grupo também invalida os contadores")
}

func TestMutacao_NaoInvalidaRecursoAlheio(t *testing.T) {
	api, c := newFakeAPI(t)
	ctx := context.Background()

	_, err := c.ListarFornecedores(ctx)
	require.NoError(t, err)

	_, err = c.CriarGrupo(ctx, client.GrupoInput{Nome: "Carnes"})
	require.NoError(t, err)

	_, err = c.ListarFornecedores(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, api.getsPara("/api/fornecedores"),
		"mutação de grupo não toca o cache de fornecedores")
}

func TestMutacaoComFalha_NaoTocaOCache(t *testing.T) {
	api, c := newFakeAPI(t)
	ctx := context.Background()

	_, err := c.ListarGrupos(ctx)
	require.NoError(t, err)

	api.failNext.Store(true)
	_, err = c.CriarGrupo(ctx, client.GrupoInput{Nome: "Bebidas"})
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "DUPLICATE", apiErr.Code)
	assert.Equal(t, "nome já existe", apiErr.Message)

	_, err = c.ListarGrupos(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, api.getsPara("/api/grupos"),
		"mutação rejeitada deixa o cache intacto")
}

func TestMutacao_CampoObrigatorioVazioNaoVaiARede(t *testing.T) {
	api, c := newFakeAPI(t)
	ctx := context.Background()

	_, err := c.ListarGrupos(ctx)
	require.NoError(t, err)

	_, err = c.CriarGrupo(ctx, client.GrupoInput{Nome: "   "})
	require.ErrorIs(t, err, client.ErrCampoObrigatorio)

	_, err = c.ListarGrupos(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, api.getsPara("/api/grupos"),
		"entrada inválida não emite requisição nem toca o cache")
}

func TestCache_InvalidatePorPrefixoApanhaChavesPorID(t *testing.T) {
	cache := client.NewCache()
	cache.Set("/api/itens", []byte(`[]`))
	cache.Set("/api/itens/abc", []byte(`{}`))
	cache.Set("/api/itensoutros", []byte(`{}`))

	cache.Invalidate("/api/itens")

	_, ok := cache.Get("/api/itens")
	assert.False(t, ok)
	_, ok = cache.Get("/api/itens/abc")
	assert.False(t, ok, "chaves por ID abaixo do recurso também ficam velhas")
	_, ok = cache.Get("/api/itensoutros")
	assert.True(t, ok, "prefixo só vale em fronteira de caminho")
}
