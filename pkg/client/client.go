// Package client fornece um cliente HTTP tipado para a API do Lanche
// Fácil, com cache de leituras por chave e invalidação por mutação.
//
// Cada GET é memorizado sob o caminho da requisição. Cada mutação bem
// sucedida invalida o conjunto fixo de chaves que ela pode ter tornado
// obsoletas; mutações que falham não tocam o cache. Campos obrigatórios
// vazios são rejeitados localmente, antes de qualquer requisição.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Conjuntos de invalidação por recurso. A invalidação por prefixo do
// Cache cobre as chaves por ID (ex.: "/api/itens/<id>").
var (
	gruposKeys   = []string{"/api/grupos", "/api/stats", "/api/dashboard/stats"}
	itensKeys    = []string{"/api/itens", "/api/estoque", "/api/estoque/baixo", "/api/stats", "/api/dashboard/stats"}
	estoqueKeys  = []string{"/api/estoque", "/api/itens", "/api/estoque/baixo", "/api/stats", "/api/dashboard/stats"}
	fornecKeys   = []string{"/api/fornecedores"}
	clientesKeys = []string{"/api/clientes"}
	mesasKeys    = []string{"/api/mesas", "/api/dashboard/stats"}
	cardapioKeys = []string{"/api/cardapio"}
	pedidosKeys  = []string{"/api/pedidos", "/api/mesas", "/api/dashboard/stats"}
	configKeys   = []string{"/api/config"}
)

// APIError erro devolvido pela API com o corpo padrão {code, message}.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Client cliente da API.
type Client struct {
	baseURL string
	httpc   *http.Client
	cache   *Cache
}

// Option configura o Client.
type Option func(*Client)

// WithHTTPClient troca o *http.Client usado nas requisições.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// New cria um cliente apontando para baseURL (ex.: "http://localhost:3001").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		cache:   NewCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cache devolve o cache interno, útil para inspeção em testes.
func (c *Client) Cache() *Cache {
	return c.cache
}

// fetch faz GET com cache: devolve a cópia memorizada se fresca, senão
// vai à rede e regrava.
func (c *Client) fetch(ctx context.Context, path string, dest interface{}) error {
	if raw, ok := c.cache.Get(path); ok {
		return json.Unmarshal(raw, dest)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return apiError(resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return err
	}
	c.cache.Set(path, raw)
	return nil
}

// mutate envia uma mutação e, somente em caso de sucesso, invalida as
// chaves informadas.
func (c *Client) mutate(ctx context.Context, method, path string, in, dest interface{}, invalidate []string) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return apiError(resp.StatusCode, raw)
	}

	if dest != nil {
		if err := json.Unmarshal(raw, dest); err != nil {
			return err
		}
	}
	c.cache.Invalidate(invalidate...)
	return nil
}

func apiError(status int, raw []byte) error {
	apiErr := &APIError{Status: status}
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	}
	return apiErr
}

// Grupos

func (c *Client) ListarGrupos(ctx context.Context) ([]Grupo, error) {
	var out []Grupo
	err := c.fetch(ctx, "/api/grupos", &out)
	return out, err
}

func (c *Client) ObterGrupo(ctx context.Context, id string) (*Grupo, error) {
	var out Grupo
	if err := c.fetch(ctx, "/api/grupos/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CriarGrupo(ctx context.Context, in GrupoInput) (*Grupo, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	var out Grupo
	if err := c.mutate(ctx, http.MethodPost, "/api/grupos", in, &out, gruposKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AtualizarGrupo(ctx context.Context, id string, in GrupoInput) (*Grupo, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	var out Grupo
	if err := c.mutate(ctx, http.MethodPut, "/api/grupos/"+id, in, &out, gruposKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ExcluirGrupo(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/grupos/"+id, nil, nil, gruposKeys)
}

// Itens

func (c *Client) ListarItens(ctx context.Context) ([]Item, error) {
	var out []Item
	err := c.fetch(ctx, "/api/itens", &out)
	return out, err
}

func (c *Client) ObterItem(ctx context.Context, id string) (*Item, error) {
	var out Item
	if err := c.fetch(ctx, "/api/itens/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListarEstoqueBaixo(ctx context.Context) ([]Item, error) {
	var out []Item
	err := c.fetch(ctx, "/api/estoque/baixo", &out)
	return out, err
}

func (c *Client) CriarItem(ctx context.Context, in ItemInput) (*Item, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	var out Item
	if err := c.mutate(ctx, http.MethodPost, "/api/itens", in, &out, itensKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AtualizarItem(ctx context.Context, id string, in ItemInput) (*Item, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	var out Item
	if err := c.mutate(ctx, http.MethodPut, "/api/itens/"+id, in, &out, itensKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ExcluirItem(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/itens/"+id, nil, nil, itensKeys)
}

// Estoque

func (c *Client) ListarMovimentacoes(ctx context.Context, itemID string) ([]Movimentacao, error) {
	path := "/api/estoque"
	if itemID != "" {
		path += "?itemId=" + url.QueryEscape(itemID)
	}
	var out []Movimentacao
	err := c.fetch(ctx, path, &out)
	return out, err
}

func (c *Client) RegistrarMovimentacao(ctx context.Context, in MovimentacaoInput) (*Movimentacao, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	var out Movimentacao
	if err := c.mutate(ctx, http.MethodPost, "/api/estoque", in, &out, estoqueKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fornecedores

func (c *Client) ListarFornecedores(ctx context.Context) ([]Fornecedor, error) {
	var out []Fornecedor
	err := c.fetch(ctx, "/api/fornecedores", &out)
	return out, err
}

func (c *Client) ObterFornecedor(ctx context.Context, id string) (*Fornecedor, error) {
	var out Fornecedor
	if err := c.fetch(ctx, "/api/fornecedores/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CriarFornecedor(ctx context.Context, in FornecedorInput) (*Fornecedor, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	var out Fornecedor
	if err := c.mutate(ctx, http.MethodPost, "/api/fornecedores", in, &out, fornecKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AtualizarFornecedor(ctx context.Context, id string, in FornecedorInput) (*Fornecedor, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	var out Fornecedor
	if err := c.mutate(ctx, http.MethodPut, "/api/fornecedores/"+id, in, &out, fornecKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ExcluirFornecedor(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/fornecedores/"+id, nil, nil, fornecKeys)
}

// Clientes

func (c *Client) ListarClientes(ctx context.Context) ([]Cliente, error) {
	var out []Cliente
	err := c.fetch(ctx, "/api/clientes", &out)
	return out, err
}

func (c *Client) ObterCliente(ctx context.Context, id string) (*Cliente, error) {
	var out Cliente
	if err := c.fetch(ctx, "/api/clientes/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CriarCliente(ctx context.Context, in ClienteInput) (*Cliente, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	var out Cliente
	if err := c.mutate(ctx, http.MethodPost, "/api/clientes", in, &out, clientesKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AtualizarCliente(ctx context.Context, id string, in ClienteInput) (*Cliente, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	var out Cliente
	if err := c.mutate(ctx, http.MethodPut, "/api/clientes/"+id, in, &out, clientesKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ExcluirCliente(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/clientes/"+id, nil, nil, clientesKeys)
}

// Mesas

func (c *Client) ListarMesas(ctx context.Context) ([]Mesa, error) {
	var out []Mesa
	err := c.fetch(ctx, "/api/mesas", &out)
	return out, err
}

func (c *Client) ObterMesa(ctx context.Context, id string) (*Mesa, error) {
	var out Mesa
	if err := c.fetch(ctx, "/api/mesas/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CriarMesa(ctx context.Context, in MesaInput) (*Mesa, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	var out Mesa
	if err := c.mutate(ctx, http.MethodPost, "/api/mesas", in, &out, mesasKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AlterarMesa(ctx context.Context, id string, in MesaPatch) (*Mesa, error) {
	var out Mesa
	if err := c.mutate(ctx, http.MethodPatch, "/api/mesas/"+id, in, &out, mesasKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ExcluirMesa(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/mesas/"+id, nil, nil, mesasKeys)
}

// Cardápio

func (c *Client) ListarCardapio(ctx context.Context) ([]Prato, error) {
	var out []Prato
	err := c.fetch(ctx, "/api/cardapio", &out)
	return out, err
}

func (c *Client) ObterPrato(ctx context.Context, id string) (*Prato, error) {
	var out Prato
	if err := c.fetch(ctx, "/api/cardapio/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CriarPrato(ctx context.Context, in PratoInput) (*Prato, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	var out Prato
	if err := c.mutate(ctx, http.MethodPost, "/api/cardapio", in, &out, cardapioKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AtualizarPrato(ctx context.Context, id string, in PratoInput) (*Prato, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	var out Prato
	if err := c.mutate(ctx, http.MethodPut, "/api/cardapio/"+id, in, &out, cardapioKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ExcluirPrato(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/cardapio/"+id, nil, nil, cardapioKeys)
}

// Pedidos

func (c *Client) ListarPedidos(ctx context.Context, status string) ([]Pedido, error) {
	path := "/api/pedidos"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out []Pedido
	err := c.fetch(ctx, path, &out)
	return out, err
}

func (c *Client) ObterPedido(ctx context.Context, id string) (*Pedido, error) {
	var out Pedido
	if err := c.fetch(ctx, "/api/pedidos/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AbrirPedido(ctx context.Context, in PedidoInput) (*Pedido, error) {
	var out Pedido
	if err := c.mutate(ctx, http.MethodPost, "/api/pedidos", in, &out, pedidosKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AlterarPedido(ctx context.Context, id string, in PedidoPatch) (*Pedido, error) {
	var out Pedido
	if err := c.mutate(ctx, http.MethodPatch, "/api/pedidos/"+id, in, &out, pedidosKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ExcluirPedido(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/pedidos/"+id, nil, nil, pedidosKeys)
}

func (c *Client) ListarItensDoPedido(ctx context.Context, pedidoID string) ([]PedidoItem, error) {
	var out []PedidoItem
	err := c.fetch(ctx, "/api/pedidos/"+pedidoID+"/itens", &out)
	return out, err
}

func (c *Client) IncluirItemNoPedido(ctx context.Context, pedidoID string, in PedidoItemInput) (*PedidoItem, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	var out PedidoItem
	if err := c.mutate(ctx, http.MethodPost, "/api/pedidos/"+pedidoID+"/itens", in, &out, pedidosKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AlterarItemDoPedido(ctx context.Context, itemID string, in PedidoItemPatch) (*PedidoItem, error) {
	var out PedidoItem
	if err := c.mutate(ctx, http.MethodPatch, "/api/pedidos/itens/"+itemID, in, &out, pedidosKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoverItemDoPedido(ctx context.Context, itemID string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/pedidos/itens/"+itemID, nil, nil, pedidosKeys)
}

// Config

func (c *Client) ListarConfig(ctx context.Context) ([]Config, error) {
	var out []Config
	err := c.fetch(ctx, "/api/config", &out)
	return out, err
}

func (c *Client) ObterConfig(ctx context.Context, chave string) (*Config, error) {
	var out Config
	if err := c.fetch(ctx, "/api/config/"+chave, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CriarConfig(ctx context.Context, in ConfigInput) (*Config, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	var out Config
	if err := c.mutate(ctx, http.MethodPost, "/api/config", in, &out, configKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AtualizarConfig(ctx context.Context, chave, valor string) (*Config, error) {
	var out Config
	in := ConfigInput{Chave: chave, Valor: valor}
	if err := in.validar(); err != nil {
		return nil, err
	}
	if err := c.mutate(ctx, http.MethodPut, "/api/config/"+chave, in, &out, configKeys); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ExcluirConfig(ctx context.Context, chave string) error {
	return c.mutate(ctx, http.MethodDelete, "/api/config/"+chave, nil, nil, configKeys)
}

// Stats

func (c *Client) ObterStats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := c.fetch(ctx, "/api/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ObterDashboard(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.fetch(ctx, "/api/dashboard/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
