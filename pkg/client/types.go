package client

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Registros da API. São cópias dos corpos JSON do servidor; o pacote não
// importa os DTOs internos para manter a superfície exportada autocontida.

// ErrCampoObrigatorio é devolvido por um mutador quando um campo
// obrigatório veio vazio. Nesse caso nenhuma requisição é emitida e o
// cache permanece intacto.
var ErrCampoObrigatorio = errors.New("campo obrigatório vazio")

func campoObrigatorio(nome string) error {
	return fmt.Errorf("%w: %s", ErrCampoObrigatorio, nome)
}

// Grupo agrupa itens do estoque.
type Grupo struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Descricao string    `json:"descricao"`
	Cor       string    `json:"cor"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GrupoInput corpo de criação/substituição de grupo.
type GrupoInput struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
	Cor       string `json:"cor,omitempty"`
	Ativo     *bool  `json:"ativo,omitempty"`
}

func (in GrupoInput) validar() error {
	if strings.TrimSpace(in.Nome) == "" {
		return campoObrigatorio("nome")
	}
	return nil
}

// Item item do estoque.
type Item struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	GrupoID       string          `json:"grupoId"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	Unidade       string          `json:"unidade"`
	ValorUnitario decimal.Decimal `json:"valorUnitario"`
	EstoqueMinimo decimal.Decimal `json:"estoqueMinimo"`
	EstoqueIdeal  decimal.Decimal `json:"estoqueIdeal"`
	Localizacao   string          `json:"localizacao"`
	SKU           string          `json:"sku"`
	Observacoes   string          `json:"observacoes"`
	Ativo         bool            `json:"ativo"`
	EstoqueBaixo  bool            `json:"estoqueBaixo"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ItemInput corpo de criação/substituição de item.
type ItemInput struct {
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao,omitempty"`
	GrupoID       string          `json:"grupoId"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	Unidade       string          `json:"unidade"`
	ValorUnitario decimal.Decimal `json:"valorUnitario"`
	EstoqueMinimo decimal.Decimal `json:"estoqueMinimo"`
	EstoqueIdeal  decimal.Decimal `json:"estoqueIdeal"`
	Localizacao   string          `json:"localizacao,omitempty"`
	SKU           string          `json:"sku,omitempty"`
	Observacoes   string          `json:"observacoes,omitempty"`
	Ativo         *bool           `json:"ativo,omitempty"`
}

func (in ItemInput) validar() error {
	switch {
	case strings.TrimSpace(in.Nome) == "":
		return campoObrigatorio("nome")
	case in.GrupoID == "":
		return campoObrigatorio("grupoId")
	case strings.TrimSpace(in.Unidade) == "":
		return campoObrigatorio("unidade")
	}
	return nil
}

// Movimentacao histórico de entrada, saída ou ajuste de estoque.
type Movimentacao struct {
	ID                 string          `json:"id"`
	ItemID             string          `json:"itemId"`
	Tipo               string          `json:"tipo"`
	Quantidade         decimal.Decimal `json:"quantidade"`
	QuantidadeAnterior decimal.Decimal `json:"quantidadeAnterior"`
	QuantidadeNova     decimal.Decimal `json:"quantidadeNova"`
	Motivo             string          `json:"motivo"`
	Observacoes        string          `json:"observacoes"`
	Usuario            string          `json:"usuario"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// MovimentacaoInput corpo de registro de movimentação. As quantidades
// anterior e nova são derivadas pelo servidor.
type MovimentacaoInput struct {
	ItemID      string          `json:"itemId"`
	Tipo        string          `json:"tipo"`
	Quantidade  decimal.Decimal `json:"quantidade"`
	Motivo      string          `json:"motivo,omitempty"`
	Observacoes string          `json:"observacoes,omitempty"`
	Usuario     string          `json:"usuario,omitempty"`
}

func (in MovimentacaoInput) validar() error {
	switch {
	case in.ItemID == "":
		return campoObrigatorio("itemId")
	case in.Tipo == "":
		return campoObrigatorio("tipo")
	}
	return nil
}

// Fornecedor cadastro de fornecedor.
type Fornecedor struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email"`
	Telefone    string    `json:"telefone"`
	Endereco    string    `json:"endereco"`
	CNPJ        string    `json:"cnpj"`
	Observacoes string    `json:"observacoes"`
	Ativo       bool      `json:"ativo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FornecedorInput corpo de criação/substituição de fornecedor.
type FornecedorInput struct {
	Nome        string `json:"nome"`
	Email       string `json:"email,omitempty"`
	Telefone    string `json:"telefone,omitempty"`
	Endereco    string `json:"endereco,omitempty"`
	CNPJ        string `json:"cnpj,omitempty"`
	Observacoes string `json:"observacoes,omitempty"`
	Ativo       *bool  `json:"ativo,omitempty"`
}

func (in FornecedorInput) validar() error {
	if strings.TrimSpace(in.Nome) == "" {
		return campoObrigatorio("nome")
	}
	return nil
}

// Cliente cadastro de cliente.
type Cliente struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Telefone    string    `json:"telefone"`
	Email       string    `json:"email"`
	Endereco    string    `json:"endereco"`
	Observacoes string    `json:"observacoes"`
	Ativo       bool      `json:"ativo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ClienteInput corpo de criação/substituição de cliente.
type ClienteInput struct {
	Nome        string `json:"nome"`
	Telefone    string `json:"telefone,omitempty"`
	Email       string `json:"email,omitempty"`
	Endereco    string `json:"endereco,omitempty"`
	Observacoes string `json:"observacoes,omitempty"`
	Ativo       *bool  `json:"ativo,omitempty"`
}

func (in ClienteInput) validar() error {
	if strings.TrimSpace(in.Nome) == "" {
		return campoObrigatorio("nome")
	}
	return nil
}

// Mesa mesa do salão.
type Mesa struct {
	ID         string    `json:"id"`
	Numero     int       `json:"numero"`
	Capacidade int       `json:"capacidade"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// MesaInput corpo de criação de mesa.
type MesaInput struct {
	Numero     int    `json:"numero"`
	Capacidade int    `json:"capacidade,omitempty"`
	Status     string `json:"status,omitempty"`
}

func (in MesaInput) validar() error {
	if in.Numero <= 0 {
		return campoObrigatorio("numero")
	}
	return nil
}

// MesaPatch corpo parcial para alterar uma mesa.
type MesaPatch struct {
	Numero     *int    `json:"numero,omitempty"`
	Capacidade *int    `json:"capacidade,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// Prato item do cardápio.
type Prato struct {
	ID         string          `json:"id"`
	Nome       string          `json:"nome"`
	Descricao  string          `json:"descricao"`
	Categoria  string          `json:"categoria"`
	Preco      decimal.Decimal `json:"preco"`
	Disponivel bool            `json:"disponivel"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// PratoInput corpo de criação/substituição de prato.
type PratoInput struct {
	Nome       string          `json:"nome"`
	Descricao  string          `json:"descricao,omitempty"`
	Categoria  string          `json:"categoria,omitempty"`
	Preco      decimal.Decimal `json:"preco"`
	Disponivel *bool           `json:"disponivel,omitempty"`
}

func (in PratoInput) validar() error {
	if strings.TrimSpace(in.Nome) == "" {
		return campoObrigatorio("nome")
	}
	return nil
}

// Pedido pedido da casa.
type Pedido struct {
	ID          string          `json:"id"`
	MesaID      *string         `json:"mesaId,omitempty"`
	ClienteID   *string         `json:"clienteId,omitempty"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Observacoes string          `json:"observacoes"`
	Itens       []PedidoItem    `json:"itens,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PedidoInput corpo de abertura de pedido.
type PedidoInput struct {
	MesaID      *string `json:"mesaId,omitempty"`
	ClienteID   *string `json:"clienteId,omitempty"`
	Observacoes string  `json:"observacoes,omitempty"`
}

// PedidoPatch corpo parcial para alterar um pedido.
type PedidoPatch struct {
	Status      *string `json:"status,omitempty"`
	MesaID      *string `json:"mesaId,omitempty"`
	ClienteID   *string `json:"clienteId,omitempty"`
	Observacoes *string `json:"observacoes,omitempty"`
}

// PedidoItem linha de um pedido.
type PedidoItem struct {
	ID            string          `json:"id"`
	PedidoID      string          `json:"pedidoId"`
	CardapioID    string          `json:"cardapioId"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Observacao    string          `json:"observacao"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PedidoItemInput corpo de inclusão de item no pedido.
type PedidoItemInput struct {
	CardapioID string `json:"cardapioId"`
	Quantidade int    `json:"quantidade"`
	Observacao string `json:"observacao,omitempty"`
}

func (in PedidoItemInput) validar() error {
	switch {
	case in.CardapioID == "":
		return campoObrigatorio("cardapioId")
	case in.Quantidade <= 0:
		return campoObrigatorio("quantidade")
	}
	return nil
}

// PedidoItemPatch corpo parcial para alterar uma linha do pedido.
type PedidoItemPatch struct {
	Quantidade *int    `json:"quantidade,omitempty"`
	Observacao *string `json:"observacao,omitempty"`
}

// Config par chave/valor de configuração.
type Config struct {
	ID        string    `json:"id"`
	Chave     string    `json:"chave"`
	Valor     string    `json:"valor"`
	CreatedAt time.Time `json:"createdAt"`
}

// ConfigInput corpo de criação/atualização de configuração.
type ConfigInput struct {
	Chave string `json:"chave"`
	Valor string `json:"valor"`
}

func (in ConfigInput) validar() error {
	if strings.TrimSpace(in.Chave) == "" {
		return campoObrigatorio("chave")
	}
	return nil
}

// Stats contadores do estoque.
type Stats struct {
	TotalItens        int             `json:"totalItens"`
	TotalGrupos       int             `json:"totalGrupos"`
	ValorTotalEstoque decimal.Decimal `json:"valorTotalEstoque"`
	ItensEstoqueBaixo int             `json:"itensEstoqueBaixo"`
}

// DashboardStats contadores do estoque e da operação do dia.
type DashboardStats struct {
	Stats
	PedidosAbertos    int             `json:"pedidosAbertos"`
	MesasOcupadas     int             `json:"mesasOcupadas"`
	MovimentacoesHoje int             `json:"movimentacoesHoje"`
	FaturamentoHoje   decimal.Decimal `json:"faturamentoHoje"`
}

// DeleteResult confirmação de exclusão.
type DeleteResult struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}
