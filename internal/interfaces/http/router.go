package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lanchefacil/lanchefacil-api/internal/application/analytics"
	"github.com/lanchefacil/lanchefacil-api/internal/application/estoque"
	"github.com/lanchefacil/lanchefacil-api/internal/application/pedidos"
	"github.com/lanchefacil/lanchefacil-api/internal/application/relatorio"
	"github.com/lanchefacil/lanchefacil-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	GrupoUC      *usecase.GrupoUseCase
	ItemUC       *usecase.ItemUseCase
	EstoqueUC    *estoque.UseCase
	FornecedorUC *usecase.FornecedorUseCase
	ClienteUC    *usecase.ClienteUseCase
	MesaUC       *usecase.MesaUseCase
	CardapioUC   *usecase.CardapioUseCase
	PedidoUC     *pedidos.UseCase
	ConfigUC     *usecase.ConfigUseCase
	DashboardUC  *analytics.DashboardUseCase
	RelatorioUC  *relatorio.EstoqueUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	grupos := api.Group("/grupos")
	grupoHandler := NewGrupoHandler(deps.GrupoUC)
	grupos.Get("/", grupoHandler.List)
	grupos.Post("/", grupoHandler.Create)
	grupos.Get("/:id", grupoHandler.GetByID)
	grupos.Put("/:id", grupoHandler.Update)
	grupos.Delete("/:id", grupoHandler.Delete)

	itens := api.Group("/itens")
	itemHandler := NewItemHandler(deps.ItemUC)
	itens.Get("/", itemHandler.List)
	itens.Post("/", itemHandler.Create)
	itens.Get("/:id", itemHandler.GetByID)
	itens.Put("/:id", itemHandler.Update)
	itens.Delete("/:id", itemHandler.Delete)

	// /api/estoque/baixo precisa vir antes do registro das rotas que
	// capturariam "baixo" como parâmetro.
	estoqueGroup := api.Group("/estoque")
	estoqueHandler := NewEstoqueHandler(deps.EstoqueUC)
	estoqueGroup.Get("/baixo", itemHandler.ListEstoqueBaixo)
	estoqueGroup.Get("/", estoqueHandler.Listar)
	estoqueGroup.Post("/", estoqueHandler.Registrar)

	fornecedores := api.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Post("/", fornecedorHandler.Create)
	fornecedores.Get("/:id", fornecedorHandler.GetByID)
	fornecedores.Put("/:id", fornecedorHandler.Update)
	fornecedores.Delete("/:id", fornecedorHandler.Delete)

	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	mesas := api.Group("/mesas")
	mesaHandler := NewMesaHandler(deps.MesaUC)
	mesas.Get("/", mesaHandler.List)
	mesas.Post("/", mesaHandler.Create)
	mesas.Get("/:id", mesaHandler.GetByID)
	mesas.Patch("/:id", mesaHandler.Patch)
	mesas.Delete("/:id", mesaHandler.Delete)

	cardapio := api.Group("/cardapio")
	cardapioHandler := NewCardapioHandler(deps.CardapioUC)
	cardapio.Get("/", cardapioHandler.List)
	cardapio.Post("/", cardapioHandler.Create)
	cardapio.Get("/:id", cardapioHandler.GetByID)
	cardapio.Put("/:id", cardapioHandler.Update)
	cardapio.Delete("/:id", cardapioHandler.Delete)

	// /api/pedidos/itens/:id antes de /api/pedidos/:id para "itens" não
	// casar como ID de pedido.
	pedidosGroup := api.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidosGroup.Patch("/itens/:id", pedidoHandler.UpdateItem)
	pedidosGroup.Delete("/itens/:id", pedidoHandler.RemoveItem)
	pedidosGroup.Get("/", pedidoHandler.List)
	pedidosGroup.Post("/", pedidoHandler.Create)
	pedidosGroup.Get("/:id", pedidoHandler.GetByID)
	pedidosGroup.Patch("/:id", pedidoHandler.Patch)
	pedidosGroup.Delete("/:id", pedidoHandler.Delete)
	pedidosGroup.Get("/:id/itens", pedidoHandler.ListItens)
	pedidosGroup.Post("/:id/itens", pedidoHandler.AddItem)

	config := api.Group("/config")
	configHandler := NewConfigHandler(deps.ConfigUC)
	config.Get("/", configHandler.List)
	config.Post("/", configHandler.Create)
	config.Get("/:chave", configHandler.GetByChave)
	config.Put("/:chave", configHandler.Update)
	config.Delete("/:chave", configHandler.Delete)

	statsHandler := NewStatsHandler(deps.DashboardUC)
	api.Get("/stats", statsHandler.GetStats)
	api.Get("/dashboard/stats", statsHandler.GetDashboard)

	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	api.Get("/relatorios/estoque", relatorioHandler.EstoqueXLSX)
}
