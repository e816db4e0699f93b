package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/lanchefacil/lanchefacil-api/internal/application/analytics"
	"github.com/lanchefacil/lanchefacil-api/internal/application/estoque"
	"github.com/lanchefacil/lanchefacil-api/internal/application/pedidos"
	"github.com/lanchefacil/lanchefacil-api/internal/application/relatorio"
	"github.com/lanchefacil/lanchefacil-api/internal/application/usecase"
	"github.com/lanchefacil/lanchefacil-api/internal/infrastructure/sqlite"
	httpRouter "github.com/lanchefacil/lanchefacil-api/internal/interfaces/http"
	"github.com/lanchefacil/lanchefacil-api/pkg/config"
	"github.com/lanchefacil/lanchefacil-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, cfg.DB.Path)
	if err != nil {
		// Sem banco não há API: aborta antes de abrir o listener.
		log.Fatal().Err(err).Str("path", cfg.DB.Path).Msg("abrir banco SQLite")
	}
	defer db.Close()

	grupoRepo := sqlite.NewGrupoRepository(db)
	itemRepo := sqlite.NewItemRepository(db)
	movRepo := sqlite.NewMovimentacaoRepository(db)
	fornecedorRepo := sqlite.NewFornecedorRepository(db)
	clienteRepo := sqlite.NewClienteRepository(db)
	mesaRepo := sqlite.NewMesaRepository(db)
	cardapioRepo := sqlite.NewCardapioRepository(db)
	pedidoRepo := sqlite.NewPedidoRepository(db)
	configRepo := sqlite.NewConfigRepository(db)
	statsRepo := sqlite.NewStatsRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	grupoUC := usecase.NewGrupoUseCase(grupoRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, grupoRepo, txRunner)
	estoqueUC := estoque.NewUseCase(txRunner, movRepo)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	mesaUC := usecase.NewMesaUseCase(mesaRepo)
	cardapioUC := usecase.NewCardapioUseCase(cardapioRepo)
	pedidoUC := pedidos.NewUseCase(txRunner, pedidoRepo)
	configUC := usecase.NewConfigUseCase(configRepo)
	dashboardUC := analytics.NewDashboardUseCase(statsRepo)
	relatorioUC := relatorio.NewEstoqueUseCase(itemRepo, grupoRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	if cfg.Metrics.Enabled {
		app.Use(httpRouter.MetricsMiddleware())
		app.Get("/metrics", httpRouter.MetricsHandler())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		GrupoUC:      grupoUC,
		ItemUC:       itemUC,
		EstoqueUC:    estoqueUC,
		FornecedorUC: fornecedorUC,
		ClienteUC:    clienteUC,
		MesaUC:       mesaUC,
		CardapioUC:   cardapioUC,
		PedidoUC:     pedidoUC,
		ConfigUC:     configUC,
		DashboardUC:  dashboardUC,
		RelatorioUC:  relatorioUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
