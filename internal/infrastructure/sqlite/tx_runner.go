package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lanchefacil/lanchefacil-api/internal/application/estoque"
	"github.com/lanchefacil/lanchefacil-api/internal/application/pedidos"
	"github.com/lanchefacil/lanchefacil-api/internal/domain/repository"
)

var _ estoque.TxRunner = (*TxRunner)(nil)
var _ pedidos.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação SQLite.
type TxRunner struct {
	db *sqlx.DB
}

// NewTxRunner constrói o runner com o handle do banco.
func NewTxRunner(db *sqlx.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia uma transação, executa fn com repos de estoque atados à tx e faz
// Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.MovimentacaoRepository,
) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewItemRepository(tx), NewMovimentacaoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPedido inicia uma transação com os repos usados pelo ciclo do pedido
// (pedido + cardápio + mesa).
func (r *TxRunner) RunPedido(ctx context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
	cardapioRepo repository.CardapioRepository,
	mesaRepo repository.MesaRepository,
) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewPedidoRepository(tx), NewCardapioRepository(tx), NewMesaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
