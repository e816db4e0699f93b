package pedidos

import (
	"context"

	"github.com/lanchefacil/lanchefacil-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação com os repos do ciclo do pedido.
// Implementado pela infraestrutura (SQLite).
type TxRunner interface {
	RunPedido(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		cardapioRepo repository.CardapioRepository,
		mesaRepo repository.MesaRepository,
	) error) error
}
