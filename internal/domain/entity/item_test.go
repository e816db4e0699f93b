package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lanchefacil/lanchefacil-api/internal/domain/entity"
)

func TestEstoqueBaixo(t *testing.T) {
	casos := []struct {
		nome     string
		qtd      float64
		minimo   float64
		esperado bool
	}{
		{"abaixo do mínimo", 3, 5, true},
		{"igual ao mínimo", 5, 5, true},
		{"acima do mínimo", 8, 5, false},
		{"mínimo zero desativa o alerta", 0, 0, false},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			it := &entity.Item{
				Quantidade:    decimal.NewFromFloat(c.qtd),
				EstoqueMinimo: decimal.NewFromFloat(c.minimo),
			}
			assert.Equal(t, c.esperado, it.EstoqueBaixo())
		})
	}
}

func TestSubtotalDaLinha(t *testing.T) {
	linha := &entity.PedidoItem{
		Quantidade:    3,
		PrecoUnitario: decimal.NewFromFloat(18.50),
	}
	assert.True(t, linha.Subtotal().Equal(decimal.NewFromFloat(55.50)))
}
