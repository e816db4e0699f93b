// Package relatorio gera exportações do estoque em planilha.
package relatorio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/lanchefacil/lanchefacil-api/internal/domain/repository"
	"github.com/xuri/excelize/v2"
)

// EstoqueUseCase gera o relatório de estoque em xlsx.
type EstoqueUseCase struct {
	itemRepo  repository.ItemRepository
	grupoRepo repository.GrupoRepository
}

// NewEstoqueUseCase constrói o caso de uso do relatório.
func NewEstoqueUseCase(itemRepo repository.ItemRepository, grupoRepo repository.GrupoRepository) *EstoqueUseCase {
	return &EstoqueUseCase{itemRepo: itemRepo, grupoRepo: grupoRepo}
}

// GerarXLSX monta a planilha com uma linha por item e devolve o
// arquivo pronto para download.
func (uc *EstoqueUseCase) GerarXLSX(ctx context.Context) (*bytes.Buffer, error) {
	itens, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatório: listar itens: %w", err)
	}
	grupos, err := uc.grupoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatório: listar grupos: %w", err)
	}

	nomesGrupo := make(map[string]string, len(grupos))
	for _, g := range grupos {
		nomesGrupo[g.ID] = g.Nome
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"Nome",
		"Grupo",
		"SKU",
		"Quantidade",
		"Unidade",
		"Valor unitário",
		"Valor total",
		"Estoque mínimo",
		"Estoque ideal",
		"Estoque baixo",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("relatório: cabeçalho: %w", err)
	}

	row := 2
	for _, it := range itens {
		baixo := "não"
		if it.EstoqueBaixo() {
			baixo = "sim"
		}
		valorTotal := it.Quantidade.Mul(it.ValorUnitario).Round(2)
		excelRow := []interface{}{
			it.Nome,
			nomesGrupo[it.GrupoID],
			it.SKU,
			it.Quantidade.InexactFloat64(),
			it.Unidade,
			it.ValorUnitario.InexactFloat64(),
			valorTotal.InexactFloat64(),
			it.EstoqueMinimo.InexactFloat64(),
			it.EstoqueIdeal.InexactFloat64(),
			baixo,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("relatório: célula da linha %d: %w", row, err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("relatório: linha %d: %w", row, err)
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("relatório: gravar planilha: %w", err)
	}
	return buf, nil
}
