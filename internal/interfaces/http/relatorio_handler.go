package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lanchefacil/lanchefacil-api/internal/application/relatorio"
)

// RelatorioHandler trata as requisições HTTP de relatórios exportáveis.
type RelatorioHandler struct {
	uc *relatorio.EstoqueUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorio.EstoqueUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// EstoqueXLSX godoc
// @Summary      Exportar estoque em planilha xlsx
// @Tags         relatorios
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/relatorios/estoque [get]
func (h *RelatorioHandler) EstoqueXLSX(c *fiber.Ctx) error {
	buf, err := h.uc.GerarXLSX(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	nome := fmt.Sprintf("estoque-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, nome))
	return c.Send(buf.Bytes())
}
