package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportarProdutos gera uma planilha xlsx com os produtos ativos da empresa e
// suas quantidades totais. Retorna o conteúdo e o nome sugerido do arquivo.
func (uc *ReportUseCase) ExportarProdutos(empresaID string) ([]byte, string, error) {
	produtos, err := uc.repo.ListarProdutos(empresaID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"codigo",
		"nome",
		"categoria",
		"unidade_medida",
		"preco",
		"estoque_min",
		"quantidade",
		"validade",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("exportar produtos: cabeçalho: %w", err)
	}

	row := 2
	for _, p := range produtos {
		validade := ""
		if p.Validade != nil {
			validade = p.Validade.Format("2006-01-02")
		}
		linha := []interface{}{
			p.Codigo,
			p.Nome,
			p.CategoriaNome,
			p.UnidadeMedida,
			p.PrecoVenda.String(),
			p.EstoqueMinimo,
			p.Quantidade,
			validade,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, "", fmt.Errorf("exportar produtos: célula: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &linha); err != nil {
			return nil, "", fmt.Errorf("exportar produtos: linha %d: %w", row, err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("exportar produtos: gravar arquivo: %w", err)
	}

	nome := fmt.Sprintf("produtos_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), nome, nil
}
