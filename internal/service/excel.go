package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/WathsalaM369/stress-management-coach/internal/model"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Cronograma"

var scheduleHeaders = []string{
	"Tarefa", "Categoria", "Prioridade", "Status", "Bloco de Tempo",
	"Início", "Fim", "Alocado (min)", "Estimado (min)", "Confiança",
	"Urgência", "Prazo", "Notas",
}

// ExcelGenerator gera arquivos Excel a partir de um cronograma
type ExcelGenerator struct{}

// NewExcelGenerator cria um novo gerador de Excel
func NewExcelGenerator() *ExcelGenerator {
	return &ExcelGenerator{}
}

// Generate gera um arquivo Excel a partir do resultado do agendamento
func (g *ExcelGenerator) Generate(result *model.ScheduleResult) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Renomeia a sheet padrão
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("renomear sheet: %w", err)
	}

	if err := g.writeHeaders(f); err != nil {
		return nil, fmt.Errorf("escrever headers: %w", err)
	}

	if err := g.writeItems(f, result.Items); err != nil {
		return nil, fmt.Errorf("escrever dados: %w", err)
	}

	if err := g.writeSummary(f, result, len(result.Items)+3); err != nil {
		return nil, fmt.Errorf("escrever resumo: %w", err)
	}

	// Ajusta largura das colunas
	for col := 1; col <= len(scheduleHeaders); col++ {
		colName, _ := excelize.ColumnNumberToName(col)
		if err := f.SetColWidth(sheetName, colName, colName, 20); err != nil {
			return nil, fmt.Errorf("ajustar colunas: %w", err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("escrever buffer: %w", err)
	}

	return buf, nil
}

// writeHeaders escreve os cabeçalhos com o estilo padrão
func (g *ExcelGenerator) writeHeaders(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	for col, header := range scheduleHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
			return err
		}
	}

	return nil
}

// writeItems escreve uma linha por item do cronograma
func (g *ExcelGenerator) writeItems(f *excelize.File, items []model.ScheduleItem) error {
	for row, item := range items {
		excelRow := row + 2 // Linha 1 é header

		windowLabel := ""
		windowStart := ""
		windowEnd := ""
		if item.Window != nil {
			windowLabel = item.Window.Label
			windowStart = item.Window.StartTime.Format(time.RFC3339)
			windowEnd = item.Window.EndTime.Format(time.RFC3339)
		}

		values := []interface{}{
			item.Task.Title,
			item.Task.Category,
			string(item.Task.Priority),
			string(item.Status),
			windowLabel,
			windowStart,
			windowEnd,
			item.AllocatedMinutes,
			item.Task.DurationMinutes(),
			item.Confidence,
			item.DeadlineUrgency,
			item.Task.Deadline,
			strings.Join(item.Notes, "; "),
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, excelRow)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeSummary escreve as métricas agregadas abaixo da tabela
func (g *ExcelGenerator) writeSummary(f *excelize.File, result *model.ScheduleResult, startRow int) error {
	summary := [][]interface{}{
		{"Total de tarefas", result.TaskAnalysis.TotalTasks},
		{"Tarefas agendadas", result.TaskAnalysis.ScheduledTasks},
		{"Horas de trabalho", result.Insights.TotalWorkHours},
		{"Confiança média", result.Insights.AverageConfidence},
		{"Nível de estresse", result.StressAnalysis.Level},
		{"Impacto", result.StressAnalysis.Impact},
		{"Recomendações", strings.Join(result.Insights.Recommendations, "; ")},
	}

	for i, pair := range summary {
		labelCell, _ := excelize.CoordinatesToCellName(1, startRow+i)
		valueCell, _ := excelize.CoordinatesToCellName(2, startRow+i)
		if err := f.SetCellValue(sheetName, labelCell, pair[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, valueCell, pair[1]); err != nil {
			return err
		}
	}

	return nil
}
