package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	v1 "irbana.com/pontosync/irbana/v1"
	"irbana.com/pontosync/utils"
)

var diasDaSemana = [...]string{"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"}

// Espelho is the input for a time sheet mirror: one employee, one
// period, the day records the backend returned for it.
type Espelho struct {
	FuncionarioID int
	Nome          string
	Inicio        time.Time
	Fim           time.Time
	Registros     []v1.RegistroPontoDTO
}

// HorasTrabalhadas computes the worked span of a day record in minutes:
// morning plus afternoon, each counted only when both punches are
// present.
func HorasTrabalhadas(r *v1.RegistroPontoDTO) int {
	total := 0
	total += spanMinutes(r.Entrada, r.SaidaAlmoco)
	total += spanMinutes(r.VoltaAlmoco, r.Saida)
	if total == 0 {
		// no lunch punches: count the full entrada..saida span
		total = spanMinutes(r.Entrada, r.Saida)
	}
	return total
}

func spanMinutes(from, to *string) int {
	if from == nil || to == nil {
		return 0
	}
	start, err1 := time.Parse("15:04", *from)
	end, err2 := time.Parse("15:04", *to)
	if err1 != nil || err2 != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Minutes())
}

func formatMinutos(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func horaOuVazio(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GerarEspelho renders the time sheet mirror as an xlsx workbook: one
// row per calendar day of the period, punches as captured, worked hours
// computed per day and totaled.
func GerarEspelho(espelho *Espelho, out io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Espelho de Ponto"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Espelho de Ponto - %s (%d)", espelho.Nome, espelho.FuncionarioID))
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Período: %s a %s",
		utils.FormatDate(espelho.Inicio), utils.FormatDate(espelho.Fim)))

	headers := []string{"Data", "Dia", "Entrada", "Saída Almoço", "Volta Almoço", "Saída", "Horas"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheet, cell, header)
	}

	porData := map[string]*v1.RegistroPontoDTO{}
	for i := range espelho.Registros {
		porData[espelho.Registros[i].Data] = &espelho.Registros[i]
	}

	row := 5
	totalMinutos := 0
	for dia := espelho.Inicio; !dia.After(espelho.Fim); dia = dia.AddDate(0, 0, 1) {
		data := utils.FormatDate(dia)
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), data)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), diasDaSemana[dia.Weekday()])

		if registro, ok := porData[data]; ok {
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), horaOuVazio(registro.Entrada))
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), horaOuVazio(registro.SaidaAlmoco))
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), horaOuVazio(registro.VoltaAlmoco))
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), horaOuVazio(registro.Saida))

			minutos := HorasTrabalhadas(registro)
			totalMinutos += minutos
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), formatMinutos(minutos))
		}
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("F%d", row+1), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("G%d", row+1), formatMinutos(totalMinutos))

	f.SetColWidth(sheet, "A", "G", 14)

	return f.Write(out)
}
