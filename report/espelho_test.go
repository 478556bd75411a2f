package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	v1 "irbana.com/pontosync/irbana/v1"
	"irbana.com/pontosync/utils"
)

func TestHorasTrabalhadas(t *testing.T) {
	tests := []struct {
		name     string
		registro v1.RegistroPontoDTO
		want     int
	}{
		{
			name: "full day with lunch",
			registro: v1.RegistroPontoDTO{
				Entrada:     utils.Ptr("08:00"),
				SaidaAlmoco: utils.Ptr("12:00"),
				VoltaAlmoco: utils.Ptr("13:00"),
				Saida:       utils.Ptr("17:00"),
			},
			want: 480,
		},
		{
			name: "no lunch punches",
			registro: v1.RegistroPontoDTO{
				Entrada: utils.Ptr("08:00"),
				Saida:   utils.Ptr("12:00"),
			},
			want: 240,
		},
		{
			name: "morning only",
			registro: v1.RegistroPontoDTO{
				Entrada:     utils.Ptr("08:00"),
				SaidaAlmoco: utils.Ptr("12:00"),
			},
			want: 240,
		},
		{
			name:     "only entrada",
			registro: v1.RegistroPontoDTO{Entrada: utils.Ptr("08:00")},
			want:     0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, HorasTrabalhadas(&test.registro))
		})
	}
}

func TestGerarEspelho(t *testing.T) {
	espelho := &Espelho{
		FuncionarioID: 7,
		Nome:          "João Silva",
		Inicio:        utils.MustParseDate("2025-03-10"),
		Fim:           utils.MustParseDate("2025-03-12"),
		Registros: []v1.RegistroPontoDTO{
			{
				Data:        "2025-03-10",
				Entrada:     utils.Ptr("08:00"),
				SaidaAlmoco: utils.Ptr("12:00"),
				VoltaAlmoco: utils.Ptr("13:00"),
				Saida:       utils.Ptr("17:00"),
			},
			{
				Data:    "2025-03-12",
				Entrada: utils.Ptr("08:00"),
				Saida:   utils.Ptr("12:00"),
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, GerarEspelho(espelho, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Espelho de Ponto"
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)

	// title, period, blank, header, 3 days, blank, total
	title, _ := f.GetCellValue(sheet, "A1")
	assert.Contains(t, title, "João Silva")

	entrada, _ := f.GetCellValue(sheet, "C5")
	assert.Equal(t, "08:00", entrada)
	horas, _ := f.GetCellValue(sheet, "G5")
	assert.Equal(t, "08:00", horas)

	// 2025-03-11 has no record
	vazio, _ := f.GetCellValue(sheet, "C6")
	assert.Equal(t, "", vazio)

	total, _ := f.GetCellValue(sheet, "G9")
	assert.Equal(t, "12:00", total)
	assert.GreaterOrEqual(t, len(rows), 7)
}
