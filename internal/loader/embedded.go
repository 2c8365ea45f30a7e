package loader

import (
	"strconv"

	"github.com/sefallone/Plan-eco/internal/model"
)

// EmbeddedName is the source name reported for the built-in table.
const EmbeddedName = "embedded:projection-2025-2027"

// embeddedMonths are the date tokens of the built-in projection,
// October 2025 through December 2027.
var embeddedMonths = []string{
	"oct-25", "nov-25", "dic-25", "ene-26", "feb-26", "mar-26", "abr-26", "may-26", "jun-26",
	"jul-26", "ago-26", "sep-26", "oct-26", "nov-26", "dic-26", "ene-27", "feb-27", "mar-27",
	"abr-27", "may-27", "jun-27", "jul-27", "ago-27", "sep-27", "oct-27", "nov-27", "dic-27",
}

type embeddedColumn struct {
	header string
	values []float64
}

// embeddedColumns keep the headers exactly as they appear in the
// projection workbook, including stray whitespace.
var embeddedColumns = []embeddedColumn{
	{"Total Facturación", []float64{
		100000, 120000, 140000, 200000, 210000, 210000, 260000, 260000, 360000,
		360000, 360000, 370000, 370000, 370000, 380000, 390000, 400000, 410000,
		420000, 430000, 440000, 450000, 460000, 470000, 480000, 490000, 500000,
	}},
	{"Facturación CCEE VITHAS", []float64{
		10000, 12000, 14000, 20000, 21000, 21000, 26000, 26000, 36000,
		36000, 36000, 37000, 37000, 37000, 38000, 39000, 40000, 41000,
		42000, 43000, 44000, 45000, 46000, 47000, 48000, 49000, 50000,
	}},
	{"Facturación CCEE OSA (80%)", []float64{
		8000, 9600, 11200, 16000, 16800, 16800, 20800, 20800, 28800,
		28800, 28800, 29600, 29600, 29600, 30400, 31200, 32000, 32800,
		33600, 34400, 35200, 36000, 36800, 37600, 38400, 39200, 40000,
	}},
	{"No. De Pacientes CCEE", []float64{
		500, 600, 700, 1000, 1050, 1050, 1300, 1300, 1800,
		1800, 1800, 1850, 1850, 1850, 1900, 1950, 2000, 2050,
		2100, 2150, 2200, 2250, 2300, 2350, 2400, 2450, 2500,
	}},
	{"Pacientes x Módulo (Cada 15 min)", []float64{
		2, 2, 2, 2, 2, 2, 2, 2, 2,
		2, 2, 2, 2, 2, 2, 2.1, 2.1, 2.1,
		2.1, 2.1, 2.1, 2.1, 2.1, 2.1, 2.1, 2.1, 2.1,
	}},
	{"Días x mes CCEE", []float64{
		20, 20, 20, 20, 20, 20, 20, 20, 20,
		20, 20, 20, 20, 20, 20, 21, 21, 21,
		21, 21, 21, 21, 21, 21, 21, 21, 21,
	}},
	{"Módulos Totales x día", []float64{
		1, 1, 1, 1, 1, 1, 4, 4, 4,
		4, 4, 4, 4, 4, 4, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5,
	}},
	{"Módulos Mañana", []float64{
		1, 1, 1, 1, 1, 1, 2, 2, 2,
		2, 2, 2, 2, 2, 2, 2.5, 2.5, 2.5,
		2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5,
	}},
	{"Módulos Tarde", []float64{
		1, 1, 1, 1, 1, 1, 2, 2, 2,
		2, 2, 2, 2, 2, 2, 2.5, 2.5, 2.5,
		2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5,
	}},
	{"Precio Medio Consultas CCEE", []float64{
		20, 20, 20, 20, 20, 20, 20, 20, 20,
		20, 20, 20, 20, 20, 20, 21, 21, 21,
		21, 21, 21, 21, 21, 21, 21, 21, 21,
	}},
	{"Precio HHMM 80% Consultas", []float64{
		20, 20, 20, 20, 20, 20, 20, 20, 20,
		20, 20, 20, 20, 20, 20, 21, 21, 21,
		21, 21, 21, 21, 21, 21, 21, 21, 21,
	}},
	{"Facturación Quirúrgico VITHAS", []float64{
		20, 20, 20, 20, 20, 20, 20, 20, 20,
		20, 20, 20, 20, 20, 20, 50, 50, 50,
		50, 50, 50, 50, 50, 50, 50, 50, 50,
	}},
	{"Facturación Quirúrgico OSA (90%)", []float64{
		20, 20, 20, 20, 20, 20, 20, 20, 20,
		20, 20, 20, 20, 20, 20, 45, 45, 45,
		45, 45, 45, 45, 45, 45, 45, 45, 45,
	}},
	{"No. De Intervenciones Quirúrgicas", []float64{
		20, 20, 20, 20, 20, 20, 20, 20, 20,
		20, 20, 20, 20, 20, 20, 50, 50, 50,
		50, 50, 50, 50, 50, 50, 50, 50, 50,
	}},
	{"Precio Medio HHMM Quirúrgicas", []float64{
		20, 20, 20, 20, 20, 20, 20, 20, 20,
		20, 20, 20, 20, 20, 20, 50, 50, 50,
		50, 50, 50, 50, 50, 50, 50, 50, 50,
	}},
	{"Facturación Urgencias OSA (50% )", []float64{
		17500, 17500, 17500, 17500, 17500, 17500, 17500, 17500, 17500,
		17500, 17500, 17500, 17500, 17500, 17500, 18000, 18000, 18000,
		18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000,
	}},
	{"Facturación Urgencias VITHAS", []float64{
		8750, 8750, 8750, 8750, 8750, 8750, 8750, 8750, 8750,
		8750, 8750, 8750, 8750, 8750, 8750, 9000, 9000, 9000,
		9000, 9000, 9000, 9000, 9000, 9000, 9000, 9000, 9000,
	}},
	{"No. Urgencias Mes", []float64{
		300, 300, 300, 300, 300, 300, 300, 300, 300,
		300, 300, 300, 300, 300, 300, 350, 350, 350,
		350, 350, 350, 350, 350, 350, 350, 350, 350,
	}},
	{"Días x Mes Urgencias", []float64{
		30, 30, 30, 30, 30, 30, 30, 30, 30,
		30, 30, 30, 30, 30, 30, 30, 30, 30,
		30, 30, 30, 30, 30, 30, 30, 30, 30,
	}},
	{"Urgencias días Trauma (15%)", []float64{
		3, 3, 3, 3, 3, 3, 3, 3, 3,
		3, 3, 3, 3, 3, 3, 3.5, 3.5, 3.5,
		3.5, 3.5, 3.5, 3.5, 3.5, 3.5, 3.5, 3.5, 3.5,
	}},
	{"Urgencias días totales Vitha", []float64{
		5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 6, 6, 6,
		6, 6, 6, 6, 6, 6, 6, 6, 6,
	}},
	{"Precio Medio Urgencias", []float64{
		60, 60, 60, 60, 60, 60, 60, 60, 60,
		60, 60, 60, 60, 60, 60, 65, 65, 65,
		65, 65, 65, 65, 65, 65, 65, 65, 65,
	}},
}

type embeddedSource struct{}

// Embedded returns the built-in projection table. It goes through the same
// normalization as a file: headers are aliases, dates are "mmm-yy" tokens.
func Embedded() Source {
	return embeddedSource{}
}

func (embeddedSource) Name() string { return EmbeddedName }

func (embeddedSource) Table() (*model.Table, error) {
	t := &model.Table{Header: []string{"Fecha"}}
	for _, c := range embeddedColumns {
		t.Header = append(t.Header, c.header)
	}
	t.Rows = make([][]string, len(embeddedMonths))
	for i, m := range embeddedMonths {
		row := make([]string, 0, len(t.Header))
		row = append(row, m)
		for _, c := range embeddedColumns {
			row = append(row, strconv.FormatFloat(c.values[i], 'f', -1, 64))
		}
		t.Rows[i] = row
	}
	return t, nil
}
