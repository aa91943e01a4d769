package xlsx_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/infrastructure/xlsx"
)

func readRows(t *testing.T, b []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	return rows
}

func TestAlertsWriter_WritesHeadersAndRows(t *testing.T) {
	table := &dto.AlertTable{
		Headers: dto.AlertHeaders,
		Rows: []dto.AlertRowDTO{{
			Material: "4001", Description: "Lija al agua", Stock: decimal.NewFromFloat(2.5),
			StockMin: decimal.NewFromInt(5), WarehouseCode: "101", LocationCode: "A-01",
		}},
	}

	b, err := xlsx.NewAlertsWriter().Write(table)
	require.NoError(t, err)

	rows := readRows(t, b)
	require.Len(t, rows, 2)
	assert.Equal(t, dto.AlertHeaders, rows[0])
	assert.Equal(t, []string{"4001", "Lija al agua", "2.5", "5", "101", "A-01"}, rows[1])
}

func TestAlertsWriter_EmptyTableHasOnlyHeaders(t *testing.T) {
	b, err := xlsx.NewAlertsWriter().Write(&dto.AlertTable{Headers: dto.AlertHeaders, Rows: []dto.AlertRowDTO{}})
	require.NoError(t, err)

	rows := readRows(t, b)
	require.Len(t, rows, 1)
	assert.Equal(t, "Material", rows[0][0])
	assert.Equal(t, "Ubicación", rows[0][5])
}
