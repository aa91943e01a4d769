package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/infrastructure/pdf"
)

func TestAlertsReport_Generate(t *testing.T) {
	table := &dto.AlertTable{
		Headers: dto.AlertHeaders,
		Rows: []dto.AlertRowDTO{
			{Material: "4001", Description: "Lija", Stock: decimal.NewFromInt(1), StockMin: decimal.NewFromInt(5)},
		},
	}

	b, err := pdf.NewAlertsReport("Alertas de stock").Generate(table, time.Now())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestAlertsReport_EmptyTable(t *testing.T) {
	b, err := pdf.NewAlertsReport("Alertas de stock").Generate(
		&dto.AlertTable{Headers: dto.AlertHeaders, Rows: []dto.AlertRowDTO{}}, time.Now())

	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
