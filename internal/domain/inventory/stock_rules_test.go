package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panol-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestApply(t *testing.T) {
	tests := []struct {
		name         string
		kind         entity.MovementKind
		stock, qty   string
		wantRecorded string
		wantStock    string
		insufficient bool
	}{
		{"recepcion suma", entity.MovementReceipt, "0", "10", "10", "10", false},
		{"salida normal", entity.MovementIssue, "10", "3", "3", "7", false},
		{"salida exacta", entity.MovementIssue, "5", "5", "5", "0", false},
		{"salida recortada", entity.MovementIssue, "2", "10", "2", "0", true},
		{"salida sobre stock negativo", entity.MovementIssue, "-4", "1", "0", "-4", true},
		{"devolucion suma", entity.MovementReturn, "1.5", "0.25", "0.25", "1.75", false},
		{"ajuste negativo sin recorte", entity.MovementAdjust, "1", "-5", "-5", "-4", false},
		{"ajuste positivo", entity.MovementAdjust, "1", "2.5", "2.5", "3.5", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, ok := Apply(tt.kind, d(tt.stock), d(tt.qty))
			require.True(t, ok)
			assert.True(t, d(tt.wantRecorded).Equal(app.Recorded), "recorded %s", app.Recorded)
			assert.True(t, d(tt.wantStock).Equal(app.NewStock), "stock %s", app.NewStock)
			assert.Equal(t, tt.insufficient, app.Insufficient)
			assert.True(t, d(tt.qty).Equal(app.Requested))
		})
	}
}

func TestApply_RechazaCantidadNegativaFueraDeAjuste(t *testing.T) {
	for _, k := range []entity.MovementKind{entity.MovementReceipt, entity.MovementIssue, entity.MovementReturn} {
		_, ok := Apply(k, d("10"), d("-1"))
		assert.False(t, ok, string(k))
	}
	_, ok := Apply(entity.MovementKind("TRANSFER"), d("10"), d("1"))
	assert.False(t, ok)
}

func TestReplay_CoincideConStock(t *testing.T) {
	stock := decimal.Zero
	var ledger []*entity.Movement
	steps := []struct {
		kind entity.MovementKind
		qty  string
	}{
		{entity.MovementReceipt, "10"},
		{entity.MovementIssue, "3"},
		{entity.MovementIssue, "50"},
		{entity.MovementReturn, "2"},
		{entity.MovementAdjust, "-5"},
	}
	for _, s := range steps {
		app, ok := Apply(s.kind, stock, d(s.qty))
		require.True(t, ok)
		stock = app.NewStock
		ledger = append(ledger, &entity.Movement{Kind: s.kind, Quantity: app.Recorded})
	}
	assert.True(t, stock.Equal(Replay(ledger)), "stock %s replay %s", stock, Replay(ledger))
	assert.True(t, d("-3").Equal(stock))
}

func TestFitsScale(t *testing.T) {
	assert.True(t, FitsScale(d("1")))
	assert.True(t, FitsScale(d("0.0001")))
	assert.True(t, FitsScale(d("-2.5000")))
	assert.True(t, FitsScale(d("1.50000")), "ceros a la derecha no cuentan")
	assert.False(t, FitsScale(d("0.00005")))
	assert.False(t, FitsScale(d("-0.12345")))
}

func TestApply_RechazaMasDecimalesQueLaEscala(t *testing.T) {
	for _, k := range []entity.MovementKind{entity.MovementReceipt, entity.MovementIssue, entity.MovementReturn, entity.MovementAdjust} {
		_, ok := Apply(k, d("1"), d("0.00005"))
		assert.False(t, ok, string(k))
	}
}
