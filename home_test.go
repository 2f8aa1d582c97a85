package main

import (
	"testing"
	"time"

	c "github.com/udhaar-dev/udhaar/constants"
	"github.com/udhaar-dev/udhaar/lib"
	"github.com/udhaar-dev/udhaar/themes"
	"github.com/udhaar-dev/udhaar/translations"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTableDeps(t *testing.T) {
	t.Helper()

	var err error

	UD.T, err = translations.Load(AllTranslations, "en_US.UTF-8")
	require.NoError(t, err)

	UD.Colors, err = themes.Load(AllThemes, "")
	require.NoError(t, err)

	UD.RecordsTableHeaders = nil
}

func TestGetRecordsTableHeaders(t *testing.T) {
	setupTableDeps(t)

	headers := getRecordsTableHeaders()
	require.Len(t, headers, len(c.RecordsColumns))

	for i, col := range c.RecordsColumns {
		assert.Equal(t, UD.T[recordsColumnKey(col)], headers[i].Text, "column %v", col)
		assert.NotEmpty(t, headers[i].Color, "column %v", col)
	}

	assert.Equal(t, 1, headers[c.ColumnPersonIndex].Expand)
	assert.Equal(t, 1, headers[c.ColumnLabelIndex].Expand)
	assert.Equal(t, tview.AlignRight, headers[c.ColumnAmountIndex].Align)

	// built once, then served from the cache
	again := getRecordsTableHeaders()
	assert.True(t, &headers[0] == &again[0], "headers should only be built once")
}

func TestGetRecordsTableCells(t *testing.T) {
	setupTableDeps(t)

	amt, err := lib.NewAmount("120")
	require.NoError(t, err)

	r := lib.NewRecord("Rohit", amt, c.ModeUPI, c.StatusIPaid)
	r.SetLabel("chai")
	r.SetProof("data:image/png;base64,xyz")
	r.Timestamp = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	cells := getRecordsTableCells(r)
	require.Len(t, cells, len(c.RecordsColumns))

	assert.Equal(t, "Rohit", cells[c.ColumnPersonIndex].Text)
	assert.Equal(t, "₹120", cells[c.ColumnAmountIndex].Text)
	assert.Equal(t, c.StatusIPaid, cells[c.ColumnStatusIndex].Text)
	assert.Equal(t, c.ModeUPI, cells[c.ColumnModeIndex].Text)
	assert.Equal(t, "chai", cells[c.ColumnLabelIndex].Text)
	assert.Equal(t, "2026-08-20", cells[c.ColumnDateIndex].Text)
	assert.Equal(t, UD.T["ProofMark"], cells[c.ColumnProofIndex].Text)
	assert.Equal(t, tview.AlignRight, cells[c.ColumnAmountIndex].Align)
}

func TestGetRecordsTableCellsWithoutOptionals(t *testing.T) {
	setupTableDeps(t)

	amt, err := lib.NewAmount("5")
	require.NoError(t, err)

	cells := getRecordsTableCells(lib.NewRecord("Priya", amt, c.ModeCash, c.StatusSplit))

	assert.Empty(t, cells[c.ColumnLabelIndex].Text)
	assert.Empty(t, cells[c.ColumnProofIndex].Text)
}
