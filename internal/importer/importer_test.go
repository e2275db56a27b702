package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTestReleve(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/releve.csv")
	require.NoError(t, err)
	return string(data)
}

func TestReleveParser_Parse(t *testing.T) {
	p := &ReleveParser{}
	txns, err := p.Parse(strings.NewReader(readTestReleve(t)))
	require.NoError(t, err)
	require.Len(t, txns, 5)

	// First: Orange direct debit, money out.
	assert.Equal(t, "PRLV SEPA ORANGE SA", txns[0].Label)
	assert.Equal(t, "-39.99", txns[0].Amount.StringFixed(2))
	assert.Equal(t, 2025, txns[0].Date.Year())
	assert.Equal(t, 1, int(txns[0].Date.Month()))
	assert.Equal(t, 3, txns[0].Date.Day())

	// Second: customer payment with a thousands separator, money in.
	assert.Equal(t, "VIR RECU CLIENT MARTIN FACT 1042", txns[1].Label)
	assert.True(t, txns[1].Amount.IsPositive())
	assert.Equal(t, "3500.00", txns[1].Amount.StringFixed(2))
}

func TestReleveParser_FrenchAmounts(t *testing.T) {
	p := &ReleveParser{}
	txns, err := p.Parse(strings.NewReader(readTestReleve(t)))
	require.NoError(t, err)

	last := txns[4]
	assert.Equal(t, "1200.50", last.Amount.StringFixed(2))
	assert.Equal(t, 22, last.Date.Day())
}

func TestReleveParser_DebitCreditSigns(t *testing.T) {
	p := &ReleveParser{}
	txns, err := p.Parse(strings.NewReader(readTestReleve(t)))
	require.NoError(t, err)

	for _, txn := range txns {
		if strings.HasPrefix(txn.Label, "VIR RECU") {
			assert.True(t, txn.Amount.IsPositive(), "expected positive for %s", txn.Label)
		} else {
			assert.True(t, txn.Amount.IsNegative(), "expected negative for %s", txn.Label)
		}
	}
}

func TestReleveParser_EmptyFile(t *testing.T) {
	p := &ReleveParser{}
	txns, err := p.Parse(strings.NewReader("Date;Libellé;Débit;Crédit\n"))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestReleveParser_BadDate(t *testing.T) {
	in := "Date;Libellé;Débit;Crédit\nPASUNEDATE;libellé;4,00;\n"
	p := &ReleveParser{}
	_, err := p.Parse(strings.NewReader(in))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestReleveParser_BothSidesRejected(t *testing.T) {
	in := "Date;Libellé;Débit;Crédit\n03/01/2025;libellé;4,00;5,00\n"
	p := &ReleveParser{}
	_, err := p.Parse(strings.NewReader(in))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "both")
}

func TestReleveParser_NeitherSideRejected(t *testing.T) {
	in := "Date;Libellé;Débit;Crédit\n03/01/2025;libellé;;\n"
	p := &ReleveParser{}
	_, err := p.Parse(strings.NewReader(in))
	assert.Error(t, err)
}

func TestReleveParser_Format(t *testing.T) {
	p := &ReleveParser{}
	assert.Equal(t, "releve", p.Format())
}

func TestReleveParser_Reference(t *testing.T) {
	p := &ReleveParser{}
	txns, err := p.Parse(strings.NewReader(readTestReleve(t)))
	require.NoError(t, err)

	// Reference format: releve_YYYYMMDD_<prefix>
	assert.Equal(t, "releve_20250103_PRLVSEPAOR", txns[0].Reference)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&ReleveParser{})
	p := r.Get("releve")
	require.NotNil(t, p)
	assert.Equal(t, "releve", p.Format())
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&ReleveParser{})
	assert.NotNil(t, r.Get("Releve"))
	assert.NotNil(t, r.Get("RELEVE"))
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("releve"))
}

func TestScan_FindsCSVs(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(importDir, "releve-janvier.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "notes.txt"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, "releve-janvier.csv", files[0].Name)
}

func TestScan_IgnoresProcessedDir(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	processedDir := filepath.Join(importDir, "processed")
	require.NoError(t, os.MkdirAll(processedDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(importDir, "new.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(processedDir, "old.csv"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestScan_EmptyDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "releve.csv"), []byte("data"), 0o644))

	err := MarkProcessed(dir, "releve.csv")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(importDir, "releve.csv"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(dir, "import", "processed", "releve.csv"))
	assert.NoError(t, err)
}
