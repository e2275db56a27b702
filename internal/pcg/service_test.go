package pcg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liasse-dev/liasse/internal/model"
)

func TestNewService(t *testing.T) {
	chart := DefaultChart("societe_commerciale")
	svc := NewService(chart)

	assert.Len(t, svc.All(), len(chart))
}

func TestNewServiceSortsByCode(t *testing.T) {
	svc := NewService([]model.Account{
		{Code: "707000", Label: "Ventes"},
		{Code: "101000", Label: "Capital"},
		{Code: "512000", Label: "Banque"},
	})

	all := svc.All()
	require.Len(t, all, 3)
	assert.Equal(t, "101000", all[0].Code)
	assert.Equal(t, "512000", all[1].Code)
	assert.Equal(t, "707000", all[2].Code)
}

func TestGetExists(t *testing.T) {
	svc := NewService(DefaultChart("societe_commerciale"))

	acct, ok := svc.Get("512000")
	assert.True(t, ok)
	assert.Equal(t, "Banque", acct.Label)

	_, ok = svc.Get("999999")
	assert.False(t, ok)

	assert.True(t, svc.Exists("512000"))
	assert.False(t, svc.Exists("999999"))
}

func TestByClass(t *testing.T) {
	svc := NewService(DefaultChart("societe_commerciale"))

	for _, a := range svc.ByClass(5) {
		assert.Equal(t, 5, a.Class())
	}
	assert.NotEmpty(t, svc.ByClass(6))
	assert.NotEmpty(t, svc.ByClass(7))
	assert.Empty(t, svc.ByClass(8))
}

func TestSaveRoundTrip(t *testing.T) {
	chart := DefaultChart("societe_commerciale")
	svc := NewService(chart)

	dir := t.TempDir()
	err := svc.Save(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "accounts", "plan-comptable.csv")
	_, err = os.Stat(path)
	require.NoError(t, err)

	svc2, err := Load(dir)
	require.NoError(t, err)
	assert.Len(t, svc2.All(), len(chart))

	for _, orig := range chart {
		got, ok := svc2.Get(orig.Code)
		require.True(t, ok, "account %s should exist", orig.Code)
		assert.Equal(t, orig.Label, got.Label)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
}
