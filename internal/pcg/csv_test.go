package pcg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liasse-dev/liasse/internal/model"
)

func TestRoundTrip(t *testing.T) {
	accounts := []model.Account{
		{Code: "512000", Label: "Banque", Description: "Compte courant principal"},
		{Code: "707000", Label: "Ventes de marchandises"},
	}

	var buf bytes.Buffer
	err := WriteAccounts(&buf, accounts)
	require.NoError(t, err)

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, accounts[0].Code, got[0].Code)
	assert.Equal(t, accounts[0].Label, got[0].Label)
	assert.Equal(t, accounts[0].Description, got[0].Description)

	assert.Equal(t, accounts[1].Code, got[1].Code)
	assert.Equal(t, accounts[1].Label, got[1].Label)
}

func TestUnmarshalRejectsBadCode(t *testing.T) {
	_, err := UnmarshalAccount([]string{"abc", "Bad", ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid account code")

	_, err = UnmarshalAccount([]string{"", "Empty", ""})
	require.Error(t, err)
}

func TestReadRejectsWrongFieldCount(t *testing.T) {
	in := strings.NewReader("code,label\n512000,Banque\n")
	_, err := ReadAccounts(in)
	require.Error(t, err)
}

func TestDefaultChart(t *testing.T) {
	chart := DefaultChart("societe_commerciale")
	require.NotEmpty(t, chart)

	codes := make(map[string]bool)
	for _, acct := range chart {
		codes[acct.Code] = true
	}
	assert.True(t, codes["101000"], "expected Capital (101000)")
	assert.True(t, codes["512000"], "expected Banque (512000)")
	assert.True(t, codes["471000"], "expected Comptes d'attente (471000)")

	// Every account carries a label and a valid class.
	for _, acct := range chart {
		assert.NotEmpty(t, acct.Label, "account %s missing label", acct.Code)
		assert.NotZero(t, acct.Class(), "account %s has no class", acct.Code)
	}
}

func TestDefaultChart_UnknownEntityType(t *testing.T) {
	// Unknown entity types fall back to the commercial chart.
	chart := DefaultChart("unknown_type")
	assert.NotEmpty(t, chart)
}

func TestDefaultChartRoundTrip(t *testing.T) {
	chart := DefaultChart("societe_commerciale")

	var buf bytes.Buffer
	err := WriteAccounts(&buf, chart)
	require.NoError(t, err)

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(chart))

	for i := range chart {
		assert.Equal(t, chart[i].Code, got[i].Code)
		assert.Equal(t, chart[i].Label, got[i].Label)
		assert.Equal(t, chart[i].Description, got[i].Description)
	}
}
