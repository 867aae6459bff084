package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-inventory/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func sample() []domain.Asset {
	return []domain.Asset{
		{Cod: 1, Code: "00055789", Description: "Notebook Dell", LocationCode: 2, Status: domain.StatusActive, Inventoried: true},
		{Cod: 2, Code: "00055790", Description: "Cadeira", LocationCode: 2, Status: domain.StatusActive, Inventoried: false},
		{Cod: 3, Code: "00012345", Description: "Monitor", LocationCode: 1, Status: domain.StatusInactive, Inventoried: true},
	}
}

func TestFilterAssets_StatusAndInventoried(t *testing.T) {
	got := FilterAssets(sample(), AssetFilter{
		Status:      ptr(domain.StatusActive),
		Inventoried: ptr(true),
	})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Cod)
}

func TestFilterAssets_UnsetVsFalse(t *testing.T) {
	all := FilterAssets(sample(), AssetFilter{})
	assert.Len(t, all, 3)

	notInv := FilterAssets(sample(), AssetFilter{Inventoried: ptr(false)})
	require.Len(t, notInv, 1)
	assert.Equal(t, 2, notInv[0].Cod)
}

func TestFilterAssets_Location(t *testing.T) {
	got := FilterAssets(sample(), AssetFilter{LocationCode: ptr(2)})
	assert.Len(t, got, 2)

	none := FilterAssets(sample(), AssetFilter{LocationCode: ptr(9)})
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFilterAssets_Search(t *testing.T) {
	for _, term := range []string{"note", "NOTE", "NOTEBOOK", "Notebook"} {
		got := FilterAssets(sample(), AssetFilter{Search: term})
		require.Len(t, got, 1, term)
		assert.Equal(t, "Notebook Dell", got[0].Description)
	}

	byCode := FilterAssets(sample(), AssetFilter{Search: "0005"})
	assert.Len(t, byCode, 2)

	combined := FilterAssets(sample(), AssetFilter{Search: "123", LocationCode: ptr(2)})
	assert.Empty(t, combined)
}

func TestSummarize(t *testing.T) {
	assets := []domain.Asset{
		{Status: domain.StatusActive, Inventoried: true},
		{Status: domain.StatusActive},
		{Status: domain.StatusInactive, Inventoried: true},
		{Status: domain.StatusWrittenOff},
	}
	s := Summarize(assets)
	assert.Equal(t, Summary{Total: 4, Inventoried: 2, NotInventoried: 2, Active: 2, Inactive: 1, WrittenOff: 1}, s)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestTallyByLocation(t *testing.T) {
	locations := []domain.Location{
		{Code: 1, Description: "Almoxarifado", Active: true},
		{Code: 2, Description: "Sala 101", Active: true},
		{Code: 3, Description: "Depósito", Active: true},
	}
	assets := append(sample(), domain.Asset{Cod: 4, LocationCode: 7, Status: domain.StatusActive})

	got := TallyByLocation(assets, locations)
	assert.Equal(t, []LocationTally{
		{Code: 2, Name: "Sala 101", Total: 2, Inventoried: 1},
		{Code: 1, Name: "Almoxarifado", Total: 1, Inventoried: 1},
		{Code: 7, Name: "Local 7", Total: 1, Inventoried: 0},
	}, got)
}
