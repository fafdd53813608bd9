package productControllers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMass(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ulei hidraulic 500ml", "500 ML"},
		{"Lapte praf 1,5 kg", "1.5 KG"},
		{"Erbicid total 0.25 l", "0.25 L"},
		{"Ingrasamant 250gr", "250 GR"},
		{"Sfoara balotat", ""},
	}
	for _, tt := range tests {
		got := extractMass(tt.name)
		if tt.want == "" {
			assert.Nil(t, got, tt.name)
			continue
		}
		require.NotNil(t, got, tt.name)
		assert.Equal(t, tt.want, *got, tt.name)
	}
}

func TestCapitalizeName(t *testing.T) {
	assert.Equal(t, "Azotat de amoniu", capitalizeName("AZOTAT DE AMONIU"))
	assert.Equal(t, "Lapte", capitalizeName("lapte"))
	assert.Equal(t, "", capitalizeName(""))
}

func TestParseProductsCSV(t *testing.T) {
	data := strings.Join([]string{
		"cod_art,denumire,valoare,disponibil,tip,imageUrl",
		"A100,AZOTAT 25KG,75.5,12,3,https://img.example/a100.png",
		",fara cod,1,1,1,",
		"B200,sfoara balotat,12,0,5,",
	}, "\n")

	products, err := parseProductsCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, products, 2) // the row without an article code is skipped

	first := products[0]
	assert.Equal(t, "A100", first.ID)
	assert.Equal(t, "Azotat 25kg", first.Name)
	assert.Equal(t, 75.5, first.Price)
	assert.Equal(t, 12, first.Quantity)
	assert.Equal(t, 3, first.Type)
	require.NotNil(t, first.Mass)
	assert.Equal(t, "25 KG", *first.Mass)
	assert.Equal(t, "https://img.example/a100.png", first.ImageURL)

	second := products[1]
	assert.Equal(t, "B200", second.ID)
	assert.Equal(t, "Sfoara balotat", second.Name)
	assert.Nil(t, second.Mass)
	assert.Equal(t, 0, second.Quantity)
}

func TestParseProductsCSVToleratesShortRows(t *testing.T) {
	data := "cod_art,denumire,valoare,disponibil,tip,imageUrl\nC300,var stins,3\n"

	products, err := parseProductsCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "C300", products[0].ID)
	assert.Equal(t, 0, products[0].Quantity)
}
