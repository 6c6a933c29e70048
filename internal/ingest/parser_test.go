package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinesAcceptsTrailingPriceTriple(t *testing.T) {
	report := ParseLines("Pizza Margherita 5,00 7,00 9,00")

	require.Len(t, report.Items, 1)
	assert.Empty(t, report.Rejected)

	item := report.Items[0]
	assert.Equal(t, "Pizza Margherita", item.Name)
	assert.Equal(t, "5,00", item.PriceSmall)
	assert.Equal(t, "7,00", item.PriceMedium)
	assert.Equal(t, "9,00", item.PriceLarge)
}

func TestParseLinesRejectsHeadings(t *testing.T) {
	report := ParseLines("Getränke")

	assert.Empty(t, report.Items)
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, "Getränke", report.Rejected[0].Line)
	assert.Equal(t, "too few tokens", report.Rejected[0].Reason)
}

func TestParseLinesRejectsNonNumericTail(t *testing.T) {
	report := ParseLines("Pizza Margherita klein mittel gross")

	assert.Empty(t, report.Items)
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, "non-numeric price token", report.Rejected[0].Reason)
}

func TestParseLinesSkipsBlankLines(t *testing.T) {
	report := ParseLines("\n\n   \nDöner Kebab 4,00 5,50 7,00\n\n")

	require.Len(t, report.Items, 1)
	assert.Empty(t, report.Rejected)
	assert.Equal(t, "Döner Kebab", report.Items[0].Name)
}

func TestParseLinesMixedInput(t *testing.T) {
	text := "Speisekarte\n" +
		"Pizza Margherita 5,00 7,00 9,00\n" +
		"Getränke\n" +
		"Lahmacun 3.50 4.50 6.00\n"

	report := ParseLines(text)

	require.Len(t, report.Items, 2)
	assert.Equal(t, "Pizza Margherita", report.Items[0].Name)
	assert.Equal(t, "Lahmacun", report.Items[1].Name)
	assert.Len(t, report.Rejected, 2)
}
