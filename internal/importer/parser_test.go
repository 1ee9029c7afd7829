package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
	"github.com/MrJamesThe3rd/wikiguessr/internal/importer"
)

func TestParser_CSV(t *testing.T) {
	csv := `WikiGuessr article export;2026-10-01

Title;Summary;Image_URL;Links;Infobox
Mercury (planet);Smallest planet of the Solar System.;https://upload.example/mercury.png;Venus|Sun| Mariner 10 ;Moons=0|Orbital period=88 days
Albert Einstein;Theoretical physicist.;;Relativity;
;orphan summary;;;
`

	got, err := importer.NewParser(';').Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, article.CreateParams{
		Title:    "Mercury (planet)",
		Summary:  "Smallest planet of the Solar System.",
		ImageURL: "https://upload.example/mercury.png",
		Links:    []string{"Venus", "Sun", "Mariner 10"},
		Infobox: []article.InfoboxField{
			{Key: "Moons", Value: "0"},
			{Key: "Orbital period", Value: "88 days"},
		},
	}, got[0])

	assert.Equal(t, "Albert Einstein", got[1].Title)
	assert.Equal(t, []string{"Relativity"}, got[1].Links)
	assert.Empty(t, got[1].Infobox)
}

func TestParser_TSVMissingOptionalColumns(t *testing.T) {
	tsv := "title\tsummary\nParis\tCapital of France.\n"

	got, err := importer.NewParser('\t').Parse(strings.NewReader(tsv))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Paris", got[0].Title)
	assert.Equal(t, "Capital of France.", got[0].Summary)
	assert.Empty(t, got[0].ImageURL)
	assert.Nil(t, got[0].Links)
}

func TestParser_Windows1252(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().String("title;summary\nZürich;Größte Stadt der Schweiz.\n")
	require.NoError(t, err)

	got, err := importer.NewParser(';').Parse(strings.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Zürich", got[0].Title)
}

func TestParser_InfoboxSkipsMalformedEntries(t *testing.T) {
	csv := "title;infobox\nParis;Country=France|broken|=nokey| Mayor = Anne Hidalgo \n"

	got, err := importer.NewParser(';').Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []article.InfoboxField{
		{Key: "Country", Value: "France"},
		{Key: "Mayor", Value: "Anne Hidalgo"},
	}, got[0].Infobox)
}

func TestParser_NoTitleColumn(t *testing.T) {
	_, err := importer.NewParser(';').Parse(strings.NewReader("name;summary\nParis;Capital\n"))
	assert.ErrorIs(t, err, importer.ErrMissingTitleColumn)
}

func TestService_UnknownFormat(t *testing.T) {
	_, err := importer.NewService().Import(importer.Format("xlsx"), strings.NewReader(""))
	assert.Error(t, err)
}

func TestService_DispatchesByFormat(t *testing.T) {
	got, err := importer.NewService().Import(importer.FormatTSV, strings.NewReader("title\nParis\n"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Paris", got[0].Title)
}
