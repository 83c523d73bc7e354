package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForFormat(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFormat("json"))
	assert.IsType(t, &CSVParser{}, ForFormat("CSV"))
	assert.IsType(t, &YAMLParser{}, ForFormat("yaml"))
	assert.IsType(t, &YAMLParser{}, ForFormat("yml"))
	assert.Nil(t, ForFormat("xml"))
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFile("data/philosophers.json"))
	assert.IsType(t, &CSVParser{}, ForFile("export.CSV"))
	assert.IsType(t, &YAMLParser{}, ForFile("dataset.yml"))
	assert.Nil(t, ForFile("notes.txt"))
	assert.Nil(t, ForFile("noextension"))
}

func TestJSONParserDocument(t *testing.T) {
	input := `{
		"philosophers": [
			{"id": "socrates", "title": "Socrates", "year": "c. 470 BC",
			 "concepts": ["Ethics", "Epistemology"], "influenced_by": []},
			{"title": "Plato", "year": "c. 428 BC", "influenced_by": ["socrates"]}
		],
		"concepts": [{"name": "Ethics", "category": "Value"}]
	}`

	dataset, err := (&JSONParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, dataset.Philosophers, 2)
	assert.Equal(t, "socrates", dataset.Philosophers[0].ID)
	assert.Equal(t, "c. 470 BC", dataset.Philosophers[0].Year)
	assert.Equal(t, []string{"Ethics", "Epistemology"}, dataset.Philosophers[0].Concepts)
	assert.Equal(t, []string{"socrates"}, dataset.Philosophers[1].InfluencedBy)
	require.Len(t, dataset.Concepts, 1)
	assert.Equal(t, "Value", dataset.Concepts[0].Category)
}

func TestJSONParserBareArray(t *testing.T) {
	input := `[{"title": "Kant", "year": "1724"}]`

	dataset, err := (&JSONParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, dataset.Philosophers, 1)
	assert.Equal(t, "Kant", dataset.Philosophers[0].Title)
	assert.Empty(t, dataset.Concepts)
}

func TestJSONParserMalformed(t *testing.T) {
	_, err := (&JSONParser{}).Parse(strings.NewReader(`{"philosophers": [`))
	assert.Error(t, err)
}

func TestCSVParser(t *testing.T) {
	input := `title,year,concepts,influenced_by,era
Socrates,c. 470 BC,Ethics; Epistemology,,Ancient
Plato,c. 428 BC,Ethics,socrates,Ancient
`

	dataset, err := (&CSVParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, dataset.Philosophers, 2)
	socrates := dataset.Philosophers[0]
	assert.Equal(t, "Socrates", socrates.Title)
	assert.Equal(t, "c. 470 BC", socrates.Year)
	assert.Equal(t, []string{"Ethics", "Epistemology"}, socrates.Concepts, "semicolon cells split and trimmed")
	assert.Empty(t, socrates.InfluencedBy)
	assert.Equal(t, 2, socrates.LineNum)
	assert.Equal(t, []string{"socrates"}, dataset.Philosophers[1].InfluencedBy)
	assert.Equal(t, 3, dataset.Philosophers[1].LineNum)
}

func TestCSVParserHeaderCaseInsensitive(t *testing.T) {
	input := "Title, Year\nKant,1724\n"

	dataset, err := (&CSVParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, dataset.Philosophers, 1)
	assert.Equal(t, "Kant", dataset.Philosophers[0].Title)
}

func TestCSVParserMissingRequiredColumn(t *testing.T) {
	_, err := (&CSVParser{}).Parse(strings.NewReader("title,era\nKant,Enlightenment\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "year")
}

func TestYAMLParser(t *testing.T) {
	input := `philosophers:
  - title: Descartes
    year: "1596"
    concepts: [Rationalism, Metaphysics]
  - id: kant
    title: Kant
    year: "1724"
    influenced_by: [descartes]
concepts:
  - name: Rationalism
    category: Knowledge
`

	dataset, err := (&YAMLParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, dataset.Philosophers, 2)
	assert.Equal(t, "Descartes", dataset.Philosophers[0].Title)
	assert.Equal(t, []string{"Rationalism", "Metaphysics"}, dataset.Philosophers[0].Concepts)
	assert.Equal(t, "kant", dataset.Philosophers[1].ID)
	require.Len(t, dataset.Concepts, 1)
	assert.Equal(t, "Knowledge", dataset.Concepts[0].Category)
}

func TestYAMLParserMalformed(t *testing.T) {
	_, err := (&YAMLParser{}).Parse(strings.NewReader("philosophers: [unclosed"))
	assert.Error(t, err)
}
