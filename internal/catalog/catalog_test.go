package catalog_test

import (
	"strings"
	"testing"

	"go_vocab_trivia/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDifficultyRules(t *testing.T) {
	tests := []struct {
		stage      uint
		difficulty int
		rangeLabel string
	}{
		{1, 1, "1-2"},
		{3, 1, "1-2"},
		{4, 2, "2-3"},
		{6, 2, "2-3"},
		{7, 3, "3"},
		{10, 3, "3"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.difficulty, catalog.DifficultyFor(tc.stage), "stage %d", tc.stage)
		assert.Equal(t, tc.rangeLabel, catalog.DifficultyRangeFor(tc.stage), "stage %d", tc.stage)

		stage := catalog.StageFor(tc.stage)
		assert.Equal(t, tc.stage, stage.StageID)
		assert.Equal(t, int(tc.stage), stage.OrderIndex)
		assert.Equal(t, tc.rangeLabel, stage.DifficultyRange)
	}
}

func TestDedupe(t *testing.T) {
	seen := map[string]struct{}{}

	stage1 := catalog.Dedupe([]catalog.Entry{
		{Term: "Apple", Translation: "りんご"},
		{Term: " apple ", Translation: "林檎"},
		{Term: "book", Translation: "本"},
		{Term: "", Translation: "空"},
		{Term: "pen", Translation: " "},
	}, seen)
	require.Len(t, stage1, 2)
	assert.Equal(t, "Apple", stage1[0].Term)
	assert.Equal(t, "りんご", stage1[0].Translation)
	assert.Equal(t, "book", stage1[1].Term)

	// 下位ステージの単語は除外される
	stage2 := catalog.Dedupe([]catalog.Entry{
		{Term: "BOOK", Translation: "本"},
		{Term: "chair", Translation: "椅子"},
	}, seen)
	require.Len(t, stage2, 1)
	assert.Equal(t, "chair", stage2[0].Term)
}

func TestReadCSV(t *testing.T) {
	input := "term,translation,example_sentence\n" +
		"apple,りんご,I eat an apple.\n" +
		"book,本\n" +
		"broken\n"

	entries, err := catalog.ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "apple", entries[0].Term)
	require.NotNil(t, entries[0].ExampleSentence)
	assert.Equal(t, "I eat an apple.", *entries[0].ExampleSentence)
	assert.Nil(t, entries[1].ExampleSentence)
}

func TestReadJSON(t *testing.T) {
	input := `[{"term":"apple","translation":"りんご","example_sentence":"An apple a day."},{"term":"book","translation":"本"}]`

	entries, err := catalog.ReadJSON(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.NotNil(t, entries[0].ExampleSentence)
	assert.Nil(t, entries[1].ExampleSentence)

	_, err = catalog.ReadJSON(strings.NewReader(`{"term":`))
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"term", "translation", "example_sentence"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"apple", "りんご", "I like apples."}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"book", "本"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	entries, err := catalog.ReadXLSX(buf)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "apple", entries[0].Term)
	require.NotNil(t, entries[0].ExampleSentence)
	assert.Equal(t, "book", entries[1].Term)
	assert.Equal(t, "本", entries[1].Translation)
}
