package query

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookfinder/pkg/types"
)

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")

	session := NewSession().
		With(FreeText, "kotlin").
		With(LanguageFilter, "en")

	results := []types.Result{
		{
			Title:    "List of all Android resources in English",
			URL:      "https://example.com/free-programming-books-langs.html#android",
			Language: "English",
			Section:  "Android",
			Listing:  true,
		},
		{
			Author:   "B",
			Title:    "Kotlin Basics",
			URL:      "http://example.com/b",
			Language: "English",
			Section:  "Android",
			Score:    0,
		},
	}

	require.NoError(t, WriteSaveFile(path, session, results))

	sf, err := ReadSaveFile(path)
	require.NoError(t, err)

	assert.Equal(t, session.Params(), sf.Params)
	assert.Equal(t, 2, sf.Summary.Total)
	assert.Equal(t, 1, sf.Summary.Listings)
	assert.False(t, sf.Summary.Timestamp.IsZero())

	require.Len(t, sf.Results, 2)
	assert.True(t, sf.Results[0].Listing)
	assert.Equal(t, "Kotlin Basics", sf.Results[1].Title)
}

func TestSaveFileSessionRebuild(t *testing.T) {
	sf := &SaveFile{Params: map[string]string{
		"searchTerm": "kotlin",
		"lang.code":  "en",
		"legacy.key": "dropped",
	}}

	s := sf.Session()
	assert.Equal(t, "kotlin", s.Get(FreeText))
	assert.Equal(t, "en", s.Get(LanguageFilter))
	assert.Len(t, s.Params(), 2)
}

func TestReadSaveFileMissing(t *testing.T) {
	_, err := ReadSaveFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
