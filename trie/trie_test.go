package trie_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsaviz/engine"
	"github.com/katalvlaran/dsaviz/trie"
)

func execute(t *testing.T, body engine.Body, err error) (*engine.Run, *trie.OpResult) {
	t.Helper()
	require.NoError(t, err)
	run, err := engine.Execute(context.Background(), "trie", body)
	require.NoError(t, err)
	res, err := engine.ResultAs[*trie.OpResult](run)
	require.NoError(t, err)

	return run, res
}

func TestInsert_VisitAndPlace(t *testing.T) {
	tr := trie.New("car")
	body, err := trie.Insert(tr, "  CArt ")
	run, res := execute(t, body, err)

	var got []string
	for _, s := range run.Steps() {
		got = append(got, string(s.Kind)+":"+s.Payload.(trie.Payload).Prefix)
	}
	assert.Equal(t, []string{"visit:c", "visit:ca", "visit:car", "place:cart", "done:cart"}, got)
	assert.False(t, res.Found)
	assert.True(t, res.Trie.Contains("cart"))
	assert.Equal(t, 2, res.Trie.Len())
	assert.False(t, tr.Contains("cart"), "caller's trie is untouched")
}

func TestInsert_DuplicateAndInvalid(t *testing.T) {
	body, err := trie.Insert(trie.New("dog"), "Dog")
	run, res := execute(t, body, err)
	assert.True(t, res.Found)
	assert.Equal(t, engine.KindFound, run.Steps()[run.Len()-1].Kind)
	assert.Equal(t, 1, res.Trie.Len())

	_, err = trie.Insert(trie.New(), "   ")
	assert.ErrorIs(t, err, trie.ErrEmptyWord)
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
	_, err = trie.Insert(nil, "a")
	assert.ErrorIs(t, err, trie.ErrNilTrie)
}

func TestSuggest_SortedAndCapped(t *testing.T) {
	words := []string{"zeta"}
	for i := 11; i >= 0; i-- {
		words = append(words, fmt.Sprintf("pre%02d", i))
	}
	tr := trie.New(words...)

	body, err := trie.Suggest(tr, "pre")
	run, res := execute(t, body, err)

	require.Len(t, res.Suggestions, trie.MaxSuggestions)
	assert.Equal(t, "pre00", res.Suggestions[0])
	assert.Equal(t, "pre09", res.Suggestions[9])
	assert.True(t, res.Found)

	highlights := 0
	for _, s := range run.Steps() {
		if s.Kind == engine.KindHighlight {
			highlights++
		}
	}
	assert.Equal(t, 12, highlights, "every match is shown before the cap applies")
	last := run.Steps()[run.Len()-1]
	assert.Equal(t, engine.KindDone, last.Kind)
	assert.Equal(t, res.Suggestions, last.Payload.(trie.Payload).Suggestions)
}

func TestSuggest_Samples(t *testing.T) {
	tr := trie.New(trie.SampleWords()...)
	assert.Equal(t, 41, tr.Len())

	body, err := trie.Suggest(tr, "Car")
	_, res := execute(t, body, err)
	assert.Equal(t, []string{"car", "card", "care", "careful", "carry"}, res.Suggestions)

	body, err = trie.Suggest(tr, "ban")
	_, res = execute(t, body, err)
	assert.Equal(t, []string{"banana", "band", "bandana", "bank", "banner"}, res.Suggestions)
}

func TestSuggest_EmptyAndMissingPrefix(t *testing.T) {
	tr := trie.New(trie.SampleWords()...)

	body, err := trie.Suggest(tr, "")
	run, res := execute(t, body, err)
	assert.Empty(t, res.Suggestions)
	assert.Equal(t, []engine.Kind{engine.KindDone}, []engine.Kind{run.Steps()[0].Kind})

	body, err = trie.Suggest(tr, "cx")
	run, res = execute(t, body, err)
	assert.Empty(t, res.Suggestions)
	assert.False(t, res.Found)
	last := run.Steps()[run.Len()-1]
	assert.Equal(t, engine.KindNotFound, last.Kind)
	assert.Equal(t, "cx", last.Payload.(trie.Payload).Prefix)
}

func TestWordsAndJSON(t *testing.T) {
	tr := trie.New("b", "a", "ab", "")
	assert.Equal(t, []string{"a", "ab", "b"}, tr.Words())

	data, err := tr.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"words":["a","ab","b"]}`, string(data))
}
