package extractive_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/condense/internal/extractive"
	"github.com/nguyentantai21042004/condense/internal/language"
	"github.com/nguyentantai21042004/condense/internal/logger"
	"github.com/nguyentantai21042004/condense/internal/model"
)

const animals = "Cats are mammals. Dogs are mammals too. The sky is blue."

const longDoc = "Solar panels convert sunlight into electricity. " +
	"Modern solar panels are cheaper than ever before. " +
	"Rivers carry sediment toward the ocean. " +
	"Electricity from solar panels can charge batteries. " +
	"Batteries store electricity for cloudy days. " +
	"Mountains form over millions of years. " +
	"Home batteries pair well with solar panels. " +
	"Owls hunt quietly at night. " +
	"Grid operators buy surplus electricity. " +
	"Penguins cannot fly."

func newEngine(t *testing.T) *extractive.Engine {
	t.Helper()
	bundle, err := language.Load(language.Options{})
	require.NoError(t, err)
	return extractive.New(bundle, logger.Discard())
}

func countSentences(t *testing.T, s string) int {
	t.Helper()
	return strings.Count(s, ". ") + 1
}

func TestSummarizeAnimalsScenario(t *testing.T) {
	e := newEngine(t)

	got, err := e.Summarize(context.Background(), animals, 50)
	require.NoError(t, err)
	assert.Equal(t, "Cats are mammals.", got)
}

func TestSummarizeCountsSentencesEndingInNumbers(t *testing.T) {
	e := newEngine(t)
	text := "Revenue was 5,000 in 2020. Costs were 5,000 in 2021. Weather was fine."

	got, err := e.Summarize(context.Background(), text, 34)
	require.NoError(t, err)
	assert.Equal(t, "Revenue was 5,000 in 2020.", got)

	ranked, err := e.Rank(context.Background(), text, 34)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "revenue 2020", ranked[0].Clean)
	assert.Equal(t, "costs 2021", ranked[1].Clean)
}

func TestSummarizeErrors(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		text       string
		percentage int
		wantErr    error
	}{
		{"empty text", "", 50, model.ErrEmptyInput},
		{"whitespace text", "  \n\t ", 50, model.ErrEmptyInput},
		{"zero percentage", animals, 0, model.ErrInvalidParameter},
		{"negative percentage", animals, -10, model.ErrInvalidParameter},
		{"percentage over 100", animals, 101, model.ErrInvalidParameter},
		{"invalid percentage checked before empty text", "", 0, model.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Summarize(ctx, tt.text, tt.percentage)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, got)
		})
	}
}

func TestSummarizeSingleSentence(t *testing.T) {
	e := newEngine(t)

	for _, p := range []int{1, 10, 50, 99, 100} {
		got, err := e.Summarize(context.Background(), "  Only one sentence lives here.  ", p)
		require.NoError(t, err)
		assert.Equal(t, "Only one sentence lives here.", got, "p=%d", p)
	}
}

func TestSummarizeFullPercentageKeepsEverything(t *testing.T) {
	e := newEngine(t)

	got, err := e.Summarize(context.Background(), animals, 100)
	require.NoError(t, err)
	assert.Equal(t, animals, got)
}

func TestSummarizeSentenceCountAndOrder(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	ranked, err := e.Rank(ctx, longDoc, 100)
	require.NoError(t, err)
	require.Len(t, ranked, 10)

	position := make(map[string]int, len(ranked))
	for _, r := range ranked {
		position[r.Original] = r.Index
	}

	for _, p := range []int{1, 10, 25, 33, 50, 75, 100} {
		got, err := e.Summarize(ctx, longDoc, p)
		require.NoError(t, err)

		want := max(1, 10*p/100)
		assert.Equal(t, want, countSentences(t, got), "p=%d", p)

		last := -1
		for _, s := range strings.SplitAfter(got, ". ") {
			idx, ok := position[strings.TrimSpace(s)]
			require.True(t, ok, "unknown sentence %q", s)
			assert.Greater(t, idx, last, "sentences out of document order at p=%d", p)
			last = idx
		}
	}
}

func TestSummarizePrefersCentralSentences(t *testing.T) {
	e := newEngine(t)

	got, err := e.Summarize(context.Background(), longDoc, 30)
	require.NoError(t, err)
	assert.Contains(t, got, "solar panels")
	assert.NotContains(t, got, "Penguins")
	assert.NotContains(t, got, "Owls")
}

func TestSummarizeIdempotent(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	first, err := e.Summarize(ctx, longDoc, 40)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := e.Summarize(ctx, longDoc, 40)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSummarizeAllStopwordDocument(t *testing.T) {
	e := newEngine(t)

	got, err := e.Summarize(context.Background(), "It is what it is. So it was. And then there were few.", 50)
	require.NoError(t, err)
	assert.Equal(t, "It is what it is.", got)
}

func TestRankReportsCleanFormsAndSelection(t *testing.T) {
	e := newEngine(t)

	ranked, err := e.Rank(context.Background(), animals, 50)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "cats mammals", ranked[0].Clean)
	assert.Equal(t, "dogs mammals", ranked[1].Clean)
	assert.Equal(t, "sky blue", ranked[2].Clean)
	assert.True(t, ranked[0].Selected)
	assert.False(t, ranked[1].Selected)
	assert.False(t, ranked[2].Selected)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.Greater(t, ranked[0].Score, ranked[2].Score)
}

func TestRankValidatesPercentage(t *testing.T) {
	e := newEngine(t)

	_, err := e.Rank(context.Background(), animals, 0)
	assert.ErrorIs(t, err, model.ErrInvalidParameter)
}

func TestSummarizeConcurrent(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	want, err := e.Summarize(ctx, longDoc, 30)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := longDoc
			if i%2 == 1 {
				text = animals
			}
			results[i], _ = e.Summarize(ctx, text, 30)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if i%2 == 0 {
			assert.Equal(t, want, got)
		} else {
			assert.Equal(t, "Cats are mammals.", got)
		}
	}
}

type fixedSplitter []string

func (f fixedSplitter) SplitSentences(string) []string { return f }

type noStopwords struct{}

func (noStopwords) IsStopword(string) bool { return false }

func TestSummarizeNoSentencesFound(t *testing.T) {
	e := extractive.NewWith(fixedSplitter{"   ", ""}, noStopwords{}, logger.Discard())

	_, err := e.Summarize(context.Background(), "???", 50)
	assert.ErrorIs(t, err, model.ErrEmptyInput)
}
