package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/polarity/pipeline"
	"github.com/revelaction/polarity/score"
	sent "github.com/revelaction/polarity/sentence"
)

func testReport() pipeline.Report {
	return pipeline.Report{
		Entities: []pipeline.EntityReport{
			{
				Name: "Harry",
				Sentences: []sent.Sentence{{Id: 2, Tokens: []sent.Token{
					{Text: "Harry", Tags: []string{"NNP"}},
					{Text: "was"},
					{Text: "brave", Tags: []string{"positive", "JJ"}},
				}}},
				Stats: score.Stats{NumSentences: 1, SentenceScores: []int{1}, Score: 1},
			},
			{Name: "Ron", Stats: score.Stats{}},
		},
	}
}

func TestRendererRender(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	require.NoError(t, r.Render(testReport()))
	assert.Equal(t, "Harry: 1 (1 sentences)\nRon: 0 (0 sentences)\n", buf.String())
}

func TestRendererRenderSentences(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Sentences = true
	r.HasPrefix = false

	report := testReport()
	report.Warnings = []error{pipeline.ErrEmptyInput}

	require.NoError(t, r.Render(report))
	assert.Equal(t,
		"⚠  document has no sentences\n"+
			"Harry/NNP was brave/positive,JJ\n"+
			"Harry: 1 (1 sentences)\n"+
			"Ron: 0 (0 sentences)\n",
		buf.String())
}

func TestRendererColor(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})
	r.HasColor = true

	got := r.SentenceString([]sent.Token{
		{Text: "good", Tags: []string{"positive"}},
		{Text: "awful", Tags: []string{"negative"}},
		{Text: "day", Tags: []string{"NN"}},
	})

	assert.Equal(t, Green+"good"+Off+"/positive "+Red+"awful"+Off+"/negative day/NN", got)
}

func TestNextPrefix(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})
	assert.True(t, r.HasPrefix)
	r.NextPrefix()
	assert.False(t, r.HasPrefix)
}

func TestScores(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Scores(&buf, testReport()))
	assert.Equal(t, "Harry: 1\nRon: 0\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRendererRenderWriteError(t *testing.T) {
	r := NewRenderer(failWriter{})
	r.Sentences = true

	assert.EqualError(t, r.Render(testReport()), "disk full")
	assert.EqualError(t, r.Sentence(nil, ""), "disk full")
}

func TestScoresRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewScoresRenderer(&buf).Render(testReport()))
	assert.Equal(t, "Harry: 1\nRon: 0\n", buf.String())

	assert.Contains(t, SupportedFormats(), FormatScores)
}
