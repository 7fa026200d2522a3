package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/polarity/pipeline"
	sent "github.com/revelaction/polarity/sentence"
)

// JSONRenderer writes a pipeline report as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

type jsonReport struct {
	Title        string       `json:"title,omitempty"`
	NumSentences int          `json:"num_sentences"`
	Entities     []jsonEntity `json:"entities"`
	Unattributed []string     `json:"unattributed"`
	Warnings     []string     `json:"warnings"`
}

type jsonEntity struct {
	Name      string         `json:"name"`
	Score     int            `json:"score"`
	Positive  int            `json:"positive"`
	Negative  int            `json:"negative"`
	Sentences []jsonSentence `json:"sentences"`
}

type jsonSentence struct {
	Id     int          `json:"id"`
	Text   string       `json:"text"`
	Score  int          `json:"score"`
	Tokens []sent.Token `json:"tokens"`
}

// Render serializes the report as a JSON object.
func (r *JSONRenderer) Render(report pipeline.Report) error {
	out := jsonReport{
		Title:        report.Doc.Title,
		NumSentences: report.NumSentences,
		Entities:     []jsonEntity{},
		Unattributed: []string{},
		Warnings:     []string{},
	}

	out.Unattributed = append(out.Unattributed, report.Unattributed...)

	for _, w := range report.Warnings {
		out.Warnings = append(out.Warnings, w.Error())
	}

	for _, er := range report.Entities {
		je := jsonEntity{
			Name:      er.Name,
			Score:     er.Score(),
			Positive:  er.Stats.NumPositive,
			Negative:  er.Stats.NumNegative,
			Sentences: []jsonSentence{},
		}

		for i, s := range er.Sentences {
			je.Sentences = append(je.Sentences, jsonSentence{
				Id:     s.Id,
				Text:   s.Text,
				Score:  er.Stats.SentenceScores[i],
				Tokens: s.Tokens,
			})
		}

		out.Entities = append(out.Entities, je)
	}

	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// compile-time interface check
var _ ReportRenderer = (*JSONRenderer)(nil)
