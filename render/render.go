package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/polarity/pipeline"
	"github.com/revelaction/polarity/score"
	sent "github.com/revelaction/polarity/sentence"
)

const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatScores = "scores"
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
)

func SupportedFormats() []string {
	return []string{FormatText, FormatJSON, FormatScores}
}

// ReportRenderer writes a pipeline report.
type ReportRenderer interface {
	Render(pipeline.Report) error
}

// Renderer writes tagged sentences and scores as text.
type Renderer struct {
	W io.Writer

	HasColor bool

	// HasPrefix prints the sentence id and score before each sentence
	HasPrefix bool

	// Sentences prints the tagged sentences of each entity, not only the
	// scores
	Sentences bool
}

var _ ReportRenderer = (*Renderer)(nil)

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w, HasPrefix: true}
}

// Render writes one labelled score line per entity, and the tagged
// sentences if enabled.
func (r *Renderer) Render(report pipeline.Report) error {
	for _, w := range report.Warnings {
		if _, err := fmt.Fprintf(r.W, "⚠  %v\n", w); err != nil {
			return err
		}
	}

	for _, er := range report.Entities {
		if r.Sentences {
			for i, s := range er.Sentences {
				prefix := ""
				if r.HasPrefix {
					prefix = r.prefix(er.Name, s.Id, er.Stats.SentenceScores[i])
				}
				if err := r.Sentence(s.Tokens, prefix); err != nil {
					return err
				}
			}
		}

		if _, err := fmt.Fprintln(r.W, r.ScoreLine(er)); err != nil {
			return err
		}
	}

	return nil
}

// ScoreLine is the labelled score of an entity: "Harry: -3 (12 sentences)".
func (r *Renderer) ScoreLine(er pipeline.EntityReport) string {
	name := er.Name
	if r.HasColor {
		name = Yellow256 + name + Off
	}

	return fmt.Sprintf("%s: %d (%d sentences)", name, er.Score(), er.Stats.NumSentences)
}

// Sentence writes the tokens of a tagged sentence, each followed by its tags.
func (r *Renderer) Sentence(tokens []sent.Token, prefix string) error {
	_, err := fmt.Fprintf(r.W, "%s%s\n", prefix, r.SentenceString(tokens))
	return err
}

func (r *Renderer) SentenceString(tokens []sent.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, r.token(t))
	}

	return strings.ReplaceAll(strings.Join(parts, " "), "\n", " ")
}

func (r *Renderer) token(t sent.Token) string {
	if len(t.Tags) == 0 {
		return t.Text
	}

	text := t.Text
	if r.HasColor {
		switch v := score.Token(t); {
		case v > 0:
			text = Green + text + Off
		case v < 0:
			text = Red + text + Off
		}
	}

	return fmt.Sprintf("%s/%s", text, strings.Join(t.Tags, ","))
}

func (r *Renderer) prefix(name string, id, sc int) string {
	if r.HasColor {
		return fmt.Sprintf("[%s %4d %+3d] ✍  ", Grey256+fmt.Sprintf("%-10s", name)+Off, id, sc)
	}

	return fmt.Sprintf("[%-10s %4d %+3d] ✍  ", name, id, sc)
}

// NextPrefix toggles the sentence prefix.
func (r *Renderer) NextPrefix() {
	r.HasPrefix = !r.HasPrefix
}

// ScoresRenderer writes only the labelled final scores.
type ScoresRenderer struct {
	W io.Writer
}

var _ ReportRenderer = (*ScoresRenderer)(nil)

func NewScoresRenderer(w io.Writer) *ScoresRenderer {
	return &ScoresRenderer{W: w}
}

func (r *ScoresRenderer) Render(report pipeline.Report) error {
	return Scores(r.W, report)
}

// Scores writes one "name: score" line per entity, in report order.
func Scores(w io.Writer, report pipeline.Report) error {
	for _, er := range report.Entities {
		if _, err := fmt.Fprintf(w, "%s: %d\n", er.Name, er.Score()); err != nil {
			return err
		}
	}

	return nil
}
