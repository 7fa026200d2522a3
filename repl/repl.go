package repl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/polarity/entity"
	"github.com/revelaction/polarity/lexicon"
	"github.com/revelaction/polarity/nlp"
	"github.com/revelaction/polarity/render"
	"github.com/revelaction/polarity/score"
	"github.com/revelaction/polarity/tagger"
)

const (
	completionThreshold = 2

	quit = "quit"
)

// Handler runs the interactive scorer: each line typed is analyzed, tagged
// against the lexicon and printed with its score and entities.
type Handler struct {
	Lexicon  *lexicon.Lexicon
	Analyzer nlp.Analyzer
	Filter   *entity.Filter
	Renderer *render.Renderer
	Out      io.Writer

	tagger *tagger.Tagger
}

func NewHandler(lex *lexicon.Lexicon, an nlp.Analyzer, table entity.Table, r *render.Renderer, out io.Writer) *Handler {
	return &Handler{
		Lexicon:  lex,
		Analyzer: an,
		Filter:   entity.NewFilter(table),
		Renderer: r,
		Out:      out,
		tagger:   tagger.New(lex),
	}
}

func (h *Handler) Run(ctx context.Context) error {

	fmt.Fprintln(h.Out, "🔑 Ctrl+X: Toggle prefix, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer(),
			prompt.OptionTitle("polarity query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintln(h.Out, "Prefix set to "+fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		if in == quit {
			return nil
		}

		if strings.TrimSpace(in) == "" {
			continue
		}

		history = append(history, in)

		if err := h.Eval(ctx, in); err != nil {
			fmt.Fprintf(h.Out, "❌ %s\n", err)
		}
	}
}

// Eval scores one input line and writes each of its sentences.
func (h *Handler) Eval(ctx context.Context, in string) error {
	analyses, err := h.Analyzer.Analyze(ctx, in)
	if err != nil {
		return err
	}

	for _, s := range h.tagger.Tag(nlp.Sentences(analyses)) {
		prefix := ""
		if h.Renderer.HasPrefix {
			prefix = fmt.Sprintf("%+3d ✍  ", score.Sentence(s))
		}

		if err := h.Renderer.Sentence(s.Tokens, prefix); err != nil {
			return err
		}

		if names := h.Filter.Entities(s); len(names) > 0 {
			fmt.Fprintf(h.Out, "      🏷  %s\n", strings.Join(names, ", "))
		}
	}

	return nil
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		return h.suggest(in.GetWordBeforeCursor())
	}
}

// suggest completes the word before the cursor with lexicon expressions.
func (h *Handler) suggest(word string) []prompt.Suggest {
	s := []prompt.Suggest{}
	if len(word) < completionThreshold {
		return s
	}

	for _, expr := range h.Lexicon.WithPrefix(word) {
		labels, _ := h.Lexicon.Lookup(expr)
		s = append(s, prompt.Suggest{Text: expr, Description: strings.Join(labels, ",")})
	}

	return s
}
