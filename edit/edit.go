package edit

import (
	"errors"
	"fmt"
	"io"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/revelaction/polarity/lexicon"
	"github.com/revelaction/polarity/storage"
)

const (
	actionAdd    = 1
	actionDelete = 0
)

// Handler edits one lexicon source interactively. The line "+ not bad
// positive" adds the label to the expression, "- not bad" removes it.
type Handler struct {
	Path string

	Repo storage.LexiconRepository
	Out  io.Writer

	source lexicon.Source
}

func NewHandler(path string, repo storage.LexiconRepository, out io.Writer) *Handler {
	return &Handler{
		Path: path,
		Repo: repo,
		Out:  out,
	}
}

// Load reads the source to edit.
func (h *Handler) Load() error {
	src, err := h.Repo.ReadSource(h.Path)
	if err != nil {
		return err
	}

	h.source = src
	return nil
}

func (h *Handler) Run() error {
	if err := h.Load(); err != nil {
		return err
	}

	fmt.Fprintln(h.Out, "🔑 + expression label, - expression, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer(),
			prompt.OptionTitle("polarity edit"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)

		if err := h.Apply(in); err != nil {
			fmt.Fprintf(h.Out, "❌ %s\n", err)
			continue
		}

		if err := h.Repo.WriteSource(h.Path, h.source); err != nil {
			return err
		}
	}
}

// Apply parses one edit line and changes the in-memory source.
func (h *Handler) Apply(in string) error {
	expr, label, action, err := parse(in)
	if err != nil {
		return err
	}

	idx := h.index(expr)

	if action == actionDelete {
		if idx < 0 {
			return errors.New("Expression does not exist.")
		}

		h.source.Entries = append(h.source.Entries[:idx], h.source.Entries[idx+1:]...)
		return nil
	}

	if idx < 0 {
		h.source.Entries = append(h.source.Entries, lexicon.Entry{Expression: expr, Labels: []string{label}})
		return nil
	}

	for _, l := range h.source.Entries[idx].Labels {
		if l == label {
			return errors.New("Expression already has the label.")
		}
	}

	h.source.Entries[idx].Labels = append(h.source.Entries[idx].Labels, label)
	return nil
}

// Source returns the edited source.
func (h *Handler) Source() lexicon.Source {
	return h.source
}

func (h *Handler) index(expr string) int {
	for i, e := range h.source.Entries {
		if lexicon.Normalize(e.Expression) == expr {
			return i
		}
	}

	return -1
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		if len(befCursor) < 2 {
			return s
		}

		rest := lexicon.Normalize(befCursor[1:])
		if rest == "" {
			return s
		}

		for _, e := range h.source.Entries {
			expr := lexicon.Normalize(e.Expression)
			// Do not show sugestion at the end of the text
			if strings.HasPrefix(expr, rest) && len(rest) < len(expr) {
				s = append(s, prompt.Suggest{Text: expr, Description: strings.Join(e.Labels, ",")})
			}
		}

		return s
	}
}

// parse reads "+ words... label" or "- words...".
func parse(in string) (string, string, int, error) {
	tokens := strings.Fields(in)
	if len(tokens) == 0 {
		return "", "", actionAdd, errors.New("No action given.")
	}

	switch tokens[0] {
	case "+":
		if len(tokens) < 3 {
			return "", "", actionAdd, errors.New("Expected: + expression label")
		}

		expr := lexicon.Normalize(strings.Join(tokens[1:len(tokens)-1], " "))
		return expr, tokens[len(tokens)-1], actionAdd, nil
	case "-":
		if len(tokens) < 2 {
			return "", "", actionDelete, errors.New("No expression given.")
		}

		return lexicon.Normalize(strings.Join(tokens[1:], " ")), "", actionDelete, nil
	}

	return "", "", actionAdd, fmt.Errorf("unknown action %q, use + or -", tokens[0])
}
