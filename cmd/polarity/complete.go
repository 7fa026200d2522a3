package main

import (
	"fmt"
	"strings"
)

var commands = []string{
	"score",
	"tag",
	"entities",
	"lexicon",
	"query",
	"edit",
	"import-lexicon",
	"export-lexicon",
	"bash",
	"version",
}

var commandFlags = map[string][]string{
	"score":    {"--config", "--lexicon", "--doc", "--chapter", "--log-level", "--format", "--sentences", "--no-color"},
	"tag":      {"--config", "--lexicon", "--doc", "--chapter", "--log-level", "--no-color"},
	"entities": {"--config", "--lexicon", "--doc", "--chapter", "--log-level"},
	"lexicon":  {"--config", "--lexicon"},
	"query":    {"--config", "--lexicon", "--no-color"},

	"export-lexicon": {"--config", "--lexicon", "--merged"},
}

// completeCommand handles the autocompletion requests triggered by the bash completion script.
func completeCommand(args []string, ui UI) error {
	for _, c := range getCompletions(args) {
		_, _ = fmt.Fprintln(ui.Out, c)
	}
	return nil
}

func getCompletions(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	if len(args) < 2 {
		return nil
	}

	// args[0] is "polarity" (binary name from COMP_WORDS[0])
	commandIndex := 1
	cursorIndex := len(args) - 1
	lastWord := args[cursorIndex]

	var completions []string

	// User is typing the command itself
	if cursorIndex == commandIndex {
		for _, c := range commands {
			if strings.HasPrefix(c, lastWord) {
				completions = append(completions, c)
			}
		}
		return completions
	}

	if !strings.HasPrefix(lastWord, "-") {
		return nil
	}

	for _, f := range commandFlags[args[commandIndex]] {
		if strings.HasPrefix(f, lastWord) {
			completions = append(completions, f)
		}
	}

	return completions
}
