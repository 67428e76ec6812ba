package ui

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/inovacc/cvehunt/internal/model"
)

// ExitKeyword ends the selection loop
const ExitKeyword = "exit"

const (
	selectPrompt     = "Enter the number of the repository to clone (or 'exit' to quit)"
	msgInvalidNumber = "Invalid number. Please try again."
	msgInvalidInput  = "Invalid input. Please enter a number or 'exit'."
)

// SelectionKind classifies one answer to the selection prompt
type SelectionKind int

const (
	SelectionInvalid SelectionKind = iota
	SelectionIndex
	SelectionExit
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionIndex:
		return "index"
	case SelectionExit:
		return "exit"
	default:
		return "invalid"
	}
}

// Selection is the parsed answer to the selection prompt
type Selection struct {
	Kind SelectionKind

	// Index is zero-based and only set for SelectionIndex
	Index int

	// Message explains why the answer is invalid
	Message string
}

// ParseSelection interprets input against a list of count entries.
// Numbers are 1-indexed.
func ParseSelection(input string, count int) Selection {
	input = strings.TrimSpace(input)

	if strings.EqualFold(input, ExitKeyword) {
		return Selection{Kind: SelectionExit}
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return Selection{Kind: SelectionInvalid, Message: msgInvalidInput}
	}

	if n < 1 || n > count {
		return Selection{Kind: SelectionInvalid, Message: msgInvalidNumber}
	}

	return Selection{Kind: SelectionIndex, Index: n - 1}
}

// SelectFunc is called for every repository the operator picks
type SelectFunc func(ctx context.Context, repo model.Repository)

// Presenter renders search results and runs the selection loop
type Presenter struct {
	console  *Console
	prompter Prompter
}

// NewPresenter creates a presenter
func NewPresenter(console *Console, prompter Prompter) *Presenter {
	return &Presenter{console: console, prompter: prompter}
}

// PresentAndSelect shows repos and prompts until the operator exits.
// An empty list prints emptyMsg and returns without prompting. Every valid
// selection calls onSelect and the loop keeps going, so several repositories
// can be cloned from one search.
func (p *Presenter) PresentAndSelect(ctx context.Context, repos []model.Repository, title, emptyMsg string, onSelect SelectFunc) error {
	if len(repos) == 0 {
		p.console.Error("%s", emptyMsg)
		return nil
	}

	p.console.Println(RenderTable(title, repos))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		answer, err := p.prompter.Ask(selectPrompt, ExitKeyword)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		sel := ParseSelection(answer, len(repos))

		switch sel.Kind {
		case SelectionExit:
			return nil
		case SelectionIndex:
			onSelect(ctx, repos[sel.Index])
		default:
			p.console.Error("%s", sel.Message)
		}
	}
}
