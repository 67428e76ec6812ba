package core

import (
	"context"
	"strconv"
	"strings"
)

// Action is a menu entry
type Action int

const (
	ActionNone Action = iota
	ActionSearchCVE
	ActionSearchNew
	ActionSearchDate
	ActionSearchKeyword
	ActionHelp
	ActionExit
)

// Actions lists the menu entries in display order
var Actions = []Action{
	ActionSearchCVE,
	ActionSearchNew,
	ActionSearchDate,
	ActionSearchKeyword,
	ActionHelp,
	ActionExit,
}

func (a Action) String() string {
	switch a {
	case ActionSearchCVE:
		return "cve"
	case ActionSearchNew:
		return "new"
	case ActionSearchDate:
		return "date"
	case ActionSearchKeyword:
		return "keyword"
	case ActionHelp:
		return "help"
	case ActionExit:
		return "exit"
	default:
		return "none"
	}
}

// Title is the menu label
func (a Action) Title() string {
	switch a {
	case ActionSearchCVE:
		return "Search for a specific CVE"
	case ActionSearchNew:
		return "Search for new CVEs"
	case ActionSearchDate:
		return "Search for CVEs by specific date"
	case ActionSearchKeyword:
		return "Search repositories by keyword"
	case ActionHelp:
		return "Help"
	case ActionExit:
		return "Exit"
	default:
		return ""
	}
}

// Description is the help line for the action
func (a Action) Description() string {
	switch a {
	case ActionSearchCVE:
		return "Search for a specific CVE by entering its ID."
	case ActionSearchNew:
		return "Search for new CVEs created since the last search."
	case ActionSearchDate:
		return "Search for CVEs created on a specific date."
	case ActionSearchKeyword:
		return "Search for repositories using keywords."
	case ActionExit:
		return "Exit the program."
	default:
		return ""
	}
}

// ParseAction accepts a menu number (1-6) or an action name
func ParseAction(s string) (Action, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(Actions) {
			return Actions[n-1], true
		}

		return ActionNone, false
	}

	for _, a := range Actions {
		if a.String() == s {
			return a, true
		}
	}

	return ActionNone, false
}

// Chooser asks the operator for the next menu action
type Chooser interface {
	Choose(ctx context.Context) (Action, error)
}
