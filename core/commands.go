package core

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kballard/go-shellquote"
)

// Command is one colon-command. Run mutates the app and may return a tea.Cmd
// for asynchronous work; it must leave the app in VIEW mode semantics (the
// router exits command mode around it).
type Command struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	Run         func(a *App, args []string) tea.Cmd
}

type CommandRegistry struct {
	order  []string
	byName map[string]Command
	alias  map[string]string
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	r := &CommandRegistry{byName: map[string]Command{}, alias: map[string]string{}}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

func (r *CommandRegistry) Register(c Command) {
	if c.Name == "" {
		return
	}
	if _, exists := r.byName[c.Name]; !exists {
		r.order = append(r.order, c.Name)
	}
	r.byName[c.Name] = c
	for _, a := range c.Aliases {
		r.alias[a] = c.Name
	}
}

func (r *CommandRegistry) Lookup(name string) (Command, bool) {
	if canonical, ok := r.alias[name]; ok {
		name = canonical
	}
	c, ok := r.byName[name]
	return c, ok
}

// All returns the commands in registration order, for help rendering.
func (r *CommandRegistry) All() []Command {
	out := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// suggestDistance bounds how far a typo may be from a real command name for
// the "did you mean" hint.
const suggestDistance = 2

// Suggest returns the closest command name within the typo budget.
func (r *CommandRegistry) Suggest(name string) (string, bool) {
	best := ""
	bestDist := suggestDistance + 1
	consider := func(candidate string) {
		d := levenshtein.ComputeDistance(strings.ToLower(name), candidate)
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	for _, n := range r.order {
		consider(n)
	}
	for a := range r.alias {
		consider(a)
	}
	if bestDist > suggestDistance {
		return "", false
	}
	if canonical, ok := r.alias[best]; ok {
		best = canonical
	}
	return best, true
}

// ParseCommandLine tokenizes a command-bar line with shell-style quoting.
// The first token is the command name. An empty line parses to an empty name
// and no error.
func ParseCommandLine(line string) (name string, args []string, err error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", nil, fmt.Errorf("parse command: %w", err)
	}
	if len(words) == 0 {
		return "", nil, nil
	}
	return words[0], words[1:], nil
}

// DefaultCommands is the stock command set. The minimum grammar plus the
// journal and table-maintenance extras.
func DefaultCommands() []Command {
	return []Command{
		{Name: "quit", Aliases: []string{"q"}, Usage: ":q", Description: "quit, terminating all processes",
			Run: func(a *App, _ []string) tea.Cmd { return a.shutdown() }},
		{Name: "run", Usage: ":run", Description: "build and launch the active screen's command",
			Run: func(a *App, _ []string) tea.Cmd { return a.cmdRun() }},
		{Name: "kill", Usage: ":kill <id>|all", Description: "terminate one process or all of them",
			Run: func(a *App, args []string) tea.Cmd { return a.cmdKill(args) }},
		{Name: "ps", Usage: ":ps", Description: "summarize the process table",
			Run: func(a *App, _ []string) tea.Cmd { return a.cmdPS() }},
		{Name: "clear", Usage: ":clear", Description: "drop finished processes from the table",
			Run: func(a *App, _ []string) tea.Cmd { return a.cmdClear() }},
		{Name: "history", Usage: ":history", Description: "show recent run journal entries",
			Run: func(a *App, _ []string) tea.Cmd { return a.cmdHistory() }},
		{Name: "save", Usage: ":save [path]", Description: "save fields to the cache or a file",
			Run: func(a *App, args []string) tea.Cmd { return a.cmdSave(args) }},
		{Name: "import", Usage: ":import <path>", Description: "import field values from a file",
			Run: func(a *App, args []string) tea.Cmd { return a.cmdImport(args) }},
		{Name: "language", Aliases: []string{"lang"}, Usage: ":language <code>", Description: "switch interface language",
			Run: func(a *App, args []string) tea.Cmd { return a.cmdLanguage(args) }},
		{Name: "debug", Usage: ":debug", Description: "toggle debug mode",
			Run: func(a *App, _ []string) tea.Cmd { return a.cmdDebug() }},
		{Name: "help", Usage: ":help", Description: "open help",
			Run: func(a *App, _ []string) tea.Cmd { a.state.EnterHelp(); return nil }},
	}
}
