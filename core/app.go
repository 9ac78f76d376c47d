package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sepdash/internal/cache"
	"github.com/jask/sepdash/internal/config"
	"github.com/jask/sepdash/internal/history"
	"github.com/jask/sepdash/internal/i18n"
	"github.com/jask/sepdash/internal/proc"
)

// ProcessEventMsg carries a supervisor status transition into the update
// loop. The monitor goroutine sends it through the program, never by touching
// the model.
type ProcessEventMsg struct {
	Event proc.Event
}

// ShutdownMsg requests an orderly exit: terminate children, persist the field
// cache, quit. Sent by :q, ctrl+c and OS signals alike so there is exactly
// one shutdown path.
type ShutdownMsg struct{}

// App is the bubbletea model for the dashboard. All mutation happens inside
// Update on the program goroutine.
type App struct {
	cfg      config.Config
	reg      *Registry
	keys     *KeyRegistry
	commands *CommandRegistry
	cat      *i18n.Catalog
	procs    *proc.Manager
	hist     *history.Store // nil when journaling is off or the db failed to open

	state    UIState
	screenID string

	width  int
	height int

	status    string
	statusErr bool
	quitting  bool
}

// NewApp wires the model. hist may be nil; every journal access checks.
func NewApp(cfg config.Config, reg *Registry, procs *proc.Manager, hist *history.Store, cat *i18n.Catalog, screenID string) *App {
	if _, err := reg.Screen(screenID); err != nil {
		screenID = ScreenInference
	}
	return &App{
		cfg:      cfg,
		reg:      reg,
		keys:     NewKeyRegistry(DefaultKeyBindings()),
		commands: NewCommandRegistry(DefaultCommands()),
		cat:      cat,
		procs:    procs,
		hist:     hist,
		state:    NewUIState(cfg.UI.Debug),
		screenID: screenID,
	}
}

func (a *App) Init() tea.Cmd { return nil }

// State exposes the interaction state for tests.
func (a *App) State() *UIState { return &a.state }

// Status reports the current status line and whether it is an error.
func (a *App) Status() (string, bool) { return a.status, a.statusErr }

// ScreenID reports the active screen.
func (a *App) ScreenID() string { return a.screenID }

func (a *App) SetStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) SetError(msg string) {
	a.status = msg
	a.statusErr = true
}

func (a *App) currentScreen() *Screen {
	s, err := a.reg.Screen(a.screenID)
	if err != nil {
		return nil
	}
	return s
}

func (a *App) visible() []*Field {
	return a.reg.VisibleFields(a.screenID, a.state.Debug)
}

func (a *App) saveCache() error {
	return cache.Save(a.cfg.Cache.Path, a.reg.ExportValues())
}

// shutdown is the single exit path: signal every child, flush the cache, and
// quit. Monitors for signaled children keep running until process exit; their
// journal rows may stay "running", which the journal tolerates.
func (a *App) shutdown() tea.Cmd {
	a.procs.KillAll()
	_ = a.saveCache()
	a.quitting = true
	return tea.Quit
}

// entryFor resolves the worker entry script, preferring the config override.
func (a *App) entryFor(s *Screen) string {
	switch s.ID {
	case ScreenInference:
		if a.cfg.Worker.InferenceEntry != "" {
			return a.cfg.Worker.InferenceEntry
		}
	case ScreenTrain:
		if a.cfg.Worker.TrainEntry != "" {
			return a.cfg.Worker.TrainEntry
		}
	}
	return s.Entry
}

func (a *App) cmdRun() tea.Cmd {
	s := a.currentScreen()
	if s == nil {
		a.SetError(a.cat.T("process_error"))
		return nil
	}
	args := BuildArgs(s, a.reg.ScreenFields(s.ID))
	if len(args) == 0 {
		a.SetError(a.cat.T("no_args"))
		return nil
	}

	// Persist the fields that produced this launch before spawning.
	_ = a.saveCache()

	argv := make([]string, 0, len(a.cfg.Worker.Terminal)+2+len(args))
	argv = append(argv, a.cfg.Worker.Terminal...)
	argv = append(argv, a.cfg.Worker.Program, a.entryFor(s))
	argv = append(argv, args...)

	rec, err := a.procs.Spawn(argv)
	if err != nil {
		a.SetError(fmt.Sprintf("%s: %v", a.cat.T("process_error"), err))
		return nil
	}
	a.SetStatus(fmt.Sprintf("%s (id=%d pid=%d)", a.cat.T("process_created"), rec.ID, rec.PID))
	if a.hist != nil {
		// Journaling is best-effort; a broken db never blocks a launch.
		_ = a.hist.RecordStart(rec.JobID, s.ID, rec.Command, rec.PID, rec.StartTime)
	}
	return nil
}

func (a *App) cmdKill(args []string) tea.Cmd {
	if len(args) != 1 {
		a.SetError("usage: kill <id>|all")
		return nil
	}
	if args[0] == "all" {
		n := a.procs.KillAll()
		a.SetStatus(fmt.Sprintf("%s (%d)", a.cat.T("kill_all_success"), n))
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || !a.procs.Kill(id) {
		a.SetError(fmt.Sprintf("%s: %s", a.cat.T("kill_error"), args[0]))
		return nil
	}
	a.SetStatus(fmt.Sprintf("%s (id=%d)", a.cat.T("kill_success"), id))
	return nil
}

func (a *App) cmdPS() tea.Cmd {
	records := a.procs.List()
	if len(records) == 0 {
		a.SetStatus(a.cat.T("process_none"))
		return nil
	}
	running := 0
	for _, r := range records {
		if r.Status == proc.StatusRunning {
			running++
		}
	}
	a.SetStatus(fmt.Sprintf("%s %d (%s %d)", a.cat.T("processes"), len(records), a.cat.T("status_running"), running))
	return nil
}

func (a *App) cmdClear() tea.Cmd {
	n := a.procs.ClearFinished()
	a.SetStatus(fmt.Sprintf("%s (%d)", a.cat.T("cleared"), n))
	return nil
}

func (a *App) cmdHistory() tea.Cmd {
	if a.hist == nil {
		a.SetError(a.cat.T("history_empty"))
		return nil
	}
	entries, err := a.hist.Recent(10)
	if err != nil {
		a.SetError(err.Error())
		return nil
	}
	if len(entries) == 0 {
		a.SetStatus(a.cat.T("history_empty"))
		return nil
	}
	last := entries[0]
	a.SetStatus(fmt.Sprintf("%d runs; %s [%s] %s",
		len(entries), last.StartedAt.Local().Format(time.Stamp), last.Status, last.Command))
	return nil
}

func (a *App) cmdSave(args []string) tea.Cmd {
	path := a.cfg.Cache.Path
	explicit := len(args) > 0
	if explicit {
		path = args[0]
	}
	if err := cache.Save(path, a.reg.ExportValues()); err != nil {
		a.SetError(err.Error())
		return nil
	}
	if explicit {
		a.SetStatus(fmt.Sprintf("%s %s", a.cat.T("saved_to"), path))
	} else {
		a.SetStatus(a.cat.T("saved_cache"))
	}
	return nil
}

func (a *App) cmdImport(args []string) tea.Cmd {
	if len(args) != 1 {
		a.SetError(a.cat.T("import_usage"))
		return nil
	}
	values, err := cache.Load(args[0])
	if err != nil {
		a.SetError(err.Error())
		return nil
	}
	n := a.reg.ImportValues(values)
	a.state.ClampIndex(len(a.visible()))
	a.SetStatus(fmt.Sprintf("%s %s (%d)", a.cat.T("imported_from"), args[0], n))
	return nil
}

func (a *App) cmdLanguage(args []string) tea.Cmd {
	if len(args) != 1 {
		a.SetError(fmt.Sprintf("%s: %s", a.cat.T("language_usage"), strings.Join(i18n.Languages(), ", ")))
		return nil
	}
	if err := a.cat.SetLanguage(args[0]); err != nil {
		a.SetError(fmt.Sprintf("%s: %s", a.cat.T("language_usage"), strings.Join(i18n.Languages(), ", ")))
		return nil
	}
	a.SetStatus(fmt.Sprintf("%s %s", a.cat.T("language_switched"), args[0]))
	return nil
}

func (a *App) cmdDebug() tea.Cmd {
	a.state.Debug = !a.state.Debug
	a.state.ClampIndex(len(a.visible()))
	if a.state.Debug {
		a.SetStatus(a.cat.T("debug_on"))
	} else {
		a.SetStatus(a.cat.T("debug_off"))
	}
	return nil
}

// executeCommand parses and dispatches one command-bar line. Unknown names
// get a localized message, with a closest-match hint when a plausible typo is
// found; nothing else changes.
func (a *App) executeCommand(line string) tea.Cmd {
	name, args, err := ParseCommandLine(line)
	if err != nil {
		a.SetError(err.Error())
		return nil
	}
	if name == "" {
		return nil
	}
	cmd, ok := a.commands.Lookup(name)
	if !ok {
		msg := fmt.Sprintf("%s: %s", a.cat.T("unknown_command"), name)
		if hint, found := a.commands.Suggest(name); found {
			msg += fmt.Sprintf(" (%s?)", hint)
		}
		a.SetError(msg)
		return nil
	}
	return cmd.Run(a, args)
}
