// Package proc supervises spawned worker processes. Each record gets its own
// monitor goroutine; every table access is serialized through one mutex held
// only for reads and single-record updates, never across a blocking call.
package proc

import (
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
)

// Status is the per-record lifecycle. Running is the only non-terminal state.
type Status int

const (
	StatusRunning Status = iota
	StatusCompleted
	StatusKilled
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusKilled:
		return "killed"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Record is the tracked lifecycle state of one spawned job. ID is assigned in
// strictly increasing spawn order and never reused; JobID is a UUID used to
// correlate history journal rows across sessions.
type Record struct {
	ID        int
	JobID     string
	PID       int
	Command   string
	Status    Status
	StartTime time.Time
	ExitCode  int // meaningful only in a terminal status
}

// Event notifies a status transition observed by a monitor.
type Event struct {
	RecordID int
	JobID    string
	Status   Status
	ExitCode int
}

type managed struct {
	Record
	cmd    *exec.Cmd
	signal bool // a kill was requested; the monitor classifies the exit as Killed
}

// Manager owns the process table. The zero value is not usable; construct
// with NewManager.
type Manager struct {
	mu      sync.Mutex
	nextID  int
	records []*managed
	notify  func(Event)
}

// NewManager creates a manager. notify, if non-nil, is called from monitor
// goroutines after each terminal transition; it must not touch UI state
// directly (forward a message instead).
func NewManager(notify func(Event)) *Manager {
	return &Manager{nextID: 1, notify: notify}
}

var ErrEmptyCommand = errors.New("empty command")

// Spawn launches argv as a child process, registers a record and starts its
// monitor. It returns as soon as the process has started; completion is
// reported asynchronously through the monitor.
func (m *Manager) Spawn(argv []string) (Record, error) {
	if len(argv) == 0 {
		return Record{}, ErrEmptyCommand
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return Record{}, fmt.Errorf("start %s: %w", argv[0], err)
	}

	m.mu.Lock()
	rec := &managed{
		Record: Record{
			ID:        m.nextID,
			JobID:     uuid.NewString(),
			PID:       cmd.Process.Pid,
			Command:   shellquote.Join(argv...),
			Status:    StatusRunning,
			StartTime: time.Now(),
		},
		cmd: cmd,
	}
	m.nextID++
	m.records = append(m.records, rec)
	snapshot := rec.Record
	m.mu.Unlock()

	go m.monitor(rec)
	return snapshot, nil
}

// monitor blocks until the child exits, then classifies the exit and writes
// the terminal status back under the lock.
func (m *Manager) monitor(rec *managed) {
	err := rec.cmd.Wait()

	m.mu.Lock()
	status := classify(err, rec.signal)
	rec.Status = status
	rec.ExitCode = exitCode(rec.cmd, err)
	ev := Event{RecordID: rec.ID, JobID: rec.JobID, Status: status, ExitCode: rec.ExitCode}
	notify := m.notify
	m.mu.Unlock()

	if notify != nil {
		notify(ev)
	}
}

func classify(waitErr error, signalled bool) Status {
	if signalled {
		return StatusKilled
	}
	if waitErr == nil {
		return StatusCompleted
	}
	var exit *exec.ExitError
	if errors.As(waitErr, &exit) {
		if ws, ok := exit.Sys().(syscall.WaitStatus); ok && ws.Signaled() && ws.Signal() == syscall.SIGTERM {
			return StatusKilled
		}
	}
	return StatusFailed
}

func exitCode(cmd *exec.Cmd, waitErr error) int {
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	if waitErr != nil {
		return -1
	}
	return 0
}

// Kill requests termination of a Running record. It reports whether a live
// process was found and signaled; the transition to Killed is written by the
// monitor once the OS confirms the exit, not here.
func (m *Manager) Kill(id int) bool {
	m.mu.Lock()
	var target *managed
	for _, r := range m.records {
		if r.ID == id && r.Status == StatusRunning {
			target = r
			r.signal = true
			break
		}
	}
	m.mu.Unlock()

	if target == nil || target.cmd.Process == nil {
		return false
	}
	// Signal outside the lock; delivery failure just means the monitor will
	// classify whatever exit actually happens.
	_ = target.cmd.Process.Signal(syscall.SIGTERM)
	return true
}

// KillAll signals every Running record and returns how many were signaled.
func (m *Manager) KillAll() int {
	m.mu.Lock()
	targets := make([]*managed, 0, len(m.records))
	for _, r := range m.records {
		if r.Status == StatusRunning {
			r.signal = true
			targets = append(targets, r)
		}
	}
	m.mu.Unlock()

	count := 0
	for _, r := range targets {
		if r.cmd.Process == nil {
			continue
		}
		_ = r.cmd.Process.Signal(syscall.SIGTERM)
		count++
	}
	return count
}

// List returns a consistent snapshot of the table in spawn order.
func (m *Manager) List() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, len(m.records))
	for i, r := range m.records {
		out[i] = r.Record
	}
	return out
}

// Get returns a snapshot of one record by id.
func (m *Manager) Get(id int) (Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id {
			return r.Record, true
		}
	}
	return Record{}, false
}

// Running counts records still in flight.
func (m *Manager) Running() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.records {
		if r.Status == StatusRunning {
			n++
		}
	}
	return n
}

// ClearFinished drops terminal records from the table, keeping everything
// Running. Returns how many were removed.
func (m *Manager) ClearFinished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.records[:0]
	removed := 0
	for _, r := range m.records {
		if r.Status == StatusRunning {
			kept = append(kept, r)
		} else {
			removed++
		}
	}
	m.records = kept
	return removed
}
