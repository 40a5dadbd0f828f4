// Package dialogue implements the dialogue progression state machine behind
// the conversation overlay. The engine owns line sequencing only; the
// renderer owns glyph-by-glyph reveal timing and reports completion back via
// FinishTyping.
package dialogue

import (
	"context"

	"emberfall/ui/internal/journal"
	"emberfall/ui/internal/telemetry"
	"emberfall/ui/logging"
	dlgevents "emberfall/ui/logging/dialogue"
)

// Status enumerates the progression states of a dialogue session.
type Status string

const (
	// StatusClosed is both the initial and the terminal state; a new Start
	// re-opens the session.
	StatusClosed Status = "closed"
	// StatusTyping means a line is active and its text is still revealing.
	StatusTyping Status = "typing"
	// StatusAwaitingAdvance means the line is fully revealed and the session
	// waits for continue input.
	StatusAwaitingAdvance Status = "awaiting_advance"
	// StatusAwaitingChoice means the line is fully revealed and carries
	// choices; only SelectChoice moves the session forward.
	StatusAwaitingChoice Status = "awaiting_choice"
)

// Choice is one selectable player response on a line.
type Choice struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Action string `json:"action,omitempty"`
}

// Line is one dialogue entry. A line with one or more choices suspends
// auto-advance until a choice is resolved.
type Line struct {
	ID       string   `json:"id"`
	Speaker  string   `json:"speaker"`
	Text     string   `json:"text"`
	Portrait string   `json:"portrait,omitempty"`
	Choices  []Choice `json:"choices,omitempty"`
}

// HasChoices reports whether the line suspends auto-advance.
func (l Line) HasChoices() bool {
	return len(l.Choices) > 0
}

// Config captures the collaborators injected into an engine instance.
type Config struct {
	SessionID string
	Publisher logging.Publisher
	Journal   *journal.Journal
	Telemetry telemetry.Telemetry
}

func (cfg Config) normalized() Config {
	normalized := cfg
	if normalized.SessionID == "" {
		normalized.SessionID = "session"
	}
	if normalized.Publisher == nil {
		normalized.Publisher = logging.NopPublisher()
	}
	if normalized.Telemetry == nil {
		normalized.Telemetry = telemetry.Nop()
	}
	return normalized
}

// Engine owns the line queue and progression status. Invariant: closed
// implies no current line and an empty queue.
type Engine struct {
	cfg    Config
	source logging.SourceRef

	status  Status
	current *Line
	queue   []Line
	version uint64

	subscribers map[uint64]func(Snapshot)
	nextSub     uint64
}

// NewEngine constructs a closed dialogue engine.
func NewEngine(cfg Config) *Engine {
	normalized := cfg.normalized()
	return &Engine{
		cfg: normalized,
		source: logging.SourceRef{
			ID:   normalized.SessionID,
			Kind: logging.SourceKindDialogue,
		},
		status:      StatusClosed,
		subscribers: make(map[uint64]func(Snapshot)),
	}
}

// Snapshot is a point-in-time copy of the session handed to listeners.
type Snapshot struct {
	Open        bool   `json:"open"`
	Status      Status `json:"status"`
	CurrentLine *Line  `json:"currentLine"`
	QueuedLines int    `json:"queuedLines"`
	Version     uint64 `json:"version"`
}

// Snapshot returns a copy of the current session state.
func (e *Engine) Snapshot() Snapshot {
	snapshot := Snapshot{
		Open:        e.status != StatusClosed,
		Status:      e.status,
		QueuedLines: len(e.queue),
		Version:     e.version,
	}
	if e.current != nil {
		line := cloneLine(*e.current)
		snapshot.CurrentLine = &line
	}
	return snapshot
}

// Status reports the progression state.
func (e *Engine) Status() Status {
	return e.status
}

// CurrentLine returns a copy of the active line, if any.
func (e *Engine) CurrentLine() (Line, bool) {
	if e.current == nil {
		return Line{}, false
	}
	return cloneLine(*e.current), true
}

// QueuedLines reports how many lines wait behind the current one.
func (e *Engine) QueuedLines() int {
	return len(e.queue)
}

// Version reports the mutation counter.
func (e *Engine) Version() uint64 {
	return e.version
}

// Subscribe registers a listener invoked with a fresh snapshot after every
// committed transition. The returned function cancels the registration.
func (e *Engine) Subscribe(listener func(Snapshot)) func() {
	if listener == nil {
		return func() {}
	}
	e.nextSub++
	id := e.nextSub
	e.subscribers[id] = listener
	return func() {
		delete(e.subscribers, id)
	}
}

// Start opens a session with the supplied lines. Empty input is a no-op; a
// session already open is restarted with the new lines.
func (e *Engine) Start(ctx context.Context, lines []Line) {
	if len(lines) == 0 {
		return
	}

	first := cloneLine(lines[0])
	e.current = &first
	e.queue = cloneLines(lines[1:])
	e.status = StatusTyping
	e.commit(e.linePatch(), e.statusPatch())

	ids := make([]string, len(lines))
	for i, line := range lines {
		ids[i] = line.ID
	}
	dlgevents.Started(ctx, e.cfg.Publisher, e.source, e.version, dlgevents.StartedPayload{
		LineIDs: ids,
		Lines:   len(lines),
	})
	e.cfg.Telemetry.RecordNotification(string(dlgevents.EventDialogueStarted))
}

// Advance handles the generic continue input.
//
// While typing it force-completes the reveal (a skip, not a queue advance).
// While awaiting a choice it is a no-op: choices resolve via SelectChoice.
// While awaiting advance it pops the next line, or closes when the queue is
// exhausted.
func (e *Engine) Advance(ctx context.Context) {
	switch e.status {
	case StatusTyping:
		e.finishReveal(ctx)
	case StatusAwaitingChoice:
		// Resolved via SelectChoice only.
	case StatusAwaitingAdvance:
		if len(e.queue) > 0 {
			next := e.queue[0]
			e.queue = e.queue[1:]
			e.current = &next
			e.status = StatusTyping
			e.commit(e.linePatch(), e.statusPatch())
			return
		}
		e.close(ctx, "exhausted", 0)
	case StatusClosed:
	}
}

// FinishTyping is the renderer's typing-complete report or an explicit
// skip-typing request. Outside of typing it is a no-op.
func (e *Engine) FinishTyping(ctx context.Context) {
	if e.status != StatusTyping {
		return
	}
	e.finishReveal(ctx)
}

// SelectChoice resolves a choice on the current line by id. A choice carrying
// an action token is forwarded to the game-logic system; either way the
// session closes without resuming the remaining queue. Unknown ids and calls
// outside awaiting-choice are no-ops.
func (e *Engine) SelectChoice(ctx context.Context, choiceID string) {
	if e.status != StatusAwaitingChoice || e.current == nil {
		return
	}
	var selected *Choice
	for i := range e.current.Choices {
		if e.current.Choices[i].ID == choiceID {
			selected = &e.current.Choices[i]
			break
		}
	}
	if selected == nil {
		return
	}

	if selected.Action != "" {
		dlgevents.ChoiceResolved(ctx, e.cfg.Publisher, e.source, e.version, dlgevents.ChoiceResolvedPayload{
			ChoiceID: selected.ID,
			Action:   selected.Action,
		})
		e.cfg.Telemetry.RecordNotification(string(dlgevents.EventChoiceResolved))
	}
	e.close(ctx, "choice", len(e.queue))
}

// Close force-terminates the session from any state. Closing a closed
// session is a no-op.
func (e *Engine) Close(ctx context.Context) {
	if e.status == StatusClosed {
		return
	}
	e.close(ctx, "cancelled", len(e.queue))
}

func (e *Engine) finishReveal(ctx context.Context) {
	lineID := ""
	if e.current != nil {
		lineID = e.current.ID
	}
	if e.current != nil && e.current.HasChoices() {
		e.status = StatusAwaitingChoice
	} else {
		e.status = StatusAwaitingAdvance
	}
	e.commit(e.statusPatch())

	dlgevents.TypingSkipped(ctx, e.cfg.Publisher, e.source, e.version, dlgevents.TypingSkippedPayload{
		LineID: lineID,
	})
	e.cfg.Telemetry.RecordNotification(string(dlgevents.EventTypingSkipped))
}

func (e *Engine) close(ctx context.Context, reason string, discarded int) {
	e.current = nil
	e.queue = nil
	e.status = StatusClosed
	e.commit(e.linePatch(), e.statusPatch())

	dlgevents.Ended(ctx, e.cfg.Publisher, e.source, e.version, dlgevents.EndedPayload{
		Reason:         reason,
		DiscardedLines: discarded,
	})
	e.cfg.Telemetry.RecordNotification(string(dlgevents.EventDialogueEnded))
}

// commit bumps the version, stamps and appends the staged patches, and
// notifies listeners.
func (e *Engine) commit(patches ...journal.Patch) {
	e.version++
	if e.cfg.Journal != nil {
		for _, patch := range patches {
			patch.Source = e.cfg.SessionID
			patch.Version = e.version
			e.cfg.Journal.AppendPatch(patch)
		}
	}
	if len(e.subscribers) == 0 {
		return
	}
	snapshot := e.Snapshot()
	for _, listener := range e.subscribers {
		listener(snapshot)
	}
}

func (e *Engine) linePatch() journal.Patch {
	payload := journal.LinePayload{}
	if e.current != nil {
		payload = journal.LinePayload{
			LineID:  e.current.ID,
			Speaker: e.current.Speaker,
			Text:    e.current.Text,
			Choices: len(e.current.Choices),
		}
	}
	return journal.Patch{Kind: journal.PatchDialogueLine, Payload: payload}
}

func (e *Engine) statusPatch() journal.Patch {
	return journal.Patch{
		Kind:    journal.PatchDialogueStatus,
		Payload: journal.StatusPayload{Status: string(e.status)},
	}
}

func cloneLine(line Line) Line {
	cloned := line
	if len(line.Choices) > 0 {
		cloned.Choices = append([]Choice(nil), line.Choices...)
	}
	return cloned
}

func cloneLines(lines []Line) []Line {
	if len(lines) == 0 {
		return nil
	}
	cloned := make([]Line, len(lines))
	for i, line := range lines {
		cloned[i] = cloneLine(line)
	}
	return cloned
}
