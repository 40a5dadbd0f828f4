package dialogue

import (
	"context"

	"emberfall/ui/logging"
)

const (
	// EventDialogueStarted is emitted when a session opens with a line list.
	EventDialogueStarted logging.EventType = "dialogue.started"
	// EventDialogueEnded is emitted whenever the session returns to closed.
	EventDialogueEnded logging.EventType = "dialogue.ended"
	// EventChoiceResolved is emitted when a selected choice carries an action
	// token for the game-logic system.
	EventChoiceResolved logging.EventType = "dialogue.choice_resolved"
	// EventTypingSkipped is emitted when a reveal is force-completed.
	EventTypingSkipped logging.EventType = "dialogue.typing_skipped"
)

// StartedPayload carries the full line list; the renderer owns reveal timing.
type StartedPayload struct {
	LineIDs []string `json:"lineIds"`
	Lines   int      `json:"lines"`
}

// EndedPayload describes how the session closed.
type EndedPayload struct {
	Reason         string `json:"reason"`
	DiscardedLines int    `json:"discardedLines,omitempty"`
}

// ChoiceResolvedPayload forwards the action token of a selected choice.
type ChoiceResolvedPayload struct {
	ChoiceID string `json:"choiceId"`
	Action   string `json:"action"`
}

// TypingSkippedPayload names the line whose reveal was cut short.
type TypingSkippedPayload struct {
	LineID string `json:"lineId"`
}

// Started publishes a dialogue.started notification.
func Started(ctx context.Context, pub logging.Publisher, source logging.SourceRef, version uint64, payload StartedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDialogueStarted,
		Source:   source,
		Version:  version,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryDialogue,
		Payload:  payload,
	})
}

// Ended publishes a dialogue.ended notification.
func Ended(ctx context.Context, pub logging.Publisher, source logging.SourceRef, version uint64, payload EndedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDialogueEnded,
		Source:   source,
		Version:  version,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryDialogue,
		Payload:  payload,
	})
}

// ChoiceResolved publishes a dialogue.choice_resolved notification.
func ChoiceResolved(ctx context.Context, pub logging.Publisher, source logging.SourceRef, version uint64, payload ChoiceResolvedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventChoiceResolved,
		Source:   source,
		Version:  version,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryDialogue,
		Payload:  payload,
	})
}

// TypingSkipped publishes a dialogue.typing_skipped notification.
func TypingSkipped(ctx context.Context, pub logging.Publisher, source logging.SourceRef, version uint64, payload TypingSkippedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventTypingSkipped,
		Source:   source,
		Version:  version,
		Severity: logging.SeverityDebug,
		Category: logging.CategoryDialogue,
		Payload:  payload,
	})
}
