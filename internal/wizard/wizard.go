// Package wizard drives the client-side debate composition flow: a draft moves
// through Setup, Collecting, Reviewing, Submitting and Result, with arguments
// captured in strict Side A / Side B alternation and an optional per-side time
// budget that force-fills a slot when it runs out.
package wizard

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/thesrcielos/DebateJudge/internal/debate"
)

type Phase int

const (
	PhaseSetup Phase = iota
	PhaseCollecting
	PhaseReviewing
	PhaseSubmitting
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseCollecting:
		return "collecting"
	case PhaseReviewing:
		return "reviewing"
	case PhaseSubmitting:
		return "submitting"
	case PhaseResult:
		return "result"
	}
	return "unknown"
}

type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideA {
		return "Side A"
	}
	return "Side B"
}

func (s Side) other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

const MaxPoints = 15

// TimeExpiredArgument fills a slot whose side ran out of time.
const TimeExpiredArgument = "Time expired"

// JudgeFunc submits the joined arguments for judging. The wizard calls it
// outside its lock, so it may block on the network.
type JudgeFunc func(topic, sideA, sideB string) (*debate.Debate, error)

// Draft is a read-only snapshot of the in-progress composition.
type Draft struct {
	Topic     string
	NumPoints int
	SideA     []string
	SideB     []string
	Turn      Side
	Remaining [2]time.Duration
}

type Wizard struct {
	mu    sync.Mutex
	judge JudgeFunc

	phase     Phase
	gen       int
	topic     string
	numPoints int
	arguments [2][]string
	turn      Side

	budget       time.Duration
	remaining    [2]time.Duration
	timer        *time.Timer
	timerSeq     int
	timerStarted time.Time

	result *debate.Debate
}

func New(judge JudgeFunc) *Wizard {
	return &Wizard{judge: judge, phase: PhaseSetup}
}

// Start moves Setup -> Collecting. A budget of zero disables the countdowns.
func (w *Wizard) Start(topic string, numPoints int, budget time.Duration) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase != PhaseSetup {
		return fmt.Errorf("cannot start a debate in the %s phase", w.phase)
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return errors.New("a debate topic is required")
	}
	if numPoints < 1 || numPoints > MaxPoints {
		return fmt.Errorf("number of arguments must be between 1 and %d", MaxPoints)
	}
	if budget < 0 {
		return errors.New("time budget must not be negative")
	}

	w.topic = topic
	w.numPoints = numPoints
	w.budget = budget
	w.remaining = [2]time.Duration{budget, budget}
	w.arguments = [2][]string{}
	w.turn = SideA
	w.phase = PhaseCollecting
	w.scheduleLocked()
	return nil
}

// SubmitArgument records an argument for the side whose turn it is and flips
// the turn. Once both sides hold numPoints arguments the wizard moves to
// Reviewing on its own.
func (w *Wizard) SubmitArgument(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase != PhaseCollecting {
		return fmt.Errorf("cannot add an argument in the %s phase", w.phase)
	}
	if w.completeLocked() {
		return errors.New("all arguments have been captured")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("argument must not be empty")
	}

	w.recordLocked(text)
	w.scheduleLocked()
	return nil
}

// Back returns from Reviewing to Collecting. Both sides are full at that
// point, so no countdown is re-armed and no slot can be filled again.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase != PhaseReviewing {
		return fmt.Errorf("cannot go back in the %s phase", w.phase)
	}
	w.phase = PhaseCollecting
	w.scheduleLocked()
	return nil
}

// Review returns from Collecting to Reviewing once both sides are full.
func (w *Wizard) Review() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase != PhaseCollecting {
		return fmt.Errorf("cannot review in the %s phase", w.phase)
	}
	if !w.completeLocked() {
		return errors.New("both sides must reach the target argument count first")
	}
	w.phase = PhaseReviewing
	return nil
}

// EditArgument replaces a previously captured argument. Editing is refused for
// a side whose time budget is exhausted.
func (w *Wizard) EditArgument(side Side, index int, text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase != PhaseReviewing {
		return fmt.Errorf("cannot edit arguments in the %s phase", w.phase)
	}
	if index < 0 || index >= len(w.arguments[side]) {
		return fmt.Errorf("no argument %d for %s", index, side)
	}
	if w.budget > 0 && w.remaining[side] <= 0 {
		return fmt.Errorf("time budget for %s is exhausted", side)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("argument must not be empty")
	}

	w.arguments[side][index] = text
	return nil
}

// Submit joins each side's arguments and hands them to the judge. Only one
// submission may be in flight; a failed one returns the wizard to Reviewing
// with the draft intact.
func (w *Wizard) Submit() (*debate.Debate, error) {
	w.mu.Lock()
	if w.phase == PhaseSubmitting {
		w.mu.Unlock()
		return nil, errors.New("a submission is already in flight")
	}
	if w.phase != PhaseReviewing {
		w.mu.Unlock()
		return nil, fmt.Errorf("cannot submit in the %s phase", w.phase)
	}
	gen := w.gen
	topic := w.topic
	sideA := strings.Join(w.arguments[SideA], " ")
	sideB := strings.Join(w.arguments[SideB], " ")
	w.phase = PhaseSubmitting
	w.mu.Unlock()

	result, err := w.judge(topic, sideA, sideB)

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen {
		// The wizard was reset while the judge call was in flight.
		return nil, errors.New("submission abandoned")
	}
	if err != nil {
		w.phase = PhaseReviewing
		return nil, err
	}
	w.phase = PhaseResult
	w.result = result
	return result, nil
}

// Reset cancels any live countdown and returns to Setup with a fresh draft.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopTimerLocked()
	w.gen++
	w.phase = PhaseSetup
	w.topic = ""
	w.numPoints = 0
	w.arguments = [2][]string{}
	w.turn = SideA
	w.budget = 0
	w.remaining = [2]time.Duration{}
	w.result = nil
}

func (w *Wizard) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

func (w *Wizard) Result() (*debate.Debate, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result, w.result != nil
}

func (w *Wizard) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()

	remaining := w.remaining
	if w.timer != nil {
		remaining[w.turn] -= time.Since(w.timerStarted)
		if remaining[w.turn] < 0 {
			remaining[w.turn] = 0
		}
	}
	return Draft{
		Topic:     w.topic,
		NumPoints: w.numPoints,
		SideA:     append([]string(nil), w.arguments[SideA]...),
		SideB:     append([]string(nil), w.arguments[SideB]...),
		Turn:      w.turn,
		Remaining: remaining,
	}
}

func (w *Wizard) completeLocked() bool {
	return len(w.arguments[SideA]) >= w.numPoints && len(w.arguments[SideB]) >= w.numPoints
}

// recordLocked appends to the active side, flips the turn and auto-advances to
// Reviewing once both sides are full.
func (w *Wizard) recordLocked(text string) {
	w.stopTimerLocked()
	w.arguments[w.turn] = append(w.arguments[w.turn], text)
	if w.completeLocked() {
		w.phase = PhaseReviewing
		return
	}
	w.turn = w.turn.other()
}

// scheduleLocked arms the countdown for the active side. Sides that are
// already out of time are filled with the sentinel right away. Nothing runs
// once both sides hold their target count: no slot may ever exceed it.
func (w *Wizard) scheduleLocked() {
	for w.phase == PhaseCollecting && w.budget > 0 && w.remaining[w.turn] <= 0 && !w.completeLocked() {
		w.recordLocked(TimeExpiredArgument)
	}
	if w.phase != PhaseCollecting || w.budget == 0 || w.completeLocked() {
		return
	}
	w.timerSeq++
	seq := w.timerSeq
	w.timerStarted = time.Now()
	w.timer = time.AfterFunc(w.remaining[w.turn], func() { w.timeUp(seq) })
}

// stopTimerLocked cancels the live countdown and charges the elapsed time
// against the active side's budget.
func (w *Wizard) stopTimerLocked() {
	if w.timer == nil {
		return
	}
	w.timer.Stop()
	w.timer = nil
	w.timerSeq++
	w.remaining[w.turn] -= time.Since(w.timerStarted)
	if w.remaining[w.turn] < 0 {
		w.remaining[w.turn] = 0
	}
}

func (w *Wizard) timeUp(seq int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if seq != w.timerSeq || w.phase != PhaseCollecting {
		return
	}
	w.timer = nil
	w.timerSeq++
	w.remaining[w.turn] = 0
	w.recordLocked(TimeExpiredArgument)
	w.scheduleLocked()
}
