// uci.go implements the UCI protocol's text dialog
// (http://wbec-ridderkerk.nl/html/UCIProtocol.html) over *engine.Engine.
//
// Grounded on
// _examples/easychessanimations-zurichess/zurichess/uci.go's UCI struct
// and command dispatch (uci/isready/ucinewgame/position/go/stop/quit,
// the idle-channel handshake that lets "stop" block until a concurrent
// search has actually returned), trimmed of multiPV/ponder/handicap
// options and the teacher's bespoke time-control struct — SPEC_FULL.md
// places detailed time-allocation policy out of scope for this driver,
// so "go" computes one deadline from wtime/btime/movetime and hands it
// to engine.TimeControl rather than reimplementing move-budget
// forecasting.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/zurichess/corechess/config"
	"bitbucket.org/zurichess/corechess/engine"
)

var errQuit = errors.New("quit")

const engineName = "corechess"

// uciLogger writes principal-variation reports as UCI "info" lines on
// stdout, the channel the GUI actually reads; engine.NewLogger's
// go-logging backend goes to stderr and receives only the search start/end
// notices and warnings.
type uciLogger struct {
	inner engine.Logger
}

func (l uciLogger) BeginSearch() { l.inner.BeginSearch() }
func (l uciLogger) EndSearch()   { l.inner.EndSearch() }

func (l uciLogger) PrintPV(s engine.SearchStats) {
	fmt.Printf("info depth %d score cp %d nodes %d nps %d time %d pv %s\n",
		s.Depth, s.Score, s.Nodes, s.Nps(), s.Elapsed.Milliseconds(), pvString(s.PV))
	os.Stdout.Sync()
}

func (l uciLogger) Warn(format string, args ...interface{}) { l.inner.Warn(format, args...) }

func pvString(pv []engine.Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.UCI()
	}
	return strings.Join(parts, " ")
}

// uci holds the single Engine instance for the whole process lifetime
// plus whatever time control is active for the search currently running,
// if any.
type uci struct {
	engine *engine.Engine
	cfg    config.Config
	tc     *engine.TimeControl
	busy   chan struct{} // buffered 1; filled for the duration of a search
}

func newUCI(cfg config.Config) *uci {
	log := uciLogger{inner: engine.NewLogger("uci")}
	return &uci{
		engine: engine.NewEngine(nil, log, cfg.EngineOptions()),
		cfg:    cfg,
		busy:   make(chan struct{}, 1),
	}
}

func (u *uci) execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "uci":
		return u.handleUCI()
	case "isready":
		fmt.Println("readyok")
		return nil
	case "quit":
		return errQuit
	case "stop":
		return u.stop()
	case "ucinewgame":
		u.waitIdle()
		u.engine.NewGame()
		return nil
	case "position":
		u.waitIdle()
		return u.position(args)
	case "go":
		u.waitIdle()
		return u.goCmd(args)
	default:
		return nil // unknown commands are ignored, per the protocol's own leniency
	}
}

func (u *uci) handleUCI() error {
	fmt.Printf("id name %s\n", engineName)
	fmt.Printf("id author corechess contributors\n")
	fmt.Printf("option name Hash type spin default %d min 1 max 65536\n", engine.DefaultHashTableSizeMB)
	fmt.Println("uciok")
	return nil
}

// waitIdle blocks until no search is in flight. Mirrors the teacher's
// fill-then-drain handshake on a buffered channel of size 1.
func (u *uci) waitIdle() {
	u.busy <- struct{}{}
	<-u.busy
}

func (u *uci) stop() error {
	if u.tc != nil {
		u.tc.Stop()
	}
	u.waitIdle()
	return nil
}

func (u *uci) position(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected argument for 'position'")
	}

	i := 0
	switch args[0] {
	case "startpos":
		u.engine.SetStartPosition()
		i = 1
	case "fen":
		j := 1
		for j < len(args) && args[j] != "moves" {
			j++
		}
		if err := u.engine.SetFromFEN(strings.Join(args[1:j], " ")); err != nil {
			return err
		}
		i = j
	default:
		return fmt.Errorf("unknown position command: %s", args[0])
	}

	if i >= len(args) {
		return nil
	}
	if args[i] != "moves" {
		return fmt.Errorf("expected 'moves', got %q", args[i])
	}
	for _, m := range args[i+1:] {
		if err := u.engine.ApplyUCIMove(m); err != nil {
			return err
		}
	}
	return nil
}

func (u *uci) goCmd(args []string) error {
	var wtime, btime, winc, binc, movetime time.Duration
	var depth int
	infinite := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "infinite":
			infinite = true
		case "wtime", "btime", "winc", "binc", "movetime":
			i++
			if i >= len(args) {
				return fmt.Errorf("missing value for %s", args[i-1])
			}
			ms, err := strconv.Atoi(args[i])
			if err != nil {
				return fmt.Errorf("bad value for %s: %w", args[i-1], err)
			}
			d := time.Duration(ms) * time.Millisecond
			switch args[i-1] {
			case "wtime":
				wtime = d
			case "btime":
				btime = d
			case "winc":
				winc = d
			case "binc":
				binc = d
			case "movetime":
				movetime = d
			}
		case "depth":
			i++
			if i >= len(args) {
				return fmt.Errorf("missing value for depth")
			}
			d, err := strconv.Atoi(args[i])
			if err != nil {
				return fmt.Errorf("bad value for depth: %w", err)
			}
			depth = d
		case "searchmoves", "ponder", "movestogo", "nodes", "mate":
			// Accepted but not implemented by this thin driver; consume
			// any trailing value so the next token is still a command.
			if i+1 < len(args) {
				if _, err := strconv.Atoi(args[i+1]); err == nil {
					i++
				}
			}
		}
	}

	if depth > 0 {
		u.engine.SetMaxDepth(depth)
	} else {
		u.engine.SetMaxDepth(u.cfg.EngineOptions().MaxDepth)
	}
	u.tc = u.computeTimeControl(wtime, btime, winc, binc, movetime, infinite)
	u.busy <- struct{}{}
	go u.play()
	return nil
}

// computeTimeControl turns the UCI clock fields into a single deadline.
// This is deliberately simple: spec.md places detailed time-allocation
// policy out of scope, so the budget is just "my remaining time divided
// across a fixed number of expected moves, plus this move's increment",
// the simplest forecast that won't flag the clock.
const assumedMovesRemaining = 30

func (u *uci) computeTimeControl(wtime, btime, winc, binc, movetime time.Duration, infinite bool) *engine.TimeControl {
	if infinite {
		return engine.NewTimeControl()
	}
	if movetime > 0 {
		return engine.NewTimeControlFor(movetime)
	}
	if moveTime := u.cfg.MoveTime(); moveTime > 0 && wtime == 0 && btime == 0 {
		return engine.NewTimeControlFor(moveTime)
	}

	remaining, inc := wtime, winc
	if u.engine.Position().SideToMove == engine.Black {
		remaining, inc = btime, binc
	}
	if remaining <= 0 {
		return engine.NewTimeControl()
	}
	budget := remaining/assumedMovesRemaining + inc
	if budget <= 0 {
		budget = time.Millisecond
	}
	return engine.NewTimeControlFor(budget)
}

func (u *uci) play() {
	defer func() { <-u.busy }()

	pv := u.engine.Play(u.tc)
	if len(pv) == 0 {
		fmt.Println("bestmove (none)")
		return
	}
	if len(pv) >= 2 {
		fmt.Printf("bestmove %s ponder %s\n", pv[0].UCI(), pv[1].UCI())
	} else {
		fmt.Printf("bestmove %s\n", pv[0].UCI())
	}
}
