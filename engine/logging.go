// logging.go defines the Logger interface search.go and engine.go report
// through, plus a default implementation backed by
// github.com/op/go-logging, the logging library used elsewhere in the
// reference corpus's most complete UCI engine. No component in this
// package ever calls fmt.Println/log.Println directly; everything
// diagnostic goes through a Logger so a UCI driver can silence engine
// chatter or redirect it without touching search.go.

package engine

import (
	"fmt"
	"os"
	"time"

	logging "github.com/op/go-logging"
)

// SearchStats summarizes one completed iterative-deepening iteration, the
// information a UCI "info" line reports.
type SearchStats struct {
	Depth   int
	Score   int32
	Nodes   uint64
	Elapsed time.Duration
	PV      []Move
}

// Nps returns nodes searched per second, 0 if Elapsed is zero.
func (s SearchStats) Nps() uint64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return uint64(float64(s.Nodes) / secs)
}

// Logger receives engine diagnostics: search lifecycle events, per-depth
// PV reports, and warnings about recoverable problems such as a malformed
// FEN or a position invariant violation.
type Logger interface {
	BeginSearch()
	EndSearch()
	PrintPV(stats SearchStats)
	Warn(format string, args ...interface{})
}

// NopLogger discards everything. Used by tests and by callers that embed
// this package without wanting engine chatter.
type NopLogger struct{}

func (NopLogger) BeginSearch()                            {}
func (NopLogger) EndSearch()                              {}
func (NopLogger) PrintPV(SearchStats)                     {}
func (NopLogger) Warn(format string, args ...interface{}) {}

var backendInitialized bool

// goLogger is the default Logger, backed by github.com/op/go-logging.
type goLogger struct {
	log *logging.Logger
}

// NewLogger returns a Logger backed by github.com/op/go-logging, writing
// leveled, timestamped lines to stderr so stdout stays clean for the UCI
// protocol itself.
func NewLogger(module string) Logger {
	if !backendInitialized {
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		formatter := logging.MustStringFormatter(
			`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
		)
		logging.SetBackend(logging.NewBackendFormatter(backend, formatter))
		backendInitialized = true
	}
	return &goLogger{log: logging.MustGetLogger(module)}
}

func (l *goLogger) BeginSearch() { l.log.Info("search started") }
func (l *goLogger) EndSearch()   { l.log.Info("search finished") }

func (l *goLogger) PrintPV(s SearchStats) {
	pv := ""
	for i, m := range s.PV {
		if i > 0 {
			pv += " "
		}
		pv += m.UCI()
	}
	l.log.Infof("depth=%d score=%d nodes=%d nps=%d time=%s pv=%s",
		s.Depth, s.Score, s.Nodes, s.Nps(), s.Elapsed.Round(time.Millisecond), pv)
}

func (l *goLogger) Warn(format string, args ...interface{}) {
	l.log.Warning(fmt.Sprintf(format, args...))
}
