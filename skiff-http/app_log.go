package skiff_http

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// LogSink receives every decision point in the request pipeline: server
// initialization, accepted connections, parsed requests, routing outcomes and
// response dispatch. Components hold a sink instead of calling a package-level
// logger so they can be exercised without console side effects.
//
// The five fields are all plain strings: severity, the component emitting the
// line, the method within it, why the line is being emitted, and any payload.
type LogSink interface {
	Log(level string, component string, method string, reason string, data string)
}

// ZerologSink is the production LogSink, writing leveled, colored console
// output through zerolog.
type ZerologSink struct {
	logger zerolog.Logger
}

func NewZerologSink(out io.Writer) *ZerologSink {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	return &ZerologSink{logger: logger}
}

func (s *ZerologSink) Log(level string, component string, method string, reason string, data string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	s.logger.WithLevel(lvl).
		Str("component", component).
		Str("method", method).
		Str("reason", reason).
		Msg(data)
}

// NopSink discards everything. Used in tests.
type NopSink struct{}

func (NopSink) Log(level string, component string, method string, reason string, data string) {}
