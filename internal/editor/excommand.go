package editor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/vedit/internal/log"
	"github.com/zjrosen/vedit/internal/tracing"
)

// Ex commands understood by the command line. The set is closed: anything
// else is reported as unknown.
const (
	exWrite     = "w"
	exQuit      = "q"
	exWriteQuit = "wq"
)

// Status line messages.
const (
	msgUnknownCommand = "Not an editor command: %s"
	msgWritten        = "%q %dL, %dB written"
	msgWriteFailed    = "Error writing %q: %v"
	msgNoFileName     = "No file name"
	msgNotSaved       = "No write since last change"
)

// runExCommand dispatches a submitted command line.
func (s *Session) runExCommand(ctx context.Context, line string) ExecuteResult {
	text := strings.TrimSpace(line)
	if text == "" {
		return Skipped
	}

	ctx, span := otel.Tracer(tracing.TracerName).Start(ctx, tracing.SpanPrefixCommand+text,
		trace.WithAttributes(
			attribute.String(tracing.AttrSessionID, s.id),
			attribute.String(tracing.AttrCommandText, text),
		),
	)
	defer span.End()

	log.Debug(log.CatCmd, "Dispatching command", "session", s.id, "command", text)

	switch text {
	case exWrite:
		if !s.write(ctx) {
			span.SetStatus(codes.Error, s.message)
		}
	case exQuit:
		s.quit()
	case exWriteQuit:
		if s.write(ctx) {
			s.quitting = true
		} else {
			span.SetStatus(codes.Error, s.message)
		}
	default:
		s.setError(fmt.Sprintf(msgUnknownCommand, text))
		span.AddEvent(tracing.EventUnknownCommand)
		log.Debug(log.CatCmd, "Unknown command", "command", text)
		return Skipped
	}
	return Executed
}

// write saves the document through the Saver and reports success.
func (s *Session) write(ctx context.Context) bool {
	if s.saver == nil || s.path == "" {
		s.setError(msgNoFileName)
		return false
	}

	content := bytes.Clone(s.doc.Bytes())
	if err := s.saver.Save(ctx, s.path, content); err != nil {
		s.setError(fmt.Sprintf(msgWriteFailed, s.path, err))
		log.ErrorErr(log.CatCmd, "Write failed", err, "path", s.path)
		trace.SpanFromContext(ctx).RecordError(err)
		return false
	}

	s.savedRev = s.doc.Revision()
	s.SetMessage(fmt.Sprintf(msgWritten, s.path, s.doc.LineCount(), len(content)))
	log.Info(log.CatCmd, "Wrote file", "path", s.path, "bytes", len(content))
	return true
}

// quit ends the session unless quitting is guarded and there are unsaved
// changes.
func (s *Session) quit() {
	if s.confirmQuit && s.Modified() {
		s.setError(msgNotSaved)
		return
	}
	s.quitting = true
}
