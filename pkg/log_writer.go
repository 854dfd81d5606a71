package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// LogWriter copies every log line to all of its sinks (stdout and the rotating
// log file). A failing sink does not stop the others.
type LogWriter struct {
	sinks []io.Writer
}

func NewLogWriter(sinks ...io.Writer) *LogWriter {
	lw := &LogWriter{}
	for _, s := range sinks {
		if s != nil {
			lw.sinks = append(lw.sinks, s)
		}
	}
	return lw
}

// Write reports the line as written when at least one sink took it whole.
// Errors of the other sinks are still returned.
func (lw *LogWriter) Write(line []byte) (int, error) {
	var errs error
	delivered := false
	for _, s := range lw.sinks {
		n, err := s.Write(line)
		if err == nil && n < len(line) {
			err = io.ErrShortWrite
		}
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		delivered = true
	}
	if !delivered && len(lw.sinks) > 0 {
		return 0, errs
	}
	return len(line), errs
}
