package logging

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

var levelsMap = map[logrus.Level]sentry.Level{
	logrus.TraceLevel: sentry.LevelDebug,
	logrus.DebugLevel: sentry.LevelDebug,
	logrus.InfoLevel:  sentry.LevelInfo,
	logrus.WarnLevel:  sentry.LevelWarning,
	logrus.ErrorLevel: sentry.LevelError,
	logrus.FatalLevel: sentry.LevelFatal,
	logrus.PanicLevel: sentry.LevelFatal,
}

// SentryHook forwards logrus entries of the given levels to sentry.
type SentryHook struct {
	hub    *sentry.Hub
	levels []logrus.Level
}

var _ logrus.Hook = (*SentryHook)(nil)

func NewSentryHook(levels []logrus.Level) *SentryHook {
	return NewSentryHookWithHub(sentry.CurrentHub(), levels)
}

func NewSentryHookWithHub(hub *sentry.Hub, levels []logrus.Level) *SentryHook {
	return &SentryHook{
		hub:    hub,
		levels: levels,
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	if h.hub == nil || h.hub.Client() == nil {
		return nil
	}

	event := sentry.NewEvent()
	event.Level = levelsMap[entry.Level]
	event.Message = entry.Message
	event.Timestamp = entry.Time

	for k, v := range entry.Data {
		if k == logrus.ErrorKey {
			if err, ok := v.(error); ok {
				event.Exception = append(event.Exception, sentry.Exception{
					Type:  fmt.Sprintf("%T", err),
					Value: err.Error(),
				})
				continue
			}
		}
		event.Extra[k] = v
	}

	h.hub.CaptureEvent(event)
	return nil
}
