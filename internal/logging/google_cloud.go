package logging

import (
	"context"
	"github.com/acarl005/stripansi"
	"github.com/sirupsen/logrus"
	"github.com/srevinsaju/templog/v1/internal/meta"
	"google.golang.org/genproto/googleapis/api/monitoredres"
	"os"
)
import "cloud.google.com/go/logging"

func googleCloudLoggingClient(project string) (*logging.Client, error) {
	return logging.NewClient(context.Background(), project)
}

type GoogleCloudLoggerHook struct {
	client   *logging.Client
	cfg      Config
	project  string
	hostname string
	levels   []logrus.Level
}

func NewGoogleCloudLoggerHook(cfg Config, project string, level logrus.Level) (*GoogleCloudLoggerHook, error) {
	client, err := googleCloudLoggingClient(project)
	if err != nil {
		return nil, err
	}
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	var levels []logrus.Level
	for l := range levelPaths("", level) {
		levels = append(levels, l)
	}
	return &GoogleCloudLoggerHook{
		cfg:      cfg,
		client:   client,
		project:  project,
		hostname: hostname,
		levels:   levels,
	}, nil
}

func severity(level logrus.Level) logging.Severity {
	switch level {
	case logrus.TraceLevel, logrus.DebugLevel:
		return logging.Debug
	case logrus.InfoLevel:
		return logging.Info
	case logrus.WarnLevel:
		return logging.Warning
	case logrus.ErrorLevel:
		return logging.Error
	case logrus.FatalLevel:
		return logging.Critical
	case logrus.PanicLevel:
		return logging.Alert
	}
	return logging.Default
}

// logFileLabel points the remote entry back at the local log file, but only
// once something else created it.
func logFileLabel(props map[string]PropertyDefiner) (string, bool) {
	cached, ok := props[meta.TempLogFileProperty].(CachedPropertyDefiner)
	if !ok {
		return "", false
	}
	return cached.CachedPropertyValue()
}

func (h *GoogleCloudLoggerHook) Fire(entry *logrus.Entry) error {
	labels := map[string]string{
		"app":          meta.AppName,
		"version":      meta.AppVersion,
		"instanceName": meta.AppName,
		"instanceId":   h.cfg.CorrelationID,
	}
	if path, ok := logFileLabel(h.cfg.Properties); ok {
		labels["logFile"] = path
	}

	h.client.Logger(meta.AppName).Log(logging.Entry{
		Payload: map[string]interface{}{
			"message": stripansi.Strip(entry.Message),
			"labels":  entry.Data,
			"app":     meta.AppName,
			"version": meta.AppVersion,
			"host":    h.hostname,
		},
		Resource: &monitoredres.MonitoredResource{Type: "global"},
		Trace:    meta.AppName,
		Severity: severity(entry.Level),
		Labels:   labels,
	})
	return nil
}

func (h *GoogleCloudLoggerHook) Levels() []logrus.Level {
	return h.levels
}

// Close flushes buffered entries.
func (h *GoogleCloudLoggerHook) Close() error {
	return h.client.Close()
}
