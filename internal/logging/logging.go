package logging

import (
	"errors"
	"fmt"
	"github.com/imdario/mergo"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/srevinsaju/templog/v1/internal/meta"
	"github.com/urfave/cli/v2"
	"io"
	"os"
)

type Sink struct {
	Name string

	// Level is the least severe level the sink receives. The zero value is
	// logrus.PanicLevel, so a sink built without a level only sees panics.
	Level logrus.Level

	Options map[string]string
}

type Config struct {
	Verbosity int

	// Child drops timestamps and forces colors, the parent process prints
	// the child's output with its own timestamps
	Child bool

	IsCI          bool
	JSON          bool
	CorrelationID string

	Sinks []Sink

	// Properties are substituted into sink options, the file sink path
	// refers to them as ${name}
	Properties map[string]PropertyDefiner

	// Output defaults to stdout
	Output io.Writer
}

func fileSinkDefaults() map[string]string {
	return map[string]string{
		"path": meta.DefaultFilePathTemplate,
	}
}

func ParseSinksFromCLI(ctx *cli.Context) []Sink {
	var sinks []Sink
	file := ctx.Bool("logging.local.file")
	if file {
		sinks = append(sinks, Sink{
			Name:  "file",
			Level: logrus.DebugLevel,
			Options: map[string]string{
				"path": ctx.String("logging.local.file.path"),
			},
		})
	}
	gcloud := ctx.Bool("logging.remote.google-cloud")
	if gcloud {
		sinks = append(sinks, Sink{
			Name:  "google-cloud",
			Level: logrus.DebugLevel,
			Options: map[string]string{
				"project": ctx.String("logging.remote.google-cloud.project"),
			},
		})
	}
	return sinks
}

func New(cfg Config) (*logrus.Logger, error) {
	logger := logrus.New()
	if cfg.Output != nil {
		logger.SetOutput(cfg.Output)
	} else {
		logger.SetOutput(os.Stdout)
	}
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    false,
		DisableTimestamp: cfg.Child,
	})
	switch cfg.Verbosity {
	case -1:
	case 0:
		logger.SetLevel(logrus.InfoLevel)
	case 1:
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.TraceLevel)
	}
	if cfg.IsCI {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:             false,
			EnvironmentOverrideColors: false,
			ForceColors:               true,
			ForceQuote:                false,
		})
	}
	if cfg.Child {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp:          true,
			DisableColors:             false,
			EnvironmentOverrideColors: false,
			ForceColors:               true,
			ForceQuote:                false,
		})
	}
	if cfg.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	for _, sink := range cfg.Sinks {
		switch sink.Name {
		case "file":
			opts := map[string]string{}
			for k, v := range sink.Options {
				opts[k] = v
			}
			if err := mergo.Merge(&opts, fileSinkDefaults()); err != nil {
				return nil, fmt.Errorf("file sink options: %w", err)
			}
			path, err := ExpandPath(opts["path"], cfg.Properties)
			if err != nil {
				// the host keeps running without a log file
				logger.Warnf("file logging disabled: %s", err)
				continue
			}
			hook := lfshook.NewHook(levelPaths(path, sink.Level), &logrus.JSONFormatter{})
			logger.AddHook(hook)
			logger.Debugf("logging to %s", path)
		case "google-cloud":
			project, ok := sink.Options["project"]
			if !ok || project == "" {
				return nil, errors.New("google-cloud sink requires project option")
			}
			hook, err := NewGoogleCloudLoggerHook(cfg, project, sink.Level)
			if err != nil {
				return nil, err
			}
			logger.AddHook(hook)
		default:
			return nil, errors.New("unknown sink: " + sink.Name)
		}
	}

	return logger, nil
}

// levelPaths routes every level at or above the sink level to path.
func levelPaths(path string, level logrus.Level) lfshook.PathMap {
	paths := lfshook.PathMap{}
	for _, l := range logrus.AllLevels {
		if l <= level {
			paths[l] = path
		}
	}
	return paths
}

// Flush closes every hook that holds resources, such as remote sink clients.
func Flush(logger *logrus.Logger) error {
	seen := map[io.Closer]bool{}
	var errs []error
	for _, hooks := range logger.Hooks {
		for _, hook := range hooks {
			c, ok := hook.(io.Closer)
			if !ok || seen[c] {
				continue
			}
			seen[c] = true
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
