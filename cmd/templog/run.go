package main

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/srevinsaju/templog/v1/internal/logging"
	"github.com/srevinsaju/templog/v1/internal/meta"
	"github.com/srevinsaju/templog/v1/internal/tempfile"
	"github.com/urfave/cli/v2"
	"os"
)

var errNoLogFile = errors.New("temporary log file is not available")

func newDefiner(cliCtx *cli.Context) (*tempfile.Definer, error) {
	definer, err := tempfile.New(
		tempfile.WithDir(cliCtx.Path("dir")),
		tempfile.WithDiagnostics(cliCtx.App.ErrWriter),
	)
	if err != nil {
		return nil, err
	}
	definer.SetPrefix(cliCtx.String("prefix"))
	definer.SetSuffix(cliCtx.String("suffix"))
	return definer, nil
}

func verbosity(cliCtx *cli.Context) int {
	if cliCtx.Bool("debug") && cliCtx.Int("verbosity") < 2 {
		return 2
	}
	return cliCtx.Int("verbosity")
}

func cliBefore(cliCtx *cli.Context) error {
	if cliCtx.Bool("debug") {
		log.SetLevel(log.TraceLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	return nil
}

func loggingConfigFromCliContext(cliCtx *cli.Context, definer *tempfile.Definer) logging.Config {
	return logging.Config{
		Verbosity:     verbosity(cliCtx),
		Child:         cliCtx.Bool("child"),
		IsCI:          cliCtx.Bool("ci"),
		JSON:          cliCtx.Bool("json"),
		CorrelationID: uuid.New().String(),
		Sinks:         logging.ParseSinksFromCLI(cliCtx),
		Properties: map[string]logging.PropertyDefiner{
			meta.TempLogFileProperty: definer,
		},
		Output: cliCtx.App.Writer,
	}
}

func cliContextRunner(cliCtx *cli.Context) error {
	definer, err := newDefiner(cliCtx)
	if err != nil {
		return err
	}

	logger, err := logging.New(loggingConfigFromCliContext(cliCtx, definer))
	if err != nil {
		return err
	}
	defer func() {
		if err := logging.Flush(logger); err != nil {
			log.Warnf("flushing log sinks: %s", err)
		}
	}()

	path, ok := definer.PropertyValue()
	if !ok {
		logger.Warn("running without a temporary log file")
		return errNoLogFile
	}
	logger.WithField("path", path).Info("logging initialized")

	if cliCtx.Bool("clean-stale") {
		removed, err := definer.Clean()
		for _, p := range removed {
			logger.Debugf("removed %s", p)
		}
		if err != nil {
			// stale files owned by someone else must not stop the bootstrap
			logger.Warnf("cleaning stale log files: %s", err)
		}
		logger.Infof("removed %d stale log files", len(removed))
	}

	fmt.Fprintln(cliCtx.App.Writer, path)
	return nil
}

func cliPath(cliCtx *cli.Context) error {
	definer, err := newDefiner(cliCtx)
	if err != nil {
		return err
	}
	path, ok := definer.PropertyValue()
	if !ok {
		return errNoLogFile
	}
	fmt.Fprintln(cliCtx.App.Writer, path)
	return nil
}

func cliClean(cliCtx *cli.Context) error {
	dir := cliCtx.Path("dir")
	if dir == "" {
		dir = os.TempDir()
	}
	dir, err := homedir.Expand(dir)
	if err != nil {
		return err
	}

	removed, err := tempfile.Clean(afero.NewOsFs(), dir, cliCtx.String("prefix"), cliCtx.String("suffix"), "")
	for _, p := range removed {
		fmt.Fprintln(cliCtx.App.Writer, "removing", p)
	}
	if err != nil {
		return err
	}
	log.Debugf("removed %d files from %s", len(removed), dir)
	return nil
}
