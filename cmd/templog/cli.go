package main

import (
	"github.com/srevinsaju/templog/v1/internal/meta"
	"github.com/urfave/cli/v2"
)

func envVar(name string) []string {
	return []string{meta.EnvVarPrefix + name}
}

func initCli() *cli.App {
	app := &cli.App{
		Name:                 meta.AppName,
		Usage:                meta.AppDescription,
		Version:              meta.AppVersion,
		Action:               cliContextRunner,
		Before:               cliBefore,
		EnableBashCompletion: true,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "prefix",
				Usage:   "Prefix of the temporary log file name",
				Value:   meta.DefaultCLIPrefix,
				EnvVars: envVar("PREFIX"),
			},
			&cli.StringFlag{
				Name:    "suffix",
				Usage:   "Suffix of the temporary log file name, .tmp when empty",
				Value:   meta.DefaultCLISuffix,
				EnvVars: envVar("SUFFIX"),
			},
			&cli.PathFlag{
				Name:        "dir",
				Usage:       "Directory the temporary log file is created in",
				EnvVars:     envVar("DIR"),
				DefaultText: "system temp directory",
			},
			&cli.IntFlag{
				Name:    "verbosity",
				Usage:   "0 logs info, 1 logs debug, 2 and above log everything",
				EnvVars: envVar("VERBOSITY"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Log everything, same as --verbosity 2",
				EnvVars: envVar("DEBUG"),
			},
			&cli.BoolFlag{
				Name:    "child",
				Usage:   "Run as a child of another process: no timestamps, forced colors",
				EnvVars: envVar("CHILD"),
			},
			&cli.BoolFlag{
				Name:    "json",
				Usage:   "Log as JSON",
				EnvVars: envVar("JSON"),
			},
			&cli.BoolFlag{
				Name:    "ci",
				Usage:   "Enable CI mode",
				EnvVars: envVar("CI"),
			},
			&cli.BoolFlag{
				Name:  "clean-stale",
				Usage: "Remove temporary log files left behind by earlier runs",
			},
			&cli.BoolFlag{
				Name:  "logging.local.file",
				Usage: "Write logs to a local file",
				Value: true,
			},
			&cli.StringFlag{
				Name:  "logging.local.file.path",
				Usage: "Path of the local log file, ${" + meta.TempLogFileProperty + "} is the temporary log file",
				Value: meta.DefaultFilePathTemplate,
			},
			&cli.BoolFlag{
				Name:  "logging.remote.google-cloud",
				Usage: "Send logs to Google Cloud Logging",
			},
			&cli.StringFlag{
				Name:    "logging.remote.google-cloud.project",
				Usage:   "Google Cloud project to send logs to",
				EnvVars: []string{"GOOGLE_CLOUD_PROJECT"},
			},
		},

		Commands: []*cli.Command{
			{
				Name:   "path",
				Usage:  "Create the temporary log file and print its path",
				Action: cliPath,
			},
			{
				Name:   "clean",
				Usage:  "Remove temporary log files matching the prefix and suffix",
				Action: cliClean,
			},
		},
	}

	return app
}
