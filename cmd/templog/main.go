package main

import (
	log "github.com/sirupsen/logrus"
	"os"
)

func main() {
	// errors surfacing from app.Run are reported before any configured
	// logger exists
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetOutput(os.Stderr)

	app := initCli()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
