package main

import (
	"context"
	"os"
	"webup/backcheck"
	"webup/backcheck/mail"
	"webup/backcheck/management"
	"webup/backcheck/tasks"

	cli "github.com/jawher/mow.cli"
	log "github.com/sirupsen/logrus"
)

func main() {
	app := cli.App("backcheck", "Report the freshness of the mail databases backups")

	app.Version("v version", "backcheck 1 (build 1)")

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	app.Spec = "[--log] [--always-send]"

	logToFile := app.BoolOpt("log", false, "Writes a trace file and attaches it to the report")
	alwaysSend := app.BoolOpt("always-send", false, "Sends the report even when no database is in alert")

	app.Action = func() {

		// prepare settings
		settings := backcheck.NewDefaultSettings()
		settings.LogToFile = *logToFile
		settings.AlwaysSend = *alwaysSend
		if path := os.Getenv("BACKCHECK_CONFIG"); path != "" {
			settings.ConfigPath = path
		}

		config, err := tasks.ParseConfigFile(settings.ConfigPath)
		if err != nil {
			log.Errorln(err)
			cli.Exit(1)
			return
		}

		if settings.LogToFile {
			settings.LogPath = config.Log.File
			if settings.LogPath == "" {
				settings.LogPath = backcheck.DefaultLogPath()
			}

			trace, err := tasks.StartTrace(settings.LogPath)
			if err != nil {
				log.WithFields(log.Fields{
					"file": settings.LogPath,
					"err":  err,
				}).Warnln("Unable to open the trace file. Continuing without it.")
				settings.LogToFile = false
			} else {
				defer trace.Close()
			}
		}

		source, err := management.GetSource(config.Management)
		if err != nil {
			log.Errorln(err)
			cli.Exit(1)
			return
		}

		ctx := backcheck.NewContextWithSettings(context.Background(), settings)

		result, err := tasks.PerformCheck(ctx, config, source, mail.NewSender(config.Mail))
		if err != nil {
			log.Errorln(err)
			cli.Exit(1)
			return
		}

		tasks.DisplayStatus(os.Stdout, result.Report)
	}

	app.Run(os.Args)
}
