package tasks

import (
	"context"
	"fmt"
	"webup/backcheck"
	"webup/backcheck/mail"
	"webup/backcheck/render"

	log "github.com/sirupsen/logrus"
)

// CheckResult is the outcome of a completed run
type CheckResult struct {
	Report  backcheck.RunReport
	Sent    bool
	SendErr error
}

// PerformCheck evaluates the backup freshness of every database and sends the report when needed.
// Only fatal errors are returned: a mail failure is kept in the result.
func PerformCheck(ctx context.Context, config backcheck.Config, source backcheck.ManagementSource, sender mail.Sender) (*CheckResult, error) {

	opts, ok := backcheck.SettingsFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("unable to get settings from context")
	}

	now := opts.StartupTime
	threshold := config.Threshold(now.Weekday())

	log.WithFields(log.Fields{
		"threshold": threshold,
		"weekday":   now.Weekday(),
	}).Debugln("Check started")

	databases, err := ListDatabases(ctx, source, config)
	if err != nil {
		return nil, err
	}

	counts, err := CountMailboxes(ctx, source, databases)
	if err != nil {
		return nil, err
	}

	evaluated := []backcheck.EvaluatedDatabase{}
	skipped := []string{}

	for _, db := range databases {
		if !db.Evaluable() {
			log.WithFields(log.Fields{
				"name":  db.Name,
				"state": db.MountState,
			}).Warnln("Database is not mounted. Skipped.")
			skipped = append(skipped, db.Name)
			continue
		}

		evaluated = append(evaluated, Evaluate(db, now, threshold).WithMailboxes(counts[db.Name]))
	}

	result := &CheckResult{
		Report: backcheck.NewRunReport(evaluated, skipped, threshold, now),
	}

	log.WithFields(log.Fields{
		"alerts":  result.Report.AlertCount(),
		"ok":      result.Report.OKCount(),
		"skipped": len(skipped),
	}).Infoln("Check finished")

	if !shouldSend(result.Report, config, opts) {
		log.Infoln("No alert. Report not sent.")
		return result, nil
	}

	body, err := render.Render(result.Report)
	if err != nil {
		return result, err
	}

	msg := mail.Message{
		To:      mail.Recipients(config.Mail.To),
		From:    config.Mail.From,
		Subject: fmt.Sprintf("%s - %s", config.Mail.Subject, render.Summary(result.Report.AlertCount())),
		HTML:    body,
	}
	if opts.LogToFile {
		msg.Attachment = opts.LogPath
	}

	if err := sender.Send(msg); err != nil {
		log.WithFields(log.Fields{
			"relay": sender.GetHost(),
			"err":   err,
		}).Warnln("Unable to send the report")
		result.SendErr = err
		return result, nil
	}

	log.WithField("to", config.Mail.To).Infoln("Report sent")
	result.Sent = true

	return result, nil
}

func shouldSend(report backcheck.RunReport, config backcheck.Config, opts backcheck.Settings) bool {
	return (report.HasAlerts() && config.ShouldAlert()) || opts.AlwaysSend
}
