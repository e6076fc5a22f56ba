package mail

import (
	"crypto/tls"
	"strings"
	"webup/backcheck"

	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Message is a report to deliver
type Message struct {
	To         []string
	From       string
	Subject    string
	HTML       string
	Attachment string // optional file path
}

// Sender delivers messages through the mail relay
type Sender interface {
	Send(msg Message) error
	GetHost() string
}

type sender struct {
	dialer *gomail.Dialer
}

// NewSender returns a Sender using the relay of the mail settings.
// The relay is used without authentication when no username is set.
func NewSender(spec backcheck.MailSpec) Sender {
	log.WithFields(log.Fields{
		"relay": spec.Relay,
		"port":  spec.Port,
	}).Debugln("Initializing mail sender")

	d := gomail.NewDialer(spec.Relay, spec.Port, spec.Username, spec.Password)
	if spec.InsecureSkipVerify {
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &sender{dialer: d}
}

// Recipients splits a comma separated list of addresses
func Recipients(to string) []string {
	recipients := []string{}
	for _, address := range strings.Split(to, ",") {
		if address = strings.TrimSpace(address); address != "" {
			recipients = append(recipients, address)
		}
	}
	return recipients
}

func (s *sender) Send(msg Message) error {
	log.WithFields(log.Fields{
		"to":      strings.Join(msg.To, ","),
		"subject": msg.Subject,
	}).Debugln("Sending report")

	return s.dialer.DialAndSend(newMessage(msg))
}

func (s *sender) GetHost() string {
	return s.dialer.Host
}

func newMessage(msg Message) *gomail.Message {
	m := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if msg.Attachment != "" {
		m.Attach(msg.Attachment)
	}

	return m
}
