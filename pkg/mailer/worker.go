package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	mailtpl "github.com/oksasatya/go-ddd-auth/pkg/mailer/templates"
)

// Outcome tells the consumer what to do with a delivery.
type Outcome int

const (
	Ack Outcome = iota
	// Drop rejects without requeue: the job can never succeed.
	Drop
	// Requeue rejects with requeue: the failure may be transient.
	Requeue
)

var ErrNoRecipient = errors.New("email job has no recipient")

// Processor turns queued EmailJobs into sent email.
type Processor struct {
	Sender      Sender
	Logger      *logrus.Logger
	SendTimeout time.Duration
}

func NewProcessor(s Sender, logger *logrus.Logger) *Processor {
	return &Processor{Sender: s, Logger: logger, SendTimeout: 15 * time.Second}
}

// Handle processes one raw queue message.
func (p *Processor) Handle(ctx context.Context, body []byte) Outcome {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		p.warn(err, "bad message", "")
		return Drop
	}
	subject, text, html, err := Prepare(job)
	if err != nil {
		p.warn(err, "render failed", job.Template)
		return Drop
	}

	c, cancel := context.WithTimeout(ctx, p.SendTimeout)
	defer cancel()
	if err := p.Sender.Send(c, job.To, subject, text, html); err != nil {
		p.warn(err, "send failed", job.Template)
		return Requeue
	}
	if p.Logger != nil {
		p.Logger.WithField("template", job.Template).Debug("email sent")
	}
	return Ack
}

// Prepare resolves the final subject and bodies of a job.
func Prepare(job EmailJob) (subject, text, html string, err error) {
	if strings.TrimSpace(job.To) == "" {
		return "", "", "", ErrNoRecipient
	}
	if !job.Templated() {
		return job.Subject, job.Text, job.HTML, nil
	}
	return mailtpl.Render(job.Template, job.Data)
}

func (p *Processor) warn(err error, msg, template string) {
	if p.Logger == nil {
		return
	}
	p.Logger.WithError(err).WithField("template", template).Warn(msg)
}
