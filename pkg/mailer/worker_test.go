package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mailtpl "github.com/oksasatya/go-ddd-auth/pkg/mailer/templates"
)

type sent struct{ to, subject, text, html string }

type fakeSender struct {
	sent []sent
	err  error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sent{to, subject, text, html})
	return nil
}

func newTestProcessor(s Sender) *Processor {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return NewProcessor(s, l)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestProcessor_Handle(t *testing.T) {
	welcome := EmailJob{
		To:       "alice@example.com",
		Template: mailtpl.Welcome,
		Data:     mailtpl.NewWelcomeData(mailtpl.Brand{AppName: "Auth"}, "Alice", "alice@example.com", []string{"client"}),
	}

	tests := []struct {
		name    string
		body    []byte
		sendErr error
		want    Outcome
		sent    int
	}{
		{name: "template job", body: mustJSON(t, welcome), want: Ack, sent: 1},
		{name: "raw job", body: mustJSON(t, EmailJob{To: "a@b.co", Subject: "s", Text: "t"}), want: Ack, sent: 1},
		{name: "bad json", body: []byte("{"), want: Drop},
		{name: "unknown template", body: mustJSON(t, EmailJob{To: "a@b.co", Template: "nope"}), want: Drop},
		{name: "no recipient", body: mustJSON(t, EmailJob{Subject: "s"}), want: Drop},
		{name: "send failure requeues", body: mustJSON(t, welcome), sendErr: errors.New("503"), want: Requeue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeSender{err: tt.sendErr}
			got := newTestProcessor(s).Handle(context.Background(), tt.body)
			assert.Equal(t, tt.want, got)
			assert.Len(t, s.sent, tt.sent)
		})
	}
}

func TestProcessor_RendersTemplate(t *testing.T) {
	s := &fakeSender{}
	job := EmailJob{
		To:       "alice@example.com",
		Template: mailtpl.Welcome,
		Data:     mailtpl.NewWelcomeData(mailtpl.Brand{AppName: "Auth"}, "Alice", "alice@example.com", nil),
	}
	require.Equal(t, Ack, newTestProcessor(s).Handle(context.Background(), mustJSON(t, job)))
	require.Len(t, s.sent, 1)
	assert.Equal(t, "Welcome to Auth, Alice", s.sent[0].subject)
	assert.Contains(t, s.sent[0].html, "Welcome, Alice")
}
