package rabbitmq

import (
	"context"
	"time"

	"github.com/samber/oops"

	"github.com/oksasatya/go-ddd-auth/internal/application"
	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	"github.com/oksasatya/go-ddd-auth/pkg/mailer"
	mailtpl "github.com/oksasatya/go-ddd-auth/pkg/mailer/templates"
)

const publishTimeout = 2 * time.Second

// Publisher is satisfied by *helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// EmailNotifier turns user events into email jobs on the work queue. The
// email worker renders and sends them.
type EmailNotifier struct {
	pub   Publisher
	brand mailtpl.Brand
}

func NewEmailNotifier(pub Publisher, brand mailtpl.Brand) *EmailNotifier {
	return &EmailNotifier{pub: pub, brand: brand}
}

func (n *EmailNotifier) UserRegistered(ctx context.Context, u *entity.User) error {
	job := mailer.NewTemplateJob(u.Email().Value(), mailtpl.Welcome,
		mailtpl.NewWelcomeData(n.brand, u.Name().Value(), u.Email().Value(), u.RoleValues()))
	return n.publish(ctx, job, u)
}

func (n *EmailNotifier) UserLoggedIn(ctx context.Context, u *entity.User, meta application.LoginMeta) error {
	job := mailer.NewTemplateJob(u.Email().Value(), mailtpl.LoginNotification,
		mailtpl.NewLoginNotificationData(n.brand, u.Name().Value(), u.Email().Value(),
			mailtpl.WithIP(meta.IP),
			mailtpl.WithUserAgent(meta.UserAgent),
			mailtpl.WithTime(meta.At),
		))
	return n.publish(ctx, job, u)
}

func (n *EmailNotifier) publish(ctx context.Context, job mailer.EmailJob, u *entity.User) error {
	c, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := n.pub.PublishJSON(c, job); err != nil {
		return oops.Code("EMAIL_ENQUEUE_FAILED").
			With("template", job.Template).
			With("user_id", u.ID().Value()).
			Wrap(err)
	}
	return nil
}

var _ application.Notifier = (*EmailNotifier)(nil)
