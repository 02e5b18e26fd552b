package templates

import (
	"strings"
	"time"

	"github.com/oksasatya/go-ddd-auth/config"
)

// Brand is the sender identity stamped on every email.
type Brand struct {
	AppName        string
	CompanyName    string
	CompanyAddress string
	LogoURL        string
	SupportURL     string
	PrivacyURL     string
}

func BrandFromConfig(cfg *config.Config) Brand {
	return Brand{
		AppName:        cfg.AppName,
		CompanyName:    cfg.CompanyName,
		CompanyAddress: cfg.CompanyAddress,
		LogoURL:        cfg.LogoURL,
		SupportURL:     cfg.SupportURL,
		PrivacyURL:     cfg.PrivacyURL,
	}
}

// Option pattern
type Option func(*EmailData)

func WithIP(ip string) Option        { return func(d *EmailData) { d.IP = strings.TrimSpace(ip) } }
func WithUserAgent(ua string) Option { return func(d *EmailData) { d.UserAgent = ua } }
func WithRoles(roles []string) Option {
	return func(d *EmailData) { d.Roles = append([]string(nil), roles...) }
}
func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04 MST")
	}
}

func NewBaseEmailData(b Brand, typ, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:  name,
		Email: email,
		Type:  typ,

		CompanyName:    b.CompanyName,
		CompanyAddress: b.CompanyAddress,
		AppName:        b.AppName,

		LogoURL:    b.LogoURL,
		SupportURL: b.SupportURL,
		PrivacyURL: b.PrivacyURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(b Brand, name, email string, roles []string) map[string]any {
	return ToMap(NewBaseEmailData(b, Welcome, name, email, WithRoles(roles)))
}

func NewLoginNotificationData(b Brand, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(b, LoginNotification, name, email, opts...))
}
