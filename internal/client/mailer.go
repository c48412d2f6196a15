package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

type MailerProvider interface {
	Send(ctx context.Context, m Mail) error
}

var _ MailerProvider = (*SMTPMailer)(nil)

type mailDialer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPConfig defaults to Gmail over implicit TLS on port 465.
type SMTPConfig struct {
	Host       string        `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port       int           `envconfig:"SMTP_PORT" default:"465"`
	Username   string        `envconfig:"SMTP_EMAIL" required:"true"`
	Password   string        `envconfig:"SMTP_PASSWORD" required:"true"`
	SenderName string        `envconfig:"SMTP_SENDER_NAME" default:"Credible"`
	Timeout    time.Duration `envconfig:"SMTP_TIMEOUT" default:"15s"`
}

func NewSMTPConfig() (SMTPConfig, error) {
	var cfg SMTPConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return SMTPConfig{}, err
	}

	var missing []string
	if strings.TrimSpace(cfg.Username) == "" {
		missing = append(missing, "SMTP_EMAIL")
	}
	if cfg.Password == "" {
		missing = append(missing, "SMTP_PASSWORD")
	}
	if len(missing) > 0 {
		return SMTPConfig{}, fmt.Errorf("missing required environment variables: %v", missing)
	}

	return cfg, nil
}

type SMTPMailer struct {
	config                 SMTPConfig
	dialer                 mailDialer
	circuitBreakerRegistry *CircuitBreakerRegistry
}

type SMTPMailerParams struct {
	fx.In

	Config                 SMTPConfig
	CircuitBreakerRegistry *CircuitBreakerRegistry
}

// NewSMTPMailer builds one shared mail client; go-mail opens a fresh
// connection per DialAndSend so the client is safe for concurrent requests.
func NewSMTPMailer(params SMTPMailerParams) (*SMTPMailer, error) {
	dialer, err := mail.NewClient(params.Config.Host,
		mail.WithPort(params.Config.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(params.Config.Username),
		mail.WithPassword(params.Config.Password),
		mail.WithTimeout(params.Config.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &SMTPMailer{
		config:                 params.Config,
		dialer:                 dialer,
		circuitBreakerRegistry: params.CircuitBreakerRegistry,
	}, nil
}

func (s *SMTPMailer) Send(ctx context.Context, m Mail) error {
	msg, err := s.buildMessage(m)
	if err != nil {
		return err
	}

	_, err = execute(ctx, s.circuitBreakerRegistry, ProviderSMTP, "send",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.dialer.DialAndSendWithContext(ctx, msg)
		},
	)
	return err
}

func (s *SMTPMailer) buildMessage(m Mail) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(s.config.SenderName, s.config.Username); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", m.To, err)
	}

	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Text)
	if m.HTML != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, m.HTML)
	}

	return msg, nil
}
