package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/koungkub/notification-relay/internal/client"
	"github.com/koungkub/notification-relay/internal/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const mailSentMessage = "Email sent successfully"

type MailProvider interface {
	SendToUser(ctx context.Context, req MailRequest) (MailResult, error)
}

var _ MailProvider = (*MailService)(nil)

type MailRequest struct {
	UID     string
	Title   string
	Content string
}

func (r MailRequest) validate() error {
	if r.UID == "" || r.Title == "" || r.Content == "" {
		return fmt.Errorf("%w: uid, title and content are required", ErrInvalidRequest)
	}
	return nil
}

type MailResult struct {
	UID     string
	Email   string
	Message string
}

type MailService struct {
	directory client.UserDirectoryProvider
	mailer    client.MailerProvider
	cache     repository.RecipientCacheProvider
	logger    *zap.Logger
	timeout   time.Duration
}

type MailServiceParams struct {
	fx.In

	Config    Config
	Directory client.UserDirectoryProvider
	Mailer    client.MailerProvider
	Cache     repository.RecipientCacheProvider `optional:"true"`
	Logger    *zap.Logger                       `optional:"true"`
}

func NewMailService(params MailServiceParams) *MailService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &MailService{
		directory: params.Directory,
		mailer:    params.Mailer,
		cache:     params.Cache,
		logger:    logger,
		timeout:   params.Config.ProviderTimeout,
	}
}

// SendToUser resolves req.UID to an email address and relays one message to
// it. Nothing is sent unless the lookup succeeds with a non-empty address.
// Markup in req.Content is escaped in the HTML part, so it shows as text
// rather than being rendered.
func (s *MailService) SendToUser(ctx context.Context, req MailRequest) (MailResult, error) {
	if err := req.validate(); err != nil {
		return MailResult{}, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	email, err := s.resolveEmail(ctx, req.UID)
	if err != nil {
		return MailResult{}, err
	}
	if email == "" {
		return MailResult{}, ErrMissingEmail
	}

	if err := s.mailer.Send(ctx, client.Mail{
		To:      email,
		Subject: req.Title,
		Text:    req.Content,
		HTML:    RenderHTML(req.Content),
	}); err != nil {
		return MailResult{}, err
	}

	return MailResult{
		UID:     req.UID,
		Email:   email,
		Message: mailSentMessage,
	}, nil
}

func (s *MailService) resolveEmail(ctx context.Context, uid string) (string, error) {
	if s.cache != nil {
		if email, err := s.cache.Get(uid); err == nil {
			return email, nil
		}
	}

	recipient, err := s.directory.LookupUser(ctx, uid)
	if err != nil {
		return "", err
	}

	if s.cache != nil && recipient.Email != "" {
		if err := s.cache.Set(uid, recipient.Email); err != nil {
			s.logger.Debug("recipient not cached", zap.String("uid", uid), zap.Error(err))
		}
	}

	return recipient.Email, nil
}

// RenderHTML wraps content in a paragraph, escaping markup and turning every
// newline into a line break.
func RenderHTML(content string) string {
	return "<p>" + strings.ReplaceAll(html.EscapeString(content), "\n", "<br/>") + "</p>"
}
