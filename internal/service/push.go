package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/koungkub/notification-relay/internal/client"
	"go.uber.org/fx"
)

const (
	// ClickActionKey is the reserved data key carrying the click action.
	ClickActionKey = "click_action"

	defaultChannelID = "default"
	defaultSound     = "default"
	priorityHigh     = "high"
)

//go:generate mockgen -package mockservice -destination ./mock/mockservice.go . PushProvider,MailProvider
type PushProvider interface {
	Send(ctx context.Context, req PushRequest) (string, error)
}

var _ PushProvider = (*PushService)(nil)

type PushRequest struct {
	Token       string
	Title       string
	Body        string
	ImageURL    string
	ClickAction string
	Data        map[string]any
}

func (r PushRequest) validate() error {
	if r.Token == "" || r.Title == "" || r.Body == "" {
		return fmt.Errorf("%w: token, title and body are required", ErrInvalidRequest)
	}
	return nil
}

type PushService struct {
	messaging client.MessagingProvider
	timeout   time.Duration
}

type PushServiceParams struct {
	fx.In

	Config    Config
	Messaging client.MessagingProvider
}

func NewPushService(params PushServiceParams) *PushService {
	return &PushService{
		messaging: params.Messaging,
		timeout:   params.Config.ProviderTimeout,
	}
}

// Send submits the notification once and returns the provider message id.
func (s *PushService) Send(ctx context.Context, req PushRequest) (string, error) {
	if err := req.validate(); err != nil {
		return "", err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return s.messaging.Send(ctx, BuildMessage(req))
}

// BuildMessage shapes req into a cross-platform FCM message. The image, when
// present, is set on the generic notification and on both platform configs.
func BuildMessage(req PushRequest) *messaging.Message {
	data := make(map[string]string, len(req.Data)+1)
	for key, value := range req.Data {
		data[key] = stringify(value)
	}
	if req.ClickAction != "" {
		data[ClickActionKey] = req.ClickAction
	}

	message := &messaging.Message{
		Token: req.Token,
		Notification: &messaging.Notification{
			Title:    req.Title,
			Body:     req.Body,
			ImageURL: req.ImageURL,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: priorityHigh,
			Notification: &messaging.AndroidNotification{
				ChannelID: defaultChannelID,
				Sound:     defaultSound,
				ImageURL:  req.ImageURL,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound:          defaultSound,
					MutableContent: true,
				},
			},
		},
	}

	if req.ImageURL != "" {
		message.APNS.FCMOptions = &messaging.APNSFCMOptions{
			ImageURL: req.ImageURL,
		}
	}

	return message
}

// stringify renders a decoded JSON value as text; the transport only carries
// string key/value pairs.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	}
}
