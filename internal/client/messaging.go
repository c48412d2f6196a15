package client

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
)

//go:generate mockgen -package mockclient -destination ./mock/mockclient.go . MessagingProvider,UserDirectoryProvider,MailerProvider
type MessagingProvider interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

var _ MessagingProvider = (*Messaging)(nil)

// messageSender is the slice of *messaging.Client used here.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type Messaging struct {
	sender                 messageSender
	circuitBreakerRegistry *CircuitBreakerRegistry
}

type MessagingParams struct {
	fx.In

	App                    *firebase.App
	CircuitBreakerRegistry *CircuitBreakerRegistry
}

func NewMessaging(params MessagingParams) (*Messaging, error) {
	sender, err := params.App.Messaging(context.Background())
	if err != nil {
		return nil, err
	}

	return &Messaging{
		sender:                 sender,
		circuitBreakerRegistry: params.CircuitBreakerRegistry,
	}, nil
}

// Send submits one message and returns the provider-assigned message id.
func (m *Messaging) Send(ctx context.Context, message *messaging.Message) (string, error) {
	return execute(ctx, m.circuitBreakerRegistry, ProviderFCM, "send",
		func(ctx context.Context) (string, error) {
			return m.sender.Send(ctx, message)
		},
	)
}
