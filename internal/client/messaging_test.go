package client

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageSender struct {
	id       string
	err      error
	messages []*messaging.Message
}

func (f *fakeMessageSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.messages = append(f.messages, message)
	return f.id, f.err
}

func TestMessaging_Send(t *testing.T) {
	t.Run("returns provider message id", func(t *testing.T) {
		sender := &fakeMessageSender{id: "projects/demo/messages/42"}
		m := &Messaging{
			sender:                 sender,
			circuitBreakerRegistry: NewCircuitBreakerRegistry(CircuitBreakerRegistryParams{Config: testRegistryConfig()}),
		}
		message := &messaging.Message{Token: "abc"}

		id, err := m.Send(context.Background(), message)

		require.NoError(t, err)
		assert.Equal(t, "projects/demo/messages/42", id)
		require.Len(t, sender.messages, 1)
		assert.Same(t, message, sender.messages[0])
	})

	t.Run("propagates provider error", func(t *testing.T) {
		sender := &fakeMessageSender{err: errors.New("requested entity was not found")}
		m := &Messaging{
			sender:                 sender,
			circuitBreakerRegistry: NewCircuitBreakerRegistry(CircuitBreakerRegistryParams{Config: testRegistryConfig()}),
		}

		id, err := m.Send(context.Background(), &messaging.Message{Token: "abc"})

		assert.EqualError(t, err, "requested entity was not found")
		assert.Empty(t, id)
	})
}
