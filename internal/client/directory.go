package client

import (
	"context"
	"errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
)

type UserDirectoryProvider interface {
	LookupUser(ctx context.Context, uid string) (Recipient, error)
}

var _ UserDirectoryProvider = (*UserDirectory)(nil)

type userGetter interface {
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
}

type UserDirectory struct {
	users                  userGetter
	circuitBreakerRegistry *CircuitBreakerRegistry
}

type UserDirectoryParams struct {
	fx.In

	App                    *firebase.App
	CircuitBreakerRegistry *CircuitBreakerRegistry
}

func NewUserDirectory(params UserDirectoryParams) (*UserDirectory, error) {
	users, err := params.App.Auth(context.Background())
	if err != nil {
		return nil, err
	}

	return &UserDirectory{
		users:                  users,
		circuitBreakerRegistry: params.CircuitBreakerRegistry,
	}, nil
}

// LookupUser resolves uid to a Recipient. An unknown uid is returned as the
// provider's error; a known user without an address yields an empty Email.
func (d *UserDirectory) LookupUser(ctx context.Context, uid string) (Recipient, error) {
	return execute(ctx, d.circuitBreakerRegistry, ProviderAuth, "get_user",
		func(ctx context.Context) (Recipient, error) {
			user, err := d.users.GetUser(ctx, uid)
			if err != nil {
				return Recipient{}, err
			}
			if user == nil || user.UserInfo == nil {
				return Recipient{}, errors.New("identity provider returned an empty user record")
			}

			return Recipient{
				UID:   user.UID,
				Email: user.Email,
			}, nil
		},
	)
}
