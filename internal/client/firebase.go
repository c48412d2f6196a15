package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const googleTokenURI = "https://oauth2.googleapis.com/token"

// FirebaseConfig is the service-account credential bundle. All fields are
// required; the fx graph fails to build when one is missing.
type FirebaseConfig struct {
	ProjectID   string `envconfig:"FIREBASE_PROJECT_ID" required:"true"`
	ClientEmail string `envconfig:"FIREBASE_CLIENT_EMAIL" required:"true"`
	PrivateKey  string `envconfig:"FIREBASE_PRIVATE_KEY" required:"true"`
}

func NewFirebaseConfig() (FirebaseConfig, error) {
	var cfg FirebaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return FirebaseConfig{}, err
	}
	if err := cfg.validate(); err != nil {
		return FirebaseConfig{}, err
	}
	cfg.PrivateKey = NormalizePrivateKey(cfg.PrivateKey)

	return cfg, nil
}

// validate also rejects variables that are set but empty, which envconfig's
// required tag lets through.
func (c FirebaseConfig) validate() error {
	var missing []string
	if strings.TrimSpace(c.ProjectID) == "" {
		missing = append(missing, "FIREBASE_PROJECT_ID")
	}
	if strings.TrimSpace(c.ClientEmail) == "" {
		missing = append(missing, "FIREBASE_CLIENT_EMAIL")
	}
	if strings.TrimSpace(c.PrivateKey) == "" {
		missing = append(missing, "FIREBASE_PRIVATE_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missing)
	}
	return nil
}

// NormalizePrivateKey turns the literal two-character sequence `\n`, as found
// in single-line environment values, into real newlines.
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

func (c FirebaseConfig) credentialsJSON() ([]byte, error) {
	return json.Marshal(serviceAccount{
		Type:        "service_account",
		ProjectID:   c.ProjectID,
		ClientEmail: c.ClientEmail,
		PrivateKey:  c.PrivateKey,
		TokenURI:    googleTokenURI,
	})
}

type FirebaseAppParams struct {
	fx.In

	Config FirebaseConfig
	Logger *zap.Logger `optional:"true"`
}

func NewFirebaseApp(params FirebaseAppParams) (*firebase.App, error) {
	credentials, err := params.Config.credentialsJSON()
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(
		context.Background(),
		&firebase.Config{ProjectID: params.Config.ProjectID},
		option.WithCredentialsJSON(credentials),
	)
	if err != nil {
		return nil, err
	}

	if params.Logger != nil {
		params.Logger.Info("firebase app initialized",
			zap.String("project_id", params.Config.ProjectID),
			zap.String("client_email", params.Config.ClientEmail),
		)
	}
	return app, nil
}
