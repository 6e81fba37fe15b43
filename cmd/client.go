package cmd

import (
	"github.com/go-logr/logr"

	"github.com/appcircle-io/appcircle-cli/pkg/api"
	"github.com/appcircle-io/appcircle-cli/pkg/config"
)

// newAPIClient builds an API client from the current environment of the
// config file, with environment-variable settings taking precedence over
// persisted values.
func newAPIClient(log logr.Logger) (*api.Client, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	cfg, err := manager.Load()
	if err != nil {
		return nil, err
	}
	env := cfg.CurrentEnv()

	host := Settings.APIHostname
	if host == "" {
		host = env.APIHostname
	}
	if host == "" {
		host = config.DefaultAPIHostname
	}
	token := Settings.AccessToken
	if token == "" {
		token = env.AccessToken
	}

	return api.NewClient(host, token, log), nil
}
