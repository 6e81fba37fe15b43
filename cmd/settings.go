package cmd

import (
	"github.com/codingconcepts/env"
)

var Settings = &GlobalSettings{}

// GlobalSettings are process-level overrides read from the environment.
// Anything set here wins over the persisted config file, which lets CI
// pipelines run without a config file at all.
type GlobalSettings struct {
	CommandName  string `env:"AC_CMD_NAME" default:"appcircle"`
	APIHostname  string `env:"AC_API_HOSTNAME"`
	AuthHostname string `env:"AC_AUTH_HOSTNAME"`
	AccessToken  string `env:"AC_ACCESS_TOKEN"`
}

func (s *GlobalSettings) Load() error {
	return env.Set(s)
}
