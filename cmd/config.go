package cmd

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/appcircle-io/appcircle-cli/pkg/config"
)

// configurable keys within an environment
const (
	keyAPIHostname  = "API_HOSTNAME"
	keyAuthHostname = "AUTH_HOSTNAME"
	keyAccessToken  = "AC_ACCESS_TOKEN"
)

func NewConfigCmd(log logr.Logger) *cobra.Command {
	configCommand := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI environments and credentials",
	}

	configCommand.AddCommand(newConfigListCmd(log))
	configCommand.AddCommand(newConfigGetCmd(log))
	configCommand.AddCommand(newConfigSetCmd(log))
	configCommand.AddCommand(newConfigCurrentCmd(log))
	configCommand.AddCommand(newConfigAddCmd(log))
	configCommand.AddCommand(newConfigResetCmd(log))
	configCommand.AddCommand(newConfigTokenStatusCmd(log))

	return configCommand
}

func loadConfig() (*config.Manager, *config.Config, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := manager.Load()
	if err != nil {
		return nil, nil, err
	}
	return manager, cfg, nil
}

func newConfigListCmd(log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured environments",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadConfig()
			if err != nil {
				return err
			}
			// tokens stay out of the listing
			type envView struct {
				APIHostname  string `json:"API_HOSTNAME" yaml:"API_HOSTNAME"`
				AuthHostname string `json:"AUTH_HOSTNAME" yaml:"AUTH_HOSTNAME"`
				HasToken     bool   `json:"hasToken" yaml:"hasToken"`
			}
			view := map[string]interface{}{"current": cfg.Current}
			envs := map[string]envView{}
			for name, env := range cfg.Envs {
				envs[name] = envView{
					APIHostname:  env.APIHostname,
					AuthHostname: env.AuthHostname,
					HasToken:     env.AccessToken != "",
				}
			}
			view["envs"] = envs
			return printResult(view)
		},
	}
}

func newConfigGetCmd(log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print a value from the current environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadConfig()
			if err != nil {
				return err
			}
			env := cfg.CurrentEnv()
			switch args[0] {
			case keyAPIHostname:
				fmt.Println(env.APIHostname)
			case keyAuthHostname:
				fmt.Println(env.AuthHostname)
			case keyAccessToken:
				fmt.Println(env.AccessToken)
			default:
				return fmt.Errorf("unknown config key %q", args[0])
			}
			return nil
		},
	}
}

func newConfigSetCmd(log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a value in the current environment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, cfg, err := loadConfig()
			if err != nil {
				return err
			}
			env := cfg.CurrentEnv()
			switch args[0] {
			case keyAPIHostname:
				env.APIHostname = args[1]
			case keyAuthHostname:
				env.AuthHostname = args[1]
			case keyAccessToken:
				env.AccessToken = args[1]
			default:
				return fmt.Errorf("unknown config key %q", args[0])
			}
			return manager.Save(cfg)
		},
	}
}

func newConfigCurrentCmd(log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "current [NAME]",
		Short: "Show or switch the active environment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Println(cfg.Current)
				return nil
			}
			if _, ok := cfg.Envs[args[0]]; !ok {
				return fmt.Errorf("environment %q does not exist, add it with 'config add %s'", args[0], args[0])
			}
			cfg.Current = args[0]
			return manager.Save(cfg)
		},
	}
}

func newConfigAddCmd(log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Add a new environment with default hostnames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if _, ok := cfg.Envs[args[0]]; ok {
				return fmt.Errorf("environment %q already exists", args[0])
			}
			cfg.Envs[args[0]] = &config.Environment{
				APIHostname:  config.DefaultAPIHostname,
				AuthHostname: config.DefaultAuthHostname,
			}
			return manager.Save(cfg)
		},
	}
}

func newConfigResetCmd(log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the config file to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.NewManager()
			if err != nil {
				return err
			}
			return manager.Reset()
		},
	}
}

func newConfigTokenStatusCmd(log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "token-status",
		Short: "Show the expiry of the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadConfig()
			if err != nil {
				return err
			}
			token := cfg.CurrentEnv().AccessToken
			if token == "" {
				return fmt.Errorf("no access token stored for environment %q, run 'appcircle login' first", cfg.Current)
			}
			expiry, ok := tokenExpiry(token)
			if !ok {
				fmt.Println("Token stored, but its expiry could not be determined.")
				return nil
			}
			if time.Now().After(expiry) {
				fmt.Printf("Token expired at %s\n", expiry.Format(time.RFC3339))
			} else {
				fmt.Printf("Token valid until %s\n", expiry.Format(time.RFC3339))
			}
			return nil
		},
	}
}
