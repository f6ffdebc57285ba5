package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/canyfix/repairdesk/internal/gate"
	httpclient "github.com/canyfix/repairdesk/internal/pkg/http"
	"github.com/canyfix/repairdesk/internal/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyAPIURL    = "api-url"
	keyTokenFile = "token-file"
	keyScope     = "scope"
	keyTimeout   = "timeout"
	keyDebug     = "debug"
)

// app carries the resolved configuration to every subcommand
type app struct {
	v *viper.Viper
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v}
	var configFile string

	root := &cobra.Command{
		Use:          "repairctl",
		Short:        "Repairman portal on the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(configFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default $HOME/.repairctl.yaml)")
	flags.String(keyAPIURL, "http://localhost:8000", "repair service base URL")
	flags.String(keyTokenFile, defaultTokenFile(), "file that keeps access tokens between runs")
	flags.String(keyScope, "global", "token scope: global or job")
	flags.Duration(keyTimeout, httpclient.DefaultTimeout, "request timeout")
	flags.Bool(keyDebug, false, "log requests")
	for _, key := range []string{keyAPIURL, keyTokenFile, keyScope, keyTimeout, keyDebug} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(
		a.showCmd(),
		a.loginCmd(),
		a.startCmd(),
		a.closeCmd(),
		a.logoutCmd(),
	)
	return root
}

func (a *app) loadConfig(configFile string) error {
	a.v.SetEnvPrefix("REPAIRCTL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if configFile != "" {
		a.v.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigName(".repairctl")
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	level := "warn"
	if a.v.GetBool(keyDebug) {
		level = "debug"
	}
	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{Level: level, Service: "repairctl"}, nil)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger.SetGlobalLogger(zapLogger)
	return nil
}

func (a *app) scope() (gate.TokenScope, error) {
	switch s := a.v.GetString(keyScope); s {
	case "", "global":
		return gate.ScopeGlobal, nil
	case "job":
		return gate.ScopePerJob, nil
	default:
		return 0, fmt.Errorf("unknown token scope %q, want global or job", s)
	}
}

func (a *app) newGate(jobArg string) (*gate.Gate, error) {
	jobID, err := strconv.ParseInt(jobArg, 10, 64)
	if err != nil || jobID <= 0 {
		return nil, fmt.Errorf("invalid job id %q", jobArg)
	}
	scope, err := a.scope()
	if err != nil {
		return nil, err
	}

	api := gate.NewRESTClient(httpclient.Config{
		BaseURL: a.v.GetString(keyAPIURL),
		Timeout: a.v.GetDuration(keyTimeout),
	})
	store := gate.NewFileStore(a.v.GetString(keyTokenFile))
	return gate.New(jobID, api, store, gate.WithScope(scope)), nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repairctl-tokens.json"
	}
	return filepath.Join(home, ".repairctl", "tokens.json")
}
