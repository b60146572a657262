// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"io"
	"io/fs"
	"net/http"
	"path/filepath"
	"time"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/luxfi/transmission"
)

var logger = loggo.GetLogger("transmission.remote")

const (
	defaultURL     = "http://localhost:9091/transmission/rpc"
	configName     = ".transmission-remote"
	defaultLogging = "<root>=WARNING"
)

// Configuration keys. Each is settable by flag, by config file and, for the
// connection settings, by environment variable.
const (
	keyURL       = "url"
	keyUser      = "user"
	keyPassword  = "password"
	keyConfig    = "config"
	keyLogConfig = "log-config"
	keyTimeout   = "timeout"
	keyRate      = "rate"
)

var envKeys = map[string]string{
	keyURL:      "TURL",
	keyUser:     "TUSER",
	keyPassword: "TPWD",
}

// app carries what every subcommand needs.
type app struct {
	v      *viper.Viper
	out    io.Writer
	client *transmission.Client
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out}

	root := &cobra.Command{
		Use:           "transmission-remote",
		Short:         "Control a Transmission daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.String(keyURL, defaultURL, "RPC endpoint of the daemon (env TURL)")
	flags.String(keyUser, "", "basic auth user (env TUSER)")
	flags.String(keyPassword, "", "basic auth password (env TPWD)")
	flags.String(keyConfig, "", "config file (default is $HOME/"+configName+".yaml)")
	flags.String(keyLogConfig, defaultLogging, "logging configuration, e.g. transmission=DEBUG")
	flags.Duration(keyTimeout, 30*time.Second, "timeout of each HTTP request")
	flags.Float64(keyRate, 0, "maximum calls per second, 0 for no limit")
	for _, key := range []string{keyURL, keyUser, keyPassword, keyConfig, keyLogConfig, keyTimeout, keyRate} {
		// Binding a flag that exists cannot fail.
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}
	for key, env := range envKeys {
		_ = a.v.BindEnv(key, env)
	}

	root.AddCommand(
		a.sessionCmd(),
		a.sessionSetCmd(),
		a.statsCmd(),
		a.closeCmd(),
		a.freeSpaceCmd(),
		a.portTestCmd(),
		a.blocklistUpdateCmd(),
		a.listCmd(),
		a.addCmd(),
		a.removeCmd(),
		a.actionCmd("start", "Start torrents", transmission.ActionStart),
		a.actionCmd("stop", "Stop torrents", transmission.ActionStop),
		a.actionCmd("verify", "Verify local data of torrents", transmission.ActionVerify),
		a.actionCmd("reannounce", "Ask trackers for more peers", transmission.ActionReannounce),
		a.moveCmd(),
		a.renameCmd(),
		a.queueCmd(),
		a.groupSetCmd(),
		a.groupsCmd(),
	)
	return root
}

// setup reads the config file, configures logging and builds the client.
func (a *app) setup() error {
	if err := a.readConfig(); err != nil {
		return errors.Trace(err)
	}
	if err := loggo.ConfigureLoggers(a.v.GetString(keyLogConfig)); err != nil {
		return errors.Annotate(err, "configuring logging")
	}

	opts := []transmission.Option{
		transmission.WithHTTPClient(&http.Client{
			Timeout:   a.v.GetDuration(keyTimeout),
			Transport: &http.Transport{DisableKeepAlives: true},
		}),
	}
	if user := a.v.GetString(keyUser); user != "" {
		opts = append(opts, transmission.WithBasicAuth(user, a.v.GetString(keyPassword)))
	}
	if perSecond := a.v.GetFloat64(keyRate); perSecond > 0 {
		opts = append(opts, transmission.WithRateLimiter(rate.NewLimiter(rate.Limit(perSecond), 1)))
	}
	a.client = transmission.New(a.v.GetString(keyURL), opts...)
	logger.Debugf("using %s", a.client.Endpoint())
	return nil
}

func (a *app) readConfig() error {
	if file := a.v.GetString(keyConfig); file != "" {
		path, err := homedir.Expand(file)
		if err != nil {
			return errors.Trace(err)
		}
		a.v.SetConfigFile(path)
		return errors.Annotatef(a.v.ReadInConfig(), "reading %s", path)
	}

	home, err := homedir.Dir()
	if err != nil {
		logger.Debugf("no home directory: %v", err)
		return nil
	}
	a.v.SetConfigFile(filepath.Join(home, configName+".yaml"))
	switch err := a.v.ReadInConfig(); {
	case err == nil:
		logger.Debugf("read %s", a.v.ConfigFileUsed())
	case errors.Is(err, fs.ErrNotExist):
		// The default config file is optional.
	default:
		return errors.Annotate(err, "reading config")
	}
	return nil
}
