package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultAlchemyUrl  = "https://eth-mainnet.g.alchemy.com/v2"
	DefaultSnapshotUrl = "https://hub.snapshot.org/graphql"
	DefaultHttpTimeout = 10 * time.Second
)

type ServerCfg struct {
	Address string
}

type AlchemyCfg struct {
	Url     string
	ApiKey  string
	Timeout time.Duration
}

// Configured reports whether the resolver credential is present
func (c AlchemyCfg) Configured() bool {
	return len(strings.TrimSpace(c.ApiKey)) > 0
}

type SnapshotCfg struct {
	Url     string
	First   int
	Timeout time.Duration
}

type ResolverProxyCfg struct {
	Url     string
	Timeout time.Duration
}

// Config is built once at start and handed to every component that needs it
type Config struct {
	Debug         bool
	AppName       string
	EnvName       string
	DatadogHost   string
	Server        ServerCfg
	Alchemy       AlchemyCfg
	Snapshot      SnapshotCfg
	ResolverProxy ResolverProxyCfg
}

// Read loads the yaml file at path into a new viper instance and binds the
// environment variables that may override it.
func Read(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := bindEnv(v); err != nil {
		return nil, err
	}
	return v, nil
}

func bindEnv(v *viper.Viper) error {
	// the credential is never expected in the yaml file
	if err := v.BindEnv("alchemy.apiKey", "ALCHEMY_API_KEY"); err != nil {
		return err
	}
	if err := v.BindEnv("env_name", "ENV_NAME"); err != nil {
		return err
	}
	return v.BindEnv("server.address", "SERVER_ADDRESS")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "chaincv")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("alchemy.url", DefaultAlchemyUrl)
	v.SetDefault("alchemy.timeout", DefaultHttpTimeout)
	v.SetDefault("snapshot.url", DefaultSnapshotUrl)
	v.SetDefault("snapshot.first", 20)
	v.SetDefault("snapshot.timeout", DefaultHttpTimeout)
	v.SetDefault("resolverProxy.timeout", DefaultHttpTimeout)
}

// Load turns v into a Config. The resolver proxy url falls back to this
// server's own address.
func Load(v *viper.Viper) Config {
	setDefaults(v)

	cfg := Config{
		Debug:       v.GetBool("debug"),
		AppName:     v.GetString("app_name"),
		EnvName:     v.GetString("env_name"),
		DatadogHost: v.GetString("datadog_host"),
		Server: ServerCfg{
			Address: v.GetString("server.address"),
		},
		Alchemy: AlchemyCfg{
			Url:     strings.TrimRight(v.GetString("alchemy.url"), "/"),
			ApiKey:  v.GetString("alchemy.apiKey"),
			Timeout: v.GetDuration("alchemy.timeout"),
		},
		Snapshot: SnapshotCfg{
			Url:     v.GetString("snapshot.url"),
			First:   v.GetInt("snapshot.first"),
			Timeout: v.GetDuration("snapshot.timeout"),
		},
		ResolverProxy: ResolverProxyCfg{
			Url:     strings.TrimRight(v.GetString("resolverProxy.url"), "/"),
			Timeout: v.GetDuration("resolverProxy.timeout"),
		},
	}

	if cfg.ResolverProxy.Url == "" {
		cfg.ResolverProxy.Url = localUrl(cfg.Server.Address)
	}

	return cfg
}

func localUrl(address string) string {
	if strings.HasPrefix(address, ":") {
		return "http://localhost" + address
	}
	return "http://" + address
}
