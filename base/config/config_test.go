package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type configSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(configSuite))
}

func (s *configSuite) TestLoadDefaults() {
	cfg := Load(viper.New())

	s.Equal(":8080", cfg.Server.Address)
	s.Equal(DefaultAlchemyUrl, cfg.Alchemy.Url)
	s.Equal(DefaultSnapshotUrl, cfg.Snapshot.Url)
	s.Equal(20, cfg.Snapshot.First)
	s.Equal(DefaultHttpTimeout, cfg.Alchemy.Timeout)
	s.Equal("http://localhost:8080", cfg.ResolverProxy.Url)
	s.False(cfg.Alchemy.Configured())
}

func (s *configSuite) TestLoadOverrides() {
	v := viper.New()
	v.Set("server.address", "127.0.0.1:9000")
	v.Set("alchemy.url", "http://alchemy.local/v2/")
	v.Set("alchemy.apiKey", "secret")
	v.Set("snapshot.first", 5)
	v.Set("snapshot.timeout", "3s")
	v.Set("resolverProxy.url", "http://proxy.local/")

	cfg := Load(v)

	s.Equal("http://alchemy.local/v2", cfg.Alchemy.Url)
	s.True(cfg.Alchemy.Configured())
	s.Equal(5, cfg.Snapshot.First)
	s.Equal(3*time.Second, cfg.Snapshot.Timeout)
	s.Equal("http://proxy.local", cfg.ResolverProxy.Url)
}

func (s *configSuite) TestBlankCredentialIsNotConfigured() {
	s.False(AlchemyCfg{ApiKey: "   "}.Configured())
}

func (s *configSuite) TestReadBindsCredentialFromEnv() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("server:\n  address: \":7070\"\n"), 0o600))

	s.T().Setenv("ALCHEMY_API_KEY", "from-env")

	v, err := Read(path)
	s.Require().NoError(err)

	cfg := Load(v)
	s.Equal(":7070", cfg.Server.Address)
	s.Equal("from-env", cfg.Alchemy.ApiKey)
	s.Equal("http://localhost:7070", cfg.ResolverProxy.Url)
}

func (s *configSuite) TestReadMissingFile() {
	_, err := Read(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Error(err)
}
