package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv(ConfigEnv, "")
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) writeConfig(body string) string {
	path := filepath.Join(s.dir, "pcomb.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o644))
	return path
}

func (s *ConfigTestSuite) TestLoadFile() {
	require := s.Require()
	path := s.writeConfig("grammar: number.ebnf\nstart: Number\nformat: json\nverbosity: 2\n")

	cfg, err := Load(path)
	require.NoError(err)
	require.Equal("number.ebnf", cfg.Grammar)
	require.Equal("Number", cfg.Start)
	require.Equal("json", cfg.Format)
	require.Equal(2, cfg.Verbosity)
	require.Equal(8, cfg.Parallelism)
}

func (s *ConfigTestSuite) TestLoadFromEnvPath() {
	require := s.Require()
	path := s.writeConfig("start: Digits\n")
	s.T().Setenv(ConfigEnv, path)

	cfg, err := Load("")
	require.NoError(err)
	require.Equal("Digits", cfg.Start)
}

func (s *ConfigTestSuite) TestEnvOverridesFile() {
	require := s.Require()
	path := s.writeConfig("start: Number\n")
	s.T().Setenv("PCOMB_START", "Fraction")

	cfg, err := Load(path)
	require.NoError(err)
	require.Equal("Fraction", cfg.Start)
}

func (s *ConfigTestSuite) TestMissingExplicitFile() {
	_, err := Load(filepath.Join(s.dir, "nope.yaml"))
	s.Require().Error(err)
}

func (s *ConfigTestSuite) TestMissingDefaultFileUsesDefaults() {
	require := s.Require()
	wd, err := os.Getwd()
	require.NoError(err)
	require.NoError(os.Chdir(s.dir))
	defer os.Chdir(wd)

	cfg, err := Load("")
	require.NoError(err)
	require.Equal(Defaults(), cfg)
}

func (s *ConfigTestSuite) TestLoadDoesNotValidate() {
	require := s.Require()
	path := s.writeConfig("format: xml\n")

	cfg, err := Load(path)
	require.NoError(err)
	require.Equal("xml", cfg.Format)
	require.ErrorContains(cfg.Validate(), `unknown format "xml"`)
}

func (s *ConfigTestSuite) TestValidate() {
	require := s.Require()
	require.NoError(Defaults().Validate())

	cfg := Defaults()
	cfg.Format = "xml"
	require.ErrorContains(cfg.Validate(), `unknown format "xml"`)

	cfg = Defaults()
	cfg.Parallelism = -1
	require.ErrorContains(cfg.Validate(), "parallelism")
}

func (s *ConfigTestSuite) TestMarshalRoundTrip() {
	require := s.Require()
	cfg := Defaults()
	cfg.Grammar = "g.ebnf"

	bz, err := cfg.Marshal()
	require.NoError(err)

	var back Config
	require.NoError(yaml.Unmarshal(bz, &back))
	require.Equal(cfg, back)
}
