package usecase

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/m-mizutani/ghrepo/pkg/domain"
	"github.com/m-mizutani/ghrepo/pkg/domain/interfaces"
	"github.com/m-mizutani/ghrepo/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type ConfigService struct {
	configDir string
}

func NewConfigService() interfaces.ConfigService {
	return &ConfigService{
		configDir: defaultConfigDir(),
	}
}

func defaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ghrepo")
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "ghrepo")
}

func (s *ConfigService) GetDefaultPath() string {
	return filepath.Join(s.configDir, "config.toml")
}

func (s *ConfigService) Load(path string) (*model.Config, error) {
	var cfg model.Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, domain.ErrConfig.Wrap(err)
	}

	if keys := meta.Undecoded(); len(keys) > 0 {
		return nil, domain.ErrConfig.Wrap(goerr.New("unknown key " + strconv.Quote(keys[0].String())))
	}
	if meta.IsDefined("remote") && cfg.Remote == "" {
		return nil, domain.ErrConfig.Wrap(goerr.New("remote must not be empty"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (s *ConfigService) LoadDefault() (*model.Config, error) {
	path := s.GetDefaultPath()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &model.Config{}, nil
		}
		return nil, domain.ErrConfig.Wrap(err)
	}
	return s.Load(path)
}

// LoadFromDirectory looks for a project-local configuration inside dir.
// It returns the path actually loaded, or "" when no file was found; on a
// broken file the path is still returned for error reporting.
func (s *ConfigService) LoadFromDirectory(dir string) (*model.Config, string, error) {
	for _, name := range []string{".ghrepo.toml", "ghrepo.toml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		cfg, err := s.Load(path)
		if err != nil {
			return nil, path, err
		}
		return cfg, path, nil
	}
	return &model.Config{}, "", nil
}

func (s *ConfigService) GenerateTemplate() string {
	return `# ghrepo configuration file
#
# Every setting is optional. Uncomment a line to override the default.

# Git remote consulted when no --remote flag is given.
# remote = "origin"

# GitHub Enterprise host accepted in addition to github.com.
# host = "github.example.com"

# Default owner paired with bare repository names.
# owner = "octocat"

# Emit JSON instead of plain text.
# json = false
`
}

func (s *ConfigService) SaveTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return domain.ErrConfig.Wrap(goerr.New("file already exists: " + path))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return domain.ErrConfig.Wrap(err)
		}
	}
	if err := os.WriteFile(path, []byte(s.GenerateTemplate()), 0600); err != nil {
		return domain.ErrConfig.Wrap(err)
	}
	return nil
}
