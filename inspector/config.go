package inspector

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"

	"github.com/devon-mar/linkhdr/utils/envtag"
	"github.com/devon-mar/linkhdr/utils/pageutil"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix           = "LINKHDR_"
	envPaginationPrefix = envPrefix + "PAGINATION_"

	FormatYAML = "yaml"
	FormatJSON = "json"
)

type Config struct {
	RequireRel bool   `yaml:"require_rel"`
	Format     string `yaml:"format" validate:"omitempty,oneof=yaml json"`

	Resolver   typeConfig       `yaml:"resolver"`
	Pagination paginationConfig `yaml:"pagination"`
}

type paginationConfig struct {
	PageParam   string `yaml:"page_param"`
	CursorParam string `yaml:"cursor_param"`
	BaseURL     string `yaml:"base_url" validate:"omitempty,url"`

	// To be populated by init()
	baseURL *url.URL
}

func (c *Config) init() error {
	if err := envtag.Unmarshal("yaml", envPrefix, c); err != nil {
		return err
	}
	if c.Format == "" {
		c.Format = FormatYAML
	}
	if c.Resolver.Type == "" {
		c.Resolver.Type = typeReference
	}
	return c.Pagination.init()
}

func (c *Config) validate() error {
	return validator.New().Struct(c)
}

func (pc *paginationConfig) init() error {
	if err := envtag.Unmarshal("yaml", envPaginationPrefix, pc); err != nil {
		return err
	}
	if pc.PageParam == "" {
		pc.PageParam = pageutil.DefaultPageParam
	}
	if pc.CursorParam == "" {
		pc.CursorParam = pageutil.DefaultCursorParam
	}
	if pc.BaseURL != "" {
		var err error
		if pc.baseURL, err = url.Parse(pc.BaseURL); err != nil {
			return fmt.Errorf("error parsing base URL: %w", err)
		}
	}
	return nil
}

type typeConfig struct {
	Type   string                 `validate:"omitempty,oneof=reference absolute"`
	Config map[string]interface{} `validate:"-"`
}

func (tc *typeConfig) UnmarshalYAML(value *yaml.Node) error {
	tmp := struct {
		Type string `yaml:"type"`
	}{}
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	tc.Type = tmp.Type

	tc.Config = map[string]interface{}{}
	// Decode the rest...
	if err := value.Decode(tc.Config); err != nil {
		return err
	}
	delete(tc.Config, "type")

	return nil
}

// DefaultConfig returns the config used when there is no config file.
func DefaultConfig() (*Config, error) {
	c := &Config{}
	if err := c.init(); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ReadConfig reads the config at path. If optional is true and the file
// does not exist, DefaultConfig is returned.
func ReadConfig(path string, optional bool) (*Config, error) {
	f, err := os.Open(path)
	if optional && errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig()
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	d := yaml.NewDecoder(f)
	d.KnownFields(true)

	c := &Config{}
	// https://github.com/go-yaml/yaml/issues/639#issuecomment-666935833
	if err := d.Decode(c); err != nil && err != io.EOF {
		return nil, err
	}

	if err = c.init(); err != nil {
		return nil, err
	}

	if err = c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}
