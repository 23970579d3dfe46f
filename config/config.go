package config

import (
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/MMansij/New-Int/pkg/extractor"
	"github.com/MMansij/New-Int/pkg/limiter"
	"github.com/MMansij/New-Int/pkg/parser"
	"github.com/MMansij/New-Int/pkg/pipeline"
	"github.com/MMansij/New-Int/pkg/speech"
	"github.com/MMansij/New-Int/pkg/storage"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	// Mock is set when uploads never leave the process.
	Mock bool

	storage   storage.Provider
	extractor extractor.Provider
	parser    parser.Provider
	speech    *speech.Client
}

// Parse builds the configuration from the YAML file at path, or from the
// environment when path is empty.
func Parse(path string) (*Config, error) {
	var file *configFile
	var err error

	if path == "" {
		file, err = parseEnv()
	} else {
		file, err = parseFile(path)
	}

	if err != nil {
		return nil, err
	}

	return build(context.Background(), file)
}

func build(ctx context.Context, file *configFile) (*Config, error) {
	c := &Config{
		Address: ":8080",

		Mock: file.Mock,
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	aws, err := c.loadAWS(ctx, file.AWS)

	if err != nil {
		return nil, err
	}

	if err := c.registerStorage(file, aws); err != nil {
		return nil, err
	}

	if err := c.registerExtractor(file, aws); err != nil {
		return nil, err
	}

	if err := c.registerParser(ctx, file, aws); err != nil {
		return nil, err
	}

	if err := c.registerSpeech(ctx, file, aws); err != nil {
		return nil, err
	}

	return c, nil
}

// Pipeline wires the registered stages together.
func (cfg *Config) Pipeline() (*pipeline.Pipeline, error) {
	storage, err := cfg.Storage()

	if err != nil {
		return nil, err
	}

	extractor, err := cfg.Extractor()

	if err != nil {
		return nil, err
	}

	parser, err := cfg.Parser()

	if err != nil {
		return nil, err
	}

	speech, err := cfg.Speech()

	if err != nil {
		return nil, err
	}

	return pipeline.New(storage, extractor, parser, speech)
}

type configFile struct {
	Address string `yaml:"address"`
	Mock    bool   `yaml:"mock"`

	AWS awsConfig `yaml:"aws"`

	Storage   storageConfig   `yaml:"storage"`
	Extractor extractorConfig `yaml:"extractor"`
	Parser    parserConfig    `yaml:"parser"`
	Speech    speechConfig    `yaml:"speech"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return limiter.New(*limit)
}

// cleanValue drops surrounding whitespace and line breaks that sneak into
// values copied from .env files.
func cleanValue(val string) string {
	return strings.TrimSpace(strings.Trim(val, "\r\n"))
}
