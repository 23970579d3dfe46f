package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultRegion = "us-east-1"
	defaultBucket = "intelliparse1"
	defaultModel  = "anthropic.claude-3-haiku-20240307-v1:0"
	defaultVoice  = "Joanna"
)

// LoadEnv reads dotenv files into the process environment, .env.local and
// .env unless paths are given. Missing files are skipped and variables that
// are already set keep their value, so earlier files take precedence.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env.local", ".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	return nil
}

// parseEnv maps the process environment onto the same structure a config
// file decodes into.
func parseEnv() (*configFile, error) {
	mock := envBool("MOCK_PIPELINE")
	test := strings.EqualFold(env("APP_ENV"), "test")

	limit, err := envInt("RATE_LIMIT")

	if err != nil {
		return nil, err
	}

	pollMS, err := envInt("TEXTRACT_POLL_MS")

	if err != nil {
		return nil, err
	}

	maxPolls, err := envInt("TEXTRACT_MAX_POLLS")

	if err != nil {
		return nil, err
	}

	file := &configFile{
		Address: envOr("ADDRESS", ":8080"),
		Mock:    mock,

		AWS: awsConfig{
			Region: envOr("AWS_REGION", defaultRegion),

			AccessKeyID:     env("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: env("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    env("AWS_SESSION_TOKEN"),

			Endpoint: env("AWS_ENDPOINT_URL"),
		},

		Storage: storageConfig{
			Type:   "s3",
			Bucket: envOr("UPLOAD_BUCKET", defaultBucket),

			Limit: limit,
		},

		Extractor: extractorConfig{
			Type: "textract",

			Test:     test,
			Fallback: envBool("ALLOW_FAKE_TEXTRACT"),

			Limit: limit,
		},

		Parser: parserConfig{
			Type: strings.ToLower(envOr("PARSER_TYPE", "bedrock")),

			URL:   env("PARSER_URL"),
			Token: env("PARSER_TOKEN"),

			Project:  env("GOOGLE_CLOUD_PROJECT"),
			Location: env("GOOGLE_CLOUD_LOCATION"),

			Limit: limit,
		},

		Speech: speechConfig{
			Type: strings.ToLower(envOr("SPEECH_TYPE", "polly")),

			Model: env("SPEECH_MODEL"),
			Voice: env("POLLY_VOICE"),

			URL:   env("SPEECH_URL"),
			Token: env("SPEECH_TOKEN"),

			Mock: mock || test,

			Limit: limit,
		},
	}

	if pollMS != nil {
		file.Extractor.Interval = time.Duration(*pollMS) * time.Millisecond
	}

	if maxPolls != nil {
		file.Extractor.Attempts = *maxPolls
	}

	if file.Parser.Type == "bedrock" {
		file.Parser.Model = envOr("BEDROCK_MODEL_ID", defaultModel)
	} else {
		file.Parser.Model = env("PARSER_MODEL")
	}

	if file.Speech.Type == "polly" && file.Speech.Voice == "" {
		file.Speech.Voice = defaultVoice
	}

	if mock {
		file.Storage.Type = "memory"
		file.Extractor.Type = "static"
	}

	return file, nil
}

// env returns the cleaned variable. A value that is empty after cleaning
// counts as unset.
func env(name string) string {
	return cleanValue(os.Getenv(name))
}

func envOr(name, def string) string {
	if val := env(name); val != "" {
		return val
	}

	return def
}

func envBool(name string) bool {
	switch strings.ToLower(env(name)) {
	case "1", "true", "yes", "on":
		return true
	}

	return false
}

func envInt(name string) (*int, error) {
	val := env(name)

	if val == "" {
		return nil, nil
	}

	i, err := strconv.Atoi(val)

	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	return &i, nil
}
