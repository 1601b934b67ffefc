package devops

import (
	"context"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// AppConfig is the deployed service configuration, stored as a YAML
// document in an encrypted SSM parameter. Local development overrides
// everything with env vars instead.
type AppConfig struct {
	DSN            string `yaml:"dsn"`
	SigningSecret  string `yaml:"signingSecret"`
	AttachmentsS3  string `yaml:"attachmentsBucket"`
	NotifyEmail    string `yaml:"notifyEmailFrom"`
	SlackInfoCh    string `yaml:"slackInfoChannel"`
	SlackErrorCh   string `yaml:"slackErrorChannel"`
	MaxConnections int    `yaml:"maxConnections"`
}

var (
	once    sync.Once
	cfg     *AppConfig
	loadErr error
)

func LoadAppConfig(ctx context.Context, paramName string) (*AppConfig, error) {
	once.Do(func() {
		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			loadErr = fmt.Errorf("load aws config: %w", err)
			return
		}

		client := ssm.NewFromConfig(awsCfg)

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(paramName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}

		var parsed AppConfig
		if err := yaml.Unmarshal([]byte(*out.Parameter.Value), &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		cfg = &parsed
	})

	return cfg, loadErr
}
