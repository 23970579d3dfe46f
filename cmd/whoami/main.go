package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MMansij/New-Int/config"
	"github.com/MMansij/New-Int/pkg/awsutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

const defaultProfile = "intelliparse-dev-user"

func main() {
	ctx := context.Background()

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := awsutil.LoadConfig(ctx, awsutil.Options{
		Region:  envOr("AWS_REGION", "us-east-1"),
		Profile: envOr("AWS_PROFILE", defaultProfile),

		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
	})

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	identity, err := sts.NewFromConfig(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})

	if err != nil {
		fmt.Fprintln(os.Stderr, awsutil.ConvertError(err))
		os.Exit(1)
	}

	fmt.Println("Account:", aws.ToString(identity.Account))
	fmt.Println("ARN:    ", aws.ToString(identity.Arn))
	fmt.Println("UserId: ", aws.ToString(identity.UserId))
}

func envOr(name, def string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}

	return def
}
