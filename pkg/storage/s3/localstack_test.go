package s3_test

import (
	"context"
	"io"
	"testing"

	"github.com/MMansij/New-Int/pkg/storage"
	storages3 "github.com/MMansij/New-Int/pkg/storage/s3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestStoreLocalstack(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	server, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,

		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "localstack/localstack:3.8",
			ExposedPorts: []string{"4566/tcp"},

			Env: map[string]string{
				"SERVICES": "s3",
			},

			WaitingFor: wait.ForHTTP("/_localstack/health").WithPort("4566/tcp"),
		},
	})

	testcontainers.CleanupContainer(t, server)
	require.NoError(t, err)

	endpoint, err := server.Endpoint(ctx, "http")
	require.NoError(t, err)

	cfg := aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("test", "test", ""),
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String("intelliparse1"),
	})

	require.NoError(t, err)

	c, err := storages3.New("intelliparse1", storages3.WithConfig(cfg), storages3.WithEndpoint(endpoint))
	require.NoError(t, err)

	l, err := c.Store(ctx, storage.File{
		Name: "receipt.png",

		Content:     []byte("png-bytes"),
		ContentType: "image/png",
	})

	require.NoError(t, err)

	obj, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.Bucket),
		Key:    aws.String(l.Key),
	})

	require.NoError(t, err)
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	require.NoError(t, err)

	require.Equal(t, "png-bytes", string(data))
	require.Equal(t, "image/png", aws.ToString(obj.ContentType))
}
