package dynamodb

import (
	"context"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ClientConfig holds explicit construction parameters for the DynamoDB
// client. Endpoint enables DynamoDB Local or LocalStack deployments; when
// empty the SDK resolves the regional endpoint. AccessKey and SecretKey
// override the default credential chain, which local deployments need since
// they accept any key pair.
type ClientConfig struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewClient builds a DynamoDB client from the default credential chain,
// honoring an alternate region, endpoint, and static credentials. The client
// is safe for concurrent use and is shared across requests.
func NewClient(ctx context.Context, cfg ClientConfig) (*dynamodb.Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return client, nil
}
