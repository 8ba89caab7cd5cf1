package database

import (
	"context"
	"strings"

	appconfig "mercadopago_sync/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

// ConnectDynamoDB creates a DynamoDB client from the AWS settings.
// DynamoDBEndpoint points the client at a local DynamoDB when set.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.AWSConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("region", cfg.Region).Str("endpoint", cfg.DynamoDBEndpoint).Msg("[database][dynamodb] client initialized")
	return dynamodb.NewFromConfig(awsCfg, dynamoDBOptions(cfg)...), nil
}

func NewAWSConfig(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
}

func dynamoDBOptions(cfg appconfig.AWSConfig) []func(*dynamodb.Options) {
	endpoint := strings.TrimSpace(cfg.DynamoDBEndpoint)
	if endpoint == "" {
		return nil
	}
	return []func(*dynamodb.Options){
		func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		},
	}
}
