package database

import (
	"context"
	"testing"

	appconfig "mercadopago_sync/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestDynamoDBOptions(t *testing.T) {
	if opts := dynamoDBOptions(appconfig.AWSConfig{}); len(opts) != 0 {
		t.Fatalf("expected no options without endpoint")
	}

	opts := dynamoDBOptions(appconfig.AWSConfig{DynamoDBEndpoint: " http://dynamodb:8000 "})
	if len(opts) != 1 {
		t.Fatalf("expected one option, got %d", len(opts))
	}
	var o dynamodb.Options
	opts[0](&o)
	if o.BaseEndpoint == nil || *o.BaseEndpoint != "http://dynamodb:8000" {
		t.Fatalf("unexpected endpoint: %v", o.BaseEndpoint)
	}
}

func TestNewAWSConfig(t *testing.T) {
	cfg, err := NewAWSConfig(context.Background(), appconfig.AWSConfig{Region: "sa-east-1", AccessKeyID: "local", SecretAccessKey: "local"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("unexpected region: %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("unexpected credentials: %+v err=%v", creds, err)
	}
}
