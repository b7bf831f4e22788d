package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	// Containers built FROM scratch have no zoneinfo.
	_ "time/tzdata"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"

	defaultPort           = "8080"
	defaultTimezone       = "America/Sao_Paulo"
	defaultGatewayTimeout = 10 * time.Second
)

// AWS holds the settings shared by every AWS client. Empty endpoints mean the
// regular AWS endpoints; set them to point at DynamoDB Local or LocalStack.
type AWS struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
	SNSEndpoint      string
}

// DynamoDB names the tables used by the DynamoDB repositories and bounds each
// gateway write.
type DynamoDB struct {
	ContractsTable string
	OvertimeTable  string
	AccountsTable  string
	AuditTable     string
	GatewayTimeout time.Duration
}

// Config is the process configuration, read once at startup.
type Config struct {
	Port              string
	PersistenceDriver string
	AWS               AWS
	DynamoDB          DynamoDB
	NotifyTopicARN    string
	JWTSecret         string
	Location          *time.Location
}

// AuthEnabled reports whether the actor must come from a signed bearer token.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// FromEnv reads the configuration from environment variables. A .env file, when
// present, is loaded into the environment by cmd/api before this runs.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - PERSISTENCE_DRIVER: dynamodb | memory (default: dynamodb)
//   - AWS_REGION (default: us-east-1), AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT, SNS_ENDPOINT (optional)
//   - CONTRACTS_TABLE, OVERTIME_TABLE, ACCOUNTS_TABLE, AUDIT_TABLE
//   - GATEWAY_TIMEOUT: Go duration or whole seconds (default: 10s)
//   - NOTIFY_SNS_TOPIC_ARN (optional; enables SNS notifications)
//   - AUTH_JWT_SECRET (optional; enables bearer token auth)
//   - APP_TIMEZONE (default: America/Sao_Paulo)
func FromEnv() (Config, error) {
	driver := strings.ToLower(getenvDefault("PERSISTENCE_DRIVER", DriverDynamoDB))
	if driver != DriverDynamoDB && driver != DriverMemory {
		return Config{}, fmt.Errorf("config: unknown PERSISTENCE_DRIVER %q", driver)
	}

	tz := getenvDefault("APP_TIMEZONE", defaultTimezone)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid APP_TIMEZONE %q: %w", tz, err)
	}

	timeout, err := gatewayTimeout()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:              getenvDefault("PORT", defaultPort),
		PersistenceDriver: driver,
		AWS: AWS{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
			SNSEndpoint:      os.Getenv("SNS_ENDPOINT"),
		},
		DynamoDB: DynamoDB{
			ContractsTable: getenvDefault("CONTRACTS_TABLE", "contracts"),
			OvertimeTable:  getenvDefault("OVERTIME_TABLE", "overtime_records"),
			AccountsTable:  getenvDefault("ACCOUNTS_TABLE", "user_accounts"),
			AuditTable:     getenvDefault("AUDIT_TABLE", "audit_records"),
			GatewayTimeout: timeout,
		},
		NotifyTopicARN: os.Getenv("NOTIFY_SNS_TOPIC_ARN"),
		JWTSecret:      os.Getenv("AUTH_JWT_SECRET"),
		Location:       loc,
	}, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func gatewayTimeout() (time.Duration, error) {
	v := getenvDefault("GATEWAY_TIMEOUT", "")
	if v == "" {
		return defaultGatewayTimeout, nil
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d, nil
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second, nil
	}
	return 0, fmt.Errorf("config: invalid GATEWAY_TIMEOUT %q", v)
}
