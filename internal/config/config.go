package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Store backends.
const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
)

// Notification backends.
const (
	NotifyNone  = "none"
	NotifySNS   = "sns"
	NotifySQS   = "sqs"
	NotifyKafka = "kafka"
)

// Worker sources.
const (
	WorkerSourceSQS   = "sqs"
	WorkerSourceKafka = "kafka"
)

// Config stores settings shared by the lambdas, the HTTP service and the worker.
type Config struct {
	Port             int
	Tables           Tables
	Store            string
	DB               DB
	AWS              AWS
	Notify           Notify
	Kafka            Kafka
	Worker           Worker
	OperationTimeout time.Duration
}

// Tables holds key-value store table names.
type Tables struct {
	Orders string
	Tokens string
}

// DB holds postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns a postgres connection URL.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// AWS holds SDK overrides. Empty values fall back to the SDK default chain.
type AWS struct {
	Region   string
	Endpoint string
}

// Notify selects where lifecycle events are published.
type Notify struct {
	Backend  string
	TopicARN string
	QueueURL string
}

// Kafka holds broker settings for the kafka publisher and worker source.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Worker holds settings of the relay worker process.
type Worker struct {
	Source      string
	WaitTime    time.Duration
	MaxMessages int
}

// Load reads configuration in order: .env (if present) → environment → command-line flags.
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs is Load with explicit command-line arguments.
func LoadArgs(args []string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:   defaultPort,
		Tables: DefaultTables(),
		Store:  StoreDynamoDB,
		DB:     defaultDB,
		Kafka:  defaultKafka,
		Worker: defaultWorker,

		OperationTimeout: defaultOperationTimeout,
	}

	if err := cfg.fromEnv(); err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet("fast-delivery-orders", pflag.ContinueOnError)
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.Tables.Orders, "orders-table", cfg.Tables.Orders, "orders table name")
	fs.StringVar(&cfg.Tables.Tokens, "tokens-table", cfg.Tables.Tokens, "tracking tokens table name")
	fs.StringVar(&cfg.Store, "store", cfg.Store, "store backend: dynamodb or postgres")
	fs.StringVar(&cfg.Notify.Backend, "notify", cfg.Notify.Backend, "notification backend: sns, sqs, kafka or none")
	fs.StringVar(&cfg.Worker.Source, "worker-source", cfg.Worker.Source, "relay worker source: sqs or kafka")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fromEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = p
	}

	c.Tables.Orders = getEnv("ORDERS_TABLE", c.Tables.Orders)
	c.Tables.Tokens = getEnv("TOKENS_TABLE", c.Tables.Tokens)
	c.Store = strings.ToLower(getEnv("STORE_BACKEND", c.Store))

	c.DB.Host = getEnv("POSTGRES_HOST", c.DB.Host)
	c.DB.Port = getEnv("POSTGRES_PORT", c.DB.Port)
	c.DB.User = getEnv("POSTGRES_USER", c.DB.User)
	c.DB.Pass = getEnv("POSTGRES_PASSWORD", c.DB.Pass)
	c.DB.Name = getEnv("POSTGRES_DB", c.DB.Name)
	if _, err := strconv.Atoi(c.DB.Port); err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT %q: %w", c.DB.Port, err)
	}

	c.AWS.Region = os.Getenv("AWS_REGION")
	c.AWS.Endpoint = os.Getenv("AWS_ENDPOINT_URL")

	c.Notify.Backend = strings.ToLower(os.Getenv("NOTIFY_BACKEND"))
	c.Notify.TopicARN = os.Getenv("SNS_TOPIC_ARN")
	c.Notify.QueueURL = os.Getenv("SQS_QUEUE_URL")

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = splitList(v)
	}
	c.Kafka.Topic = getEnv("KAFKA_TOPIC", c.Kafka.Topic)
	c.Kafka.GroupID = getEnv("KAFKA_GROUP_ID", c.Kafka.GroupID)

	c.Worker.Source = strings.ToLower(getEnv("WORKER_SOURCE", c.Worker.Source))
	if v := os.Getenv("WORKER_WAIT_TIME"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid WORKER_WAIT_TIME %q: %w", v, err)
		}
		c.Worker.WaitTime = d
	}
	if v := os.Getenv("WORKER_MAX_MESSAGES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid WORKER_MAX_MESSAGES %q: %w", v, err)
		}
		c.Worker.MaxMessages = n
	}

	if v := os.Getenv("OPERATION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid OPERATION_TIMEOUT %q: %w", v, err)
		}
		c.OperationTimeout = d
	}
	return nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if strings.TrimSpace(c.Tables.Orders) == "" || strings.TrimSpace(c.Tables.Tokens) == "" {
		return fmt.Errorf("table names must not be empty")
	}
	switch c.Store {
	case StoreDynamoDB, StorePostgres:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store)
	}

	c.Notify.Backend = c.resolveNotifyBackend()
	switch c.Notify.Backend {
	case NotifyNone:
	case NotifySNS:
		if c.Notify.TopicARN == "" {
			return fmt.Errorf("notify backend sns requires SNS_TOPIC_ARN")
		}
	case NotifySQS:
		if c.Notify.QueueURL == "" {
			return fmt.Errorf("notify backend sqs requires SQS_QUEUE_URL")
		}
	case NotifyKafka:
		if len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "" {
			return fmt.Errorf("notify backend kafka requires KAFKA_BROKERS and KAFKA_TOPIC")
		}
	default:
		return fmt.Errorf("unknown notify backend %q", c.Notify.Backend)
	}

	switch c.Worker.Source {
	case WorkerSourceSQS, WorkerSourceKafka:
	default:
		return fmt.Errorf("unknown worker source %q", c.Worker.Source)
	}
	if c.Worker.WaitTime < 0 || c.Worker.WaitTime > maxWorkerWaitTime {
		return fmt.Errorf("worker wait time must be within 0..%s, got %s", maxWorkerWaitTime, c.Worker.WaitTime)
	}
	if c.Worker.MaxMessages < 1 || c.Worker.MaxMessages > 10 {
		return fmt.Errorf("worker max messages must be within 1..10, got %d", c.Worker.MaxMessages)
	}
	if c.OperationTimeout <= 0 {
		c.OperationTimeout = defaultOperationTimeout
	}
	return nil
}

// resolveNotifyBackend picks a backend from whichever channel is configured when none was named.
func (c *Config) resolveNotifyBackend() string {
	if c.Notify.Backend != "" {
		return c.Notify.Backend
	}
	switch {
	case c.Notify.TopicARN != "":
		return NotifySNS
	case c.Notify.QueueURL != "":
		return NotifySQS
	case len(c.Kafka.Brokers) > 0:
		return NotifyKafka
	default:
		return NotifyNone
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
