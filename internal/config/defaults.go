package config

import "time"

const defaultPort = 8080

const (
	defaultOrdersTable = "Orders"
	defaultTokensTable = "Tokens"
)

const defaultOperationTimeout = 3 * time.Second

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "test_db",
}

var defaultKafka = Kafka{
	Topic:   "order-events",
	GroupID: "tracking-relay",
}

// maxWorkerWaitTime is the longest long-poll SQS accepts.
const maxWorkerWaitTime = 20 * time.Second

var defaultWorker = Worker{
	Source:      WorkerSourceSQS,
	WaitTime:    20 * time.Second,
	MaxMessages: 10,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultTables returns the default table names.
func DefaultTables() Tables {
	return Tables{Orders: defaultOrdersTable, Tokens: defaultTokensTable}
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default kafka settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultWorker returns the default worker settings.
func DefaultWorker() Worker {
	return defaultWorker
}
