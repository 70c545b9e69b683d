package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go-employee-form/internal/employeeclient"
	"go-employee-form/internal/employeeform"
	"go-employee-form/internal/shared/connection"
)

const (
	DefaultPort        = "3000"
	DefaultEmployeeAPI = "http://localhost:3000/api"
)

// ServerConfig configures the reference backend and the outbox worker.
type ServerConfig struct {
	Port          string
	DB            connection.PostgresConfig
	RedisAddr     string
	KafkaBroker   string
	AddressPolicy employeeform.AddressPolicy
}

// ClientConfig configures employeectl.
type ClientConfig struct {
	API           employeeclient.Config
	AddressPolicy employeeform.AddressPolicy
	ThemePath     string
}

func LoadServerConfig() (ServerConfig, error) {
	policy, err := employeeform.ParseAddressPolicy(os.Getenv("EMPLOYEE_ADDRESS_POLICY"))
	if err != nil {
		return ServerConfig{}, err
	}

	return ServerConfig{
		Port: getEnv("PORT", DefaultPort),
		DB: connection.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "employees"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		AddressPolicy: policy,
	}, nil
}

func LoadClientConfig() (ClientConfig, error) {
	policy, err := employeeform.ParseAddressPolicy(os.Getenv("EMPLOYEE_ADDRESS_POLICY"))
	if err != nil {
		return ClientConfig{}, err
	}

	timeout := employeeclient.DefaultTimeout
	if raw := os.Getenv("EMPLOYEE_HTTP_TIMEOUT"); raw != "" {
		timeout, err = parseDuration(raw)
		if err != nil {
			return ClientConfig{}, fmt.Errorf("EMPLOYEE_HTTP_TIMEOUT: %w", err)
		}
	}

	return ClientConfig{
		API: employeeclient.Config{
			BaseURL:  getEnv("EMPLOYEE_API_URL", DefaultEmployeeAPI),
			Resource: employeeclient.DefaultResource,
			DOBField: getEnv("EMPLOYEE_DOB_FIELD", employeeclient.DOBFieldLower),
			Timeout:  timeout,
		},
		AddressPolicy: policy,
		ThemePath:     os.Getenv("EMPLOYEE_THEME"),
	}, nil
}

// parseDuration accepts Go durations ("10s") or plain seconds ("10").
func parseDuration(raw string) (time.Duration, error) {
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(raw)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
