package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Consul   ConsulConfig
}

type ServerConfig struct {
	Port           string
	Host           string
	ServiceName    string
	ServiceAddress string
	ServiceID      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type RabbitMQConfig struct {
	URI      string
	Exchange string
}

type ConsulConfig struct {
	Address string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "9400"),
			Host:           getEnv("HOST", "0.0.0.0"),
			ServiceName:    getEnv("LEARNING_SERVICE_NAME", "learning-service"),
			ServiceAddress: getEnv("LEARNING_SERVICE_ADDRESS", "learning-service"),
			ServiceID:      getEnv("LEARNING_SERVICE_NAME", "learning-service") + "-" + getEnv("HOSTNAME", "learning"),
			ReadTimeout:    getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "learning_service"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			URI:      getEnv("RABBITMQ_URI", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", ""),
		},
		Consul: ConsulConfig{
			Address: getEnv("CONSUL_ADDR", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			log.Printf("error parsing int env var %s: %s", key, err)
			return defaultValue
		}
		return intVal
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err != nil {
			log.Printf("error parsing duration env var %s: %s", key, err)
			return defaultValue
		}
		return d
	}
	return defaultValue
}
