package configs

import (
	"fmt"
	"os"
)

type Config struct {
	AppPort string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisHost string
	RedisPort string

	KafkaBootstrap string
	KafkaTopic     string
	KafkaGroupID   string
}

func LoadConfig() *Config {
	return &Config{
		AppPort: getEnv("TIMELINE_APP_PORT", ":8086"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBUser: getEnv("DB_USER", "postgres"),
		DBPass: getEnv("DB_PASS", "postgres"),
		DBName: getEnv("DB_NAME", "timeline_db"),

		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),

		KafkaBootstrap: getEnv("KAFKA_BOOTSTRAP_SERVERS", "kafka:9092"),
		KafkaTopic:     getEnv("KAFKA_ACTIVITY_TOPIC", "activity.events"),
		KafkaGroupID:   getEnv("KAFKA_GROUP_ID", "timeline-service"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName,
	)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
