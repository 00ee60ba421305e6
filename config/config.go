package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"menurank/logging"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// PathEnvVar names an optional YAML file layered between defaults and env.
const PathEnvVar = "MENURANK_CONFIG"

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Postgres  PostgresConfig  `koanf:"db"`
	Redis     RedisConfig     `koanf:"redis"`
	Kafka     KafkaConfig     `koanf:"kafka"`
	LLM       LLMConfig       `koanf:"llm"`
	Recommend RecommendConfig `koanf:"recommend"`
	Rating    RatingConfig    `koanf:"rating"`
	Gateway   GatewayConfig   `koanf:"gateway"`
	Logging   logging.Config  `koanf:"log"`
}

type ServerConfig struct {
	Addr string `koanf:"addr"`
}

type PostgresConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	Name     string `koanf:"name"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	SSLMode  string `koanf:"sslmode"`
}

func (c PostgresConfig) DSN() string {
	return "host=" + c.Host + " port=" + c.Port + " user=" + c.User +
		" password=" + c.Password + " dbname=" + c.Name + " sslmode=" + c.SSLMode
}

type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

type KafkaConfig struct {
	Broker       string `koanf:"broker"`
	RatingsTopic string `koanf:"ratings_topic"`
	GroupID      string `koanf:"group_id"`
}

type LLMConfig struct {
	APIKey      string        `koanf:"api_key"`
	BaseURL     string        `koanf:"base_url"`
	Model       string        `koanf:"model"`
	Timeout     time.Duration `koanf:"timeout"`
	Temperature float64       `koanf:"temperature"`
	MaxTokens   int           `koanf:"max_tokens"`
}

// Enabled reports whether a model key is configured. Without one the
// recommendation pipeline runs on its neutral fallbacks.
func (c LLMConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

type RecommendConfig struct {
	TopN                int           `koanf:"top_n"`
	PredictionBatch     int           `koanf:"prediction_batch"`
	PredictionThreshold float64       `koanf:"prediction_threshold"`
	Jitter              float64       `koanf:"jitter"`
	MenuCacheTTL        time.Duration `koanf:"menu_cache_ttl"`
	SessionTTL          time.Duration `koanf:"session_ttl"`
	PublicURL           string        `koanf:"public_url"`
}

type RatingConfig struct {
	MarkerTTL time.Duration `koanf:"marker_ttl"`
}

type GatewayConfig struct {
	RecommendSvcURL string        `koanf:"recommend_svc_url"`
	MenuSvcURL      string        `koanf:"menu_svc_url"`
	RateSvcURL      string        `koanf:"rate_svc_url"`
	Timeout         time.Duration `koanf:"timeout"`
}

func Default() Config {
	return Config{
		Postgres: PostgresConfig{Host: "localhost", Port: "5432", Name: "menurank", User: "postgres", SSLMode: "disable"},
		Redis:    RedisConfig{Host: "localhost", Port: "6379"},
		Kafka:    KafkaConfig{Broker: "localhost:9092", RatingsTopic: "dish_ratings", GroupID: "agg-svc"},
		LLM: LLMConfig{
			BaseURL:     "https://api.openai.com/v1",
			Model:       "gpt-4o-mini",
			Timeout:     30 * time.Second,
			Temperature: 0.1,
			MaxTokens:   1500,
		},
		Recommend: RecommendConfig{
			TopN:                5,
			PredictionBatch:     8,
			PredictionThreshold: 70,
			Jitter:              0.1,
			MenuCacheTTL:        time.Hour,
			SessionTTL:          6 * time.Hour,
			PublicURL:           "http://localhost:8080",
		},
		Rating: RatingConfig{MarkerTTL: 24 * time.Hour},
		Gateway: GatewayConfig{
			RecommendSvcURL: "http://localhost:8084",
			MenuSvcURL:      "http://localhost:8081",
			RateSvcURL:      "http://localhost:8082",
			Timeout:         75 * time.Second,
		},
		Logging: logging.Config{Level: "info", Format: "json"},
	}
}

// Load layers defaults, the optional YAML file and the environment, in that order.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := os.Getenv(PathEnvVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load for mains.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	return cfg
}

var envKeys = map[string]string{
	"http_addr":           "server.addr",
	"db_host":             "db.host",
	"db_port":             "db.port",
	"db_name":             "db.name",
	"db_user":             "db.user",
	"db_password":         "db.password",
	"db_sslmode":          "db.sslmode",
	"redis_host":          "redis.host",
	"redis_port":          "redis.port",
	"redis_password":      "redis.password",
	"redis_db":            "redis.db",
	"kafka_broker":        "kafka.broker",
	"kafka_ratings_topic": "kafka.ratings_topic",
	"kafka_group_id":      "kafka.group_id",
	"openai_api_key":      "llm.api_key",
	"llm_api_key":         "llm.api_key",
	"llm_base_url":        "llm.base_url",
	"llm_model":           "llm.model",
	"llm_timeout":         "llm.timeout",
	"llm_temperature":     "llm.temperature",
	"llm_max_tokens":      "llm.max_tokens",
	"recommend_top_n":     "recommend.top_n",
	"recommend_batch":     "recommend.prediction_batch",
	"recommend_threshold": "recommend.prediction_threshold",
	"recommend_jitter":    "recommend.jitter",
	"menu_cache_ttl":      "recommend.menu_cache_ttl",
	"session_ttl":         "recommend.session_ttl",
	"public_url":          "recommend.public_url",
	"rating_marker_ttl":   "rating.marker_ttl",
	"recommend_svc_url":   "gateway.recommend_svc_url",
	"menu_svc_url":        "gateway.menu_svc_url",
	"rate_svc_url":        "gateway.rate_svc_url",
	"gateway_timeout":     "gateway.timeout",
	"log_level":           "log.level",
	"log_format":          "log.format",
	"log_caller":          "log.caller",
}

// envKey maps DB_HOST style variables onto config paths. Unknown variables
// are skipped so the process environment cannot clobber unrelated keys.
func envKey(key string) string {
	return envKeys[strings.ToLower(key)]
}

func MustInitPostgres(cfg PostgresConfig) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		logging.Fatal().Err(err).Msg("Failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	return client
}

func NewKafkaReader(cfg KafkaConfig, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(cfg KafkaConfig, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
