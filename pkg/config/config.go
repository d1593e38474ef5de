package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Directory DirectoryConfig
	Engine    EngineConfig
	LLM       LLMConfig
	Redis     RedisConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  int
	WriteTimeout int
	BodyLimit    int
}

// DirectoryConfig controls where the employee dataset is loaded from.
// SQLitePath takes precedence over DataFile; the embedded sample dataset
// is the final fallback.
type DirectoryConfig struct {
	SQLitePath string
	DataFile   string
}

type EngineConfig struct {
	MaxFeatures       int
	DefaultMaxResults int
	SkillVocabulary   []string
}

type LLMConfig struct {
	APIKey         string
	EmbeddingModel string
	TimeoutSec     int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	TTLSeconds int
}

type RateLimitConfig struct {
	MaxRequestsPerMinute int
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/hr-chatbot")

	viper.SetEnvPrefix("HR_CHATBOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.readTimeout", 30)
	viper.SetDefault("server.writeTimeout", 30)
	viper.SetDefault("server.bodyLimit", 1048576)

	viper.SetDefault("directory.sqlitePath", "")
	viper.SetDefault("directory.dataFile", "./data/employees.json")

	viper.SetDefault("engine.maxFeatures", 1000)
	viper.SetDefault("engine.defaultMaxResults", 5)
	viper.SetDefault("engine.skillVocabulary", DefaultSkillVocabulary)

	viper.SetDefault("llm.apiKey", "")
	viper.SetDefault("llm.embeddingModel", "text-embedding-3-small")
	viper.SetDefault("llm.timeoutSec", 15)

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("cache.ttlSeconds", 300)

	viper.SetDefault("ratelimit.maxRequestsPerMinute", 60)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.outputPath", "stdout")
}

// DefaultSkillVocabulary is the set of technology terms the constraint
// extractor recognizes in free-text queries. Terms outside this list are
// never extracted as skill constraints, even when an employee lists them.
var DefaultSkillVocabulary = []string{
	"python", "javascript", "java", "react", "angular", "vue",
	"node", "express", "django", "flask", "fastapi",
	"aws", "azure", "gcp", "docker", "kubernetes",
	"machine learning", "ml", "ai", "data science",
	"sql", "postgresql", "mongodb", "redis",
	"html", "css", "typescript", "go", "rust",
	"tensorflow", "pytorch", "scikit-learn",
}
