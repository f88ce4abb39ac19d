package config

import (
	"fmt"
	"os"
	"time"

	log "github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/umputun/newswire/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database    DatabaseConfig    `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Polling     PollingConfig     `yaml:"polling" json:"polling" jsonschema:"description=Polling scheduler configuration"`
	Detection   DetectionConfig   `yaml:"detection" json:"detection" jsonschema:"description=Language detection configuration"`
	Health      HealthConfig      `yaml:"health" json:"health" jsonschema:"description=Feed health tracking configuration"`
	Translation TranslationConfig `yaml:"translation" json:"translation" jsonschema:"description=Translation worker configuration"`
	LLM         LLMConfig         `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for translation"`
	Extraction  ExtractionConfig  `yaml:"extraction" json:"extraction" jsonschema:"description=Full-text extraction configuration"`
}

// ServerConfig holds HTTP control surface settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"required,default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in generated RSS links"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"required,default=file:newswire.db,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// PollingConfig holds polling scheduler settings
type PollingConfig struct {
	TickInterval time.Duration    `yaml:"tick_interval" json:"tick_interval" jsonschema:"required,default=1m,description=How often the scheduler looks for due polling jobs"`
	MaxWorkers   int              `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,minimum=1,description=Maximum feeds fetched concurrently in one run"`
	FetchTimeout time.Duration    `yaml:"fetch_timeout" json:"fetch_timeout" jsonschema:"default=10s,description=Timeout for a single feed fetch"`
	RunTimeout   time.Duration    `yaml:"run_timeout" json:"run_timeout" jsonschema:"default=10m,description=Upper bound of a single polling run"`
	UserAgent    string           `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for feed requests"`
	DefaultJob   DefaultJobConfig `yaml:"default_job" json:"default_job" jsonschema:"description=Polling job created on first start"`
}

// DefaultJobConfig describes the polling job bootstrapped when none with this name exists
type DefaultJobConfig struct {
	Disabled        bool              `yaml:"disabled" json:"disabled" jsonschema:"default=false,description=Do not create the default job"`
	Name            string            `yaml:"name" json:"name" jsonschema:"default=default,description=Job name"`
	IntervalMinutes int               `yaml:"interval_minutes" json:"interval_minutes" jsonschema:"default=30,minimum=1,maximum=1440,description=Polling interval in minutes"`
	Filter          domain.FeedFilter `yaml:"filter" json:"filter" jsonschema:"description=Feed filter, empty matches all active feeds"`
}

// DetectionConfig holds language detection settings
type DetectionConfig struct {
	ReviewThreshold float64 `yaml:"review_threshold" json:"review_threshold" jsonschema:"default=0.5,minimum=0,maximum=1,description=Articles detected below this confidence are flagged for review"`
}

// HealthConfig holds feed health tracker settings
type HealthConfig struct {
	Window               time.Duration `yaml:"window" json:"window" jsonschema:"default=24h,description=Trailing window for health snapshots"`
	DisableAfterFailures int           `yaml:"disable_after_failures" json:"disable_after_failures" jsonschema:"default=5,minimum=1,description=Consecutive failures recommending to disable a feed"`
	SlowResponse         time.Duration `yaml:"slow_response" json:"slow_response" jsonschema:"default=5s,description=Average response time considered slow"`
	BusyArticles         float64       `yaml:"busy_articles" json:"busy_articles" jsonschema:"default=10,description=Average articles per fetch considered busy"`
	Retention            time.Duration `yaml:"retention" json:"retention" jsonschema:"default=168h,description=How long fetch records are kept"`
	AutoDisable          bool          `yaml:"auto_disable" json:"auto_disable" jsonschema:"default=false,description=Deactivate feeds once disable is recommended"`
}

// TranslationConfig holds translation worker settings
type TranslationConfig struct {
	Enabled        bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Run the translation worker"`
	TickInterval   time.Duration `yaml:"tick_interval" json:"tick_interval" jsonschema:"default=10s,description=How often the worker polls the queue"`
	BatchSize      int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=5,minimum=1,description=Queued jobs picked per tick"`
	Concurrency    int           `yaml:"concurrency" json:"concurrency" jsonschema:"default=2,minimum=1,description=Jobs processed concurrently"`
	CallTimeout    time.Duration `yaml:"call_timeout" json:"call_timeout" jsonschema:"default=60s,description=Timeout of a single translation call"`
	MaxJobDuration time.Duration `yaml:"max_job_duration" json:"max_job_duration" jsonschema:"default=15m,description=Processing jobs older than this are failed"`
	MaxRetries     int           `yaml:"max_retries" json:"max_retries" jsonschema:"default=3,minimum=0,description=Retries allowed for new jobs"`
	MinTextLength  int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=300,description=Article content shorter than this is replaced by extracted full text"`
	AutoTargets    []string      `yaml:"auto_targets" json:"auto_targets" jsonschema:"description=Languages every new article is translated to (names or ISO 639-1 codes)"`
	AutoPriority   string        `yaml:"auto_priority" json:"auto_priority" jsonschema:"default=normal,enum=low,enum=normal,enum=high,enum=urgent,description=Priority of automatically enqueued jobs"`
}

// LLMConfig holds OpenAI-compatible API settings
type LLMConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.2,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=4000,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=2m,description=HTTP client timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
}

// ExtractionConfig holds full-text extraction settings
type ExtractionConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable full-text extraction for short articles"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for HTTP requests"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema check is supplementary, log and continue
	if err := VerifyAgainstSchema(&cfg); err != nil {
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

// setDefaults fills zero values
func (c *Config) setDefaults() {
	setDefault(&c.Server.Listen, ":8080")
	setDefault(&c.Server.Timeout, 30*time.Second)
	setDefault(&c.Server.BaseURL, "http://localhost:8080")

	setDefault(&c.Database.DSN, "file:newswire.db?mode=rwc&_txlock=immediate&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	setDefault(&c.Database.MaxOpenConns, 10)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 3600)

	setDefault(&c.Polling.TickInterval, time.Minute)
	setDefault(&c.Polling.MaxWorkers, 5)
	setDefault(&c.Polling.FetchTimeout, 10*time.Second)
	setDefault(&c.Polling.RunTimeout, 10*time.Minute)
	setDefault(&c.Polling.DefaultJob.Name, "default")
	setDefault(&c.Polling.DefaultJob.IntervalMinutes, 30)

	setDefault(&c.Detection.ReviewThreshold, 0.5)

	setDefault(&c.Health.Window, 24*time.Hour)
	setDefault(&c.Health.DisableAfterFailures, 5)
	setDefault(&c.Health.SlowResponse, 5*time.Second)
	setDefault(&c.Health.BusyArticles, 10)
	setDefault(&c.Health.Retention, 7*24*time.Hour)

	setDefault(&c.Translation.TickInterval, 10*time.Second)
	setDefault(&c.Translation.BatchSize, 5)
	setDefault(&c.Translation.Concurrency, 2)
	setDefault(&c.Translation.CallTimeout, 60*time.Second)
	setDefault(&c.Translation.MaxJobDuration, 15*time.Minute)
	setDefault(&c.Translation.MaxRetries, domain.DefaultMaxRetries)
	setDefault(&c.Translation.MinTextLength, 300)
	setDefault(&c.Translation.AutoPriority, string(domain.PriorityNormal))

	setDefault(&c.LLM.Temperature, 0.2)
	setDefault(&c.LLM.MaxTokens, 4000)
	setDefault(&c.LLM.Timeout, 2*time.Minute)

	setDefault(&c.Extraction.Timeout, 30*time.Second)
}

func setDefault[T comparable](v *T, def T) {
	var zero T
	if *v == zero {
		*v = def
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Polling.TickInterval < time.Second {
		return fmt.Errorf("polling.tick_interval must be at least 1 second")
	}
	if cfg.Polling.MaxWorkers < 1 {
		return fmt.Errorf("polling.max_workers must be at least 1")
	}
	if err := domain.ValidateInterval(cfg.Polling.DefaultJob.IntervalMinutes); err != nil {
		return fmt.Errorf("polling.default_job.interval_minutes: %w", err)
	}

	if cfg.Detection.ReviewThreshold < 0 || cfg.Detection.ReviewThreshold > 1 {
		return fmt.Errorf("detection.review_threshold must be between 0 and 1")
	}

	if cfg.Health.DisableAfterFailures < 1 {
		return fmt.Errorf("health.disable_after_failures must be at least 1")
	}

	if cfg.Translation.BatchSize < 1 {
		return fmt.Errorf("translation.batch_size must be at least 1")
	}
	if cfg.Translation.Concurrency < 1 {
		return fmt.Errorf("translation.concurrency must be at least 1")
	}
	if cfg.Translation.MaxRetries < 0 {
		return fmt.Errorf("translation.max_retries must be non-negative")
	}
	if !domain.JobPriority(cfg.Translation.AutoPriority).IsValid() {
		return fmt.Errorf("translation.auto_priority %q is not one of low, normal, high, urgent", cfg.Translation.AutoPriority)
	}
	for i, l := range cfg.Translation.AutoTargets {
		lang, ok := domain.ParseLanguage(l)
		if !ok {
			return fmt.Errorf("translation.auto_targets: unsupported language %q", l)
		}
		cfg.Translation.AutoTargets[i] = string(lang)
	}

	if cfg.Translation.Enabled || len(cfg.Translation.AutoTargets) > 0 {
		if cfg.LLM.Endpoint == "" {
			return fmt.Errorf("llm.endpoint is required when translation is used")
		}
		if cfg.LLM.Model == "" {
			return fmt.Errorf("llm.model is required when translation is used")
		}
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if cfg.Extraction.Enabled && cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}

	return nil
}

// AutoTargetLanguages returns configured automatic translation targets
func (c *Config) AutoTargetLanguages() []domain.Language {
	res := make([]domain.Language, 0, len(c.Translation.AutoTargets))
	for _, l := range c.Translation.AutoTargets {
		res = append(res, domain.Language(l))
	}
	return res
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the public base url of the server
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}
