package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Profile is the YAML form of one sensor type profile.
type Profile struct {
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	CriticalMin float64 `yaml:"critical_min"`
	CriticalMax float64 `yaml:"critical_max"`
	Unit        string  `yaml:"unit"`
	Jitter      float64 `yaml:"jitter" validate:"gte=0"`
}

// ScenarioWeight is one entry of the scenario distribution; declaration
// order in the YAML list is the selection walk order.
type ScenarioWeight struct {
	Name   string  `yaml:"name" validate:"required,oneof=normal drought rainy extreme_temp"`
	Weight float64 `yaml:"weight" validate:"gte=0,lte=1"`
}

// SensorEntry declares one sensor of the static registry.
type SensorEntry struct {
	ID       string `yaml:"id" validate:"required"`
	Type     string `yaml:"type" validate:"required"`
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

type Config struct {
	Environment string `yaml:"environment" default:"dev" validate:"required"`

	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`

	Server struct {
		Port            int           `yaml:"port" default:"8080" validate:"gt=0,lte=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`

	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`

	Backend struct {
		Type string `yaml:"type" default:"clickhouse" validate:"oneof=clickhouse kafka"`
	} `yaml:"backend"`

	Generator struct {
		Interval       time.Duration    `yaml:"interval" default:"15m" validate:"gt=0"`
		StatusInterval time.Duration    `yaml:"status_interval" default:"1h" validate:"gt=0"`
		Seed           int64            `yaml:"seed"` // 0 = time-seeded
		Jitter         *bool            `yaml:"jitter" default:"true"`
		Scenarios      []ScenarioWeight `yaml:"scenarios" validate:"dive"`
		Profiles       map[string]Profile `yaml:"profiles" validate:"dive"`
		TimeEffects    struct {
			TempMinHour  int     `yaml:"temp_min_hour" default:"6" validate:"gte=0,lte=23"`
			TempMaxHour  int     `yaml:"temp_max_hour" default:"14" validate:"gte=0,lte=23"`
			TempSwing    float64 `yaml:"temp_swing" default:"8"`
			SunriseHour  int     `yaml:"sunrise_hour" default:"6" validate:"gte=0,lte=23"`
			SunsetHour   int     `yaml:"sunset_hour" default:"18" validate:"gte=0,lte=23"`
			MaxIntensity float64 `yaml:"max_intensity" default:"80000"`
		} `yaml:"time_effects"`
	} `yaml:"generator"`

	Registry struct {
		Source  string        `yaml:"source" default:"static" validate:"oneof=static clickhouse"`
		Table   string        `yaml:"table" default:"sensors"`
		Sensors []SensorEntry `yaml:"sensors" validate:"dive"`
	} `yaml:"registry"`

	Kafka struct {
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic" default:"agripulse.readings"`
		RequiredAcks int      `yaml:"required_acks" default:"-1"`
		Compression  string   `yaml:"compression" default:"gzip"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts" default:"3"`
			Linger       time.Duration `yaml:"linger" default:"500ms"`
			BatchSize    int           `yaml:"batch_size" default:"100"`
			WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
			ReadTimeout  time.Duration `yaml:"read_timeout" default:"10s"`
		} `yaml:"producer"`
		Consumer struct {
			GroupID    string        `yaml:"group_id" default:"agripulse-ingest"`
			Workers    int           `yaml:"workers" default:"2"`
			BufferSize int           `yaml:"buffer_size" default:"64"`
			RetryMax   int           `yaml:"retry_max" default:"3"`
			BackoffMin time.Duration `yaml:"backoff_min" default:"50ms"`
			BackoffMax time.Duration `yaml:"backoff_max" default:"2s"`
			MinBytes   int           `yaml:"min_bytes" default:"1"`
			MaxBytes   int           `yaml:"max_bytes" default:"10485760"`
		} `yaml:"consumer"`
	} `yaml:"kafka"`

	ClickHouse struct {
		Host         string        `yaml:"host" default:"localhost"`
		Port         int           `yaml:"port" default:"9000"`
		Database     string        `yaml:"database" default:"agripulse"`
		User         string        `yaml:"user" default:"default"`
		Password     string        `yaml:"password"`
		DialTimeout  time.Duration `yaml:"dial_timeout" default:"5s"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
	} `yaml:"clickhouse"`

	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host" default:"localhost"`
		Port     int    `yaml:"port" default:"6379"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
}

var validate = validator.New()

// Load reads a YAML configuration file, fills defaults and validates it.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment
// variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("BACKEND"); v != "" {
		c.Backend.Type = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.ClickHouse.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DB_PORT: %w", err)
		}
		c.ClickHouse.Port = p
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.ClickHouse.Database = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.ClickHouse.User = v
	}
	if v := os.Getenv("DB_PASS"); v != "" {
		c.ClickHouse.Password = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, ok := strings.Cut(v, ":")
		c.Redis.Enabled = true
		c.Redis.Host = host
		if ok {
			p, err := strconv.Atoi(port)
			if err != nil {
				return fmt.Errorf("REDIS_ADDR: %w", err)
			}
			c.Redis.Port = p
		}
	}
	if v := os.Getenv("SIM_INTERVAL"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SIM_INTERVAL: %w", err)
		}
		c.Generator.Interval = time.Duration(minutes) * time.Minute
	}
	if v := os.Getenv("SIM_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SIM_SEED: %w", err)
		}
		c.Generator.Seed = seed
	}
	if v := os.Getenv("SIM_JITTER"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SIM_JITTER: %w", err)
		}
		c.Generator.Jitter = &enabled
	}
	return nil
}

// Validate checks the configuration beyond struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if len(c.Generator.Scenarios) > 0 {
		sum := 0.0
		for _, w := range c.Generator.Scenarios {
			sum += w.Weight
		}
		if math.Abs(sum-1.0) > 0.001 {
			return fmt.Errorf("generator.scenarios weights sum to %v, want 1.0", sum)
		}
	}

	for name, p := range c.Generator.Profiles {
		if p.Min > p.Max {
			return fmt.Errorf("profile %s: min %v > max %v", name, p.Min, p.Max)
		}
	}

	if c.Backend.Type == "kafka" && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka backend requires kafka.brokers")
	}
	if c.Registry.Source == "static" && len(c.Registry.Sensors) == 0 {
		return fmt.Errorf("static registry requires registry.sensors")
	}
	return nil
}

// JitterEnabled resolves the optional jitter flag (defaults on).
func (c *Config) JitterEnabled() bool {
	return c.Generator.Jitter == nil || *c.Generator.Jitter
}
