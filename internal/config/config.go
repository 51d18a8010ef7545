package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SalaryPeriodApprovedWithin = "approved_within"
	SalaryPeriodAllTime        = "all_time"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Approval ApprovalConfig `mapstructure:"approval"`
	Salary   SalaryConfig   `mapstructure:"salary"`
	RBAC     RBACConfig     `mapstructure:"rbac"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RateLimitRPS   float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxRetries      int           `mapstructure:"max_retries"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

type RedisConfig struct {
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	MaxRetries int    `mapstructure:"max_retries"`
}

type KafkaConfig struct {
	Brokers            []string      `mapstructure:"brokers"`
	ConsumerGroup      string        `mapstructure:"consumer_group"`
	OutboxPollInterval time.Duration `mapstructure:"outbox_poll_interval"`
	OutboxBatchSize    int           `mapstructure:"outbox_batch_size"`
	MaxRetries         int           `mapstructure:"max_retries"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// ApprovalLevel is one step of the approver chain.
type ApprovalLevel struct {
	Role  string `mapstructure:"role"`
	Level int    `mapstructure:"level"`
}

type ApprovalConfig struct {
	Chain []ApprovalLevel `mapstructure:"chain"`
}

type SalaryConfig struct {
	// approved_within | all_time
	PeriodPolicy string `mapstructure:"period_policy"`
}

type Policy struct {
	Role     string `mapstructure:"role"`
	Resource string `mapstructure:"resource"`
	Action   string `mapstructure:"action"`
}

type RBACConfig struct {
	Policies []Policy `mapstructure:"policies"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load membaca .env (jika ada), file yaml opsional, lalu environment variable.
// Urutan prioritas: env > file > default.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvVars(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "go-hrms")
	v.SetDefault("app.env", "development")

	v.SetDefault("server.port", "3000")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("server.rate_limit_rps", 20)
	v.SetDefault("server.rate_limit_burst", 40)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "hrms")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_retries", 5)
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.max_retries", 5)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.consumer_group", "go-hrms-notification")
	v.SetDefault("kafka.outbox_poll_interval", 3*time.Second)
	v.SetDefault("kafka.outbox_batch_size", 50)
	v.SetDefault("kafka.max_retries", 5)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.format", "json")

	v.SetDefault("approval.chain", []map[string]any{
		{"role": "supervisor", "level": 1},
		{"role": "department_manager", "level": 2},
		{"role": "factory_manager", "level": 3},
		{"role": "hr_manager", "level": 4},
	})

	v.SetDefault("salary.period_policy", SalaryPeriodApprovedWithin)

	v.SetDefault("rbac.policies", defaultPolicies())

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

func defaultPolicies() []map[string]any {
	grant := func(resource, action string, roles ...string) []map[string]any {
		out := make([]map[string]any, 0, len(roles))
		for _, r := range roles {
			out = append(out, map[string]any{"role": r, "resource": resource, "action": action})
		}
		return out
	}

	var p []map[string]any
	p = append(p, grant("salary", "calculate", "super_admin", "hr_manager")...)
	p = append(p, grant("salary", "create", "super_admin", "hr_manager")...)
	p = append(p, grant("report", "weekly", "super_admin", "hr_manager", "factory_manager")...)
	p = append(p, grant("report", "monthly", "super_admin", "hr_manager", "factory_manager")...)
	p = append(p, grant("report", "annual", "super_admin", "hr_manager")...)
	p = append(p, grant("employee", "create", "super_admin", "hr_manager")...)
	p = append(p, grant("employee", "update", "super_admin", "hr_manager")...)
	p = append(p, grant("employee", "delete", "super_admin")...)
	p = append(p, grant("department", "create", "super_admin", "hr_manager")...)
	p = append(p, grant("department", "update", "super_admin", "hr_manager")...)
	p = append(p, grant("department", "delete", "super_admin")...)
	return p
}

// nama env pendek (DB_HOST, REDIS_ADDR, ...) tetap didukung selain DATABASE_HOST dst.
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("database.host", "DB_HOST")
	_ = v.BindEnv("database.port", "DB_PORT")
	_ = v.BindEnv("database.user", "DB_USER")
	_ = v.BindEnv("database.password", "DB_PASSWORD")
	_ = v.BindEnv("database.name", "DB_NAME")
	_ = v.BindEnv("database.sslmode", "DB_SSLMODE")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("kafka.brokers", "KAFKA_BROKER")
	_ = v.BindEnv("jwt.secret", "JWT_SECRET")
	_ = v.BindEnv("logger.level", "LOG_LEVEL")
	_ = v.BindEnv("salary.period_policy", "SALARY_PERIOD_POLICY")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.Name == "" {
		return errors.New("database.host and database.name are required")
	}
	if len(c.Approval.Chain) == 0 {
		return errors.New("approval.chain must contain at least one level")
	}
	switch c.Salary.PeriodPolicy {
	case SalaryPeriodApprovedWithin, SalaryPeriodAllTime:
	default:
		return fmt.Errorf("salary.period_policy %q is not supported", c.Salary.PeriodPolicy)
	}
	if c.Kafka.OutboxBatchSize <= 0 {
		return errors.New("kafka.outbox_batch_size must be positive")
	}
	return nil
}
