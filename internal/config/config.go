package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // seconds
}

type AuthConfig struct {
	Secret             string
	AccessExpireMinute int
}

type MailConfig struct {
	Server         string
	Port           int
	Username       string
	Password       string
	From           string
	StartTLS       bool
	SSLTLS         bool
	UseCredentials bool
}

type PBBConfig struct {
	NJOPTKP int64
	TarifID int64 // 0 means "resolve tarif by kabupaten name"
}

type RegistrationConfig struct {
	CodeLength        int
	CodeExpireMinutes int
}

type CORSConfig struct {
	Origins          []string
	AllowCredentials bool
}

type Config struct {
	Environment  string
	HTTP         HTTPConfig
	DB           DBConfig
	Auth         AuthConfig
	Mail         MailConfig
	PBB          PBBConfig
	Registration RegistrationConfig
	CORS         CORSConfig
	UploadDir    string
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			Name:            v.GetString("DB_NAME"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASS"),
			DSN:             v.GetString("DATABASE_URL"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetInt("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			Secret:             v.GetString("JWT_SECRET"),
			AccessExpireMinute: v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES"),
		},
		Mail: MailConfig{
			Server:         v.GetString("MAIL_SERVER"),
			Port:           v.GetInt("MAIL_PORT"),
			Username:       v.GetString("MAIL_USERNAME"),
			Password:       v.GetString("MAIL_PASSWORD"),
			From:           v.GetString("MAIL_FROM"),
			StartTLS:       v.GetBool("MAIL_STARTTLS"),
			SSLTLS:         v.GetBool("MAIL_SSL_TLS"),
			UseCredentials: v.GetBool("USE_CREDENTIALS"),
		},
		PBB: PBBConfig{
			NJOPTKP: v.GetInt64("PBB_NJOPTKP"),
			TarifID: v.GetInt64("PBB_TARIF_ID"),
		},
		Registration: RegistrationConfig{
			CodeLength:        v.GetInt("REGISTRATION_CODE_LENGTH"),
			CodeExpireMinutes: v.GetInt("REGISTRATION_CODE_EXPIRE_MINUTES"),
		},
		CORS: CORSConfig{
			Origins:          parseList(v.GetString("CORS_ORIGINS")),
			AllowCredentials: v.GetBool("CORS_ALLOW_CREDENTIALS"),
		},
		UploadDir: v.GetString("UPLOAD_DIR"),
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8000
	}
	if cfg.DB.Host == "" {
		cfg.DB.Host = "127.0.0.1"
	}
	if cfg.DB.Port == 0 {
		cfg.DB.Port = 3306
	}
	if cfg.Auth.AccessExpireMinute == 0 {
		cfg.Auth.AccessExpireMinute = 180
	}
	if cfg.Mail.Port == 0 {
		cfg.Mail.Port = 587
	}
	if cfg.Mail.From == "" {
		cfg.Mail.From = "no-reply@example.com"
	}
	if cfg.Registration.CodeLength == 0 {
		cfg.Registration.CodeLength = 7
	}
	if cfg.Registration.CodeExpireMinutes == 0 {
		cfg.Registration.CodeExpireMinutes = 10
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "storage/uploads"
	}
	if len(cfg.CORS.Origins) == 0 {
		cfg.CORS.Origins = []string{"*"}
	}
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		if cfg.DB.Name == "" || cfg.DB.User == "" {
			return fmt.Errorf("database configuration is incomplete: set DATABASE_URL or DB_NAME/DB_USER")
		}
	}
	if cfg.Auth.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// MySQLDSN builds the driver DSN unless DATABASE_URL already provides one.
func (c DBConfig) MySQLDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Name,
	)
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
