package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Dedicated, tighter limit for the public invoice verification endpoint.
	VerifyRequestsPerMin int `mapstructure:"VERIFY_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Company identity printed on invoices.
	CompanyName    string `mapstructure:"COMPANY_NAME"`
	CompanyTagline string `mapstructure:"COMPANY_TAGLINE"`
	CompanyAddress string `mapstructure:"COMPANY_ADDRESS"`
	SupportEmail   string `mapstructure:"SUPPORT_EMAIL"`
	SupportPhone   string `mapstructure:"SUPPORT_PHONE"`
	LogoPath       string `mapstructure:"LOGO_PATH"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("VERIFY_REQUESTS_PER_MIN", 20)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("COMPANY_NAME", "Hostiva")
	viper.SetDefault("COMPANY_TAGLINE", "Web hosting & domain solutions")
	viper.SetDefault("COMPANY_ADDRESS", "Akwa, Boulevard de la Liberte, Douala")
	viper.SetDefault("SUPPORT_EMAIL", "support@hostiva.net")
	viper.SetDefault("SUPPORT_PHONE", "+237 6 55 44 33 22")
	viper.SetDefault("LOGO_PATH", "assets/logo.png")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
