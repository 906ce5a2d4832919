package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Map      MapConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type RedisConfig struct {
	URL string
}

type JWTConfig struct {
	Secret       string
	AccessExpiry string // duração no formato do time.ParseDuration (ex: 24h)
}

// StorageConfig configura o bucket de imagens (MinIO/S3)
type StorageConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string // URL pública usada para montar as URLs dos objetos
}

// MapConfig configura a superfície de mapa servida ao cliente
type MapConfig struct {
	TileURL   string
	CenterLat float64
	CenterLng float64
	Zoom      int
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Load carrega as configurações do arquivo .env
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Defaults da superfície de mapa (centro em Medellín, como o produto)
	viper.SetDefault("MAP_TILE_URL", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	viper.SetDefault("MAP_CENTER_LAT", 6.2442)
	viper.SetDefault("MAP_CENTER_LNG", -75.5812)
	viper.SetDefault("MAP_ZOOM", 13)
	viper.SetDefault("JWT_ACCESS_EXPIRY", "24h")

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:    viper.GetString("PORT"),
			Host:    viper.GetString("HOST"),
			BaseURL: viper.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetInt("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			DBName:      viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			MaxConns:    viper.GetInt("DB_MAX_CONNS"),
			MinConns:    viper.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: viper.GetInt("DB_MAX_IDLE_TIME"),
		},
		Redis: RedisConfig{
			URL: viper.GetString("REDIS_URL"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: viper.GetString("JWT_ACCESS_EXPIRY"),
		},
		Storage: StorageConfig{
			Endpoint:      viper.GetString("STORAGE_ENDPOINT"),
			AccessKey:     viper.GetString("STORAGE_ACCESS_KEY"),
			SecretKey:     viper.GetString("STORAGE_SECRET_KEY"),
			Bucket:        viper.GetString("STORAGE_BUCKET"),
			UseSSL:        viper.GetBool("STORAGE_USE_SSL"),
			PublicBaseURL: viper.GetString("STORAGE_PUBLIC_BASE_URL"),
		},
		Map: MapConfig{
			TileURL:   viper.GetString("MAP_TILE_URL"),
			CenterLat: viper.GetFloat64("MAP_CENTER_LAT"),
			CenterLng: viper.GetFloat64("MAP_CENTER_LNG"),
			Zoom:      viper.GetInt("MAP_ZOOM"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	return config, nil
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
