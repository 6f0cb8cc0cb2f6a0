package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL string // あればDSNとして最優先で使う

	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string // disableなど

	JWTSecret string // JWT署名シークレット

	UploadDir string // 商品画像の保存先ディレクトリ
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		UploadDir: getenv("UPLOAD_DIR", "./uploads/products"),
	}

	pgPort, err := atoi("POSTGRES_PORT", getenv("POSTGRES_PORT", "5432"))
	if err != nil {
		return Config{}, err
	}
	cfg.PostgresPort = pgPort

	//必須チェック（DATABASE_URLがあるなら個別のDB設定は無くてよい）
	if cfg.DatabaseURL == "" {
		if cfg.PostgresUser == "" {
			return Config{}, fmt.Errorf("POSTGRES_USER is required")
		}
		if cfg.PostgresPassword == "" {
			return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
		}
		if cfg.PostgresDB == "" {
			return Config{}, fmt.Errorf("POSTGRES_DB is required")
		}
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoi(key string, v string) (int, error) {
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
