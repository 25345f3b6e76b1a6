package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config настройки сервиса из окружения (и необязательного .env)
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":9091"`
	Environment     string        `env:"APP_ENV" envDefault:"production"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// SiteURL публичный адрес сайта, сюда форма заказа возвращает посетителя
	SiteURL      string `env:"SITE_URL" envDefault:"http://localhost:9091"`
	FormEndpoint string `env:"FORM_ENDPOINT" envDefault:"https://formsubmit.co/narudzbine@kolagenpure.rs"`
	OrderSubject string `env:"ORDER_SUBJECT" envDefault:"Nova narudžbina - Kolagen Pure"`

	SessionCookie string        `env:"SESSION_COOKIE" envDefault:"kolagen_session"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SessionSweep  time.Duration `env:"SESSION_SWEEP" envDefault:"1m"`
	SlideInterval time.Duration `env:"SLIDE_INTERVAL" envDefault:"5s"`
	SlideAutoplay bool          `env:"SLIDE_AUTOPLAY" envDefault:"true"`

	// RabbitMQURL пустой: подписки на рассылку только логируются
	RabbitMQURL     string `env:"RABBITMQ_URL"`
	NewsletterQueue string `env:"NEWSLETTER_QUEUE" envDefault:"newsletter_signups"`
}

// IsDevelopment локальный запуск
func (c Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev" || c.Environment == "local"
}

// Load читает .env (если файлы есть) и окружение
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// missing .env is fine, the environment wins anyway
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.SessionTTL < 0 || cfg.SlideInterval <= 0 {
		return Config{}, fmt.Errorf("parse config: invalid durations (ttl=%s, slide=%s)", cfg.SessionTTL, cfg.SlideInterval)
	}
	return cfg, nil
}
