package main

import (
	"github.com/dmitrymomot/outputtracker/integration/database/pg"
	"github.com/dmitrymomot/outputtracker/integration/database/redis"
	"github.com/dmitrymomot/outputtracker/integration/email/postmark"
	"github.com/dmitrymomot/outputtracker/integration/storage/s3"
)

// Config is read from the environment (and .env when present).
type Config struct {
	AppName   string `env:"APP_NAME" envDefault:"outputtracker-demo"`
	Nulled    bool   `env:"DEMO_NULLED" envDefault:"true"`
	JSONLogs  bool   `env:"DEMO_JSON_LOGS" envDefault:"false"`
	Recipient string `env:"DEMO_RECIPIENT" envDefault:"ann@example.com"`
	// MailDir replaces Postmark with files written to this directory.
	MailDir string `env:"DEMO_MAIL_DIR"`

	DB       pg.Config
	Redis    redis.Config
	Postmark postmark.Config
	S3       s3.Config
}
