package main

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/outputtracker/core/email"
	"github.com/dmitrymomot/outputtracker/core/health"
	"github.com/dmitrymomot/outputtracker/core/logger"
	"github.com/dmitrymomot/outputtracker/integration/database/pg"
	"github.com/dmitrymomot/outputtracker/integration/database/redis"
	"github.com/dmitrymomot/outputtracker/integration/email/postmark"
	"github.com/dmitrymomot/outputtracker/integration/storage/s3"
	"github.com/dmitrymomot/outputtracker/nullable/blobstore"
	"github.com/dmitrymomot/outputtracker/nullable/kvstore"
	"github.com/dmitrymomot/outputtracker/nullable/mailer"
	"github.com/dmitrymomot/outputtracker/nullable/todorepo"
)

type adapters struct {
	todos   *todorepo.Repository
	mail    *mailer.Mailer
	kv      *kvstore.Store
	uploads *blobstore.Uploader
}

func nulledAdapters(cfg Config, log *slog.Logger) adapters {
	bucket := cfg.S3.Bucket
	if bucket == "" {
		bucket = "demo"
	}
	return adapters{
		todos:   todorepo.NewNulled(todorepo.WithLogger(log)),
		mail:    mailer.NewNulled(mailer.WithLogger(log)),
		kv:      kvstore.NewNulled(kvstore.WithLogger(log)),
		uploads: blobstore.NewNulled(bucket, blobstore.WithLogger(log)),
	}
}

// connect builds the adapters for cfg. In production mode it connects to
// every backing service, migrates the schema and checks readiness.
func connect(ctx context.Context, cfg Config, log *slog.Logger) (adapters, func(), error) {
	if cfg.Nulled {
		log.Info("using nulled adapters")
		return nulledAdapters(cfg, log), func() {}, nil
	}

	pool, err := pg.Connect(ctx, cfg.DB)
	if err != nil {
		return adapters{}, nil, err
	}
	cleanup := func() { pool.Close() }

	if err := pg.Migrate(ctx, pool, todorepo.Migrations(), log.With(logger.Component("migration"))); err != nil {
		cleanup()
		return adapters{}, nil, err
	}

	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		cleanup()
		return adapters{}, nil, err
	}
	cleanup = func() {
		_ = rdb.Close()
		pool.Close()
	}

	if err := health.Readiness(ctx, log, pg.Healthcheck(pool), redis.Healthcheck(rdb)); err != nil {
		cleanup()
		return adapters{}, nil, err
	}

	var sender email.EmailSender
	if cfg.MailDir != "" {
		sender = email.NewFileSender(cfg.MailDir)
	} else if sender, err = postmark.New(cfg.Postmark); err != nil {
		cleanup()
		return adapters{}, nil, err
	}

	s3Client, err := s3.NewClient(ctx, cfg.S3)
	if err != nil {
		cleanup()
		return adapters{}, nil, err
	}

	return adapters{
		todos:   todorepo.New(pool, todorepo.WithLogger(log)),
		mail:    mailer.New(sender, mailer.WithLogger(log)),
		kv:      kvstore.New(rdb, kvstore.WithLogger(log)),
		uploads: blobstore.New(s3Client, cfg.S3.Bucket, blobstore.WithLogger(log)),
	}, cleanup, nil
}
