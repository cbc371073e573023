package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/outputtracker/core/email"
	"github.com/dmitrymomot/outputtracker/core/handle"
	"github.com/dmitrymomot/outputtracker/core/logger"
	"github.com/dmitrymomot/outputtracker/nullable/blobstore"
	"github.com/dmitrymomot/outputtracker/nullable/kvstore"
	"github.com/dmitrymomot/outputtracker/nullable/mailer"
	"github.com/dmitrymomot/outputtracker/nullable/todorepo"
)

type observation struct {
	subject string
	tracker handle.TrackerHandle
	items   int
}

type report struct {
	observed []observation
	todos    []todorepo.TodoEntity
	emails   []email.SendEmailParams
	writes   []kvstore.Write
	uploads  []blobstore.Upload
}

func (r report) log(ctx context.Context, log *slog.Logger) {
	for _, o := range r.observed {
		log.InfoContext(ctx, "tracker output", logger.Subject(o.subject), logger.Tracker(o.tracker), logger.Count("items", o.items))
	}
	for _, t := range r.todos {
		log.InfoContext(ctx, "todo stored", logger.Component("todorepo"), logger.ID("todo_id", t.ID), slog.String("subject", t.Subject))
	}
	for _, e := range r.emails {
		log.InfoContext(ctx, "email sent", logger.Component("mailer"), slog.String("to", e.SendTo), slog.String("subject", e.Subject))
	}
	for _, w := range r.writes {
		log.InfoContext(ctx, "cache write", logger.Component("kvstore"), logger.Action(string(w.Op)), logger.Key("key", w.Key))
	}
	for _, u := range r.uploads {
		log.InfoContext(ctx, "object uploaded", logger.Component("blobstore"), logger.Key("key", u.Key), slog.Int64("size", u.Size))
	}
}

// run stores a few to-dos, caches them, exports them to object storage and
// notifies the recipient, then returns what every tracker observed.
func run(ctx context.Context, cfg Config, deps adapters) (report, error) {
	todoTracker, err := deps.todos.TrackTodos()
	if err != nil {
		return report{}, err
	}
	defer func() { _ = todoTracker.Stop() }()

	mailTracker, err := deps.mail.TrackNotifications()
	if err != nil {
		return report{}, err
	}
	defer func() { _ = mailTracker.Stop() }()

	kvTracker, err := deps.kv.TrackWrites()
	if err != nil {
		return report{}, err
	}
	defer func() { _ = kvTracker.Stop() }()

	uploadTracker, err := deps.uploads.TrackUploads()
	if err != nil {
		return report{}, err
	}
	defer func() { _ = uploadTracker.Stop() }()

	var export strings.Builder
	for _, subject := range []string{"remember the milk", "water the plants"} {
		todo, err := deps.todos.Insert(ctx, todorepo.NewTodo{Subject: subject})
		if err != nil {
			return report{}, err
		}
		if err := deps.kv.Set(ctx, "todo:"+todo.ID.String(), todo.Subject, time.Hour); err != nil {
			return report{}, err
		}
		fmt.Fprintf(&export, "%s,%s\n", todo.ID, todo.Subject)
	}

	upload, err := deps.uploads.Put(ctx, "exports/todos.csv", "text/csv", strings.NewReader(export.String()))
	if err != nil {
		return report{}, err
	}

	err = deps.mail.Notify(ctx, mailer.Notification{
		To:      cfg.Recipient,
		Subject: "Your to-do export is ready",
		Message: "Download it from " + upload.Key,
		Tag:     "export",
	})
	if err != nil {
		return report{}, err
	}

	var r report
	if r.todos, err = todoTracker.Output(); err != nil {
		return report{}, err
	}
	if r.emails, err = mailTracker.Output(); err != nil {
		return report{}, err
	}
	if r.writes, err = kvTracker.Output(); err != nil {
		return report{}, err
	}
	if r.uploads, err = uploadTracker.Output(); err != nil {
		return report{}, err
	}
	r.observed = []observation{
		{subject: "todos", tracker: todoTracker.Handle(), items: len(r.todos)},
		{subject: "notifications", tracker: mailTracker.Handle(), items: len(r.emails)},
		{subject: "writes", tracker: kvTracker.Handle(), items: len(r.writes)},
		{subject: "uploads", tracker: uploadTracker.Handle(), items: len(r.uploads)},
	}
	return r, nil
}
