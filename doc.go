// Package outputtracker records the data a component sends to the outside
// world so tests can assert on it without mocks.
//
// A component owns a Subject and emits every item it writes, sends or
// publishes. Tests call CreateTracker on that subject before acting and read
// the tracker's Output afterwards. Trackers only see items emitted while they
// are active; Stop detaches a tracker and Clear empties it.
//
// # Package Index
//
// Tracking:
//
//	github.com/dmitrymomot/outputtracker/threadsafe     - Subject and Tracker safe for use across goroutines
//	github.com/dmitrymomot/outputtracker/nonthreadsafe  - Subject and Tracker for single-goroutine code, detects reentrant access
//	github.com/dmitrymomot/outputtracker/core/tracking  - Registry, store and broadcast shared by both variants
//	github.com/dmitrymomot/outputtracker/core/cell      - Borrow-checked and spin-locked cells with closure-scoped access
//	github.com/dmitrymomot/outputtracker/core/handle    - Process-wide unique tracker handles
//
// Supporting packages:
//
//	github.com/dmitrymomot/outputtracker/core/config    - Type-safe environment variable loading
//	github.com/dmitrymomot/outputtracker/core/logger    - Structured logging built on slog
//	github.com/dmitrymomot/outputtracker/core/email     - Email sending contract and a file-backed sender
//	github.com/dmitrymomot/outputtracker/core/health    - Dependency readiness checks
//
// Integrations:
//
//	github.com/dmitrymomot/outputtracker/integration/database/pg       - PostgreSQL pooling, migrations, transactions in context
//	github.com/dmitrymomot/outputtracker/integration/database/redis    - Redis client with retry logic
//	github.com/dmitrymomot/outputtracker/integration/email/postmark    - Postmark email sender
//	github.com/dmitrymomot/outputtracker/integration/storage/s3        - S3 client construction and error classification
//
// Nullable components built on the trackers:
//
//	github.com/dmitrymomot/outputtracker/nullable/todorepo   - To-do repository over PostgreSQL
//	github.com/dmitrymomot/outputtracker/nullable/mailer     - Notification mailer
//	github.com/dmitrymomot/outputtracker/nullable/kvstore    - Key-value store over Redis
//	github.com/dmitrymomot/outputtracker/nullable/blobstore  - Object uploads to S3
//
// # Quick Start
//
//	subject := threadsafe.NewSubject[string]()
//
//	tracker, err := subject.CreateTracker()
//	if err != nil {
//		return err
//	}
//
//	_ = subject.Emit("a")
//	_ = subject.Emit("b")
//
//	out, err := tracker.Output() // ["a" "b"]
//
// See cmd/demo for the nullable components wired to real services or to
// their nulled stand-ins (DEMO_NULLED, default true).
package outputtracker
