// Package threadsafe provides output trackers that may be shared between
// goroutines.
//
// A Subject is held by production code and emits the data it wants to make
// observable. Test code creates Trackers from the subject and reads what was
// emitted, without replacing the production component with a mock:
//
//	type Repository struct {
//		db      DB
//		inserts threadsafe.Subject[Todo]
//	}
//
//	func NewRepository(db DB) *Repository {
//		return &Repository{db: db, inserts: threadsafe.NewSubject[Todo]()}
//	}
//
//	func (r *Repository) TrackInserts() (*threadsafe.Tracker[Todo], error) {
//		return r.inserts.CreateTracker()
//	}
//
//	func (r *Repository) Insert(ctx context.Context, todo Todo) error {
//		if err := r.db.Insert(ctx, todo); err != nil {
//			return err
//		}
//		_ = r.inserts.Emit(todo) // tracking is best-effort
//		return nil
//	}
//
// In a test:
//
//	tracker, err := repo.TrackInserts()
//	require.NoError(t, err)
//	require.NoError(t, repo.Insert(ctx, todo))
//	got, err := tracker.Output()
//	require.NoError(t, err)
//	assert.Equal(t, []Todo{todo}, got)
//
// The API mirrors package nonthreadsafe; switching between them only changes
// the import. All operations here are guarded by a spinning mutex. Concurrent
// emits are serialised, but their relative order is unspecified.
//
// # Errors
//
// A Subject or Tracker used as a zero value fails every operation with
// cell.ErrUninitialized wrapped in the matching error of this package.
//
// A panic while the registry or a tracker's store is held poisons it.
// From then on every access fails with ErrLockSubjectFailed or
// ErrLockTrackerFailed respectively, wrapping cell.ErrPoisoned. Emit stops at
// the first poisoned store: trackers registered before it receive the item,
// trackers registered after it do not.
package threadsafe
