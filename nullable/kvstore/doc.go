// Package kvstore is a string key-value store over Redis that reports every
// write to output trackers.
//
// New wraps any go-redis client. NewNulled keeps values in memory, including
// expiry, so code that caches through a Store can be tested without Redis:
//
//	kv := kvstore.NewNulled()
//	writes, _ := kv.TrackWrites()
//	_ = kv.Set(ctx, "session:42", "ann", time.Hour)
//	recorded, _ := writes.Output() // []kvstore.Write{{Op: kvstore.OpSet, ...}}
//
// A Store is safe for concurrent use.
package kvstore
