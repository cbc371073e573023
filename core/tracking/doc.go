// Package tracking implements the registry and store machinery shared by the
// threadsafe and nonthreadsafe output trackers.
//
// A Subject owns one Registry behind a cell.Cell. Creating a tracker adds a
// fresh Store (behind its own cell) to the registry under a new
// handle.TrackerHandle; emitting broadcasts a clone of the item to every
// registered store in registration order. A Tracker keeps its own reference
// to its store, so collected data stays readable after Stop and after the
// Subject is gone.
//
// The concurrency discipline is chosen by the Cells passed to NewSubject;
// this package contains no locking of its own.
//
// Broadcast is fail-fast: the first store that cannot be accessed ends the
// broadcast with its error, and stores registered after it do not receive
// the item.
package tracking
