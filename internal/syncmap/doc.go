// Package syncmap offers a lightweight, generic, concurrency-safe map with
// basic Get/Set/Delete/List operations guarded by a sync.RWMutex.  It backs
// the session-scoped wire-name registry where many dispatch readers overlap
// with a single listing-refresh writer.
package syncmap
