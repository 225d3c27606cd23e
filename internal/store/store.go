// Package store persists the applied set under a single key.
package store

import "github.com/amishk599/postings/internal/model"

// AppliedKey is the storage key holding the applied job IDs.
const AppliedKey = "appliedIds"

var (
	_ model.AppliedRepository = (*SQLiteStore)(nil)
	_ model.AppliedRepository = (*FileStore)(nil)
	_ model.AppliedRepository = (*MemoryStore)(nil)
)
