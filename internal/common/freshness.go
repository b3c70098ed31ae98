// Package common provides shared utilities for Consilio
package common

import "time"

// Freshness TTLs per platform resource family. These mirror how long the
// back office tolerates a stale read before going back to the platform.
const (
	FreshnessFunds         = 5 * time.Minute // Fund catalog changes rarely intraday
	FreshnessClientGroups  = 1 * time.Minute
	FreshnessRelationships = 1 * time.Minute
	FreshnessTemplates     = 5 * time.Minute
)

// IsFresh returns true if the given timestamp is within the TTL
func IsFresh(updated time.Time, ttl time.Duration) bool {
	if updated.IsZero() {
		return false
	}
	return time.Since(updated) < ttl
}
