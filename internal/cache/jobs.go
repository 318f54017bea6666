package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"jobboard/internal/models"

	"github.com/redis/go-redis/v9"
)

const jobListKey = "jobs:active"

// JobListCache holds the public active-job listing in Redis. It is strictly
// an external cache: a nil client or any Redis failure degrades to the
// database, never to an error surfaced to the caller.
type JobListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewJobListCache creates a cache over the given client. A nil client yields
// a cache whose reads always miss and whose writes are no-ops.
func NewJobListCache(client *redis.Client, ttl time.Duration) *JobListCache {
	return &JobListCache{client: client, ttl: ttl}
}

// Get returns the cached listing and whether it was present.
func (c *JobListCache) Get(ctx context.Context) ([]models.Job, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, jobListKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("JobListCache: Error reading %s: %v", jobListKey, err)
		}
		return nil, false
	}

	var jobs []models.Job
	if err := json.Unmarshal([]byte(payload), &jobs); err != nil {
		log.Printf("JobListCache: Error unmarshaling %s: %v", jobListKey, err)
		return nil, false
	}

	return jobs, true
}

// Set stores the listing with the configured TTL. Best-effort.
func (c *JobListCache) Set(ctx context.Context, jobs []models.Job) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(jobs)
	if err != nil {
		log.Printf("JobListCache: Error marshaling job list: %v", err)
		return
	}
	if err := c.client.Set(ctx, jobListKey, payload, c.ttl).Err(); err != nil {
		log.Printf("JobListCache: Error writing %s: %v", jobListKey, err)
	}
}

// Invalidate drops the cached listing. Called after any job mutation so the
// public board never serves a stale active set longer than one round-trip.
func (c *JobListCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, jobListKey).Err(); err != nil {
		log.Printf("JobListCache: Error invalidating %s: %v", jobListKey, err)
	}
}
