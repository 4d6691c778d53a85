// Package jobs runs background work over Asynq: the per-user analytics
// rollups are rebuilt on a schedule so the storefront reads stay cheap.
package jobs

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskAnalyticsRefresh rebuilds the user_analytics rollup table.
	TaskAnalyticsRefresh = "analytics:refresh"
)

// AnalyticsRefreshPayload is currently empty; the refresh always covers
// every user. Kept as a struct so a scoped refresh can be added later.
type AnalyticsRefreshPayload struct{}

// NewAnalyticsRefreshTask constructs the rollup refresh task.
func NewAnalyticsRefreshTask() (*asynq.Task, error) {
	data, err := json.Marshal(AnalyticsRefreshPayload{})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAnalyticsRefresh, data), nil
}

// RollupRefresher is the analytics surface the worker drives.
type RollupRefresher interface {
	RefreshRollups(ctx context.Context) (int64, error)
}

// Client submits jobs to the queue.
type Client struct {
	client *asynq.Client
}

// NewClient constructs an Asynq client.
func NewClient(redisOpts asynq.RedisClientOpt) *Client {
	return &Client{client: asynq.NewClient(redisOpts)}
}

// EnqueueAnalyticsRefresh queues an immediate rollup rebuild.
func (c *Client) EnqueueAnalyticsRefresh(ctx context.Context) (*asynq.TaskInfo, error) {
	task, err := NewAnalyticsRefreshTask()
	if err != nil {
		return nil, err
	}
	return c.client.EnqueueContext(ctx, task, asynq.Queue(QueueDefault))
}

// Close releases client resources.
func (c *Client) Close() error {
	return c.client.Close()
}
