package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

// Config holds the redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// RedisPublisher publishes events on per-organization redis channels.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher connects to redis and verifies the connection.
func NewRedisPublisher(ctx context.Context, config Config) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	return &RedisPublisher{client: client}, nil
}

// NewRedisPublisherWithClient wraps an existing client, used in tests.
func NewRedisPublisherWithClient(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// Channel returns the pub/sub channel name for an organization.
func Channel(orgID domain.OrgID) string {
	return "org:" + orgID.String() + ":changes"
}

func (p *RedisPublisher) Publish(ctx context.Context, orgID domain.OrgID, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	if err := p.client.Publish(ctx, Channel(orgID), payload).Err(); err != nil {
		return fmt.Errorf("could not publish event: %w", err)
	}

	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
