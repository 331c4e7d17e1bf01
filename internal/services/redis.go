package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

const conversationTTL = 24 * time.Hour

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// ConversationRecord is the last recommendation exchange stored against a
// conversation id, so repeat calls can be correlated across requests.
type ConversationRecord struct {
	ConversationID string    `json:"conversationId"`
	UserID         *uint     `json:"userId,omitempty"`
	EventType      string    `json:"eventType"`
	Budget         float64   `json:"budget"`
	GuestCount     int       `json:"guestCount"`
	Services       []string  `json:"services"`
	Date           string    `json:"date"`
	ResultCount    int       `json:"resultCount"`
	Updated        time.Time `json:"updated"`
}

// SaveConversation stores the latest exchange for a conversation id
func SaveConversation(ctx context.Context, record ConversationRecord) error {
	if RedisClient == nil {
		return nil
	}

	record.Updated = time.Now()
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("recommendation:conversation:%s", record.ConversationID)
	return RedisClient.Set(ctx, key, data, conversationTTL).Err()
}

// GetConversation retrieves the last exchange for a conversation id
func GetConversation(ctx context.Context, conversationID string) (*ConversationRecord, error) {
	if RedisClient == nil {
		return nil, redis.Nil
	}

	key := fmt.Sprintf("recommendation:conversation:%s", conversationID)
	data, err := RedisClient.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var record ConversationRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, err
	}

	return &record, nil
}
