package tmpstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jvlp/md-parser/markdown"
	"github.com/jvlp/md-parser/util"
	"github.com/redis/go-redis/v9"
)

// Key prefix for cached tokenization results.
const ResultPrefix = "result:"

// ErrNotFound is returned when no cached result exists for the key, or when it
// has expired. A miss is expected flow, not a failure.
var ErrNotFound = errors.New("tokenization result not found or expired")

// LineTokens is one input line together with the tokens produced from it.
type LineTokens struct {
	Line   string           `json:"line"`
	Tokens []markdown.Token `json:"tokens"`
}

// TokenizedDocument is the cached result of tokenizing one document.
type TokenizedDocument struct {
	Lines     []LineTokens `json:"lines"`
	CreatedAt time.Time    `json:"created_at"`
}

type Store interface {
	SaveResult(ctx context.Context, key string, doc TokenizedDocument, ttl time.Duration) error
	GetResult(ctx context.Context, key string) (*TokenizedDocument, error)
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// SaveResult caches the tokenized document under the key so repeated
// submissions of the same content skip the scan entirely.
func (store *RedisStore) SaveResult(
	ctx context.Context,
	key string,
	doc TokenizedDocument,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize tokenization result: %w", err)
	}

	return store.client.Set(ctx, ResultPrefix+key, jsonData, ttl).Err()
}

// GetResult retrieves a cached tokenization result.
// Returns ErrNotFound on a cache miss or after expiry.
func (store *RedisStore) GetResult(ctx context.Context, key string) (*TokenizedDocument, error) {
	jsonData, err := store.client.Get(ctx, ResultPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tokenization result: %w", err)
	}

	var doc TokenizedDocument
	if err := json.Unmarshal([]byte(jsonData), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tokenization result json: %w", err)
	}

	return &doc, nil
}

// ResultKey derives the cache key for a document: hex SHA-256 over the lines
// with a length-prefix per line, so ["ab"] and ["a","b"] cannot collide.
func ResultKey(lines []string) string {
	h := sha256.New()

	for _, line := range lines {
		fmt.Fprintf(h, "%d:", len(line))
		h.Write([]byte(line))
	}

	return hex.EncodeToString(h.Sum(nil))
}
