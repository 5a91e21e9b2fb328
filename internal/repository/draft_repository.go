package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const draftTTL = 7 * 24 * time.Hour

// DraftRepository stores in-progress nomination forms in Redis. A
// draft lives until it is submitted, discarded, or its TTL lapses.
type DraftRepository struct {
	RDB *redis.Client
}

func NewDraftRepository(rdb *redis.Client) *DraftRepository {
	return &DraftRepository{RDB: rdb}
}

func draftKey(userID uint, slug string) string {
	return fmt.Sprintf("nomination:draft:%d:%s", userID, slug)
}

func (r *DraftRepository) Save(ctx context.Context, userID uint, slug string, draft interface{}) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return r.RDB.Set(ctx, draftKey(userID, slug), payload, draftTTL).Err()
}

// Load unmarshals the stored draft into dest. Returns false on a miss.
func (r *DraftRepository) Load(ctx context.Context, userID uint, slug string, dest interface{}) (bool, error) {
	raw, err := r.RDB.Get(ctx, draftKey(userID, slug)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *DraftRepository) Delete(ctx context.Context, userID uint, slug string) error {
	return r.RDB.Del(ctx, draftKey(userID, slug)).Err()
}
