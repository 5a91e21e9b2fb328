package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sam_awards_backend/internal/award"
	"sam_awards_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const answerCacheTTL = 24 * time.Hour

type EligibilityRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewEligibilityRepository(db *gorm.DB, rdb *redis.Client) *EligibilityRepository {
	return &EligibilityRepository{DB: db, RDB: rdb}
}

func answerCacheKey(userID uint, slug string) string {
	return fmt.Sprintf("eligibility:answers:%d:%s", userID, slug)
}

func (r *EligibilityRepository) Create(check *model.EligibilityCheck) error {
	return r.DB.Create(check).Error
}

func (r *EligibilityRepository) FindActive(userID uint, slug string, cycle int) (*model.EligibilityCheck, error) {
	var check model.EligibilityCheck
	err := r.DB.Where("user_id = ? AND category_slug = ? AND cycle = ?", userID, slug, cycle).
		Order("created_at DESC").
		First(&check).Error
	return &check, err
}

func (r *EligibilityRepository) Update(check *model.EligibilityCheck) error {
	return r.DB.Save(check).Error
}

// CacheAnswers keeps the in-progress answer set in Redis so each
// incremental answer round-trips without touching MySQL.
func (r *EligibilityRepository) CacheAnswers(ctx context.Context, userID uint, slug string, answers award.Answers) error {
	payload, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	return r.RDB.Set(ctx, answerCacheKey(userID, slug), payload, answerCacheTTL).Err()
}

// CachedAnswers returns the cached answer set, or nil on a cache miss.
func (r *EligibilityRepository) CachedAnswers(ctx context.Context, userID uint, slug string) (award.Answers, error) {
	raw, err := r.RDB.Get(ctx, answerCacheKey(userID, slug)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var answers award.Answers
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *EligibilityRepository) DropCachedAnswers(ctx context.Context, userID uint, slug string) error {
	return r.RDB.Del(ctx, answerCacheKey(userID, slug)).Err()
}
