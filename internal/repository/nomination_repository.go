package repository

import (
	"sam_awards_backend/internal/model"

	"gorm.io/gorm"
)

type NominationRepository struct {
	DB *gorm.DB
}

func NewNominationRepository(db *gorm.DB) *NominationRepository {
	return &NominationRepository{DB: db}
}

func (r *NominationRepository) Create(n *model.Nomination) error {
	return r.DB.Create(n).Error
}

func (r *NominationRepository) FindByID(id string) (*model.Nomination, error) {
	var n model.Nomination
	err := r.DB.Preload("Attachments").First(&n, "id = ?", id).Error
	return &n, err
}

func (r *NominationRepository) FindByReference(ref string) (*model.Nomination, error) {
	var n model.Nomination
	err := r.DB.Preload("Attachments").Where("reference_number = ?", ref).First(&n).Error
	return &n, err
}

func (r *NominationRepository) FindByUser(userID uint) ([]model.Nomination, error) {
	var list []model.Nomination
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// ExistsForCycle reports whether the user already submitted a
// nomination for the category in the given cycle. Drafts do not count.
func (r *NominationRepository) ExistsForCycle(userID uint, slug string, cycle int) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Nomination{}).
		Where("user_id = ? AND category_slug = ? AND cycle = ? AND status <> ?",
			userID, slug, cycle, model.StatusDraft).
		Count(&count).Error
	return count > 0, err
}

func (r *NominationRepository) Update(n *model.Nomination) error {
	return r.DB.Save(n).Error
}

func (r *NominationRepository) ListByStatus(status model.NominationStatus, page, limit int) ([]model.Nomination, int64, error) {
	var list []model.Nomination
	var total int64

	q := r.DB.Model(&model.Nomination{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("User").
		Order("submitted_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).Error
	return list, total, err
}

func (r *NominationRepository) CountByStatus() (map[model.NominationStatus]int64, error) {
	type row struct {
		Status model.NominationStatus
		Count  int64
	}
	var rows []row
	err := r.DB.Model(&model.Nomination{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[model.NominationStatus]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	return out, nil
}

func (r *NominationRepository) CreateAttachment(a *model.Attachment) error {
	return r.DB.Create(a).Error
}

func (r *NominationRepository) DeleteAttachment(id string) error {
	return r.DB.Delete(&model.Attachment{}, "id = ?", id).Error
}

func (r *NominationRepository) FindAttachment(id string) (*model.Attachment, error) {
	var a model.Attachment
	err := r.DB.First(&a, "id = ?", id).Error
	return &a, err
}
