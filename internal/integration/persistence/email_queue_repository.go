package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/freight-ledger/backend/internal/application/adapter"
	"github.com/freight-ledger/backend/internal/domain/entity"
	domainerror "github.com/freight-ledger/backend/internal/domain/error"
	"github.com/freight-ledger/backend/internal/integration/persistence/model"
)

// emailQueueRepository implements the adapter.EmailQueueRepository interface.
type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates a new email queue repository instance.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{db: db}
}

// Enqueue adds a new email job to the queue.
func (r *emailQueueRepository) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	emailModel := model.EmailQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Create(emailModel)
	if result.Error != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to enqueue email job",
			result.Error,
		)
	}
	return nil
}

// DequeueBatch claims up to limit pending jobs that are due for processing
// and marks them as processing.
func (r *emailQueueRepository) DequeueBatch(ctx context.Context, limit int) ([]entity.EmailJob, error) {
	var models []model.EmailQueueModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("status = ?", entity.EmailStatusPending).
			Where("scheduled_at <= ?", time.Now().UTC()).
			Order("scheduled_at ASC").
			Limit(limit).
			Find(&models)
		if result.Error != nil {
			return result.Error
		}
		if len(models) == 0 {
			return nil
		}

		ids := make([]interface{}, len(models))
		for i, m := range models {
			ids[i] = m.ID
		}
		return tx.Model(&model.EmailQueueModel{}).
			Where("id IN ?", ids).
			Update("status", entity.EmailStatusProcessing).Error
	})
	if err != nil {
		return nil, err
	}

	jobs := make([]entity.EmailJob, len(models))
	for i, m := range models {
		job := m.ToEntity()
		job.MarkProcessing()
		jobs[i] = *job
	}
	return jobs, nil
}

// Update saves changes to an email job.
func (r *emailQueueRepository) Update(ctx context.Context, job *entity.EmailJob) error {
	emailModel := model.EmailQueueModelFromEntity(job)
	return r.db.WithContext(ctx).Save(emailModel).Error
}
