package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthai/etl/internal/logger"
	"github.com/healthai/etl/internal/types"
)

// The backend caps the number of values one IN clause may carry.
const emailQueryBatchSize = 100

type UserRepo interface {
	GetByEmails(ctx context.Context, tx *gorm.DB, userEmails []string) ([]*types.Utilisateur, error)
	IDsByEmail(ctx context.Context, tx *gorm.DB, userEmails []string) (map[string]uuid.UUID, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) GetByEmails(ctx context.Context, tx *gorm.DB, userEmails []string) ([]*types.Utilisateur, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var results []*types.Utilisateur
	if len(userEmails) == 0 {
		return results, nil
	}

	for start := 0; start < len(userEmails); start += emailQueryBatchSize {
		end := start + emailQueryBatchSize
		if end > len(userEmails) {
			end = len(userEmails)
		}

		var batch []*types.Utilisateur
		if err := transaction.WithContext(ctx).
			Where("email IN ?", userEmails[start:end]).
			Find(&batch).Error; err != nil {
			return nil, err
		}
		results = append(results, batch...)
	}
	return results, nil
}

// IDsByEmail resolves persisted users back into their surrogate ids, the map
// the measurement linkage stage depends on.
func (ur *userRepo) IDsByEmail(ctx context.Context, tx *gorm.DB, userEmails []string) (map[string]uuid.UUID, error) {
	users, err := ur.GetByEmails(ctx, tx, userEmails)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]uuid.UUID, len(users))
	for _, u := range users {
		ids[u.Email] = u.ID
	}
	return ids, nil
}
