package repo

import (
	"SecretKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

type secretRepo struct {
	db *gorm.DB
}

// NewSecretRepository создаёт реализацию SecretRepository поверх gorm.
func NewSecretRepository(db *gorm.DB) SecretRepository {
	return &secretRepo{db: db}
}

func (r *secretRepo) CreateSecret(ctx context.Context, secret *model.Secret) (*model.Secret, error) {
	if !model.ValidID(secret.OwnerID) {
		return nil, ErrInvalidID
	}
	if secret.ID == "" {
		secret.ID = model.NewID()
	}
	if err := r.db.WithContext(ctx).Create(secret).Error; err != nil {
		return nil, translate(err)
	}
	return secret, nil
}

func (r *secretRepo) GetSecret(ctx context.Context, ownerID, id string) (*model.Secret, error) {
	if !model.ValidID(id) || !model.ValidID(ownerID) {
		return nil, ErrInvalidID
	}
	var s model.Secret
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&s).Error
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *secretRepo) ListSecrets(ctx context.Context, ownerID string) ([]model.Secret, error) {
	if !model.ValidID(ownerID) {
		return nil, ErrInvalidID
	}
	secrets := []model.Secret{}
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&secrets).Error; err != nil {
		return nil, err
	}
	return secrets, nil
}

func (r *secretRepo) UpdateSecret(ctx context.Context, ownerID, id string, fields map[string]any) (*model.Secret, error) {
	if !model.ValidID(id) || !model.ValidID(ownerID) {
		return nil, ErrInvalidID
	}
	var s model.Secret
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			res := tx.Model(&model.Secret{}).Where("id = ? AND owner_id = ?", id, ownerID).Updates(fields)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return tx.Where("id = ? AND owner_id = ?", id, ownerID).First(&s).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *secretRepo) DeleteSecret(ctx context.Context, ownerID, id string) error {
	if !model.ValidID(id) || !model.ValidID(ownerID) {
		return ErrInvalidID
	}
	res := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.Secret{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *secretRepo) DeleteSecretsByOwner(ctx context.Context, ownerID string) (int64, error) {
	if !model.ValidID(ownerID) {
		return 0, ErrInvalidID
	}
	res := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.Secret{})
	return res.RowsAffected, res.Error
}
