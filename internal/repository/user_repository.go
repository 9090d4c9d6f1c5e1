package repository

import (
	"diary_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByAnonID(anonID string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("anon_id = ?", anonID).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

// UpsertProfile 匿名身份首次更新资料时才落库，之后按 anon_id 更新
func (r *UserRepository) UpsertProfile(anonID string, updates map[string]interface{}) (*model.User, error) {
	var user model.User
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(model.User{AnonID: anonID}).
			Attrs(model.User{Provider: model.ProviderAnonymous}).
			FirstOrCreate(&user).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("anon_id = ?", anonID).First(&user).Error
	})
	return &user, err
}

// RegisterDeviceToken 幂等注册：(anon_id, token) 唯一
func (r *UserRepository) RegisterDeviceToken(token *model.DeviceToken) error {
	return r.DB.
		Where("anon_id = ? AND token = ?", token.AnonID, token.Token).
		FirstOrCreate(token).Error
}

func (r *UserRepository) GetDeviceTokens(anonID string) ([]model.DeviceToken, error) {
	var tokens []model.DeviceToken
	err := r.DB.Where("anon_id = ?", anonID).Find(&tokens).Error
	return tokens, err
}
