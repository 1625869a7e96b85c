package repository

import (
	"time"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx aynı repository'yi verilen transaction üzerinde çalıştırır
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// ResetSearchQuota yeni güne geçildiyse sayacı 1'e çeker ve arama zamanını
// günceller. Koşul WHERE içinde olduğundan eşzamanlı çağrılar altında
// atomiktir; 0 satır dönmesi bugünün sayacının zaten başladığı anlamına gelir.
func (r *UserRepository) ResetSearchQuota(userID uint, now, startOfDay time.Time) (bool, error) {
	res := r.db.Model(&models.User{}).
		Where("id = ? AND (event_search_last_date IS NULL OR event_search_last_date < ?)", userID, startOfDay).
		Updates(map[string]interface{}{
			"event_search_count":     1,
			"event_search_last_date": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// IncrementSearchQuota sayacı limite kadar atomik olarak artırır.
// 0 satır dönmesi limitin dolduğu anlamına gelir.
func (r *UserRepository) IncrementSearchQuota(userID uint, limit int, now time.Time) (bool, error) {
	res := r.db.Model(&models.User{}).
		Where("id = ? AND event_search_count < ?", userID, limit).
		Updates(map[string]interface{}{
			"event_search_count":     gorm.Expr("event_search_count + 1"),
			"event_search_last_date": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *UserRepository) SaveDeviceToken(token *models.DeviceToken) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"platform", "updated_at"}),
	}).Create(token).Error
}

func (r *UserRepository) GetAllDeviceTokens() ([]string, error) {
	var tokens []string
	err := r.db.Model(&models.DeviceToken{}).Pluck("token", &tokens).Error
	return tokens, err
}
