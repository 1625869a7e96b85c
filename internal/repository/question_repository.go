package repository

import (
	"github.com/berkeoz/quizpark-backend/internal/models"
	"gorm.io/gorm"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Create(question *models.Question) (*models.Question, error) {
	if err := r.db.Create(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

func (r *QuestionRepository) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// ListByCategory sort alanına göre sıralı, sayfalı liste döner
func (r *QuestionRepository) ListByCategory(categoryID uint, page, pageSize int) ([]models.Question, int64, error) {
	var questions []models.Question
	var total int64

	if err := r.db.Model(&models.Question{}).Where("category_id = ?", categoryID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("category_id = ?", categoryID).
		Order("sort ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&questions).Error
	return questions, total, err
}

func (r *QuestionRepository) Update(question *models.Question) error {
	return r.db.Save(question).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Question{}, id).Error
}

func (r *QuestionRepository) IsLiked(userID, questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserLikedQuestion{}).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Count(&count).Error
	return count > 0, err
}

func (r *QuestionRepository) AddLike(userID, questionID uint) error {
	return r.db.Create(&models.UserLikedQuestion{UserID: userID, QuestionID: questionID}).Error
}

func (r *QuestionRepository) RemoveLike(userID, questionID uint) error {
	return r.db.Where("user_id = ? AND question_id = ?", userID, questionID).
		Delete(&models.UserLikedQuestion{}).Error
}

func (r *QuestionRepository) IsCompleted(userID, questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserCompletedQuestion{}).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Count(&count).Error
	return count > 0, err
}

func (r *QuestionRepository) MarkCompleted(userID, questionID uint) error {
	return r.db.Create(&models.UserCompletedQuestion{UserID: userID, QuestionID: questionID}).Error
}
