package repository

import (
	"github.com/berkeoz/quizpark-backend/internal/models"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *models.Category) (*models.Category, error) {
	if err := r.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) GetRoots() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("parent_category_id IS NULL").Order("sort ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) GetChildren(parentID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("parent_category_id = ?", parentID).Order("sort ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

func (r *CategoryRepository) ReplaceTags(category *models.Category, tags []models.Tag) error {
	return r.db.Model(category).Association("Tags").Replace(tags)
}

func (r *CategoryRepository) GetTags(categoryID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Model(&models.Category{ID: categoryID}).Association("Tags").Find(&tags)
	return tags, err
}

func (r *CategoryRepository) CountQuestions(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Question{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *CategoryRepository) IsLiked(userID, categoryID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserLikedCategory{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) IsReferenced(userID, categoryID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserReferencedCategory{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) AddLike(userID, categoryID uint) error {
	return r.db.Create(&models.UserLikedCategory{UserID: userID, CategoryID: categoryID}).Error
}

func (r *CategoryRepository) RemoveLike(userID, categoryID uint) error {
	return r.db.Where("user_id = ? AND category_id = ?", userID, categoryID).
		Delete(&models.UserLikedCategory{}).Error
}

func (r *CategoryRepository) AddReference(userID, categoryID uint) error {
	return r.db.Create(&models.UserReferencedCategory{UserID: userID, CategoryID: categoryID}).Error
}
