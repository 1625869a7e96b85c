package models

import (
	"time"
)

type Category struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Description      string    `json:"description"`
	Color            string    `json:"color"`
	Culture          string    `json:"culture" gorm:"default:'tr-TR'"`
	ParentCategoryID *uint     `json:"parent_category_id" gorm:"index"`
	IsPremiumCat     bool      `json:"is_premium_cat" gorm:"default:false"`
	IsRefCat         bool      `json:"is_ref_cat" gorm:"default:false"`
	ReferenceCode    string    `json:"-"`
	Sort             int       `json:"sort" gorm:"default:0"`
	Tags             []Tag     `json:"-" gorm:"many2many:category_tags;"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type UserLikedCategory struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_liked_category"`
	CategoryID uint      `json:"category_id" gorm:"not null;uniqueIndex:idx_user_liked_category"`
	CreatedAt  time.Time `json:"created_at"`
}

type UserReferencedCategory struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_ref_category"`
	CategoryID uint      `json:"category_id" gorm:"not null;uniqueIndex:idx_user_ref_category"`
	CreatedAt  time.Time `json:"created_at"`
}

type CategoryRequest struct {
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description"`
	Color            string `json:"color"`
	Culture          string `json:"culture"`
	ParentCategoryID *uint  `json:"parent_category_id"`
	IsPremiumCat     bool   `json:"is_premium_cat"`
	IsRefCat         bool   `json:"is_ref_cat"`
	ReferenceCode    string `json:"reference_code"`
	Sort             int    `json:"sort"`
	TagIDs           []uint `json:"tag_ids"`
}

type UpdateCategoryRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	Color            *string `json:"color"`
	Culture          *string `json:"culture"`
	ParentCategoryID *uint   `json:"parent_category_id"`
	IsPremiumCat     *bool   `json:"is_premium_cat"`
	IsRefCat         *bool   `json:"is_ref_cat"`
	ReferenceCode    *string `json:"reference_code"`
	Sort             *int    `json:"sort"`
	TagIDs           []uint  `json:"tag_ids"`
}

type RedeemReferenceRequest struct {
	Code string `json:"code" validate:"required"`
}

// CategoryNode, kategori ağacının zenginleştirilmiş tek bir düğümü.
// ChildCategories alanı alt ağacı taşır.
type CategoryNode struct {
	ID               uint           `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Color            string         `json:"color"`
	Culture          string         `json:"culture"`
	ParentCategoryID *uint          `json:"parent_category_id"`
	IsPremiumCat     bool           `json:"is_premium_cat"`
	IsRefCat         bool           `json:"is_ref_cat"`
	Sort             int            `json:"sort"`
	QuestionCount    int64          `json:"question_count"`
	IsCategoryLiked  bool           `json:"is_category_liked"`
	IsUserReferenced bool           `json:"is_user_referenced"`
	CategoryTags     []TagResponse  `json:"category_tags"`
	ChildCategories  []CategoryNode `json:"child_categories"`
}
