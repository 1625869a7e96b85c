package models

import (
	"time"
)

type Question struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CategoryID uint      `json:"category_id" gorm:"not null;index"`
	Text       string    `json:"text" gorm:"not null"`
	Answer     string    `json:"answer"`
	Sort       int       `json:"sort" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UserLikedQuestion struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_liked_question"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_user_liked_question"`
	CreatedAt  time.Time `json:"created_at"`
}

type UserCompletedQuestion struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_completed_question"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_user_completed_question"`
	CreatedAt  time.Time `json:"created_at"`
}

type QuestionRequest struct {
	CategoryID uint   `json:"category_id" validate:"required"`
	Text       string `json:"text" validate:"required"`
	Answer     string `json:"answer"`
	Sort       int    `json:"sort"`
}

type UpdateQuestionRequest struct {
	CategoryID *uint   `json:"category_id"`
	Text       *string `json:"text"`
	Answer     *string `json:"answer"`
	Sort       *int    `json:"sort"`
}

type QuestionResponse struct {
	ID          uint   `json:"id"`
	CategoryID  uint   `json:"category_id"`
	Text        string `json:"text"`
	Answer      string `json:"answer"`
	Sort        int    `json:"sort"`
	IsLiked     bool   `json:"is_liked"`
	IsCompleted bool   `json:"is_completed"`
}

type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
	Total     int64              `json:"total"`
}
