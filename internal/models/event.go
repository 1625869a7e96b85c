package models

import (
	"time"
)

type Event struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null"`
	Description string       `json:"description"`
	Culture     string       `json:"culture" gorm:"default:'tr-TR'"`
	Matches     []EventMatch `json:"-" gorm:"foreignKey:EventID"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type EventQuestion struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"not null"`
	Sort      int       `json:"sort" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EventQuestionAnswer struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	EventQuestionID uint      `json:"event_question_id" gorm:"not null;index"`
	Text            string    `json:"text" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// EventMatch bir event'in eşleşmesi için gereken tek bir cevabı bağlar.
// Event ancak tüm bağlı cevaplar kullanıcının gönderdiği küme içinde
// bulunduğunda eşleşir.
type EventMatch struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	EventID               uint      `json:"event_id" gorm:"not null;uniqueIndex:idx_event_match"`
	EventQuestionAnswerID uint      `json:"event_question_answer_id" gorm:"not null;uniqueIndex:idx_event_match"`
	CreatedAt             time.Time `json:"created_at"`
}

type UserViewedEvent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	EventID   uint      `json:"event_id" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

type UserLikedEvent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_liked_event"`
	EventID   uint      `json:"event_id" gorm:"not null;uniqueIndex:idx_user_liked_event"`
	CreatedAt time.Time `json:"created_at"`
}

type FindEventRequest struct {
	Answers []string `json:"answers" validate:"required,min=1,dive,required"`
}

type EventRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Culture     string `json:"culture"`
	AnswerIDs   []uint `json:"answer_ids"`
}

type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Culture     *string `json:"culture"`
	AnswerIDs   []uint  `json:"answer_ids"`
}

type EventQuestionRequest struct {
	Text string `json:"text" validate:"required"`
	Sort int    `json:"sort"`
}

type EventQuestionAnswerRequest struct {
	EventQuestionID uint   `json:"event_question_id" validate:"required"`
	Text            string `json:"text" validate:"required"`
}

type EventResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Culture     string `json:"culture"`
	IsUserLiked bool   `json:"is_user_liked"`
}
