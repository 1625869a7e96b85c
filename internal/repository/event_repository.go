package repository

import (
	"github.com/berkeoz/quizpark-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// WithTx aynı repository'yi verilen transaction üzerinde çalıştırır
func (r *EventRepository) WithTx(tx *gorm.DB) *EventRepository {
	return &EventRepository{db: tx}
}

func (r *EventRepository) Create(event *models.Event) (*models.Event, error) {
	if err := r.db.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetAll() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Find(&events).Error
	return events, err
}

func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *EventRepository) Delete(id uint) error {
	if err := r.db.Where("event_id = ?", id).Delete(&models.EventMatch{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Event{}, id).Error
}

// MatchingEventIDs gönderilen normalize cevap kümesini tam kapsayan
// eventlerin id'lerini döner. Bir event ancak gerekli cevaplarının TAMAMI
// kümede bulunduğunda eşleşir; kısmi kapsama eşleşme sayılmaz.
func (r *EventRepository) MatchingEventIDs(answerTexts []string) ([]uint, error) {
	var ids []uint
	err := r.db.Raw(`
		SELECT em.event_id
		FROM event_matches em
		JOIN event_question_answers eqa ON eqa.id = em.event_question_answer_id
		GROUP BY em.event_id
		HAVING COUNT(DISTINCT CASE WHEN LOWER(eqa.text) IN (?) THEN eqa.id END) = COUNT(DISTINCT eqa.id)`,
		answerTexts,
	).Scan(&ids).Error
	return ids, err
}

// Event question / answer / match yönetimi

func (r *EventRepository) CreateQuestion(q *models.EventQuestion) (*models.EventQuestion, error) {
	if err := r.db.Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

func (r *EventRepository) GetQuestions() ([]models.EventQuestion, error) {
	var questions []models.EventQuestion
	err := r.db.Order("sort ASC").Find(&questions).Error
	return questions, err
}

func (r *EventRepository) CreateAnswer(a *models.EventQuestionAnswer) (*models.EventQuestionAnswer, error) {
	if err := r.db.Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *EventRepository) GetAnswersByQuestion(questionID uint) ([]models.EventQuestionAnswer, error) {
	var answers []models.EventQuestionAnswer
	err := r.db.Where("event_question_id = ?", questionID).Find(&answers).Error
	return answers, err
}

func (r *EventRepository) ReplaceMatches(eventID uint, answerIDs []uint) error {
	if err := r.db.Where("event_id = ?", eventID).Delete(&models.EventMatch{}).Error; err != nil {
		return err
	}
	for _, answerID := range answerIDs {
		match := models.EventMatch{EventID: eventID, EventQuestionAnswerID: answerID}
		if err := r.db.Create(&match).Error; err != nil {
			return err
		}
	}
	return nil
}

// Görüntülenen event kaydı

func (r *EventRepository) AppendViewed(userID, eventID uint) error {
	return r.db.Create(&models.UserViewedEvent{UserID: userID, EventID: eventID}).Error
}

func (r *EventRepository) CountViewed(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserViewedEvent{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// DeleteOldestViewed en eski kaydı siler, retention invariantını korumak
// için ekleme sonrası çağrılır
func (r *EventRepository) DeleteOldestViewed(userID uint) error {
	var oldest models.UserViewedEvent
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC, id ASC").First(&oldest).Error
	if err != nil {
		return err
	}
	return r.db.Delete(&models.UserViewedEvent{}, oldest.ID).Error
}

// ListRecentViewed en yeni görüntülenen eventleri döner (en yeni önce)
func (r *EventRepository) ListRecentViewed(userID uint, limit int) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Raw(`
		SELECT e.*
		FROM user_viewed_events uve
		JOIN events e ON e.id = uve.event_id
		WHERE uve.user_id = ?
		ORDER BY uve.created_at DESC, uve.id DESC
		LIMIT ?`,
		userID, limit,
	).Scan(&events).Error
	return events, err
}

// Beğeniler

func (r *EventRepository) IsLiked(userID, eventID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserLikedEvent{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	return count > 0, err
}

func (r *EventRepository) AddLike(userID, eventID uint) error {
	return r.db.Create(&models.UserLikedEvent{UserID: userID, EventID: eventID}).Error
}

func (r *EventRepository) RemoveLike(userID, eventID uint) error {
	return r.db.Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&models.UserLikedEvent{}).Error
}
