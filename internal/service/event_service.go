package service

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
	"github.com/berkeoz/quizpark-backend/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// Premium olmayan kullanıcılar için günlük arama hakkı
	DailySearchLimit = 3
	// Kullanıcı başına tutulan son görüntülenen event sayısı
	RecentEventsLimit = 3
)

type EventService struct {
	db            *gorm.DB
	eventRepo     *repository.EventRepository
	userRepo      *repository.UserRepository
	promotionRepo *repository.PromotionRepository
	loc           *time.Location
	logger        *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewEventService(
	db *gorm.DB,
	eventRepo *repository.EventRepository,
	userRepo *repository.UserRepository,
	promotionRepo *repository.PromotionRepository,
	loc *time.Location,
	rng *rand.Rand,
	logger *zap.Logger,
) *EventService {
	return &EventService{
		db:            db,
		eventRepo:     eventRepo,
		userRepo:      userRepo,
		promotionRepo: promotionRepo,
		loc:           loc,
		rng:           rng,
		logger:        logger,
	}
}

// FindMatch kullanıcının cevap kümesine karşılık gelen eventi bulur.
// Kota kontrolü, eşleşme ve görüntülenme kaydı tek transaction içinde
// yürür; hata durumunda hiçbir yazma kalıcı olmaz. Eşleşme yoksa boş
// liste döner, hata değil.
func (s *EventService) FindMatch(userID uint, answerTexts []string) ([]models.EventResponse, error) {
	normalized := utils.NormalizeAnswerSet(answerTexts)

	var result []models.EventResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := s.userRepo.WithTx(tx)
		eventRepo := s.eventRepo.WithTx(tx)

		user, err := userRepo.GetByID(userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		if err != nil {
			return err
		}

		now := time.Now().In(s.loc)
		paid, err := isPaidMember(s.promotionRepo.WithTx(tx), user, now)
		if err != nil {
			return err
		}

		// Premium kullanıcılar kota alanlarına hiç dokunmaz
		if !paid {
			if err := s.consumeQuota(userRepo, user.ID, now); err != nil {
				return err
			}
		}

		if len(normalized) == 0 {
			result = []models.EventResponse{}
			return nil
		}

		ids, err := eventRepo.MatchingEventIDs(normalized)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			result = []models.EventResponse{}
			return nil
		}

		// Birden fazla eşleşme varsa rastgele biri seçilir
		s.rngMu.Lock()
		eventID := ids[s.rng.Intn(len(ids))]
		s.rngMu.Unlock()

		event, err := eventRepo.GetByID(eventID)
		if err != nil {
			return err
		}

		if err := eventRepo.AppendViewed(user.ID, event.ID); err != nil {
			return err
		}
		if err := s.trimViewed(eventRepo, user.ID); err != nil {
			return err
		}

		liked, err := eventRepo.IsLiked(user.ID, event.ID)
		if err != nil {
			return err
		}

		result = []models.EventResponse{{
			ID:          event.ID,
			Name:        event.Name,
			Description: event.Description,
			Culture:     event.Culture,
			IsUserLiked: liked,
		}}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// consumeQuota günlük arama hakkını düşer. Takvim günü karşılaştırması
// sabit referans saat diliminde yapılır; her iki UPDATE de koşullu
// olduğundan eşzamanlı isteklerde çift sayım oluşmaz.
func (s *EventService) consumeQuota(userRepo *repository.UserRepository, userID uint, now time.Time) error {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	reset, err := userRepo.ResetSearchQuota(userID, now, startOfDay)
	if err != nil {
		return err
	}
	if reset {
		return nil
	}

	incremented, err := userRepo.IncrementSearchQuota(userID, DailySearchLimit, now)
	if err != nil {
		return err
	}
	if !incremented {
		return models.ErrRateLimited
	}
	return nil
}

// trimViewed görüntülenme kaydını limitin üzerine çıktıysa en eskisinden
// başlayarak kırpar. Ekleme sayıyı birer artırdığı için pratikte tek
// silme yeterlidir.
func (s *EventService) trimViewed(eventRepo *repository.EventRepository, userID uint) error {
	count, err := eventRepo.CountViewed(userID)
	if err != nil {
		return err
	}
	for count > RecentEventsLimit {
		if err := eventRepo.DeleteOldestViewed(userID); err != nil {
			return err
		}
		count--
	}
	return nil
}

// RecentEvents en son görüntülenen eventleri beğeni durumu ile döner
func (s *EventService) RecentEvents(userID uint) ([]models.EventResponse, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	events, err := s.eventRepo.ListRecentViewed(userID, RecentEventsLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]models.EventResponse, 0, len(events))
	for _, event := range events {
		liked, err := s.eventRepo.IsLiked(userID, event.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, models.EventResponse{
			ID:          event.ID,
			Name:        event.Name,
			Description: event.Description,
			Culture:     event.Culture,
			IsUserLiked: liked,
		})
	}
	return responses, nil
}

func (s *EventService) ToggleLike(userID, eventID uint) (bool, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.ErrNotFound
		}
		return false, err
	}

	liked, err := s.eventRepo.IsLiked(userID, eventID)
	if err != nil {
		return false, err
	}
	if liked {
		return false, s.eventRepo.RemoveLike(userID, eventID)
	}
	return true, s.eventRepo.AddLike(userID, eventID)
}

// Admin CRUD

func (s *EventService) CreateEvent(req models.EventRequest) (*models.Event, error) {
	event := &models.Event{
		Name:        req.Name,
		Description: req.Description,
		Culture:     req.Culture,
	}

	created, err := s.eventRepo.Create(event)
	if err != nil {
		return nil, err
	}

	if len(req.AnswerIDs) > 0 {
		if err := s.eventRepo.ReplaceMatches(created.ID, req.AnswerIDs); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func (s *EventService) GetEvents() ([]models.Event, error) {
	return s.eventRepo.GetAll()
}

func (s *EventService) UpdateEvent(eventID uint, req models.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Culture != nil {
		event.Culture = *req.Culture
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}

	if req.AnswerIDs != nil {
		if err := s.eventRepo.ReplaceMatches(event.ID, req.AnswerIDs); err != nil {
			return nil, err
		}
	}

	return event, nil
}

func (s *EventService) DeleteEvent(eventID uint) error {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return s.eventRepo.Delete(eventID)
}

func (s *EventService) CreateEventQuestion(req models.EventQuestionRequest) (*models.EventQuestion, error) {
	return s.eventRepo.CreateQuestion(&models.EventQuestion{Text: req.Text, Sort: req.Sort})
}

func (s *EventService) GetEventQuestions() ([]models.EventQuestion, error) {
	return s.eventRepo.GetQuestions()
}

// CreateEventAnswer cevap metnini normalize edilmiş formda saklar,
// eşleşme sorgusu bu forma güvenir
func (s *EventService) CreateEventAnswer(req models.EventQuestionAnswerRequest) (*models.EventQuestionAnswer, error) {
	return s.eventRepo.CreateAnswer(&models.EventQuestionAnswer{
		EventQuestionID: req.EventQuestionID,
		Text:            utils.NormalizeAnswer(req.Text),
	})
}

func (s *EventService) GetEventAnswers(questionID uint) ([]models.EventQuestionAnswer, error) {
	return s.eventRepo.GetAnswersByQuestion(questionID)
}
