package service

import (
	"errors"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
	"gorm.io/gorm"
)

const DefaultPageSize = 20

type QuestionService struct {
	questionRepo *repository.QuestionRepository
	categoryRepo *repository.CategoryRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository, categoryRepo *repository.CategoryRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// ListByCategory kategorideki soruları sort sırasıyla, sayfalı ve
// kullanıcının beğeni/tamamlama durumuyla döner
func (s *QuestionService) ListByCategory(categoryID, userID uint, page, pageSize int) (*models.QuestionListResponse, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = DefaultPageSize
	}

	questions, total, err := s.questionRepo.ListByCategory(categoryID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]models.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		liked, err := s.questionRepo.IsLiked(userID, q.ID)
		if err != nil {
			return nil, err
		}
		completed, err := s.questionRepo.IsCompleted(userID, q.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, models.QuestionResponse{
			ID:          q.ID,
			CategoryID:  q.CategoryID,
			Text:        q.Text,
			Answer:      q.Answer,
			Sort:        q.Sort,
			IsLiked:     liked,
			IsCompleted: completed,
		})
	}

	return &models.QuestionListResponse{
		Questions: responses,
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
	}, nil
}

func (s *QuestionService) ToggleLike(userID, questionID uint) (bool, error) {
	if _, err := s.questionRepo.GetByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.ErrNotFound
		}
		return false, err
	}

	liked, err := s.questionRepo.IsLiked(userID, questionID)
	if err != nil {
		return false, err
	}
	if liked {
		return false, s.questionRepo.RemoveLike(userID, questionID)
	}
	return true, s.questionRepo.AddLike(userID, questionID)
}

// MarkCompleted idempotenttir, tekrar çağrılması hata üretmez
func (s *QuestionService) MarkCompleted(userID, questionID uint) error {
	if _, err := s.questionRepo.GetByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	completed, err := s.questionRepo.IsCompleted(userID, questionID)
	if err != nil {
		return err
	}
	if completed {
		return nil
	}
	return s.questionRepo.MarkCompleted(userID, questionID)
}

// Admin CRUD

func (s *QuestionService) CreateQuestion(req models.QuestionRequest) (*models.Question, error) {
	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	return s.questionRepo.Create(&models.Question{
		CategoryID: req.CategoryID,
		Text:       req.Text,
		Answer:     req.Answer,
		Sort:       req.Sort,
	})
}

func (s *QuestionService) UpdateQuestion(questionID uint, req models.UpdateQuestionRequest) (*models.Question, error) {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if req.CategoryID != nil {
		question.CategoryID = *req.CategoryID
	}
	if req.Text != nil {
		question.Text = *req.Text
	}
	if req.Answer != nil {
		question.Answer = *req.Answer
	}
	if req.Sort != nil {
		question.Sort = *req.Sort
	}

	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) DeleteQuestion(questionID uint) error {
	if _, err := s.questionRepo.GetByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return s.questionRepo.Delete(questionID)
}
