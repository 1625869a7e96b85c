package service

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
	"gorm.io/gorm"
)

type TagService struct {
	tagRepo *repository.TagRepository

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewTagService(tagRepo *repository.TagRepository, rng *rand.Rand) *TagService {
	return &TagService{
		tagRepo: tagRepo,
		rng:     rng,
	}
}

func (s *TagService) GetAll() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

// RandomTag tüm tagler arasından düzgün dağılımla bir tane seçer
func (s *TagService) RandomTag() (*models.Tag, error) {
	count, err := s.tagRepo.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, models.ErrNotFound
	}

	s.rngMu.Lock()
	offset := s.rng.Intn(int(count))
	s.rngMu.Unlock()

	return s.tagRepo.GetAtOffset(offset)
}

func (s *TagService) CreateTag(req models.TagRequest) (*models.Tag, error) {
	return s.tagRepo.Create(&models.Tag{Name: req.Name})
}

func (s *TagService) UpdateTag(tagID uint, req models.TagRequest) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	tag.Name = req.Name
	if err := s.tagRepo.Update(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) DeleteTag(tagID uint) error {
	if _, err := s.tagRepo.GetByID(tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return s.tagRepo.Delete(tagID)
}
