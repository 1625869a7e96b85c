package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type CategoryService struct {
	categoryRepo  *repository.CategoryRepository
	tagRepo       *repository.TagRepository
	userRepo      *repository.UserRepository
	promotionRepo *repository.PromotionRepository
	logger        *zap.Logger
}

func NewCategoryService(
	categoryRepo *repository.CategoryRepository,
	tagRepo *repository.TagRepository,
	userRepo *repository.UserRepository,
	promotionRepo *repository.PromotionRepository,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo:  categoryRepo,
		tagRepo:       tagRepo,
		userRepo:      userRepo,
		promotionRepo: promotionRepo,
		logger:        logger,
	}
}

// visitedSet döngüsel parent/child zincirine karşı recursion koruması.
// Parent-pointer ağacında bir düğüm en fazla bir kez görülebilir; ikinci
// görülme veri bozukluğu demektir.
type visitedSet struct {
	mu  sync.Mutex
	ids map[uint]struct{}
}

func newVisitedSet() *visitedSet {
	return &visitedSet{ids: make(map[uint]struct{})}
}

func (v *visitedSet) add(id uint) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.ids[id]; ok {
		return false
	}
	v.ids[id] = struct{}{}
	return true
}

// GetCategoryTree kategori alt ağacını zenginleştirilmiş olarak döner.
// Premium ve referans kontrolleri yalnızca istenen kökte uygulanır,
// admin isteklerinde tamamen atlanır.
func (s *CategoryService) GetCategoryTree(categoryID, userID uint, isAdmin bool) (*models.CategoryNode, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if !isAdmin {
		user, err := s.userRepo.GetByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrNotFound
			}
			return nil, err
		}

		if category.IsPremiumCat {
			paid, err := isPaidMember(s.promotionRepo, user, time.Now())
			if err != nil {
				return nil, err
			}
			if !paid {
				return nil, models.ErrForbidden
			}
		}

		if category.IsRefCat {
			referenced, err := s.categoryRepo.IsReferenced(userID, categoryID)
			if err != nil {
				return nil, err
			}
			if !referenced {
				return nil, models.ErrForbidden
			}
		}
	}

	return s.enrichNode(category, userID, newVisitedSet())
}

// GetRootCategories kök kategorileri tek seviye zenginleştirilmiş döner
func (s *CategoryService) GetRootCategories(userID uint) ([]models.CategoryNode, error) {
	roots, err := s.categoryRepo.GetRoots()
	if err != nil {
		return nil, err
	}

	nodes := make([]models.CategoryNode, 0, len(roots))
	for i := range roots {
		node, err := s.buildNode(&roots[i], userID)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, *node)
	}
	return nodes, nil
}

// enrichNode düğümü zenginleştirir ve alt ağacını özyinelemeli kurar.
// Kardeş alt ağaçlar arasında sıralama bağımlılığı olmadığından
// eşzamanlı getirilir.
func (s *CategoryService) enrichNode(category *models.Category, userID uint, visited *visitedSet) (*models.CategoryNode, error) {
	if !visited.add(category.ID) {
		return nil, fmt.Errorf("%w: category cycle detected at id %d", models.ErrInvalidState, category.ID)
	}

	node, err := s.buildNode(category, userID)
	if err != nil {
		return nil, err
	}

	children, err := s.categoryRepo.GetChildren(category.ID)
	if err != nil {
		return nil, err
	}

	childNodes := make([]*models.CategoryNode, len(children))
	g := new(errgroup.Group)
	for i := range children {
		i := i
		g.Go(func() error {
			child, err := s.enrichNode(&children[i], userID, visited)
			if err != nil {
				return err
			}
			childNodes[i] = child
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, child := range childNodes {
		node.ChildCategories = append(node.ChildCategories, *child)
	}
	return node, nil
}

// buildNode tek düğümün hesaplanan alanlarını doldurur
func (s *CategoryService) buildNode(category *models.Category, userID uint) (*models.CategoryNode, error) {
	questionCount, err := s.categoryRepo.CountQuestions(category.ID)
	if err != nil {
		return nil, err
	}

	liked, err := s.categoryRepo.IsLiked(userID, category.ID)
	if err != nil {
		return nil, err
	}

	referenced, err := s.categoryRepo.IsReferenced(userID, category.ID)
	if err != nil {
		return nil, err
	}

	tags, err := s.categoryRepo.GetTags(category.ID)
	if err != nil {
		return nil, err
	}
	tagResponses := make([]models.TagResponse, 0, len(tags))
	for _, tag := range tags {
		tagResponses = append(tagResponses, models.TagResponse{ID: tag.ID, Name: tag.Name})
	}

	return &models.CategoryNode{
		ID:               category.ID,
		Name:             category.Name,
		Description:      category.Description,
		Color:            category.Color,
		Culture:          category.Culture,
		ParentCategoryID: category.ParentCategoryID,
		IsPremiumCat:     category.IsPremiumCat,
		IsRefCat:         category.IsRefCat,
		Sort:             category.Sort,
		QuestionCount:    questionCount,
		IsCategoryLiked:  liked,
		IsUserReferenced: referenced,
		CategoryTags:     tagResponses,
		ChildCategories:  make([]models.CategoryNode, 0),
	}, nil
}

func (s *CategoryService) ToggleLike(userID, categoryID uint) (bool, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.ErrNotFound
		}
		return false, err
	}

	liked, err := s.categoryRepo.IsLiked(userID, categoryID)
	if err != nil {
		return false, err
	}
	if liked {
		return false, s.categoryRepo.RemoveLike(userID, categoryID)
	}
	return true, s.categoryRepo.AddLike(userID, categoryID)
}

// RedeemReference referans kodu doğruysa kategoriye erişim kaydı açar
func (s *CategoryService) RedeemReference(userID, categoryID uint, code string) error {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	if !category.IsRefCat || category.ReferenceCode == "" || category.ReferenceCode != code {
		return models.ErrForbidden
	}

	referenced, err := s.categoryRepo.IsReferenced(userID, categoryID)
	if err != nil {
		return err
	}
	if referenced {
		return nil
	}
	return s.categoryRepo.AddReference(userID, categoryID)
}

// Admin CRUD

func (s *CategoryService) CreateCategory(req models.CategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:             req.Name,
		Description:      req.Description,
		Color:            req.Color,
		Culture:          req.Culture,
		ParentCategoryID: req.ParentCategoryID,
		IsPremiumCat:     req.IsPremiumCat,
		IsRefCat:         req.IsRefCat,
		ReferenceCode:    req.ReferenceCode,
		Sort:             req.Sort,
	}

	if req.ParentCategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.ParentCategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrNotFound
			}
			return nil, err
		}
	}

	created, err := s.categoryRepo.Create(category)
	if err != nil {
		return nil, err
	}

	if len(req.TagIDs) > 0 {
		tags, err := s.tagRepo.GetByIDs(req.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.categoryRepo.ReplaceTags(created, tags); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func (s *CategoryService) UpdateCategory(categoryID uint, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Culture != nil {
		category.Culture = *req.Culture
	}
	if req.ParentCategoryID != nil {
		category.ParentCategoryID = req.ParentCategoryID
	}
	if req.IsPremiumCat != nil {
		category.IsPremiumCat = *req.IsPremiumCat
	}
	if req.IsRefCat != nil {
		category.IsRefCat = *req.IsRefCat
	}
	if req.ReferenceCode != nil {
		category.ReferenceCode = *req.ReferenceCode
	}
	if req.Sort != nil {
		category.Sort = *req.Sort
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	if req.TagIDs != nil {
		tags, err := s.tagRepo.GetByIDs(req.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.categoryRepo.ReplaceTags(category, tags); err != nil {
			return nil, err
		}
	}

	return category, nil
}

func (s *CategoryService) DeleteCategory(categoryID uint) error {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return s.categoryRepo.Delete(categoryID)
}
