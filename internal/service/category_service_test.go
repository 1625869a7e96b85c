package service

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/berkeoz/quizpark-backend/internal/models"
	"github.com/berkeoz/quizpark-backend/internal/repository"
)

func newCategoryService(t *testing.T, db *gorm.DB) *CategoryService {
	t.Helper()

	return NewCategoryService(
		repository.NewCategoryRepository(db),
		repository.NewTagRepository(db),
		repository.NewUserRepository(db),
		repository.NewPromotionRepository(db),
		newTestLogger(),
	)
}

func createCategory(t *testing.T, db *gorm.DB, name string, parentID *uint, mutate ...func(*models.Category)) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, ParentCategoryID: parentID}
	for _, fn := range mutate {
		fn(category)
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("creating category %q: %v", name, err)
	}
	return category
}

func createQuestion(t *testing.T, db *gorm.DB, categoryID uint, text string) *models.Question {
	t.Helper()

	question := &models.Question{CategoryID: categoryID, Text: text}
	if err := db.Create(question).Error; err != nil {
		t.Fatalf("creating question: %v", err)
	}
	return question
}

func TestGetCategoryTreeShape(t *testing.T) {
	db := newTestDB(t)
	svc := newCategoryService(t, db)
	user := createTestUser(t, db, "tree@example.com")

	root := createCategory(t, db, "root", nil)
	left := createCategory(t, db, "left", &root.ID)
	right := createCategory(t, db, "right", &root.ID)
	leftChild := createCategory(t, db, "left-child", &left.ID)
	rightChild := createCategory(t, db, "right-child", &right.ID)

	createQuestion(t, db, root.ID, "q1")
	createQuestion(t, db, root.ID, "q2")
	createQuestion(t, db, leftChild.ID, "q3")

	tree, err := svc.GetCategoryTree(root.ID, user.ID, false)
	if err != nil {
		t.Fatalf("GetCategoryTree: %v", err)
	}

	if tree.ID != root.ID {
		t.Errorf("expected root id %d, got %d", root.ID, tree.ID)
	}
	if tree.QuestionCount != 2 {
		t.Errorf("expected root question count 2, got %d", tree.QuestionCount)
	}
	if len(tree.ChildCategories) != 2 {
		t.Fatalf("expected 2 children, got %d", len(tree.ChildCategories))
	}

	byName := map[string]models.CategoryNode{}
	for _, child := range tree.ChildCategories {
		byName[child.Name] = child
	}
	leftNode, ok := byName["left"]
	if !ok {
		t.Fatalf("left child missing from tree")
	}
	if len(leftNode.ChildCategories) != 1 || leftNode.ChildCategories[0].ID != leftChild.ID {
		t.Errorf("left subtree malformed: %+v", leftNode.ChildCategories)
	}
	if leftNode.ChildCategories[0].QuestionCount != 1 {
		t.Errorf("expected left-child question count 1, got %d", leftNode.ChildCategories[0].QuestionCount)
	}
	rightNode, ok := byName["right"]
	if !ok {
		t.Fatalf("right child missing from tree")
	}
	if len(rightNode.ChildCategories) != 1 || rightNode.ChildCategories[0].ID != rightChild.ID {
		t.Errorf("right subtree malformed: %+v", rightNode.ChildCategories)
	}
}

func TestGetCategoryTreeNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCategoryService(t, db)
	user := createTestUser(t, db, "missing@example.com")

	_, err := svc.GetCategoryTree(9999, user.ID, false)
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPremiumCategoryGating(t *testing.T) {
	db := newTestDB(t)
	svc := newCategoryService(t, db)
	user := createTestUser(t, db, "gated@example.com")

	premiumRoot := createCategory(t, db, "premium-root", nil, func(c *models.Category) {
		c.IsPremiumCat = true
	})

	if _, err := svc.GetCategoryTree(premiumRoot.ID, user.ID, false); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for free user, got %v", err)
	}

	makePremium(t, db, user)
	if _, err := svc.GetCategoryTree(premiumRoot.ID, user.ID, false); err != nil {
		t.Fatalf("expected premium user to pass, got %v", err)
	}
}

func TestPremiumGatingAppliesToRequestedRootOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newCategoryService(t, db)
	user := createTestUser(t, db, "nested@example.com")

	root := createCategory(t, db, "free-root", nil)
	createCategory(t, db, "premium-child", &root.ID, func(c *models.Category) {
		c.IsPremiumCat = true
	})

	tree, err := svc.GetCategoryTree(root.ID, user.ID, false)
	if err != nil {
		t.Fatalf("GetCategoryTree: %v", err)
	}
	if len(tree.ChildCategories) != 1 {
		t.Fatalf("premium descendant must still appear in the tree, got %d children", len(tree.ChildCategories))
	}
	if !tree.ChildCategories[0].IsPremiumCat {
		t.Errorf("child should carry its premium flag")
	}
}

func TestAdminBypassesGating(t *testing.T) {
	db := newTestDB(t)
	svc := newCategoryService(t, db)
	user := createTestUser(t, db, "admin-view@example.com")

	gated := createCategory(t, db, "double-gated", nil, func(c *models.Category) {
		c.IsPremiumCat = true
		c.IsRefCat = true
		c.ReferenceCode = "SECRET"
	})

	if _, err := svc.GetCategoryTree(gated.ID, user.ID, true); err != nil {
		t.Fatalf("admin request must skip gating, got %v", err)
	}
}

func TestReferenceCategoryGating(t *testing.T) {
	db := newTestDB(t)
	svc := newCategoryService(t, db)
	user := createTestUser(t, db, "ref@example.com")

	refRoot := createCategory(t, db, "ref-root", nil, func(c *models.Category) {
		c.IsRefCat = true
		c.ReferenceCode = "CODE123"
	})

	if _, err := svc.GetCategoryTree(refRoot.ID, user.ID, false); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden before redeeming, got %v", err)
	}

	if err := svc.RedeemReference(user.ID, refRoot.ID, "WRONG"); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for wrong code, got %v", err)
	}

	if err := svc.RedeemReference(user.ID, refRoot.ID, "CODE123"); err != nil {
		t.Fatalf("RedeemReference: %v", err)
	}
	// Tekrarlanan kullanım sessizce başarılı olmalı
	if err := svc.RedeemReference(user.ID, refRoot.ID, "CODE123"); err != nil {
		t.Fatalf("repeat RedeemReference: %v", err)
	}

	tree, err := svc.GetCategoryTree(refRoot.ID, user.ID, false)
	if err != nil {
		t.Fatalf("expected access after redeem, got %v", err)
	}
	if !tree.IsUserReferenced {
		t.Errorf("expected is_user_referenced=true after redeem")
	}
}

func TestCategoryCycleDetected(t *testing.T) {
	db := newTestDB(t)
	svc := newCategoryService(t, db)
	user := createTestUser(t, db, "cycle@example.com")

	first := createCategory(t, db, "first", nil)
	second := createCategory(t, db, "second", &first.ID)

	// Bozuk veri: parent zinciri döngüye sokulur
	if err := db.Model(&models.Category{}).Where("id = ?", first.ID).Update("parent_category_id", second.ID).Error; err != nil {
		t.Fatalf("corrupting parent chain: %v", err)
	}

	_, err := svc.GetCategoryTree(first.ID, user.ID, false)
	if !errors.Is(err, models.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for cyclic tree, got %v", err)
	}
}

func TestCategoryToggleLike(t *testing.T) {
	db := newTestDB(t)
	svc := newCategoryService(t, db)
	user := createTestUser(t, db, "cat-like@example.com")

	category := createCategory(t, db, "likeable", nil)

	liked, err := svc.ToggleLike(user.ID, category.ID)
	if err != nil || !liked {
		t.Fatalf("first toggle: liked=%v err=%v", liked, err)
	}
	liked, err = svc.ToggleLike(user.ID, category.ID)
	if err != nil || liked {
		t.Fatalf("second toggle should unlike: liked=%v err=%v", liked, err)
	}

	if _, err := svc.ToggleLike(user.ID, 9999); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoryTreeIncludesTags(t *testing.T) {
	db := newTestDB(t)
	svc := newCategoryService(t, db)
	user := createTestUser(t, db, "cat-tags@example.com")

	tag := &models.Tag{Name: "history"}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("creating tag: %v", err)
	}

	created, err := svc.CreateCategory(models.CategoryRequest{Name: "tagged", TagIDs: []uint{tag.ID}})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	tree, err := svc.GetCategoryTree(created.ID, user.ID, false)
	if err != nil {
		t.Fatalf("GetCategoryTree: %v", err)
	}
	if len(tree.CategoryTags) != 1 || tree.CategoryTags[0].Name != "history" {
		t.Errorf("expected tag 'history' on node, got %+v", tree.CategoryTags)
	}
}

func TestCreateCategoryRejectsMissingParent(t *testing.T) {
	db := newTestDB(t)
	svc := newCategoryService(t, db)

	missing := uint(9999)
	_, err := svc.CreateCategory(models.CategoryRequest{Name: "orphan", ParentCategoryID: &missing})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing parent, got %v", err)
	}
}
