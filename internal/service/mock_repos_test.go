package service

import (
	"context"
	"time"

	"classifieds/internal/models"
)

// Lightweight in-test mocks for the repository interfaces.

type mockUserRepo struct {
	CreateFn        func(username, hash string, createdAt time.Time) (int, error)
	GetByUsernameFn func(username string) (*models.User, error)
	GetByIDFn       func(id int) (*models.User, error)
	ListingStatsFn  func(userID int) (models.UserStats, error)
	InquiryTotalFn  func(userID int) (int, error)

	createCalls []struct {
		username string
		hash     string
	}
}

func (m *mockUserRepo) Create(_ context.Context, username, hash string, createdAt time.Time) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		username string
		hash     string
	}{username: username, hash: hash})
	return m.CreateFn(username, hash, createdAt)
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	return m.GetByIDFn(id)
}

func (m *mockUserRepo) ListingStats(_ context.Context, userID int) (models.UserStats, error) {
	return m.ListingStatsFn(userID)
}

func (m *mockUserRepo) InquiryTotal(_ context.Context, userID int) (int, error) {
	return m.InquiryTotalFn(userID)
}

type mockSessionRepo struct {
	CreateFn        func(s models.Session) error
	GetByTokenFn    func(token string) (*models.Session, error)
	DeleteFn        func(token string) error
	DeleteExpiredFn func(now time.Time) (int64, error)

	created []models.Session
	deleted []string
}

func (m *mockSessionRepo) Create(_ context.Context, s models.Session) error {
	m.created = append(m.created, s)
	if m.CreateFn != nil {
		return m.CreateFn(s)
	}
	return nil
}

func (m *mockSessionRepo) GetByToken(_ context.Context, token string) (*models.Session, error) {
	return m.GetByTokenFn(token)
}

func (m *mockSessionRepo) Delete(_ context.Context, token string) error {
	m.deleted = append(m.deleted, token)
	if m.DeleteFn != nil {
		return m.DeleteFn(token)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	if m.DeleteExpiredFn != nil {
		return m.DeleteExpiredFn(now)
	}
	return 0, nil
}

type mockListingRepo struct {
	CreateFn            func(l models.Listing) (int, error)
	UpdateFn            func(l models.Listing) error
	DeleteFn            func(id int) error
	GetBasicFn          func(id int) (*models.Listing, error)
	GetFn               func(id int) (*models.Listing, error)
	SearchFn            func(query string, categoryID int) ([]models.Listing, error)
	ListByUserFn        func(userID int) ([]models.Listing, error)
	ReplaceCategoriesFn func(listingID int, categoryIDs []int) error
	CategoriesForFn     func(listingID int) ([]models.Category, error)
	AllCategoriesFn     func() ([]models.Category, error)

	updated  []models.Listing
	deleted  []int
	replaced map[int][]int
}

func (m *mockListingRepo) Create(_ context.Context, l models.Listing) (int, error) {
	return m.CreateFn(l)
}

func (m *mockListingRepo) Update(_ context.Context, l models.Listing) error {
	m.updated = append(m.updated, l)
	if m.UpdateFn != nil {
		return m.UpdateFn(l)
	}
	return nil
}

func (m *mockListingRepo) Delete(_ context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	return nil
}

func (m *mockListingRepo) GetBasic(_ context.Context, id int) (*models.Listing, error) {
	return m.GetBasicFn(id)
}

func (m *mockListingRepo) Get(_ context.Context, id int) (*models.Listing, error) {
	return m.GetFn(id)
}

func (m *mockListingRepo) Search(_ context.Context, query string, categoryID int) ([]models.Listing, error) {
	return m.SearchFn(query, categoryID)
}

func (m *mockListingRepo) ListByUser(_ context.Context, userID int) ([]models.Listing, error) {
	return m.ListByUserFn(userID)
}

func (m *mockListingRepo) ReplaceCategories(_ context.Context, listingID int, categoryIDs []int) error {
	if m.replaced == nil {
		m.replaced = make(map[int][]int)
	}
	m.replaced[listingID] = categoryIDs
	if m.ReplaceCategoriesFn != nil {
		return m.ReplaceCategoriesFn(listingID, categoryIDs)
	}
	return nil
}

func (m *mockListingRepo) CategoriesFor(_ context.Context, listingID int) ([]models.Category, error) {
	return m.CategoriesForFn(listingID)
}

func (m *mockListingRepo) AllCategories(_ context.Context) ([]models.Category, error) {
	return m.AllCategoriesFn()
}

type mockInquiryRepo struct {
	CreateFn         func(in models.Inquiry) (int, error)
	GetByIDFn        func(id int) (*models.Inquiry, error)
	DeleteFn         func(id int) error
	ListForListingFn func(listingID int) ([]models.Inquiry, error)

	deleted []int
}

func (m *mockInquiryRepo) Create(_ context.Context, in models.Inquiry) (int, error) {
	return m.CreateFn(in)
}

func (m *mockInquiryRepo) GetByID(_ context.Context, id int) (*models.Inquiry, error) {
	return m.GetByIDFn(id)
}

func (m *mockInquiryRepo) Delete(_ context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	return nil
}

func (m *mockInquiryRepo) ListForListing(_ context.Context, listingID int) ([]models.Inquiry, error) {
	return m.ListForListingFn(listingID)
}
