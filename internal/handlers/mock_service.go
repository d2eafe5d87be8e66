package handlers

import (
	"context"
	"time"

	"classifieds/internal/models"
	"classifieds/internal/service"
)

// ---- Service mocks used by the handler tests ----

type mockAuth struct {
	registerID  int
	registerErr error
	loginSess   *models.Session
	loginErr    error
	authSess    *models.Session
	authErr     error
	logoutErr   error

	lastRegisterUsername string
	lastLoginUsername    string
	lastAuthToken        string
	lastLogoutToken      string
}

func (m *mockAuth) Register(_ context.Context, username, password string) (int, error) {
	m.lastRegisterUsername = username
	return m.registerID, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, username, password string) (*models.Session, error) {
	m.lastLoginUsername = username
	return m.loginSess, m.loginErr
}

func (m *mockAuth) Authenticate(_ context.Context, token string) (*models.Session, error) {
	m.lastAuthToken = token
	return m.authSess, m.authErr
}

func (m *mockAuth) Logout(_ context.Context, token string) error {
	m.lastLogoutToken = token
	return m.logoutErr
}

func (m *mockAuth) RunSessionSweeper(ctx context.Context, interval time.Duration) {}

type mockListings struct {
	createID      int
	createErr     error
	updateErr     error
	deleteErr     error
	getDetail     *service.ListingDetail
	getErr        error
	searchResult  []models.Listing
	searchErr     error
	setCatsErr    error
	categories    []models.Category
	categoriesErr error

	lastCreateOwner int
	lastCreateIn    service.ListingInput
	lastUpdateIn    service.ListingInput
	lastCaller      int
	lastListingID   int
	lastQuery       string
	lastCategoryID  int
	lastSetCats     []int
}

func (m *mockListings) Create(_ context.Context, ownerID int, in service.ListingInput) (int, error) {
	m.lastCreateOwner = ownerID
	m.lastCreateIn = in
	return m.createID, m.createErr
}

func (m *mockListings) Update(_ context.Context, callerID, listingID int, in service.ListingInput) error {
	m.lastCaller = callerID
	m.lastListingID = listingID
	m.lastUpdateIn = in
	return m.updateErr
}

func (m *mockListings) Delete(_ context.Context, callerID, listingID int) error {
	m.lastCaller = callerID
	m.lastListingID = listingID
	return m.deleteErr
}

func (m *mockListings) Get(_ context.Context, id int) (*service.ListingDetail, error) {
	m.lastListingID = id
	return m.getDetail, m.getErr
}

func (m *mockListings) Search(_ context.Context, query string, categoryID int) ([]models.Listing, error) {
	m.lastQuery = query
	m.lastCategoryID = categoryID
	return m.searchResult, m.searchErr
}

func (m *mockListings) SetCategories(_ context.Context, callerID, listingID int, categoryIDs []int) error {
	m.lastCaller = callerID
	m.lastListingID = listingID
	m.lastSetCats = categoryIDs
	return m.setCatsErr
}

func (m *mockListings) Categories(_ context.Context) ([]models.Category, error) {
	return m.categories, m.categoriesErr
}

type mockInquiries struct {
	addID   int
	addErr  error
	delErr  error
	list    []models.Inquiry
	listErr error

	lastSender    int
	lastListingID int
	lastContent   string
	lastCaller    int
	lastInquiryID int
}

func (m *mockInquiries) Add(_ context.Context, senderID, listingID int, content string) (int, error) {
	m.lastSender = senderID
	m.lastListingID = listingID
	m.lastContent = content
	return m.addID, m.addErr
}

func (m *mockInquiries) Delete(_ context.Context, callerID, inquiryID int) error {
	m.lastCaller = callerID
	m.lastInquiryID = inquiryID
	return m.delErr
}

func (m *mockInquiries) ListForListing(_ context.Context, listingID int) ([]models.Inquiry, error) {
	return m.list, m.listErr
}

type mockProfiles struct {
	user         *models.User
	userErr      error
	stats        models.UserStats
	statsErr     error
	inquiryTotal int
	inquiryErr   error
	listings     []models.Listing
	listingsErr  error
}

func (m *mockProfiles) Get(_ context.Context, userID int) (*models.User, error) {
	return m.user, m.userErr
}

func (m *mockProfiles) Stats(_ context.Context, userID int) (models.UserStats, error) {
	return m.stats, m.statsErr
}

func (m *mockProfiles) InquiryTotal(_ context.Context, userID int) (int, error) {
	return m.inquiryTotal, m.inquiryErr
}

func (m *mockProfiles) Listings(_ context.Context, userID int) ([]models.Listing, error) {
	return m.listings, m.listingsErr
}
