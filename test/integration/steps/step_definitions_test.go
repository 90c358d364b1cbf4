// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/application/usecase/auth"
	"github.com/budget-tracker/backend/internal/application/usecase/budget"
	"github.com/budget-tracker/backend/internal/application/usecase/category"
	"github.com/budget-tracker/backend/internal/application/usecase/family"
	"github.com/budget-tracker/backend/internal/application/usecase/summary"
	"github.com/budget-tracker/backend/internal/application/usecase/tag"
	"github.com/budget-tracker/backend/internal/application/usecase/transaction"
	"github.com/budget-tracker/backend/internal/infra/server/router"
	"github.com/budget-tracker/backend/internal/integration/adapters"
	"github.com/budget-tracker/backend/internal/integration/cache"
	"github.com/budget-tracker/backend/internal/integration/email"
	"github.com/budget-tracker/backend/internal/integration/email/templates"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-tracker/backend/internal/integration/persistence"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
	"github.com/budget-tracker/backend/internal/integration/preference"
	"github.com/budget-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken  string
	refreshToken string

	currentUserID        uuid.UUID
	currentFamilyID      uuid.UUID
	secondFamilyID       uuid.UUID
	currentMemberID      uuid.UUID
	currentInviteToken   string
	currentCategoryID    uuid.UUID
	currentTagID         uuid.UUID
	currentTransactionID uuid.UUID
	currentBudgetID      uuid.UUID
	lastID               uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testWorker *email.Worker
var testEmailSender *email.MockEmailSender
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("budget_tracker", map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"families":       &model.FamilyModel{},
			"family_members": &model.FamilyMemberModel{},
			"family_invites": &model.FamilyInviteModel{},
			"categories":     &model.CategoryModel{},
			"tags":           &model.TagModel{},
			"transactions":   &model.TransactionModel{},
			"budgets":        &model.BudgetModel{},
			"email_queue":    &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the user "([^"]*)" exists$`, test.theUserExists)

	// Family setup steps
	ctx.Given(`^a family named "([^"]*)" owned by "([^"]*)" exists$`, test.aFamilyNamedOwnedByExists)
	ctx.Given(`^a second family named "([^"]*)" owned by "([^"]*)" exists$`, test.aSecondFamilyNamedOwnedByExists)
	ctx.Given(`^"([^"]*)" is a member of the family$`, test.isAMemberOfTheFamily)
	ctx.Given(`^the family is my active family$`, test.theFamilyIsMyActiveFamily)
	ctx.Given(`^a pending invite exists for "([^"]*)"$`, test.aPendingInviteExistsFor)
	ctx.Given(`^an expired invite exists for "([^"]*)"$`, test.anExpiredInviteExistsFor)

	// Ledger setup steps
	ctx.Given(`^a category named "([^"]*)" of type "([^"]*)" exists$`, test.aCategoryNamedOfTypeExists)
	ctx.Given(`^a tag named "([^"]*)" exists$`, test.aTagNamedExists)
	ctx.Given(`^an? "([^"]*)" transaction of "([^"]*)" exists for category "([^"]*)"$`, test.aTransactionExistsForCategory)
	ctx.Given(`^a budget of "([^"]*)" exists for category "([^"]*)" with period "([^"]*)"$`, test.aBudgetExistsForCategoryWithPeriod)

	// Email steps
	ctx.When(`^the email queue is processed$`, test.theEmailQueueIsProcessed)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentFamilyID = uuid.Nil
	t.secondFamilyID = uuid.Nil
	t.currentMemberID = uuid.Nil
	t.currentInviteToken = ""
	t.currentCategoryID = uuid.Nil
	t.currentTagID = uuid.Nil
	t.currentTransactionID = uuid.Nil
	t.currentBudgetID = uuid.Nil
	t.lastID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
	if testEmailSender != nil {
		testEmailSender.Reset()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			redisClient := mock.NewRedis()

			// Repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			familyRepo := persistence.NewFamilyRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			tagRepo := persistence.NewTagRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Adapters and services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute, 7*24*time.Hour, tokenRepo)
			preferenceStore := preference.NewRedisPreferenceStore(redisClient)
			emailService := email.NewService(emailQueueRepo)
			listCache := cache.NewRedisListCache(redisClient, time.Minute)

			renderer, err := templates.NewRenderer()
			if err != nil {
				panic(err)
			}
			testEmailSender = email.NewMockEmailSender()
			testWorker = email.NewWorker(emailQueueRepo, testEmailSender, renderer, email.DefaultWorkerConfig())

			// Auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			getCurrentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)
			deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService, preferenceStore)

			// Family use cases
			resolveContextUseCase := family.NewResolveContextUseCase(familyRepo, preferenceStore)
			createFamilyUseCase := family.NewCreateFamilyUseCase(familyRepo, userRepo)
			listFamiliesUseCase := family.NewListFamiliesUseCase(familyRepo)
			getFamilyUseCase := family.NewGetFamilyUseCase(familyRepo)
			updateFamilyUseCase := family.NewUpdateFamilyUseCase(familyRepo)
			deleteFamilyUseCase := family.NewDeleteFamilyUseCase(familyRepo, preferenceStore)
			inviteMemberUseCase := family.NewInviteMemberUseCase(familyRepo, userRepo, emailService)
			acceptInviteUseCase := family.NewAcceptInviteUseCase(familyRepo, userRepo)
			removeMemberUseCase := family.NewRemoveMemberUseCase(familyRepo)
			leaveFamilyUseCase := family.NewLeaveFamilyUseCase(familyRepo)
			selectFamilyUseCase := family.NewSelectFamilyUseCase(resolveContextUseCase, preferenceStore)

			// Ledger use cases
			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, listCache)
			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, listCache)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, listCache)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, listCache)

			listTagsUseCase := tag.NewListTagsUseCase(tagRepo, listCache)
			createTagUseCase := tag.NewCreateTagUseCase(tagRepo, listCache)
			updateTagUseCase := tag.NewUpdateTagUseCase(tagRepo, listCache)
			deleteTagUseCase := tag.NewDeleteTagUseCase(tagRepo, listCache)

			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, listCache)
			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, tagRepo, listCache)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, tagRepo, listCache)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, listCache)

			listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, listCache)
			createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo, listCache)
			updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, listCache)
			deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, listCache)
			budgetProgressUseCase := budget.NewGetBudgetProgressUseCase(budgetRepo, transactionRepo)

			monthlySummaryUseCase := summary.NewMonthlySummaryUseCase(transactionRepo, categoryRepo)

			// Controllers
			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return redisClient.Ping(context.Background()).Err() == nil },
			)
			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
				getCurrentUserUseCase,
				deleteAccountUseCase,
			)
			familyController := controller.NewFamilyController(
				createFamilyUseCase,
				listFamiliesUseCase,
				getFamilyUseCase,
				updateFamilyUseCase,
				deleteFamilyUseCase,
				inviteMemberUseCase,
				acceptInviteUseCase,
				removeMemberUseCase,
				leaveFamilyUseCase,
				resolveContextUseCase,
				selectFamilyUseCase,
				"http://localhost:5173",
			)
			categoryController := controller.NewCategoryController(
				listCategoriesUseCase,
				createCategoryUseCase,
				updateCategoryUseCase,
				deleteCategoryUseCase,
			)
			tagController := controller.NewTagController(
				listTagsUseCase,
				createTagUseCase,
				updateTagUseCase,
				deleteTagUseCase,
			)
			transactionController := controller.NewTransactionController(
				listTransactionsUseCase,
				createTransactionUseCase,
				updateTransactionUseCase,
				deleteTransactionUseCase,
			)
			budgetController := controller.NewBudgetController(
				listBudgetsUseCase,
				createBudgetUseCase,
				updateBudgetUseCase,
				deleteBudgetUseCase,
				budgetProgressUseCase,
			)
			summaryController := controller.NewSummaryController(monthlySummaryUseCase)

			// Middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)
			familyContextMiddleware := middleware.NewFamilyContextMiddleware(resolveContextUseCase)

			r := router.NewRouter(
				healthController,
				authController,
				familyController,
				categoryController,
				tagController,
				transactionController,
				budgetController,
				summaryController,
				loginRateLimiter,
				authMiddleware,
				familyContextMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// theUserExists creates a user with the given email if they don't already exist.
func (t *testContext) theUserExists(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err == nil {
		return nil
	}

	userID := uuid.New()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         "Test User " + email,
		PasswordHash: hashPassword("SecurePass123!"),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

// iAmLoggedInAs switches the current logged in user to the specified email.
func (t *testContext) iAmLoggedInAs(email string) error {
	if err := t.theUserExists(email); err != nil {
		return err
	}

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	t.currentUserID = userModel.ID

	now := time.Now().UTC()

	accessTokenString, err := signToken(t.currentUserID, email, "access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshTokenString, err := signToken(t.currentUserID, email, "refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	var existingToken model.RefreshTokenModel
	if err := t.db.DbConn.Where("user_id = ?", t.currentUserID).First(&existingToken).Error; err == nil {
		existingToken.Token = t.refreshToken
		existingToken.Invalidated = false
		existingToken.ExpiresAt = now.Add(7 * 24 * time.Hour)
		return t.db.DbConn.Save(&existingToken).Error
	}

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func signToken(userID uuid.UUID, email, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "budget-tracker",
		"sub":        userID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) aFamilyNamedOwnedByExists(name, ownerEmail string) error {
	familyID, err := t.createFamily(name, ownerEmail)
	if err != nil {
		return err
	}
	t.currentFamilyID = familyID
	return nil
}

func (t *testContext) aSecondFamilyNamedOwnedByExists(name, ownerEmail string) error {
	familyID, err := t.createFamily(name, ownerEmail)
	if err != nil {
		return err
	}
	t.secondFamilyID = familyID
	return nil
}

func (t *testContext) createFamily(name, ownerEmail string) (uuid.UUID, error) {
	if err := t.theUserExists(ownerEmail); err != nil {
		return uuid.Nil, err
	}

	var owner model.UserModel
	if err := t.db.DbConn.Where("email = ?", ownerEmail).First(&owner).Error; err != nil {
		return uuid.Nil, fmt.Errorf("owner not found: %w", err)
	}

	now := time.Now().UTC()
	familyID := uuid.New()
	familyModel := &model.FamilyModel{
		ID:        familyID,
		Name:      name,
		Currency:  "USD",
		OwnerID:   owner.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(familyModel).Error; err != nil {
		return uuid.Nil, err
	}

	memberModel := &model.FamilyMemberModel{
		ID:       uuid.New(),
		FamilyID: familyID,
		UserID:   owner.ID,
		Role:     "owner",
		JoinedAt: now,
	}
	return familyID, t.db.DbConn.Create(memberModel).Error
}

func (t *testContext) isAMemberOfTheFamily(email string) error {
	if err := t.theUserExists(email); err != nil {
		return err
	}

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	memberID := uuid.New()
	t.currentMemberID = memberID

	memberModel := &model.FamilyMemberModel{
		ID:       memberID,
		FamilyID: t.currentFamilyID,
		UserID:   user.ID,
		Role:     "member",
		JoinedAt: time.Now().UTC(),
	}
	return t.db.DbConn.Create(memberModel).Error
}

func (t *testContext) theFamilyIsMyActiveFamily() error {
	if t.currentFamilyID == uuid.Nil {
		return errors.New("no family created yet")
	}
	t.headers["X-Family-ID"] = t.currentFamilyID.String()
	return nil
}

func (t *testContext) aPendingInviteExistsFor(email string) error {
	return t.createInvite(email, time.Now().UTC().Add(7*24*time.Hour))
}

func (t *testContext) anExpiredInviteExistsFor(email string) error {
	return t.createInvite(email, time.Now().UTC().Add(-time.Hour))
}

func (t *testContext) createInvite(email string, expiresAt time.Time) error {
	t.currentInviteToken = strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")

	inviteModel := &model.FamilyInviteModel{
		ID:        uuid.New(),
		FamilyID:  t.currentFamilyID,
		Email:     email,
		Token:     t.currentInviteToken,
		InvitedBy: t.currentUserID,
		Status:    "pending",
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return t.db.DbConn.Create(inviteModel).Error
}

func (t *testContext) aCategoryNamedOfTypeExists(name, categoryType string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		Name:      name,
		Type:      categoryType,
		Icon:      "tag",
		FamilyID:  t.currentFamilyID,
		CreatedBy: t.currentUserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) aTagNamedExists(name string) error {
	tagID := uuid.New()
	t.currentTagID = tagID

	now := time.Now().UTC()
	tagModel := &model.TagModel{
		ID:        tagID,
		Name:      name,
		FamilyID:  t.currentFamilyID,
		CreatedBy: t.currentUserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(tagModel).Error
}

func (t *testContext) aTransactionExistsForCategory(txnType, amount, categoryName string) error {
	var categoryModel model.CategoryModel
	if err := t.db.DbConn.Where("name = ? AND family_id = ?", categoryName, t.currentFamilyID).First(&categoryModel).Error; err != nil {
		return fmt.Errorf("category '%s' not found: %w", categoryName, err)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	transactionID := uuid.New()
	t.currentTransactionID = transactionID

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:          transactionID,
		Amount:      value,
		Type:        txnType,
		CategoryID:  categoryModel.ID,
		TagIDs:      pq.StringArray{},
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Description: "seeded transaction",
		FamilyID:    t.currentFamilyID,
		CreatedBy:   t.currentUserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) aBudgetExistsForCategoryWithPeriod(amount, categoryName, period string) error {
	var categoryModel model.CategoryModel
	if err := t.db.DbConn.Where("name = ? AND family_id = ?", categoryName, t.currentFamilyID).First(&categoryModel).Error; err != nil {
		return fmt.Errorf("category '%s' not found: %w", categoryName, err)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	budgetID := uuid.New()
	t.currentBudgetID = budgetID

	now := time.Now().UTC()
	budgetModel := &model.BudgetModel{
		ID:         budgetID,
		CategoryID: categoryModel.ID,
		Amount:     value,
		Period:     period,
		FamilyID:   t.currentFamilyID,
		CreatedBy:  t.currentUserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return t.db.DbConn.Create(budgetModel).Error
}

func (t *testContext) theEmailQueueIsProcessed() error {
	if testWorker == nil {
		return errors.New("email worker not initialized")
	}
	testWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = t.replacePlaceholders(value)
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{family_id}}", t.currentFamilyID.String())
	content = strings.ReplaceAll(content, "{{second_family_id}}", t.secondFamilyID.String())
	content = strings.ReplaceAll(content, "{{member_id}}", t.currentMemberID.String())
	content = strings.ReplaceAll(content, "{{invite_token}}", t.currentInviteToken)
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{tag_id}}", t.currentTagID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.currentTransactionID.String())
	content = strings.ReplaceAll(content, "{{budget_id}}", t.currentBudgetID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastID = id
			}
		}
		if token, ok := responseBody["token"].(string); ok && token != "" {
			t.currentInviteToken = token
		}
		if familyID, ok := responseBody["family_id"].(string); ok {
			if id, err := uuid.Parse(familyID); err == nil {
				t.currentFamilyID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
