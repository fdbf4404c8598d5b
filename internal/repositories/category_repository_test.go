package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/TomaszGajek/settlements-sub000/internal/database"
	"github.com/TomaszGajek/settlements-sub000/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CategoryRepositorySuite defines the test suite for CategoryRepository
type CategoryRepositorySuite struct {
	suite.Suite
	db              *database.DB
	repo            CategoryRepositoryInterface
	transactionRepo TransactionRepositoryInterface
	userID          uuid.UUID
	fallback        *models.Category
}

// SetupTest runs before each test in the suite
func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.transactionRepo = NewTransactionRepository(s.db.DB)
	s.userID = uuid.New()

	var err error
	s.fallback, err = s.repo.FirstOrCreateDefault(s.userID)
	s.Require().NoError(err)
}

// TearDownTest runs after each test in the suite
func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCategoryRepositorySuite runs the test suite
func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

func (s *CategoryRepositorySuite) createCategory(userID uuid.UUID, name string) *models.Category {
	category := &models.Category{UserID: userID, Name: name, IsDeletable: true}
	s.Require().NoError(s.repo.Create(category))
	return category
}

func (s *CategoryRepositorySuite) createTransaction(userID, categoryID uuid.UUID, date time.Time) *models.Transaction {
	note := gofakeit.Sentence(5)
	transaction := &models.Transaction{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2),
		Date:       date,
		Type:       models.TransactionTypeExpense,
		Note:       &note,
	}
	s.Require().NoError(s.transactionRepo.Create(transaction))
	return transaction
}

func (s *CategoryRepositorySuite) TestCreate() {
	category := &models.Category{UserID: s.userID, Name: gofakeit.Company(), IsDeletable: true}

	err := s.repo.Create(category)
	s.NoError(err)
	s.NotEqual(uuid.Nil, category.ID)
	s.NotZero(category.CreatedAt)
}

func (s *CategoryRepositorySuite) TestCreate_DuplicateNameIsTranslated() {
	s.createCategory(s.userID, "Transport")

	err := s.repo.Create(&models.Category{UserID: s.userID, Name: "Transport", IsDeletable: true})
	s.Error(err)
	s.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

func (s *CategoryRepositorySuite) TestCreate_NamesAreCaseSensitive() {
	s.createCategory(s.userID, "Transport")

	err := s.repo.Create(&models.Category{UserID: s.userID, Name: "transport", IsDeletable: true})
	s.NoError(err)
}

func (s *CategoryRepositorySuite) TestCreate_SameNameForDifferentOwners() {
	s.createCategory(s.userID, "Transport")

	err := s.repo.Create(&models.Category{UserID: uuid.New(), Name: "Transport", IsDeletable: true})
	s.NoError(err)
}

func (s *CategoryRepositorySuite) TestGetByID_IgnoresOwner() {
	other := s.createCategory(uuid.New(), "Foreign")

	found, err := s.repo.GetByID(other.ID)
	s.NoError(err)
	s.Equal(other.UserID, found.UserID)
}

func (s *CategoryRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestGetByUserID_OrderedByName() {
	s.createCategory(s.userID, "Zakupy")
	s.createCategory(s.userID, "Auto")
	s.createCategory(uuid.New(), "Obce")

	categories, err := s.repo.GetByUserID(s.userID)
	s.NoError(err)

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	s.Equal([]string{"Auto", models.DefaultCategoryName, "Zakupy"}, names)
}

func (s *CategoryRepositorySuite) TestExistsByName() {
	category := s.createCategory(s.userID, "Rachunki")

	exists, err := s.repo.ExistsByName(s.userID, "Rachunki", uuid.Nil)
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsByName(s.userID, "rachunki", uuid.Nil)
	s.NoError(err)
	s.False(exists)

	exists, err = s.repo.ExistsByName(s.userID, "Rachunki", category.ID)
	s.NoError(err)
	s.False(exists)
}

func (s *CategoryRepositorySuite) TestUpdateName() {
	category := s.createCategory(s.userID, "Kino")

	err := s.repo.UpdateName(category, "Kultura")
	s.NoError(err)
	s.Equal("Kultura", category.Name)

	found, err := s.repo.GetByID(category.ID)
	s.NoError(err)
	s.Equal("Kultura", found.Name)
}

func (s *CategoryRepositorySuite) TestUpdateName_DefaultCategoryIsNotTouched() {
	err := s.repo.UpdateName(s.fallback, "Other")
	s.ErrorIs(err, ErrCategoryNotFound)

	found, err := s.repo.GetByID(s.fallback.ID)
	s.NoError(err)
	s.Equal(models.DefaultCategoryName, found.Name)
}

func (s *CategoryRepositorySuite) TestFirstOrCreateDefault_Idempotent() {
	again, err := s.repo.FirstOrCreateDefault(s.userID)
	s.NoError(err)
	s.Equal(s.fallback.ID, again.ID)
	s.False(again.IsDeletable)

	var count int64
	s.NoError(s.db.Model(&models.Category{}).Where("user_id = ? AND is_deletable = ?", s.userID, false).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *CategoryRepositorySuite) TestSecondDefaultCategoryIsRejected() {
	err := s.repo.Create(&models.Category{UserID: s.userID, Name: "Fallback", IsDeletable: false})
	s.Error(err)
	s.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

func (s *CategoryRepositorySuite) TestDeleteWithReassignment() {
	category := s.createCategory(s.userID, "Jedzenie")
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	moved := []*models.Transaction{
		s.createTransaction(s.userID, category.ID, day),
		s.createTransaction(s.userID, category.ID, day.AddDate(0, 0, 1)),
		s.createTransaction(s.userID, category.ID, day.AddDate(0, 0, 2)),
	}
	untouched := s.createTransaction(s.userID, s.fallback.ID, day)

	reassigned, err := s.repo.DeleteWithReassignment(s.userID, category.ID)
	s.NoError(err)
	s.Equal(int64(3), reassigned)

	_, err = s.repo.GetByID(category.ID)
	s.ErrorIs(err, ErrCategoryNotFound)

	remaining, err := s.repo.CountTransactions(category.ID)
	s.NoError(err)
	s.Zero(remaining)

	for _, transaction := range append(moved, untouched) {
		stored, err := s.transactionRepo.GetByID(transaction.ID)
		s.Require().NoError(err)
		s.Equal(s.fallback.ID, stored.CategoryID)
	}
}

func (s *CategoryRepositorySuite) TestDeleteWithReassignment_DefaultCategoryIsKept() {
	_, err := s.repo.DeleteWithReassignment(s.userID, s.fallback.ID)
	s.ErrorIs(err, ErrCategoryNotFound)

	_, err = s.repo.GetByID(s.fallback.ID)
	s.NoError(err)
}

func (s *CategoryRepositorySuite) TestDeleteWithReassignment_MissingDefaultRollsBack() {
	ownerID := uuid.New()
	category := s.createCategory(ownerID, "Bez domyślnej")
	s.createTransaction(ownerID, category.ID, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))

	_, err := s.repo.DeleteWithReassignment(ownerID, category.ID)
	s.ErrorIs(err, ErrDefaultCategoryMissing)

	count, err := s.repo.CountTransactions(category.ID)
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *CategoryRepositorySuite) TestDeleteWithReassignment_ForeignReferenceAbortsEverything() {
	category := s.createCategory(s.userID, "Wspólna")
	own := s.createTransaction(s.userID, category.ID, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	// A row of another owner pointing at the category cannot be created through the
	// repository, so it is inserted directly.
	foreignOwner := uuid.New()
	foreign := &models.Transaction{
		UserID:     foreignOwner,
		CategoryID: category.ID,
		Amount:     decimal.RequireFromString("10.00"),
		Date:       time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC),
		Type:       models.TransactionTypeIncome,
	}
	s.Require().NoError(s.db.Create(foreign).Error)

	_, err := s.repo.DeleteWithReassignment(s.userID, category.ID)
	s.ErrorIs(err, ErrDanglingReferences)

	_, err = s.repo.GetByID(category.ID)
	s.NoError(err)

	stored, err := s.transactionRepo.GetByID(own.ID)
	s.NoError(err)
	s.Equal(category.ID, stored.CategoryID)
}

func (s *CategoryRepositorySuite) TestForeignKeyRestrictsCategoryDelete() {
	category := s.createCategory(s.userID, "Chroniona")
	transaction := s.createTransaction(s.userID, category.ID, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC))

	err := s.db.Delete(&models.Category{}, "id = ?", category.ID).Error
	s.Error(err)

	stored, err := s.repo.GetByID(category.ID)
	s.NoError(err)
	s.Equal("Chroniona", stored.Name)

	referencing, err := s.transactionRepo.GetByID(transaction.ID)
	s.NoError(err)
	s.Equal(category.ID, referencing.CategoryID)
}

func (s *CategoryRepositorySuite) TestForeignKeyRejectsUnknownCategoryOnInsert() {
	transaction := &models.Transaction{
		UserID:     s.userID,
		CategoryID: uuid.New(),
		Amount:     decimal.RequireFromString("15.00"),
		Date:       time.Date(2024, time.July, 2, 0, 0, 0, 0, time.UTC),
		Type:       models.TransactionTypeExpense,
	}

	err := s.db.Create(transaction).Error
	s.Error(err)
	s.True(errors.Is(err, gorm.ErrForeignKeyViolated))
}
