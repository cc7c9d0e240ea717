package utils

import (
	"context"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finwell/team-finance-app/internal/database"
	"github.com/finwell/team-finance-app/models"
)

var assetCategories = []string{"cash", "savings", "investment", "property", "crypto"}

// GenerateTestOrganization creates one organization with a random owner and
// a couple of extra members.
func GenerateTestOrganization(ctx context.Context, pool *pgxpool.Pool, memberCount int) (*models.Organization, error) {
	org := &models.Organization{
		Name:        gofakeit.Company(),
		Description: gofakeit.Sentence(6),
	}
	if err := database.CreateOrganization(ctx, pool, org, uuid.New()); err != nil {
		return nil, err
	}
	for i := 0; i < memberCount; i++ {
		member := &models.OrganizationMember{
			OrganizationID: org.ID,
			UserID:         uuid.New(),
			Role:           "member",
		}
		if err := database.AddMember(ctx, pool, member); err != nil {
			return nil, err
		}
	}
	return org, nil
}

func GenerateTestAssets(ctx context.Context, pool *pgxpool.Pool, orgID uuid.UUID, count int) error {
	for i := 0; i < count; i++ {
		asset := &models.Asset{
			OrganizationID: orgID,
			Name:           gofakeit.NounConcrete(),
			Category:       assetCategories[rand.Intn(len(assetCategories))],
			CurrentValue:   gofakeit.Price(100, 50000),
			TargetValue:    gofakeit.Price(50000, 200000),
			IsActive:       rand.Intn(10) > 1, // mostly active
		}
		if err := database.CreateAsset(ctx, pool, asset); err != nil {
			return err
		}
	}
	return nil
}

func GenerateTestCategories(ctx context.Context, pool *pgxpool.Pool, orgID uuid.UUID, count int) ([]models.Category, error) {
	categories := make([]models.Category, 0, count)
	for i := 0; i < count; i++ {
		category := &models.Category{
			OrganizationID: orgID,
			Name:           gofakeit.Word(),
			Type:           randomEntryType(),
		}
		if err := database.CreateCategory(ctx, pool, category); err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	return categories, nil
}

func GenerateTestTransactions(ctx context.Context, pool *pgxpool.Pool, orgID uuid.UUID, categories []models.Category, count int) error {
	for i := 0; i < count; i++ {
		cat := categories[rand.Intn(len(categories))]
		tx := &models.Transaction{
			OrganizationID:  orgID,
			CategoryID:      cat.ID,
			Amount:          gofakeit.Price(1, 1000),
			Type:            cat.Type,
			Description:     gofakeit.Sentence(5),
			TransactionDate: time.Now().AddDate(0, 0, -rand.Intn(30)),
		}
		if err := database.CreateTransaction(ctx, pool, tx); err != nil {
			return err
		}
	}
	return nil
}

func GenerateTestGoals(ctx context.Context, pool *pgxpool.Pool, orgID uuid.UUID, count int) error {
	for i := 0; i < count; i++ {
		goal := &models.FinancialGoal{
			OrganizationID: orgID,
			Name:           gofakeit.BuzzWord() + " fund",
			Category:       assetCategories[rand.Intn(len(assetCategories))],
			TargetAmount:   gofakeit.Price(10000, 500000),
			Status:         models.GoalStatusActive,
			Priority:       rand.Intn(3) + 1,
			StartDate:      time.Now().AddDate(0, -rand.Intn(12), 0),
			TargetDate:     time.Now().AddDate(1+rand.Intn(5), 0, 0),
		}
		if err := database.CreateGoal(ctx, pool, goal); err != nil {
			return err
		}
	}
	return nil
}

func randomEntryType() string {
	if rand.Intn(2) == 0 {
		return "expense"
	}
	return "income"
}
