package main

import (
	"context"
	"flag"

	"github.com/finwell/team-finance-app/internal/database"
	"github.com/finwell/team-finance-app/internal/goalsync"
	"github.com/finwell/team-finance-app/internal/logger"
	"github.com/finwell/team-finance-app/utils"
)

func main() {
	log := logger.New()

	orgs := flag.Int("orgs", 3, "organizations to create")
	assets := flag.Int("assets", 8, "assets per organization")
	categories := flag.Int("categories", 6, "categories per organization")
	transactions := flag.Int("transactions", 40, "transactions per organization")
	goals := flag.Int("goals", 4, "goals per organization")
	flag.Parse()

	ctx := context.Background()
	pool, err := database.Connect(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	sync := goalsync.NewManager(pool, log)

	for i := 0; i < *orgs; i++ {
		org, err := utils.GenerateTestOrganization(ctx, pool, 2)
		if err != nil {
			log.Fatal().Err(err).Msg("seeding organization failed")
		}
		if err := utils.GenerateTestAssets(ctx, pool, org.ID, *assets); err != nil {
			log.Fatal().Err(err).Msg("seeding assets failed")
		}
		cats, err := utils.GenerateTestCategories(ctx, pool, org.ID, *categories)
		if err != nil {
			log.Fatal().Err(err).Msg("seeding categories failed")
		}
		if err := utils.GenerateTestTransactions(ctx, pool, org.ID, cats, *transactions); err != nil {
			log.Fatal().Err(err).Msg("seeding transactions failed")
		}
		if err := utils.GenerateTestGoals(ctx, pool, org.ID, *goals); err != nil {
			log.Fatal().Err(err).Msg("seeding goals failed")
		}
		// Bring goal amounts in line with the seeded assets.
		if err := sync.SyncAllGoals(ctx, org.ID); err != nil {
			log.Fatal().Err(err).Msg("initial goal sync failed")
		}
		log.Info().Str("organization", org.Name).Str("id", org.ID.String()).Msg("organization seeded")
	}
}
