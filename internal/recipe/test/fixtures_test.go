package recipe_test

import (
	"testing"

	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/config"
	recipePkg "github.com/SidorenkoTatiana/foodgram-st/internal/recipe"
	"github.com/SidorenkoTatiana/foodgram-st/internal/testutils"
	userPkg "github.com/SidorenkoTatiana/foodgram-st/internal/user"
)

func setupRecipeService(t *testing.T) (*recipePkg.RecipeService, *gorm.DB) {
	db := testutils.SetupTestDB(t)

	config.Conf = &config.AppConfig{
		Server: config.ServerConfig{BaseURL: "http://localhost:8080"},
		Media:  config.MediaConfig{Root: t.TempDir(), URLPrefix: "/media"},
	}

	recipeRepo := recipePkg.NewRecipeRepository(db)
	userRepo := userPkg.NewUserRepository(db)

	service := recipePkg.NewRecipeService(recipeRepo, userRepo)
	return service, db
}
