package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SidorenkoTatiana/foodgram-st/internal/model/ingredient"
	"github.com/SidorenkoTatiana/foodgram-st/internal/model/recipe"
	"github.com/SidorenkoTatiana/foodgram-st/internal/model/user"
)

// TestPassword is the plaintext password behind every fixture user's hash
const TestPassword = "test_password_123"

// CreateTestUser creates a test user with unique username/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()[:8]
	hash, _ := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.DefaultCost)

	testUser := &user.User{
		Username:     fmt.Sprintf("test_user_%s", uniqueID),
		Email:        fmt.Sprintf("test_%s@example.com", uniqueID),
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: string(hash),
		Role:         user.RoleUser,
		CreatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithUsername sets the username
func WithUsername(username string) UserOption {
	return func(u *user.User) {
		u.Username = username
	}
}

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *user.User) {
		u.Email = email
	}
}

// WithRole sets the role
func WithRole(role string) UserOption {
	return func(u *user.User) {
		u.Role = role
	}
}

// CreateTestIngredient creates a test ingredient with a unique name
func CreateTestIngredient(db *gorm.DB, opts ...IngredientOption) *ingredient.Ingredient {
	uniqueID := uuid.New().String()[:8]

	testIngredient := &ingredient.Ingredient{
		Name:            fmt.Sprintf("ingredient_%s", uniqueID),
		MeasurementUnit: "г",
	}

	for _, opt := range opts {
		opt(testIngredient)
	}

	if err := db.Create(testIngredient).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test ingredient: %v", err))
	}

	return testIngredient
}

// IngredientOption configures test ingredient
type IngredientOption func(*ingredient.Ingredient)

// WithIngredientName sets the ingredient name
func WithIngredientName(name string) IngredientOption {
	return func(i *ingredient.Ingredient) {
		i.Name = name
	}
}

// WithMeasurementUnit sets the measurement unit
func WithMeasurementUnit(unit string) IngredientOption {
	return func(i *ingredient.Ingredient) {
		i.MeasurementUnit = unit
	}
}

// CreateTestRecipe creates a test recipe owned by authorID
func CreateTestRecipe(db *gorm.DB, authorID uint, opts ...RecipeOption) *recipe.Recipe {
	uniqueID := uuid.New().String()[:8]

	testRecipe := &recipe.Recipe{
		AuthorID:    authorID,
		Name:        fmt.Sprintf("Test Recipe %s", uniqueID),
		Image:       fmt.Sprintf("recipes_images/%s.png", uniqueID),
		Text:        "Test recipe description",
		CookingTime: 30,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	for _, opt := range opts {
		opt(testRecipe)
	}

	if err := db.Create(testRecipe).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test recipe: %v", err))
	}

	return testRecipe
}

// RecipeOption configures test recipe
type RecipeOption func(*recipe.Recipe)

// WithRecipeName sets the recipe name
func WithRecipeName(name string) RecipeOption {
	return func(r *recipe.Recipe) {
		r.Name = name
	}
}

// WithCookingTime sets the cooking time
func WithCookingTime(minutes int) RecipeOption {
	return func(r *recipe.Recipe) {
		r.CookingTime = minutes
	}
}

// AddRecipeIngredient links an ingredient with an amount to a recipe
func AddRecipeIngredient(db *gorm.DB, recipeID, ingredientID uint, amount int) {
	row := &recipe.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Amount:       amount,
	}
	if err := db.Create(row).Error; err != nil {
		panic(fmt.Sprintf("Failed to link test ingredient: %v", err))
	}
}
