package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/platewise/platewise/internal/infrastructure/http/middleware"
	"github.com/platewise/platewise/internal/ports/inbound"
)

// RecipeHandler serves the recipe catalog API
type RecipeHandler struct {
	recipes inbound.RecipeService
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipes inbound.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

type recipeRequest struct {
	Name         string                     `json:"name" binding:"required,min=2,max=200"`
	Description  string                     `json:"description"`
	PrepTime     int                        `json:"prep_time" binding:"min=0"`
	CookTime     int                        `json:"cook_time" binding:"min=0"`
	Servings     int                        `json:"servings" binding:"min=0"`
	Nutrition    inbound.NutritionDTO       `json:"nutrition"`
	Ingredients  []inbound.IngredientCommand `json:"ingredients"`
	Instructions []string                   `json:"instructions"`
	Tags         []string                   `json:"tags"`
	Allergens    []string                   `json:"allergens"`
	IsPublic     *bool                      `json:"is_public"`
}

// Create handles POST /api/v1/recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondErrorf(c, "invalid recipe payload: %s", err.Error())
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	dto, err := h.recipes.CreateRecipe(c.Request.Context(), inbound.CreateRecipeCommand{
		UserID:       middleware.UserID(c),
		Name:         req.Name,
		Description:  req.Description,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Nutrition:    req.Nutrition,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Tags:         req.Tags,
		Allergens:    req.Allergens,
		IsPublic:     isPublic,
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	created(c, dto)
}

type completeRecipeRequest struct {
	Name         string                      `json:"name" binding:"required,min=2,max=200"`
	Description  string                      `json:"description"`
	PrepTime     int                         `json:"prep_time" binding:"min=0"`
	CookTime     int                         `json:"cook_time" binding:"min=0"`
	Servings     int                         `json:"servings" binding:"min=0"`
	Nutrition    inbound.NutritionDTO        `json:"nutrition"`
	Ingredients  []inbound.IngredientCommand `json:"ingredients" binding:"required,min=1"`
	Instructions []string                    `json:"instructions"`
	Tags         []string                    `json:"tags"`
}

// Complete handles POST /api/v1/recipes/complete
func (h *RecipeHandler) Complete(c *gin.Context) {
	var req completeRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondErrorf(c, "invalid recipe payload: %s", err.Error())
		return
	}

	draft, err := h.recipes.CompleteRecipe(c.Request.Context(), inbound.CompleteRecipeCommand{
		UserID:       middleware.UserID(c),
		Name:         req.Name,
		Description:  req.Description,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Nutrition:    req.Nutrition,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Tags:         req.Tags,
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, draft)
}

type recipeUpdateRequest struct {
	Name         *string                      `json:"name"`
	Description  *string                      `json:"description"`
	PrepTime     *int                         `json:"prep_time"`
	CookTime     *int                         `json:"cook_time"`
	Servings     *int                         `json:"servings"`
	Nutrition    *inbound.NutritionDTO        `json:"nutrition"`
	Ingredients  *[]inbound.IngredientCommand `json:"ingredients"`
	Instructions *[]string                    `json:"instructions"`
	Tags         *[]string                    `json:"tags"`
	Allergens    *[]string                    `json:"allergens"`
	IsPublic     *bool                        `json:"is_public"`
}

// Update handles PUT /api/v1/recipes/:id
func (h *RecipeHandler) Update(c *gin.Context) {
	id, valid := pathUUID(c, "id")
	if !valid {
		return
	}

	var req recipeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondErrorf(c, "invalid recipe payload: %s", err.Error())
		return
	}

	dto, err := h.recipes.UpdateRecipe(c.Request.Context(), inbound.UpdateRecipeCommand{
		RecipeID:     id,
		UserID:       middleware.UserID(c),
		Name:         req.Name,
		Description:  req.Description,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Nutrition:    req.Nutrition,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Tags:         req.Tags,
		Allergens:    req.Allergens,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, dto)
}

// Delete handles DELETE /api/v1/recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, valid := pathUUID(c, "id")
	if !valid {
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get handles GET /api/v1/recipes/:id
func (h *RecipeHandler) Get(c *gin.Context) {
	id, valid := pathUUID(c, "id")
	if !valid {
		return
	}

	dto, err := h.recipes.GetRecipe(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, dto)
}

// List handles GET /api/v1/recipes
func (h *RecipeHandler) List(c *gin.Context) {
	query := inbound.RecipeQuery{
		Search: c.Query("search"),
	}
	if tags := c.Query("tags"); tags != "" {
		query.Tags = strings.Split(tags, ",")
	}
	if allergens := c.Query("exclude_allergens"); allergens != "" {
		query.ExcludeAllergens = strings.Split(allergens, ",")
	}
	if raw := c.Query("max_calories"); raw != "" {
		maxCal, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxCal < 0 {
			middleware.RespondErrorf(c, "max_calories must be a non-negative number")
			return
		}
		query.MaxCalories = &maxCal
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	list, err := h.recipes.ListRecipes(c.Request.Context(), middleware.UserID(c), query)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	ok(c, list)
}
