package catalog

import (
	"errors"

	"gamedata-manager/core/logger"
	"gamedata-manager/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")

	group.Get("/status", h.HandleStatus)
	group.Post("/reload", h.HandleReload)

	group.Get("/items", h.HandleItems)
	group.Get("/items/category/:category", h.HandleItemsByCategory)
	group.Get("/items/tier/:tier", h.HandleItemsByTier)
	group.Get("/items/:id", h.HandleItem)

	group.Get("/buildings", h.HandleBuildings)
	group.Get("/buildings/category/:category", h.HandleBuildingsByCategory)
	group.Get("/buildings/corporation/:corp", h.HandleBuildingsByCorporation)
	group.Get("/buildings/:id", h.HandleBuilding)

	group.Get("/recipes", h.HandleRecipes)
	group.Get("/recipes/building/:id", h.HandleRecipesByBuilding)
	group.Get("/recipes/output/:item", h.HandleRecipesByOutput)
	group.Get("/recipes/input/:item", h.HandleRecipesByInput)
	group.Get("/recipes/:id", h.HandleRecipe)

	group.Get("/rails", h.HandleRails)
	group.Get("/rails/min-capacity/:capacity", h.HandleRailsByMinCapacity)
	group.Get("/rails/:id", h.HandleRail)

	group.Get("/corporations", h.HandleCorporations)
	group.Get("/corporations/:corp/levels/:level/rewards", h.HandleRewards)
	group.Get("/corporations/:corp/levels/:level/unlocks", h.HandleUnlocks)
	group.Get("/corporations/:id", h.HandleCorporation)
}

// respondErr maps pipeline errors to HTTP responses. Querying before a
// successful load is a misuse error and always fails the call.
func respondErr(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotLoaded) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": ErrNotLoaded.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// HandleStatus reports the store lifecycle state.
// @Summary Catalog Status
// @Description Returns the load lifecycle state (idle, loading, ready, error) and the last load error if any.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Status"
// @Router /catalog/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	status, lastErr := h.service.Status()
	body := fiber.Map{"status": status}
	if lastErr != nil {
		body["error"] = lastErr.Error()
	}
	return c.JSON(body)
}

// HandleReload triggers a fresh load attempt.
// @Summary Reload Catalog
// @Description Fetches, validates and recompiles the five game data collections. A failed reload keeps the previous dataset.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Reloaded"
// @Failure 502 {object} map[string]string "Load Failed"
// @Router /catalog/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Catalog reload requested")

	if err := h.service.Load(c.Context()); err != nil {
		l.Error("Catalog reload failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	status, _ := h.service.Status()
	return c.JSON(fiber.Map{"status": status})
}

// HandleItems lists all items.
// @Summary List Items
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Item "Items"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/items [get]
func (h *Handler) HandleItems(c *fiber.Ctx) error {
	items, err := h.service.Lookup().Items()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(items)
}

// HandleItem returns one item by id.
// @Summary Get Item
// @Tags catalog
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.Item "Item"
// @Failure 404 {object} map[string]string "Unknown ID"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/items/{id} [get]
func (h *Handler) HandleItem(c *fiber.Ctx) error {
	item, err := h.service.Lookup().Item(c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown item id"})
	}
	return c.JSON(item)
}

// HandleItemsByCategory lists the items of one category.
// @Summary List Items By Category
// @Tags catalog
// @Produce json
// @Param category path string true "Item Category"
// @Success 200 {array} models.Item "Items"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/items/category/{category} [get]
func (h *Handler) HandleItemsByCategory(c *fiber.Ctx) error {
	items, err := h.service.Lookup().ItemsByCategory(models.ItemCategory(c.Params("category")))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(items)
}

// HandleItemsByTier lists the items of one tier.
// @Summary List Items By Tier
// @Tags catalog
// @Produce json
// @Param tier path int true "Item Tier"
// @Success 200 {array} models.Item "Items"
// @Failure 400 {object} map[string]string "Bad Tier"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/items/tier/{tier} [get]
func (h *Handler) HandleItemsByTier(c *fiber.Ctx) error {
	tier, err := c.ParamsInt("tier")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "tier must be an integer"})
	}

	items, err := h.service.Lookup().ItemsByTier(tier)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(items)
}

// HandleBuildings lists all buildings.
// @Summary List Buildings
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Building "Buildings"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/buildings [get]
func (h *Handler) HandleBuildings(c *fiber.Ctx) error {
	buildings, err := h.service.Lookup().Buildings()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(buildings)
}

// HandleBuilding returns one building by id.
// @Summary Get Building
// @Tags catalog
// @Produce json
// @Param id path string true "Building ID"
// @Success 200 {object} models.Building "Building"
// @Failure 404 {object} map[string]string "Unknown ID"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/buildings/{id} [get]
func (h *Handler) HandleBuilding(c *fiber.Ctx) error {
	building, err := h.service.Lookup().Building(c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	if building == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown building id"})
	}
	return c.JSON(building)
}

// HandleBuildingsByCategory lists the buildings of one category.
// @Summary List Buildings By Category
// @Tags catalog
// @Produce json
// @Param category path string true "Building Category"
// @Success 200 {array} models.Building "Buildings"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/buildings/category/{category} [get]
func (h *Handler) HandleBuildingsByCategory(c *fiber.Ctx) error {
	buildings, err := h.service.Lookup().BuildingsByCategory(models.BuildingCategory(c.Params("category")))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(buildings)
}

// HandleBuildingsByCorporation lists the buildings unlocked by one corporation.
// @Summary List Buildings By Corporation
// @Tags catalog
// @Produce json
// @Param corp path string true "Corporation ID"
// @Success 200 {array} models.Building "Buildings"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/buildings/corporation/{corp} [get]
func (h *Handler) HandleBuildingsByCorporation(c *fiber.Ctx) error {
	buildings, err := h.service.Lookup().BuildingsByCorporation(c.Params("corp"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(buildings)
}

// HandleRecipes lists all recipes.
// @Summary List Recipes
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Recipe "Recipes"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/recipes [get]
func (h *Handler) HandleRecipes(c *fiber.Ctx) error {
	recipes, err := h.service.Lookup().Recipes()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(recipes)
}

// HandleRecipe returns one recipe by id.
// @Summary Get Recipe
// @Tags catalog
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} models.Recipe "Recipe"
// @Failure 404 {object} map[string]string "Unknown ID"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/recipes/{id} [get]
func (h *Handler) HandleRecipe(c *fiber.Ctx) error {
	recipe, err := h.service.Lookup().Recipe(c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	if recipe == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown recipe id"})
	}
	return c.JSON(recipe)
}

// HandleRecipesByBuilding lists the recipes run by one building.
// @Summary List Recipes By Building
// @Tags catalog
// @Produce json
// @Param id path string true "Building ID"
// @Success 200 {array} models.Recipe "Recipes"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/recipes/building/{id} [get]
func (h *Handler) HandleRecipesByBuilding(c *fiber.Ctx) error {
	recipes, err := h.service.Lookup().RecipesByBuilding(c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(recipes)
}

// HandleRecipesByOutput lists the recipes producing one item.
// @Summary List Recipes By Output Item
// @Tags catalog
// @Produce json
// @Param item path string true "Item ID"
// @Success 200 {array} models.Recipe "Recipes"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/recipes/output/{item} [get]
func (h *Handler) HandleRecipesByOutput(c *fiber.Ctx) error {
	recipes, err := h.service.Lookup().RecipesByOutput(c.Params("item"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(recipes)
}

// HandleRecipesByInput lists the recipes consuming one item.
// @Summary List Recipes By Input Item
// @Tags catalog
// @Produce json
// @Param item path string true "Item ID"
// @Success 200 {array} models.Recipe "Recipes"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/recipes/input/{item} [get]
func (h *Handler) HandleRecipesByInput(c *fiber.Ctx) error {
	recipes, err := h.service.Lookup().RecipesByInput(c.Params("item"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(recipes)
}

// HandleRails lists all rails sorted ascending by capacity.
// @Summary List Rails
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Rail "Rails"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/rails [get]
func (h *Handler) HandleRails(c *fiber.Ctx) error {
	rails, err := h.service.Lookup().Rails()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(rails)
}

// HandleRail returns one rail by id.
// @Summary Get Rail
// @Tags catalog
// @Produce json
// @Param id path string true "Rail ID"
// @Success 200 {object} models.Rail "Rail"
// @Failure 404 {object} map[string]string "Unknown ID"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/rails/{id} [get]
func (h *Handler) HandleRail(c *fiber.Ctx) error {
	rail, err := h.service.Lookup().Rail(c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	if rail == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown rail id"})
	}
	return c.JSON(rail)
}

// HandleRailsByMinCapacity lists the rails with capacity at or above a threshold.
// @Summary List Rails By Minimum Capacity
// @Tags catalog
// @Produce json
// @Param capacity path int true "Capacity Threshold"
// @Success 200 {array} models.Rail "Rails"
// @Failure 400 {object} map[string]string "Bad Capacity"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/rails/min-capacity/{capacity} [get]
func (h *Handler) HandleRailsByMinCapacity(c *fiber.Ctx) error {
	capacity, err := c.ParamsInt("capacity")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "capacity must be an integer"})
	}

	rails, err := h.service.Lookup().RailsByMinCapacity(capacity)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(rails)
}

// HandleCorporations lists all corporations.
// @Summary List Corporations
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Corporation "Corporations"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/corporations [get]
func (h *Handler) HandleCorporations(c *fiber.Ctx) error {
	corps, err := h.service.Lookup().Corporations()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(corps)
}

// HandleCorporation returns one corporation by id.
// @Summary Get Corporation
// @Tags catalog
// @Produce json
// @Param id path string true "Corporation ID"
// @Success 200 {object} models.Corporation "Corporation"
// @Failure 404 {object} map[string]string "Unknown ID"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/corporations/{id} [get]
func (h *Handler) HandleCorporation(c *fiber.Ctx) error {
	corp, err := h.service.Lookup().Corporation(c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	if corp == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown corporation id"})
	}
	return c.JSON(corp)
}

// HandleRewards lists the rewards at one corporation level, optionally
// filtered by reward type.
// @Summary List Level Rewards
// @Tags catalog
// @Produce json
// @Param corp path string true "Corporation ID"
// @Param level path int true "Level Number"
// @Param type query string false "Reward Type Filter"
// @Success 200 {array} models.Reward "Rewards"
// @Failure 400 {object} map[string]string "Bad Level"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/corporations/{corp}/levels/{level}/rewards [get]
func (h *Handler) HandleRewards(c *fiber.Ctx) error {
	level, err := c.ParamsInt("level")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "level must be an integer"})
	}

	var rewards []models.Reward
	if filter := c.Query("type"); filter != "" {
		rewards, err = h.service.Lookup().RewardsOfType(c.Params("corp"), level, models.RewardType(filter))
	} else {
		rewards, err = h.service.Lookup().RewardsAt(c.Params("corp"), level)
	}
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(rewards)
}

// HandleUnlocks resolves the building and rail rewards at one corporation level.
// @Summary List Level Unlocks
// @Description Resolves building and rail rewards of the level against the primary tables.
// @Tags catalog
// @Produce json
// @Param corp path string true "Corporation ID"
// @Param level path int true "Level Number"
// @Success 200 {object} map[string]interface{} "Unlocks"
// @Failure 400 {object} map[string]string "Bad Level"
// @Failure 503 {object} map[string]string "Not Loaded"
// @Router /catalog/corporations/{corp}/levels/{level}/unlocks [get]
func (h *Handler) HandleUnlocks(c *fiber.Ctx) error {
	level, err := c.ParamsInt("level")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "level must be an integer"})
	}

	corp := c.Params("corp")
	buildings, err := h.service.Lookup().BuildingsUnlockedAt(corp, level)
	if err != nil {
		return respondErr(c, err)
	}
	rails, err := h.service.Lookup().RailsUnlockedAt(corp, level)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(fiber.Map{
		"buildings": buildings,
		"rails":     rails,
	})
}
