package main

import (
	"errors"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/nerabuild/NeraBuild-API/internal/models"
	"github.com/nerabuild/NeraBuild-API/pkg/catalog"
	"github.com/nerabuild/NeraBuild-API/pkg/compat"
	"github.com/nerabuild/NeraBuild-API/pkg/configstore"
	"github.com/nerabuild/NeraBuild-API/pkg/crawler"
	"github.com/nerabuild/NeraBuild-API/pkg/orders"
	"github.com/nerabuild/NeraBuild-API/pkg/perf"
	"github.com/nerabuild/NeraBuild-API/pkg/pricetracker"
)

type BuildRequest struct {
	Items []models.HardwareItem `json:"items"`
}

type SaveConfigurationRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Items       []models.HardwareItem `json:"items"`
	IsPublic    bool                  `json:"isPublic"`
}

func main() {
	// Environment overrides are optional; a missing .env is fine.
	_ = godotenv.Load()

	// Initialize the core services
	checker := compat.NewChecker()
	scorer := perf.NewScorer()

	// Build the catalog: curated samples plus generated inventory
	store := catalog.NewStore()
	catalog.Seed(store)
	gen := crawler.NewMockGenerator(envInt64("CATALOG_SEED", 1))
	for _, category := range models.Categories() {
		for _, item := range gen.Generate(category, envInt("CATALOG_MOCK_ITEMS", 8)) {
			if err := store.Add(item); err != nil {
				log.Fatal(err)
			}
		}
	}

	configs := configstore.NewStore(checker, scorer)

	// Create a Fiber app
	app := fiber.New()
	app.Use(helmet.New())
	app.Use(logger.New(logger.Config{
		Format: "${pid} | ${time} | ${latency} | [${ip}]:${port} | ${status} - ${method} ${path}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "items": store.Len()})
	})

	api := app.Group("/api")

	// Endpoint for listing the catalog categories
	api.Get("/hardware/categories", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": store.Categories()})
	})

	// Endpoint for browsing one category
	api.Get("/hardware/category/:category", func(c *fiber.Ctx) error {
		category, err := models.ParseCategory(c.Params("category"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		page := catalog.Page{
			Number: c.QueryInt("page", 1),
			Limit:  c.QueryInt("limit", 20),
			Sort:   c.Query("sort", "price"),
			Desc:   c.Query("order", "asc") == "desc",
		}
		items, total := store.Category(category, page)
		return c.JSON(fiber.Map{
			"data": items,
			"pagination": fiber.Map{
				"page":  page.Number,
				"limit": page.Limit,
				"total": total,
			},
		})
	})

	// Endpoint for searching the catalog
	api.Get("/hardware/search", func(c *fiber.Ctx) error {
		q := catalog.Query{
			Text:     c.Query("q"),
			MinPrice: queryFloat(c, "minPrice"),
			MaxPrice: queryFloat(c, "maxPrice"),
			InStock:  c.QueryBool("inStock", false),
		}
		if raw := c.Query("category"); raw != "" {
			category, err := models.ParseCategory(raw)
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"error": err.Error()})
			}
			q.Category = category
		}
		return c.JSON(fiber.Map{"data": store.Search(q)})
	})

	// Endpoint for one catalog item
	api.Get("/hardware/:id", func(c *fiber.Ctx) error {
		item, err := store.Get(c.Params("id"))
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "hardware item not found"})
		}
		return c.JSON(fiber.Map{"data": item})
	})

	// Endpoint for checking build compatibility
	api.Post("/compatibility", func(c *fiber.Ctx) error {
		cfg, fail := parseBuild(c)
		if fail != nil {
			return fail(c)
		}
		return c.JSON(fiber.Map{"data": checker.Check(cfg)})
	})

	// Endpoint for the build performance score
	api.Post("/performance", func(c *fiber.Ctx) error {
		cfg, fail := parseBuild(c)
		if fail != nil {
			return fail(c)
		}
		return c.JSON(fiber.Map{"data": scorer.Score(cfg)})
	})

	// Endpoint for per-game FPS prediction
	api.Post("/performance/games", func(c *fiber.Ctx) error {
		cfg, fail := parseBuild(c)
		if fail != nil {
			return fail(c)
		}
		return c.JSON(fiber.Map{"data": scorer.PredictGames(cfg)})
	})

	// Endpoint for saving a named build
	api.Post("/configurations", func(c *fiber.Ctx) error {
		var req SaveConfigurationRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request payload"})
		}
		saved, err := configs.Save(req.Name, req.Description, req.Items, req.IsPublic)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"data": saved})
	})

	// Endpoint for listing stored builds
	api.Get("/configurations", func(c *fiber.Ctx) error {
		var publicOnly *bool
		if raw := c.Query("isPublic"); raw != "" {
			v := raw == "true"
			publicOnly = &v
		}
		list, total := configs.List(c.QueryInt("page", 1), c.QueryInt("limit", 20), publicOnly)
		return c.JSON(fiber.Map{"data": list, "total": total})
	})

	// Endpoint for resolving a shared build
	api.Get("/configurations/share/:shareId", func(c *fiber.Ctx) error {
		saved, err := configs.GetByShareID(c.Params("shareId"))
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "shared configuration not found"})
		}
		return c.JSON(fiber.Map{"data": saved})
	})

	// Endpoint for one stored build
	api.Get("/configurations/:id", func(c *fiber.Ctx) error {
		saved, err := configs.Get(c.Params("id"))
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "configuration not found"})
		}
		return c.JSON(fiber.Map{"data": saved})
	})

	// Endpoints for platform cart generation
	api.Post("/orders/taobao", func(c *fiber.Ctx) error {
		var req BuildRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request payload"})
		}
		return c.JSON(orders.PlaceTaobaoOrder(req.Items))
	})
	api.Post("/orders/jd", func(c *fiber.Ctx) error {
		var req BuildRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request payload"})
		}
		return c.JSON(orders.PlaceJDOrder(req.Items))
	})

	// Endpoint for live platform search. The crawl hits the platform
	// search pages directly, so results depend on outbound access.
	api.Get("/crawler/search", func(c *fiber.Ctx) error {
		category, err := models.ParseCategory(c.Query("category", "gpu"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		platform := c.Query("platform", crawler.PlatformTaobao)

		crawl := crawler.NewCrawler()
		crawl.RandomizeUserAgent()
		listings, err := crawl.Search(platform, c.Query("q"))
		if err != nil {
			if errors.Is(err, crawler.ErrUnknownPlatform) {
				return c.Status(400).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(502).JSON(fiber.Map{"error": "platform search failed"})
		}

		items := make([]models.HardwareItem, 0, len(listings))
		for _, listing := range listings {
			items = append(items, listing.ToHardwareItem(platform, category))
		}
		return c.JSON(fiber.Map{"data": items})
	})

	// Endpoint for the price trend of one catalog item
	api.Get("/price-trend/:id", func(c *fiber.Ctx) error {
		item, err := store.Get(c.Params("id"))
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "hardware item not found"})
		}
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		history := pricetracker.GenerateHistory(item.Price, c.QueryInt("days", 30), rng)
		trend, err := pricetracker.AnalyzeTrend(history)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "could not analyze price history"})
		}
		return c.JSON(fiber.Map{"data": trend, "alerts": pricetracker.Alerts(trend)})
	})

	// Start the server
	log.Fatal(app.Listen(":" + envString("PORT", "3000")))
}

// parseBuild reads the item list of the request body and groups it into a
// configuration. The returned fail handler is nil on success.
func parseBuild(c *fiber.Ctx) (models.Configuration, func(*fiber.Ctx) error) {
	var req BuildRequest
	if err := c.BodyParser(&req); err != nil {
		return models.Configuration{}, func(c *fiber.Ctx) error {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request payload"})
		}
	}
	cfg, err := models.NewConfiguration(req.Items)
	if err != nil {
		msg := err.Error()
		return models.Configuration{}, func(c *fiber.Ctx) error {
			return c.Status(400).JSON(fiber.Map{"error": msg})
		}
	}
	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func queryFloat(c *fiber.Ctx, key string) float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		return 0
	}
	return v
}
