package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerabuild/NeraBuild-API/internal/models"
)

func testItem(id string, category models.Category, name string, price float64, stock int) models.HardwareItem {
	return models.HardwareItem{
		ID:       id,
		Name:     name,
		Brand:    "Test",
		Model:    name,
		Category: category,
		Price:    price,
		Stock:    stock,
	}
}

func TestStoreAddAndGet(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.Add(testItem("a", models.CategoryCPU, "alpha", 100, 5)))
	item, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "alpha", item.Name)

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreAddRejectsUnknownCategory(t *testing.T) {
	store := NewStore()

	err := store.Add(testItem("x", "soundcard", "noisy", 100, 1))

	require.Error(t, err)
	assert.Zero(t, store.Len())
}

func TestStoreAddReplacesExisting(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Add(testItem("a", models.CategoryCPU, "old", 100, 5)))
	require.NoError(t, store.Add(testItem("a", models.CategoryCPU, "new", 150, 5)))

	assert.Equal(t, 1, store.Len())
	item, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "new", item.Name)
}

func TestStoreCategories(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Add(testItem("g", models.CategoryGPU, "gpu", 100, 1)))
	require.NoError(t, store.Add(testItem("c", models.CategoryCPU, "cpu", 100, 1)))

	// Slot order, not insertion order.
	assert.Equal(t, []models.Category{models.CategoryCPU, models.CategoryGPU}, store.Categories())
}

func TestStoreCategoryPagination(t *testing.T) {
	store := NewStore()
	prices := []float64{300, 100, 200, 500, 400}
	for i, price := range prices {
		id := string(rune('a' + i))
		require.NoError(t, store.Add(testItem(id, models.CategoryGPU, "gpu "+id, price, 1)))
	}

	page1, total := store.Category(models.CategoryGPU, Page{Number: 1, Limit: 2, Sort: "price"})
	require.Equal(t, 5, total)
	require.Len(t, page1, 2)
	assert.Equal(t, 100.0, page1[0].Price)
	assert.Equal(t, 200.0, page1[1].Price)

	page3, _ := store.Category(models.CategoryGPU, Page{Number: 3, Limit: 2, Sort: "price"})
	require.Len(t, page3, 1)
	assert.Equal(t, 500.0, page3[0].Price)

	desc, _ := store.Category(models.CategoryGPU, Page{Number: 1, Limit: 1, Sort: "price", Desc: true})
	require.Len(t, desc, 1)
	assert.Equal(t, 500.0, desc[0].Price)

	beyond, _ := store.Category(models.CategoryGPU, Page{Number: 9, Limit: 2})
	assert.Empty(t, beyond)
}

func TestStoreSearch(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Add(testItem("1", models.CategoryGPU, "Colorful RTX 4070", 4299, 3)))
	require.NoError(t, store.Add(testItem("2", models.CategoryGPU, "MSI RTX 4070", 4399, 0)))
	require.NoError(t, store.Add(testItem("3", models.CategoryCPU, "Intel i7-13700K", 2899, 9)))

	byText := store.Search(Query{Text: "rtx"})
	require.Len(t, byText, 2)
	assert.Equal(t, "1", byText[0].ID, "cheapest first")

	byCategory := store.Search(Query{Category: models.CategoryCPU})
	require.Len(t, byCategory, 1)
	assert.Equal(t, "3", byCategory[0].ID)

	byPrice := store.Search(Query{MinPrice: 4000, MaxPrice: 4300})
	require.Len(t, byPrice, 1)
	assert.Equal(t, "1", byPrice[0].ID)

	inStock := store.Search(Query{Text: "rtx", InStock: true})
	require.Len(t, inStock, 1)
	assert.Equal(t, "1", inStock[0].ID)

	assert.Empty(t, store.Search(Query{Text: "radeon"}))
}

func TestSeedCoversEveryCategory(t *testing.T) {
	store := NewStore()
	added := Seed(store)

	assert.Equal(t, store.Len(), added)
	assert.Equal(t, models.Categories(), store.Categories())

	// Seeded listings carry both platforms so carts can be generated.
	item, err := store.Get("gpu-rtx4070")
	require.NoError(t, err)
	require.NotNil(t, item.Platform.Taobao)
	require.NotNil(t, item.Platform.JD)
}
