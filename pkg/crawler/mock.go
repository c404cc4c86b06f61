package crawler

import (
	"fmt"
	"math/rand"

	"github.com/nerabuild/NeraBuild-API/internal/models"
)

var basePrices = map[models.Category]float64{
	models.CategoryCPU:         1500,
	models.CategoryGPU:         2000,
	models.CategoryMotherboard: 800,
	models.CategoryRAM:         300,
	models.CategoryStorage:     400,
	models.CategoryPSU:         500,
	models.CategoryCase:        300,
	models.CategoryCooler:      200,
}

var modelSuffixes = map[models.Category][]string{
	models.CategoryCPU:         {"K", "KF", "X", "KS", "F"},
	models.CategoryGPU:         {"OC", "Gaming", "AORUS", "ROG", "Gaming X"},
	models.CategoryMotherboard: {"Gaming", "AORUS", "ROG", "Pro", "Elite"},
	models.CategoryRAM:         {"RGB", "Gaming", "Vengeance", "Dominator"},
	models.CategoryStorage:     {"Pro", "Plus", "Ultra", "Gaming"},
	models.CategoryPSU:         {"Gaming", "Pro", "Plus", "Gold"},
	models.CategoryCase:        {"Gaming", "Pro", "Elite", "RGB"},
	models.CategoryCooler:      {"RGB", "Gaming", "Pro", "Elite"},
}

var mockBrands = []string{"ASUS", "MSI", "Gigabyte", "Colorful", "GALAX", "ZOTAC", "MAXSUN", "Yeston"}

var mockShops = []string{
	"ASUS Flagship Store",
	"MSI Flagship Store",
	"Gigabyte Flagship Store",
	"Colorful Flagship Store",
}

// MockGenerator produces catalog entries with plausible per-category
// specs, used in place of live crawling. The generator is seeded, so a
// fixed seed reproduces the same catalog.
type MockGenerator struct {
	rng *rand.Rand
}

func NewMockGenerator(seed int64) *MockGenerator {
	return &MockGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns n items of the category.
func (g *MockGenerator) Generate(category models.Category, n int) []models.HardwareItem {
	items := make([]models.HardwareItem, 0, n)
	for i := 1; i <= n; i++ {
		brand := mockBrands[g.rng.Intn(len(mockBrands))]
		shop := mockShops[g.rng.Intn(len(mockShops))]
		suffixes := modelSuffixes[category]
		suffix := suffixes[g.rng.Intn(len(suffixes))]
		price := basePrices[category] + float64(g.rng.Intn(500))
		originalPrice := price + float64(g.rng.Intn(200))

		id := fmt.Sprintf("%s-%d", category, i)
		itemID := fmt.Sprintf("%09d", g.rng.Intn(1_000_000_000))
		skuID := fmt.Sprintf("%09d", g.rng.Intn(1_000_000_000))

		items = append(items, models.HardwareItem{
			ID:            id,
			Name:          fmt.Sprintf("%s %s %s", brand, category, suffix),
			Brand:         brand,
			Model:         suffix,
			Category:      category,
			Price:         price,
			OriginalPrice: &originalPrice,
			Stock:         10 + g.rng.Intn(50),
			Specs:         g.specs(category),
			Platform: models.PlatformInfo{
				Taobao: &models.TaobaoListing{
					ItemID:     itemID,
					ShopID:     fmt.Sprintf("shop_%06d", g.rng.Intn(1_000_000)),
					ShopName:   shop,
					URL:        "https://item.taobao.com/item.htm?id=" + itemID,
					Rating:     4.5 + g.rng.Float64()*0.5,
					SalesCount: 100 + g.rng.Intn(1000),
				},
				JD: &models.JDListing{
					SkuID:      skuID,
					ShopID:     fmt.Sprintf("jd_shop_%06d", g.rng.Intn(1_000_000)),
					ShopName:   shop,
					URL:        "https://item.jd.com/" + skuID + ".html",
					Rating:     4.6 + g.rng.Float64()*0.4,
					SalesCount: 200 + g.rng.Intn(800),
				},
			},
		})
	}
	return items
}

func (g *MockGenerator) specs(category models.Category) models.HardwareSpecs {
	switch category {
	case models.CategoryCPU:
		return models.HardwareSpecs{
			Cores:        models.Ptr(8 + g.rng.Intn(8)),
			Threads:      models.Ptr(16 + g.rng.Intn(16)),
			BaseClock:    models.Ptr(3.0 + g.rng.Float64()*2.0),
			BoostClock:   models.Ptr(4.0 + g.rng.Float64()*2.0),
			CPUTdp:       models.Ptr(float64(65 + g.rng.Intn(100))),
			Socket:       models.Ptr("LGA1700"),
			Architecture: models.Ptr("Intel 13th Gen"),
		}
	case models.CategoryGPU:
		return models.HardwareSpecs{
			GPUMemory:     models.Ptr(float64(8 + g.rng.Intn(8))),
			GPUMemoryType: models.Ptr("GDDR6"),
			GPUBoostClock: models.Ptr(1.8 + g.rng.Float64()*0.4),
			GPUTdp:        models.Ptr(float64(200 + g.rng.Intn(150))),
			Length:        models.Ptr(float64(250 + g.rng.Intn(100))),
			Width:         models.Ptr(float64(120 + g.rng.Intn(20))),
			Height:        models.Ptr(float64(40 + g.rng.Intn(20))),
		}
	case models.CategoryMotherboard:
		return models.HardwareSpecs{
			Socket:       models.Ptr("LGA1700"),
			Chipset:      models.Ptr("B760"),
			MBFormFactor: models.Ptr("ATX"),
			MemorySlots:  models.Ptr(4),
			MaxMemory:    models.Ptr(128),
			MBMemoryType: models.Ptr("DDR4"),
			PCISlots:     models.Ptr(3),
			M2Slots:      models.Ptr(2),
			SATAPorts:    models.Ptr(6),
		}
	case models.CategoryRAM:
		return models.HardwareSpecs{
			RAMCapacity: models.Ptr(16),
			Speed:       models.Ptr(3200 + g.rng.Intn(800)),
			Timing:      models.Ptr("CL16"),
			Voltage:     models.Ptr(1.35),
			MemoryType:  models.Ptr("DDR4"),
		}
	case models.CategoryStorage:
		return models.HardwareSpecs{
			StorageCapacity: models.Ptr(1000),
			Type:            models.Ptr("SSD"),
			Interface:       models.Ptr("M.2"),
			ReadSpeed:       models.Ptr(3000 + g.rng.Intn(2000)),
			WriteSpeed:      models.Ptr(2000 + g.rng.Intn(1500)),
		}
	case models.CategoryPSU:
		return models.HardwareSpecs{
			Wattage:    models.Ptr(float64(650 + g.rng.Intn(350))),
			Efficiency: models.Ptr("80+ Gold"),
			Modular:    models.Ptr("Full"),
		}
	case models.CategoryCase:
		return models.HardwareSpecs{
			CaseFormFactor:     models.Ptr("ATX"),
			MaxGPULength:       models.Ptr(350.0),
			MaxCPUCoolerHeight: models.Ptr(165.0),
			MaxPSULength:       models.Ptr(180.0),
			FanMounts:          models.Ptr(6),
			IncludedFans:       models.Ptr(2),
		}
	case models.CategoryCooler:
		return models.HardwareSpecs{
			CoolerType: models.Ptr("Air"),
			FanSize:    models.Ptr(120.0),
			Height:     models.Ptr(160.0),
			NoiseLevel: models.Ptr(float64(25 + g.rng.Intn(15))),
			RGB:        models.Ptr(g.rng.Intn(2) == 0),
		}
	default:
		return models.HardwareSpecs{}
	}
}
