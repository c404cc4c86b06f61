package catalog

import "github.com/nerabuild/NeraBuild-API/internal/models"

// Seed loads the curated sample inventory into the store, enough to
// assemble a complete build of well-known parts. Returns the number of
// items added.
func Seed(s *Store) int {
	added := 0
	for _, item := range sampleItems() {
		if err := s.Add(item); err == nil {
			added++
		}
	}
	return added
}

func sampleItems() []models.HardwareItem {
	return []models.HardwareItem{
		{
			ID:       "cpu-i7-13700k",
			Name:     "Intel Core i7-13700K",
			Brand:    "Intel",
			Model:    "i7-13700K",
			Category: models.CategoryCPU,
			Price:    2899,
			Stock:    50,
			Specs: models.HardwareSpecs{
				Cores:      models.Ptr(16),
				Threads:    models.Ptr(24),
				BaseClock:  models.Ptr(3.4),
				BoostClock: models.Ptr(5.4),
				CPUTdp:     models.Ptr(125.0),
				Socket:     models.Ptr("LGA1700"),
			},
			Platform: models.PlatformInfo{
				Taobao: &models.TaobaoListing{ItemID: "623456001", ShopID: "shop001", ShopName: "Intel Flagship Store", URL: "https://item.taobao.com/item.htm?id=623456001", Rating: 4.8, SalesCount: 1000},
				JD:     &models.JDListing{SkuID: "100038004389", ShopID: "jd001", ShopName: "JD Self-operated", URL: "https://item.jd.com/100038004389.html", Rating: 4.9, SalesCount: 800},
			},
		},
		{
			ID:       "cpu-ryzen7-7700x",
			Name:     "AMD Ryzen 7 7700X",
			Brand:    "AMD",
			Model:    "Ryzen 7 7700X",
			Category: models.CategoryCPU,
			Price:    2599,
			Stock:    30,
			Specs: models.HardwareSpecs{
				Cores:      models.Ptr(8),
				Threads:    models.Ptr(16),
				BaseClock:  models.Ptr(4.5),
				BoostClock: models.Ptr(5.4),
				CPUTdp:     models.Ptr(105.0),
				Socket:     models.Ptr("AM5"),
			},
			Platform: models.PlatformInfo{
				Taobao: &models.TaobaoListing{ItemID: "623456002", ShopID: "shop002", ShopName: "AMD Flagship Store", URL: "https://item.taobao.com/item.htm?id=623456002", Rating: 4.7, SalesCount: 600},
				JD:     &models.JDListing{SkuID: "100042033764", ShopID: "jd002", ShopName: "JD Self-operated", URL: "https://item.jd.com/100042033764.html", Rating: 4.8, SalesCount: 500},
			},
		},
		{
			ID:       "gpu-rtx4070",
			Name:     "NVIDIA GeForce RTX 4070",
			Brand:    "NVIDIA",
			Model:    "RTX 4070",
			Category: models.CategoryGPU,
			Price:    4299,
			Stock:    20,
			Specs: models.HardwareSpecs{
				GPUMemory:      models.Ptr(12.0),
				GPUMemoryType:  models.Ptr("GDDR6X"),
				GPUBoostClock:  models.Ptr(2.48),
				GPUTdp:         models.Ptr(200.0),
				Length:         models.Ptr(285.0),
				Height:         models.Ptr(112.0),
				Width:          models.Ptr(50.0),
				PowerConnector: models.Ptr("1x 16-pin"),
			},
			Platform: models.PlatformInfo{
				Taobao: &models.TaobaoListing{ItemID: "623456003", ShopID: "shop003", ShopName: "NVIDIA Flagship Store", URL: "https://item.taobao.com/item.htm?id=623456003", Rating: 4.9, SalesCount: 300},
				JD:     &models.JDListing{SkuID: "100044970902", ShopID: "jd003", ShopName: "JD Self-operated", URL: "https://item.jd.com/100044970902.html", Rating: 4.9, SalesCount: 250},
			},
		},
		{
			ID:       "mb-b760i-edge",
			Name:     "MSI MPG B760I EDGE WIFI",
			Brand:    "MSI",
			Model:    "MPG B760I EDGE WIFI",
			Category: models.CategoryMotherboard,
			Price:    1299,
			Stock:    15,
			Specs: models.HardwareSpecs{
				Socket:       models.Ptr("LGA1700"),
				Chipset:      models.Ptr("B760"),
				MBFormFactor: models.Ptr("ITX"),
				MemorySlots:  models.Ptr(2),
				MaxMemory:    models.Ptr(64),
				MBMemoryType: models.Ptr("DDR4"),
				M2Slots:      models.Ptr(2),
				SATAPorts:    models.Ptr(4),
			},
			Platform: models.PlatformInfo{
				Taobao: &models.TaobaoListing{ItemID: "623456004", ShopID: "shop004", ShopName: "MSI Flagship Store", URL: "https://item.taobao.com/item.htm?id=623456004", Rating: 4.6, SalesCount: 200},
				JD:     &models.JDListing{SkuID: "100049543217", ShopID: "jd004", ShopName: "JD Self-operated", URL: "https://item.jd.com/100049543217.html", Rating: 4.7, SalesCount: 180},
			},
		},
		{
			ID:       "ram-fury-beast-16",
			Name:     "Kingston Fury Beast 16GB DDR4",
			Brand:    "Kingston",
			Model:    "Fury Beast 16GB",
			Category: models.CategoryRAM,
			Price:    349,
			Stock:    100,
			Specs: models.HardwareSpecs{
				RAMCapacity: models.Ptr(16),
				Speed:       models.Ptr(3200),
				MemoryType:  models.Ptr("DDR4"),
				Timing:      models.Ptr("CL16"),
				Voltage:     models.Ptr(1.35),
			},
			Platform: models.PlatformInfo{
				Taobao: &models.TaobaoListing{ItemID: "623456005", ShopID: "shop005", ShopName: "Kingston Flagship Store", URL: "https://item.taobao.com/item.htm?id=623456005", Rating: 4.8, SalesCount: 500},
				JD:     &models.JDListing{SkuID: "100011563268", ShopID: "jd005", ShopName: "JD Self-operated", URL: "https://item.jd.com/100011563268.html", Rating: 4.8, SalesCount: 450},
			},
		},
		{
			ID:       "ssd-980pro-1tb",
			Name:     "Samsung 980 PRO 1TB",
			Brand:    "Samsung",
			Model:    "980 PRO",
			Category: models.CategoryStorage,
			Price:    799,
			Stock:    60,
			Specs: models.HardwareSpecs{
				StorageCapacity: models.Ptr(1000),
				Type:            models.Ptr("SSD"),
				Interface:       models.Ptr("M.2"),
				ReadSpeed:       models.Ptr(7000),
				WriteSpeed:      models.Ptr(5000),
			},
			Platform: models.PlatformInfo{
				Taobao: &models.TaobaoListing{ItemID: "623456006", ShopID: "shop006", ShopName: "Samsung Flagship Store", URL: "https://item.taobao.com/item.htm?id=623456006", Rating: 4.9, SalesCount: 900},
				JD:     &models.JDListing{SkuID: "100016046832", ShopID: "jd006", ShopName: "JD Self-operated", URL: "https://item.jd.com/100016046832.html", Rating: 4.9, SalesCount: 700},
			},
		},
		{
			ID:       "psu-rm750x",
			Name:     "Corsair RM750x 750W",
			Brand:    "Corsair",
			Model:    "RM750x",
			Category: models.CategoryPSU,
			Price:    899,
			Stock:    40,
			Specs: models.HardwareSpecs{
				Wattage:    models.Ptr(750.0),
				Efficiency: models.Ptr("80+ Gold"),
				Modular:    models.Ptr("Full"),
			},
			Platform: models.PlatformInfo{
				Taobao: &models.TaobaoListing{ItemID: "623456007", ShopID: "shop007", ShopName: "Corsair Flagship Store", URL: "https://item.taobao.com/item.htm?id=623456007", Rating: 4.8, SalesCount: 350},
				JD:     &models.JDListing{SkuID: "100008396136", ShopID: "jd007", ShopName: "JD Self-operated", URL: "https://item.jd.com/100008396136.html", Rating: 4.8, SalesCount: 320},
			},
		},
		{
			ID:       "case-4000d",
			Name:     "Corsair 4000D Airflow",
			Brand:    "Corsair",
			Model:    "4000D Airflow",
			Category: models.CategoryCase,
			Price:    599,
			Stock:    25,
			Specs: models.HardwareSpecs{
				CaseFormFactor:     models.Ptr("ATX"),
				MaxGPULength:       models.Ptr(360.0),
				MaxCPUCoolerHeight: models.Ptr(170.0),
				MaxPSULength:       models.Ptr(180.0),
				FanMounts:          models.Ptr(6),
				IncludedFans:       models.Ptr(2),
			},
			Platform: models.PlatformInfo{
				Taobao: &models.TaobaoListing{ItemID: "623456008", ShopID: "shop007", ShopName: "Corsair Flagship Store", URL: "https://item.taobao.com/item.htm?id=623456008", Rating: 4.7, SalesCount: 280},
				JD:     &models.JDListing{SkuID: "100014351043", ShopID: "jd007", ShopName: "JD Self-operated", URL: "https://item.jd.com/100014351043.html", Rating: 4.7, SalesCount: 260},
			},
		},
		{
			ID:       "cooler-ak620",
			Name:     "DeepCool AK620",
			Brand:    "DeepCool",
			Model:    "AK620",
			Category: models.CategoryCooler,
			Price:    249,
			Stock:    80,
			Specs: models.HardwareSpecs{
				CoolerType: models.Ptr("Air"),
				Height:     models.Ptr(160.0),
				FanSize:    models.Ptr(120.0),
				NoiseLevel: models.Ptr(28.0),
				RGB:        models.Ptr(false),
			},
			Platform: models.PlatformInfo{
				Taobao: &models.TaobaoListing{ItemID: "623456009", ShopID: "shop009", ShopName: "DeepCool Flagship Store", URL: "https://item.taobao.com/item.htm?id=623456009", Rating: 4.8, SalesCount: 640},
				JD:     &models.JDListing{SkuID: "100021771138", ShopID: "jd009", ShopName: "JD Self-operated", URL: "https://item.jd.com/100021771138.html", Rating: 4.8, SalesCount: 610},
			},
		},
	}
}
