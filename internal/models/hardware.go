package models

import "fmt"

// Category identifies one of the eight hardware slots of a build.
type Category string

const (
	CategoryCPU         Category = "cpu"
	CategoryGPU         Category = "gpu"
	CategoryMotherboard Category = "motherboard"
	CategoryRAM         Category = "ram"
	CategoryStorage     Category = "storage"
	CategoryPSU         Category = "psu"
	CategoryCase        Category = "case"
	CategoryCooler      Category = "cooler"
)

var allCategories = []Category{
	CategoryCPU,
	CategoryGPU,
	CategoryMotherboard,
	CategoryRAM,
	CategoryStorage,
	CategoryPSU,
	CategoryCase,
	CategoryCooler,
}

// Categories returns every known hardware category in slot order.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Valid reports whether the category is one of the eight known values.
func (c Category) Valid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory validates a raw category string coming from a caller.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if !c.Valid() {
		return "", fmt.Errorf("unknown hardware category %q", raw)
	}
	return c, nil
}

// HardwareSpecs is the sparse attribute bag of a hardware item. Only the
// fields valid for the item's category are set; every optional field is a
// pointer so that an absent value is distinguishable from a zero value.
type HardwareSpecs struct {
	// CPU
	Cores              *int     `json:"cores,omitempty"`
	Threads            *int     `json:"threads,omitempty"`
	BaseClock          *float64 `json:"baseClock,omitempty"`
	BoostClock         *float64 `json:"boostClock,omitempty"`
	CPUTdp             *float64 `json:"cpuTdp,omitempty"`
	Socket             *string  `json:"socket,omitempty"`
	Architecture       *string  `json:"architecture,omitempty"`
	IntegratedGraphics *string  `json:"integratedGraphics,omitempty"`

	// GPU
	GPUMemory      *float64 `json:"gpuMemory,omitempty"`
	GPUMemoryType  *string  `json:"gpuMemoryType,omitempty"`
	GPUBoostClock  *float64 `json:"gpuBoostClock,omitempty"`
	GPUTdp         *float64 `json:"gpuTdp,omitempty"`
	Length         *float64 `json:"length,omitempty"`
	Width          *float64 `json:"width,omitempty"`
	Height         *float64 `json:"height,omitempty"`
	PowerConnector *string  `json:"powerConnector,omitempty"`

	// Motherboard
	Chipset      *string `json:"chipset,omitempty"`
	MBFormFactor *string `json:"mbFormFactor,omitempty"`
	MemorySlots  *int    `json:"memorySlots,omitempty"`
	MaxMemory    *int    `json:"maxMemory,omitempty"`
	MBMemoryType *string `json:"mbMemoryType,omitempty"`
	PCISlots     *int    `json:"pciSlots,omitempty"`
	M2Slots      *int    `json:"m2Slots,omitempty"`
	SATAPorts    *int    `json:"sataPorts,omitempty"`

	// RAM
	RAMCapacity *int     `json:"ramCapacity,omitempty"`
	Speed       *int     `json:"speed,omitempty"`
	MemoryType  *string  `json:"memoryType,omitempty"`
	Modules     *int     `json:"modules,omitempty"`
	Timing      *string  `json:"timing,omitempty"`
	Voltage     *float64 `json:"voltage,omitempty"`

	// Storage
	StorageCapacity *int    `json:"storageCapacity,omitempty"`
	Type            *string `json:"type,omitempty"`
	Interface       *string `json:"interface,omitempty"`
	ReadSpeed       *int    `json:"readSpeed,omitempty"`
	WriteSpeed      *int    `json:"writeSpeed,omitempty"`
	FormFactor      *string `json:"formFactor,omitempty"`

	// PSU
	Wattage    *float64 `json:"wattage,omitempty"`
	Efficiency *string  `json:"efficiency,omitempty"`
	Modular    *string  `json:"modular,omitempty"`

	// Case
	CaseFormFactor     *string  `json:"caseFormFactor,omitempty"`
	MaxGPULength       *float64 `json:"maxGpuLength,omitempty"`
	MaxCPUCoolerHeight *float64 `json:"maxCpuCoolerHeight,omitempty"`
	MaxPSULength       *float64 `json:"maxPsuLength,omitempty"`
	FanMounts          *int     `json:"fanMounts,omitempty"`
	IncludedFans       *int     `json:"includedFans,omitempty"`

	// Cooler
	CoolerType *string  `json:"coolerType,omitempty"`
	FanSize    *float64 `json:"fanSize,omitempty"`
	NoiseLevel *float64 `json:"noiseLevel,omitempty"`
	RGB        *bool    `json:"rgb,omitempty"`
}

// TaobaoListing is the item's listing on Taobao.
type TaobaoListing struct {
	ItemID     string  `json:"itemId"`
	ShopID     string  `json:"shopId"`
	ShopName   string  `json:"shopName"`
	URL        string  `json:"url"`
	Rating     float64 `json:"rating"`
	SalesCount int     `json:"salesCount"`
}

// JDListing is the item's listing on JD.
type JDListing struct {
	SkuID      string  `json:"skuId"`
	ShopID     string  `json:"shopId"`
	ShopName   string  `json:"shopName"`
	URL        string  `json:"url"`
	Rating     float64 `json:"rating"`
	SalesCount int     `json:"salesCount"`
}

// PlatformInfo carries the per-platform listings of an item; a nil entry
// means the item is not sold on that platform.
type PlatformInfo struct {
	Taobao *TaobaoListing `json:"taobao,omitempty"`
	JD     *JDListing     `json:"jd,omitempty"`
}

// HardwareItem is one catalog entry. Immutable once selected into a build;
// re-selection replaces it wholesale.
type HardwareItem struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Brand         string        `json:"brand"`
	Model         string        `json:"model"`
	Category      Category      `json:"category"`
	Price         float64       `json:"price"`
	OriginalPrice *float64      `json:"originalPrice,omitempty"`
	Stock         int           `json:"stock"`
	Image         string        `json:"image,omitempty"`
	Specs         HardwareSpecs `json:"specs"`
	Platform      PlatformInfo  `json:"platform"`
}

// Ptr returns a pointer to v, for filling optional spec fields.
func Ptr[T any](v T) *T {
	return &v
}
