package models

// Configuration is the user's in-progress build. Single-slot categories
// hold at most one item; ram and storage hold ordered lists where the
// insertion order is the slot order. An unselected category is nil or an
// empty list, both meaning "no selection".
type Configuration struct {
	CPU         *HardwareItem  `json:"cpu,omitempty"`
	GPU         *HardwareItem  `json:"gpu,omitempty"`
	Motherboard *HardwareItem  `json:"motherboard,omitempty"`
	RAM         []HardwareItem `json:"ram,omitempty"`
	Storage     []HardwareItem `json:"storage,omitempty"`
	PSU         *HardwareItem  `json:"psu,omitempty"`
	Case        *HardwareItem  `json:"case,omitempty"`
	Cooler      *HardwareItem  `json:"cooler,omitempty"`
}

// NewConfiguration groups a flat item list into a build. Single-slot
// categories keep the first item seen; ram and storage accumulate in
// order. An item with an unknown category is rejected.
func NewConfiguration(items []HardwareItem) (Configuration, error) {
	var cfg Configuration
	for _, item := range items {
		item := item
		switch item.Category {
		case CategoryCPU:
			if cfg.CPU == nil {
				cfg.CPU = &item
			}
		case CategoryGPU:
			if cfg.GPU == nil {
				cfg.GPU = &item
			}
		case CategoryMotherboard:
			if cfg.Motherboard == nil {
				cfg.Motherboard = &item
			}
		case CategoryRAM:
			cfg.RAM = append(cfg.RAM, item)
		case CategoryStorage:
			cfg.Storage = append(cfg.Storage, item)
		case CategoryPSU:
			if cfg.PSU == nil {
				cfg.PSU = &item
			}
		case CategoryCase:
			if cfg.Case == nil {
				cfg.Case = &item
			}
		case CategoryCooler:
			if cfg.Cooler == nil {
				cfg.Cooler = &item
			}
		default:
			if _, err := ParseCategory(string(item.Category)); err != nil {
				return Configuration{}, err
			}
		}
	}
	return cfg, nil
}

// Items flattens the build back into a single list, slot order first.
func (c Configuration) Items() []HardwareItem {
	var items []HardwareItem
	for _, single := range []*HardwareItem{c.CPU, c.GPU, c.Motherboard, c.PSU, c.Case, c.Cooler} {
		if single != nil {
			items = append(items, *single)
		}
	}
	items = append(items, c.RAM...)
	items = append(items, c.Storage...)
	return items
}

// TotalPrice sums the prices of every selected item.
func (c Configuration) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items() {
		total += item.Price
	}
	return total
}
