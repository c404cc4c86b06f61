// Package compat checks a build for hardware conflicts, soft risks and
// unfilled required slots. The checker is pure: it never fails, holds no
// state, and a rule whose inputs are missing is simply not evaluated.
package compat

import (
	"fmt"
	"math"

	"github.com/nerabuild/NeraBuild-API/internal/models"
)

// CompatibilityResult is the outcome of a single check. IsCompatible is
// true exactly when Conflicts is empty; MissingComponents is independent
// of it, so an incomplete build can still be compatible.
type CompatibilityResult struct {
	IsCompatible      bool     `json:"isCompatible"`
	Conflicts         []string `json:"conflicts"`
	Warnings          []string `json:"warnings"`
	MissingComponents []string `json:"missingComponents"`
}

// Checker evaluates the fixed rule set against a build. The zero value is
// not usable; NewChecker returns one with the default constants.
type Checker struct {
	// HardOverheadWatts is added to CPU+GPU TDP for the hard power rule.
	HardOverheadWatts float64
	// WarnOverheadWatts is added to CPU+GPU TDP for the soft power rule.
	WarnOverheadWatts float64
	// WarnLoadRatio is the fraction of PSU wattage the estimated draw may
	// reach before a warning fires.
	WarnLoadRatio float64
	// CaseFormFactors maps a motherboard form factor to the case form
	// factors it fits in.
	CaseFormFactors map[string][]string
}

// NewChecker returns a Checker with the stock rule constants.
func NewChecker() *Checker {
	return &Checker{
		HardOverheadWatts: 200,
		WarnOverheadWatts: 50,
		WarnLoadRatio:     0.8,
		CaseFormFactors: map[string][]string{
			"ATX":   {"ATX", "E-ATX"},
			"M-ATX": {"ATX", "M-ATX", "E-ATX"},
			"ITX":   {"ATX", "M-ATX", "ITX", "E-ATX"},
			"E-ATX": {"E-ATX"},
		},
	}
}

// Check inspects the build and reports conflicts, warnings and missing
// required slots. Every matching rule fires; nothing short-circuits.
func (ch *Checker) Check(cfg models.Configuration) CompatibilityResult {
	conflicts := []string{}
	warnings := []string{}

	missing := missingComponents(cfg)

	// CPU and motherboard socket
	if cfg.CPU != nil && cfg.Motherboard != nil {
		cpuSocket := cfg.CPU.Specs.Socket
		mbSocket := cfg.Motherboard.Specs.Socket
		if cpuSocket != nil && mbSocket != nil && *cpuSocket != *mbSocket {
			conflicts = append(conflicts, fmt.Sprintf(
				"CPU socket (%s) does not match motherboard socket (%s)",
				*cpuSocket, *mbSocket))
		}
	}

	// RAM and motherboard
	if len(cfg.RAM) > 0 && cfg.Motherboard != nil {
		mb := cfg.Motherboard.Specs

		// Memory type is checked against the first module only.
		ramType := cfg.RAM[0].Specs.MemoryType
		if ramType != nil && mb.MBMemoryType != nil && *ramType != *mb.MBMemoryType {
			conflicts = append(conflicts, fmt.Sprintf(
				"RAM type (%s) is not supported by the motherboard (%s)",
				*ramType, *mb.MBMemoryType))
		}

		totalRAM := 0
		for _, module := range cfg.RAM {
			if module.Specs.RAMCapacity != nil {
				totalRAM += *module.Specs.RAMCapacity
			}
		}
		if mb.MaxMemory != nil && totalRAM > *mb.MaxMemory {
			conflicts = append(conflicts, fmt.Sprintf(
				"total RAM capacity (%dGB) exceeds the motherboard maximum (%dGB)",
				totalRAM, *mb.MaxMemory))
		}

		if mb.MemorySlots != nil && len(cfg.RAM) > *mb.MemorySlots {
			conflicts = append(conflicts, fmt.Sprintf(
				"RAM module count (%d) exceeds the motherboard memory slots (%d)",
				len(cfg.RAM), *mb.MemorySlots))
		}
	}

	// GPU length and case clearance
	if cfg.GPU != nil && cfg.Case != nil {
		gpuLength := cfg.GPU.Specs.Length
		maxLength := cfg.Case.Specs.MaxGPULength
		if gpuLength != nil && maxLength != nil && *gpuLength > *maxLength {
			conflicts = append(conflicts, fmt.Sprintf(
				"GPU length (%.0fmm) exceeds the case maximum (%.0fmm)",
				*gpuLength, *maxLength))
		}
	}

	// Cooler height and case clearance
	if cfg.Cooler != nil && cfg.Case != nil {
		height := coolerHeight(cfg.Cooler.Specs)
		maxHeight := cfg.Case.Specs.MaxCPUCoolerHeight
		if height != nil && maxHeight != nil && *height > *maxHeight {
			conflicts = append(conflicts, fmt.Sprintf(
				"cooler height (%.0fmm) exceeds the case maximum (%.0fmm)",
				*height, *maxHeight))
		}
	}

	// Storage interfaces and motherboard ports
	if len(cfg.Storage) > 0 && cfg.Motherboard != nil {
		mb := cfg.Motherboard.Specs
		m2Count := countInterface(cfg.Storage, "M.2")
		sataCount := countInterface(cfg.Storage, "SATA")

		if mb.M2Slots != nil && m2Count > *mb.M2Slots {
			conflicts = append(conflicts, fmt.Sprintf(
				"M.2 drive count (%d) exceeds the motherboard M.2 slots (%d)",
				m2Count, *mb.M2Slots))
		}
		if mb.SATAPorts != nil && sataCount > *mb.SATAPorts {
			conflicts = append(conflicts, fmt.Sprintf(
				"SATA drive count (%d) exceeds the motherboard SATA ports (%d)",
				sataCount, *mb.SATAPorts))
		}
	}

	// PSU wattage, hard rule
	if cfg.PSU != nil && cfg.CPU != nil && cfg.GPU != nil {
		wattage := cfg.PSU.Specs.Wattage
		cpuTdp := cfg.CPU.Specs.CPUTdp
		gpuTdp := cfg.GPU.Specs.GPUTdp
		if wattage != nil && cpuTdp != nil && gpuTdp != nil {
			estimated := *cpuTdp + *gpuTdp + ch.HardOverheadWatts
			if estimated > *wattage {
				conflicts = append(conflicts, fmt.Sprintf(
					"PSU wattage (%.0fW) is insufficient for the build (estimated %.0fW)",
					*wattage, estimated))
			}
		}
	}

	// PSU wattage, soft rule: draw with a lighter overhead against the
	// load ratio. Absent TDPs contribute nothing.
	if cfg.PSU != nil && cfg.PSU.Specs.Wattage != nil {
		draw := ch.WarnOverheadWatts
		if cfg.CPU != nil && cfg.CPU.Specs.CPUTdp != nil {
			draw += *cfg.CPU.Specs.CPUTdp
		}
		if cfg.GPU != nil && cfg.GPU.Specs.GPUTdp != nil {
			draw += *cfg.GPU.Specs.GPUTdp
		}
		wattage := *cfg.PSU.Specs.Wattage
		if draw > wattage*ch.WarnLoadRatio {
			warnings = append(warnings, fmt.Sprintf(
				"estimated draw is close to the PSU limit, a supply of at least %.0fW is recommended (current: %.0fW)",
				math.Ceil(draw/ch.WarnLoadRatio), wattage))
		}
	}

	// Mixed RAM speeds
	if len(cfg.RAM) > 1 {
		seen := map[int]bool{}
		for _, module := range cfg.RAM {
			if module.Specs.Speed != nil {
				seen[*module.Specs.Speed] = true
			}
		}
		if len(seen) > 1 {
			warnings = append(warnings,
				"RAM modules run at different speeds, which may impact performance")
		}
	}

	// GPU power connector and PSU modularity
	if cfg.GPU != nil && cfg.PSU != nil {
		connector := cfg.GPU.Specs.PowerConnector
		modular := cfg.PSU.Specs.Modular
		if connector != nil && *connector != "" && modular != nil && *modular == "Non" {
			warnings = append(warnings,
				"the GPU needs a dedicated power connector, a modular PSU is recommended")
		}
	}

	// Board and case form factor
	if cfg.Motherboard != nil && cfg.Case != nil {
		mbFF := cfg.Motherboard.Specs.MBFormFactor
		caseFF := cfg.Case.Specs.CaseFormFactor
		if mbFF != nil && caseFF != nil && !contains(ch.CaseFormFactors[*mbFF], *caseFF) {
			conflicts = append(conflicts, fmt.Sprintf(
				"motherboard form factor (%s) does not fit the case (%s)",
				*mbFF, *caseFF))
		}
	}

	return CompatibilityResult{
		IsCompatible:      len(conflicts) == 0,
		Conflicts:         conflicts,
		Warnings:          warnings,
		MissingComponents: missing,
	}
}

// missingComponents lists the unfilled required slots. The cooler is
// optional and never reported.
func missingComponents(cfg models.Configuration) []string {
	missing := []string{}
	if cfg.CPU == nil {
		missing = append(missing, "CPU")
	}
	if cfg.Motherboard == nil {
		missing = append(missing, "Motherboard")
	}
	if cfg.GPU == nil {
		missing = append(missing, "GPU")
	}
	if len(cfg.RAM) == 0 {
		missing = append(missing, "RAM")
	}
	if len(cfg.Storage) == 0 {
		missing = append(missing, "Storage")
	}
	if cfg.PSU == nil {
		missing = append(missing, "PSU")
	}
	if cfg.Case == nil {
		missing = append(missing, "Case")
	}
	return missing
}

// coolerHeight prefers the explicit height and falls back to the fan size
// when a listing only reports that.
func coolerHeight(specs models.HardwareSpecs) *float64 {
	if specs.Height != nil {
		return specs.Height
	}
	return specs.FanSize
}

func countInterface(drives []models.HardwareItem, iface string) int {
	n := 0
	for _, drive := range drives {
		if drive.Specs.Interface != nil && *drive.Specs.Interface == iface {
			n++
		}
	}
	return n
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
