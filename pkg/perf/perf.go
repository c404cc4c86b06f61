// Package perf rates a build with normalized performance scores and
// predicts per-game frame rates. Like compat, it is pure and total: a
// partial build scores low instead of failing.
package perf

import (
	"math"

	"github.com/nerabuild/NeraBuild-API/internal/models"
)

// PerformanceScore is the rating of a build. The top-level scores are
// weighted sums of the per-category details; only ValueScore is clamped.
type PerformanceScore struct {
	GamingScore       int          `json:"gamingScore"`
	ProductivityScore int          `json:"productivityScore"`
	ValueScore        int          `json:"valueScore"`
	Details           ScoreDetails `json:"details"`
}

// ScoreDetails holds the per-category sub-scores before weighting.
type ScoreDetails struct {
	CPUScore     int `json:"cpuScore"`
	GPUScore     int `json:"gpuScore"`
	RAMScore     int `json:"ramScore"`
	StorageScore int `json:"storageScore"`
}

// GamePerformance is the predicted frame rate for one title.
type GamePerformance struct {
	Game       string `json:"game"`
	FPS        int    `json:"fps"`
	Quality    string `json:"quality"`
	Resolution string `json:"resolution"`
}

// GameProfile describes how a title weighs CPU against GPU. CPUWeight and
// GPUWeight sum to 1.
type GameProfile struct {
	Name      string
	BaseFPS   float64
	CPUWeight float64
	GPUWeight float64
}

// Weights are the scoring constants. They are data, not code, so the
// model can be tuned without touching the formulas.
type Weights struct {
	CPUCores      float64
	CPUThreads    float64
	CPUBaseClock  float64
	CPUBoostClock float64

	GPUMemory     float64
	GPUMemoryType float64
	GPUBoostClock float64
	GPUTdp        float64

	RAMCapacity float64
	RAMSpeed    float64

	StorageCapacity  float64
	StorageType      float64
	StorageReadSpeed float64

	GamingCPU     float64
	GamingGPU     float64
	GamingRAM     float64
	GamingStorage float64

	ProductivityCPU     float64
	ProductivityGPU     float64
	ProductivityRAM     float64
	ProductivityStorage float64
}

// DefaultWeights returns the stock weight table.
func DefaultWeights() Weights {
	return Weights{
		CPUCores:      0.3,
		CPUThreads:    0.2,
		CPUBaseClock:  0.25,
		CPUBoostClock: 0.25,

		GPUMemory:     0.2,
		GPUMemoryType: 0.15,
		GPUBoostClock: 0.3,
		GPUTdp:        0.1,

		RAMCapacity: 0.6,
		RAMSpeed:    0.4,

		StorageCapacity:  0.4,
		StorageType:      0.3,
		StorageReadSpeed: 0.3,

		GamingCPU:     0.2,
		GamingGPU:     0.6,
		GamingRAM:     0.15,
		GamingStorage: 0.05,

		ProductivityCPU:     0.5,
		ProductivityGPU:     0.2,
		ProductivityRAM:     0.25,
		ProductivityStorage: 0.05,
	}
}

// DefaultGames returns the stock title table.
func DefaultGames() []GameProfile {
	return []GameProfile{
		{Name: "Cyberpunk 2077", BaseFPS: 60, CPUWeight: 0.3, GPUWeight: 0.7},
		{Name: "Red Dead Redemption 2", BaseFPS: 70, CPUWeight: 0.25, GPUWeight: 0.75},
		{Name: "Assassin's Creed Valhalla", BaseFPS: 65, CPUWeight: 0.35, GPUWeight: 0.65},
		{Name: "Call of Duty: Warzone", BaseFPS: 80, CPUWeight: 0.4, GPUWeight: 0.6},
		{Name: "Fortnite", BaseFPS: 120, CPUWeight: 0.3, GPUWeight: 0.7},
		{Name: "League of Legends", BaseFPS: 200, CPUWeight: 0.5, GPUWeight: 0.5},
		{Name: "Minecraft", BaseFPS: 300, CPUWeight: 0.7, GPUWeight: 0.3},
		{Name: "GTA V", BaseFPS: 90, CPUWeight: 0.3, GPUWeight: 0.7},
	}
}

// Scorer computes performance scores over a build.
type Scorer struct {
	Weights Weights
	Games   []GameProfile
}

// NewScorer returns a Scorer with the stock weights and title table.
func NewScorer() *Scorer {
	return &Scorer{
		Weights: DefaultWeights(),
		Games:   DefaultGames(),
	}
}

// Score rates the build. Unselected categories contribute a zero
// sub-score; a build with a zero total price gets a zero value score
// rather than a division blowup.
func (s *Scorer) Score(cfg models.Configuration) PerformanceScore {
	cpu := s.cpuScore(cfg.CPU)
	gpu := s.gpuScore(cfg.GPU)
	ram := s.ramScore(cfg.RAM)
	storage := s.storageScore(cfg.Storage)

	w := s.Weights
	gaming := round(cpu*w.GamingCPU + gpu*w.GamingGPU + ram*w.GamingRAM + storage*w.GamingStorage)
	productivity := round(cpu*w.ProductivityCPU + gpu*w.ProductivityGPU + ram*w.ProductivityRAM + storage*w.ProductivityStorage)

	value := 0
	if total := cfg.TotalPrice(); total > 0 {
		value = round(float64(gaming+productivity) / 2 / (total / 10000))
		if value > 100 {
			value = 100
		}
	}

	return PerformanceScore{
		GamingScore:       gaming,
		ProductivityScore: productivity,
		ValueScore:        value,
		Details: ScoreDetails{
			CPUScore:     int(cpu),
			GPUScore:     int(gpu),
			RAMScore:     int(ram),
			StorageScore: int(storage),
		},
	}
}

// PredictGames estimates frame rates for the title table at 1080p.
// Quality tiers are inclusive at their lower bound: 120 fps is Ultra,
// 80 is High, 60 is Medium.
func (s *Scorer) PredictGames(cfg models.Configuration) []GamePerformance {
	cpu := s.cpuScore(cfg.CPU)
	gpu := s.gpuScore(cfg.GPU)

	out := make([]GamePerformance, 0, len(s.Games))
	for _, game := range s.Games {
		gameScore := (cpu*game.CPUWeight + gpu*game.GPUWeight) / 100
		fps := round(game.BaseFPS * gameScore)

		quality := "Low"
		switch {
		case fps >= 120:
			quality = "Ultra"
		case fps >= 80:
			quality = "High"
		case fps >= 60:
			quality = "Medium"
		}

		out = append(out, GamePerformance{
			Game:       game.Name,
			FPS:        fps,
			Quality:    quality,
			Resolution: "1920x1080",
		})
	}
	return out
}

func (s *Scorer) cpuScore(cpu *models.HardwareItem) float64 {
	if cpu == nil {
		return 0
	}
	specs := cpu.Specs
	w := s.Weights

	score := capped(floatOf(specs.Cores)*5)*w.CPUCores +
		capped(floatOf(specs.Threads)*3)*w.CPUThreads +
		capped(deref(specs.BaseClock)*10)*w.CPUBaseClock +
		capped(deref(specs.BoostClock)*8)*w.CPUBoostClock
	return float64(round(score))
}

func (s *Scorer) gpuScore(gpu *models.HardwareItem) float64 {
	if gpu == nil {
		return 0
	}
	specs := gpu.Specs
	w := s.Weights

	memoryType := ""
	if specs.GPUMemoryType != nil {
		memoryType = *specs.GPUMemoryType
	}

	// Lower TDP scores higher; no floor below the computed value.
	tdpScore := 50.0
	if tdp := deref(specs.GPUTdp); tdp > 0 {
		tdpScore = math.Min(100-tdp/2, 100)
	}

	score := capped(deref(specs.GPUMemory)*5)*w.GPUMemory +
		memoryTypeTier(memoryType)*w.GPUMemoryType +
		capped(deref(specs.GPUBoostClock)*20)*w.GPUBoostClock +
		tdpScore*w.GPUTdp
	return float64(round(score))
}

func (s *Scorer) ramScore(modules []models.HardwareItem) float64 {
	if len(modules) == 0 {
		return 0
	}
	totalCapacity, totalSpeed := 0, 0
	for _, module := range modules {
		totalCapacity += intOf(module.Specs.RAMCapacity)
		totalSpeed += intOf(module.Specs.Speed)
	}
	avgSpeed := float64(totalSpeed) / float64(len(modules))

	w := s.Weights
	score := capped(float64(totalCapacity)*2)*w.RAMCapacity +
		capped(avgSpeed/10)*w.RAMSpeed
	return float64(round(score))
}

func (s *Scorer) storageScore(drives []models.HardwareItem) float64 {
	if len(drives) == 0 {
		return 0
	}
	totalCapacity, totalRead, ssdCount := 0, 0, 0
	for _, drive := range drives {
		totalCapacity += intOf(drive.Specs.StorageCapacity)
		totalRead += intOf(drive.Specs.ReadSpeed)
		if drive.Specs.Type != nil && *drive.Specs.Type == "SSD" {
			ssdCount++
		}
	}
	avgRead := float64(totalRead) / float64(len(drives))
	ssdShare := float64(ssdCount) / float64(len(drives))

	w := s.Weights
	score := capped(float64(totalCapacity)/100)*w.StorageCapacity +
		ssdShare*100*w.StorageType +
		capped(avgRead/100)*w.StorageReadSpeed
	return float64(round(score))
}

func memoryTypeTier(memoryType string) float64 {
	switch memoryType {
	case "GDDR6X":
		return 100
	case "GDDR6":
		return 80
	case "GDDR5X":
		return 60
	default:
		return 40
	}
}

func capped(v float64) float64 {
	return math.Min(v, 100)
}

func round(v float64) int {
	return int(math.Round(v))
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func floatOf(v *int) float64 {
	if v == nil {
		return 0
	}
	return float64(*v)
}

func intOf(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
