package perf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerabuild/NeraBuild-API/internal/models"
)

// referenceBuild is an i7-13700K / RTX 4070 class build with hand-checked
// expected scores: cpu 58, gpu 42, ram 78, storage 55.
func referenceBuild() models.Configuration {
	return models.Configuration{
		CPU: &models.HardwareItem{
			Category: models.CategoryCPU,
			Price:    2899,
			Specs: models.HardwareSpecs{
				Cores:      models.Ptr(16),
				Threads:    models.Ptr(24),
				BaseClock:  models.Ptr(3.4),
				BoostClock: models.Ptr(5.4),
			},
		},
		GPU: &models.HardwareItem{
			Category: models.CategoryGPU,
			Price:    4299,
			Specs: models.HardwareSpecs{
				GPUMemory:     models.Ptr(12.0),
				GPUMemoryType: models.Ptr("GDDR6X"),
				GPUBoostClock: models.Ptr(2.48),
				GPUTdp:        models.Ptr(200.0),
			},
		},
		RAM: []models.HardwareItem{
			{Category: models.CategoryRAM, Price: 349, Specs: models.HardwareSpecs{
				RAMCapacity: models.Ptr(16), Speed: models.Ptr(3200),
			}},
			{Category: models.CategoryRAM, Price: 349, Specs: models.HardwareSpecs{
				RAMCapacity: models.Ptr(16), Speed: models.Ptr(3200),
			}},
		},
		Storage: []models.HardwareItem{
			{Category: models.CategoryStorage, Price: 799, Specs: models.HardwareSpecs{
				StorageCapacity: models.Ptr(1000),
				Type:            models.Ptr("SSD"),
				ReadSpeed:       models.Ptr(7000),
			}},
		},
	}
}

func TestScoreReferenceBuild(t *testing.T) {
	score := NewScorer().Score(referenceBuild())

	// cpu: 80*0.3 + 72*0.2 + 34*0.25 + 43.2*0.25 = 57.7 -> 58
	assert.Equal(t, 58, score.Details.CPUScore)
	// gpu: 60*0.2 + 100*0.15 + 49.6*0.3 + 0*0.1 = 41.88 -> 42
	assert.Equal(t, 42, score.Details.GPUScore)
	// ram: 64*0.6 + 100*0.4 = 78.4 -> 78
	assert.Equal(t, 78, score.Details.RAMScore)
	// storage: 10*0.4 + 100*0.3 + 70*0.3 = 55
	assert.Equal(t, 55, score.Details.StorageScore)

	// gaming: 11.6 + 25.2 + 11.7 + 2.75 = 51.25 -> 51
	assert.Equal(t, 51, score.GamingScore)
	// productivity: 29 + 8.4 + 19.5 + 2.75 = 59.65 -> 60
	assert.Equal(t, 60, score.ProductivityScore)
	// value: (51+60)/2 / (8695/10000) = 63.83 -> 64
	assert.Equal(t, 64, score.ValueScore)
}

func TestScoreIsIdempotent(t *testing.T) {
	scorer := NewScorer()
	cfg := referenceBuild()

	assert.Equal(t, scorer.Score(cfg), scorer.Score(cfg))
	assert.Equal(t, scorer.PredictGames(cfg), scorer.PredictGames(cfg))
}

func TestScoreEmptyBuild(t *testing.T) {
	score := NewScorer().Score(models.Configuration{})

	assert.Equal(t, PerformanceScore{}, score)
}

func TestScoreMissingCategoriesScoreZero(t *testing.T) {
	cfg := referenceBuild()
	cfg.GPU = nil
	cfg.Storage = nil

	score := NewScorer().Score(cfg)

	assert.Equal(t, 0, score.Details.GPUScore)
	assert.Equal(t, 0, score.Details.StorageScore)
	assert.Equal(t, 58, score.Details.CPUScore)
}

func TestScoreValueClampedAt100(t *testing.T) {
	cfg := referenceBuild()
	cfg.CPU.Price = 1
	cfg.GPU.Price = 1
	cfg.RAM = cfg.RAM[:1]
	cfg.RAM[0].Price = 1
	cfg.Storage[0].Price = 1

	score := NewScorer().Score(cfg)

	assert.Equal(t, 100, score.ValueScore)
}

func TestScoreZeroPriceYieldsZeroValue(t *testing.T) {
	cfg := referenceBuild()
	cfg.CPU.Price = 0
	cfg.GPU.Price = 0
	cfg.RAM[0].Price = 0
	cfg.RAM[1].Price = 0
	cfg.Storage[0].Price = 0

	score := NewScorer().Score(cfg)

	assert.Equal(t, 0, score.ValueScore)
	assert.Positive(t, score.GamingScore)
}

func TestScoreGPUTdpTerm(t *testing.T) {
	gpu := func(tdp *float64) *models.HardwareItem {
		return &models.HardwareItem{
			Category: models.CategoryGPU,
			Specs: models.HardwareSpecs{
				GPUMemoryType: models.Ptr("GDDR6"),
				GPUTdp:        tdp,
			},
		}
	}
	scorer := NewScorer()

	// Absent or zero TDP takes the neutral 50: 80*0.15 + 50*0.1 = 17
	absent := scorer.Score(models.Configuration{GPU: gpu(nil)})
	assert.Equal(t, 17, absent.Details.GPUScore)

	// TDP 100 scores min(100-50,100)=50 as well
	mid := scorer.Score(models.Configuration{GPU: gpu(models.Ptr(100.0))})
	assert.Equal(t, 17, mid.Details.GPUScore)

	// A 300W card loses points: 80*0.15 + (100-150)*0.1 = 7
	hot := scorer.Score(models.Configuration{GPU: gpu(models.Ptr(300.0))})
	assert.Equal(t, 7, hot.Details.GPUScore)
}

func TestPredictGamesReferenceBuild(t *testing.T) {
	games := NewScorer().PredictGames(referenceBuild())

	require.Len(t, games, 8)
	byName := map[string]GamePerformance{}
	for _, g := range games {
		byName[g.Game] = g
		assert.Equal(t, "1920x1080", g.Resolution)
	}

	// cpu 58, gpu 42: 60*(58*0.3+42*0.7)/100 = 28.08 -> 28
	assert.Equal(t, 28, byName["Cyberpunk 2077"].FPS)
	assert.Equal(t, "Low", byName["Cyberpunk 2077"].Quality)

	// 200*(29+21)/100 = 100
	assert.Equal(t, 100, byName["League of Legends"].FPS)
	assert.Equal(t, "High", byName["League of Legends"].Quality)

	// 300*(40.6+12.6)/100 = 159.6 -> 160
	assert.Equal(t, 160, byName["Minecraft"].FPS)
	assert.Equal(t, "Ultra", byName["Minecraft"].Quality)
}

func TestPredictGamesQualityBoundaries(t *testing.T) {
	// A CPU that scores exactly 100 drives CPU-only profiles, so the fps
	// equals the base fps and the tier boundaries can be hit exactly.
	cfg := models.Configuration{
		CPU: &models.HardwareItem{
			Category: models.CategoryCPU,
			Specs: models.HardwareSpecs{
				Cores:      models.Ptr(20),
				Threads:    models.Ptr(40),
				BaseClock:  models.Ptr(10.0),
				BoostClock: models.Ptr(12.5),
			},
		},
	}

	scorer := &Scorer{
		Weights: DefaultWeights(),
		Games: []GameProfile{
			{Name: "ultra edge", BaseFPS: 120, CPUWeight: 1, GPUWeight: 0},
			{Name: "high edge", BaseFPS: 80, CPUWeight: 1, GPUWeight: 0},
			{Name: "medium edge", BaseFPS: 60, CPUWeight: 1, GPUWeight: 0},
			{Name: "low", BaseFPS: 59, CPUWeight: 1, GPUWeight: 0},
		},
	}

	games := scorer.PredictGames(cfg)

	require.Len(t, games, 4)
	assert.Equal(t, 120, games[0].FPS)
	assert.Equal(t, "Ultra", games[0].Quality)
	assert.Equal(t, 80, games[1].FPS)
	assert.Equal(t, "High", games[1].Quality)
	assert.Equal(t, 60, games[2].FPS)
	assert.Equal(t, "Medium", games[2].Quality)
	assert.Equal(t, 59, games[3].FPS)
	assert.Equal(t, "Low", games[3].Quality)
}

func TestPredictGamesEmptyBuild(t *testing.T) {
	games := NewScorer().PredictGames(models.Configuration{})

	require.Len(t, games, 8)
	for _, g := range games {
		assert.Equal(t, 0, g.FPS)
		assert.Equal(t, "Low", g.Quality)
	}
}
