package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/stack-tower/internal/config"
)

func block(x, w float64) Block {
	return Block{X: x, Y: 592, W: w, H: 28}
}

func TestPlacePerfectSnaps(t *testing.T) {
	cfg := config.DefaultTowerConfig()

	p := Place(block(120, 160), block(123, 160), 0, cfg)

	assert.Equal(t, OutcomePerfect, p.Outcome)
	assert.Equal(t, 120.0, p.Landed.X)
	assert.Equal(t, 160.0, p.Landed.W)
	assert.Equal(t, 1, p.Combo)
	assert.Equal(t, 60, p.Points)
	assert.Nil(t, p.Piece)
	assert.False(t, p.Grown)
}

func TestPlacePerfectAtThreshold(t *testing.T) {
	cfg := config.DefaultTowerConfig()

	p := Place(block(120, 160), block(115, 160), 0, cfg)
	assert.Equal(t, OutcomePerfect, p.Outcome, "offset equal to the threshold is perfect")
}

func TestPlaceComboGrowth(t *testing.T) {
	cfg := config.DefaultTowerConfig()

	tests := []struct {
		name      string
		top       Block
		movingX   float64
		comboIn   int
		wantX     float64
		wantW     float64
		wantPoint int
	}{
		{"combo 3 grows by 6", block(120, 160), 121, 2, 117, 166, 80},
		{"growth capped at 20", block(100, 160), 100, 14, 90, 180, 200},
		{"left edge clamps position", block(0, 160), 2, 4, 0, 170, 100},
		{"right edge clamps position", block(240, 160), 242, 9, 220, 180, 150},
		{"max width caps growth", block(100, 195), 100, 9, 97.5, 200, 150},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Place(tc.top, Block{X: tc.movingX, Y: 562, W: tc.top.W, H: 28}, tc.comboIn, cfg)
			require.Equal(t, OutcomePerfect, p.Outcome)
			assert.InDelta(t, tc.wantX, p.Landed.X, 1e-9)
			assert.InDelta(t, tc.wantW, p.Landed.W, 1e-9)
			assert.Equal(t, tc.wantPoint, p.Points)
			assert.True(t, p.Grown)
		})
	}
}

func TestPlaceTrimRightExcess(t *testing.T) {
	cfg := config.DefaultTowerConfig()

	p := Place(block(120, 160), block(130, 160), 3, cfg)

	assert.Equal(t, OutcomeTrim, p.Outcome)
	assert.Equal(t, 130.0, p.Landed.X)
	assert.Equal(t, 150.0, p.Landed.W)
	require.NotNil(t, p.Piece)
	assert.Equal(t, 280.0, p.Piece.X)
	assert.Equal(t, 10.0, p.Piece.W)
	assert.Equal(t, 28.0, p.Piece.H)
	assert.True(t, p.Good, "offset 10 is within the good threshold")
	assert.Equal(t, 10, p.Points)
	assert.Equal(t, 0, p.Combo)
}

func TestPlaceTrimLeftExcess(t *testing.T) {
	cfg := config.DefaultTowerConfig()

	p := Place(block(120, 160), Block{X: 100, Y: 562, W: 160, H: 28, Color: 4}, 0, cfg)

	assert.Equal(t, OutcomeTrim, p.Outcome)
	assert.Equal(t, 120.0, p.Landed.X)
	assert.Equal(t, 140.0, p.Landed.W)
	require.NotNil(t, p.Piece)
	assert.Equal(t, 100.0, p.Piece.X)
	assert.Equal(t, 20.0, p.Piece.W)
	assert.Equal(t, 4, p.Piece.Color)
	assert.False(t, p.Good)
}

func TestPlaceTrimFatal(t *testing.T) {
	cfg := config.DefaultTowerConfig()

	p := Place(block(120, 160), block(270, 160), 0, cfg)

	assert.Equal(t, OutcomeTrimFatal, p.Outcome)
	assert.True(t, p.Outcome.Terminal())
	assert.Equal(t, 10.0, p.Landed.W)
	assert.Equal(t, 10, p.Points)
}

func TestPlaceMiss(t *testing.T) {
	cfg := config.DefaultTowerConfig()

	p := Place(block(100, 160), block(300, 50), 5, cfg)

	assert.Equal(t, OutcomeMiss, p.Outcome)
	assert.True(t, p.Outcome.Terminal())
	require.NotNil(t, p.Piece)
	assert.Equal(t, 300.0, p.Piece.X)
	assert.Equal(t, 50.0, p.Piece.W)
	assert.Equal(t, 0, p.Combo)
	assert.Equal(t, 0, p.Points)
}

func TestPlaceTouchingEdgesIsMiss(t *testing.T) {
	cfg := config.DefaultTowerConfig()

	p := Place(block(100, 160), block(260, 160), 0, cfg)
	assert.Equal(t, OutcomeMiss, p.Outcome)
}

func TestPlaceBounds(t *testing.T) {
	cfg := config.DefaultTowerConfig()
	rng := NewRNG(42)

	for i := 0; i < 5000; i++ {
		w := rng.Range(cfg.Blocks.MinWidth, cfg.Blocks.MaxWidth)
		top := block(rng.Range(0, cfg.Frame.Width-w), w)
		moving := block(rng.Range(-w, cfg.Frame.Width), w)
		combo := int(rng.Range(0, 40))

		p := Place(top, moving, combo, cfg)
		if p.Outcome == OutcomeMiss {
			continue
		}
		require.GreaterOrEqual(t, p.Landed.W, 0.0)
		require.LessOrEqual(t, p.Landed.W, cfg.Blocks.MaxWidth)
		require.GreaterOrEqual(t, p.Landed.X, 0.0)
		require.LessOrEqual(t, p.Landed.X, cfg.Frame.Width-p.Landed.W+1e-9)

		if p.Outcome == OutcomePerfect {
			require.Equal(t, combo+1, p.Combo)
			if !p.Grown {
				require.Equal(t, top.X, p.Landed.X)
				require.Equal(t, top.W, p.Landed.W)
			}
		} else {
			require.Equal(t, 0, p.Combo)
		}
	}
}
