package captioner

import (
	"bytes"
	"context"
	"image"
	"math"
	"sort"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/echolens-labs/echolens/internal/core/domain"
	"github.com/echolens-labs/echolens/internal/core/ports"
)

// Heuristic analyzes images without any model: it samples pixels on a
// grid, extracts the dominant colors, and derives a caption from
// brightness and regional color distribution.
type Heuristic struct{}

var _ ports.ImageAnalyzer = (*Heuristic)(nil)

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

const (
	sampleGrid    = 64 // sample at most sampleGrid x sampleGrid pixels
	quantizeStep  = 32 // bucket size for dominant-color grouping
	topColorCount = 3
)

type regionStats struct {
	skyBlue       float64
	groundGreen   float64
	groundBlue    float64
	brightnessVar float64
}

func (h *Heuristic) Analyze(_ context.Context, data []byte) (domain.AnalysisResult, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return domain.AnalysisResult{
			Caption: "a beautiful scene captured in an image",
			Method:  "heuristic",
		}, nil
	}

	colors, stats := samplePixels(img)
	caption := describeScene(colors, stats)

	return domain.AnalysisResult{
		Caption: caption,
		Colors:  colors,
		Method:  "heuristic",
	}, nil
}

func samplePixels(img image.Image) ([]domain.DominantColor, regionStats) {
	bounds := img.Bounds()
	w, hgt := bounds.Dx(), bounds.Dy()
	if w == 0 || hgt == 0 {
		return nil, regionStats{}
	}

	stepX := w / sampleGrid
	if stepX < 1 {
		stepX = 1
	}
	stepY := hgt / sampleGrid
	if stepY < 1 {
		stepY = 1
	}

	buckets := make(map[[3]int]int)
	var total int
	var skyBlueSum, skyCount float64
	var groundGreenSum, groundBlueSum, groundCount float64
	var brightnessSum, brightnessSqSum float64

	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			r, g, b := int(r16>>8), int(g16>>8), int(b16>>8)
			total++

			key := [3]int{r / quantizeStep, g / quantizeStep, b / quantizeStep}
			buckets[key]++

			bright := float64(r+g+b) / 3
			brightnessSum += bright
			brightnessSqSum += bright * bright

			rel := y - bounds.Min.Y
			if rel < hgt/3 {
				skyBlueSum += float64(b)
				skyCount++
			} else if rel >= 2*hgt/3 {
				groundGreenSum += float64(g)
				groundBlueSum += float64(b)
				groundCount++
			}
		}
	}
	if total == 0 {
		return nil, regionStats{}
	}

	type bucketCount struct {
		key   [3]int
		count int
	}
	ranked := make([]bucketCount, 0, len(buckets))
	for key, count := range buckets {
		ranked = append(ranked, bucketCount{key, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].key[0] < ranked[j].key[0]
	})
	if len(ranked) > topColorCount {
		ranked = ranked[:topColorCount]
	}

	colors := make([]domain.DominantColor, 0, len(ranked))
	for _, bc := range ranked {
		colors = append(colors, domain.DominantColor{
			R:          bc.key[0]*quantizeStep + quantizeStep/2,
			G:          bc.key[1]*quantizeStep + quantizeStep/2,
			B:          bc.key[2]*quantizeStep + quantizeStep/2,
			Percentage: 100 * float64(bc.count) / float64(total),
		})
	}

	stats := regionStats{}
	if skyCount > 0 {
		stats.skyBlue = skyBlueSum / skyCount
	}
	if groundCount > 0 {
		stats.groundGreen = groundGreenSum / groundCount
		stats.groundBlue = groundBlueSum / groundCount
	}
	mean := brightnessSum / float64(total)
	stats.brightnessVar = math.Sqrt(brightnessSqSum/float64(total) - mean*mean)

	return colors, stats
}

// describeScene picks a caption from color and region cues, most specific
// rule first.
func describeScene(colors []domain.DominantColor, stats regionStats) string {
	var r, g, b int
	if len(colors) > 0 {
		r, g, b = colors[0].R, colors[0].G, colors[0].B
	} else {
		r, g, b = 128, 128, 128
	}
	brightness := float64(r+g+b) / 3
	saturation := float64(max3(r, g, b) - min3(r, g, b))

	switch {
	case (stats.skyBlue > 150 && stats.groundGreen > 130) || (stats.groundBlue > 140 && stats.groundGreen > 120):
		if brightness > 160 {
			return "serene natural landscape with bright sky and greenery"
		}
		return "tranquil nature scene with soft natural lighting"
	case stats.groundBlue > 160 && stats.skyBlue > 140:
		return "calm water scene reflecting the sky above"
	case stats.groundGreen > 150 && g > r && g > b:
		return "lush forest scene with abundant greenery"
	case r > 160 && brightness > 140 && saturation > 80:
		return "warm scenic view with golden lighting"
	case stats.brightnessVar > 80:
		if brightness > 150 {
			return "dynamic scene with dramatic lighting contrasts"
		}
		return "moody scene with atmospheric shadows and highlights"
	case brightness > 200 && saturation > 100:
		return "vibrant scene with bold colors and bright lighting"
	case brightness > 180:
		return "bright and cheerful scene with warm lighting"
	case brightness < 80:
		return "contemplative moment with subtle tones"
	case b > 150:
		return "serene composition with cool blue tones"
	default:
		return "balanced composition with natural lighting"
	}
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
