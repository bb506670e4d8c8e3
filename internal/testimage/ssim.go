// Package testimage provides statistical image comparison for tests that
// render a jittered scene, where two renders of the same inputs are only
// expected to be similar, not pixel-identical.
package testimage

import (
	"errors"
	"image"
	"math"
	"runtime"
	"sync"
)

const (
	windowSize = 11
	windowArea = windowSize * windowSize

	k1 = 0.01
	k2 = 0.03

	c1 = k1 * k1
	c2 = k2 * k2
)

// SSIM computes the mean structural similarity index between two images,
// sliding a Gaussian-weighted window over every valid position and
// averaging the per-window score across all three color channels.
//
// See https://www.cns.nyu.edu/pub/eero/wang03-reprint.pdf.
func SSIM(img1, img2 image.Image) (float64, error) {
	if img1.Bounds() != img2.Bounds() {
		return 0, errors.New("testimage: images are not the same size")
	}
	if img1.Bounds().Dx() < windowSize || img1.Bounds().Dy() < windowSize {
		return 0, errors.New("testimage: images are smaller than the comparison window")
	}

	rgb1 := convertImageToRGB(img1)
	rgb2 := convertImageToRGB(img2)
	kernel := gaussianKernel(1.5)

	type columnResult struct {
		sum float64
		n   int
	}

	cols := len(rgb1) - windowSize + 1
	results := make(chan columnResult, cols)
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))

	var wg sync.WaitGroup
	for x := 0; x < cols; x++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(x int) {
			defer wg.Done()
			defer func() { <-sem }()

			var sum float64
			n := 0
			for y := 0; y <= len(rgb1[x])-windowSize; y++ {
				sum += windowSSIM(rgb1, rgb2, x, y, kernel)
				n++
			}
			results <- columnResult{sum: sum, n: n}
		}(x)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var total float64
	var n int
	for r := range results {
		total += r.sum
		n += r.n
	}
	if n == 0 {
		return 0, errors.New("testimage: no comparison windows fit in the images")
	}

	return total / float64(n), nil
}

// channelStats accumulates the weighted mean, variance, and cross-image
// covariance for one color channel over a window, in a single pass.
type channelStats struct {
	mean1, mean2         float64
	var1, var2, covar    float64
	sqSum1, sqSum2, prod float64
}

func (s *channelStats) add(w, v1, v2 float64) {
	s.mean1 += w * v1
	s.mean2 += w * v2
	s.sqSum1 += w * v1 * v1
	s.sqSum2 += w * v2 * v2
	s.prod += w * v1 * v2
}

func (s *channelStats) finish() {
	s.var1 = s.sqSum1 - s.mean1*s.mean1
	s.var2 = s.sqSum2 - s.mean2*s.mean2
	s.covar = s.prod - s.mean1*s.mean2
}

func (s *channelStats) ssim() float64 {
	numerator := (2*s.mean1*s.mean2 + c1) * (2*s.covar + c2)
	denominator := (s.mean1*s.mean1 + s.mean2*s.mean2 + c1) * (s.var1 + s.var2 + c2)
	return numerator / denominator
}

// windowSSIM scores one windowSize x windowSize window starting at
// (xstart, ystart), weighting each sample by the Gaussian kernel so pixels
// near the window's center count more than pixels near its edge.
func windowSSIM(img1, img2 [][]rgb, xstart, ystart int, kernel []float64) float64 {
	var red, green, blue channelStats

	for kx := 0; kx < windowSize; kx++ {
		for ky := 0; ky < windowSize; ky++ {
			w := kernel[kx*windowSize+ky]
			p1 := img1[xstart+kx][ystart+ky]
			p2 := img2[xstart+kx][ystart+ky]

			red.add(w, float64(p1.r), float64(p2.r))
			green.add(w, float64(p1.g), float64(p2.g))
			blue.add(w, float64(p1.b), float64(p2.b))
		}
	}

	red.finish()
	green.finish()
	blue.finish()

	return (red.ssim() + green.ssim() + blue.ssim()) / 3
}

// gaussianKernel returns a windowSize x windowSize Gaussian kernel
// (row-major, flattened) centered on the window and normalized to sum to
// one, so it can be used directly as a weighted average.
func gaussianKernel(stddev float64) []float64 {
	kernel := make([]float64, windowArea)
	center := float64(windowSize-1) / 2
	total := 0.0
	for kx := 0; kx < windowSize; kx++ {
		for ky := 0; ky < windowSize; ky++ {
			dx := float64(kx) - center
			dy := float64(ky) - center
			v := math.Exp(-(dx*dx + dy*dy) / (2 * stddev * stddev))
			kernel[kx*windowSize+ky] = v
			total += v
		}
	}
	for i := range kernel {
		kernel[i] /= total
	}
	return kernel
}

type rgb struct {
	r, g, b uint32
}

func convertImageToRGB(img image.Image) [][]rgb {
	bounds := img.Bounds()
	out := make([][]rgb, bounds.Dx())
	for x := range out {
		out[x] = make([]rgb, bounds.Dy())
		for y := range out[x] {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out[x][y] = rgb{r, g, b}
		}
	}
	return out
}
