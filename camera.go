package tracer

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/corrigan-holt/whitted-tracer/internal/canvas"
	"github.com/corrigan-holt/whitted-tracer/internal/prim"
)

// DefaultSamplesPerPixel matches the original's supersampling default.
const DefaultSamplesPerPixel = 10

// Camera is a pinhole camera: its Transform places it in world space, and
// its field of view and aspect ratio determine the size of the virtual
// canvas one unit in front of it.
type Camera struct {
	HSize, VSize int
	FOV          float32
	Transform    prim.Matrix4

	PixelSize              float32
	HalfWidth, HalfHeight   float32

	// SamplesPerPixel controls supersampling; 1 disables jitter entirely
	// and shoots exactly one ray through the pixel center.
	SamplesPerPixel int

	// Depth bounds reflection/refraction recursion per ray; defaults to
	// MaxReflectionDepth.
	Depth int

	// ProgressWriter, when non-nil, receives a carriage-return-updated
	// "scanlines remaining" line as Render works.
	ProgressWriter io.Writer
}

// NewCamera constructs a Camera for an hsize x vsize image with the given
// field of view (in radians), aimed along -Z with an identity transform.
func NewCamera(hsize, vsize int, fov float32) *Camera {
	c := &Camera{
		HSize:           hsize,
		VSize:           vsize,
		FOV:             fov,
		Transform:       prim.Identity4(),
		SamplesPerPixel: DefaultSamplesPerPixel,
		Depth:           MaxReflectionDepth,
	}

	halfView := float32(math.Tan(float64(fov) / 2))
	aspect := float32(hsize) / float32(vsize)

	if aspect >= 1 {
		c.HalfWidth = halfView
		c.HalfHeight = halfView / aspect
	} else {
		c.HalfWidth = halfView * aspect
		c.HalfHeight = halfView
	}
	c.PixelSize = (c.HalfWidth * 2) / float32(hsize)

	return c
}

// SetTransform points the camera from "from" toward "to", with "up"
// defining the roll.
func (c *Camera) SetTransform(from, to prim.Point, up prim.Vector) {
	c.Transform = prim.ViewTransform(from, to, up)
}

// RayForPixel returns a ray from the camera through pixel (px, py). When
// SamplesPerPixel > 1, rnd jitters the sub-pixel offset; rnd must not be
// shared across goroutines.
func (c *Camera) RayForPixel(px, py int, rnd *rand.Rand) prim.Ray {
	var xoffset, yoffset float32
	if c.SamplesPerPixel == 1 || rnd == nil {
		xoffset = (float32(px) + 0.5) * c.PixelSize
		yoffset = (float32(py) + 0.5) * c.PixelSize
	} else {
		xoffset = (float32(px) + rnd.Float32()*0.5) * c.PixelSize
		yoffset = (float32(py) + rnd.Float32()*0.5) * c.PixelSize
	}

	worldX := c.HalfWidth - xoffset
	worldY := c.HalfHeight - yoffset

	inv := c.Transform.Inverse()
	pixel := inv.MulPoint(prim.NewPoint(worldX, worldY, -1))
	origin := inv.MulPoint(prim.Point{})
	direction := pixel.Sub(origin).Normalize()

	return prim.Ray{Origin: origin, Direction: direction}
}

// Render traces every pixel of the camera's canvas against world,
// fanning one goroutine out per scanline row. Each row computes into a
// local buffer and is handed off over a channel to a single draining
// goroutine that owns the Canvas, so no pixel is ever written from two
// goroutines at once.
func (c *Camera) Render(world *World) *canvas.Canvas {
	img := canvas.New(c.HSize, c.VSize)

	type row struct {
		y      int
		pixels []prim.Color
	}

	rows := make(chan row, c.VSize)
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))

	var wg sync.WaitGroup
	var progress int

	for y := 0; y < c.VSize; y++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(y int) {
			defer wg.Done()
			defer func() { <-sem }()

			rnd := rand.New(rand.NewSource(int64(y) + 1))
			pixels := make([]prim.Color, c.HSize)
			for x := 0; x < c.HSize; x++ {
				pixels[x] = c.colorForPixel(world, x, y, rnd)
			}
			rows <- row{y: y, pixels: pixels}
		}(y)
	}

	go func() {
		wg.Wait()
		close(rows)
	}()

	for r := range rows {
		for x, col := range r.pixels {
			_ = img.Write(x, r.y, col)
		}
		if c.ProgressWriter != nil {
			progress++
			fmt.Fprintf(c.ProgressWriter, "\rScanlines remaining: %d  ", c.VSize-progress)
		}
	}

	return img
}

func (c *Camera) colorForPixel(world *World, x, y int, rnd *rand.Rand) prim.Color {
	total := prim.Black
	for i := 0; i < c.SamplesPerPixel; i++ {
		ray := c.RayForPixel(x, y, rnd)
		total = total.Add(world.ColorAt(ray, c.Depth))
	}
	return total.Scale(1 / float32(c.SamplesPerPixel))
}
