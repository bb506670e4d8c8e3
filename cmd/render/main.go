// The render command renders a fixed demonstration scene to an image
// file, optionally dropping into an interactive shell for repositioning
// the camera between renders.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ergochat/readline"

	"github.com/corrigan-holt/whitted-tracer/internal/light"
	"github.com/corrigan-holt/whitted-tracer/internal/pattern"
	"github.com/corrigan-holt/whitted-tracer/internal/prim"
	"github.com/corrigan-holt/whitted-tracer/internal/shape"
	tracer "github.com/corrigan-holt/whitted-tracer"
)

var (
	outFile     = flag.String("out", "render.png", "image filename to write (.ppm, .png, or .bmp)")
	width       = flag.Int("width", 1000, "image width in pixels")
	height      = flag.Int("height", 1000, "image height in pixels")
	samples     = flag.Int("samples", tracer.DefaultSamplesPerPixel, "samples per pixel")
	depth       = flag.Int("depth", tracer.MaxReflectionDepth, "max reflection/refraction recursion depth")
	interactive = flag.Bool("interactive", false, "drop into an interactive camera shell instead of rendering once")
)

func main() {
	flag.Parse()

	world := buildScene()
	cam := tracer.NewCamera(*width, *height, math.Pi/3)
	cam.SamplesPerPixel = *samples
	cam.Depth = *depth
	cam.SetTransform(prim.NewPoint(0, 1.5, -5), prim.NewPoint(0, 1, 0), prim.NewVector(0, 1, 0))
	cam.ProgressWriter = os.Stderr

	if *interactive {
		runShell(world, cam)
		return
	}

	if err := renderAndSave(world, cam, *outFile); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *outFile)
}

func renderAndSave(world *tracer.World, cam *tracer.Camera, path string) error {
	img := cam.Render(world)
	if err := img.Save(path); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// buildScene assembles the demonstration scene: a checkered floor, a
// rotated-backdrop plane, and four patterned/solid spheres under a
// single point light.
func buildScene() *tracer.World {
	floor := shape.NewPlane()
	floor.Material().Pattern = pattern.NewCheckers(prim.RGB(1, 0, 0), prim.Black)

	backdrop := shape.NewPlane()
	backdrop.Material().Color = prim.RGB(1, 0.9, 0.9)
	backdrop.Material().Specular = 0
	backdrop.Material().Pattern = pattern.NewLinearGradient(prim.RGB(1, 0, 0.1), prim.RGB(0, 1, 0.1))
	backdrop.SetTransform(prim.Identity4().RotateX(math.Pi / 2).Translate(prim.NewVector(0, 0, 10)))

	middlePattern := pattern.NewRing(prim.RGB(1, 0, 0.1), prim.RGB(0, 1, 0.1))
	middlePattern.SetTransform(prim.Identity4().RotateX(math.Pi / 2).Scale(prim.NewVector(0.1, 0.1, 0.1)))
	middle := shape.NewSphere()
	middle.Material().Color = prim.RGB(0.1, 1, 0.5)
	middle.Material().Diffuse = 0.7
	middle.Material().Specular = 0.3
	middle.Material().Pattern = middlePattern
	middle.SetTransform(prim.Identity4().Translate(prim.NewVector(-0.5, 1, 0.5)))

	right := shape.NewSphere()
	right.Material().Color = prim.RGB(0.5, 1, 0.1)
	right.Material().Diffuse = 0.7
	right.Material().Specular = 0.3
	right.Material().Pattern = pattern.NewLinearGradient(prim.RGB(1, 0, 0), prim.RGB(0, 0, 1))
	right.SetTransform(prim.Identity4().Scale(prim.NewVector(0.5, 0.5, 0.5)).Translate(prim.NewVector(1.5, 0.5, -0.5)))

	left := shape.NewSphere()
	left.Material().Color = prim.RGB(1, 0.8, 0.1)
	left.Material().Diffuse = 0.7
	left.Material().Specular = 0.3
	left.SetTransform(prim.Identity4().Scale(prim.NewVector(0.33, 0.33, 0.33)).Translate(prim.NewVector(-1.5, 0.33, -0.75)))

	left2 := shape.NewSphere()
	left2.Material().Color = prim.RGB(0.420, 0.69, 0.2137)
	left2.Material().Diffuse = 1.0
	left2.Material().Specular = 0.2
	left2.SetTransform(prim.Identity4().Scale(prim.NewVector(0.33, 0.33, 0.33)).Translate(prim.NewVector(-0.5, 0, -1.75)))

	lightSource := light.PointLight{Position: prim.NewPoint(-10, 10, -10), Intensity: prim.White}

	return &tracer.World{
		Light:   lightSource,
		Objects: []shape.Shape{floor, backdrop, middle, right, left, left2},
	}
}

// Command is one interactive-shell verb.
type Command struct {
	Symbol   string
	Aliases  []string
	HelpText string
	Run      func(st *shellState) error
}

type shellState struct {
	args   []string
	world  *tracer.World
	cam    *tracer.Camera
	from   prim.Point
	to     prim.Point
	up     prim.Vector
	outDir string
}

var errQuit = errors.New("quit")

// runShell drives the camera interactively: the user repositions it
// (:from, :to), adjusts sampling (:samples), and re-renders (:render)
// without restarting the process.
func runShell(world *tracer.World, cam *tracer.Camera) {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:       "render> ",
		HistoryFile:  shellHistoryFilePath(),
		HistoryLimit: 1000,
	})
	if err != nil {
		log.Fatalf("readline init error: %v", err)
	}

	st := &shellState{
		world:  world,
		cam:    cam,
		from:   prim.NewPoint(0, 1.5, -5),
		to:     prim.NewPoint(0, 1, 0),
		up:     prim.NewVector(0, 1, 0),
		outDir: ".",
	}

	commands, lookup := registerCommands()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return
			}
			log.Fatalf("readline error: %v", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] != ':' {
			fmt.Printf("unrecognized input %q; type :help for commands\n", line)
			continue
		}

		args := strings.Fields(line)
		cmd := lookup[args[0]]
		if cmd == nil {
			fmt.Printf("unknown command: %v\n", args[0])
			continue
		}
		st.args = args[1:]
		if err := cmd.Run(st); err != nil {
			if errors.Is(err, errQuit) {
				return
			}
			fmt.Printf("command error: %v\n", err)
		}
	}
}

func registerCommands() ([]*Command, map[string]*Command) {
	var commands []*Command
	lookup := make(map[string]*Command)

	register := func(c *Command) {
		commands = append(commands, c)
		lookup[c.Symbol] = c
		for _, alias := range c.Aliases {
			lookup[alias] = c
		}
	}

	register(&Command{
		Symbol: ":from", Aliases: []string{":f"},
		HelpText: ":from <x> <y> <z> - move the camera eye point",
		Run: func(st *shellState) error {
			p, err := parsePoint(st.args)
			if err != nil {
				return err
			}
			st.from = p
			st.cam.SetTransform(st.from, st.to, st.up)
			return nil
		},
	})
	register(&Command{
		Symbol: ":to", Aliases: []string{":t"},
		HelpText: ":to <x> <y> <z> - point the camera at a new target",
		Run: func(st *shellState) error {
			p, err := parsePoint(st.args)
			if err != nil {
				return err
			}
			st.to = p
			st.cam.SetTransform(st.from, st.to, st.up)
			return nil
		},
	})
	register(&Command{
		Symbol: ":samples", Aliases: []string{":s"},
		HelpText: ":samples <n> - set samples per pixel",
		Run: func(st *shellState) error {
			if len(st.args) != 1 {
				return errors.New("usage: :samples <n>")
			}
			n, err := strconv.Atoi(st.args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid sample count %q", st.args[0])
			}
			st.cam.SamplesPerPixel = n
			return nil
		},
	})
	register(&Command{
		Symbol: ":render", Aliases: []string{":r"},
		HelpText: ":render <filename> - render to a file",
		Run: func(st *shellState) error {
			if len(st.args) != 1 {
				return errors.New("usage: :render <filename>")
			}
			path := filepath.Join(st.outDir, st.args[0])
			if err := renderAndSave(st.world, st.cam, path); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	})
	register(&Command{
		Symbol: ":help", Aliases: []string{":h"},
		HelpText: ":help - print this message",
		Run: func(st *shellState) error {
			for _, c := range commands {
				fmt.Printf("  %-24s %s\n", c.Symbol, c.HelpText)
			}
			return nil
		},
	})
	register(&Command{
		Symbol: ":quit", Aliases: []string{":q"},
		HelpText: ":quit - exit the shell",
		Run: func(st *shellState) error {
			return errQuit
		},
	})

	return commands, lookup
}

func parsePoint(args []string) (prim.Point, error) {
	if len(args) != 3 {
		return prim.Point{}, errors.New("usage: <x> <y> <z>")
	}
	var v [3]float64
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return prim.Point{}, fmt.Errorf("invalid coordinate %q: %w", a, err)
		}
		v[i] = f
	}
	return prim.NewPoint(float32(v[0]), float32(v[1]), float32(v[2])), nil
}

func shellHistoryFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("user home dir error: %v\n", err)
		return ""
	}
	return filepath.Join(home, ".render_history")
}
