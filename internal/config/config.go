// Package config loads host settings and startup patterns from HCL files.
//
// A file has optional grid and host blocks plus any number of spawn blocks:
//
//	grid {
//	  width  = 128
//	  height = 128
//	  fill   = "random"
//	}
//
//	spawn "glider" {
//	  row = floor(grid.height / 2)
//	  col = 10
//	}
//
// Spawn expressions may refer to grid.width and grid.height, which hold the
// dimensions in effect once command-line overrides are applied.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Fill modes accepted by grid.fill.
const (
	FillRandom = "random"
	FillEmpty  = "empty"
)

// Kind names a pattern placed at startup.
type Kind string

const (
	KindCell   Kind = "cell"
	KindGlider Kind = "glider"
	KindPulsar Kind = "pulsar"
)

// Spawn is a single pattern placement.
type Spawn struct {
	Kind Kind
	Row  int
	Col  int
}

// File holds the decoded settings. Zero values mean "not set".
type File struct {
	Width  uint32
	Height uint32
	Seed   *int64
	Fill   string

	TPS           int
	Scale         int
	TicksPerFrame int

	name   string
	spawns hcl.Body
}

type gridBlock struct {
	Width  int    `hcl:"width,optional"`
	Height int    `hcl:"height,optional"`
	Seed   *int64 `hcl:"seed,optional"`
	Fill   string `hcl:"fill,optional"`
}

type hostBlock struct {
	TPS           int `hcl:"tps,optional"`
	Scale         int `hcl:"scale,optional"`
	TicksPerFrame int `hcl:"ticks_per_frame,optional"`
}

type rootFile struct {
	Grid   *gridBlock `hcl:"grid,block"`
	Host   *hostBlock `hcl:"host,block"`
	Remain hcl.Body   `hcl:",remain"`
}

type spawnBlock struct {
	Kind string `hcl:"kind,label"`
	Row  int    `hcl:"row"`
	Col  int    `hcl:"col"`
}

type spawnFile struct {
	Spawns []spawnBlock `hcl:"spawn,block"`
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source. Spawn blocks are kept unevaluated until Spawns
// is called with the final grid dimensions.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root rootFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	// Reject unknown blocks now; spawn expressions are evaluated later.
	schema, _ := gohcl.ImpliedBodySchema(&spawnFile{})
	if _, diags := root.Remain.Content(schema); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	f := &File{name: filename, spawns: root.Remain}
	if g := root.Grid; g != nil {
		if g.Width < 0 || g.Height < 0 {
			return nil, fmt.Errorf("%s: grid dimensions must not be negative, got %dx%d", filename, g.Width, g.Height)
		}
		switch g.Fill {
		case "", FillRandom, FillEmpty:
		default:
			return nil, fmt.Errorf("%s: grid.fill must be %q or %q, got %q", filename, FillRandom, FillEmpty, g.Fill)
		}
		f.Width, f.Height = uint32(g.Width), uint32(g.Height)
		f.Seed, f.Fill = g.Seed, g.Fill
	}
	if h := root.Host; h != nil {
		f.TPS, f.Scale, f.TicksPerFrame = h.TPS, h.Scale, h.TicksPerFrame
	}
	return f, nil
}

// Spawns evaluates the spawn blocks against a grid of the given size.
func (f *File) Spawns(width, height uint32) ([]Spawn, error) {
	if f.spawns == nil {
		return nil, nil
	}
	var parsed spawnFile
	if diags := gohcl.DecodeBody(f.spawns, evalContext(width, height), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode spawn blocks in %s: %w", f.name, diags)
	}

	out := make([]Spawn, 0, len(parsed.Spawns))
	for _, s := range parsed.Spawns {
		kind := Kind(s.Kind)
		switch kind {
		case KindCell, KindGlider, KindPulsar:
		default:
			return nil, fmt.Errorf("%s: unknown spawn kind %q", f.name, s.Kind)
		}
		out = append(out, Spawn{Kind: kind, Row: s.Row, Col: s.Col})
	}
	return out, nil
}

func evalContext(width, height uint32) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"grid": cty.ObjectVal(map[string]cty.Value{
				"width":  cty.NumberUIntVal(uint64(width)),
				"height": cty.NumberUIntVal(uint64(height)),
			}),
		},
		Functions: map[string]function.Function{
			"floor": stdlib.FloorFunc,
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
		},
	}
}
