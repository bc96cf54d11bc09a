// Command gradgen normalizes a color gradient and prints the generated
// WGSL, the uniform values, or a terminal preview.
//
// Usage:
//
//	gradgen -colors red,green,blue -stops 0.2,0.5,0.8 -emit wgsl
//	gradgen -colors '#ff8800,#0088ff' -emit uniforms
//	gradgen -colors black,white -extend reflect -preview
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gradient"
	"github.com/gogpu/gradient/gpu"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("gradgen: %v", err)
	}
}

type config struct {
	colors  []gradient.RGBA
	stops   []float64
	extend  gradient.ExtendMode
	emit    string
	spirv   bool
	preview bool
	strict  bool
}

func parseFlags(args []string, output io.Writer) (*config, error) {
	fs := flag.NewFlagSet("gradgen", flag.ContinueOnError)
	fs.SetOutput(output)
	var (
		colors  = fs.String("colors", "black,white", "comma-separated colors (hex or CSS names)")
		stops   = fs.String("stops", "", "comma-separated stop positions; empty for two colors at 0 and 1")
		extend  = fs.String("extend", "pad", "extend mode: pad, repeat or reflect")
		emit    = fs.String("emit", "wgsl", "output: wgsl, lookup, struct or uniforms")
		spirv   = fs.Bool("spirv", false, "compile the generated WGSL with naga and report its size")
		preview = fs.Bool("preview", false, "draw the gradient in the terminal")
		strict  = fs.Bool("strict", false, "reject unsorted, out-of-range and coincident stops")
		verbose = fs.Bool("v", false, "debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *verbose {
		gradient.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := &config{emit: *emit, spirv: *spirv, preview: *preview, strict: *strict}

	for _, s := range strings.Split(*colors, ",") {
		c, ok := gradient.ParseColor(s)
		if !ok {
			return nil, fmt.Errorf("invalid color %q", s)
		}
		cfg.colors = append(cfg.colors, c)
	}

	if *stops != "" {
		for _, s := range strings.Split(*stops, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid stop %q: %w", s, err)
			}
			cfg.stops = append(cfg.stops, v)
		}
	}

	mode, ok := gradient.ParseExtendMode(*extend)
	if !ok {
		return nil, fmt.Errorf("invalid extend mode %q", *extend)
	}
	cfg.extend = mode

	return cfg, nil
}

func run(args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	var opts []gradient.Option
	if cfg.strict {
		opts = append(opts, gradient.WithStrictStops())
	}
	g, err := gradient.Normalize(cfg.colors, cfg.stops, opts...)
	if err != nil {
		return err
	}
	p := gradient.ProgramFor(g, cfg.extend)

	if cfg.preview {
		return runPreview(g, cfg.extend)
	}

	switch cfg.emit {
	case "wgsl":
		_, err = io.WriteString(stdout, p.FragmentSource())
	case "lookup":
		_, err = io.WriteString(stdout, p.LookupSource())
	case "struct":
		_, err = io.WriteString(stdout, p.StructSource())
	case "uniforms":
		err = writeUniforms(stdout, g, p)
	default:
		return fmt.Errorf("invalid -emit %q", cfg.emit)
	}
	if err != nil {
		return err
	}

	if cfg.spirv {
		code, err := gpu.CompileProgram(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "spirv: %d words\n", len(code))
	}
	return nil
}

// writeUniforms uploads g into a staging block laid out for p and prints
// every member in struct order as "name = (x, y, z, w)".
func writeUniforms(w io.Writer, g *gradient.Normalized, p *gradient.Program) error {
	block := gpu.NewUniformBlock(p)
	g.Upload(p, block)
	for _, name := range p.UniformNames() {
		v, ok := block.Uniform4f(block.UniformLocation(p, name))
		if !ok {
			return fmt.Errorf("uniform %q not in block", name)
		}
		if _, err := fmt.Fprintf(w, "%s = (%g, %g, %g, %g)\n", name, v[0], v[1], v[2], v[3]); err != nil {
			return err
		}
	}
	return nil
}
