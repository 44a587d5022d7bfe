package optim

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Evaluate runs one configuration and returns its metric values.
type Evaluate func(ctx context.Context, params map[string]float64) (map[string]float64, error)

// Point is one evaluated grid point.
type Point struct {
	Params  map[string]float64
	Metrics map[string]float64
}

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// ParseGrid reads specs of the form "name=v1,v2,v3".
func ParseGrid(specs []string) (*GridSearch, error) {
	g := &GridSearch{}
	for _, spec := range specs {
		name, list, ok := strings.Cut(spec, "=")
		if !ok || name == "" || list == "" {
			return nil, fmt.Errorf("invalid grid spec %q, want name=v1,v2", spec)
		}
		var vals []float64
		for _, f := range strings.Split(list, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("grid %s: %w", name, err)
			}
			vals = append(vals, v)
		}
		g.paramNames = append(g.paramNames, name)
		g.ranges = append(g.ranges, vals)
	}
	return g, nil
}

// Size is the number of grid points.
func (g *GridSearch) Size() int {
	if len(g.ranges) == 0 {
		return 0
	}
	n := 1
	for _, r := range g.ranges {
		n *= len(r)
	}
	return n
}

// Search evaluates every grid point in order. The first error stops it.
func (g *GridSearch) Search(ctx context.Context, eval Evaluate) ([]Point, error) {
	points := make([]Point, 0, g.Size())
	if g.Size() == 0 {
		return points, nil
	}
	err := g.searchRecursive(ctx, 0, make(map[string]float64), eval, &points)
	return points, err
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	eval Evaluate,
	points *[]Point,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		m, err := eval(ctx, current)
		if err != nil {
			return fmt.Errorf("grid point %v: %w", current, err)
		}
		*points = append(*points, Point{Params: current, Metrics: m})
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, eval, points); err != nil {
			return err
		}
	}
	return nil
}

// Best returns the index of the point with the smallest (or largest, when
// maximize is set) value of metric, or -1 if no point reports it.
func Best(points []Point, metric string, maximize bool) int {
	best := -1
	bestVal := math.Inf(1)
	if maximize {
		bestVal = math.Inf(-1)
	}
	for i, p := range points {
		v, ok := p.Metrics[metric]
		if !ok || math.IsNaN(v) {
			continue
		}
		if (maximize && v > bestVal) || (!maximize && v < bestVal) {
			best, bestVal = i, v
		}
	}
	return best
}

// Names returns the parameter names sorted.
func (p Point) Names() []string {
	names := make([]string, 0, len(p.Params))
	for k := range p.Params {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
