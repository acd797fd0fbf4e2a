package reeb

import (
	"fmt"
	"log"

	"github.com/katalvlaran/reebtide/geom"
	"github.com/katalvlaran/reebtide/polygon"
)

// state is one pending BFS frontier entry: the island at index within the
// islands cached for layer links to parentID, and once linked, its
// successor is searched for in nextLayer.
type state struct {
	parentID  int
	layer     int
	nextLayer int
	index     int
}

// Run performs the layered breadth-first search that links islands across
// time into a Reeb graph.
//
// It first scans layers starting at startTime, in order, for the first
// polygon (lowest index) containing seed. If none of src's layers contain
// it, Run logs a diagnostic and returns a graph holding only its root — not
// an error (see package doc). Otherwise it seeds the BFS there and links
// every reachable island forward in time using the containment predicate:
// an old island and a new island link if either contains the other's
// representative point under method.
func Run(src IslandSource, seed geom.Point, startTime int, method Method, opts ...Option) (*ReebGraph, error) {
	cfg := newConfig(opts)

	startLayer, startIndex, err := seedSearch(cfg, src, seed, startTime)
	if err != nil {
		return nil, err
	}
	if startLayer < 0 {
		log.Printf("reeb: island containing (%g,%g) not found", seed.X, seed.Y)
		return New(0, seed.X, startTime), nil
	}

	reeb := New(0, seed.X, startLayer)

	oldLayer := startLayer
	newLayer := startLayer + 1

	oldIslands, err := src.Islands(cfg.ctx, oldLayer)
	if err != nil {
		return nil, fmt.Errorf("reeb: loading layer %d: %w", oldLayer, err)
	}
	var newIslands []polygon.Polygon
	if newLayer < src.Len() {
		newIslands, err = src.Islands(cfg.ctx, newLayer)
		if err != nil {
			return nil, fmt.Errorf("reeb: loading layer %d: %w", newLayer, err)
		}
	}

	startIDs := len(oldIslands)
	queue := []state{{parentID: 0, layer: startLayer, nextLayer: startLayer + 1, index: startIndex}}
	enqueued := map[state]bool{queue[0]: true}

	for len(queue) > 0 {
		select {
		case <-cfg.ctx.Done():
			return reeb, cfg.ctx.Err()
		default:
		}

		s := queue[0]
		queue = queue[1:]

		if s.nextLayer >= src.Len() {
			continue
		}
		if s.layer != oldLayer && s.nextLayer != newLayer {
			startIDs += len(oldIslands)
			oldIslands = newIslands
			oldLayer = s.layer
			newLayer = s.nextLayer
			newIslands, err = src.Islands(cfg.ctx, s.nextLayer)
			if err != nil {
				return nil, fmt.Errorf("reeb: loading layer %d: %w", s.nextLayer, err)
			}
		}

		if s.index >= len(oldIslands) {
			continue
		}
		pOld := oldIslands[s.index]
		rOld, ok := representative(pOld, method)
		if !ok {
			continue
		}

		for j, pNew := range newIslands {
			rNew, ok := representative(pNew, method)
			if !ok {
				continue
			}
			if !(pOld.Contains(rNew) || pNew.Contains(rOld)) {
				continue
			}

			id := startIDs + j
			reeb.AddPoint(s.layer, s.parentID, id, rOld.X)

			next := state{parentID: id, layer: s.nextLayer, nextLayer: s.nextLayer + 1, index: j}
			if !enqueued[next] {
				enqueued[next] = true
				queue = append(queue, next)
			}
		}
	}

	return reeb, nil
}

func seedSearch(cfg config, src IslandSource, seed geom.Point, startTime int) (layer, index int, err error) {
	for t := startTime; t < src.Len(); t++ {
		select {
		case <-cfg.ctx.Done():
			return 0, 0, cfg.ctx.Err()
		default:
		}

		polys, err := src.Islands(cfg.ctx, t)
		if err != nil {
			return 0, 0, fmt.Errorf("reeb: loading layer %d: %w", t, err)
		}
		for i, p := range polys {
			if p.Contains(seed) {
				return t, i, nil
			}
		}
	}
	return -1, -1, nil
}
