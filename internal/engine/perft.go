package engine

import (
	"context"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// perftCacheEntries bounds the position cache shared by Divide workers.
const perftCacheEntries = 1 << 20

// NodeCache stores move-path counts by position key and depth.
type NodeCache interface {
	Lookup(hash uint64, weak uint32, depth int) (uint64, bool)
	Store(hash uint64, weak uint32, depth int, nodes uint64) bool
}

// Perft counts the leaf nodes of the legal move tree of the given depth with
// toMove playing first. Promotions count once per promotion piece.
func Perft(board *chess.Board, toMove chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(board, toMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := board.Clone()
		if err := ExecuteMove(child, m); err != nil {
			continue
		}
		nodes += Perft(child, toMove.Opposite(), depth-1)
	}
	return nodes
}

// PerftCached is Perft with subtotals of depth two and more looked up in and
// stored to cache. A nil cache disables caching.
func PerftCached(board *chess.Board, toMove chess.Colour, depth int, cache NodeCache) uint64 {
	if depth <= 1 || cache == nil {
		return Perft(board, toMove, depth)
	}

	hash := hashing.GenerateZobristHash(board, toMove)
	weak := hashing.WeakHash(board)
	if nodes, ok := cache.Lookup(hash, weak, depth); ok {
		return nodes
	}

	var nodes uint64
	for _, m := range AllLegalMoves(board, toMove) {
		child := board.Clone()
		if err := ExecuteMove(child, m); err != nil {
			continue
		}
		nodes += PerftCached(child, toMove.Opposite(), depth-1, cache)
	}
	cache.Store(hash, weak, depth, nodes)
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs Perft below each root move in parallel and returns the per-move
// counts sorted by move text. Every root move is explored on its own copy of
// the board; the workers share one position cache. Cancelling ctx stops
// workers from starting further root moves and returns ctx.Err().
func Divide(ctx context.Context, board *chess.Board, toMove chess.Colour, depth, workers int) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, nil
	}
	moves := AllLegalMoves(board, toMove)

	cache := hashing.NewThreadSafeNodeTable(perftCacheEntries)
	process := func(item worker.WorkItem) worker.ProcessResult {
		return perftItem(item, cache)
	}
	pool := worker.NewPool(process, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	go func() {
		for i, m := range moves {
			if ctx.Err() != nil {
				pool.Stop()
				break
			}
			pool.Submit(worker.WorkItem{
				Board:  board.Clone(),
				Move:   m,
				ToMove: toMove,
				Depth:  depth - 1,
				Index:  i,
			})
		}
		pool.Close()
	}()

	entries := make([]DivideEntry, 0, len(moves))
	var firstErr error
	for res := range pool.Results() {
		if ctx.Err() != nil && !pool.IsStopped() {
			pool.Stop()
		}
		if res.Error != nil && firstErr == nil {
			firstErr = res.Error
		}
		entries = append(entries, DivideEntry{Move: res.Move, Nodes: res.Nodes})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
	return entries, nil
}

// DivideTotal sums the node counts of a Divide result.
func DivideTotal(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}

// perftItem processes one root move for Divide.
func perftItem(item worker.WorkItem, cache NodeCache) worker.ProcessResult {
	if err := ExecuteMove(item.Board, item.Move); err != nil {
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Error: err}
	}
	return worker.ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: PerftCached(item.Board, item.ToMove.Opposite(), item.Depth, cache),
	}
}
