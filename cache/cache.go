// Package cache stores solved boards so identical requests skip the search.
//
// Only final outcomes are cached (minimum energy, or the fact that no solution
// exists); search state never outlives a Solve call. Two implementations are
// provided: Memory for a single process and Redis for sharing results between
// processes.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/burrow/board"
)

// ErrMiss is returned by Get when the key is not cached.
var ErrMiss = errors.New("cache: miss")

// Entry is a cached outcome.
type Entry struct {
	Energy     int64 `json:"energy"`
	NoSolution bool  `json:"no_solution,omitempty"`
}

// Cache is implemented by Memory and Redis.
type Cache interface {
	Get(ctx context.Context, key string) (Entry, error)
	Set(ctx context.Context, key string, e Entry) error
}

// Key derives the cache key of a (layout, start, goal) triple. Equal
// configurations always map to the same key.
func Key(layout board.Layout, start, goal board.Config) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", layout.HallwayLen)
	for _, r := range layout.Rooms {
		fmt.Fprintf(&sb, ";%c@%d*%d", r.Kind, r.Column, r.StepCost)
	}
	sb.WriteString("\n")
	sb.WriteString(start.Key())
	sb.WriteString("\n")
	sb.WriteString(goal.Key())

	sum := sha256.Sum256([]byte(sb.String()))

	return hex.EncodeToString(sum[:])
}
