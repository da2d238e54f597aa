package ordbtree

import "fmt"

const (
	// DefaultBase is the branching parameter B used when a Config leaves it unset.
	DefaultBase = 6
	// MaxBase bounds the branching parameter to keep node storage small.
	MaxBase = 64
)

// Weighted is implemented by every key stored in a tree.
//
// Weight must be positive and must not change while the key is stored in a
// tree; it is the key's contribution to the offsets of all following elements.
type Weighted interface {
	Weight() int
}

// Config configures a positional B-tree.
//
// The zero value is valid and selects DefaultBase.
type Config struct {
	// Base is the branching parameter B. Non-root nodes hold between B-1 and
	// 2B-1 elements, internal nodes between B and 2B children.
	Base int
}

func (cfg Config) normalized() Config {
	if cfg.Base == 0 {
		cfg.Base = DefaultBase
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Base < 2 {
		return fmt.Errorf("%w: base must be >= 2, is %d", ErrInvalidConfig, cfg.Base)
	}
	if cfg.Base > MaxBase {
		return fmt.Errorf("%w: base must be <= %d, is %d", ErrInvalidConfig, MaxBase, cfg.Base)
	}
	return nil
}

func (cfg Config) minElements() int { return cfg.Base - 1 }
func (cfg Config) maxElements() int { return 2*cfg.Base - 1 }
