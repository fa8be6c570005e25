package encoder

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// State is the complete serializable state of a fitted encoder: the
// configuration plus the per-column fit state. The snapshot package turns a
// State into bytes and back; an encoder restored from its State transforms
// identically to the original.
type State struct {
	Strategy     format.StrategyType
	Policy       format.UnseenPolicy
	HashType     format.HashType
	Sentinel     float64
	HashWidth    int
	TargetColumn string
	Columns      []ColumnState
}

// ExportState exports the fitted encoder's state. Returns ErrNotFitted for
// an unfitted encoder.
func (e *Encoder) ExportState() (*State, error) {
	if !e.fitted {
		return nil, errs.ErrNotFitted
	}

	state := &State{
		Strategy:     e.cfg.strategy,
		Policy:       e.cfg.policy,
		HashType:     e.cfg.hashType,
		Sentinel:     e.cfg.sentinel,
		HashWidth:    e.cfg.hashWidth,
		TargetColumn: e.cfg.targetColumn,
		Columns:      make([]ColumnState, 0, len(e.colNames)),
	}
	for _, name := range e.colNames {
		state.Columns = append(state.Columns, e.strategies[name].state())
	}

	return state, nil
}

// Restore rebuilds a fitted encoder from an exported state.
func Restore(state *State) (*Encoder, error) {
	opts := []Option{
		WithUnseenPolicy(state.Policy),
		WithUnseenSentinel(state.Sentinel),
		WithHashFunc(state.HashType),
	}
	if state.HashWidth > 0 {
		opts = append(opts, WithHashWidth(state.HashWidth))
	}
	if state.TargetColumn != "" {
		opts = append(opts, WithTargetColumn(state.TargetColumn))
	}

	colNames := make([]string, 0, len(state.Columns))
	for _, cs := range state.Columns {
		colNames = append(colNames, cs.Name)
	}
	opts = append(opts, WithColumns(colNames...))

	e, err := New(state.Strategy, opts...)
	if err != nil {
		return nil, err
	}

	e.strategies = make(map[string]columnStrategy, len(state.Columns))
	for _, cs := range state.Columns {
		s, err := newStrategy(cs.Name, e.cfg)
		if err != nil {
			return nil, err
		}
		if err := s.restore(cs); err != nil {
			return nil, fmt.Errorf("restore column %q: %w", cs.Name, err)
		}
		e.strategies[cs.Name] = s
	}
	e.colNames = colNames
	e.fitted = true

	return e, nil
}
