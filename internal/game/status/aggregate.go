package status

import (
	"errors"

	"go.uber.org/zap"
)

// Intensities is the summed intensity of every status type granted by
// equipped items, indexed by Type.
type Intensities [Total]Intensity

// Accumulate adds each effect into in with saturating clamp.
// Effects with an out-of-range type are skipped and reported in the returned slice.
//
// Postcondition: every element of in lies in [NegExtreme, PosExtreme].
func (in *Intensities) Accumulate(effects []Effect) (skipped []Effect) {
	for _, e := range effects {
		if !e.Type.Valid() {
			skipped = append(skipped, e)
			continue
		}
		in[e.Type] = in[e.Type].Add(e.Intensity)
	}
	return skipped
}

// Aggregator sums equipment-granted effects and dispatches them to passive handlers.
type Aggregator struct {
	handlers Handlers
	logger   *zap.Logger
}

// NewAggregator creates an Aggregator.
//
// Precondition: handlers may be nil, in which case every status type is reported as unhandled.
func NewAggregator(handlers Handlers, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if handlers == nil {
		handlers = Table{}
	}
	return &Aggregator{handlers: handlers, logger: logger}
}

// Sum resets to neutral and accumulates each source in order.
func (a *Aggregator) Sum(sources ...[]Effect) Intensities {
	var in Intensities
	for _, src := range sources {
		for _, bad := range in.Accumulate(src) {
			a.logger.Warn("ignoring status effect with unknown type",
				zap.Int("status", int(bad.Type)),
				zap.Int("intensity", int(bad.Intensity)),
			)
		}
	}
	return in
}

// Dispatch calls RemovePassive for every neutral type and ApplyPassive for every
// other type, in Type order. Missing handlers, missing functions and handler
// errors are logged and skipped.
func (a *Aggregator) Dispatch(target Target, in Intensities) {
	for t := Type(0); t < Total; t++ {
		h, ok := a.handlers.Handler(t)
		if !ok {
			a.logger.Warn("no status effect handler defined",
				zap.Stringer("status", t),
				zap.Uint32("actor_id", target.ActorID()),
			)
			continue
		}
		var err error
		fn := "ApplyPassive"
		if in[t].IsNeutral() {
			fn = "RemovePassive"
			err = h.RemovePassive(target)
		} else {
			err = h.ApplyPassive(target, in[t])
		}
		if err == nil {
			continue
		}
		if errors.Is(err, ErrMissingFunction) {
			a.logger.Warn("status effect handler missing function",
				zap.Stringer("status", t),
				zap.String("function", fn),
			)
			continue
		}
		a.logger.Warn("status effect handler failed",
			zap.Stringer("status", t),
			zap.String("function", fn),
			zap.Uint32("actor_id", target.ActorID()),
			zap.Error(err),
		)
	}
}
