// Package simulation is the top-level driver: it asks the sampler for an
// event, records it, hands it to the network for state and propensity
// updates, and batches the resulting trajectory into history packets
// pushed to an external queue. One Simulation owns its Lattice,
// SolutionState, PropensityStore, and Sampler exclusively for the run's
// lifetime; independent seeds run independent Simulations concurrently,
// sharing only the read-only catalog and one history.Queue.
package simulation

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgmc-sim/lgmc/history"
	"github.com/lgmc-sim/lgmc/network"
	"github.com/lgmc-sim/lgmc/sampler"
)

const defaultChunkSize = 1024

// resumEpoch is the step interval at which the driver forces an exact
// re-sum of the propensity store's running total, bounding the additive
// floating-point drift spec.md §9 warns accumulates over long runs.
const resumEpoch = 1_000_000

// Simulation drives the sample/update/record loop for one run.
type Simulation struct {
	runID string
	seed  int64

	net   *network.LatticeReactionNetwork
	samp  *sampler.Sampler
	queue history.Queue

	chunkSize int
	buffer    []history.HistoryElement

	time float64
	step int64

	log zerolog.Logger
}

// Option customizes a Simulation at construction.
type Option func(*Simulation)

// WithChunkSize overrides the default history batching size. Panics on a
// non-positive size.
func WithChunkSize(n int) Option {
	if n <= 0 {
		panic("simulation: WithChunkSize(n<=0)")
	}
	return func(s *Simulation) {
		s.chunkSize = n
	}
}

// WithLogger overrides the default stderr zerolog.Logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulation) {
		s.log = l
	}
}

// New builds a Simulation over the given network, sampler, and history
// queue, stamped with a fresh run id. seed is recorded on every emitted
// HistoryElement so a persisted trajectory is self-describing.
func New(net *network.LatticeReactionNetwork, samp *sampler.Sampler, queue history.Queue, seed int64, opts ...Option) *Simulation {
	s := &Simulation{
		runID:     uuid.NewString(),
		seed:      seed,
		net:       net,
		samp:      samp,
		queue:     queue,
		chunkSize: defaultChunkSize,
		log:       zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("run_id", s.runID).Int64("seed", seed).Logger()
	return s
}

// RunID returns the UUID stamped on this run at construction.
func (s *Simulation) RunID() string {
	return s.runID
}

// Time returns the simulated time elapsed so far.
func (s *Simulation) Time() float64 {
	return s.time
}

// Step returns the number of steps executed so far.
func (s *Simulation) Step() int64 {
	return s.step
}

// ExecuteStep draws and applies one event. ok is false when the sampler
// reports the absorbing state (prop_sum == 0); this is not an error.
func (s *Simulation) ExecuteStep() (ok bool, err error) {
	event, drawn := s.samp.Next()
	if !drawn {
		s.log.Info().Int64("step", s.step).Msg("sampler exhausted: no further events")
		return false, nil
	}

	if err := s.net.UpdateState(event, s.step); err != nil {
		s.log.Error().Err(err).Int64("step", s.step).Int("reaction_id", event.ReactionID).Msg("invariant violation in update_state")
		return false, err
	}
	if err := s.net.UpdatePropensities(event); err != nil {
		s.log.Error().Err(err).Int64("step", s.step).Int("reaction_id", event.ReactionID).Msg("invariant violation in update_propensities")
		return false, err
	}

	s.time += event.Dt
	s.buffer = append(s.buffer, history.HistoryElement{
		Seed:       s.seed,
		Step:       s.step,
		ReactionID: event.ReactionID,
		Time:       s.time,
	})
	s.step++

	if s.step%resumEpoch == 0 {
		s.net.Resum()
		s.log.Debug().Int64("step", s.step).Msg("periodic propensity resum")
	}

	if len(s.buffer) >= s.chunkSize {
		if err := s.flush(); err != nil {
			return false, err
		}
	}
	return true, nil
}

// ExecuteSteps runs up to n further steps, stopping early if the sampler
// reaches the absorbing state. Returns the number of steps actually
// executed.
func (s *Simulation) ExecuteSteps(n int) (int, error) {
	executed := 0
	for ; executed < n; executed++ {
		ok, err := s.ExecuteStep()
		if err != nil {
			return executed, err
		}
		if !ok {
			break
		}
	}
	return executed, nil
}

// ExecuteTime runs steps until s.Time() reaches budget or the sampler
// reaches the absorbing state. The termination check fires after the
// current step completes, so the run may overshoot budget by one dt.
func (s *Simulation) ExecuteTime(budget float64) error {
	for s.time < budget {
		ok, err := s.ExecuteStep()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

// Flush pushes any buffered history elements as a final (possibly
// short) packet. Call this once after the run loop ends; ExecuteStep
// already flushes full-size chunks as it goes.
func (s *Simulation) Flush() error {
	if len(s.buffer) == 0 {
		return nil
	}
	return s.flush()
}

func (s *Simulation) flush() error {
	packet := history.HistoryPacket{Seed: s.seed, Elements: s.buffer}
	if err := s.queue.Push(packet); err != nil {
		return fmt.Errorf("simulation: push history packet: %w", err)
	}
	s.buffer = nil
	return nil
}
