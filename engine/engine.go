package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/chainsolve/dataflow-engine/eval"
	"github.com/chainsolve/dataflow-engine/graphstate"
	"github.com/chainsolve/dataflow-engine/ops"
	"github.com/chainsolve/dataflow-engine/sched"
	"github.com/chainsolve/dataflow-engine/snapshot"
	"github.com/chainsolve/dataflow-engine/validate"
	"github.com/chainsolve/dataflow-engine/value"
)

// Version is the engine's own release version, independent of
// ContractVersion.
const Version = "0.1.0"

// ContractVersion is incremented whenever observable engine behavior
// changes. It is separate from snapshot.Version, the snapshot schema
// version the engine accepts.
const ContractVersion = 1

// ErrorCode names a fatal, machine-readable failure class returned from
// an Engine entry point — distinct from snapshot.Diagnostic, which
// carries non-fatal observations alongside a successful result.
type ErrorCode string

// Error codes an Engine entry point can fail with, per §6/§7.
const (
	ErrUnsupportedVersion ErrorCode = snapshot.CodeUnsupportedVersion
	ErrDanglingEdge       ErrorCode = snapshot.CodeDanglingEdge
	ErrCycleDetected      ErrorCode = snapshot.CodeCycleDetected
	ErrUnknownBlock       ErrorCode = snapshot.CodeUnknownBlock
	ErrMissingInput       ErrorCode = snapshot.CodeMissingInput
	ErrInvalidSnapshot    ErrorCode = snapshot.CodeInvalidSnapshot
	ErrSerializeFailed    ErrorCode = snapshot.CodeSerializeFailed
	ErrInvalidOptions     ErrorCode = snapshot.CodeInvalidOptions
)

// EngineError is a fatal failure an Engine entry point could not recover
// from — bad JSON, an unsupported version, a malformed patch. Non-fatal
// issues are reported as snapshot.Diagnostic instead.
type EngineError struct {
	Code    ErrorCode
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Envelope projects e into the §6 `{"error": {...}}` wire shape.
func (e *EngineError) Envelope() snapshot.ErrorEnvelope {
	return snapshot.ErrorEnvelope{Code: string(e.Code), Message: e.Message}
}

func newEngineError(code ErrorCode, format string, args ...any) *EngineError {
	return &EngineError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger attaches l for structural diagnostics: snapshot loads and
// dataset register/release. Rejected snapshots and patches are returned
// as EngineError and are not logged. The zero Engine logs nowhere.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine is the host-facing wrapper around a persistent graphstate.Graph.
// Unlike Graph itself, Engine is safe for concurrent use.
type Engine struct {
	mu    sync.RWMutex
	graph *graphstate.Graph
	log   zerolog.Logger
}

// New returns an empty Engine with no logger configured.
func New(opts ...Option) *Engine {
	e := &Engine{graph: graphstate.New(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run validates and evaluates snapshotJSON as a single, stateless pass —
// it never touches the Engine's persistent graph. This is the engine's
// original contract: one call in, one EvalResult out, no session state.
func (e *Engine) Run(snapshotJSON []byte) (snapshot.EvalResult, *EngineError) {
	start := time.Now()

	var snap snapshot.Snapshot
	if err := json.Unmarshal(snapshotJSON, &snap); err != nil {
		return snapshot.EvalResult{}, newEngineError(ErrInvalidSnapshot, "failed to parse snapshot: %v", err)
	}

	diags, verErr := validate.Validate(snap)
	if verErr != nil {
		return snapshot.EvalResult{}, newEngineError(ErrUnsupportedVersion, "%v", verErr)
	}

	result := eval.Evaluate(&snap, nil)
	result.Diagnostics = append(result.Diagnostics, diags...)
	result.ElapsedUs = uint64(time.Since(start).Microseconds())
	return result, nil
}

// Load validates and replaces the Engine's persistent graph with snap,
// marking every node dirty. It does not evaluate; call Evaluate to get
// values. Non-fatal structural issues are returned as diagnostics rather
// than failing the load.
func (e *Engine) Load(snap snapshot.Snapshot) ([]snapshot.Diagnostic, *EngineError) {
	diags, verErr := validate.Validate(snap)
	if verErr != nil {
		var unsupported validate.ErrUnsupportedVersion
		if errors.As(verErr, &unsupported) {
			return nil, newEngineError(ErrUnsupportedVersion, "%v", verErr)
		}
		return nil, newEngineError(ErrInvalidSnapshot, "%v", verErr)
	}

	e.mu.Lock()
	e.graph.LoadSnapshot(snap)
	e.mu.Unlock()

	e.log.Info().Int("nodes", len(snap.Nodes)).Int("edges", len(snap.Edges)).Msg("snapshot loaded")
	return diags, nil
}

// LoadJSON unmarshals data as a snapshot and delegates to Load.
func (e *Engine) LoadJSON(data []byte) ([]snapshot.Diagnostic, *EngineError) {
	var snap snapshot.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, newEngineError(ErrInvalidSnapshot, "failed to parse snapshot: %v", err)
	}
	return e.Load(snap)
}

// Patch applies patchOps to the persistent graph, marking affected nodes
// dirty for the next Evaluate call.
func (e *Engine) Patch(patchOps []snapshot.PatchOp) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.graph.ApplyPatch(patchOps)
}

// PatchJSON unmarshals data as a PatchOp array and delegates to Patch.
func (e *Engine) PatchJSON(data []byte) *EngineError {
	patchOps, err := snapshot.UnmarshalPatch(data)
	if err != nil {
		return newEngineError(ErrInvalidSnapshot, "failed to parse patch: %v", err)
	}
	e.Patch(patchOps)
	return nil
}

// SetInput merges a manual value into a live node and marks it dirty.
func (e *Engine) SetInput(nodeID, portID string, val float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.graph.SetInput(nodeID, portID, val)
}

// Evaluate re-evaluates the dirty set, timing the call into the returned
// IncrementalEvalResult's ElapsedUs.
func (e *Engine) Evaluate(opts sched.EvalOptions, progress sched.ProgressFunc) snapshot.IncrementalEvalResult {
	start := time.Now()
	e.mu.Lock()
	result := e.graph.EvaluateDirty(opts, progress)
	e.mu.Unlock()
	result.ElapsedUs = uint64(time.Since(start).Microseconds())
	return result
}

// RegisterDataset stores data under id for vectorInput nodes to
// reference via a datasetRef.
func (e *Engine) RegisterDataset(id string, data []float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.graph.RegisterDataset(id, data)
	e.log.Info().Str("id", id).Int("len", len(data)).Msg("dataset registered")
}

// RegisterDatasetAuto registers data under a freshly generated id and
// returns it.
func (e *Engine) RegisterDatasetAuto(data []float64) string {
	id := uuid.NewString()
	e.RegisterDataset(id, data)
	return id
}

// ReleaseDataset removes a previously registered dataset. A miss is a
// no-op.
func (e *Engine) ReleaseDataset(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.graph.ReleaseDataset(id)
	e.log.Info().Str("id", id).Msg("dataset released")
}

// DatasetCount reports how many datasets are currently registered.
func (e *Engine) DatasetCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.DatasetCount()
}

// DatasetTotalBytes reports the combined size of every registered
// dataset.
func (e *Engine) DatasetTotalBytes() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.DatasetTotalBytes()
}

// Values returns the last-known output of every evaluated node.
func (e *Engine) Values() map[string]value.Value {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.graph.Values()
}

// GetCatalog returns the static metadata for every op-id the engine
// recognizes, for a host to build a block picker from.
func GetCatalog() []ops.BlockInfo { return ops.Catalog() }
