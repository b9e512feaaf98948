package galaxy

import (
	"github.com/gekko3d/galaxy/galaxyrt/rt/core"
)

// ParameterStore holds the committed parameter set and the edit in progress.
// Edits accumulate in the staged copy; Commit hands it to the regeneration
// system, which either accepts it or rejects it and reverts the staged copy.
type ParameterStore struct {
	current core.Parameters
	staged  core.Parameters
	pending bool
	lastErr error
}

func NewParameterStore(p core.Parameters) *ParameterStore {
	return &ParameterStore{current: p, staged: p}
}

// Current is the parameter set the live point cloud was built from.
func (s *ParameterStore) Current() core.Parameters { return s.current }

// Staged is the edit in progress, as shown on the controls.
func (s *ParameterStore) Staged() core.Parameters { return s.staged }

func (s *ParameterStore) Set(edit func(p *core.Parameters)) {
	edit(&s.staged)
}

func (s *ParameterStore) Commit() {
	s.pending = true
}

// Pending returns the staged set if a commit is waiting.
func (s *ParameterStore) Pending() (core.Parameters, bool) {
	return s.staged, s.pending
}

func (s *ParameterStore) Accept() {
	s.current = s.staged
	s.pending = false
	s.lastErr = nil
}

// Reject drops the staged edit and records why.
func (s *ParameterStore) Reject(err error) {
	s.staged = s.current
	s.pending = false
	s.lastErr = err
}

// Err is the reason the last commit was rejected, if any.
func (s *ParameterStore) Err() error { return s.lastErr }

type ParametersModule struct {
	// Path to a YAML config; its galaxy section wins over Params.
	Path   string
	Params *core.Parameters
}

func (mod ParametersModule) Install(app *App, cmd *Commands) {
	params := core.DefaultParameters()
	if mod.Params != nil {
		params = *mod.Params
	}
	log := cmd.Logger().Named("config")
	if mod.Path != "" {
		if p, err := loadParameters(mod.Path); err != nil {
			log.Warnf("Ignoring config: %v", err)
		} else {
			params = p
		}
	}
	if err := params.Validate(); err != nil {
		log.Warnf("Invalid startup parameters, using defaults: %v", err)
		params = core.DefaultParameters()
	}
	cmd.AddResources(NewParameterStore(params))
}

func loadParameters(path string) (core.Parameters, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return core.Parameters{}, err
	}
	return cfg.Parameters()
}
