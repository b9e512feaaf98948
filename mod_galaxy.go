package galaxy

import (
	"github.com/gekko3d/galaxy/galaxyrt/rt/core"
	"github.com/gekko3d/galaxy/galaxyrt/rt/gen"
	"github.com/gekko3d/galaxy/galaxyrt/rt/gpu"
)

// GalaxyState owns the generator and the live point cloud.
type GalaxyState struct {
	generator *gen.Generator
	handle    *gpu.PointCloudHandle
}

func NewGalaxyState(generator *gen.Generator, uploader gpu.Uploader) *GalaxyState {
	return &GalaxyState{
		generator: generator,
		handle:    gpu.NewPointCloudHandle(uploader),
	}
}

// Regenerate builds a cloud for p and swaps it in. On error the previous
// cloud stays bound.
func (s *GalaxyState) Regenerate(p core.Parameters) error {
	cloud, err := s.generator.Generate(p)
	if err != nil {
		return err
	}
	return s.handle.Replace(cloud)
}

func (s *GalaxyState) Cloud() *core.PointCloud { return s.handle.Cloud() }
func (s *GalaxyState) Buffers() gpu.BufferSet  { return s.handle.Buffers() }
func (s *GalaxyState) Generation() uint64      { return s.handle.Generation() }
func (s *GalaxyState) Release()                { s.handle.Release() }

type GalaxyModule struct {
	// Seed zero picks a time based seed.
	Seed int64
	// MaxBytes caps a single cloud; zero uses gen.DefaultMaxBytes.
	MaxBytes uint64
	// Uploader overrides the renderer's uploader.
	Uploader gpu.Uploader
}

func (mod GalaxyModule) Install(app *App, cmd *Commands) {
	store, ok := Resource[ParameterStore](app)
	if !ok {
		panic("GalaxyModule requires ParametersModule to be installed first")
	}

	generator := gen.NewSeeded(mod.Seed)
	if mod.MaxBytes > 0 {
		generator.WithMaxBytes(mod.MaxBytes)
	}

	uploader := mod.Uploader
	if uploader == nil {
		if r, ok := Resource[Renderer](app); ok {
			uploader = r.Uploader()
		} else {
			uploader = gpu.NewHostUploader()
		}
	}

	state := NewGalaxyState(generator, uploader)
	if err := state.Regenerate(store.Current()); err != nil {
		cmd.Logger().Named("regen").Errorf("Initial galaxy generation failed: %v", err)
	} else {
		cmd.Logger().Named("regen").Infof("Generated galaxy with %d points", store.Current().Count)
	}

	cmd.AddResources(state)
	cmd.OnShutdown(state.Release)
	app.UseSystem(
		System(galaxyRegenSystem).
			InStage(Update),
	)
}

func galaxyRegenSystem(cmd *Commands, store *ParameterStore, state *GalaxyState) {
	next, ok := store.Pending()
	if !ok {
		return
	}
	if err := next.Validate(); err != nil {
		cmd.Logger().Named("regen").Warnf("Rejected parameter edit: %v", err)
		store.Reject(err)
		return
	}
	if !core.NeedsRegeneration(store.Current(), next) {
		store.Accept()
		return
	}
	if err := state.Regenerate(next); err != nil {
		cmd.Logger().Named("regen").Warnf("Regeneration failed, keeping previous galaxy: %v", err)
		store.Reject(err)
		return
	}
	store.Accept()
	cmd.Logger().Named("regen").Debugf("Regenerated galaxy #%d with %d points", state.Generation(), next.Count)
}
