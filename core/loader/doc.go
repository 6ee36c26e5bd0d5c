// Package loader provides the feature loading system.
//
// Each feature implements Feature and registers its own routes in Load. The
// Manager keeps features in registration order and loads the enabled ones:
//
//	mgr := loader.NewManager(log)
//	mgr.Register(diff.NewFeature(svc))
//	if err := mgr.LoadAll(app); err != nil { ... }
package loader
