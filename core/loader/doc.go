// Package loader mounts feature modules on the HTTP router.
//
// Each feature implements Feature and registers its own routes:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(router fiber.Router) error
//	}
//
// The Manager keeps the registration order, skips disabled features and
// aborts on the first Load error so the server never starts half mounted.
//
//	mgr := loader.NewManager(log)
//	mgr.Register(countries.NewFeature(catalog, m, log))
//	mgr.Register(region.NewFeature(catalog, m, log))
//	if err := mgr.LoadAll(app.Group("/api/v1")); err != nil { ... }
package loader
