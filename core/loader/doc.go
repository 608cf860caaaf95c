// Package loader provides the feature loading system.
//
// Each feature implements Feature and registers its own routes:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager.Register collects features and Manager.LoadAll loads the enabled
// ones in registration order, stopping at the first failure.
package loader
