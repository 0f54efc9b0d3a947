// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface and owns its routes:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager keeps the registry. Register adds features; LoadAll loads the enabled
// ones in registration order and fails fast on the first error.
package loader
