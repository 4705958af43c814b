package columns

import "github.com/matzehuels/columns/pkg/layout"

// ConfigRegistrar accepts config keys with their defaults.
type ConfigRegistrar interface {
	AddValue(key string, def any) error
}

// Register installs the algorithm in reg under [Name] and, if cfg is
// non-nil, registers its config keys with their defaults.
func Register(reg *layout.Registry, cfg ConfigRegistrar) error {
	if cfg != nil {
		if err := cfg.AddValue(KeyMaxColumns, int64(DefaultMaxColumns)); err != nil {
			return err
		}
		if err := cfg.AddValue(KeySpawnDirection, DefaultSpawnDirection); err != nil {
			return err
		}
	}
	return reg.Register(Name, func(h layout.Host) layout.TiledAlgorithm {
		return New(h)
	})
}

// Unregister removes the algorithm from reg.
func Unregister(reg *layout.Registry) {
	reg.Unregister(Name)
}
