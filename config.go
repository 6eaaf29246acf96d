package fixturekit

import (
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envDefaults mirrors the package-wide option defaults. Both settings can be
// flipped per process through the environment; constructor, builder and
// per-call options still override them.
type envDefaults struct {
	DeepCopy       bool `env:"FIXTUREKIT_DEEP_COPY" envDefault:"true"`
	SkipValidation bool `env:"FIXTUREKIT_SKIP_VALIDATION" envDefault:"true"`
}

var (
	defaultsOnce   sync.Once
	loadedDefaults Options
)

// packageDefaults resolves the lowest-precedence option layer. The
// environment is read once per process, after a best-effort .env load. A
// parse failure falls back to the hard defaults instead of failing builds.
func packageDefaults() Options {
	defaultsOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()

		var cfg envDefaults
		if err := env.Parse(&cfg); err != nil {
			cfg = envDefaults{DeepCopy: true, SkipValidation: true}
		}
		loadedDefaults = Options{
			DeepCopy:       cfg.DeepCopy,
			SkipValidation: cfg.SkipValidation,
		}
	})
	return loadedDefaults
}
