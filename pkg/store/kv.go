package store

import (
	"github.com/peterbourgon/diskv/v3"
)

// KV is the key-value capability backing persisted state: opaque blobs
// addressed by string keys. Persistence through it is best-effort; callers
// treat failures as non-fatal.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Has(key string) bool
}

// Open creates a file-backed KV rooted at the configured base path.
func Open(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &diskvKV{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type diskvKV struct {
	d *diskv.Diskv
}

func (s *diskvKV) Get(key string) ([]byte, error) {
	return s.d.Read(key)
}

func (s *diskvKV) Set(key string, value []byte) error {
	return s.d.Write(key, value)
}

func (s *diskvKV) Has(key string) bool {
	return s.d.Has(key)
}
