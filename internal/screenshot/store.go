// Package screenshot caches tab screenshots on disk, keyed by tab UUID.
package screenshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"regexp"

	"github.com/atomicstack/tabtray-control/internal/logging"
	"github.com/atomicstack/tabtray-control/internal/tabs"
	"github.com/peterbourgon/diskv/v3"
)

var (
	ErrNotFound   = errors.New("screenshot: not found")
	ErrInvalidKey = errors.New("screenshot: invalid key")
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

const cacheSizeMax = 8 * 1024 * 1024

// Store is a diskv backed screenshot cache.
type Store struct {
	d *diskv.Diskv
}

var _ tabs.ScreenshotStore = (*Store)(nil)

// Open returns a store rooted at dir. Files are sharded by the first two
// characters of the tab UUID.
func Open(dir string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:          dir,
		AdvancedTransform: keyToPath,
		InverseTransform:  pathToKey,
		CacheSizeMax:      cacheSizeMax,
	})}
}

func keyToPath(key string) *diskv.PathKey {
	shard := key
	if len(shard) > 2 {
		shard = shard[:2]
	}
	return &diskv.PathKey{Path: []string{shard}, FileName: key}
}

func pathToKey(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

func checkKey(id string) error {
	if !validKey.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, id)
	}
	return nil
}

func (s *Store) Save(id string, data []byte) error {
	if err := checkKey(id); err != nil {
		return err
	}
	if len(data) == 0 {
		return s.Delete(id)
	}
	if err := s.d.Write(id, data); err != nil {
		return fmt.Errorf("writing screenshot %s: %w", id, err)
	}
	return nil
}

func (s *Store) Load(id string) ([]byte, error) {
	if err := checkKey(id); err != nil {
		return nil, err
	}
	data, err := s.d.Read(id)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading screenshot %s: %w", id, err)
	}
	return data, nil
}

// Delete removes a screenshot; a missing one is not an error.
func (s *Store) Delete(id string) error {
	if err := checkKey(id); err != nil {
		return err
	}
	if !s.d.Has(id) {
		return nil
	}
	return s.d.Erase(id)
}

// Keys lists every cached screenshot.
func (s *Store) Keys(ctx context.Context) []string {
	var keys []string
	for key := range s.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	return keys
}

// Prune erases every screenshot whose tab is not in live and returns how
// many were removed.
func (s *Store) Prune(ctx context.Context, live []string) (int, error) {
	keep := make(map[string]struct{}, len(live))
	for _, id := range live {
		keep[id] = struct{}{}
	}
	removed := 0
	var errs []error
	for _, key := range s.Keys(ctx) {
		if _, ok := keep[key]; ok {
			continue
		}
		if err := s.d.Erase(key); err != nil {
			errs = append(errs, fmt.Errorf("erasing %s: %w", key, err))
			continue
		}
		removed++
	}
	if err := ctx.Err(); err != nil {
		return removed, err
	}
	if len(errs) > 0 {
		err := errors.Join(errs...)
		logging.Error(err)
		return removed, err
	}
	return removed, nil
}
