// Copyright 2026 RetailNext, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package digest

import (
	"context"
	"time"

	"github.com/retailnext/pinbatch/cache"
	"github.com/retailnext/pinbatch/metrics"
	"github.com/retailnext/pinbatch/safefile"
)

// Cache remembers digest results per file fingerprint, so unchanged files
// skip recomputation across runs. Entries are bound to both the strategy
// and the exact file version; a touched or rewritten file is a miss.
type Cache struct {
	c        *cache.Cache
	strategy Strategy
}

func NewCache(storage *cache.Storage, strategy Strategy) *Cache {
	return &Cache{
		c:        storage.Cache("digests:" + strategy.Name()),
		strategy: strategy,
	}
}

func (c *Cache) Get(ctx context.Context, file safefile.File, content []byte) (string, error) {
	key := file.CacheKey()
	var result string

	getErr := c.c.Get(key, func(wrapped []byte) error {
		if unwrapped := file.UnwrapCacheEntry(key, wrapped); len(unwrapped) > 0 {
			result = string(unwrapped)
			return nil
		}
		return cache.DoNotPromote
	})

	switch getErr {
	case nil:
		metrics.Digest.HitFilesTotal.Inc()
		metrics.Digest.HitBytesTotal.Add(float64(file.Len()))
		return result, nil
	case cache.NotFound, cache.DoNotPromote:
	default:
		return "", getErr
	}

	t0 := time.Now()
	result, digestErr := c.strategy.Digest(ctx, content)
	if digestErr != nil {
		return "", digestErr
	}
	metrics.Digest.MissFilesTotal.Inc()
	metrics.Digest.MissBytesTotal.Add(float64(file.Len()))
	metrics.Digest.MissSecondsTotal.Add(time.Since(t0).Seconds())

	wrapped := file.WrapCacheEntry([]byte(result))
	if putErr := c.c.Put(key, wrapped); putErr != nil {
		return "", putErr
	}
	return result, nil
}
