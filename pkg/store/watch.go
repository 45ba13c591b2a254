// Copyright 2026 cloudygreybeard
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

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudygreybeard/favorites/pkg/logging"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of events from a single save.
const DefaultDebounce = 100 * time.Millisecond

// Watch reports changes to the store at path. For a file, the parent
// directory is watched and events are filtered to names starting with the
// file's base name, which also covers SQLite journal files. For a
// directory, every event inside it counts. The channel is closed when ctx
// is done.
func Watch(ctx context.Context, path string, debounce time.Duration) (<-chan struct{}, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	dir, prefix := filepath.Dir(path), filepath.Base(path)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		dir, prefix = path, ""
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer fsw.Close()

		logger := logging.Get("watch")
		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return

			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if prefix != "" && !strings.HasPrefix(filepath.Base(ev.Name), prefix) {
					continue
				}
				if ev.Op == fsnotify.Chmod {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C

			case <-fire:
				fire = nil
				select {
				case out <- struct{}{}:
				default:
				}

			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error", "path", path, "err", err)
			}
		}
	}()

	return out, nil
}
