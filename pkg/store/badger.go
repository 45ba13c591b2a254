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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cloudygreybeard/favorites/pkg/favorite"
	"github.com/dgraph-io/badger/v4"
)

// Key layout
const (
	keyList       = "list"
	prefixSetting = "setting:"
)

// Badger stores favorites in a Badger key-value database.
type Badger struct {
	db   *badger.DB
	path string
}

// OpenBadger opens or creates the database directory at path.
func OpenBadger(path string) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Badger{db: db, path: path}, nil
}

// Load implements Store.
func (b *Badger) Load(ctx context.Context) ([]favorite.Entry, error) {
	var list []favorite.Entry

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyList))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &list)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("loading favorites: %w", err)
	}
	return list, nil
}

// Save implements Store.
func (b *Badger) Save(ctx context.Context, list []favorite.Entry) error {
	if list == nil {
		list = []favorite.Entry{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}

	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyList), data)
	})
}

// Scalar implements Store.
func (b *Badger) Scalar(ctx context.Context, key string) (string, error) {
	var value string

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixSetting + key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		value = string(val)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}

// SetScalar implements Store.
func (b *Badger) SetScalar(ctx context.Context, key, value string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		if value == "" {
			return txn.Delete([]byte(prefixSetting + key))
		}
		return txn.Set([]byte(prefixSetting+key), []byte(value))
	})
}

// Path implements Store.
func (b *Badger) Path() string {
	return b.path
}

// Close implements Store.
func (b *Badger) Close() error {
	return b.db.Close()
}
