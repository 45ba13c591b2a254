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

package workspace_test

import (
	"os"
	"testing"

	"github.com/cloudygreybeard/favorites/pkg/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("defaults to the working directory", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)

		roots, err := workspace.New()
		require.NoError(t, err)
		assert.False(t, roots.IsMultiRoot())
		assert.Equal(t, wd, roots.SingleRootPath())
	})

	t.Run("dedupes roots", func(t *testing.T) {
		dir := t.TempDir()
		roots, err := workspace.New(dir, dir)
		require.NoError(t, err)
		assert.Equal(t, workspace.Roots{dir}, roots)
		assert.Equal(t, dir, roots.SingleRootPath())
	})

	t.Run("multiple roots", func(t *testing.T) {
		roots, err := workspace.New(t.TempDir(), t.TempDir())
		require.NoError(t, err)
		assert.True(t, roots.IsMultiRoot())
		assert.Empty(t, roots.SingleRootPath())
	})
}
