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

package favorite

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by mutators.
var (
	ErrDuplicateName = errors.New("duplicate folder name")
	ErrNotFound      = errors.New("not found")
	ErrNoOp          = errors.New("nothing to change")
)

// NameError reports a folder name already used in a group.
type NameError struct {
	Name  string
	Group string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("a folder named %q already exists in group %q", e.Name, e.Group)
}

func (e *NameError) Is(target error) bool {
	return target == ErrDuplicateName
}
