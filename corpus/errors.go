// Copyright 2025 Mthuli Percival Buthelezi
// Copyright 2025 Sakhile Marcus Zungu
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package corpus

import (
	"fmt"
	"strings"
)

// DecodeError means uploaded bytes could not be decoded by any of the
// attempted encodings. The user should re-save the file in a supported
// encoding (UTF-8 or ANSI/Latin-1).
type DecodeError struct {
	Tried []string
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf(
		"failed to decode input (tried encodings: %s)",
		strings.Join(err.Tried, ", "),
	)
}

// InvalidReferenceError means keyness was requested without a usable
// reference corpus. No computation is attempted in such case.
type InvalidReferenceError struct {
	Reason string
}

func (err *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid reference corpus: %s", err.Reason)
}

// InvalidParameterError means an out-of-range analysis parameter. It is
// reported before any tokenization work begins.
type InvalidParameterError struct {
	Name   string
	Reason string
}

func (err *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", err.Name, err.Reason)
}
