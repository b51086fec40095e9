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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUTF8(t *testing.T) {
	text, charset, err := Decode([]byte("Sawubona, mhlaba! Dvořák"))
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", charset)
	assert.Equal(t, "Sawubona, mhlaba! Dvořák", text)
}

func TestDecodeEmptyInput(t *testing.T) {
	text, charset, err := Decode([]byte{})
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", charset)
	assert.Empty(t, text)
}

func TestDecodeLatin1Fallback(t *testing.T) {
	// "caf\xe9 d\xe9tente" is valid Latin-1 but invalid UTF-8
	data := []byte("une conversation au caf\xe9 pendant la d\xe9tente du soir")
	text, charset, err := Decode(data)
	require.NoError(t, err)
	assert.NotEqual(t, "UTF-8", charset)
	assert.Contains(t, text, "café")
	assert.Contains(t, text, "détente")
}

func TestDecodeArbitraryBytesNeverGarbled(t *testing.T) {
	// high bytes with no consistent encoding still decode via the
	// Latin-1 terminal fallback rather than erroring
	data := []byte{0xff, 0xfe, 0xfd, 0x41, 0x42, 0xa0, 0x00, 0x91}
	text, _, err := Decode(data)
	require.NoError(t, err)
	assert.NotEmpty(t, text)
}

func TestDecodeDeterministic(t *testing.T) {
	data := []byte("amagama \xe9 amagama")
	text1, cs1, err1 := Decode(data)
	text2, cs2, err2 := Decode(data)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, text1, text2)
	assert.Equal(t, cs1, cs2)
}
