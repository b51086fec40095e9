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
)

func TestTokenizeBasic(t *testing.T) {
	tokens := Tokenize("Sawubona, mhlaba! Ngiyakwemukela.", TokenizeConf{Digits: true})
	assert.Equal(t, Corpus{"Sawubona", "mhlaba", "Ngiyakwemukela"}, tokens)
}

func TestTokenizeLowercase(t *testing.T) {
	tokens := Tokenize("UMthuli noSakhile", TokenizeConf{Lowercase: true, Digits: true})
	assert.Equal(t, Corpus{"umthuli", "nosakhile"}, tokens)
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens := Tokenize("", TokenizeConf{Digits: true})
	assert.Empty(t, tokens)
}

func TestTokenizeSeparatorsOnly(t *testing.T) {
	tokens := Tokenize(" ,.;!? \n\t", TokenizeConf{Digits: true})
	assert.Empty(t, tokens)
}

func TestTokenizeDigits(t *testing.T) {
	tokens := Tokenize("iminyaka engu-30 edlule", TokenizeConf{Digits: true})
	assert.Equal(t, Corpus{"iminyaka", "engu", "30", "edlule"}, tokens)

	tokens = Tokenize("iminyaka engu-30 edlule", TokenizeConf{})
	assert.Equal(t, Corpus{"iminyaka", "engu", "edlule"}, tokens)
}

func TestTokenizeNonASCIILetters(t *testing.T) {
	tokens := Tokenize("Dvořák café", TokenizeConf{Digits: true})
	assert.Equal(t, Corpus{"Dvořák", "café"}, tokens)
}

func TestTokenizeDeterministic(t *testing.T) {
	text := "aa bb. aa: cc aa"
	conf := TokenizeConf{Lowercase: true, Digits: true}
	assert.Equal(t, Tokenize(text, conf), Tokenize(text, conf))
}
