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
	"unicode/utf8"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// charsetDecoders maps charset names as reported by the statistical
// detector onto concrete decoders. Charsets missing here end up decoded
// as Latin-1 which accepts any byte value.
var charsetDecoders = map[string]encoding.Encoding{
	"ISO-8859-1":   charmap.ISO8859_1,
	"ISO-8859-2":   charmap.ISO8859_2,
	"ISO-8859-15":  charmap.ISO8859_15,
	"windows-1250": charmap.Windows1250,
	"windows-1252": charmap.Windows1252,
	"UTF-16BE":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"UTF-16LE":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
}

// Decode converts raw uploaded bytes into text. Strict UTF-8 is tried
// first. Otherwise a statistical detector proposes a charset and the
// matching decoder runs, accepting lossy substitution rather than
// failing outright. Latin-1 is the terminal fallback. The second return
// value names the charset actually applied.
func Decode(data []byte) (string, string, error) {
	if utf8.Valid(data) {
		return string(data), "UTF-8", nil
	}
	if match, err := chardet.NewTextDetector().DetectBest(data); err == nil {
		if enc, ok := charsetDecoders[match.Charset]; ok {
			decoded, err := enc.NewDecoder().Bytes(data)
			if err == nil {
				return string(decoded), match.Charset, nil
			}
		}
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", &DecodeError{Tried: []string{"UTF-8", "(detected)", "ISO-8859-1"}}
	}
	return string(decoded), "ISO-8859-1", nil
}
