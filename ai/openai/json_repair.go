// Copyright 2026 Poiesic Systems
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


package openai

import "strings"

// repairJSON attempts to fix common JSON formatting issues in LLM responses.
// It handles object keys missing their opening quote, e.g. `, tags":` is
// rewritten to `, "tags":`.
func repairJSON(s string) string {
	runes := []rune(s)
	var fixed strings.Builder
	fixed.Grow(len(s) + 16)

	i := 0
	for i < len(runes) {
		ch := runes[i]
		fixed.WriteRune(ch)
		i++

		if ch != '{' && ch != ',' {
			continue
		}

		// Key position: skip whitespace, then look for a bare word that is
		// terminated by `":` which means the opening quote was dropped.
		for i < len(runes) && (runes[i] == ' ' || runes[i] == '\n' || runes[i] == '\t') {
			fixed.WriteRune(runes[i])
			i++
		}

		if i >= len(runes) || runes[i] == '"' || !isLetter(runes[i]) {
			continue
		}

		keyStart := i
		for i < len(runes) && (isLetter(runes[i]) || runes[i] == '_') {
			i++
		}

		if i+1 < len(runes) && runes[i] == '"' && runes[i+1] == ':' {
			fixed.WriteRune('"')
		}
		fixed.WriteString(string(runes[keyStart:i]))
	}

	return fixed.String()
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
