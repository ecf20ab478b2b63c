// Copyright 2025 walteh LLC
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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 🧪 TestParserRegistration tests the parser registration system
func TestParserRegistration(t *testing.T) {
	// Save original parsers
	originalParsers := parsers
	defer func() {
		parsers = originalParsers
	}()

	// Reset parsers
	parsers = nil
	assert.Nil(t, GetParser("preferences.yaml"), "no parser before registration")

	Register(&YAMLParser{})
	assert.Len(t, parsers, 1, "should have 1 parser registered")
	assert.IsType(t, &YAMLParser{}, GetParser("preferences.yaml"))
}

// 🧪 TestParserSelection tests parser selection by file extension
func TestParserSelection(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Parser
	}{
		{name: "yaml_file", filename: "preferences.yaml", want: &YAMLParser{}},
		{name: "yml_file", filename: "preferences.yml", want: &YAMLParser{}},
		{name: "json_file", filename: "preferences.json", want: &JSONParser{}},
		{name: "json_upper", filename: "PREFERENCES.JSON", want: &JSONParser{}},
		{name: "hcl_file", filename: "preferences.hcl", want: &HCLParser{}},
		{name: "unknown_file", filename: "preferences.toml", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got, "should not find parser")
				return
			}
			assert.IsType(t, tt.want, got, "should get correct parser type")
		})
	}
}

// 🧪 TestMarshalOmitsEmpty tests that empty preferences stay out of the file
func TestMarshalOmitsEmpty(t *testing.T) {
	prefs := &Preferences{SourceDirectory: "/data/raw"}

	tests := []struct {
		name   string
		parser Parser
		want   string
	}{
		{name: "yaml", parser: &YAMLParser{}, want: "source_directory: /data/raw\n"},
		{name: "json", parser: &JSONParser{}, want: "{\n  \"source_directory\": \"/data/raw\"\n}\n"},
		{name: "hcl", parser: &HCLParser{}, want: "source_directory = \"/data/raw\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parser.Marshal(testContext(t), prefs)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
