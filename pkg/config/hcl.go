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
	"context"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses preferences from HCL. Expressions may refer to ${home}.
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Preferences, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "preferences.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}
	if home, err := os.UserHomeDir(); err == nil {
		evalCtx.Variables["home"] = cty.StringVal(home)
	}

	var prefs Preferences
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &prefs)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &prefs, nil
}

// 💾 Marshal renders the non-empty preferences as HCL attributes
func (p *HCLParser) Marshal(ctx context.Context, prefs *Preferences) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if prefs.SourceDirectory != "" {
		body.SetAttributeValue("source_directory", cty.StringVal(prefs.SourceDirectory))
	}
	if prefs.DestinationDirectory != "" {
		body.SetAttributeValue("destination_directory", cty.StringVal(prefs.DestinationDirectory))
	}

	return hclwrite.Format(f.Bytes()), nil
}
