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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/wdfconv/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📁 Default location, relative to os.UserConfigDir
const (
	AppName         = "wdfconv"
	DefaultFilename = "preferences.yaml"
)

// Preference keys accepted by Set
const (
	KeySource      = "source"
	KeyDestination = "destination"
)

// ErrUnknownKey is returned by Set for keys other than KeySource and KeyDestination.
var ErrUnknownKey = errors.Base("unknown preference key")

// 🔌 Parser is the interface for preference file formats
type Parser interface {
	// 📝 Parse parses preferences from bytes
	Parse(ctx context.Context, data []byte) (*Preferences, error)

	// 💾 Marshal renders preferences in this format
	Marshal(ctx context.Context, prefs *Preferences) ([]byte, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Preferences remembers the last directories used
type Preferences struct {
	SourceDirectory      string `json:"source_directory,omitempty" yaml:"source_directory,omitempty" hcl:"source_directory,optional"`
	DestinationDirectory string `json:"destination_directory,omitempty" yaml:"destination_directory,omitempty" hcl:"destination_directory,optional"`
}

// 🔍 Normalize cleans the stored paths
func (p *Preferences) Normalize() {
	if p.SourceDirectory != "" {
		p.SourceDirectory = filepath.Clean(p.SourceDirectory)
	}
	if p.DestinationDirectory != "" {
		p.DestinationDirectory = filepath.Clean(p.DestinationDirectory)
	}
}

// Set updates one preference by key
func (p *Preferences) Set(key, value string) error {
	switch strings.ToLower(key) {
	case KeySource:
		p.SourceDirectory = value
	case KeyDestination:
		p.DestinationDirectory = value
	default:
		return errors.Errorf("%w: %q (want %s or %s)", ErrUnknownKey, key, KeySource, KeyDestination)
	}
	p.Normalize()
	return nil
}

// 📝 String returns a string representation of the preferences
func (p *Preferences) String() string {
	return fmt.Sprintf("%s -> %s", p.SourceDirectory, p.DestinationDirectory)
}

// 💾 Store loads and saves preferences
type Store interface {
	Load(ctx context.Context) (*Preferences, error)
	Save(ctx context.Context, prefs *Preferences) error
}

// 🗄️ FileStore keeps preferences in a single file whose extension picks the format
type FileStore struct {
	path    string
	parser  Parser
	storage status.Storage
}

var _ Store = (*FileStore)(nil)

// 🏭 NewFileStore creates a store for path
func NewFileStore(path string) (*FileStore, error) {
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}
	return &FileStore{
		path:    path,
		parser:  p,
		storage: status.NewManager(),
	}, nil
}

// Path returns the preferences file location
func (s *FileStore) Path() string {
	return s.path
}

// 🎯 Load reads the preferences file. A missing file yields empty preferences.
func (s *FileStore) Load(ctx context.Context) (*Preferences, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", s.path).Msg("loading preferences")

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug().Str("path", s.path).Msg("no preferences file yet")
		return &Preferences{}, nil
	}
	if err != nil {
		return nil, errors.Errorf("reading preferences file: %w", err)
	}

	prefs, err := s.parser.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing preferences: %w", err)
	}
	prefs.Normalize()

	return prefs, nil
}

// 💾 Save writes the preferences file, creating its directory if needed
func (s *FileStore) Save(ctx context.Context, prefs *Preferences) error {
	if prefs == nil {
		return errors.Errorf("preferences are required")
	}

	data, err := s.parser.Marshal(ctx, prefs)
	if err != nil {
		return errors.Errorf("encoding preferences: %w", err)
	}

	if err := s.storage.CreateDir(ctx, filepath.Dir(s.path)); err != nil {
		return errors.Errorf("creating preferences directory: %w", err)
	}
	if err := s.storage.WriteFileAtomic(ctx, s.path, data); err != nil {
		return errors.Errorf("writing preferences file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", s.path).Msg("saved preferences")
	return nil
}

// 🏠 DefaultPath returns $UserConfigDir/wdfconv/preferences.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Errorf("finding user config dir: %w", err)
	}
	return filepath.Join(dir, AppName, DefaultFilename), nil
}
