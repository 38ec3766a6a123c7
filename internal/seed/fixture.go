// Package seed loads sample folder trees into the catalog store.
package seed

import (
	"embed"
	"fmt"
	"os"

	"explorer/internal/config"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var fixtureFiles embed.FS

// Fixture is a tree of folders to create, roots first
type Fixture struct {
	Folders []FolderNode `yaml:"folders"`
}

// FolderNode is one folder with its files and subfolders
type FolderNode struct {
	Name    string       `yaml:"name"`
	Files   []FileNode   `yaml:"files"`
	Folders []FolderNode `yaml:"folders"`
}

// FileNode is a file inside a FolderNode
type FileNode struct {
	Name string `yaml:"name"`
	Size int64  `yaml:"size"`
}

// Default returns the embedded sample tree
func Default() (*Fixture, error) {
	data, err := fixtureFiles.ReadFile("fixtures/default.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read default fixture: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a fixture from disk
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML fixture
func Parse(data []byte) (*Fixture, error) {
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fixture: %w", err)
	}
	if err := fixture.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return &fixture, nil
}

// Validate checks every node in the tree
func (f *Fixture) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Folders, validation.Required),
	)
}

// Validate implements validation.Validatable; nested folders and files are
// validated recursively through the slice fields.
func (n FolderNode) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Name, validation.Required, validation.RuneLength(1, config.MaxFolderNameLength)),
		validation.Field(&n.Files),
		validation.Field(&n.Folders),
	)
}

// Validate implements validation.Validatable
func (n FileNode) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Name, validation.Required),
		validation.Field(&n.Size, validation.Min(int64(0))),
	)
}

// Counts returns the number of folders and files in the fixture
func (f *Fixture) Counts() (folders, files int) {
	var walk func(nodes []FolderNode)
	walk = func(nodes []FolderNode) {
		for _, node := range nodes {
			folders++
			files += len(node.Files)
			walk(node.Folders)
		}
	}
	walk(f.Folders)
	return folders, files
}
