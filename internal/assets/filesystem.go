package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader loads assets from a directory with the layout:
//
//	<base>/
//	├── styles/
//	│   └── <name>.css
//	└── templates/
//	    └── <name>.html
//
// Names missing on disk fall back to the embedded assets, so a custom
// directory only needs to override what it changes.
type FilesystemLoader struct {
	base     string
	fallback *EmbeddedLoader
}

// NewFilesystemLoader creates a FilesystemLoader rooted at base.
// Returns ErrInvalidBasePath if base is not an existing directory.
func NewFilesystemLoader(base string) (*FilesystemLoader, error) {
	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidBasePath, base)
	}

	return &FilesystemLoader{
		base:     base,
		fallback: NewEmbeddedLoader(),
	}, nil
}

// LoadStyle loads a CSS style from the directory, falling back to
// embedded assets when the file does not exist.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.base, "styles", name+".css")
	content, err := os.ReadFile(path) // #nosec G304 -- name validated above
	if err != nil {
		if os.IsNotExist(err) {
			return f.fallback.LoadStyle(name)
		}
		return "", fmt.Errorf("%w: %q: %v", ErrStyleNotFound, name, err)
	}

	return string(content), nil
}

// LoadTemplate loads an HTML template from the directory, falling back
// to embedded assets when the file does not exist.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.base, "templates", name+".html")
	content, err := os.ReadFile(path) // #nosec G304 -- name validated above
	if err != nil {
		if os.IsNotExist(err) {
			return f.fallback.LoadTemplate(name)
		}
		return "", fmt.Errorf("%w: %q: %v", ErrTemplateNotFound, name, err)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
