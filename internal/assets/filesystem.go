package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads assets from an override directory on disk, falling
// back to the embedded defaults for anything the directory doesn't provide.
// Implements the Loader interface.
type FilesystemLoader struct {
	baseDir  string
	fallback Loader
}

// NewFilesystemLoader creates a FilesystemLoader rooted at baseDir.
// Returns ErrInvalidBaseDir if the path is not a valid, readable directory.
func NewFilesystemLoader(baseDir string) (*FilesystemLoader, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBaseDir)
	}

	absPath, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseDir, err)
	}

	// Resolve symlinks so path containment checks hold when baseDir is a
	// symlink itself.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBaseDir, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBaseDir, absPath)
	}

	return &FilesystemLoader{baseDir: absPath, fallback: NewEmbeddedLoader()}, nil
}

// LoadStyle loads {baseDir}/styles/{name}.css, falling back to the embedded
// stylesheet of the same name.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	content, err := f.load("styles", name+".css")
	if err == nil {
		return content, nil
	}
	if os.IsNotExist(err) {
		return f.fallback.LoadStyle(name)
	}
	return "", err
}

// LoadTemplate loads {baseDir}/templates/{name}.html, falling back to the
// embedded template of the same name.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	content, err := f.load("templates", name+".html")
	if err == nil {
		return content, nil
	}
	if os.IsNotExist(err) {
		return f.fallback.LoadTemplate(name)
	}
	return "", err
}

func (f *FilesystemLoader) load(kind, file string) (string, error) {
	name := strings.TrimSuffix(file, filepath.Ext(file))
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.baseDir, kind, file)
	if err := f.verifyPathContainment(path); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- path validated above
	if err != nil {
		if os.IsNotExist(err) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// verifyPathContainment ensures the resolved path stays inside baseDir.
func (f *FilesystemLoader) verifyPathContainment(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPathTraversal, err)
	}
	prefix := f.baseDir + string(filepath.Separator)
	if !strings.HasPrefix(absPath, prefix) {
		return fmt.Errorf("%w: %s escapes %s", ErrPathTraversal, path, f.baseDir)
	}
	return nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
