package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    fs.FileInfo
	readErr error
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) read() ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.content, nil
}

type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.entriesUnder(d.absPath)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	var skipped []string
	for _, entry := range entries {
		if hasAnyPrefix(entry.absPath, skipped) {
			continue
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(entry.absPath, d.absPath), "/")
		if rel == "" {
			rel = "."
		}
		view := &memoryFile{
			absPath: entry.absPath,
			relPath: rel,
			content: entry.content,
			info:    entry.info,
			readErr: entry.readErr,
		}

		err := fn(view, nil)
		if errors.Is(err, fs.SkipDir) && entry.info.IsDir() {
			skipped = append(skipped, entry.absPath+"/")
			continue
		}
		if err != nil {
			return err
		}

		if entry.info.IsDir() && entry.readErr != nil {
			skipped = append(skipped, entry.absPath+"/")
			listErr := &fs.PathError{Op: "readdirent", Path: entry.absPath, Err: entry.readErr}
			if err := fn(view, listErr); err != nil && !errors.Is(err, fs.SkipDir) {
				return err
			}
		}
	}

	return nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// It is not safe for concurrent mutation.
type MemoryFileSystem struct {
	files map[string]*memoryFile
	root  string
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
// Paths use forward slashes regardless of the host OS.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.files[root] = newMemoryDir(root)
	return mfs
}

func newMemoryDir(absPath string) *memoryFile {
	return &memoryFile{
		absPath: absPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// Root returns the root path of the filesystem.
func (mfs *MemoryFileSystem) Root() string {
	return mfs.root
}

// AddFile adds a file; relative paths are resolved against the root.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.resolve(filePath)
	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		content: []byte(content),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddUnreadableFile adds a file whose reads fail with err.
// It appears in walks and Stat like any other file.
func (mfs *MemoryFileSystem) AddUnreadableFile(filePath string, err error) {
	mfs.AddFile(filePath, "")
	mfs.files[mfs.resolve(filePath)].readErr = err
}

// AddUnreadableDir adds a directory whose listing fails with err.
// Walks visit the directory, then report err for it and skip its contents.
func (mfs *MemoryFileSystem) AddUnreadableDir(dirPath string, err error) {
	absPath := mfs.resolve(dirPath)
	dir := newMemoryDir(absPath)
	dir.readErr = err
	mfs.files[absPath] = dir
	mfs.ensureDirectoriesExist(absPath)
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}
	mfs.files[dir] = newMemoryDir(dir)
	mfs.ensureDirectoriesExist(dir)
}

func (mfs *MemoryFileSystem) entriesUnder(basePath string) []*memoryFile {
	var entries []*memoryFile
	for p, file := range mfs.files {
		if p == basePath || basePath == "/" || strings.HasPrefix(p, basePath+"/") {
			entries = append(entries, file)
		}
	}
	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)
	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}
	if !file.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	file, exists := mfs.files[mfs.resolve(filePath)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return file.read()
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return file.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
