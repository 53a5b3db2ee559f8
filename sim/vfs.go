// Implements the hierarchical name -> node directory structure: a plain
// inode tree with insert and lookup, no persistence and no real storage.

package sim

import (
	"fmt"
	"sort"
)

// INode is one node in the directory tree. Directories hold children by
// name; files hold content.
type INode struct {
	ID       int
	Name     string
	Dir      bool
	Size     int64
	Content  string
	children map[string]*INode
}

// FileSystem is an in-memory directory tree rooted at "/".
type FileSystem struct {
	root    *INode
	current *INode
	nextID  int
}

// NewFileSystem creates a tree containing only the root directory, which
// is also the current directory.
func NewFileSystem() *FileSystem {
	root := &INode{ID: 0, Name: "/", Dir: true, children: make(map[string]*INode)}
	return &FileSystem{root: root, current: root, nextID: 1}
}

// CreateFile adds a file to the current directory.
// A duplicate name wraps ErrInvalidArgument.
func (fs *FileSystem) CreateFile(name, content string) (*INode, error) {
	if _, exists := fs.current.children[name]; exists {
		return nil, fmt.Errorf("%w: %q already exists", ErrInvalidArgument, name)
	}
	node := &INode{ID: fs.nextID, Name: name, Size: int64(len(content)), Content: content}
	fs.current.children[name] = node
	fs.nextID++
	return node, nil
}

// CreateDir adds a directory to the current directory.
// A duplicate name wraps ErrInvalidArgument.
func (fs *FileSystem) CreateDir(name string) (*INode, error) {
	if _, exists := fs.current.children[name]; exists {
		return nil, fmt.Errorf("%w: %q already exists", ErrInvalidArgument, name)
	}
	node := &INode{ID: fs.nextID, Name: name, Dir: true, children: make(map[string]*INode)}
	fs.current.children[name] = node
	fs.nextID++
	return node, nil
}

// List returns the current directory's entries sorted by name.
func (fs *FileSystem) List() []*INode {
	out := make([]*INode, 0, len(fs.current.children))
	for _, node := range fs.current.children {
		out = append(out, node)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Read returns the content of the named file in the current directory.
// A missing name wraps ErrNotFound; a directory wraps ErrInvalidArgument.
func (fs *FileSystem) Read(name string) (string, error) {
	node, ok := fs.current.children[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if node.Dir {
		return "", fmt.Errorf("%w: %q is a directory", ErrInvalidArgument, name)
	}
	return node.Content, nil
}

// ChangeDir descends into the named child directory of the current
// directory. A missing name wraps ErrNotFound; a file wraps
// ErrInvalidArgument.
func (fs *FileSystem) ChangeDir(name string) error {
	node, ok := fs.current.children[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if !node.Dir {
		return fmt.Errorf("%w: %q is not a directory", ErrInvalidArgument, name)
	}
	fs.current = node
	return nil
}
