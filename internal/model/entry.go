package model

import (
	"fmt"
	"time"
)

// Entry is one node of the document tree. ParentID is nil for entries living at the root.
type Entry struct {
	ID        int64
	Name      string
	Kind      Kind
	ParentID  *int64
	UpdatedAt time.Time
}

// IsFolder reports whether the entry can hold children.
func (e Entry) IsFolder() bool {
	_, ok := e.Kind.(FolderKind)
	return ok
}

// Kind is the closed set of entry variants: FolderKind or FileKind.
type Kind interface {
	kind()
}

// FolderKind marks a folder entry.
type FolderKind struct{}

// FileKind marks a file entry. Size is a display label such as "2.4 MB" and may be empty.
type FileKind struct {
	Type FileType
	Size string
}

func (FolderKind) kind() {}
func (FileKind) kind()   {}

type FileType string

const (
	FileTypePDF         FileType = "pdf"
	FileTypeDoc         FileType = "doc"
	FileTypeImage       FileType = "image"
	FileTypeSpreadsheet FileType = "spreadsheet"
)

// KindFolder is the persisted/wire name of FolderKind.
const KindFolder = "folder"

func (t FileType) Valid() bool {
	switch t {
	case FileTypePDF, FileTypeDoc, FileTypeImage, FileTypeSpreadsheet:
		return true
	}
	return false
}

// KindName returns the persisted name of k ("folder", "pdf", "doc", "image", "spreadsheet").
func KindName(k Kind) string {
	switch v := k.(type) {
	case FolderKind:
		return KindFolder
	case FileKind:
		return string(v.Type)
	default:
		panic(fmt.Sprintf("model: unknown entry kind %T", k))
	}
}

// KindSize returns the size label of a file kind, or nil for folders and unsized files.
func KindSize(k Kind) *string {
	if f, ok := k.(FileKind); ok && f.Size != "" {
		size := f.Size
		return &size
	}
	return nil
}

// ParseKind is the inverse of KindName. Size is ignored for folders.
func ParseKind(name string, size *string) (Kind, error) {
	if name == KindFolder {
		return FolderKind{}, nil
	}
	t := FileType(name)
	if !t.Valid() {
		return nil, fmt.Errorf("unknown entry kind %q", name)
	}
	f := FileKind{Type: t}
	if size != nil {
		f.Size = *size
	}
	return f, nil
}

// Breadcrumb is one segment of the navigation trail. The synthetic root crumb has a nil ID.
type Breadcrumb struct {
	ID   *int64
	Name string
}
