// Package doctree holds the document manager's in-memory folder/file tree together with the
// viewer's location state (current folder and breadcrumb trail).
//
// Entries live in one flat slice in insertion order and point at their container through
// ParentID. A Tree is not safe for concurrent use; callers own serialization.
package doctree

import (
	"strings"
	"time"

	"dashboard/backend/internal/model"
)

const DefaultRootLabel = "Documents"

type Tree struct {
	entries []model.Entry
	index   map[int64]int // id -> position in entries

	currentFolderID *int64
	trail           []model.Breadcrumb

	rootLabel string
	nextID    func() int64
	seq       int64 // highest id ever held; the default generator hands out seq+1
	now       func() time.Time
	checks    bool
}

type Option func(*Tree)

// WithRootLabel sets the name of the synthetic root crumb.
func WithRootLabel(label string) Option {
	return func(t *Tree) {
		if strings.TrimSpace(label) != "" {
			t.rootLabel = label
		}
	}
}

// WithIDGenerator sets the id source for CreateFolder. It must never repeat a value.
func WithIDGenerator(next func() int64) Option {
	return func(t *Tree) { t.nextID = next }
}

func WithClock(now func() time.Time) Option {
	return func(t *Tree) { t.now = now }
}

// WithInvariantChecks runs Check after every mutation and panics on a violation.
func WithInvariantChecks(enabled bool) Option {
	return func(t *Tree) { t.checks = enabled }
}

// New returns an empty tree positioned at the root. Without WithIDGenerator, ids continue
// from the highest id the tree has held.
func New(opts ...Option) *Tree {
	t := &Tree{
		index:     make(map[int64]int),
		rootLabel: DefaultRootLabel,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.nextID == nil {
		t.nextID = t.nextSeq
	}
	t.resetLocation()
	return t
}

// Load replaces the entry set with entries, in order, after validating every structural
// invariant. Location is reset to the root. On error the tree is left untouched.
func (t *Tree) Load(entries []model.Entry) error {
	staged := make([]model.Entry, len(entries))
	for i, e := range entries {
		staged[i] = cloneEntry(e)
	}
	index, err := buildIndex(staged)
	if err != nil {
		return err
	}
	if err := checkStructure(staged, index); err != nil {
		return err
	}
	t.entries = staged
	t.index = index
	for _, e := range staged {
		t.raiseSeq(e.ID)
	}
	t.resetLocation()
	return nil
}

// Insert adds an entry produced outside the tree, such as a file registered after upload or
// a folder created by another session. A fresh leaf cannot close a cycle, so only id
// uniqueness and the parent reference are checked.
func (t *Tree) Insert(e model.Entry) error {
	if _, exists := t.index[e.ID]; exists {
		return &InvariantError{EntryID: e.ID, Reason: "duplicate id"}
	}
	if e.Kind == nil {
		return &InvariantError{EntryID: e.ID, Reason: "missing kind"}
	}
	if err := t.checkParent(e); err != nil {
		return err
	}
	t.append(cloneEntry(e))
	t.assert()
	return nil
}

func (t *Tree) Get(id int64) (model.Entry, bool) {
	i, ok := t.index[id]
	if !ok {
		return model.Entry{}, false
	}
	return cloneEntry(t.entries[i]), true
}

func (t *Tree) Len() int {
	return len(t.entries)
}

// Entries returns a copy of every entry in insertion order.
func (t *Tree) Entries() []model.Entry {
	out := make([]model.Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

// ListChildren returns the entries whose parent is folderID (nil for the root), in insertion order.
func (t *Tree) ListChildren(folderID *int64) []model.Entry {
	children := make([]model.Entry, 0)
	for _, e := range t.entries {
		if sameParent(e.ParentID, folderID) {
			children = append(children, cloneEntry(e))
		}
	}
	return children
}

// Navigate moves the view to folderID. A nil id resets to the root; an id already on the
// trail truncates the trail there; any other id is appended as a child segment.
//
// folderID must name an existing folder. Callers pass ids taken from rendered folder tiles
// or trail segments, so the tree does not re-check the kind.
func (t *Tree) Navigate(folderID *int64, folderName string) {
	if folderID == nil {
		t.resetLocation()
		return
	}
	if i := t.trailIndex(*folderID); i >= 0 {
		t.trail = t.trail[:i+1]
	} else {
		t.trail = append(t.trail, model.Breadcrumb{ID: int64Ptr(*folderID), Name: folderName})
	}
	t.currentFolderID = int64Ptr(*folderID)
	t.assert()
}

func (t *Tree) CurrentFolderID() *int64 {
	if t.currentFolderID == nil {
		return nil
	}
	return int64Ptr(*t.currentFolderID)
}

// CreateFolder adds a folder named name (trimmed) inside the current folder. Siblings may
// share a name.
func (t *Tree) CreateFolder(name string) (model.Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Entry{}, &ValidationError{Field: "name", Reason: "must not be blank"}
	}

	id := t.nextID()
	if _, exists := t.index[id]; exists {
		return model.Entry{}, &InvariantError{EntryID: id, Reason: "id generator returned a used id"}
	}

	e := model.Entry{
		ID:        id,
		Name:      name,
		Kind:      model.FolderKind{},
		ParentID:  t.CurrentFolderID(),
		UpdatedAt: t.now().UTC(),
	}
	t.append(e)
	t.assert()
	return cloneEntry(e), nil
}

// Closure returns id followed by every entry nested beneath it, or nil if id is unknown.
func (t *Tree) Closure(id int64) []int64 {
	if _, ok := t.index[id]; !ok {
		return nil
	}

	children := make(map[int64][]int64)
	for _, e := range t.entries {
		if e.ParentID != nil {
			children[*e.ParentID] = append(children[*e.ParentID], e.ID)
		}
	}

	closure := []int64{id}
	for i := 0; i < len(closure); i++ {
		closure = append(closure, children[closure[i]]...)
	}
	return closure
}

// Delete removes id and all of its descendants in one step and returns the removed ids.
// Unknown ids are a no-op.
//
// If the current folder is removed, the trail is cut back to the nearest surviving
// ancestor and the view moves there.
func (t *Tree) Delete(id int64) []int64 {
	closure := t.Closure(id)
	if len(closure) == 0 {
		return nil
	}

	removed := make(map[int64]struct{}, len(closure))
	for _, rid := range closure {
		removed[rid] = struct{}{}
	}

	kept := make([]model.Entry, 0, len(t.entries)-len(closure))
	for _, e := range t.entries {
		if _, gone := removed[e.ID]; !gone {
			kept = append(kept, e)
		}
	}
	t.entries = kept
	t.reindex()
	t.reconcileLocation(removed)
	t.assert()
	return closure
}

// Breadcrumbs returns a copy of the trail, root first.
func (t *Tree) Breadcrumbs() []model.Breadcrumb {
	out := make([]model.Breadcrumb, len(t.trail))
	for i, b := range t.trail {
		out[i] = model.Breadcrumb{Name: b.Name}
		if b.ID != nil {
			out[i].ID = int64Ptr(*b.ID)
		}
	}
	return out
}

// Path returns the ancestor chain of id from its root-level ancestor down to the entry itself.
func (t *Tree) Path(id int64) ([]model.Entry, error) {
	e, ok := t.Get(id)
	if !ok {
		return nil, &InvariantError{EntryID: id, Reason: "not found"}
	}
	path := []model.Entry{e}
	for steps := 0; e.ParentID != nil; steps++ {
		if steps >= len(t.entries) {
			return nil, &InvariantError{EntryID: id, Reason: "ancestor chain does not terminate"}
		}
		parent, ok := t.Get(*e.ParentID)
		if !ok {
			return nil, &InvariantError{EntryID: e.ID, Reason: "dangling parent"}
		}
		path = append(path, parent)
		e = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

func (t *Tree) append(e model.Entry) {
	t.index[e.ID] = len(t.entries)
	t.entries = append(t.entries, e)
	t.raiseSeq(e.ID)
}

func (t *Tree) nextSeq() int64 {
	t.seq++
	return t.seq
}

func (t *Tree) raiseSeq(id int64) {
	if id > t.seq {
		t.seq = id
	}
}

func (t *Tree) reindex() {
	t.index = make(map[int64]int, len(t.entries))
	for i, e := range t.entries {
		t.index[e.ID] = i
	}
}

func (t *Tree) resetLocation() {
	t.currentFolderID = nil
	t.trail = []model.Breadcrumb{{ID: nil, Name: t.rootLabel}}
}

func (t *Tree) reconcileLocation(removed map[int64]struct{}) {
	for i, b := range t.trail {
		if b.ID == nil {
			continue
		}
		if _, gone := removed[*b.ID]; gone {
			t.trail = t.trail[:i]
			last := t.trail[len(t.trail)-1]
			t.currentFolderID = nil
			if last.ID != nil {
				t.currentFolderID = int64Ptr(*last.ID)
			}
			return
		}
	}
}

func (t *Tree) trailIndex(id int64) int {
	for i, b := range t.trail {
		if b.ID != nil && *b.ID == id {
			return i
		}
	}
	return -1
}

func (t *Tree) checkParent(e model.Entry) error {
	if e.ParentID == nil {
		return nil
	}
	parent, ok := t.Get(*e.ParentID)
	if !ok {
		return &InvariantError{EntryID: e.ID, Reason: "dangling parent"}
	}
	if !parent.IsFolder() {
		return &InvariantError{EntryID: e.ID, Reason: "parent is not a folder"}
	}
	return nil
}

func (t *Tree) assert() {
	if !t.checks {
		return
	}
	if err := t.Check(); err != nil {
		panic(err)
	}
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// cloneEntry detaches ParentID so callers never share the tree's pointer.
func cloneEntry(e model.Entry) model.Entry {
	if e.ParentID != nil {
		e.ParentID = int64Ptr(*e.ParentID)
	}
	return e
}

func int64Ptr(v int64) *int64 {
	return &v
}
