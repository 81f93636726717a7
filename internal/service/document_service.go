//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"dashboard/backend/internal/doctree"
	"dashboard/backend/internal/metrics"
	"dashboard/backend/internal/model"
	"dashboard/backend/internal/notify"
	"dashboard/backend/internal/repository"
	"dashboard/backend/pkg/logger"
	"dashboard/backend/pkg/sanitizer"
)

// DocumentService exposes the document tree to HTTP clients. Every client session gets its
// own replica of the tree so that each keeps an independent current folder and trail.
type DocumentService interface {
	Current(ctx context.Context, sessionID string) (Listing, error)
	Children(ctx context.Context, sessionID string, folderID *int64) ([]model.Entry, error)
	Navigate(ctx context.Context, sessionID string, folderID *int64, name string) ([]model.Breadcrumb, error)
	CreateFolder(ctx context.Context, sessionID string, name string) (model.Entry, error)
	Delete(ctx context.Context, sessionID string, id int64) error
	Breadcrumbs(ctx context.Context, sessionID string) ([]model.Breadcrumb, error)
	EvictIdle(olderThan time.Duration) int
	SessionCount() int
}

// Listing is what the dashboard renders for the current folder.
type Listing struct {
	CurrentFolderID *int64
	Entries         []model.Entry
	Breadcrumbs     []model.Breadcrumb
}

type DocumentOptions struct {
	RootLabel       string
	CheckInvariants bool
	// NextID must be shared by every session so ids never collide across replicas. When nil
	// each tree continues from the highest id it has seen, which stays consistent because
	// creations are propagated to every session under the service lock.
	NextID func() int64
	Now    func() time.Time
}

type session struct {
	tree     *doctree.Tree
	lastSeen time.Time
}

type documentService struct {
	entries repository.EntryRepository
	sink    notify.Sink
	opts    DocumentOptions

	// mu guards sessions and every tree, and is held across repository writes so that the
	// database and the replicas change together.
	mu       sync.Mutex
	sessions map[string]*session
}

func NewDocumentService(entries repository.EntryRepository, sink notify.Sink, opts DocumentOptions) DocumentService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &documentService{
		entries:  entries,
		sink:     sink,
		opts:     opts,
		sessions: make(map[string]*session),
	}
}

func (s *documentService) Current(ctx context.Context, sessionID string) (Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return Listing{}, err
	}
	current := sess.tree.CurrentFolderID()
	return Listing{
		CurrentFolderID: current,
		Entries:         sess.tree.ListChildren(current),
		Breadcrumbs:     sess.tree.Breadcrumbs(),
	}, nil
}

func (s *documentService) Children(ctx context.Context, sessionID string, folderID *int64) ([]model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if folderID != nil {
		if _, err := lookupFolder(sess.tree, *folderID); err != nil {
			return nil, err
		}
	}
	return sess.tree.ListChildren(folderID), nil
}

// Navigate moves the session to folderID, or to the root when folderID is nil. The stored
// folder name is used for the new crumb; name from the client is only compared for logging.
func (s *documentService) Navigate(ctx context.Context, sessionID string, folderID *int64, name string) ([]model.Breadcrumb, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	tree := sess.tree
	if folderID == nil {
		tree.Navigate(nil, "")
		metrics.ObserveOp("navigate", nil)
		return tree.Breadcrumbs(), nil
	}

	folder, err := lookupFolder(tree, *folderID)
	if err != nil {
		metrics.ObserveOp("navigate", err)
		return nil, err
	}
	if hint := strings.TrimSpace(name); hint != "" && hint != folder.Name {
		logger.Debug("navigate name differs from stored name", "module", "service", "action", "navigate", "resource", "folder", "result", "ok", "folder_id", folder.ID, "name", hint, "stored_name", folder.Name)
	}

	if onTrail(tree, folder.ID) || sameID(folder.ParentID, tree.CurrentFolderID()) {
		tree.Navigate(&folder.ID, folder.Name)
	} else {
		path, err := tree.Path(folder.ID)
		if err != nil {
			metrics.ObserveOp("navigate", err)
			return nil, fmt.Errorf("resolve folder path: %w", err)
		}
		tree.Navigate(nil, "")
		for _, step := range path {
			tree.Navigate(&step.ID, step.Name)
		}
	}
	metrics.ObserveOp("navigate", nil)
	return tree.Breadcrumbs(), nil
}

func (s *documentService) CreateFolder(ctx context.Context, sessionID string, name string) (model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return model.Entry{}, err
	}

	entry, err := sess.tree.CreateFolder(sanitizer.CleanName(name))
	if err != nil {
		metrics.ObserveOp("create_folder", err)
		if errors.Is(err, doctree.ErrValidation) {
			s.notifyError(ctx, "Folder not created", "Folder name must not be blank")
			return model.Entry{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		s.notifyError(ctx, "Folder not created", "Could not allocate a folder id")
		return model.Entry{}, fmt.Errorf("create folder: %w", err)
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		sess.tree.Delete(entry.ID)
		metrics.ObserveOp("create_folder", err)
		logger.Error("create folder failed", "module", "service", "action", "create", "resource", "folder", "result", "failed", "folder_id", entry.ID, "error", err)
		s.notifyError(ctx, "Folder not created", fmt.Sprintf("Could not save %q", entry.Name))
		return model.Entry{}, fmt.Errorf("persist folder: %w", err)
	}

	for id, other := range s.sessions {
		if id == sessionID {
			continue
		}
		if err := other.tree.Insert(entry); err != nil {
			logger.Warn("drop out-of-sync session", "module", "service", "action", "create", "resource", "session", "result", "failed", "folder_id", entry.ID, "error", err)
			delete(s.sessions, id)
		}
	}
	metrics.SessionsActive.Set(float64(len(s.sessions)))
	metrics.ObserveOp("create_folder", nil)
	logger.Info("folder created", "module", "service", "action", "create", "resource", "folder", "result", "ok", "folder_id", entry.ID, "name", entry.Name)
	s.sink.Notify(ctx, notify.Notification{
		Level:   notify.LevelSuccess,
		Title:   "Folder created",
		Message: fmt.Sprintf("%q was created", entry.Name),
	})
	return entry, nil
}

// Delete removes id and everything nested beneath it from storage and from every session.
// Unknown ids succeed without doing anything.
func (s *documentService) Delete(ctx context.Context, sessionID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return err
	}
	target, ok := sess.tree.Get(id)
	if !ok {
		metrics.ObserveOp("delete", nil)
		return nil
	}
	closure := sess.tree.Closure(id)

	if _, err := s.entries.DeleteBatch(ctx, closure); err != nil {
		metrics.ObserveOp("delete", err)
		logger.Error("delete entry failed", "module", "service", "action", "delete", "resource", "entry", "result", "failed", "entry_id", id, "error", err)
		s.notifyError(ctx, "Item not deleted", fmt.Sprintf("Could not delete %q", target.Name))
		return fmt.Errorf("delete entries: %w", err)
	}

	for _, other := range s.sessions {
		other.tree.Delete(id)
	}
	metrics.EntriesDeletedTotal.Add(float64(len(closure)))
	metrics.ObserveOp("delete", nil)
	logger.Info("entry deleted", "module", "service", "action", "delete", "resource", "entry", "result", "ok", "entry_id", id, "removed", len(closure))

	message := fmt.Sprintf("%q was deleted", target.Name)
	if nested := len(closure) - 1; nested > 0 {
		message = fmt.Sprintf("%q and %d nested item(s) were deleted", target.Name, nested)
	}
	s.sink.Notify(ctx, notify.Notification{Level: notify.LevelSuccess, Title: "Item deleted", Message: message})
	return nil
}

func (s *documentService) Breadcrumbs(ctx context.Context, sessionID string) ([]model.Breadcrumb, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.tree.Breadcrumbs(), nil
}

// EvictIdle drops sessions that have not been used for longer than olderThan and reports
// how many were removed.
func (s *documentService) EvictIdle(olderThan time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.opts.Now().Add(-olderThan)
	evicted := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	metrics.SessionsActive.Set(float64(len(s.sessions)))
	return evicted
}

func (s *documentService) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// session returns the replica for sessionID, loading it from the repository on first use.
// Callers must hold s.mu.
func (s *documentService) session(ctx context.Context, sessionID string) (*session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalid
	}
	if sess, ok := s.sessions[sessionID]; ok {
		sess.lastSeen = s.opts.Now()
		return sess, nil
	}

	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	opts := []doctree.Option{
		doctree.WithRootLabel(s.opts.RootLabel),
		doctree.WithClock(s.opts.Now),
		doctree.WithInvariantChecks(s.opts.CheckInvariants),
	}
	if s.opts.NextID != nil {
		opts = append(opts, doctree.WithIDGenerator(s.opts.NextID))
	}
	tree := doctree.New(opts...)
	if err := tree.Load(entries); err != nil {
		logger.Error("load document tree failed", "module", "service", "action", "load", "resource", "session", "result", "failed", "error", err)
		return nil, fmt.Errorf("load entries: %w", err)
	}

	sess := &session{tree: tree, lastSeen: s.opts.Now()}
	s.sessions[sessionID] = sess
	metrics.SessionsActive.Set(float64(len(s.sessions)))
	logger.Debug("session opened", "module", "service", "action", "load", "resource", "session", "result", "ok", "entries", len(entries))
	return sess, nil
}

func (s *documentService) notifyError(ctx context.Context, title, message string) {
	s.sink.Notify(ctx, notify.Notification{Level: notify.LevelError, Title: title, Message: message})
}

func lookupFolder(tree *doctree.Tree, id int64) (model.Entry, error) {
	entry, ok := tree.Get(id)
	if !ok {
		return model.Entry{}, ErrNotFound
	}
	if !entry.IsFolder() {
		return model.Entry{}, ErrInvalid
	}
	return entry, nil
}

func onTrail(tree *doctree.Tree, id int64) bool {
	for _, crumb := range tree.Breadcrumbs() {
		if crumb.ID != nil && *crumb.ID == id {
			return true
		}
	}
	return false
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
