package completion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/HarvestCodex_Go/internal/concurrency"
	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/event"
	"github.com/osse101/HarvestCodex_Go/internal/logger"
	"github.com/osse101/HarvestCodex_Go/internal/repository"
)

// Service tracks which catalog items each signed-in user has completed.
// Writes are optimistic: the cached set changes before the store call and is
// restored from a snapshot if the call fails.
type Service interface {
	Login(ctx context.Context, userID string) (Set, error)
	Logout(ctx context.Context, userID string)
	Completed(userID string) Set
	Session(ctx context.Context, userID string) (Set, error)
	FetchCompletedItems(ctx context.Context, userID string) (Set, error)
	Recent(ctx context.Context, userID string, limit int) ([]domain.UserItemCompletion, error)
	ToggleItemCompletion(ctx context.Context, userID, itemID string) (ToggleResult, error)
	MarkItemsAsCompleted(ctx context.Context, userID string, itemIDs []string) (BatchResult, error)
	MarkItemsAsIncomplete(ctx context.Context, userID string, itemIDs []string) (BatchResult, error)
}

// ItemLookup answers whether an item id exists in the catalog
type ItemLookup interface {
	Contains(itemID string) bool
}

// ToggleResult describes the outcome of a single toggle
type ToggleResult struct {
	ItemID    string `json:"item_id"`
	Completed bool   `json:"completed"`
	Applied   bool   `json:"applied"`
}

// BatchResult lists the ids whose change was persisted and those that were
// rolled back or skipped
type BatchResult struct {
	Applied []string `json:"applied"`
	Failed  []string `json:"failed"`
}

// Options tunes the session cache and store calls
type Options struct {
	CacheSize    int
	SessionTTL   time.Duration
	StoreTimeout time.Duration
}

type service struct {
	repo         repository.Completion
	items        ItemLookup
	bus          event.Bus
	cache        *sessionCache
	locks        *concurrency.LockManager
	storeTimeout time.Duration
}

// NewService creates a completion service. bus may be nil.
func NewService(repo repository.Completion, items ItemLookup, bus event.Bus, opts Options) Service {
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultSessionCacheSize
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = DefaultStoreTimeout
	}

	return &service{
		repo:  repo,
		items: items,
		bus:   bus,
		cache: newSessionCache(opts.CacheSize, opts.SessionTTL, func(userID string) {
			slog.Default().Debug(LogMsgSessionEvicted, logger.AttrKeyUserID, userID)
		}),
		locks:        concurrency.NewLockManager(),
		storeTimeout: opts.StoreTimeout,
	}
}

// Login rebuilds the user's cached set from the store
func (s *service) Login(ctx context.Context, userID string) (Set, error) {
	set, err := s.FetchCompletedItems(ctx, userID)
	if err != nil {
		return set, err
	}
	if userID != "" {
		logger.FromContext(ctx).Info(LogMsgSessionLoaded, "completed", set.Len())
		s.publish(ctx, event.NewSessionStartedEvent(userID, set.Len()))
	}
	return set, nil
}

// Logout clears the user's cached set
func (s *service) Logout(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	s.cache.remove(userID)
	logger.FromContext(ctx).Info(LogMsgSessionCleared)
	s.publish(ctx, event.NewSessionEndedEvent(userID))
}

// Completed returns the cached set, empty when the user has no session
func (s *service) Completed(userID string) Set {
	if set, ok := s.cache.get(userID); ok {
		return set
	}
	return NewSet(nil)
}

// Session returns the cached set, loading it from the store when the user
// has no session yet
func (s *service) Session(ctx context.Context, userID string) (Set, error) {
	if userID == "" {
		return NewSet(nil), nil
	}
	if set, ok := s.cache.get(userID); ok {
		return set, nil
	}
	return s.FetchCompletedItems(ctx, userID)
}

// FetchCompletedItems loads the user's rows into the cache. On a store error
// the cached set is left unchanged and returned alongside the error. Items
// written while the read was running keep their cached membership.
func (s *service) FetchCompletedItems(ctx context.Context, userID string) (Set, error) {
	if userID == "" {
		return NewSet(nil), nil
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	since := s.cache.generation()
	ids, err := s.repo.ListCompletedItemIDs(storeCtx, userID)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgFetchFailed, "error", err)
		return s.Completed(userID), fmt.Errorf("%w: %v", domain.ErrCompletionFetchFailed, err)
	}

	return s.cache.put(userID, NewSet(ids), since), nil
}

// Recent returns up to limit of the user's completion rows, newest first.
// It reads the store directly and does not touch the session.
func (s *service) Recent(ctx context.Context, userID string, limit int) ([]domain.UserItemCompletion, error) {
	if userID == "" || limit <= 0 {
		return nil, nil
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	rows, err := s.repo.ListCompletions(storeCtx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCompletionFetchFailed, err)
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// ToggleItemCompletion flips one item. Without a user it is a no-op.
func (s *service) ToggleItemCompletion(ctx context.Context, userID, itemID string) (ToggleResult, error) {
	result := ToggleResult{ItemID: itemID}
	if userID == "" {
		return result, nil
	}
	if !s.items.Contains(itemID) {
		return result, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}

	release, ok := s.locks.TryAcquire(concurrency.Key(userID, itemID))
	if !ok {
		result.Completed = s.Completed(userID).Has(itemID)
		return result, domain.ErrUpdateInProgress
	}
	defer release()

	if err := s.ensureSession(ctx, userID); err != nil {
		return result, err
	}

	completed := !s.Completed(userID).Has(itemID)
	if err := s.write(ctx, userID, itemID, completed); err != nil {
		result.Completed = !completed
		return result, fmt.Errorf("%w: %v", domain.ErrCompletionUpdateFailed, err)
	}

	result.Completed = completed
	result.Applied = true
	return result, nil
}

// MarkItemsAsCompleted inserts a row for every id
func (s *service) MarkItemsAsCompleted(ctx context.Context, userID string, itemIDs []string) (BatchResult, error) {
	return s.markItems(ctx, userID, itemIDs, true)
}

// MarkItemsAsIncomplete deletes the row for every id
func (s *service) MarkItemsAsIncomplete(ctx context.Context, userID string, itemIDs []string) (BatchResult, error) {
	return s.markItems(ctx, userID, itemIDs, false)
}

// markItems applies each id independently. A failed id is rolled back on its
// own and reported in Failed; ids before and after it keep their result.
func (s *service) markItems(ctx context.Context, userID string, itemIDs []string, completed bool) (BatchResult, error) {
	result := BatchResult{Applied: []string{}, Failed: []string{}}
	if userID == "" {
		return result, nil
	}

	ids := dedupe(itemIDs)
	for _, id := range ids {
		if !s.items.Contains(id) {
			return result, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
		}
	}

	if err := s.ensureSession(ctx, userID); err != nil {
		return result, err
	}

	log := logger.FromContext(ctx)
	for _, id := range ids {
		release, ok := s.locks.TryAcquire(concurrency.Key(userID, id))
		if !ok {
			log.Warn(LogMsgBatchItemSkipped, "item_id", id)
			result.Failed = append(result.Failed, id)
			continue
		}

		err := s.write(ctx, userID, id, completed)
		release()
		if err != nil {
			result.Failed = append(result.Failed, id)
			continue
		}
		result.Applied = append(result.Applied, id)
	}

	return result, nil
}

// write performs snapshot, optimistic apply, store call and restore-on-failure
// for one item. The caller holds the item's lock.
func (s *service) write(ctx context.Context, userID, itemID string, completed bool) error {
	action := domain.CompletionActionDelete
	if completed {
		action = domain.CompletionActionInsert
	}

	snapshot := s.cache.apply(userID, itemID, completed)

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	var err error
	if completed {
		err = s.repo.InsertCompletion(storeCtx, userID, itemID)
	} else {
		err = s.repo.DeleteCompletion(storeCtx, userID, itemID)
	}

	log := logger.FromContext(ctx)
	if err != nil {
		s.cache.restore(userID, itemID, snapshot.Has(itemID))
		log.Warn(LogMsgUpdateRolledBack, "item_id", itemID, "action", action, "error", err)
		s.publish(ctx, event.NewCompletionRolledBackEvent(userID, itemID, action))
		return err
	}

	s.cache.commit(userID, itemID)
	log.Debug(LogMsgCompletionApplied, "item_id", itemID, "action", action)
	s.publish(ctx, event.NewCompletionChangedEvent(userID, itemID, action))
	return nil
}

// ensureSession loads the user's set when no session is cached, so a write
// never computes membership from an empty placeholder
func (s *service) ensureSession(ctx context.Context, userID string) error {
	if _, ok := s.cache.get(userID); ok {
		return nil
	}
	_, err := s.FetchCompletedItems(ctx, userID)
	return err
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
