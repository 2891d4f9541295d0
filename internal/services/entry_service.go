package services

import (
	"context"
	"strconv"
	"time"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/validation"
)

// entryServiceImpl implements the EntryService interface
type entryServiceImpl struct {
	repo      sqlite.Repository
	list      *domain.EntryList
	mapper    *domain.EntryMapper
	validator *validation.EntryValidator
}

// NewEntryService creates a new EntryService with default validation limits
func NewEntryService(repo sqlite.Repository) EntryService {
	return newEntryService(repo, validation.NewEntryValidator())
}

// NewEntryServiceWithConfig creates a new EntryService using the configured validation limits
func NewEntryServiceWithConfig(repo sqlite.Repository, cfg *config.Config) EntryService {
	return newEntryService(repo, validation.NewEntryValidatorWithConfig(cfg))
}

func newEntryService(repo sqlite.Repository, validator *validation.EntryValidator) *entryServiceImpl {
	return &entryServiceImpl{
		repo:      repo,
		list:      domain.NewEntryList(),
		mapper:    domain.NewEntryMapper(),
		validator: validator,
	}
}

// Load reads every stored entry into the cache
func (s *entryServiceImpl) Load(ctx context.Context) error {
	rows, err := s.repo.ListEntries(ctx)
	if err != nil {
		return err
	}

	s.list.Load(s.mapper.FromDatabaseSlice(rows))
	logging.Debugf("loaded %d entries\n", s.list.Len())
	return nil
}

// Entries returns the cached entries
func (s *entryServiceImpl) Entries() []domain.Entry {
	return s.list.Entries()
}

// ListPage returns up to limit stored entries starting at offset
func (s *entryServiceImpl) ListPage(ctx context.Context, offset, limit int) ([]domain.Entry, error) {
	rows, err := s.repo.ListEntriesPage(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.mapper.FromDatabaseSlice(rows), nil
}

// AddEntry stores a new entry and appends it to the cache
func (s *entryServiceImpl) AddEntry(ctx context.Context, title, description string, dueDate *time.Time) (*domain.Entry, error) {
	trimmedTitle, err := s.validText("invalid title", title, s.validator.ValidateTitle)
	if err != nil {
		return nil, err
	}
	trimmedDescription, err := s.validText("invalid description", description, s.validator.ValidateDescription)
	if err != nil {
		return nil, err
	}

	row, err := s.repo.CreateEntry(ctx, trimmedTitle, trimmedDescription, calendarDate(dueDate))
	if err != nil {
		return nil, err
	}

	entry := s.mapper.FromDatabase(*row)
	s.list.Append(entry)
	logging.Debugf("cached entry %d\n", entry.ID)
	return &entry, nil
}

// ChangeTitle updates the title of a cached entry
func (s *entryServiceImpl) ChangeTitle(ctx context.Context, id int64, title string) (*domain.Entry, error) {
	cached, err := s.cached(id)
	if err != nil {
		return nil, err
	}

	trimmed, err := s.validText("invalid title", title, s.validator.ValidateTitle)
	if err != nil {
		return nil, err
	}

	updated := *cached
	updated.ChangeTitle(trimmed)
	if err := s.update(ctx, updated); err != nil {
		return nil, err
	}

	cached.ChangeTitle(trimmed)
	return s.snapshot(cached), nil
}

// ChangeDescription updates the description of a cached entry
func (s *entryServiceImpl) ChangeDescription(ctx context.Context, id int64, description string) (*domain.Entry, error) {
	cached, err := s.cached(id)
	if err != nil {
		return nil, err
	}

	trimmed, err := s.validText("invalid description", description, s.validator.ValidateDescription)
	if err != nil {
		return nil, err
	}

	updated := *cached
	updated.ChangeDescription(trimmed)
	if err := s.update(ctx, updated); err != nil {
		return nil, err
	}

	cached.ChangeDescription(trimmed)
	return s.snapshot(cached), nil
}

// ChangeDueDate sets or clears the due date of a cached entry
func (s *entryServiceImpl) ChangeDueDate(ctx context.Context, id int64, dueDate *time.Time) (*domain.Entry, error) {
	cached, err := s.cached(id)
	if err != nil {
		return nil, err
	}

	dueDate = calendarDate(dueDate)
	if err := s.repo.SetDueDate(ctx, id, dueDate); err != nil {
		return nil, err
	}

	cached.ChangeDueDate(dueDate)
	return s.snapshot(cached), nil
}

// ToggleDone flips the done flag of a cached entry
func (s *entryServiceImpl) ToggleDone(ctx context.Context, id int64) (*domain.Entry, error) {
	cached, err := s.cached(id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetDone(ctx, id, !cached.IsDone); err != nil {
		return nil, err
	}

	cached.ToggleDone()
	return s.snapshot(cached), nil
}

// DeleteEntry removes an entry from the store and the cache
func (s *entryServiceImpl) DeleteEntry(ctx context.Context, id int64) error {
	if _, err := s.cached(id); err != nil {
		return err
	}

	if err := s.repo.DeleteEntry(ctx, id); err != nil {
		return err
	}

	return s.list.Remove(id)
}

// cached finds the entry in the list or reports a broken cache
func (s *entryServiceImpl) cached(id int64) (*domain.Entry, error) {
	if err := s.validator.ValidateEntryID(id); err != nil {
		return nil, errors.NewValidationError("invalid entry id", err)
	}

	entry, ok := s.list.FindByID(id)
	if !ok {
		return nil, errors.NewInvariantError("entry", strconv.FormatInt(id, 10), "not present in entry list")
	}
	return entry, nil
}

func (s *entryServiceImpl) update(ctx context.Context, entry domain.Entry) error {
	row := s.mapper.ToDatabase(entry)
	return s.repo.UpdateEntry(ctx, &row)
}

func (s *entryServiceImpl) validText(message, text string, validate func(string) error) (string, error) {
	trimmed, err := s.validator.GetValidText(text, validate)
	if err != nil {
		return "", errors.NewValidationError(message, err)
	}
	return trimmed, nil
}

// calendarDate drops the time of day so cache and store hold the same value
func calendarDate(date *time.Time) *time.Time {
	if date == nil {
		return nil
	}
	d := sqlite.DateOnly(*date)
	return &d
}

func (s *entryServiceImpl) snapshot(entry *domain.Entry) *domain.Entry {
	out := *entry
	return &out
}
