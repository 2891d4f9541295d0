package sqlite

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

const entryColumns = `ID, TITLE, DESCRIPTION, CREATION_DATE, DUE_DATE, ISDONE`

// Repository defines the interface for entry storage
type Repository interface {
	// Create operations
	CreateEntry(ctx context.Context, title, description string, dueDate *time.Time) (*Entry, error)

	// Read operations
	GetEntry(ctx context.Context, id int64) (*Entry, error)
	ListEntries(ctx context.Context) ([]*Entry, error)
	ListEntriesPage(ctx context.Context, offset, limit int) ([]*Entry, error)

	// Update operations
	UpdateEntry(ctx context.Context, entry *Entry) error
	SetDone(ctx context.Context, id int64, done bool) error
	SetDueDate(ctx context.Context, id int64, dueDate *time.Time) error

	// Delete operations
	DeleteEntry(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// Options tunes a SQLiteRepository
type Options struct {
	// QueryTimeout bounds each statement. Zero means no deadline.
	QueryTimeout time.Duration
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db      *sql.DB
	options Options
}

// New opens (or creates) the database at dbPath and ensures the schema exists
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions is New with explicit options
func NewWithOptions(dbPath string, options Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// One user, one connection. This also keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	repo := &SQLiteRepository{db: db, options: options}

	ctx, cancel := repo.withTimeout(context.Background())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	logging.Debugf("opened database %s\n", dbPath)
	return repo, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.options.QueryTimeout > 0 {
		return context.WithTimeout(ctx, r.options.QueryTimeout)
	}
	return context.WithCancel(ctx)
}

// CreateEntry inserts a new entry dated today and returns it with its new ID
func (r *SQLiteRepository) CreateEntry(ctx context.Context, title, description string, dueDate *time.Time) (*Entry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	entry := &Entry{
		Title:        title,
		Description:  description,
		CreationDate: DateOnly(timeNow()),
		IsDone:       false,
	}
	if dueDate != nil {
		due := DateOnly(*dueDate)
		entry.DueDate = &due
	}

	query := `
	INSERT INTO ENTRIES (TITLE, DESCRIPTION, CREATION_DATE, DUE_DATE, ISDONE)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		entry.Title,
		entry.Description,
		FormatDateForDB(entry.CreationDate),
		FormatDatePtrForDB(entry.DueDate),
		FormatBoolForDB(entry.IsDone),
	)
	if err != nil {
		return nil, err
	}

	entry.ID = id
	logging.Debugf("created entry %d\n", id)
	return entry, nil
}

// GetEntry retrieves an entry by ID
func (r *SQLiteRepository) GetEntry(ctx context.Context, id int64) (*Entry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + entryColumns + ` FROM ENTRIES WHERE ID = ?`
	return QuerySingle(ctx, r.db, query, ScanEntry, "entry", strconv.FormatInt(id, 10), id)
}

// ListEntries retrieves every entry in storage order
func (r *SQLiteRepository) ListEntries(ctx context.Context) ([]*Entry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + entryColumns + ` FROM ENTRIES ORDER BY ID ASC`
	return QueryMultiple(ctx, r.db, query, ScanEntries, "entries")
}

// ListEntriesPage retrieves up to limit entries starting at offset, in the
// same order as ListEntries
func (r *SQLiteRepository) ListEntriesPage(ctx context.Context, offset, limit int) ([]*Entry, error) {
	if offset < 0 {
		return nil, errors.NewInvalidInputError("offset", offset, "must not be negative")
	}
	if limit <= 0 {
		return nil, errors.NewInvalidInputError("limit", limit, "must be positive")
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + entryColumns + ` FROM ENTRIES ORDER BY ID ASC LIMIT ? OFFSET ?`
	return QueryMultiple(ctx, r.db, query, ScanEntries, "entries", limit, offset)
}

// UpdateEntry overwrites the title and description of the matching row.
// Due date and done state are not written here; see SetDueDate and SetDone.
func (r *SQLiteRepository) UpdateEntry(ctx context.Context, entry *Entry) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
	UPDATE ENTRIES
	SET TITLE = ?, DESCRIPTION = ?
	WHERE ID = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "entry", strconv.FormatInt(entry.ID, 10), entry.Title, entry.Description, entry.ID)
}

// SetDone writes the done flag of the matching row
func (r *SQLiteRepository) SetDone(ctx context.Context, id int64, done bool) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `UPDATE ENTRIES SET ISDONE = ? WHERE ID = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "entry", strconv.FormatInt(id, 10), FormatBoolForDB(done), id)
}

// SetDueDate writes the due date of the matching row; nil stores NULL
func (r *SQLiteRepository) SetDueDate(ctx context.Context, id int64, dueDate *time.Time) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var due *time.Time
	if dueDate != nil {
		d := DateOnly(*dueDate)
		due = &d
	}

	query := `UPDATE ENTRIES SET DUE_DATE = ? WHERE ID = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "entry", strconv.FormatInt(id, 10), FormatDatePtrForDB(due), id)
}

// DeleteEntry removes the matching row. Deleting a missing ID is not an error.
func (r *SQLiteRepository) DeleteEntry(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `DELETE FROM ENTRIES WHERE ID = ?`
	if err := Execute(ctx, r.db, "delete entry", query, id); err != nil {
		return err
	}
	logging.Debugf("deleted entry %d\n", id)
	return nil
}
