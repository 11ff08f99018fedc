package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. The profile is stored as one JSON column.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user as given; the caller assigns the ID and
// timestamps.
//
// A unique index violation is resolved into the precise collision by a
// follow-up lookup, so concurrent registrations with the same username
// still receive [ErrUsernameAlreadyExists] rather than a generic error.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*userRepository.CreateUser").Logger()

	user.Email = normalizeEmail(user.Email)
	query, args, err := r.db.insertUserQuery(user)
	if err != nil {
		log.Err(err).Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.Classify(err) == UniqueViolation {
			log.Debug().Str("username", user.Username).Msg("user collides with an existing one")
			if collision := r.FindCollision(ctx, user.Username, user.Email); collision != nil {
				return models.User{}, collision
			}
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"id": id})
}

// FindUserByEmail matches the normalized (trimmed, lowercased) email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": normalizeEmail(email)})
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", sq.Eq{"username": username})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, pred sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectUserWhere(pred)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	// an id that is not a valid uuid cannot name any user
	if errors.Is(err, sql.ErrNoRows) || r.db.errorClassificator.Classify(err) == InvalidInput {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// FindCollision reports which of username and email is already taken.
// The username wins when both are.
func (r *userRepository) FindCollision(ctx context.Context, username, email string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectCollisionQuery(username, normalizeEmail(email))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindCollision").Msg("error building collision query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindCollision").Msg("error executing collision query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	emailTaken := false
	for rows.Next() {
		var foundUsername, foundEmail string
		if err = rows.Scan(&foundUsername, &foundEmail); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if foundUsername == username {
			return ErrUsernameAlreadyExists
		}
		emailTaken = true
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if emailTaken {
		return ErrEmailAlreadyExists
	}
	return nil
}

// FindUsersByIDs returns the users that exist among ids, oldest first.
// Unknown ids are skipped.
func (r *userRepository) FindUsersByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	query, args, err := r.db.selectUsersByIDsQuery(ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUsers(ctx, "*userRepository.FindUsersByIDs", query, args)
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	query, args, err := r.db.listUsersQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUsers(ctx, "*userRepository.ListUsers", query, args)
}

func (r *userRepository) queryUsers(ctx context.Context, funcName, query string, args []any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating user rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUser is a read-modify-write of one user row inside a transaction.
// On PostgreSQL the row is locked with SELECT ... FOR UPDATE; SQLite
// transactions hold the database write lock from BEGIN. Concurrent updates
// are applied one after another and the last one wins.
//
// ID, email, password hash and creation time are not writable through
// mutate. A username taken by another account yields
// [ErrUsernameAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, id string, mutate func(user *models.User) error) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*userRepository.UpdateUser").Str("user_id", id).Logger()

	var updated models.User
	err := r.db.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := r.db.selectUserForUpdateQuery(id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		current, err := scanUser(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		next := current
		next.Profile.WorkHistory = append([]models.WorkHistoryEntry(nil), current.Profile.WorkHistory...)
		next.Profile.Education = append([]models.EducationEntry(nil), current.Profile.Education...)
		if err = mutate(&next); err != nil {
			return err
		}
		next.ID = current.ID
		next.Email = current.Email
		next.PasswordHash = current.PasswordHash
		next.CreatedAt = current.CreatedAt
		next.UpdatedAt = time.Now().UTC()

		query, args, err = r.db.updateUserQuery(next)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if r.db.errorClassificator.Classify(err) == UniqueViolation {
				return ErrUsernameAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		updated = next
		return nil
	})
	if err != nil {
		log.Err(err).Msg("user was not updated")
		return models.User{}, err
	}

	return updated, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
