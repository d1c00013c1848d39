package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/munch-accounts/internal/crypto"
	"github.com/MKhiriev/munch-accounts/internal/logger"
	"github.com/MKhiriev/munch-accounts/internal/utils"
	"github.com/MKhiriev/munch-accounts/internal/validators"
	"github.com/MKhiriev/munch-accounts/models"
)

type idGenerator interface {
	NewID() string
}

// userRepository is the SQL-backed implementation of [UserRepository].
// It keeps one JSON document per user in the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db        *DB
	hasher    crypto.CredentialHasher
	validator validators.Validator
	ids       idGenerator
	now       func() time.Time
	logger    *logger.Logger
}

// NewUserRepository constructs a [UserRepository] over db. Passwords are
// hashed with hasher and documents are checked by validator before every
// write.
func NewUserRepository(db *DB, hasher crypto.CredentialHasher, validator validators.Validator, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect.name).Msg("creating user repository")
	return &userRepository{
		db:        db,
		hasher:    hasher,
		validator: validator,
		ids:       utils.NewIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Insert implements [UserRepository].
//
// Error handling:
//   - format or required-field failure → [validators.ErrValidation].
//   - unique index on email or username → [ErrDuplicateKey].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) Insert(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.Insert").Msg("user document is invalid")
		return models.User{}, err
	}

	now := r.timestamp()
	user.ID = r.ids.NewID()
	user.DateCreated = now
	user.DateUpdated = now
	user.Pass = r.hashPass(user)

	document, err := encodeUserDocument(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Insert").Msg("error encoding user document")
		return models.User{}, err
	}

	query, args, err := r.db.dialect.insertUser(user.ID, document).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Insert").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.Insert").Msg("error inserting user")
		return models.User{}, r.classify(err, ErrExecutingStatement)
	}

	user.MarkPersisted()
	log.Debug().Str("func", "*userRepository.Insert").Str("user_id", user.ID).Msg("user inserted")

	return user, nil
}

// Find implements [UserRepository]. A filter on an unknown field fails with
// [ErrUnknownField] before any query is sent.
func (r *userRepository) Find(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	expr, err := r.db.dialect.fieldExpr(filter.Field)
	if err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.Find").Msg("invalid filter")
		return nil, err
	}

	return r.query(ctx, "*userRepository.Find", r.db.dialect.selectUsers().Where(sq.Eq{expr: filter.Value}))
}

// FindAll implements [UserRepository].
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return r.query(ctx, "*userRepository.FindAll", r.db.dialect.selectUsers())
}

// Save implements [UserRepository].
//
// Error handling:
//   - format failure → [validators.ErrValidation].
//   - no row with the user's id → [ErrNoUserWasFound].
//   - unique index on email or username → [ErrDuplicateKey].
func (r *userRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	if !user.IsPersisted() {
		return r.Insert(ctx, user)
	}

	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.Save").Msg("user document is invalid")
		return models.User{}, err
	}

	user.DateUpdated = r.timestamp()
	if user.IsPassModified() {
		user.Pass = r.hashPass(user)
	}

	document, err := encodeUserDocument(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Save").Msg("error encoding user document")
		return models.User{}, err
	}

	query, args, err := r.db.dialect.updateUser(user.ID, document).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Save").Msg("error building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Save").Msg("error updating user")
		return models.User{}, r.classify(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Save").Msg("error reading affected rows")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	user.MarkPersisted()
	log.Debug().Str("func", "*userRepository.Save").Str("user_id", user.ID).Msg("user saved")

	return user, nil
}

func (r *userRepository) query(ctx context.Context, funcName string, builder sq.SelectBuilder) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying users")
		return nil, r.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var id, document string
		if err = rows.Scan(&id, &document); err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		user, err := decodeUserDocument(id, document)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error decoding user document")
			return nil, err
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating user rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// hashPass digests the raw password with the username and creation time
// currently on user.
func (r *userRepository) hashPass(user models.User) string {
	return r.hasher.Hash(user.Pass, user.Username, utils.FormatTimestamp(user.DateCreated))
}

// timestamp is now at the millisecond precision documents store.
func (r *userRepository) timestamp() time.Time {
	return time.UnixMilli(r.now().UnixMilli()).UTC()
}

func (r *userRepository) classify(err error, kind error) error {
	if r.db.errorClassificator == nil {
		return fmt.Errorf("%w: %w", kind, err)
	}

	switch r.db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	case Transient:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%w: %w", kind, err)
}
