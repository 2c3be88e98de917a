package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listUsersQuery = `
		SELECT id, name, email, age, phone, address, created_at, updated_at
		FROM users
		ORDER BY id
	`
	getUserByIDQuery = `
		SELECT id, name, email, age, phone, address, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	insertUserQuery = `
		INSERT INTO users (name, email, age, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, age, phone, address, created_at, updated_at
	`
	updateUserQuery = `
		UPDATE users
		SET name = $1,
			email = $2,
			updated_at = now()
		WHERE id = $3
		RETURNING id, name, email, age, phone, address, created_at, updated_at
	`
	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

// uniqueViolation is the Postgres error code raised when the email unique
// constraint rejects an insert or update.
const uniqueViolation = "23505"

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (User, error) {
	row := r.db.QueryRowContext(ctx, getUserByIDQuery, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user User) (User, error) {
	row := r.db.QueryRowContext(
		ctx,
		insertUserQuery,
		user.Name,
		user.Email,
		nullableInt(user.Age),
		nullableString(user.Phone),
		nullableString(user.Address),
	)
	created, err := scanUser(row)
	if err != nil {
		return User{}, translateError(err)
	}

	return created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, update User) (User, error) {
	row := r.db.QueryRowContext(ctx, updateUserQuery, update.Name, update.Email, id)
	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, translateError(err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// translateError maps the email unique-constraint violation to a sentinel so
// callers never have to inspect driver error text.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrEmailExists
	}
	return err
}

func scanUser(scanner rowScanner) (User, error) {
	user := User{}
	var age sql.NullInt64
	var phone sql.NullString
	var address sql.NullString

	if err := scanner.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&age,
		&phone,
		&address,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return User{}, err
	}

	if age.Valid {
		v := int(age.Int64)
		user.Age = &v
	}
	if phone.Valid {
		user.Phone = &phone.String
	}
	if address.Valid {
		user.Address = &address.String
	}

	return user, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
