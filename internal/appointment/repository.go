package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pazurkowo/pet-salon-backend/internal/schedule"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)

	// ListByDate returns all appointments on the given calendar date,
	// ordered by start time. excludeID is used during updates to ignore the
	// appointment being edited; pass "" otherwise.
	ListByDate(ctx context.Context, date time.Time, excludeID string) ([]*Appointment, error)

	// ListByOwner returns the owner's appointments ordered by date and
	// start time ascending.
	ListByOwner(ctx context.Context, ownerID string) ([]*Appointment, error)

	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var appointmentColumns = []string{
	"id", "owner_id", "pet_name", "date", "start_min", "duration_min",
	"services", "phone", "note", "created_at", "updated_at",
}

func (r *pgxRepository) Create(ctx context.Context, a *Appointment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.appointments").
		Columns("owner_id", "pet_name", "date", "start_min", "duration_min", "services", "phone", "note").
		Values(a.OwnerID, a.PetName, a.Date, int(a.Start), a.DurationMin, a.Services, a.Phone, a.Note).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create appointment query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(appointmentColumns...).
		From("public.appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get appointment query failed: %w", err)
	}

	a, err := scanAppointment(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment failed: %w", err)
	}
	return a, nil
}

func (r *pgxRepository) ListByDate(ctx context.Context, date time.Time, excludeID string) ([]*Appointment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(appointmentColumns...).
		From("public.appointments").
		Where(squirrel.Eq{"date": dateOnly(date)}).
		OrderBy("start_min ASC")

	if excludeID != "" {
		query = query.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list appointments by date query failed: %w", err)
	}

	return r.queryAppointments(ctx, sql, args)
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Appointment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(appointmentColumns...).
		From("public.appointments").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("date ASC", "start_min ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list appointments by owner query failed: %w", err)
	}

	return r.queryAppointments(ctx, sql, args)
}

func (r *pgxRepository) Update(ctx context.Context, a *Appointment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.appointments").
		Set("pet_name", a.PetName).
		Set("date", a.Date).
		Set("start_min", int(a.Start)).
		Set("duration_min", a.DurationMin).
		Set("services", a.Services).
		Set("phone", a.Phone).
		Set("note", a.Note).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update appointment query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update appointment failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete appointment query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete appointment failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) queryAppointments(ctx context.Context, sql string, args []any) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments failed: %w", err)
	}
	defer rows.Close()

	var result []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment failed: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	var startMin int
	if err := row.Scan(
		&a.ID, &a.OwnerID, &a.PetName, &a.Date, &startMin, &a.DurationMin,
		&a.Services, &a.Phone, &a.Note, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Start = schedule.TimeOfDay(startMin)
	return &a, nil
}

// dateOnly strips the clock part so a DATE column comparison never depends
// on the hour the caller happened to pass.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
