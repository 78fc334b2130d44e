package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ps-health/patient-service/patients"
	storePostgres "github.com/ps-health/patient-service/store/postgres"
)

var Module = fx.Options(
	fx.Provide(
		storePostgres.NewConfig,
		storePostgres.NewDatabase,
		storePostgres.NewPinger,
		NewRepository,
	),
)

const (
	selectPatients = `SELECT id, name, email, address, date_of_birth, registered_date FROM patients`

	upsertPatient = `
		INSERT INTO patients (id, name, email, address, date_of_birth, registered_date)
		VALUES (:id, :name, :email, :address, :date_of_birth, :registered_date)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			date_of_birth = EXCLUDED.date_of_birth,
			registered_date = EXCLUDED.registered_date`
)

func NewRepository(db *sqlx.DB, logger *zap.SugaredLogger) patients.Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

type repository struct {
	db     *sqlx.DB
	logger *zap.SugaredLogger
}

type row struct {
	Id             uuid.UUID `db:"id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	Address        string    `db:"address"`
	DateOfBirth    time.Time `db:"date_of_birth"`
	RegisteredDate time.Time `db:"registered_date"`
}

func newRow(patient patients.Patient) row {
	return row{
		Id:             patient.Id,
		Name:           patient.Name,
		Email:          patient.Email,
		Address:        patient.Address,
		DateOfBirth:    patient.DateOfBirth,
		RegisteredDate: patient.RegisteredDate,
	}
}

func (r row) toPatient() patients.Patient {
	return patients.Patient{
		Id:             r.Id,
		Name:           r.Name,
		Email:          r.Email,
		Address:        r.Address,
		DateOfBirth:    patients.CalendarDate(r.DateOfBirth),
		RegisteredDate: patients.CalendarDate(r.RegisteredDate),
	}
}

func (r *repository) List(ctx context.Context) ([]patients.Patient, error) {
	var rows []row
	if err := r.db.SelectContext(ctx, &rows, selectPatients); err != nil {
		return nil, fmt.Errorf("error listing patients: %w", err)
	}

	list := make([]patients.Patient, 0, len(rows))
	for _, rw := range rows {
		list = append(list, rw.toPatient())
	}
	return list, nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*patients.Patient, error) {
	var rw row
	err := r.db.GetContext(ctx, &rw, selectPatients+` WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, patients.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching patient: %w", err)
	}

	patient := rw.toPatient()
	return &patient, nil
}

func (r *repository) Save(ctx context.Context, patient patients.Patient) (*patients.Patient, error) {
	if patient.IsNew() {
		patient.Id = uuid.New()
	}

	if _, err := r.db.NamedExecContext(ctx, upsertPatient, newRow(patient)); err != nil {
		if storePostgres.IsUniqueViolation(err) {
			r.logger.Debugw("rejected duplicate patient email", "error", err)
			return nil, patients.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error saving patient: %w", err)
	}

	saved := newRow(patient).toPatient()
	return &saved, nil
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM patients WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("error checking patient existence: %w", err)
	}
	return exists, nil
}

func (r *repository) Remove(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting patient: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting patient: %w", err)
	}
	if count == 0 {
		return patients.ErrNotFound
	}
	return nil
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM patients WHERE email = $1)`, email); err != nil {
		return false, fmt.Errorf("error checking patient email: %w", err)
	}
	return exists, nil
}
