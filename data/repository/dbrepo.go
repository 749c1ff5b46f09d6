package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"strings"

	"workshop-hub/data/apperr"
	"workshop-hub/data/models"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
)

// SqlRepo is the Postgres-backed store. Registrant and material lists are
// persisted as jsonb alongside their workshop, which keeps the workshop the
// sole owner of both. Atomicity for MutateWorkshop comes from a row lock
// instead of MemRepo's mutex.
type SqlRepo struct {
	DB *sql.DB
}

func (sr *SqlRepo) RunMigrations(dbName string) error {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return fmt.Errorf("failed to get current file path")
	}

	dir := filepath.Dir(filename)
	migrationsDir := filepath.Join(dir, "../migrations")
	// Convert backslashes to forward slashes for Windows compatibility
	migrationsDir = strings.ReplaceAll(migrationsDir, "\\", "/")

	log.Printf("Resolved migrations directory: %s", migrationsDir)

	driver, err := migratepgx.WithInstance(sr.DB, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsDir, dbName, driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %v", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %v", err)
	}

	log.Println("Migrations complete")
	return nil
}

const workshopColumns = "id, title, description, category, instructor, duration, schedule, thumbnail, capacity, enrolled, status, registrants, materials"

func (sr *SqlRepo) CreateWorkshop(w models.Workshop) (models.Workshop, error) {
	registrants, materials, err := marshalRoster(w)
	if err != nil {
		return models.Workshop{}, err
	}

	query := `INSERT INTO workshops
		(title, description, category, instructor, duration, schedule, thumbnail, capacity, enrolled, status, registrants, materials)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	row := sr.DB.QueryRow(query,
		w.Title, w.Description, w.Category, w.Instructor, w.Duration,
		w.Schedule, w.Thumbnail, w.Capacity, w.Enrolled, w.Status,
		registrants, materials)
	if err := row.Scan(&w.ID); err != nil {
		return models.Workshop{}, fmt.Errorf("error executing query: %v", err)
	}

	return w, nil
}

func (sr *SqlRepo) GetWorkshopByID(id int64) (models.Workshop, error) {
	query := fmt.Sprintf("SELECT %s FROM workshops WHERE id = $1", workshopColumns)
	return scanWorkshop(sr.DB.QueryRow(query, id))
}

func (sr *SqlRepo) ListWorkshops() ([]models.Workshop, error) {
	query := fmt.Sprintf("SELECT %s FROM workshops ORDER BY id", workshopColumns)
	rows, err := sr.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %v", err)
	}
	defer rows.Close()

	workshops := []models.Workshop{}
	for rows.Next() {
		w, err := scanWorkshop(rows)
		if err != nil {
			return nil, err
		}
		workshops = append(workshops, w)
	}
	return workshops, rows.Err()
}

// MutateWorkshop locks the row for the duration of fn, so the closure's
// check-then-append runs as one atomic step per workshop.
func (sr *SqlRepo) MutateWorkshop(id int64, fn func(w *models.Workshop) error) (models.Workshop, error) {
	tx, err := sr.DB.Begin()
	if err != nil {
		return models.Workshop{}, fmt.Errorf("error starting transaction: %v", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf("SELECT %s FROM workshops WHERE id = $1 FOR UPDATE", workshopColumns)
	w, err := scanWorkshop(tx.QueryRow(query, id))
	if err != nil {
		return models.Workshop{}, err
	}

	if err := fn(&w); err != nil {
		return models.Workshop{}, err
	}

	registrants, materials, err := marshalRoster(w)
	if err != nil {
		return models.Workshop{}, err
	}

	_, err = tx.Exec(`UPDATE workshops SET
		title = $1, description = $2, category = $3, instructor = $4,
		duration = $5, schedule = $6, thumbnail = $7, capacity = $8,
		enrolled = $9, status = $10, registrants = $11, materials = $12
		WHERE id = $13`,
		w.Title, w.Description, w.Category, w.Instructor, w.Duration,
		w.Schedule, w.Thumbnail, w.Capacity, w.Enrolled, w.Status,
		registrants, materials, w.ID)
	if err != nil {
		return models.Workshop{}, fmt.Errorf("error executing query: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Workshop{}, fmt.Errorf("error committing transaction: %v", err)
	}
	return w, nil
}

func (sr *SqlRepo) DeleteWorkshop(id int64) (models.Workshop, error) {
	w, err := sr.GetWorkshopByID(id)
	if err != nil {
		return models.Workshop{}, err
	}

	if _, err := sr.DB.Exec("DELETE FROM workshops WHERE id = $1", id); err != nil {
		return models.Workshop{}, fmt.Errorf("error deleting record: %v", err)
	}
	return w, nil
}

func (sr *SqlRepo) CreateUser(u models.User) error {
	_, err := sr.DB.Exec(`INSERT INTO users (email, name, password, phone, role) VALUES ($1, $2, $3, $4, $5)`,
		u.Email, u.Name, u.Password, u.Phone, u.Role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return apperr.Conflict("Exists")
		}
		return fmt.Errorf("error executing query: %v", err)
	}
	return nil
}

func (sr *SqlRepo) GetUserByEmail(email string) (models.User, error) {
	var u models.User
	row := sr.DB.QueryRow(`SELECT email, name, password, phone, role FROM users WHERE email = $1`, email)
	if err := row.Scan(&u.Email, &u.Name, &u.Password, &u.Phone, &u.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, apperr.NotFound("User not found")
		}
		return models.User{}, fmt.Errorf("error executing query: %v", err)
	}
	return u, nil
}

func (sr *SqlRepo) UpdateUser(u models.User) error {
	res, err := sr.DB.Exec(`UPDATE users SET name = $1, password = $2, phone = $3, role = $4 WHERE email = $5`,
		u.Name, u.Password, u.Phone, u.Role, u.Email)
	if err != nil {
		return fmt.Errorf("error executing query: %v", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}

func (sr *SqlRepo) AppendReview(r models.Review) (models.Review, error) {
	row := sr.DB.QueryRow(`INSERT INTO reviews (workshop_id, author, rating, body) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		r.WorkshopID, r.Author, r.Rating, r.Text)
	if err := row.Scan(&r.Date); err != nil {
		return models.Review{}, fmt.Errorf("error executing query: %v", err)
	}
	return r, nil
}

func (sr *SqlRepo) ListReviewsByWorkshop(workshopID int64) ([]models.Review, error) {
	rows, err := sr.DB.Query(`SELECT workshop_id, author, rating, body, created_at FROM reviews WHERE workshop_id = $1 ORDER BY id`,
		workshopID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %v", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.WorkshopID, &r.Author, &r.Rating, &r.Text, &r.Date); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkshop(row rowScanner) (models.Workshop, error) {
	var w models.Workshop
	var registrants, materials []byte

	err := row.Scan(&w.ID, &w.Title, &w.Description, &w.Category, &w.Instructor,
		&w.Duration, &w.Schedule, &w.Thumbnail, &w.Capacity, &w.Enrolled,
		&w.Status, &registrants, &materials)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Workshop{}, apperr.NotFound("Workshop not found")
		}
		return models.Workshop{}, fmt.Errorf("error scanning workshop: %v", err)
	}

	if err := json.Unmarshal(registrants, &w.Registrants); err != nil {
		return models.Workshop{}, fmt.Errorf("error decoding registrants: %v", err)
	}
	if err := json.Unmarshal(materials, &w.Materials); err != nil {
		return models.Workshop{}, fmt.Errorf("error decoding materials: %v", err)
	}
	// the schedule column is the single source for both exposed names
	w.Date = w.Schedule
	w.Seats = w.Capacity
	return w, nil
}

func marshalRoster(w models.Workshop) ([]byte, []byte, error) {
	if w.Registrants == nil {
		w.Registrants = []models.Registrant{}
	}
	if w.Materials == nil {
		w.Materials = []models.Material{}
	}
	registrants, err := json.Marshal(w.Registrants)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding registrants: %v", err)
	}
	materials, err := json.Marshal(w.Materials)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding materials: %v", err)
	}
	return registrants, materials, nil
}
