package postgres

import (
	"database/sql"
	"errors"
	"eventRegistry/internal/config"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	minCapacity = 1
	maxCapacity = 1000
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Ping() error {
	return s.DB.Ping()
}

func (s *Storage) CreateEvent(title string, dateTime time.Time, location string, capacity int) (*models.Event, error) {
	if capacity < minCapacity || capacity > maxCapacity {
		return nil, storage.ErrInvalidCapacity
	}

	query := `
		INSERT INTO events (id, title, date_time, location, capacity)
		VALUES ($1, $2, $3, $4, $5)`

	event := models.Event{
		ID:       uuid.NewString(),
		Title:    title,
		DateTime: dateTime,
		Location: location,
		Capacity: capacity,
	}

	_, err := s.DB.Exec(query, event.ID, event.Title, event.DateTime, event.Location, event.Capacity)
	if err != nil {
		if isCheckViolation(err) {
			return nil, storage.ErrInvalidCapacity
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetEvent(id string) (*models.Event, error) {
	query := `
		SELECT id, title, date_time, location, capacity
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Title,
		&event.DateTime,
		&event.Location,
		&event.Capacity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	countQuery := `
		SELECT COUNT(*)
		FROM registrations
		WHERE event_id = $1`

	err = s.DB.QueryRow(countQuery, id).Scan(&event.Registrations)
	if err != nil {
		return nil, fmt.Errorf("failed to get registration count: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetEventWithUsers(id string) (*models.Event, []models.User, error) {
	event, err := s.GetEvent(id)
	if err != nil {
		return nil, nil, err
	}

	query := `
		SELECT u.id, u.name, u.email
		FROM registrations r
		JOIN users u ON u.id = r.user_id
		WHERE r.event_id = $1
		ORDER BY r.created_at ASC`

	rows, err := s.DB.Query(query, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get registered users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, nil, fmt.Errorf("failed to scan registered user: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating registered users: %w", err)
	}

	return event, users, nil
}

func (s *Storage) UpcomingEvents() ([]models.Event, error) {
	query := `
		SELECT e.id, e.title, e.date_time, e.location, e.capacity, COUNT(r.user_id)
		FROM events e
		LEFT JOIN registrations r ON r.event_id = e.id
		WHERE e.date_time > NOW()
		GROUP BY e.id, e.title, e.date_time, e.location, e.capacity
		ORDER BY e.date_time ASC, e.location ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.DateTime,
			&event.Location,
			&event.Capacity,
			&event.Registrations,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) EventStats(id string) (*models.EventStats, error) {
	event, err := s.GetEvent(id)
	if err != nil {
		return nil, err
	}

	return models.NewEventStats(event), nil
}

func (s *Storage) CreateUser(name, email string) (*models.User, error) {
	query := `
		INSERT INTO users (id, name, email)
		VALUES ($1, $2, $3)`

	user := models.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}

	_, err := s.DB.Exec(query, user.ID, user.Name, user.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *Storage) UserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, name, email
		FROM users
		WHERE email = $1`

	var user models.User
	err := s.DB.QueryRow(query, email).Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (s *Storage) UserByID(id string) (*models.User, error) {
	query := `
		SELECT id, name, email
		FROM users
		WHERE id = $1`

	var user models.User
	err := s.DB.QueryRow(query, id).Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// RegisterForEvent runs the whole registration workflow in one transaction.
// The event row is locked FOR UPDATE so concurrent registrations for the same
// event serialize on the capacity check; the (user_id, event_id) primary key
// is the final backstop against duplicates and maps to the same conflict as
// the pre-check.
func (s *Storage) RegisterForEvent(eventID string, ident models.UserIdentity) (*models.Registration, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	eventQuery := `
		SELECT id, title, date_time, location, capacity
		FROM events
		WHERE id = $1
		FOR UPDATE`

	var event models.Event
	err = tx.QueryRow(eventQuery, eventID).Scan(
		&event.ID,
		&event.Title,
		&event.DateTime,
		&event.Location,
		&event.Capacity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if event.IsPast(time.Now()) {
		return nil, storage.ErrEventInPast
	}

	user, err := s.resolveUser(tx, ident)
	if err != nil {
		return nil, err
	}

	var alreadyRegistered bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM registrations
			WHERE user_id = $1 AND event_id = $2
		)`

	err = tx.QueryRow(checkQuery, user.ID, event.ID).Scan(&alreadyRegistered)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}

	if alreadyRegistered {
		return nil, storage.ErrAlreadyRegistered
	}

	var count int
	countQuery := `
		SELECT COUNT(*)
		FROM registrations
		WHERE event_id = $1`

	err = tx.QueryRow(countQuery, event.ID).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("failed to get registration count: %w", err)
	}

	if count >= event.Capacity {
		return nil, storage.ErrEventFull
	}

	insertQuery := `
		INSERT INTO registrations (user_id, event_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING created_at`

	var createdAt time.Time
	err = tx.QueryRow(insertQuery, user.ID, event.ID).Scan(&createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	event.Registrations = count + 1

	return &models.Registration{
		UserID:    user.ID,
		EventID:   event.ID,
		CreatedAt: createdAt,
		User:      user,
		Event:     &event,
	}, nil
}

// resolveUser loads the user named by ident, creating one when only a
// name/email pair is given and no user with that email exists yet.
func (s *Storage) resolveUser(tx *sql.Tx, ident models.UserIdentity) (*models.User, error) {
	var user models.User

	if ident.ByID() {
		query := `SELECT id, name, email FROM users WHERE id = $1`

		err := tx.QueryRow(query, ident.UserID).Scan(&user.ID, &user.Name, &user.Email)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, storage.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to get user: %w", err)
		}

		return &user, nil
	}

	query := `SELECT id, name, email FROM users WHERE email = $1`

	err := tx.QueryRow(query, ident.Email).Scan(&user.ID, &user.Name, &user.Email)
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	user = models.User{
		ID:    uuid.NewString(),
		Name:  ident.Name,
		Email: ident.Email,
	}

	insertQuery := `INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`

	if _, err = tx.Exec(insertQuery, user.ID, user.Name, user.Email); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *Storage) CancelRegistration(eventID, userID string) error {
	var eventExists bool
	err := s.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&eventExists)
	if err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}
	if !eventExists {
		return storage.ErrEventNotFound
	}

	var userExists bool
	err = s.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&userExists)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !userExists {
		return storage.ErrUserNotFound
	}

	deleteQuery := `
		DELETE FROM registrations
		WHERE user_id = $1 AND event_id = $2`

	result, err := s.DB.Exec(deleteQuery, userID, eventID)
	if err != nil {
		return fmt.Errorf("failed to cancel registration: %w", err)
	}

	// Zero rows means the registration never existed or was removed by a
	// concurrent cancel; both read as not found.
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return storage.ErrRegistrationNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isCheckViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23514"
}
