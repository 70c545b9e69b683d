package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"go-employee-form/internal/employeeform"
	"go-employee-form/internal/events"
	"go-employee-form/internal/messaging/kafka"
	"go-employee-form/internal/shared/contextutil"
	"time"

	employeeerrors "go-employee-form/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeListKey = "employees:list"
	employeeListTTL = 10 * time.Minute
	dateLayout      = "2006-01-02"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req EmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	validator *employeeform.Validator
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, validator *employeeform.Validator, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, validator, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	validator *employeeform.Validator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if validator == nil {
		validator = employeeform.NewValidator(employeeform.AddressStrict)
	}
	return &service{
		db:        db,
		repo:      repo,
		outbox:    outboxRepo,
		rdb:       rdb,
		validator: validator,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

// validate runs the same rules as the form and parses the date of birth.
func (s *service) validate(req EmployeeRequest) (employeeform.Record, time.Time, error) {
	rec, errs := s.validator.Validate(requestToRecord(req))
	if err := errs.Err(); err != nil {
		return rec, time.Time{}, err
	}

	dob, err := time.Parse(dateLayout, rec.DateOfBirth)
	if err != nil {
		return rec, time.Time{}, employeeerrors.ErrInvalidDateOfBirth
	}
	return rec, dob, nil
}

func (s *service) Create(ctx context.Context, req EmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_code", req.EmployeeCode),
	)

	rec, dob, err := s.validate(req)
	if err != nil {
		s.logger.Warn("create employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	empl := &Employee{ID: uuid.New()}
	applyRecord(empl, rec, dob)

	if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.EmployeeCreated, empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateList(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeListKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// concurrent grid loads share one query
	v, err, _ := s.sf.Do(EmployeeListKey, func() (interface{}, error) {
		empls, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, EmployeeListKey, data, employeeListTTL).Err(); err != nil {
					s.logger.Warn("cache employee list failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req EmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	rec, dob, err := s.validate(req)
	if err != nil {
		s.logger.Warn("update employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	applyRecord(empl, rec, dob)
	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.EmployeeUpdated, empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateList(ctx)
	s.logger.Info("update employee success", zap.String("request_id", rid), zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	parsed, err := uuid.Parse(id)
	if err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		s.logger.Warn("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, events.EmployeeDeleted, &Employee{ID: parsed}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateList(ctx)
	s.logger.Info("delete employee success", zap.String("request_id", rid), zap.String("employee_id", id))
	return nil
}

// enqueue writes the lifecycle event to the outbox inside tx. It is a no-op
// when the service was built without an outbox.
func (s *service) enqueue(ctx context.Context, tx *sql.Tx, eventType string, empl *Employee) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.EmployeeEvent{
		EventType:    eventType,
		RequestID:    rid,
		EmployeeID:   empl.ID.String(),
		EmployeeCode: empl.EmployeeCode,
		OccurredAt:   time.Now().UTC(),
	}

	outboxEvent, err := kafka.NewOutboxEvent("employee", event.EmployeeID, eventType, events.EmployeeLifecycleTopic, rid, event)
	if err != nil {
		s.logger.Error("marshal employee event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		s.logger.Error("employee outbox persist failed",
			zap.String("employee_id", event.EmployeeID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) invalidateList(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeListKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee list cache",
			zap.Error(err),
			zap.String("key", EmployeeListKey),
		)
	}
}

func requestToRecord(req EmployeeRequest) employeeform.Record {
	return employeeform.Record{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmployeeCode: req.EmployeeCode,
		Contact:      req.Contact,
		DateOfBirth:  req.DOB,
		Address:      req.Address,
	}
}

func applyRecord(empl *Employee, rec employeeform.Record, dob time.Time) {
	empl.FirstName = rec.FirstName
	empl.LastName = rec.LastName
	empl.EmployeeCode = rec.EmployeeCode
	empl.Contact = rec.Contact
	empl.DateOfBirth = dob
	empl.Address = rec.Address
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           empl.ID.String(),
		FirstName:    empl.FirstName,
		LastName:     empl.LastName,
		EmployeeCode: empl.EmployeeCode,
		Contact:      empl.Contact,
		DOB:          empl.DateOfBirth.Format(dateLayout),
		Address:      empl.Address,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
