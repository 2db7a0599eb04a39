package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "github.com/sameers07/Employee-API/internal/employee/errors"
	"github.com/sameers07/Employee-API/internal/events"
	"github.com/sameers07/Employee-API/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	dateLayout = "2006-01-02"

	// One global key: the aggregation spans the whole collection.
	AvgSalaryCacheKey = "employees:avg-salary"
	avgSalaryCacheTTL = 5 * time.Minute
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, department string) ([]EmployeeResponse, error)
	AvgSalaryByDepartment(ctx context.Context) ([]DepartmentAvgSalary, error)
	SearchBySkill(ctx context.Context, skill string) ([]EmployeeResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error)
	Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type service struct {
	repo      Repository
	publisher EventPublisher
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(repo Repository, publisher EventPublisher, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

// parseJoiningDate converts the wire date to the stored midnight-UTC
// timestamp. time.Parse of a bare date already yields exactly that.
func parseJoiningDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidJoiningDate
	}
	return d, nil
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("department", req.Department),
	)

	joiningDate, err := parseJoiningDate(req.JoiningDate)
	if err != nil {
		s.logger.Warn("create employee invalid joining_date",
			zap.String("joining_date", req.JoiningDate),
		)
		return EmployeeResponse{}, err
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	empl := &Employee{
		EmployeeID:  req.EmployeeID,
		Name:        req.Name,
		Department:  req.Department,
		Salary:      *req.Salary,
		JoiningDate: joiningDate,
		Skills:      skills,
	}

	// No existence pre-check: the unique index decides, so two concurrent
	// creates with the same employee_id cannot both succeed.
	id, err := s.repo.Insert(ctx, empl)
	if err != nil {
		s.logger.Warn("create employee persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// Re-read what was persisted rather than echoing the input
	created, err := s.repo.FindByObjectID(ctx, id)
	if err != nil {
		s.logger.Error("create employee re-read failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateAvgSalaryCache(ctx)
	s.publishEvent(ctx, events.EmployeeCreated, created.EmployeeID, created.Department)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", created.EmployeeID),
	)
	return mapToResponse(*created), nil
}

func (s *service) List(
	ctx context.Context,
	department string,
) ([]EmployeeResponse, error) {
	s.logger.Debug("list employees requested", zap.String("department", department))
	empls, err := s.repo.FindAll(ctx, department)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) AvgSalaryByDepartment(ctx context.Context) ([]DepartmentAvgSalary, error) {
	// 1. Check Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, AvgSalaryCacheKey).Result(); err == nil {
			var resp []DepartmentAvgSalary
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight so a cold cache runs the aggregation once
	v, err, _ := s.sf.Do(AvgSalaryCacheKey, func() (interface{}, error) {
		result, err := s.repo.AvgSalaryByDepartment(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		if result == nil {
			result = []DepartmentAvgSalary{}
		}

		// 3. Store in Redis; writes invalidate this key
		if s.rdb != nil {
			if jsonData, err := json.Marshal(result); err == nil {
				s.rdb.Set(ctx, AvgSalaryCacheKey, jsonData, avgSalaryCacheTTL)
			}
		}

		return result, nil
	})

	if err != nil {
		s.logger.Error("avg salary aggregation failed", zap.Error(err))
		return nil, err
	}

	return v.([]DepartmentAvgSalary), nil
}

func (s *service) SearchBySkill(
	ctx context.Context,
	skill string,
) ([]EmployeeResponse, error) {
	s.logger.Debug("search employees by skill requested", zap.String("skill", skill))
	empls, err := s.repo.FindBySkill(ctx, skill)
	if err != nil {
		s.logger.Error("search employees by skill failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByEmployeeID(
	ctx context.Context,
	employeeID string,
) (EmployeeResponse, error) {
	s.logger.Debug("get employee requested", zap.String("employee_id", employeeID))
	empl, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		s.logger.Warn("get employee failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	employeeID string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	if _, err := s.repo.FindByEmployeeID(ctx, employeeID); err != nil {
		s.logger.Warn("update employee fetch existing failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	update := EmployeeUpdate{
		Name:       req.Name,
		Department: req.Department,
		Salary:     req.Salary,
		Skills:     req.Skills,
	}
	if req.JoiningDate != nil {
		joiningDate, err := parseJoiningDate(*req.JoiningDate)
		if err != nil {
			s.logger.Warn("update employee invalid joining_date",
				zap.String("joining_date", *req.JoiningDate),
			)
			return EmployeeResponse{}, err
		}
		update.JoiningDate = &joiningDate
	}

	if !update.IsEmpty() {
		if err := s.repo.Update(ctx, employeeID, update); err != nil {
			s.logger.Error("update employee persist failed", zap.Error(err))
			return EmployeeResponse{}, mapRepositoryError(err)
		}
	}

	updated, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		s.logger.Error("update employee re-read failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateAvgSalaryCache(ctx)
	s.publishEvent(ctx, events.EmployeeUpdated, updated.EmployeeID, updated.Department)

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)
	return mapToResponse(*updated), nil
}

func (s *service) Delete(
	ctx context.Context,
	employeeID string,
) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	deleted, err := s.repo.Delete(ctx, employeeID)
	if err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if deleted == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.invalidateAvgSalaryCache(ctx)
	s.publishEvent(ctx, events.EmployeeDeleted, employeeID, "")

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)
	return nil
}

func (s *service) invalidateAvgSalaryCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, AvgSalaryCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate avg salary cache",
			zap.Error(err),
			zap.String("key", AvgSalaryCacheKey),
		)
	}
}

// publishEvent is best-effort: a broker hiccup must not fail a write that
// has already been persisted.
func (s *service) publishEvent(ctx context.Context, eventType, employeeID, department string) {
	event := events.EmployeeEvent{
		EventType:  eventType,
		RequestID:  contextutil.GetRequestID(ctx),
		EmployeeID: employeeID,
		Department: department,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishEmployeeEvent(ctx, event); err != nil {
		s.logger.Warn("publish employee event failed",
			zap.String("event_type", eventType),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	skills := empl.Skills
	if skills == nil {
		skills = []string{}
	}
	return EmployeeResponse{
		ID:          empl.ID.Hex(),
		EmployeeID:  empl.EmployeeID,
		Name:        empl.Name,
		Department:  empl.Department,
		Salary:      empl.Salary,
		JoiningDate: empl.JoiningDate.UTC().Format(dateLayout),
		Skills:      skills,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
