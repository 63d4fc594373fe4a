package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util"
)

// LeaveCreateInput describes a leave request payload.
type LeaveCreateInput struct {
	UserID    string
	LeaveType domain.LeaveType
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

// LeaveService manages leave requests and their approval workflow.
type LeaveService struct {
	leaves     repository.LeaveRepository
	dispatcher events.Dispatcher
}

// NewLeaveService builds the service.
func NewLeaveService(leaves repository.LeaveRepository, dispatcher events.Dispatcher) *LeaveService {
	return &LeaveService{leaves: leaves, dispatcher: dispatcher}
}

// Create files a leave request with pending status.
func (s *LeaveService) Create(ctx context.Context, input LeaveCreateInput) (*domain.Leave, error) {
	if input.UserID == "" || input.Reason == "" || input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, apperrors.NewValidationError("userId, leaveType, startDate, endDate, reason required", nil)
	}
	if !domain.ValidLeaveType(input.LeaveType) {
		return nil, apperrors.NewValidationError("leaveType must be one of: sick, casual, annual", nil)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, apperrors.NewValidationError("endDate must not precede startDate", nil)
	}

	leave := &domain.Leave{
		UserID:    input.UserID,
		LeaveType: input.LeaveType,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Reason:    input.Reason,
		Status:    domain.LeaveStatusPending,
	}
	if err := s.leaves.Create(ctx, leave); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventLeaveRequested,
		Actor:     events.Actor{UserID: leave.UserID},
		Timestamp: time.Now(),
		Payload: events.LeaveRequestedPayload{
			LeaveID:   leave.ID,
			UserID:    leave.UserID,
			LeaveType: leave.LeaveType,
			StartDate: leave.StartDate.Format("2006-01-02"),
			EndDate:   leave.EndDate.Format("2006-01-02"),
		},
	})
	return leave, nil
}

// List returns leaves with employee metadata. Non-admin callers are scoped to
// their own requests.
func (s *LeaveService) List(ctx context.Context, callerID string, callerRole domain.Role, userID string) ([]domain.LeaveWithMeta, error) {
	if callerRole != domain.RoleAdmin {
		userID = callerID
	}
	return s.leaves.List(ctx, userID)
}

// UpdateStatus moves a leave through the approval workflow.
func (s *LeaveService) UpdateStatus(ctx context.Context, id string, status domain.LeaveStatus, actorID string) (*domain.Leave, error) {
	if !domain.ValidLeaveStatus(status) {
		return nil, apperrors.NewValidationError("status must be one of: pending, approved, rejected", nil)
	}

	leave, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("leave", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	oldStatus := leave.Status
	if err := s.leaves.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("leave", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	leave.Status = status

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventLeaveStatusChanged,
		Actor:     events.Actor{UserID: actorID, Role: domain.RoleAdmin},
		Timestamp: time.Now(),
		Payload: events.LeaveStatusChangedPayload{
			LeaveID:   leave.ID,
			UserID:    leave.UserID,
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return leave, nil
}

func (s *LeaveService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
