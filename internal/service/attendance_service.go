package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/clock"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util"
)

// Rejection causes for a scanned credential, in check order. Each maps to its
// own response code so clients can tell a tampered credential from a stale or
// replayed one.
func errInvalidCredential() error {
	return apperrors.NewBadRequest("INVALID_CREDENTIAL", "invalid or unverifiable QR credential")
}

func errMalformedPayload() error {
	return apperrors.NewBadRequest("MALFORMED_PAYLOAD", "QR payload is missing required fields")
}

func errUnrecognizedToken() error {
	return apperrors.NewBadRequest("UNRECOGNIZED_TOKEN", "QR token not recognized")
}

func errStaleToken() error {
	return apperrors.NewBadRequest("STALE_TOKEN", "QR is not valid for today")
}

func errAlreadyRecorded() error {
	return apperrors.NewConflict("ALREADY_RECORDED", "attendance already recorded for today", nil)
}

// tokenValueBytes gives 256 bits of entropy per daily secret.
const tokenValueBytes = 32

// IssueResult is the outcome of a token issuance. Created reports whether a
// row was inserted; Regenerated reports whether the caller forced a fresh
// secret.
type IssueResult struct {
	Credential  string
	Date        string
	Created     bool
	Regenerated bool
}

// AttendanceService owns daily token issuance, credential verification and
// attendance recording.
type AttendanceService struct {
	qrTokens   repository.QRTokenRepository
	records    repository.AttendanceRepository
	employees  repository.EmployeeRepository
	signer     *auth.CredentialSigner
	cache      *CredentialCache
	clk        clock.Clock
	dispatcher events.Dispatcher
}

// AttendanceDependencies bundles requirements for the attendance service.
type AttendanceDependencies struct {
	QRTokenRepo    repository.QRTokenRepository
	AttendanceRepo repository.AttendanceRepository
	EmployeeRepo   repository.EmployeeRepository
	Signer         *auth.CredentialSigner
	Cache          *CredentialCache
	Clock          clock.Clock
	Dispatcher     events.Dispatcher
}

// NewAttendanceService builds the service.
func NewAttendanceService(deps AttendanceDependencies) *AttendanceService {
	clk := deps.Clock
	if clk == nil {
		clk = clock.System{}
	}
	return &AttendanceService{
		qrTokens:   deps.QRTokenRepo,
		records:    deps.AttendanceRepo,
		employees:  deps.EmployeeRepo,
		signer:     deps.Signer,
		cache:      deps.Cache,
		clk:        clk,
		dispatcher: deps.Dispatcher,
	}
}

// Today returns the current local calendar date.
func (s *AttendanceService) Today() string {
	return clock.DateString(s.clk.Now())
}

// IssueToken ensures exactly one persisted token exists for date and returns
// its signed credential. Repeated calls without forceNew return equivalent
// credentials over the same underlying secret. With forceNew the prior row is
// replaced atomically and a fresh secret is signed.
func (s *AttendanceService) IssueToken(ctx context.Context, date string, forceNew bool) (*IssueResult, error) {
	if !forceNew {
		if cached := s.cachedCredential(ctx, date); cached != "" {
			return &IssueResult{Credential: cached, Date: date}, nil
		}
	}

	existing, err := s.qrTokens.GetByDate(ctx, date)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewInternalError(err)
	}

	if existing != nil && !forceNew {
		return s.signAndCache(ctx, existing.Token, date, false, false)
	}

	token := &domain.QRToken{Token: newTokenValue(), Date: date}

	if existing != nil {
		// forceNew: replace delete+insert runs in one transaction.
		if err := s.qrTokens.Replace(ctx, token); err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		return s.signAndCache(ctx, token.Token, date, true, true)
	}

	if err := s.qrTokens.Create(ctx, token); err != nil {
		if repository.IsDuplicateKey(err) {
			// A concurrent issuer won the race; its row is the token of
			// record for the day.
			winner, readErr := s.qrTokens.GetByDate(ctx, date)
			if readErr != nil {
				return nil, apperrors.NewInternalError(readErr)
			}
			return s.signAndCache(ctx, winner.Token, date, false, false)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return s.signAndCache(ctx, token.Token, date, forceNew, true)
}

// IssueTokenForToday is the scheduler entry point: idempotent issuance for
// the current calendar day.
func (s *AttendanceService) IssueTokenForToday(ctx context.Context) (*IssueResult, error) {
	result, err := s.IssueToken(ctx, s.Today(), false)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventDailyTokenIssued,
		Actor:     events.Actor{System: true},
		Timestamp: s.clk.Now(),
		Payload:   events.DailyTokenIssuedPayload{Date: result.Date, Regenerated: result.Regenerated},
	})
	return result, nil
}

// VerifyAndRecord validates a scanned credential for userID and commits the
// attendance record. Checks run in a fixed order and stop at the first
// failure; nothing is written unless every check passes.
func (s *AttendanceService) VerifyAndRecord(ctx context.Context, credential, userID string) (*domain.Attendance, error) {
	tokenValue, date, err := s.signer.Verify(credential)
	if err != nil {
		if errors.Is(err, auth.ErrMalformedPayload) {
			return nil, errMalformedPayload()
		}
		return nil, errInvalidCredential()
	}

	if _, err := s.qrTokens.GetByTokenAndDate(ctx, tokenValue, date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The cached credential for that date, if any, wraps a token the
			// store no longer holds; drop it so issuance re-reads the store.
			s.cache.Invalidate(ctx, date)
			return nil, errUnrecognizedToken()
		}
		return nil, apperrors.NewInternalError(err)
	}

	today := s.Today()
	if date != today {
		return nil, errStaleToken()
	}

	exists, err := s.records.ExistsForUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if exists {
		return nil, errAlreadyRecorded()
	}

	att := &domain.Attendance{
		UserID: userID,
		Date:   today,
		Time:   s.clk.Now(),
		Method: domain.AttendanceMethodQR,
	}
	if emp, err := s.employees.GetByUserID(ctx, userID); err == nil {
		att.EmployeeID = emp.EmployeeID
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewInternalError(err)
	}

	if err := s.records.Create(ctx, att); err != nil {
		if repository.IsDuplicateKey(err) {
			// Lost the race against a concurrent scan by the same user.
			return nil, errAlreadyRecorded()
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAttendanceRecorded,
		Actor:     events.Actor{UserID: userID},
		Timestamp: att.Time,
		Payload: events.AttendanceRecordedPayload{
			AttendanceID: att.ID,
			UserID:       att.UserID,
			EmployeeID:   att.EmployeeID,
			Date:         att.Date,
			Method:       att.Method,
		},
	})
	return att, nil
}

// ListAttendance returns attendance records. Non-admin callers are always
// scoped to their own records regardless of the requested filter.
func (s *AttendanceService) ListAttendance(ctx context.Context, callerID string, callerRole domain.Role, filter domain.AttendanceFilter) ([]domain.Attendance, error) {
	if callerRole != domain.RoleAdmin {
		filter = domain.AttendanceFilter{UserID: callerID}
	}
	return s.records.List(ctx, filter)
}

func (s *AttendanceService) signAndCache(ctx context.Context, tokenValue, date string, regenerated, created bool) (*IssueResult, error) {
	credential, err := s.signer.Sign(tokenValue, date)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if s.cache != nil {
		now := s.clk.Now()
		ttl := clock.NextMidnight(now, 0).Sub(now)
		s.cache.Set(ctx, date, credential, ttl)
	}
	return &IssueResult{Credential: credential, Date: date, Created: created, Regenerated: regenerated}, nil
}

func (s *AttendanceService) cachedCredential(ctx context.Context, date string) string {
	if s.cache == nil {
		return ""
	}
	credential, _ := s.cache.Get(ctx, date)
	return credential
}

func (s *AttendanceService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func newTokenValue() string {
	buf := make([]byte, tokenValueBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}
