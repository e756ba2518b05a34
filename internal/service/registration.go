// Package service implements the registration engine: validation,
// normalization, and orchestration between the HTTP handlers and the
// repository layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tumbletown/signup-api/internal/model"
	"github.com/tumbletown/signup-api/internal/queue"
	"github.com/tumbletown/signup-api/internal/utils"
)

// maxFieldLen bounds every free-text request field, in runes.
const maxFieldLen = 120

// SigneeInput carries the signee fields of a signup request as decoded
// from the request body.
type SigneeInput struct {
	ChildFirstName    string `json:"childFirstName"`
	ChildLastName     string `json:"childLastName"`
	ParentFirstName   string `json:"parentFirstName"`
	ParentLastName    string `json:"parentLastName"`
	ParentPhoneNumber string `json:"parentPhoneNumber"`
}

// SignupRequest is the body of POST /class-signup.
type SignupRequest struct {
	ClassName string      `json:"className"`
	Day       string      `json:"day"`
	Time      string      `json:"time"`
	Signee    SigneeInput `json:"signee"`
}

// ValidationError reports malformed input with per-field detail. Handlers
// translate it into a 400 response carrying the field map.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// SignupStore is the persistence contract the engine depends on. It
// names the atomicity guarantee explicitly: AppendSigneeIfRoomAndUnique
// must re-check capacity and duplicates atomically with the insert so the
// engine needs no locking of its own.
type SignupStore interface {
	ResolveSession(ctx context.Context, className, day, timeOfDay string) (uint64, error)
	AppendSigneeIfRoomAndUnique(ctx context.Context, sessionID uint64, signee model.Signee) error
}

// PublishFunc publishes a confirmation event after a successful
// registration. A nil PublishFunc disables publishing.
type PublishFunc func(ctx context.Context, event queue.SignupConfirmedEvent) error

// RegistrationService validates signup requests and performs the
// capacity-bounded, duplicate-checked insert through the store.
type RegistrationService struct {
	signups SignupStore
	publish PublishFunc
}

// NewRegistrationService constructs a RegistrationService. The store must
// be non-nil; publish may be nil to disable confirmation events.
func NewRegistrationService(signups SignupStore, publish PublishFunc) *RegistrationService {
	if signups == nil {
		panic("nil store passed to NewRegistrationService")
	}
	return &RegistrationService{signups: signups, publish: publish}
}

// Register validates the request, normalizes it, and registers the child
// for the matching session. Sentinel errors from the repository pass
// through unchanged so handlers can map statuses; malformed input yields
// a *ValidationError. On success exactly one signee row exists for the
// child and a confirmation event is published best-effort.
func (s *RegistrationService) Register(ctx context.Context, req SignupRequest) error {
	fields := map[string]string{}
	checkRequired(fields, "className", req.ClassName)
	checkRequired(fields, "day", req.Day)
	checkRequired(fields, "time", req.Time)
	checkRequired(fields, "signee.childFirstName", req.Signee.ChildFirstName)
	checkRequired(fields, "signee.childLastName", req.Signee.ChildLastName)
	checkRequired(fields, "signee.parentFirstName", req.Signee.ParentFirstName)
	checkRequired(fields, "signee.parentLastName", req.Signee.ParentLastName)
	if strings.TrimSpace(req.Signee.ParentPhoneNumber) == "" {
		fields["signee.parentPhoneNumber"] = "is required"
	} else if !utils.ValidPhone(req.Signee.ParentPhoneNumber) {
		fields["signee.parentPhoneNumber"] = "is not a valid phone number"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	// Upstream sanitizers may have entity-escaped the routing fields;
	// stored class names are raw text, so compare on the decoded form.
	className := utils.DecodeField(req.ClassName)
	day := utils.DecodeField(req.Day)
	timeOfDay := utils.DecodeField(req.Time)

	signee := model.Signee{
		ChildFirstName:    strings.ToLower(strings.TrimSpace(req.Signee.ChildFirstName)),
		ChildLastName:     strings.ToLower(strings.TrimSpace(req.Signee.ChildLastName)),
		ParentFirstName:   strings.TrimSpace(req.Signee.ParentFirstName),
		ParentLastName:    strings.TrimSpace(req.Signee.ParentLastName),
		ParentPhoneNumber: strings.TrimSpace(req.Signee.ParentPhoneNumber),
	}

	sessionID, err := s.signups.ResolveSession(ctx, className, day, timeOfDay)
	if err != nil {
		return err
	}
	if err := s.signups.AppendSigneeIfRoomAndUnique(ctx, sessionID, signee); err != nil {
		return err
	}

	if s.publish != nil {
		ev := queue.SignupConfirmedEvent{
			ClassName:       className,
			Day:             day,
			Time:            timeOfDay,
			ChildFirstName:  signee.ChildFirstName,
			ChildLastName:   signee.ChildLastName,
			ParentFirstName: signee.ParentFirstName,
			ParentLastName:  signee.ParentLastName,
			ConfirmedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		// The registration is already durable; a broker outage must not
		// fail the request.
		if err := s.publish(ctx, ev); err != nil {
			log.Printf("registration: publish confirmation failed: %v", err)
		}
	}
	return nil
}

// checkRequired records a per-field message when v is empty or exceeds
// the field length bound.
func checkRequired(fields map[string]string, name, v string) {
	trimmed := strings.TrimSpace(v)
	switch {
	case trimmed == "":
		fields[name] = "is required"
	case utf8.RuneCountInString(trimmed) > maxFieldLen:
		fields[name] = fmt.Sprintf("must be at most %d characters", maxFieldLen)
	}
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
