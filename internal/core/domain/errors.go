package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies domain errors so callers can render them without inspecting
// their text.
type Kind uint8

const (
	KindNotFound Kind = iota + 1
	KindNotOwned
	KindInvalidStatus
	KindQuotaExceeded
	KindNotEligible
	KindAlreadyRegistered
	KindValidation
	KindUnauthorized
)

// HTTPStatus maps the kind onto the equivalent HTTP status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindNotOwned:
		return http.StatusForbidden
	case KindInvalidStatus, KindQuotaExceeded, KindNotEligible, KindValidation:
		return http.StatusBadRequest
	case KindAlreadyRegistered:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error is a business-rule violation. Code is a stable machine-readable
// identifier, Message is safe to show to end users.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus returns the HTTP status equivalent of the error kind.
func (e *Error) HTTPStatus() int {
	return e.Kind.HTTPStatus()
}

func newError(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

var (
	ErrCampaignNotFound        = newError(KindNotFound, "campaign_not_found", "campaign not found")
	ErrAdvertiserNotFound      = newError(KindNotFound, "advertiser_not_found", "advertiser profile not found")
	ErrInfluencerNotFound      = newError(KindNotFound, "influencer_not_found", "influencer profile not found")
	ErrUserNotFound            = newError(KindNotFound, "user_not_found", "user not found")
	ErrCampaignNotOwned        = newError(KindNotOwned, "campaign_not_owned", "campaign belongs to another advertiser")
	ErrInvalidStatus           = newError(KindInvalidStatus, "invalid_campaign_status", "operation not allowed in the current campaign status")
	ErrQuotaExceeded           = newError(KindQuotaExceeded, "selection_quota_exceeded", "selection exceeds the campaign quota")
	ErrAlreadyApplied          = newError(KindNotEligible, "already_applied", "you have already applied to this campaign")
	ErrCampaignNotRecruiting   = newError(KindNotEligible, "campaign_not_recruiting", "campaign is no longer recruiting")
	ErrInfluencerNotRegistered = newError(KindNotEligible, "influencer_not_registered", "influencer profile is not registered")
	ErrAlreadyRegistered       = newError(KindAlreadyRegistered, "already_registered", "user is already registered as advertiser or influencer")
	ErrBusinessNumberTaken     = newError(KindAlreadyRegistered, "business_number_taken", "business registration number is already registered")
	ErrDuplicateSelection      = newError(KindValidation, "duplicate_selection", "selected application ids contain duplicates")
	ErrUnknownApplication      = newError(KindValidation, "unknown_application", "selected application does not belong to this campaign or is not pending")
	ErrUnauthenticated         = newError(KindUnauthorized, "unauthenticated", "authentication required")
	ErrForbiddenRole           = newError(KindNotOwned, "forbidden_role", "this action requires a different profile role")
)

// QuotaExceeded wraps ErrQuotaExceeded with the campaign quota.
func QuotaExceeded(quota, requested int) error {
	return fmt.Errorf("%w: %d selected, quota is %d", ErrQuotaExceeded, requested, quota)
}

// ValidationError reports a malformed input field.
func ValidationError(field, msg string) *Error {
	return newError(KindValidation, "invalid_"+field, msg)
}

// KindOf returns the Kind of err, or 0 when err is not a domain error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}
