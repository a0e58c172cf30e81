package rental

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// errors used by controllers

type ErrCode string

const (
	ErrBadInput                  ErrCode = "BAD_INPUT"
	ErrNotFound                  ErrCode = "NOT_FOUND"
	ErrNotFoundOrAlreadyReturned ErrCode = "NOT_FOUND_OR_ALREADY_RETURNED"
	ErrAlreadyRented             ErrCode = "ALREADY_RENTED"
	ErrAlreadyPaid               ErrCode = "ALREADY_PAID"
	ErrTransactionNotFound       ErrCode = "TRANSACTION_NOT_FOUND"
	ErrAmountMismatch            ErrCode = "AMOUNT_MISMATCH"
	ErrConfirmationFailed        ErrCode = "CONFIRMATION_FAILED"
	ErrBankingUnavailable        ErrCode = "BANKING_UNAVAILABLE"
)

// Kind groups codes the way callers react to them.
type Kind string

const (
	KindNotFound            Kind = "NotFound"
	KindConflict            Kind = "Conflict"
	KindValidation          Kind = "ValidationFailure"
	KindUpstream            Kind = "UpstreamUnavailable"
	KindConcurrencyConflict Kind = "ConcurrencyConflict"
)

func (c ErrCode) Kind() Kind {
	switch c {
	case ErrNotFound, ErrNotFoundOrAlreadyReturned:
		return KindNotFound
	case ErrAlreadyRented, ErrAlreadyPaid:
		return KindConflict
	case ErrBadInput, ErrTransactionNotFound, ErrAmountMismatch:
		return KindValidation
	case ErrBankingUnavailable:
		return KindUpstream
	case ErrConfirmationFailed:
		return KindConcurrencyConflict
	}
	return ""
}

type codedError struct {
	code  ErrCode
	cause error
}

func (e codedError) Error() string {
	if e.cause != nil {
		return string(e.code) + ": " + e.cause.Error()
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode { return e.code }
func (e codedError) Unwrap() error { return e.cause }

func makeErr(c ErrCode) error              { return codedError{code: c} }
func wrapErr(c ErrCode, cause error) error { return codedError{code: c, cause: cause} }

// AmountMismatchError carries both sides of a failed amount comparison.
type AmountMismatchError struct {
	Expected decimal.Decimal
	Actual   decimal.Decimal
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", ErrAmountMismatch, e.Expected.StringFixed(2), e.Actual.StringFixed(2))
}
func (e *AmountMismatchError) Code() ErrCode { return ErrAmountMismatch }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}
