package apperr

import "errors"

// ErrInvalid is returned when the input fails validation.
var ErrInvalid = errors.New("invalid input")

// ErrUpstreamAuth indicates that the ERP rejected the login call.
var ErrUpstreamAuth = errors.New("erp login failed")

// ErrMalformedAuthResponse indicates a successful login whose response is
// missing one of the required session cookies.
var ErrMalformedAuthResponse = errors.New("erp login response missing session cookies")

// ErrUpstreamFetch indicates that an ERP read call returned a non-success status.
var ErrUpstreamFetch = errors.New("erp fetch failed")

// ErrDataIntegrity indicates that a required linking field is missing from an
// otherwise successful ERP response. This is a business-rule violation, not a
// transport failure.
var ErrDataIntegrity = errors.New("data integrity violation")

// ErrTransport indicates that an upstream could not be reached at all.
var ErrTransport = errors.New("upstream unreachable")

// ErrProviderRejected indicates that the carrier was reached but refused the
// shipment with a non-success status.
var ErrProviderRejected = errors.New("carrier rejected shipment")
