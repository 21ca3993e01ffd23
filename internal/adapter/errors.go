package adapter

import (
	"fmt"

	rdsapi "github.com/rdsctl/rdsctl/internal/rds"
	apperrors "github.com/rdsctl/rdsctl/pkg/errors"
)

const component = "adapter"

func missingParameter(op, param string) error {
	return apperrors.NewError(apperrors.ErrCodeMissingParameter,
		fmt.Sprintf("required parameter %s was not supplied", param)).
		WithComponent(component).
		WithOperation(op).
		WithContext("parameter", param)
}

func invalidParameter(op, param string, cause error) error {
	return apperrors.NewError(apperrors.ErrCodeInvalidParameter,
		fmt.Sprintf("parameter %s cannot be applied to the request", param)).
		WithComponent(component).
		WithOperation(op).
		WithContext("parameter", param).
		WithCause(cause)
}

func confirmationRequired(op, target string) error {
	return apperrors.NewError(apperrors.ErrCodeConfirmationRequired,
		fmt.Sprintf("%s on %q needs confirmation but no interactive prompt is available", op, target)).
		WithComponent(component).
		WithOperation(op).
		WithContext("target", target)
}

func confirmationDeclined(op, target string) error {
	return apperrors.NewError(apperrors.ErrCodeConfirmationDeclined,
		fmt.Sprintf("%s on %q was not confirmed", op, target)).
		WithComponent(component).
		WithOperation(op).
		WithContext("target", target)
}

func internalError(op string, cause error) error {
	return apperrors.NewError(apperrors.ErrCodeInternalError, "response could not be shaped").
		WithComponent(component).
		WithOperation(op).
		WithCause(cause)
}

// enrich wraps a name-resolution failure with the client's endpoint and
// region. Every other error is returned unchanged.
func enrich(op string, err error, diag rdsapi.Diagnostics) error {
	dnsErr, ok := apperrors.NameResolutionFailure(err)
	if !ok {
		return err
	}
	return apperrors.NewError(apperrors.ErrCodeNameResolution,
		fmt.Sprintf("could not resolve host %q for %s", dnsErr.Name, diag)).
		WithComponent(component).
		WithOperation(op).
		WithContext("region", diag.Region).
		WithContext("endpoint", diag.Endpoint).
		WithCause(err)
}
