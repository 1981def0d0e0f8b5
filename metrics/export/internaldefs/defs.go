package internaldefs

import (
	soilauth "github.com/soilsmart/soilauth"
)

// CounterDef defines a public type used by soilauth APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   soilauth.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the session engine.
var CounterDefs = []CounterDef{
	{ID: soilauth.MetricLoginSuccess, Name: "soilauth_login_success_total", Help: "Successful login attempts."},
	{ID: soilauth.MetricLoginFailure, Name: "soilauth_login_failure_total", Help: "Failed login attempts."},
	{ID: soilauth.MetricSignUpSuccess, Name: "soilauth_signup_success_total", Help: "Successful sign-up attempts."},
	{ID: soilauth.MetricSignUpFailure, Name: "soilauth_signup_failure_total", Help: "Failed sign-up attempts."},
	{ID: soilauth.MetricLogout, Name: "soilauth_logout_total", Help: "Logout operations."},
	{ID: soilauth.MetricCheckAuthAuthenticated, Name: "soilauth_checkauth_authenticated_total", Help: "Session checks that resolved to authenticated."},
	{ID: soilauth.MetricCheckAuthUnauthenticated, Name: "soilauth_checkauth_unauthenticated_total", Help: "Session checks that resolved to unauthenticated."},
	{ID: soilauth.MetricResetRequested, Name: "soilauth_password_reset_request_total", Help: "Password reset code requests."},
	{ID: soilauth.MetricResetConfirmed, Name: "soilauth_password_reset_confirm_total", Help: "Successful password reset confirmations."},
	{ID: soilauth.MetricResetFailed, Name: "soilauth_password_reset_failed_total", Help: "Failed password reset operations."},
	{ID: soilauth.MetricVerificationRequested, Name: "soilauth_verification_request_total", Help: "Verification code requests."},
	{ID: soilauth.MetricVerificationConfirmed, Name: "soilauth_verification_confirm_total", Help: "Successful verification confirmations."},
	{ID: soilauth.MetricVerificationFailed, Name: "soilauth_verification_failed_total", Help: "Failed verification operations."},
}
