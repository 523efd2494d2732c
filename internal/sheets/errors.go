package sheets

import "errors"

// Submission errors. All are user-visible and recoverable by retrying after
// fixing the underlying cause; none is treated as a system fault.
var (
	// ErrAlreadySent rejects a record whose fingerprint was submitted
	// successfully earlier in this session. No network call is made.
	ErrAlreadySent = errors.New("report already sent in this session")

	// ErrEndpointMisconfigured marks a redirect toward an identity-provider
	// login page: the endpoint is not publicly invokable.
	ErrEndpointMisconfigured = errors.New("sheets endpoint is not publicly invokable")

	// ErrNetworkFailure marks a transport-level failure before any response
	// was classified.
	ErrNetworkFailure = errors.New("network failure reaching sheets endpoint")

	// ErrRemoteRejected marks a non-2xx response; the body is attached.
	ErrRemoteRejected = errors.New("sheets endpoint rejected the request")

	// ErrUnexpectedResponseFormat marks a non-JSON response body.
	ErrUnexpectedResponseFormat = errors.New("sheets endpoint returned a non-JSON response")

	// ErrRemoteFailure marks a JSON response whose success flag is false;
	// its message is attached.
	ErrRemoteFailure = errors.New("sheets endpoint reported failure")
)

// MessageFor returns the localized status message for a submission error.
func MessageFor(err error) string {
	switch {
	case errors.Is(err, ErrAlreadySent):
		return "تم إرسال هذا التقرير مسبقاً. لا يمكن الإرسال مرة أخرى لتجنب التكرار."
	case errors.Is(err, ErrEndpointMisconfigured):
		return "إعدادات الإرسال غير صحيحة. يرجى مراجعة مسؤول النظام."
	case errors.Is(err, ErrUnexpectedResponseFormat), errors.Is(err, ErrRemoteRejected),
		errors.Is(err, ErrRemoteFailure):
		return "تعذر إرسال البيانات لجوجل شيتس. يرجى المحاولة مرة أخرى."
	case errors.Is(err, ErrNetworkFailure):
		return "حدث خطأ في إرسال البيانات. يرجى المحاولة مرة أخرى."
	}
	return "حدث خطأ في إرسال البيانات. يرجى المحاولة مرة أخرى."
}
