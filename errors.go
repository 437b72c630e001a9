package stylegen

import (
	"errors"
	"fmt"
)

// User-facing messages. Downstream UIs display these verbatim, so the
// wording must stay stable.
const (
	MessageGenerationFailed = "فشل توليد الصورة. يرجى التحقق من الموجه أو مفتاح API."
	MessageAnalysisFailed   = "فشل تحليل صورة النمط."
)

var (
	// ErrGenerationFailed is the catch-all kind for every Generate failure.
	ErrGenerationFailed = errors.New("image generation failed")

	// ErrAnalysisFailed is the catch-all kind for every AnalyzeStyle failure.
	ErrAnalysisFailed = errors.New("style analysis failed")

	// ErrSafetyBlocked is matched by *SafetyBlockedError.
	ErrSafetyBlocked = errors.New("blocked by safety settings")

	// ErrNoImageProduced is returned when the model finished without an
	// image part and without a finish reason.
	ErrNoImageProduced = errors.New("no image was produced by the model")

	// ErrNoTextProduced is returned when the model returned no text for a
	// style analysis and did not report a block.
	ErrNoTextProduced = errors.New("the model returned no text for style analysis")

	// ErrMissingAPIKey is returned at startup when no credential is configured.
	ErrMissingAPIKey = errors.New("API_KEY environment variable not set")

	// ErrStorageNotConfigured is returned when storage operations are attempted
	// without a configured storage backend.
	ErrStorageNotConfigured = errors.New("storage not configured")
)

// SafetyBlockedError is returned when the model completed but withheld
// content. Reason is the candidate's finish reason, e.g. "SAFETY".
type SafetyBlockedError struct {
	Reason string
}

func (e *SafetyBlockedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSafetyBlocked.Error(), e.Reason)
}

func (e *SafetyBlockedError) Is(target error) bool {
	return target == ErrSafetyBlocked
}

// FailedError is the only error type that crosses the adapter boundary.
//
// Error returns the fixed user-facing Message. errors.Is matches Kind
// (ErrGenerationFailed or ErrAnalysisFailed) and, when the failure was
// classified, Reason. Transport-level causes are logged by the adapter and
// are never kept here.
type FailedError struct {
	Kind    error
	Message string
	Reason  error
}

func (e *FailedError) Error() string {
	return e.Message
}

func (e *FailedError) Unwrap() []error {
	if e.Reason == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Reason}
}

// GenerationFailed wraps cause into the generation catch-all. Only
// classified causes (safety block, no image) are retained.
func GenerationFailed(cause error) *FailedError {
	return &FailedError{
		Kind:    ErrGenerationFailed,
		Message: MessageGenerationFailed,
		Reason:  classified(cause),
	}
}

// AnalysisFailed wraps cause into the analysis catch-all. Only classified
// causes (safety block, no text) are retained.
func AnalysisFailed(cause error) *FailedError {
	return &FailedError{
		Kind:    ErrAnalysisFailed,
		Message: MessageAnalysisFailed,
		Reason:  classified(cause),
	}
}

func classified(err error) error {
	var blocked *SafetyBlockedError
	switch {
	case errors.As(err, &blocked):
		return blocked
	case errors.Is(err, ErrNoImageProduced):
		return ErrNoImageProduced
	case errors.Is(err, ErrNoTextProduced):
		return ErrNoTextProduced
	default:
		return nil
	}
}

// UserMessage returns the text to show an end user for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var failed *FailedError
	if errors.As(err, &failed) {
		return failed.Message
	}
	return err.Error()
}

// IsSafetyBlocked reports whether err was caused by a safety block and, if
// so, the reported finish reason.
func IsSafetyBlocked(err error) (string, bool) {
	var blocked *SafetyBlockedError
	if errors.As(err, &blocked) {
		return blocked.Reason, true
	}
	return "", false
}
