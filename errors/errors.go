package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the application error type carried across layers. Handlers map
// it onto an HTTP response; everything below handlers only wraps and returns.
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Video / transcript errors

func ErrInvalidVideoURL(url string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_VIDEO_URL,
		Message:  "Invalid YouTube URL",
	}.WithDetail("url", url)
}

func ErrCaptionFetchFailed(videoID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_CAPTION_FETCH_FAILED,
		Message:  "Failed to fetch captions",
	}.WithDetail("video_id", videoID)
}

func ErrCaptionFormatUnsupported(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_CAPTION_FORMAT_UNSUPPORTED,
		Message:  "Caption payload did not match any supported format",
	}
}

func ErrTranscriptNotFound(videoID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_TRANSCRIPT_NOT_FOUND,
		Message:  "No transcript available for this video",
	}.WithDetail("video_id", videoID)
}

// Model errors. These are absorbed by the fallback policy inside the study
// service and never reach a handler during analysis; the constructors exist
// for logging and for the transcript-only path.

func ErrModelCallFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_MODEL_CALL_FAILED,
		Message:  "Language model call failed",
	}
}

func ErrModelParseFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_MODEL_PARSE_FAILED,
		Message:  "Language model returned an unparsable reply",
	}
}

// Quiz / job errors

func ErrQuizValidationFailed(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_QUIZ_VALIDATION_FAILED,
		Message:  message,
	}
}

func ErrJobNotFound(jobID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_JOB_NOT_FOUND,
		Message:  "Analysis job not found",
	}.WithDetail("job_id", jobID)
}

func ErrExportFormatUnsupported(format string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_EXPORT_FORMAT_UNSUPPORTED,
		Message:  "Unsupported export format",
	}.WithDetail("format", format)
}

func ErrProcessingFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PROCESSING_FAILED,
		Message:  "Processing failed",
	}
}
