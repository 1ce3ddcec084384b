package errors

// ErrorCode identifies the category of an AppError in responses and logs.
type ErrorCode int

const (
	ErrorCode_UNSPECIFIED ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_INVALID_VIDEO_URL
	ErrorCode_CAPTION_FETCH_FAILED
	ErrorCode_CAPTION_FORMAT_UNSUPPORTED
	ErrorCode_TRANSCRIPT_NOT_FOUND
	ErrorCode_MODEL_CALL_FAILED
	ErrorCode_MODEL_PARSE_FAILED
	ErrorCode_QUIZ_VALIDATION_FAILED
	ErrorCode_JOB_NOT_FOUND
	ErrorCode_EXPORT_FORMAT_UNSUPPORTED
	ErrorCode_PROCESSING_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                "UNSPECIFIED",
	ErrorCode_HTTP_OK:                    "OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_INVALID_VIDEO_URL:          "INVALID_VIDEO_URL",
	ErrorCode_CAPTION_FETCH_FAILED:       "CAPTION_FETCH_FAILED",
	ErrorCode_CAPTION_FORMAT_UNSUPPORTED: "CAPTION_FORMAT_UNSUPPORTED",
	ErrorCode_TRANSCRIPT_NOT_FOUND:       "TRANSCRIPT_NOT_FOUND",
	ErrorCode_MODEL_CALL_FAILED:          "MODEL_CALL_FAILED",
	ErrorCode_MODEL_PARSE_FAILED:         "MODEL_PARSE_FAILED",
	ErrorCode_QUIZ_VALIDATION_FAILED:     "QUIZ_VALIDATION_FAILED",
	ErrorCode_JOB_NOT_FOUND:              "JOB_NOT_FOUND",
	ErrorCode_EXPORT_FORMAT_UNSUPPORTED:  "EXPORT_FORMAT_UNSUPPORTED",
	ErrorCode_PROCESSING_FAILED:          "PROCESSING_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
