package validation

// Severity distinguishes blocking errors from advisory warnings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Error codes reported by the CSV validator.
const (
	CodeEmptyFile            = "EMPTY_FILE"
	CodeMissingHeader        = "MISSING_HEADER"
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodeMissingRequiredValue = "MISSING_REQUIRED_VALUE"
	CodeTypeMismatch         = "TYPE_MISMATCH"
	CodeEnumViolation        = "ENUM_VIOLATION"
	CodeNegativeAmount       = "NEGATIVE_AMOUNT"
	CodeCustomValidation     = "CUSTOM_VALIDATION"
	CodeRowLimitReached      = "ROW_LIMIT_REACHED"
	CodeValueOutOfRange      = "VALUE_OUT_OF_RANGE"
	CodeAutoCorrected        = "AUTO_CORRECTED"
)

// Issue is one validation finding. Row 0 means the issue is file-scoped;
// data rows are numbered from 2 to match spreadsheet line numbers (row 1
// is the header).
type Issue struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Statistics summarizes one validation pass.
type Statistics struct {
	TotalRows   int   `json:"total_rows"`
	SuccessRows int   `json:"success_rows"`
	ErrorRows   int   `json:"error_rows"`
	EmptyRows   int   `json:"empty_rows"`
	ParseTimeMs int64 `json:"parse_time_ms"`
}

// Result is the outcome of validating one CSV document.
//
// Success is true when there were no errors, or when at least one row
// passed: a file with some invalid rows still imports the valid subset.
type Result struct {
	Success    bool                `json:"success"`
	Data       []map[string]string `json:"data"`
	Errors     []Issue             `json:"errors"`
	Warnings   []Issue             `json:"warnings"`
	Statistics Statistics          `json:"statistics"`
}

func (r *Result) addError(row int, field, code, message, value string) {
	r.Errors = append(r.Errors, Issue{Row: row, Field: field, Code: code, Message: message, Value: value})
}

func (r *Result) addWarning(row int, field, code, message, value string) {
	r.Warnings = append(r.Warnings, Issue{Row: row, Field: field, Code: code, Message: message, Value: value})
}
