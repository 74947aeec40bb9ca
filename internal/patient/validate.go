package patient

import (
	"strconv"
	"strings"
)

// Messages shown to the user when raw input is rejected.
const (
	MsgFileNameRequired = "Please enter a file name."
	MsgCountNotInteger  = "Please enter an integer value for the Patient Amount field."
	MsgCountNegative    = "Please enter a non-negative value for the Patient Amount field."
)

// Raw is the unvalidated input coming from a form, flags or a config file.
type Raw struct {
	FileName      string
	NamePrefix    string
	PatientAmount string
}

// ValidationResult collects every error found in a Raw input. Request is set
// only when Errors is empty.
type ValidationResult struct {
	Errors  []string
	Request *Request
}

// OK reports whether generation may proceed.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0 && r.Request != nil
}

// Validate checks raw input. Rules are evaluated independently and all
// errors are returned in a stable order.
func Validate(raw Raw) ValidationResult {
	var res ValidationResult

	fileName := strings.TrimSpace(raw.FileName)
	if fileName == "" {
		res.Errors = append(res.Errors, MsgFileNameRequired)
	}

	prefix := raw.NamePrefix
	if prefix == "" {
		prefix = DefaultNamePrefix
	}

	count, err := strconv.Atoi(strings.TrimSpace(raw.PatientAmount))
	switch {
	case err != nil:
		res.Errors = append(res.Errors, MsgCountNotInteger)
	case count < 0:
		res.Errors = append(res.Errors, MsgCountNegative)
	}

	if len(res.Errors) > 0 {
		return res
	}

	res.Request = &Request{
		FileName:    fileName,
		NamePrefix:  prefix,
		RecordCount: count,
	}
	return res
}
