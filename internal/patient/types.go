// Package patient builds batches of synthetic patient records for bulk-upload
// test files.
package patient

// DefaultNamePrefix replaces an empty name prefix.
const DefaultNamePrefix = "Test"

// Request is a validated generation request.
type Request struct {
	FileName    string
	NamePrefix  string
	RecordCount int
}

// Record is one generated patient row.
type Record struct {
	FullName string
	Email    string
	Phone    string
}

// Batch is the ordered set of records produced by one request.
type Batch []Record
