package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"file_name": {
		Title:       "FILE NAME",
		Description: "Name of the spreadsheet to create, without extension.",
		Details:     "Required. An existing file with the same name is replaced once the new one is written.",
	},
	"name_prefix": {
		Title:       "PATIENT PREFIX",
		Description: "Text placed before every generated name and email.",
		Details:     "Joined with '-', e.g. Test-Mary Smith. Defaults to Test when left empty.",
	},
	"patient_amount": {
		Title:       "NUMBER OF PATIENTS",
		Description: "How many patient rows to generate.",
		Details:     "Required. Whole number, 0 or more. Every patient gets a unique fictitious 555-0 phone number.",
	},
	"config_path": {
		Title:       "CONFIG FILE",
		Description: "Where to save the current settings.",
		Details:     "YAML file, reusable with --config or wizard --from.",
	},
}
