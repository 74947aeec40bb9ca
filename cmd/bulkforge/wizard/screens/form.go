package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/bulkforge/cmd/bulkforge/wizard/components"
	"github.com/mrsinham/bulkforge/internal/notify"
	"github.com/mrsinham/bulkforge/internal/patient"
)

// FormScreen collects the three generation inputs.
//
// Input is not validated here: the raw strings are handed to
// patient.Validate so the form and the command line report the same
// messages.
type FormScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	notices   *notify.Log
	done      bool
	cancelled bool
	saveAsked bool

	fileName      string
	namePrefix    string
	patientAmount string
}

// NewFormScreen creates a form prefilled with raw. notices is rendered under
// the form and may be nil.
func NewFormScreen(raw patient.Raw, notices *notify.Log) *FormScreen {
	s := &FormScreen{
		helpPanel:     components.NewHelpPanel(),
		notices:       notices,
		fileName:      raw.FileName,
		namePrefix:    raw.NamePrefix,
		patientAmount: raw.PatientAmount,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("file_name").
				Title("* File name").
				Value(&s.fileName),

			huh.NewInput().
				Key("name_prefix").
				Title("Patient prefix").
				Placeholder(patient.DefaultNamePrefix).
				Value(&s.namePrefix),

			huh.NewInput().
				Key("patient_amount").
				Title("* Number of patients").
				Value(&s.patientAmount),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *FormScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *FormScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		case "ctrl+s":
			s.saveAsked = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.helpPanel.SetWidth(msg.Width / 2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *FormScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	parts := []string{
		components.TitleStyle.Render("Bulk Upload File Generator"),
		s.form.View(),
		s.helpPanel.View(),
	}
	if notices := components.RenderNotices(s.notices); notices != "" {
		parts = append(parts, "", notices)
	}
	parts = append(parts, "", components.HintStyle.Render("Enter: Submit | Ctrl+S: Save config | Esc: Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Done returns true if the form was submitted
func (s *FormScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user quit
func (s *FormScreen) Cancelled() bool {
	return s.cancelled
}

// SaveRequested returns true if the user asked to save the configuration
func (s *FormScreen) SaveRequested() bool {
	return s.saveAsked
}

// Values returns the current raw input.
func (s *FormScreen) Values() patient.Raw {
	return patient.Raw{
		FileName:      s.fileName,
		NamePrefix:    s.namePrefix,
		PatientAmount: s.patientAmount,
	}
}
