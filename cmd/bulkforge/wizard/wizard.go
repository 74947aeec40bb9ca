// Package wizard provides the interactive form for generating bulk-upload
// files. The session stays open across submissions until the user quits.
package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/bulkforge/cmd/bulkforge/wizard/components"
	"github.com/mrsinham/bulkforge/cmd/bulkforge/wizard/screens"
	"github.com/mrsinham/bulkforge/internal/bulk"
	"github.com/mrsinham/bulkforge/internal/logging"
	"github.com/mrsinham/bulkforge/internal/notify"
	"github.com/mrsinham/bulkforge/internal/patient"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseForm Phase = iota
	PhaseGenerating
	PhaseSaveConfig
)

// SubmissionMsg carries the result of one submission back to the model.
type SubmissionMsg struct {
	Outcome bulk.Outcome
	Err     error
}

// Wizard is the bubbletea model driving the form.
type Wizard struct {
	ctx     context.Context
	config  *Config
	service *bulk.Service
	notices *notify.Log

	phase      Phase
	formScreen *screens.FormScreen

	saveConfigForm *huh.Form
	configPath     string

	cancelled bool
}

// NewWizard creates a wizard. cfg provides the initial field values and the
// output settings; nil uses DefaultConfig.
func NewWizard(ctx context.Context, cfg *Config) (*Wizard, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	opts, err := cfg.ServiceOptions()
	if err != nil {
		return nil, err
	}

	w := &Wizard{
		ctx:     ctx,
		config:  cfg,
		service: bulk.New(opts),
		notices: notify.NewLog(notify.DefaultCapacity),
		phase:   PhaseForm,
	}
	w.formScreen = screens.NewFormScreen(cfg.Raw(), w.notices)
	return w, nil
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.formScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch w.phase {
	case PhaseForm:
		return w.updateForm(msg)
	case PhaseGenerating:
		return w.updateGenerating(msg)
	case PhaseSaveConfig:
		return w.updateSaveConfig(msg)
	}
	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseGenerating:
		return components.TitleStyle.Render("Bulk Upload File Generator") + "\n" + components.SubtitleStyle.Render("Generating patients...")
	case PhaseSaveConfig:
		return w.viewSaveConfig()
	}
	return w.formScreen.View()
}

// Notices exposes the notice log.
func (w *Wizard) Notices() *notify.Log {
	return w.notices
}

func (w *Wizard) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.formScreen.Update(msg)
	if fs, ok := model.(*screens.FormScreen); ok {
		w.formScreen = fs
	}

	if w.formScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.formScreen.SaveRequested() {
		w.syncConfig(w.formScreen.Values())
		return w.transitionToSaveConfig()
	}

	if w.formScreen.Done() {
		raw := w.formScreen.Values()
		w.syncConfig(raw)
		w.phase = PhaseGenerating
		return w, w.submit(raw)
	}

	return w, cmd
}

// submit runs one submission as a command so the view can show progress.
func (w *Wizard) submit(raw patient.Raw) tea.Cmd {
	return func() tea.Msg {
		out, err := w.service.Submit(w.ctx, raw)
		return SubmissionMsg{Outcome: out, Err: err}
	}
}

func (w *Wizard) updateGenerating(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SubmissionMsg:
		w.record(msg)
		return w.transitionToForm()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			w.cancelled = true
			return w, tea.Quit
		}
	}
	return w, nil
}

// record adds the notices for one submission.
func (w *Wizard) record(msg SubmissionMsg) {
	w.notices.BeginSubmission()
	switch {
	case msg.Err != nil:
		w.notices.Error(msg.Err.Error())
	case !msg.Outcome.OK():
		for _, e := range msg.Outcome.Errors {
			w.notices.Error(e)
		}
	default:
		w.notices.Info(msg.Outcome.Message)
	}
}

func (w *Wizard) transitionToForm() (tea.Model, tea.Cmd) {
	w.phase = PhaseForm
	w.formScreen = screens.NewFormScreen(w.config.Raw(), w.notices)
	return w, w.formScreen.Init()
}

func (w *Wizard) syncConfig(raw patient.Raw) {
	w.config.FileName = raw.FileName
	w.config.NamePrefix = raw.NamePrefix
	w.config.PatientAmount = raw.PatientAmount
}

// transitionToSaveConfig shows the save config dialog.
func (w *Wizard) transitionToSaveConfig() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaveConfig
	if w.configPath == "" {
		w.configPath = "bulkforge.yaml"
	}

	w.saveConfigForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("config_path").
				Title("Save configuration to").
				Description("Enter the path for the YAML config file").
				Value(&w.configPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	return w, w.saveConfigForm.Init()
}

// updateSaveConfig handles updates in the save config phase.
func (w *Wizard) updateSaveConfig(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return w.transitionToForm()
		case "ctrl+c":
			w.cancelled = true
			return w, tea.Quit
		}
	}

	form, cmd := w.saveConfigForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveConfigForm = f
	}

	if w.saveConfigForm.State == huh.StateCompleted {
		w.saveConfig()
		return w.transitionToForm()
	}

	return w, cmd
}

func (w *Wizard) saveConfig() {
	w.notices.BeginSubmission()
	if err := SaveToYAML(w.config, w.configPath); err != nil {
		w.notices.Error(err.Error())
		return
	}
	w.notices.Info("Configuration saved to " + filepath.Clean(w.configPath))
}

// viewSaveConfig renders the save config dialog.
func (w *Wizard) viewSaveConfig() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Save Configuration"),
		w.saveConfigForm.View(),
		"",
		components.HintStyle.Render("Enter: Save | Esc: Back"),
	)
}

// Run starts the interactive wizard. If fromConfig is provided, the form is
// prefilled from that YAML file.
func Run(ctx context.Context, fromConfig string) error {
	cfg := DefaultConfig()
	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Log lines would be drawn over the alternate screen.
	ctx = logging.WithLogger(ctx, slog.New(slog.DiscardHandler))

	w, err := NewWizard(ctx, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(w, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}
	return nil
}
