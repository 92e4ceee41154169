package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/logo"
	"github.com/matzehuels/logomaker/pkg/render"
	"github.com/matzehuels/logomaker/pkg/shape"
)

// Shape size limits and step for the +/- keys.
const (
	editSizeStep = 10
	editSizeMin  = 20
	editSizeMax  = 360
)

var (
	editSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editNormalStyle   = lipgloss.NewStyle().Foreground(colorGray)
	editBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// editCommand starts the interactive editor.
func (c *CLI) editCommand() *cobra.Command {
	var (
		style  styleFlags
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a logo interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := style.store(cmd)
			if err != nil {
				return err
			}
			m := newEditorModel(s, svgSaver(outDir))
			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if em, ok := final.(editorModel); ok && em.saved != "" {
				printFile(em.saved, em.savedSize, false)
			}
			return nil
		},
	}

	style.register(cmd)
	cmd.Flags().StringVarP(&outDir, "output", "o", ".", "directory for saved SVGs")
	return cmd
}

// svgSaver writes the current logo as SVG into dir.
func svgSaver(dir string) func(logo.Config) (string, int, error) {
	return func(cfg logo.Config) (string, int, error) {
		data, err := render.RenderSVG(cfg)
		if err != nil {
			return "", 0, err
		}
		name := render.Filename(cfg.Text, string(render.FormatSVG))
		if err := apperr.ValidatePath(name); err != nil {
			return "", 0, err
		}
		path := filepath.Join(dir, name)
		if err := writeFile(path, data); err != nil {
			return "", 0, err
		}
		return path, len(data), nil
	}
}

// editorModel is the bubbletea model of the editor. The company name field
// is edited in place; everything else is driven by single keys while the
// field is not focused.
type editorModel struct {
	store     *logo.Store
	input     textinput.Model
	templates []string
	save      func(logo.Config) (string, int, error)

	status    string
	saved     string
	savedSize int
}

func newEditorModel(s *logo.Store, save func(logo.Config) (string, int, error)) editorModel {
	ti := textinput.New()
	ti.Prompt = "Company: "
	ti.Placeholder = logo.DefaultText
	ti.CharLimit = 40
	ti.Width = 30
	ti.SetValue(s.Config().Text)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	return editorModel{
		store:     s,
		input:     ti,
		templates: logo.TemplateNames(),
		save:      save,
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.input.Focused() {
		return m.updateInput(key)
	}

	m.status = ""
	switch k := key.String(); k {
	case "q", "esc":
		return m, tea.Quit
	case "tab", "t", "enter":
		return m, m.input.Focus()
	case "left", "h":
		m.setShape(m.store.SelectedShape().Prev())
	case "right", "l":
		m.setShape(m.store.SelectedShape().Next())
	case "+", "=":
		m.resize(editSizeStep)
	case "-", "_":
		m.resize(-editSizeStep)
	case "r":
		m.store.Reset()
		m.input.SetValue(m.store.Config().Text)
		m.status = "Reset to defaults"
	case "s":
		m.saveSVG()
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			m.applyTemplate(int(k[0] - '1'))
		}
	}
	return m, nil
}

// updateInput routes keys to the company name field and syncs the record
// after every edit.
func (m editorModel) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "enter", "tab":
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	if err := m.store.Sync(logo.FormInput{Text: m.input.Value()}); err != nil {
		m.status = apperr.UserMessage(err)
	}
	return m, cmd
}

func (m *editorModel) setShape(k shape.Kind) {
	if err := m.store.SetShape(k); err != nil {
		m.status = apperr.UserMessage(err)
	}
}

func (m *editorModel) resize(delta int) {
	size := m.store.Config().ShapeSize + delta
	size = max(editSizeMin, min(editSizeMax, size))
	if err := m.store.Set(logo.Partial{ShapeSize: &size}); err != nil {
		m.status = apperr.UserMessage(err)
	}
}

func (m *editorModel) applyTemplate(i int) {
	if i < 0 || i >= len(m.templates) {
		return
	}
	if err := m.store.ApplyTemplate(m.templates[i]); err != nil {
		m.status = apperr.UserMessage(err)
		return
	}
	m.status = "Applied template " + m.templates[i]
}

func (m *editorModel) saveSVG() {
	path, size, err := m.save(m.store.Config())
	if err != nil {
		m.status = "Save failed: " + apperr.UserMessage(err)
		return
	}
	m.saved, m.savedSize = path, size
	m.status = "Saved " + path
}

func (m editorModel) View() string {
	cfg := m.store.Config()
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Logo Editor"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	shapes := make([]string, 0, len(shape.Kinds()))
	for _, k := range shape.Kinds() {
		if k == m.store.SelectedShape() {
			shapes = append(shapes, editSelectedStyle.Render("["+k.String()+"]"))
		} else {
			shapes = append(shapes, editNormalStyle.Render(" "+k.String()+" "))
		}
	}
	b.WriteString("Shape      " + strings.Join(shapes, " ") + "\n")

	templates := make([]string, 0, len(m.templates))
	for i, name := range m.templates {
		label := fmt.Sprintf("%d %s", i+1, name)
		if name == m.store.ActiveTemplate() {
			templates = append(templates, editSelectedStyle.Render("["+label+"]"))
		} else {
			templates = append(templates, editNormalStyle.Render(" "+label+" "))
		}
	}
	b.WriteString("Template   " + strings.Join(templates, " ") + "\n\n")

	details := []string{
		fmt.Sprintf("Colours    %s %s %s", swatch(cfg.ShapeColor), swatch(cfg.TextColor), swatch(cfg.BackgroundColor)),
		fmt.Sprintf("Font       %dpx %s %s", cfg.FontSize, cfg.FontWeight, cfg.FontFamily),
		fmt.Sprintf("Size       %dpx, text at y=%d", cfg.ShapeSize, cfg.TextY),
	}
	b.WriteString(editBoxStyle.Render(strings.Join(details, "\n")))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(StyleSuccess.Render(m.status) + "\n")
	}
	if m.input.Focused() {
		b.WriteString(StyleDim.Render("typing: enter/esc done"))
	} else {
		b.WriteString(StyleDim.Render("←/→ shape  1-4 template  +/- size  tab edit name  r reset  s save  q quit"))
	}
	b.WriteString("\n")
	return b.String()
}
