package wizard

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"intervu/internal/interview"
	"intervu/internal/llm"
	"intervu/internal/screen"
	"intervu/internal/store"
	"intervu/internal/ui/components"
	"intervu/internal/ui/layout"
	"intervu/internal/ui/theme"
)

// Mode selects which flow the wizard drives.
type Mode int

const (
	// ModeInterview generates a full interview set for the chosen type.
	ModeInterview Mode = iota
	// ModeCalibrate generates a question and assesses its actual
	// difficulty against the requested one.
	ModeCalibrate
)

type step int

const (
	stepType step = iota
	stepTopic
	stepDifficulty
	stepFollowUps
	stepGenerating
	stepResult
	stepError
)

type typeChosenMsg struct {
	Type interview.QuestionType
}

type difficultyChosenMsg struct {
	Difficulty interview.Difficulty
}

type generatedMsg struct {
	Set      *interview.InterviewSet
	Pipeline *interview.PipelineResult
	Err      error
}

// WizardScreen walks the user through the interview parameters and
// then runs the generation flow.
type WizardScreen struct {
	provider llm.Provider
	cfg      interview.Config
	mode     Mode

	step           step
	typeMenu       components.Menu
	difficultyMenu components.Menu
	topicInput     components.TextInput
	countInput     components.TextInput
	spin           spinner.Model

	questionType interview.QuestionType
	topic        string
	difficulty   interview.Difficulty
	numFollowUps int

	set      *interview.InterviewSet
	pipeline *interview.PipelineResult
	errMsg   string
	hint     string
}

var _ screen.Screen = (*WizardScreen)(nil)
var _ screen.KeyHintProvider = (*WizardScreen)(nil)

// New creates a wizard for the given mode.
func New(provider llm.Provider, cfg interview.Config, mode Mode) *WizardScreen {
	typeItems := []components.MenuItem{
		{Label: "Coding", Detail: "algorithmic problem with I/O spec", Action: chooseType(interview.TypeCoding)},
		{Label: "ML Theory", Detail: "conceptual machine learning question", Action: chooseType(interview.TypeMLTheory)},
		{Label: "ML Practical", Detail: "applied machine learning scenario", Action: chooseType(interview.TypeMLPractical)},
	}

	difficultyItems := []components.MenuItem{
		{Label: "Easy", Action: chooseDifficulty(interview.DifficultyEasy)},
		{Label: "Medium", Action: chooseDifficulty(interview.DifficultyMedium)},
		{Label: "Hard", Action: chooseDifficulty(interview.DifficultyHard)},
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	countInput := components.NewTextInput("2", true, 2)

	return &WizardScreen{
		provider:       provider,
		cfg:            cfg,
		mode:           mode,
		step:           stepType,
		typeMenu:       components.NewMenu(typeItems),
		difficultyMenu: components.NewMenu(difficultyItems),
		topicInput:     components.NewTextInput("e.g. binary search trees", false, 80),
		countInput:     countInput,
		spin:           sp,
	}
}

func chooseType(t interview.QuestionType) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return typeChosenMsg{Type: t} }
	}
}

func chooseDifficulty(d interview.Difficulty) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return difficultyChosenMsg{Difficulty: d} }
	}
}

func (w *WizardScreen) Init() tea.Cmd {
	return nil
}

func (w *WizardScreen) Title() string {
	if w.mode == ModeCalibrate {
		return "Calibrate"
	}
	return "New Interview"
}

func (w *WizardScreen) KeyHints() []layout.KeyHint {
	switch w.step {
	case stepTopic, stepFollowUps:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	case stepGenerating:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	case stepResult, stepError:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (w *WizardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case typeChosenMsg:
		w.questionType = msg.Type
		w.step = stepTopic
		return w, w.topicInput.Init()

	case difficultyChosenMsg:
		w.difficulty = msg.Difficulty
		w.step = stepFollowUps
		return w, w.countInput.Init()

	case generatedMsg:
		if msg.Err != nil {
			w.errMsg = msg.Err.Error()
			w.step = stepError
			return w, nil
		}
		w.set = msg.Set
		w.pipeline = msg.Pipeline
		w.step = stepResult
		return w, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		w.spin, cmd = w.spin.Update(msg)
		return w, cmd
	}

	switch w.step {
	case stepType:
		var cmd tea.Cmd
		w.typeMenu, cmd = w.typeMenu.Update(msg)
		return w, cmd

	case stepDifficulty:
		var cmd tea.Cmd
		w.difficultyMenu, cmd = w.difficultyMenu.Update(msg)
		return w, cmd

	case stepTopic:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			topic := strings.TrimSpace(w.topicInput.Value())
			if topic == "" {
				w.hint = "Topic cannot be empty."
				return w, nil
			}
			w.topic = topic
			w.hint = ""
			w.step = stepDifficulty
			return w, nil
		}
		var cmd tea.Cmd
		w.topicInput, cmd = w.topicInput.Update(msg)
		return w, cmd

	case stepFollowUps:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			n, err := w.countInput.NumericValue()
			if w.countInput.Value() == "" {
				n, err = 2, nil
			}
			if err != nil || n < interview.MinFollowUps || n > interview.MaxFollowUps {
				w.hint = fmt.Sprintf("Enter a number between %d and %d.",
					interview.MinFollowUps, interview.MaxFollowUps)
				return w, nil
			}
			w.numFollowUps = n
			w.hint = ""
			w.step = stepGenerating
			return w, tea.Batch(w.spin.Tick, w.generateCmd())
		}
		var cmd tea.Cmd
		w.countInput, cmd = w.countInput.Update(msg)
		return w, cmd
	}

	return w, nil
}

// generateCmd runs the flow for the chosen mode off the UI loop.
func (w *WizardScreen) generateCmd() tea.Cmd {
	input := interview.PipelineInput{
		Topic:        w.topic,
		Type:         w.questionType,
		Difficulty:   w.difficulty,
		NumFollowUps: w.numFollowUps,
	}

	provider := w.provider
	cfg := w.cfg
	mode := w.mode

	return func() tea.Msg {
		ctx := store.WithRun(context.Background(), store.NewRunID())

		if mode == ModeCalibrate {
			pipe := interview.NewInterviewPipeline(provider, cfg)
			result, err := pipe.Generate(ctx, input)
			return generatedMsg{Pipeline: result, Err: err}
		}

		gen := interview.NewCompleteInterviewGenerator(provider, cfg)
		set, err := gen.Generate(ctx, input)
		return generatedMsg{Set: set, Err: err}
	}
}

func (w *WizardScreen) View(width, height int) string {
	var body string

	switch w.step {
	case stepType:
		body = w.renderStep("What kind of question?", w.typeMenu.View())
	case stepTopic:
		body = w.renderStep("Topic", w.topicInput.View())
	case stepDifficulty:
		body = w.renderStep("Difficulty", w.difficultyMenu.View())
	case stepFollowUps:
		body = w.renderStep(
			fmt.Sprintf("How many follow-up questions? (%d-%d)",
				interview.MinFollowUps, interview.MaxFollowUps),
			w.countInput.View())
	case stepGenerating:
		body = "\n\n" + w.spin.View() + " Generating interview questions..."
	case stepResult:
		body = w.renderResult(width)
	case stepError:
		body = "\n" + theme.Bad.Render("Generation failed") + "\n\n" +
			theme.Body.Render(w.errMsg)
	}

	if w.hint != "" {
		body += "\n\n" + theme.Bad.Render(w.hint)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(body)
}

func (w *WizardScreen) renderStep(prompt, control string) string {
	var b strings.Builder
	b.WriteString(theme.Label.Render(prompt))
	b.WriteString("\n\n")
	b.WriteString(control)
	if w.topic != "" && w.step != stepTopic {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Topic: " + w.topic))
	}
	return b.String()
}

func (w *WizardScreen) renderResult(width int) string {
	var b strings.Builder

	if w.pipeline != nil {
		b.WriteString(theme.Section.Render("Question"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(w.pipeline.Question))
		b.WriteString("\n\n")
		b.WriteString(theme.Section.Render("Explanation"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(w.pipeline.Explanation))
		b.WriteString("\n\n")
		b.WriteString(theme.Section.Render("Difficulty"))
		b.WriteString("\n")
		line := fmt.Sprintf("requested %s, assessed %s",
			w.pipeline.RequestedDifficulty, w.pipeline.AssessedDifficulty)
		if w.pipeline.RequestedDifficulty == w.pipeline.AssessedDifficulty {
			b.WriteString(theme.Good.Render(line))
		} else {
			b.WriteString(theme.Bad.Render(line))
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(w.pipeline.DifficultyReasoning))
		b.WriteString("\n\n")
		b.WriteString(theme.Section.Render("Follow-ups"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(w.pipeline.FollowUpQuestions))
		return wrap(b.String(), width-8)
	}

	if w.set != nil {
		b.WriteString(theme.Section.Render(fmt.Sprintf("Question (%s, %s)", w.questionType.Label(), w.set.Difficulty)))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(w.set.Question))
		b.WriteString("\n\n")
		if w.set.Details.ML != nil {
			b.WriteString(theme.Section.Render("Key concepts"))
			b.WriteString("\n")
			b.WriteString(theme.Body.Render(w.set.Details.ML.KeyConcepts))
			b.WriteString("\n\n")
			b.WriteString(theme.Section.Render("Expected depth"))
			b.WriteString("\n")
			b.WriteString(theme.Body.Render(w.set.Details.ML.ExpectedDepth))
			b.WriteString("\n\n")
		}
		b.WriteString(theme.Section.Render("Follow-ups"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(w.set.FollowUpQuestions))
		return wrap(b.String(), width-8)
	}

	return ""
}

// wrap re-flows long lines to the given width; lipgloss handles
// truncation but long LLM paragraphs need soft wrapping.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, wrapLine(line, width))
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) string {
	if lipgloss.Width(line) <= width {
		return line
	}
	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		wlen := lipgloss.Width(word)
		if i > 0 && lineLen+1+wlen > width {
			b.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += wlen
	}
	return b.String()
}
