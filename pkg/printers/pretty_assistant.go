package printers

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/assistant"
)

// AssistantReply renders a model reply, markdown-formatted when possible.
func (pp *PrettyPrint) AssistantReply(text string) {
	out, err := glamour.Render(text, "auto")
	if err != nil {
		fmt.Println(text)
		return
	}
	fmt.Print(out)
}

// AssistantProblem renders a failed assistant exchange as a chat-style
// message describing the probable cause. Errors never escape the chat.
func (pp *PrettyPrint) AssistantProblem(msg string) {
	w := color.New(color.FgYellow)
	_, _ = w.Printf("assistant: %s\n", msg)
}

func (pp *PrettyPrint) ModelStatus(s *assistant.ModelStatus) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("model", s.ModelName)
	tbl.AddRow("loaded", fmt.Sprintf("%t", s.Loaded))
	tbl.AddRow("device", s.Device)
	tbl.AddRow("memory", s.EstimatedMemory)
	tbl.AddRow("cuda", fmt.Sprintf("%t", s.CUDAAvailable))
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) Models(m *assistant.AvailableModels) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, d := range m.API {
		marker := " "
		if d.Current {
			marker = color.New(color.FgGreen, color.Bold).Sprint("*")
		}
		availability := color.New(color.Faint).Sprint("unavailable")
		if d.Available {
			availability = "available"
		}
		tbl.AddRow(marker, d.Name, availability, color.New(color.Faint).Sprint(d.Description))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = color.New(color.Faint).Printf("system: %d cores, %.1f GB RAM\n",
		m.System.CPUCores, m.System.TotalRAMGB)
}

func (pp *PrettyPrint) CurrentModel(m *assistant.CurrentModel) {
	marker := color.New(color.Faint).Sprint("(unavailable)")
	if m.Available {
		marker = color.New(color.FgGreen).Sprint("(available)")
	}
	fmt.Printf("%s/%s %s\n", m.Provider, m.Name, marker)
}

// DayAnalysis renders the per-category breakdown, skipping empty sections.
func (pp *PrettyPrint) DayAnalysis(a *assistant.DayAnalysis) {
	sections := []struct {
		name string
		text string
	}{
		{"summary", a.Summary},
		{"tasks", a.Tasks},
		{"finances", a.Finances},
		{"workouts", a.Workouts},
		{"diary", a.Diary},
		{"events", a.Events},
		{"notes", a.Notes},
	}
	for _, s := range sections {
		if s.text == "" {
			continue
		}
		pp.Title(s.name)
		fmt.Println(s.text)
		fmt.Println("")
	}
}
