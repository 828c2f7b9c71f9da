package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultAPIURL = "http://localhost:8080"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			PaddingLeft(6)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringUsername step = iota
	stepEnteringPassword
	stepLoading
	stepListing
)

type reminder struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	SendEmail   bool      `json:"send_email"`
	Email       string    `json:"email"`
	Recurring   bool      `json:"recurring"`
}

type model struct {
	step         step
	baseURL      string
	client       *http.Client
	username     string
	password     string
	currentInput string
	reminders    []reminder
	cursor       int
	message      string
	quitting     bool
}

type remindersMsg []reminder

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel(baseURL string) model {
	return model{
		step:    stepEnteringUsername,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func fetchReminders(client *http.Client, baseURL, username, password string) tea.Cmd {
	return func() tea.Msg {
		req, err := http.NewRequest(http.MethodGet, baseURL+"/reminders", nil)
		if err != nil {
			return errMsg{err}
		}
		req.SetBasicAuth(username, password)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("API not reachable: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			var body []struct {
				Ctx struct {
					Error string `json:"error"`
				} `json:"ctx"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && len(body) > 0 {
				return errMsg{fmt.Errorf("%s", body[0].Ctx.Error)}
			}
			return errMsg{fmt.Errorf("API returned %d", resp.StatusCode)}
		}

		var result struct {
			Reminders []reminder `json:"reminders"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("invalid response: %w", err)}
		}
		return remindersMsg(result.Reminders)
	}
}

func (m model) inputStep() bool {
	return m.step == stepEnteringUsername || m.step == stepEnteringPassword
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			switch m.step {
			case stepEnteringUsername:
				if m.currentInput != "" {
					m.username = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}
			case stepEnteringPassword:
				m.password = m.currentInput
				m.currentInput = ""
				m.step = stepLoading
				return m, fetchReminders(m.client, m.baseURL, m.username, m.password)
			}
		case "backspace":
			if m.inputStep() && len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}
		default:
			if m.inputStep() {
				if msg.Type == tea.KeyRunes {
					m.currentInput += string(msg.Runes)
				}
				return m, nil
			}
			switch msg.String() {
			case "q":
				m.quitting = true
				return m, tea.Quit
			case "r":
				if m.step == stepListing {
					m.step = stepLoading
					return m, fetchReminders(m.client, m.baseURL, m.username, m.password)
				}
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(m.reminders)-1 {
					m.cursor++
				}
			}
		}

	case remindersMsg:
		m.reminders = msg
		m.message = ""
		m.step = stepListing
		if m.cursor >= len(m.reminders) {
			m.cursor = 0
		}

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.step = stepEnteringUsername
		m.username, m.password = "", ""
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("Lembretes"))
	s.WriteString("\n")

	if m.message != "" {
		s.WriteString(m.message + "\n\n")
	}

	switch m.step {
	case stepEnteringUsername:
		s.WriteString(promptStyle.Render("Usuário:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")
	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Senha:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")
	case stepLoading:
		s.WriteString("Carregando lembretes...\n")
	case stepListing:
		if len(m.reminders) == 0 {
			s.WriteString(normalStyle.Render("Nenhum lembrete cadastrado.") + "\n")
		}
		for i, r := range m.reminders {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s (%s)\n", cursor, style.Render(r.Name), r.DueDate.Format("02/01/2006")))
			if m.cursor == i {
				s.WriteString(detailStyle.Render(describe(r)) + "\n")
			}
		}
		s.WriteString("\nUse ↑/↓, r to refresh, q to quit\n")
	}
	return s.String()
}

func describe(r reminder) string {
	var flags []string
	if r.Recurring {
		flags = append(flags, "recorrente")
	}
	if r.SendEmail && r.Email != "" {
		flags = append(flags, "email: "+r.Email)
	}
	if len(flags) == 0 {
		return r.Description
	}
	return r.Description + " [" + strings.Join(flags, ", ") + "]"
}

func main() {
	baseURL := os.Getenv("REMINDER_API_URL")
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	p := tea.NewProgram(initialModel(baseURL))
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
