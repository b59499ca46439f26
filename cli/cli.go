// cli/cli.go
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/gollamadock/containers"
	"github.com/mwiater/gollamadock/internal/execrunner"
)

// containerEntry is one row of the container listing shown in the
// dashboard.
type containerEntry struct {
	// Name is the container name.
	Name string
	// Image is the image reference the container was created from.
	Image string
	// Status is the human-readable docker status, e.g. "Up 2 hours".
	Status string
}

// viewState represents the current state of the application's view.
type viewState int

const (
	// viewContainerList is the state where the user selects a container.
	viewContainerList viewState = iota
	// viewDetail is the state showing one container's inspect summary.
	viewDetail
)

// model is the main application model for the Bubble Tea UI.
// It holds all the necessary state for the status dashboard.
type model struct {
	// Application configuration.
	cfg *containers.Config
	// Runner used for all docker invocations.
	runner execrunner.Runner
	// Current view state of the application.
	state viewState
	// Indicates if an asynchronous operation is in progress.
	isLoading bool
	// Stores any error encountered during operations.
	err error

	// Bubble Tea list model for container selection.
	containerList list.Model
	// Bubble Tea viewport model for displaying container details.
	viewport viewport.Model
	// Bubble Tea spinner model for indicating loading.
	spinner spinner.Model

	// The currently selected container.
	selected containerEntry

	// Current width and height of the terminal.
	width, height int
	// Timestamp when the last request started.
	requestStartTime time.Time
}

// initialModel initializes a new model with default values and sets up
// the necessary Bubble Tea components like spinner, list, and viewport.
func initialModel(cfg *containers.Config, runner execrunner.Runner) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	containerList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	containerList.Title = "Select a Container"

	vp := viewport.New(100, 5)

	return &model{
		cfg:           cfg,
		runner:        runner,
		state:         viewContainerList,
		spinner:       s,
		containerList: containerList,
		viewport:      vp,
		isLoading:     true,
	}
}

// item represents a selectable container in the Bubble Tea list.
type item struct {
	// The container name.
	title string
	// Image and status summary.
	desc string
	// Indicates if the container is currently running.
	running bool
	// The underlying listing entry.
	entry containerEntry
}

// Title returns the title of the list item.
func (i item) Title() string { return i.title }

// Description returns the description of the list item.
// Running containers are marked as such.
func (i item) Description() string {
	if i.running {
		return i.desc + " (RUNNING)"
	}
	return i.desc
}

// FilterValue returns the title of the item, used for filtering in the list.
func (i item) FilterValue() string { return i.title }

// containersReadyMsg is sent when the container listing is fetched.
type containersReadyMsg struct {
	items []list.Item
}

// containersLoadErr is sent when an error occurs while listing containers.
type containersLoadErr error

// detailReadyMsg is sent when a container's inspect summary is ready.
type detailReadyMsg string

// detailLoadErr is sent when an error occurs while inspecting a container.
type detailLoadErr error

// tickMsg is a regular tick message used for animations or timed updates.
type tickMsg time.Time

// listFormat is the docker ps --format template for the dashboard rows.
const listFormat = "{{.Names}}\t{{.Image}}\t{{.Status}}"

// fetchContainersCmd lists all containers, running and stopped, and
// prepares the selectable list. Managed containers (those with a
// configured profile) are placed at the top.
func fetchContainersCmd(cfg *containers.Config, runner execrunner.Runner) tea.Cmd {
	return func() tea.Msg {
		res, err := runner.Run(context.Background(), "docker", "ps", "-a", "--format", listFormat)
		if err != nil {
			return containersLoadErr(err)
		}

		var managed []list.Item
		var others []list.Item
		for _, line := range strings.Split(res.Stdout, "\n") {
			fields := strings.SplitN(strings.TrimSpace(line), "\t", 3)
			if len(fields) < 3 {
				continue
			}
			entry := containerEntry{Name: fields[0], Image: fields[1], Status: fields[2]}
			listItem := item{
				title:   entry.Name,
				desc:    entry.Image + " / " + entry.Status,
				running: strings.HasPrefix(entry.Status, "Up"),
				entry:   entry,
			}
			if _, ok := cfg.Spec(entry.Name); ok {
				managed = append(managed, listItem)
			} else {
				others = append(others, listItem)
			}
		}

		return containersReadyMsg{items: append(managed, others...)}
	}
}

// inspectFormat pulls the fields shown in the detail pane out of
// docker inspect in one invocation.
const inspectFormat = "{{.State.Status}}\t{{.Config.Image}}\t{{.State.StartedAt}}\t{{.HostConfig.RestartPolicy.Name}}"

// fetchDetailCmd inspects the selected container and, for the managed
// services, asks the service itself for its version.
func fetchDetailCmd(entry containerEntry, runner execrunner.Runner) tea.Cmd {
	return func() tea.Msg {
		res, err := runner.Run(context.Background(), "docker", "inspect", "--format", inspectFormat, entry.Name)
		if err != nil {
			return detailLoadErr(err)
		}

		fields := strings.SplitN(strings.TrimSpace(res.Stdout), "\t", 4)
		labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Container:"), entry.Name)
		if len(fields) == 4 {
			fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("State:"), fields[0])
			fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Image:"), fields[1])
			fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Started:"), fields[2])
			fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Restart:"), fields[3])
		}

		if version := serviceVersion(entry.Name, runner); version != "" {
			fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Version:"), version)
		}

		return detailReadyMsg(b.String())
	}
}

// serviceVersion asks the managed service inside the container for its
// version string. Unknown containers return an empty string.
func serviceVersion(name string, runner execrunner.Runner) string {
	switch name {
	case containers.OllamaName:
		res, err := runner.Run(context.Background(), "docker", "exec", name, "ollama", "-v")
		if err != nil {
			return ""
		}
		return strings.TrimSpace(res.Stdout)
	case containers.WebUIName:
		res, err := runner.Run(context.Background(), "docker", "exec", name, "cat", "/app/package.json")
		if err != nil {
			return ""
		}
		var pkg struct {
			Version string `json:"version"`
		}
		if err := json.Unmarshal([]byte(res.Stdout), &pkg); err != nil {
			return ""
		}
		return pkg.Version
	}
	return ""
}

// tickCmd returns a Bubble Tea command that sends a tickMsg at a regular interval.
// This is used for animations or timed updates.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the Bubble Tea model. It kicks off the spinner and
// the initial container listing.
func (m *model) Init() tea.Cmd {
	m.requestStartTime = time.Now()
	return tea.Batch(m.spinner.Tick, fetchContainersCmd(m.cfg, m.runner), tickCmd())
}

// Update is the central update function for the Bubble Tea model.
// It handles incoming messages and updates the application's state accordingly.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "tab":
			if m.state == viewDetail {
				m.state = viewContainerList
				return m, nil
			}
		case "r":
			if m.state == viewContainerList && !m.isLoading {
				m.isLoading = true
				m.requestStartTime = time.Now()
				m.err = nil
				return m, tea.Batch(m.spinner.Tick, fetchContainersCmd(m.cfg, m.runner), tickCmd())
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.containerList.SetSize(msg.Width-2, msg.Height-4)
		headerHeight := 4
		footerHeight := 2
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight

	case containersReadyMsg:
		m.isLoading = false
		m.containerList.SetItems(msg.items)
		return m, nil

	case containersLoadErr:
		m.isLoading = false
		m.err = msg
		return m, nil

	case detailReadyMsg:
		m.isLoading = false
		m.viewport.SetContent(string(msg))
		m.state = viewDetail
		return m, nil

	case detailLoadErr:
		m.isLoading = false
		m.err = msg
		return m, nil

	case tickMsg:
		if m.isLoading {
			return m, tickCmd()
		}
		return m, nil
	}

	switch m.state {
	case viewContainerList:
		m.containerList, cmd = m.containerList.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			if selectedItem, ok := m.containerList.SelectedItem().(item); ok {
				m.selected = selectedItem.entry
				m.isLoading = true
				m.requestStartTime = time.Now()
				m.err = nil
				cmds = append(cmds, m.spinner.Tick, fetchDetailCmd(m.selected, m.runner), tickCmd())
			}
		}

	case viewDetail:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.isLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application's UI based on its current state.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	switch m.state {
	case viewContainerList:
		if m.isLoading {
			timer := fmt.Sprintf("%.1f", time.Since(m.requestStartTime).Seconds())
			return fmt.Sprintf("\n  %s Listing containers... %ss\n", m.spinner.View(), timer)
		}
		help := lipgloss.NewStyle().Faint(true).Render("  (enter to inspect, r to refresh, q to quit)")
		return lipgloss.NewStyle().Margin(1, 2).Render(m.containerList.View()) + "\n" + help

	case viewDetail:
		if m.isLoading {
			timer := fmt.Sprintf("%.1f", time.Since(m.requestStartTime).Seconds())
			return fmt.Sprintf("\n  %s Inspecting %s... %ss\n", m.spinner.View(), m.selected.Name, timer)
		}
		headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
		help := lipgloss.NewStyle().Faint(true).Render(" (esc to go back, q to quit)")
		return headerStyle.Render("Container: "+m.selected.Name) + help + "\n\n" + m.viewport.View()

	default:
		return "Unknown state"
	}
}

// StartGUI launches the interactive container status dashboard using
// the configuration found at the given path.
func StartGUI(configPath string) {
	f, err := tea.LogToFile("debug.log", "debug")
	if err != nil {
		log.Fatalf("could not open log file: %v", err)
	}
	defer f.Close()

	cfg, err := containers.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	runner := execrunner.NewExecRunner(cfg.Bridge)
	m := initialModel(cfg, runner)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
