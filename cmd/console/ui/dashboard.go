package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type view int

const (
	viewProjects view = iota
	viewUsers
)

type usersMsg []UserRow

type projectsMsg []ProjectRow

type DashboardModel struct {
	Session  *Session
	Table    table.Model
	CurView  view
	Projects []ProjectRow
	Err      error
	Status   string
}

func NewDashboardModel(s *Session, height int) DashboardModel {
	t := table.New(table.WithFocused(true), table.WithHeight(max(height-10, 5)))

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	m := DashboardModel{Session: s, Table: t, CurView: viewProjects}
	m.setColumns()
	return m
}

func (m *DashboardModel) setColumns() {
	switch m.CurView {
	case viewProjects:
		m.Table.SetColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Name", Width: 30},
			{Title: "Description", Width: 40},
		})
	case viewUsers:
		m.Table.SetColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Email", Width: 40},
			{Title: "Created", Width: 24},
		})
	}
	m.Table.SetRows(nil)
}

func (m DashboardModel) Init() tea.Cmd { return m.refreshCmd }

func (m DashboardModel) refreshCmd() tea.Msg {
	switch m.CurView {
	case viewUsers:
		users, err := m.Session.Users()
		if err != nil {
			return errMsg(err)
		}
		return usersMsg(users)
	default:
		projects, err := m.Session.Projects()
		if err != nil {
			return errMsg(err)
		}
		return projectsMsg(projects)
	}
}

func (m DashboardModel) deleteSelectedCmd() tea.Msg {
	row := m.Table.SelectedRow()
	if m.CurView != viewProjects || len(row) == 0 || m.Table.Cursor() >= len(m.Projects) {
		return nil
	}
	if err := m.Session.DeleteProject(m.Projects[m.Table.Cursor()].ID); err != nil {
		return errMsg(err)
	}
	return m.refreshCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.refreshCmd
		case "u":
			m.CurView = viewUsers
			m.setColumns()
			return m, m.refreshCmd
		case "p":
			m.CurView = viewProjects
			m.setColumns()
			return m, m.refreshCmd
		case "d":
			return m, m.deleteSelectedCmd
		case "q":
			return m, tea.Quit
		}

	case usersMsg:
		m.Err = nil
		rows := make([]table.Row, 0, len(msg))
		for _, u := range msg {
			rows = append(rows, table.Row{fmt.Sprint(u.ID), u.Email, u.CreatedAt})
		}
		m.Table.SetRows(rows)
		m.Status = fmt.Sprintf("%d users", len(msg))

	case projectsMsg:
		m.Err = nil
		m.Projects = msg
		rows := make([]table.Row, 0, len(msg))
		for _, p := range msg {
			rows = append(rows, table.Row{fmt.Sprint(p.ID), p.Name, p.Description})
		}
		m.Table.SetRows(rows)
		m.Status = fmt.Sprintf("%d projects", len(msg))

	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	var b strings.Builder
	title := "Dashboard - My Projects"
	if m.CurView == viewUsers {
		title = "Dashboard - Users"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("'p' projects, 'u' users, 'r' refresh, 'd' delete project, 'q' quit"))
	if m.Status != "" {
		b.WriteString("\n" + blurredStyle.Render(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
