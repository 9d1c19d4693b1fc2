package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// chronosHuhTheme styles huh forms to match the chart palette.
func chronosHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = formatter.StyleHeader
	t.Focused.SelectSelector = formatter.StyleHeader.Bold(false)
	t.Focused.SelectedOption = formatter.StyleGreen
	t.Focused.UnselectedOption = formatter.StyleFg
	t.Focused.FocusedButton = formatter.StyleFg.Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = formatter.StyleDim.Padding(0, 1)
	t.Focused.TextInput.Cursor = formatter.StyleHeader.Bold(false)
	t.Focused.TextInput.Prompt = formatter.StyleHeader.Bold(false)
	t.Focused.TextInput.Text = formatter.StyleFg
	t.Focused.TextInput.Placeholder = formatter.StyleDim
	t.Focused.Description = formatter.StyleDim

	t.Blurred.Title = formatter.StyleDim
	t.Blurred.SelectSelector = formatter.StyleDim
	t.Blurred.SelectedOption = formatter.StyleDim
	t.Blurred.UnselectedOption = formatter.StyleDim
	t.Blurred.TextInput.Prompt = formatter.StyleDim
	t.Blurred.TextInput.Text = formatter.StyleDim

	return t
}

// validateOptionalDate accepts empty input or a YYYY-MM-DD day.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := domain.ParseDay(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// editFormView is a huh form for editing a work item's core fields. On
// submit it persists via WorkItemService and refreshes the chart beneath.
type editFormView struct {
	state *SharedState
	form  *huh.Form
	err   error

	itemID string
	title  string
	start  string
	end    string
	status string
}

func newEditFormView(state *SharedState, itemID string) View {
	v := &editFormView{state: state, itemID: itemID}

	item, err := state.App.WorkItems.GetByID(context.Background(), itemID)
	if err != nil {
		v.err = err
		return v
	}
	v.title = item.Title
	v.status = string(item.Status)
	if item.StartDate != nil {
		v.start = domain.FormatDay(*item.StartDate)
	}
	if item.EndDate != nil {
		v.end = domain.FormatDay(*item.EndDate)
	}

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&v.title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start (YYYY-MM-DD)").
				Placeholder("unscheduled").
				Value(&v.start).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("End (YYYY-MM-DD)").
				Placeholder("unscheduled").
				Value(&v.end).
				Validate(validateOptionalDate),
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Planned", string(domain.WorkItemPlanned)),
					huh.NewOption("In progress", string(domain.WorkItemInProgress)),
					huh.NewOption("Done", string(domain.WorkItemDone)),
					huh.NewOption("Blocked", string(domain.WorkItemBlocked)),
				).
				Value(&v.status),
		),
	).WithTheme(chronosHuhTheme()).WithShowHelp(false)

	return v
}

func (v *editFormView) ID() ViewID    { return ViewEditForm }
func (v *editFormView) Title() string { return "edit" }

func (v *editFormView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next/save")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *editFormView) Init() tea.Cmd {
	if v.form == nil {
		return nil
	}
	return v.form.Init()
}

func (v *editFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView()
	}
	if v.form == nil {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		return v, tea.Batch(cmd, v.save())
	}
	return v, cmd
}

func (v *editFormView) save() tea.Cmd {
	state := v.state
	itemID := v.itemID
	title, start, end, status := v.title, v.start, v.end, v.status
	return func() tea.Msg {
		ctx := context.Background()
		item, err := state.App.WorkItems.GetByID(ctx, itemID)
		if err != nil {
			return rescheduleFailedMsg{itemID: itemID, err: err}
		}
		item.Title = title
		item.Status = domain.WorkItemStatus(status)
		item.StartDate = nil
		item.EndDate = nil
		if start != "" {
			d, _ := domain.ParseDay(start)
			item.StartDate = domain.DayPtr(d)
		}
		if end != "" {
			d, _ := domain.ParseDay(end)
			item.EndDate = domain.DayPtr(d)
		}
		if err := state.App.WorkItems.Update(ctx, item); err != nil {
			return rescheduleFailedMsg{itemID: itemID, err: err}
		}
		return popAndRefreshMsg{}
	}
}

func (v *editFormView) View() string {
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("error: "+v.err.Error())
	}
	return v.form.View()
}
