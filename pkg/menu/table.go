package menu

import (
	"fmt"
	"io"
	"strconv"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/u-root/wifitable/pkg/table"
	"github.com/u-root/wifitable/pkg/wifi"
)

const tableWidth = 110
const tablePage = 15

// one line per row plus the header and the border
const tableHeight = tablePage + 3

var columnWidths = []int{20, 32, 8, 6, 12, 8, 8}

const tableHint = "[1-7] sort  [/] filter  [r] refresh  [Enter] connect  [q] quit"

// TableActions are run from the table page. A nil action is ignored. An
// error returned by an action ends DisplayTable with that error.
type TableActions struct {
	Refresh func() error
	Connect func(wifi.Record) error
	// Title replaces the title given to DisplayTable. It is asked again
	// after every refresh and connect.
	Title func() string
}

// tableView holds the widgets of DisplayTable.
type tableView struct {
	title   string
	state   *table.State
	grid    *widgets.Table
	filter  *widgets.Paragraph
	hint    *widgets.Paragraph
	warning *widgets.Paragraph
	// first is the view index of the top row on screen.
	first int
}

func newTableView(title string, state *table.State) *tableView {
	grid := widgets.NewTable()
	grid.SetRect(0, 0, tableWidth, tableHeight)
	grid.TextStyle = ui.NewStyle(ui.ColorWhite)
	grid.RowSeparator = false
	grid.FillRow = true
	grid.ColumnWidths = columnWidths

	location := tableHeight
	filter := newParagraph("", true, location, tableWidth/2, 3)
	filter.Title = "Filter (SSID)"
	location += 3
	hint := newParagraph(tableHint, false, location, tableWidth, 3)
	location += 2
	warning := newParagraph("", false, location, tableWidth, 3)
	warning.TextStyle.Fg = ui.ColorYellow

	return &tableView{
		title:   title,
		state:   state,
		grid:    grid,
		filter:  filter,
		hint:    hint,
		warning: warning,
	}
}

// header marks the sorted column with its direction.
func (v *tableView) header() []string {
	header := table.Header()
	if c, desc, ok := v.state.SortColumn(); ok {
		arrow := " ^"
		if desc {
			arrow = " v"
		}
		header[c] += arrow
	}
	return header
}

func (v *tableView) render(filtering bool) {
	rows := v.state.Rows()
	sel := v.state.Index()
	if sel < v.first {
		v.first = max(0, sel)
	}
	if sel >= v.first+tablePage {
		v.first = sel - tablePage + 1
	}
	v.first = min(v.first, max(0, len(rows)-tablePage))

	v.grid.Title = fmt.Sprintf("%s---%v/%v", v.title, len(rows), v.state.Len())
	v.grid.Rows = append([][]string{v.header()}, rows[v.first:min(len(rows), v.first+tablePage)]...)
	v.grid.RowStyles = map[int]ui.Style{
		0: ui.NewStyle(ui.ColorCyan, ui.ColorClear, ui.ModifierBold),
	}
	if sel >= 0 {
		v.grid.RowStyles[sel-v.first+1] = ui.NewStyle(ui.ColorBlack, ui.ColorWhite)
	}

	v.filter.Text = v.state.Filter()
	if filtering {
		v.filter.Text += "_"
		v.filter.BorderStyle.Fg = ui.ColorYellow
	} else {
		v.filter.BorderStyle.Fg = ui.ColorWhite
	}

	ui.Render(v.grid, v.filter, v.hint, v.warning)
}

// DisplayTable shows the networks in state and handles the keys of the page
// until the user quits. Sorting, filtering and selection only change state;
// refresh and connect are delegated to actions. <C-d> returns io.EOF.
func DisplayTable(title string, state *table.State, actions TableActions, uiEvents <-chan ui.Event) error {
	defer ui.Clear()

	v := newTableView(title, state)
	retitle := func() {
		if actions.Title != nil {
			v.title = actions.Title()
		}
	}
	retitle()
	filtering := false
	v.render(filtering)

	for {
		k := readKey(uiEvents)
		v.warning.Text = ""

		if filtering {
			switch k {
			case "<C-d>":
				return io.EOF
			case "<Enter>":
				filtering = false
			case "<Escape>":
				filtering = false
				state.SetFilter("")
			case "<Backspace>":
				if r := []rune(state.Filter()); len(r) > 0 {
					state.SetFilter(string(r[:len(r)-1]))
				}
			case "<Space>":
				state.SetFilter(state.Filter() + " ")
			case "<Up>":
				filtering = false
				state.Move(-1)
			case "<Down>":
				filtering = false
				state.Move(1)
			default:
				if !isSpecial(k) {
					state.SetFilter(state.Filter() + k)
				}
			}
			v.render(filtering)
			continue
		}

		switch k {
		case "q", "<C-c>":
			return nil
		case "<C-d>":
			return io.EOF
		case "<Up>", "<MouseWheelUp>":
			state.Move(-1)
		case "<Down>", "<MouseWheelDown>":
			state.Move(1)
		case "<PageUp>":
			state.Move(-tablePage)
		case "<PageDown>":
			state.Move(tablePage)
		case "<Home>":
			state.SetSelected(0)
		case "<End>":
			state.SetSelected(len(state.View()) - 1)
		case "/":
			filtering = true
		case "r", "<F5>":
			if actions.Refresh != nil {
				if err := actions.Refresh(); err != nil {
					return err
				}
			}
			retitle()
		case "<Enter>":
			r, ok := state.Selected()
			if !ok {
				v.warning.Text = "Please select a network to connect to."
				break
			}
			if actions.Connect != nil {
				if err := actions.Connect(r); err != nil {
					return err
				}
			}
			retitle()
		default:
			if n, err := strconv.Atoi(k); err == nil && n >= 1 && n <= len(table.Columns) {
				state.ToggleSort(table.Columns[n-1])
			}
		}
		v.render(filtering)
	}
}
