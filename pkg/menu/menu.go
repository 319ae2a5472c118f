package menu

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

const menuWidth = 50
const menuHeight = 12
const menuPage = menuHeight - 2
const resultHeight = 20
const resultWidth = 70

// Escaped is returned by the input windows when the user pressed <Escape>.
const Escaped = "<Esc>"

type validCheck func(string) (string, string, bool)

// Entry is one choice of DisplayMenu.
type Entry interface {
	// Label returns the string will show in menu.
	Label() string
}

func Init() error {
	return ui.Init()
}

func Close() {
	ui.Close()
}

// PollEvents returns the terminal's event stream.
func PollEvents() <-chan ui.Event {
	return ui.PollEvents()
}

// AlwaysValid is a special isValid function that check nothing
func AlwaysValid(input string) (string, string, bool) {
	return input, "", true
}

// newParagraph returns a widgets.Paragraph struct with given initial text.
func newParagraph(initText string, border bool, location int, wid int, ht int) *widgets.Paragraph {
	p := widgets.NewParagraph()
	p.Text = initText
	p.Border = border
	p.SetRect(0, location, wid, location+ht)
	p.TextStyle.Fg = ui.ColorWhite
	return p
}

// readKey reads a key from input stream.
func readKey(uiEvents <-chan ui.Event) string {
	for {
		e := <-uiEvents
		if e.Type == ui.KeyboardEvent || e.Type == ui.MouseEvent {
			return e.ID
		}
	}
}

// isSpecial reports whether k names a special key such as "<F1>" rather
// than a printable character. A typed '<' arrives as "<".
func isSpecial(k string) bool {
	return len(k) > 1 && strings.HasPrefix(k, "<")
}

// processInput presents an input box to user and returns the user's input.
// processInput will check validation of input using isValid function.
// With mask set the box shows one '*' per typed character.
func processInput(introwords string, location int, wid int, ht int, isValid validCheck, mask bool, uiEvents <-chan ui.Event) (string, string, error) {
	intro := newParagraph(introwords, false, location, len(introwords)+4, 3)
	location += 2
	input := newParagraph("", true, location, wid, ht+2)
	location += ht + 2
	warning := newParagraph("", false, location, wid, 15)

	text := ""
	show := func() {
		if mask {
			input.Text = strings.Repeat("*", len([]rune(text)))
		} else {
			input.Text = text
		}
		ui.Render(input)
	}

	ui.Render(intro)
	ui.Render(input)
	ui.Render(warning)

	// keep tracking all input from user
	for {
		k := readKey(uiEvents)
		switch k {
		case "<C-d>":
			return text, warning.Text, io.EOF
		case "<Enter>":
			inputString, warningString, ok := isValid(text)
			if ok {
				return inputString, warning.Text, nil
			}
			text = ""
			warning.Text = warningString
			show()
			ui.Render(warning)
		case "<Backspace>":
			if r := []rune(text); len(r) > 0 {
				text = string(r[:len(r)-1])
				show()
			}
		case "<Escape>":
			return Escaped, "", nil
		case "<Space>":
			text += " "
			show()
		default:
			if !isSpecial(k) {
				text += k
				show()
			}
		}
	}
}

// NewInputWindow opens a new input window with fixed width=80, hight=1.
func NewInputWindow(introwords string, isValid validCheck, uiEvents <-chan ui.Event) (string, error) {
	return NewCustomInputWindow(introwords, 80, 1, isValid, uiEvents)
}

// NewPasswordWindow is NewInputWindow with the typed text masked.
func NewPasswordWindow(introwords string, isValid validCheck, uiEvents <-chan ui.Event) (string, error) {
	defer ui.Clear()
	input, _, err := processInput(introwords, 0, 80, 1, isValid, true, uiEvents)
	return input, err
}

// NewCustomInputWindow creates a new ui window and displays an input box.
func NewCustomInputWindow(introwords string, wid int, ht int, isValid validCheck, uiEvents <-chan ui.Event) (string, error) {
	defer ui.Clear()
	input, _, err := processInput(introwords, 0, wid, ht, isValid, false, uiEvents)
	return input, err
}

// DisplayResult opens a new window and displays a message.
// each item in the message array will be displayed on a single line.
func DisplayResult(message []string, uiEvents <-chan ui.Event) (string, error) {
	defer ui.Clear()

	// split lines longer than the window, and the lines of multi-line items
	wid := resultWidth
	text := []string{}
	for _, item := range message {
		for _, line := range strings.Split(item, "\n") {
			m := []rune(line)
			for len(m) > wid {
				text = append(text, string(m[:wid]))
				m = m[wid:]
			}
			text = append(text, string(m))
		}
	}

	p := widgets.NewParagraph()
	p.Border = true
	p.SetRect(0, 0, wid+2, resultHeight+3)
	p.TextStyle.Fg = ui.ColorWhite

	hint := "(Press any key to continue, press <Esc> to exit.)"
	msgLength := len(text)
	currentLine := 0

	for currentLine < msgLength {
		// display the page number
		p.Title = fmt.Sprintf("Message---%v/%v", currentLine, msgLength)
		p.Text = strings.Join(text[currentLine:min(msgLength, currentLine+resultHeight)], "\n") + "\n" + hint
		currentLine += resultHeight
		ui.Render(p)
		k := readKey(uiEvents)
		switch k {
		case "<C-d>":
			return p.Text, io.EOF
		case "<Escape>":
			return p.Text, nil
		default:
			continue
		}
	}
	return p.Text, nil
}

// showPage fills menu with the labels starting at first and returns the
// index after the last one shown.
func showPage(menu *widgets.List, title string, labels []string, first int) int {
	last := min(first+menuPage, len(labels))
	menu.Rows = labels[first:last]
	menu.Title = fmt.Sprintf(title, first, len(labels))
	ui.Render(menu)
	return last
}

// parsingMenuOption parses the user's operation in the menu page, such as page up, page down, selection. etc
func parsingMenuOption(labels []string, menu *widgets.List, input, warning *widgets.Paragraph, uiEvents <-chan ui.Event, customWarning ...string) (int, error) {
	if len(labels) == 0 {
		return 0, fmt.Errorf("No Entry in the menu")
	}

	menuTitle := menu.Title + "---%v/%v"

	// first, last always point to the first and last entry in current menu page
	first := 0
	last := showPage(menu, menuTitle, labels, first)

	// keep tracking all input from user
	for {
		k := readKey(uiEvents)
		switch k {
		case "<C-d>":
			return 0, io.EOF
		case "<Enter>":
			choose := input.Text
			input.Text = ""
			ui.Render(input)
			c, err := strconv.Atoi(choose)
			// input is valid when it is a number inside the current page.
			if err == nil && c >= first && c < last {
				// entries may carry a warning instead of being selectable
				if len(customWarning) > c && customWarning[c] != "" {
					warning.Text = customWarning[c]
					ui.Render(warning)
					continue
				}
				return c, nil
			}
			warning.Text = "Please enter a valid entry number."
			ui.Render(warning)
		case "<Backspace>":
			if len(input.Text) > 0 {
				input.Text = input.Text[:len(input.Text)-1]
				ui.Render(input)
			}
		case "<Left>", "<PageUp>":
			first = max(0, first-menuPage)
			last = showPage(menu, menuTitle, labels, first)
		case "<Right>", "<PageDown>":
			if first+menuPage >= len(labels) {
				continue
			}
			first += menuPage
			last = showPage(menu, menuTitle, labels, first)
		case "<Up>", "<MouseWheelUp>":
			first = max(0, first-1)
			last = showPage(menu, menuTitle, labels, first)
		case "<Down>", "<MouseWheelDown>":
			first = max(0, min(last+1, len(labels))-menuPage)
			last = showPage(menu, menuTitle, labels, first)
		case "<Home>":
			first = 0
			last = showPage(menu, menuTitle, labels, first)
		case "<End>":
			first = max(0, len(labels)-menuPage)
			last = showPage(menu, menuTitle, labels, first)
		case "<Space>":
			input.Text += " "
			ui.Render(input)
		default:
			if !isSpecial(k) {
				input.Text += k
				ui.Render(input)
			}
		}
	}
}

// DisplayMenu presents all entries into a menu with numbers.
// user inputs a number to choose from them.
// customWarning allows a warning to be shown instead of returning a
// specific entry, for example an interface that cannot scan.
func DisplayMenu(menuTitle string, introwords string, entries []Entry, uiEvents <-chan ui.Event, customWarning ...string) (Entry, error) {
	defer ui.Clear()

	listData := []string{}
	for i, e := range entries {
		listData = append(listData, fmt.Sprintf("[%d] %s", i, e.Label()))
	}

	location := 0
	menu := widgets.NewList()
	menu.Title = menuTitle
	menu.SetRect(0, location, menuWidth, location+menuHeight)
	location += menuHeight
	menu.TextStyle.Fg = ui.ColorWhite

	intro := newParagraph(introwords, false, location, len(introwords)+4, 3)
	location += 2
	input := newParagraph("", true, location, menuWidth, 3)
	location += 3
	warning := newParagraph("", false, location, menuWidth, 3)

	ui.Render(intro)
	ui.Render(input)
	ui.Render(warning)

	chooseIndex, err := parsingMenuOption(listData, menu, input, warning, uiEvents, customWarning...)
	if err != nil {
		return nil, fmt.Errorf("Fail to get the choose from menu: %w", err)
	}

	return entries[chooseIndex], nil
}

// Progress is a box shown while a blocking operation runs.
type Progress struct {
	paragraph *widgets.Paragraph
	animated  bool
	sigTerm   chan bool
	ackTerm   chan bool
}

func NewProgress(text string, animated bool) Progress {
	paragraph := widgets.NewParagraph()
	paragraph.Border = true
	paragraph.SetRect(0, 0, resultWidth, 10)
	paragraph.TextStyle.Fg = ui.ColorWhite
	paragraph.Title = "Operation Running"
	paragraph.Text = text
	ui.Render(paragraph)

	progress := Progress{paragraph, animated, make(chan bool), make(chan bool)}
	if animated {
		go progress.animate()
	}
	return progress
}

func (p *Progress) Update(text string) {
	p.paragraph.Text = text
	ui.Render(p.paragraph)
}

func (p *Progress) animate() {
	counter := 0
	for {
		select {
		case <-p.sigTerm:
			p.ackTerm <- true
			return
		case <-time.After(time.Second):
			pText := p.paragraph.Text
			p.Update(pText + strings.Repeat(".", counter%4))
			p.paragraph.Text = pText
			counter++
		}
	}
}

func (p *Progress) Close() {
	if p.animated {
		p.sigTerm <- true
		<-p.ackTerm
	}
	ui.Clear()
}
