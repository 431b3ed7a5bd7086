package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/byteweave/byteweave/base64"
	"github.com/byteweave/byteweave/hexcodec"
	"github.com/byteweave/byteweave/varint"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// inspectModel shows every codec's rendering of the typed input, updated
// live as the user edits.
type inspectModel struct {
	inputs   []textinput.Model // 0: raw bytes, 1: integers
	focusIdx int
}

const (
	inputBytes = iota
	inputInts
)

func newInspectModel() *inspectModel {
	bytesIn := textinput.New()
	bytesIn.Placeholder = "bytes to encode"
	bytesIn.Prompt = "text: "
	bytesIn.Width = 48
	bytesIn.Focus()

	intsIn := textinput.New()
	intsIn.Placeholder = "300, 7, 1099511627776"
	intsIn.Prompt = "ints: "
	intsIn.Width = 48

	return &inspectModel{inputs: []textinput.Model{bytesIn, intsIn}}
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab", "enter":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
			m.inputs[m.focusIdx].Focus()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Byteweave Inspector"))
	b.WriteString("\n\n")

	b.WriteString(m.inputs[inputBytes].View())
	b.WriteString("\n")
	b.WriteString(m.inputs[inputInts].View())
	b.WriteString("\n\n")

	src := []byte(m.inputs[inputBytes].Value())
	writeRow(&b, "hex", valueStyle.Render(hexcodec.EncodeToString(src, false)))
	writeRow(&b, "HEX", valueStyle.Render(hexcodec.EncodeToString(src, true)))
	writeRow(&b, "base64", valueStyle.Render(base64.EncodeToString(src, false)))
	writeRow(&b, "base64url", valueStyle.Render(base64.EncodeToString(src, true)))
	writeRow(&b, "varint", renderVarint(m.inputs[inputInts].Value()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab switch field • esc quit"))

	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

// renderVarint encodes the integer list and shows the result as hex,
// with the per-integer group lengths alongside.
func renderVarint(ints string) string {
	if strings.TrimSpace(ints) == "" {
		return helpStyle.Render("(no integers)")
	}

	src, err := parseInts(ints)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	need, _ := varint.EncodedLen(src)
	enc := make([]byte, need)
	if res := varint.Encode(enc, src); !res.OK() {
		return errorStyle.Render(res.Status.String())
	}

	lens := make([]string, 0, len(src)/8)
	for off := 0; off < len(enc); {
		_, n, _ := varint.Read(enc[off:])
		lens = append(lens, fmt.Sprintf("%d", n))
		off += n
	}

	return valueStyle.Render(hexcodec.EncodeToString(enc, false)) +
		helpStyle.Render(fmt.Sprintf("  (%s bytes)", strings.Join(lens, "+")))
}

// inspectCmd represents the inspect command.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Interactively inspect codec renderings of typed input",
	Long: `Inspect opens a terminal UI with two input fields, one for raw
text bytes and one for a comma-separated integer list, and renders the
hex, Base64, and varint encodings live as you type.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(newInspectModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
