package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/abacus-io/abacus/internal/calc"
	"github.com/abacus-io/abacus/internal/format"
)

// operandLabels names the operands the way the operation does.
var operandLabels = map[calc.OpKind][]string{
	calc.OpAdd:      {"Input addend 1", "Input addend 2"},
	calc.OpSubtract: {"Input minuend", "Input subtrahend"},
	calc.OpMultiply: {"Input factor 1", "Input factor 2"},
	calc.OpDivide:   {"Input dividend", "Input divisor"},
}

// opTitles matches the main menu wording.
var opTitles = map[calc.OpKind]string{
	calc.OpAdd:      "Addition",
	calc.OpSubtract: "Subtraction",
	calc.OpMultiply: "Multiplication",
	calc.OpDivide:   "Division",
}

var triangleLabels = []string{
	"Angle 1 of triangle",
	"Angle 2 of triangle",
	"Angle 3 of triangle",
}

// Prompt collects a fixed sequence of validated numbers. Invalid text keeps
// the prompt on the same operand; the cancel token abandons the sequence.
type Prompt struct {
	op       calc.OpKind
	triangle bool
	labels   []string
	values   []float64
	input    textinput.Model
}

func newArithmeticPrompt(op calc.OpKind) *Prompt {
	return &Prompt{op: op, labels: operandLabels[op], input: newPromptInput()}
}

func newTrianglePrompt() *Prompt {
	return &Prompt{triangle: true, labels: triangleLabels, input: newPromptInput()}
}

func newPromptInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 40
	ti.Width = 24
	ti.Focus()
	return ti
}

// Submit parses the current text. done reports the sequence is complete;
// cancelled reports the user typed the cancel token. A parse error leaves
// the sequence where it is.
func (p *Prompt) Submit() (done bool, cancelled bool, err error) {
	v, cancelled, err := calc.ParseNumber(p.input.Value())
	if err != nil || cancelled {
		p.input.SetValue("")
		return false, cancelled, err
	}
	p.values = append(p.values, v)
	p.input.SetValue("")
	return len(p.values) == len(p.labels), false, nil
}

// Values returns the collected operands.
func (p *Prompt) Values() []float64 { return p.values }

func (p *Prompt) title() string {
	if p.triangle {
		return "Draw Triangle"
	}
	return opTitles[p.op]
}

// View renders the collected operands and the active input line.
func (p *Prompt) View() string {
	var sb strings.Builder
	sb.WriteString(sectionHeaderStyle.Render(p.title()))
	sb.WriteString("\n\n")
	for i, v := range p.values {
		sb.WriteString(collectedStyle.Render(p.labels[i] + ": " + format.Decimal(v)))
		sb.WriteString("\n")
	}
	sb.WriteString(promptLabelStyle.Render(p.labels[len(p.values)] + ": "))
	sb.WriteString(p.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(hintStyle.Render("Type 'x' to cancel input"))
	return sb.String()
}
