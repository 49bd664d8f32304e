// Package terminal implements the confirmation and text prompts over a
// line-oriented reader and writer.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

var (
	_ model.Confirmer = (*Prompter)(nil)
	_ model.Prompter  = (*Prompter)(nil)
)

// Prompter writes questions to out and reads one answer line per question from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter. in is shared with whoever else reads lines
// from the same terminal, so callers should pass the same *bufio.Reader.
func NewPrompter(in *bufio.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Confirm asks a yes/no question. Only "y" or "yes" count as agreement.
func (p *Prompter) Confirm(message string) bool {
	answer, ok := p.ask(message + " [y/N] ")
	if !ok {
		return false
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// PromptText asks for free text. ok is false when the input ended before an answer.
func (p *Prompter) PromptText(message string) (string, bool) {
	return p.ask(message + " ")
}

// ReadLine reads the next line without printing a prompt.
func (p *Prompter) ReadLine() (string, bool) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", false
	}

	return strings.TrimSpace(line), true
}

func (p *Prompter) ask(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	return p.ReadLine()
}
