package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt обрабатывает ввод-вывод консольных меню
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *Prompt) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Prompt) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// Header печатает заголовок раздела
func (p *Prompt) Header(title string) {
	line := strings.Repeat("=", len(title)+8)
	fmt.Fprintf(p.out, "\n%s\n=== %s ===\n%s\n", line, title, line)
}

// Line запрашивает строку
func (p *Prompt) Line(label string) string {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// YesNo запрашивает подтверждение, повторяет до корректного ответа
func (p *Prompt) YesNo(label string) bool {
	for {
		answer := strings.ToLower(p.Line(label + " (y/n)"))
		switch answer {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		p.Println("Invalid input. Please enter 'y' or 'n'.")
	}
}

// Int запрашивает целое число
func (p *Prompt) Int(label string) (int, bool) {
	value, err := strconv.Atoi(p.Line(label))
	if err != nil {
		return 0, false
	}
	return value, true
}

// Choice печатает нумерованный список и возвращает индекс выбранного
// пункта (с нуля)
func (p *Prompt) Choice(header string, items []string) int {
	for {
		if header != "" {
			p.Println()
			p.Println(header)
		}
		for i, item := range items {
			p.Printf("%d. %s\n", i+1, item)
		}

		choice, ok := p.Int(fmt.Sprintf("Select an option (1-%d)", len(items)))
		if ok && choice >= 1 && choice <= len(items) {
			return choice - 1
		}

		p.Printf("Invalid selection. Please enter a number between 1 and %d.\n", len(items))
	}
}
