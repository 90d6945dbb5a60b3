package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxLineLength Самая длинная строка ввода, которую разбирает сессия
const maxLineLength = 4096

var (
	ErrLineTooLong = errors.New("input line too long")
)

// Prompter - построчный диалог с игроком
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReaderSize(in, maxLineLength),
		out: out,
	}
}

// Ask печатает приглашение и читает одну строку ввода.
// Конец ввода возвращается как io.EOF, слишком длинная строка - как ErrLineTooLong
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(p.out, prompt)
	return p.readLine()
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadSlice('\n')
	switch {
	case err == nil:
		return strings.TrimRight(string(line), "\r\n"), nil
	case errors.Is(err, bufio.ErrBufferFull):
		// Хвост строки отбрасывается целиком, следующий Ask начнет с новой строки
		for errors.Is(err, bufio.ErrBufferFull) {
			_, err = p.in.ReadSlice('\n')
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return "", ErrLineTooLong
	case errors.Is(err, io.EOF):
		// Последняя строка без перевода строки
		if len(line) > 0 {
			return strings.TrimRight(string(line), "\r"), nil
		}
		return "", io.EOF
	default:
		return "", err
	}
}

func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// askUntilValid переспрашивает, пока parse не примет ввод.
// На каждую ошибку разбора печатается hint(err)
func askUntilValid[T any](
	ctx context.Context,
	p *Prompter,
	prompt string,
	parse func(string) (T, error),
	hint func(error) string,
) (T, error) {
	for {
		line, err := p.Ask(ctx, prompt)
		if err != nil && !errors.Is(err, ErrLineTooLong) {
			var zero T
			return zero, err
		}

		var v T
		if err == nil {
			v, err = parse(line)
			if err == nil {
				return v, nil
			}
		}
		p.Println(hint(err))
	}
}

// isStop - ввод закончился или сессию отменили
func isStop(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
