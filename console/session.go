package console

import (
	"bufio"
	"context"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"go-currency-converter/domain"
	"go-currency-converter/exchange"
)

// quit the only answer to the continue prompt that ends a session
const quit = "n"

// Session an interactive conversion loop over a line-oriented input and an output
type Session struct {
	service exchange.Service
	in      *bufio.Reader
	out     io.Writer
}

// NewSession constructs a Session reading answers from in and writing prompts to out
func NewSession(s exchange.Service, in io.Reader, out io.Writer) *Session {
	return &Session{
		service: s,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run converts amounts until the user answers "n" to the continue prompt
// or the input ends there. Any invalid selection or malformed number aborts
// the session with an error and nothing is printed for that conversion.
func (s *Session) Run(ctx context.Context) error {
	for more := true; more; {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.convertOnce(ctx); err != nil {
			return err
		}

		var err error
		more, err = s.askToContinue()
		if err != nil {
			return err
		}
	}
	return nil
}

// convertOnce walks source, target and amount prompts then prints the summary
func (s *Session) convertOnce(ctx context.Context) error {
	printMenu(s.out, s.service.Currencies(ctx))

	source, err := s.selectCurrency(ctx, "Source")
	if err != nil {
		return err
	}
	target, err := s.selectCurrency(ctx, "Target")
	if err != nil {
		return err
	}

	printf(s.out, "Amount to Convert from %s to %s: ", source.Name, target.Name)
	amount, err := s.readAmount()
	if err != nil {
		return err
	}

	request := domain.Request{Source: source.index, Target: target.index, Amount: amount}
	result, err := s.service.Convert(ctx, request)
	if err != nil {
		return err
	}

	printSummary(s.out, source.Currency, target.Currency, amount, result)
	return nil
}

type selection struct {
	domain.Currency
	index int
}

func (s *Session) selectCurrency(ctx context.Context, role string) (selection, error) {
	printf(s.out, "Please select the %s Currency by pressing the button\n", role)
	printf(s.out, "%s Currency Selection: ", role)

	field, err := s.readField()
	if err != nil {
		return selection{}, err
	}
	index, err := strconv.Atoi(field)
	if err != nil {
		return selection{}, errors.Wrapf(domain.ErrMalformedNumericInput, "%s selection %q", strings.ToLower(role), field)
	}

	currency, err := s.service.Currency(ctx, index)
	if err != nil {
		return selection{}, errors.Wrapf(err, "%s selection", strings.ToLower(role))
	}
	return selection{Currency: currency, index: index}, nil
}

func (s *Session) readAmount() (domain.Amount, error) {
	field, err := s.readField()
	if err != nil {
		return 0, err
	}
	amount, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0, errors.Wrapf(domain.ErrMalformedNumericInput, "amount %q", field)
	}
	return domain.Amount(amount), nil
}

// askToContinue reports whether another conversion was asked for.
// End of input counts as a no.
func (s *Session) askToContinue() (bool, error) {
	printf(s.out, "Would you like to do more conversions? press 'y' for yes 'n' for no\n")

	answer, err := s.readLine()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if answer == quit {
		printf(s.out, "Bye\n")
		return false, nil
	}
	return true, nil
}

// readField returns the next non-blank line with surrounding whitespace removed
func (s *Session) readField() (string, error) {
	for {
		line, err := s.readLine()
		if err == io.EOF {
			return "", errors.Wrap(io.ErrUnexpectedEOF, "waiting for a number")
		}
		if err != nil {
			return "", err
		}
		if field := strings.TrimSpace(line); field != "" {
			return field, nil
		}
	}
}

// readLine consumes one whole line and returns it without its terminator.
// A final line without a newline is still returned; io.EOF only once nothing is left.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		if err == io.EOF {
			return "", err
		}
		return "", errors.Wrap(err, "reading input")
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}
