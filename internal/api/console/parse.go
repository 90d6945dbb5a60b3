package console

import (
	"casino_console/internal/model"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxDeposit Верхняя граница депозита: вместе с ограничением выигрыша раунда
// в конфигурации баланс не подходит к переполнению int
const MaxDeposit = 1_000_000_000

var (
	ErrNotANumber          = errors.New("not a whole number")
	ErrOutOfRange          = errors.New("number out of range")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnknownFeedback     = errors.New("unknown feedback")
)

// parseInt принимает только десятичные цифры, без знака
func parseInt(input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, ErrNotANumber
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		// Только цифры, значит Atoi упал на переполнении
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, s)
	}
	return n, nil
}

func parseBounded(input string, lo, hi int) (int, error) {
	n, err := parseInt(input)
	if err != nil {
		return 0, err
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, n, lo, hi)
	}
	return n, nil
}

// ParseDeposit - сумма депозита в [1, MaxDeposit]
func ParseDeposit(input string) (int, error) {
	return parseBounded(input, 1, MaxDeposit)
}

// ParseLines - количество линий в [1, maxLines]
func ParseLines(input string, maxLines int) (int, error) {
	return parseBounded(input, 1, maxLines)
}

// ParseBet - ставка на линию в [minBet, maxBet]
func ParseBet(input string, minBet, maxBet int) (int, error) {
	return parseBounded(input, minBet, maxBet)
}

// ParseGuess - догадка игрока в [1, upper]
func ParseGuess(input string, upper int) (int, error) {
	return parseBounded(input, 1, upper)
}

// ParseFeedback - ответ h/l/c без учета регистра
func ParseFeedback(input string) (model.Feedback, error) {
	fb := model.Feedback(strings.ToLower(strings.TrimSpace(input)))
	switch fb {
	case model.FeedbackHigh, model.FeedbackLow, model.FeedbackCorrect:
		return fb, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFeedback, input)
}

// CheckStake - общая ставка bet*lines, если она покрывается балансом
func CheckStake(bet, lines, balance int) (int, error) {
	stake := bet * lines
	if stake > balance {
		return 0, fmt.Errorf("%w: stake %d, balance %d", ErrInsufficientBalance, stake, balance)
	}
	return stake, nil
}

// ApplyNet Баланс после раунда. Выход за пределы int насыщается, а не заворачивается
func ApplyNet(balance, net int) int {
	switch {
	case net > 0 && balance > math.MaxInt-net:
		return math.MaxInt
	case net < 0 && balance < math.MinInt-net:
		return math.MinInt
	}
	return balance + net
}
