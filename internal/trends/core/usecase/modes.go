package usecase

import (
	"errors"
	"fmt"

	"event-trends-service/internal/trends/core/domain"
)

var (
	ErrUnknownDisplayMode = errors.New("unknown shown_as value")
	ErrUnknownMathMode    = errors.New("unknown math value")
)

func parseDisplayMode(raw string) (domain.DisplayMode, error) {
	switch raw {
	case "", string(domain.ShownAsVolume):
		return domain.ShownAsVolume, nil
	case string(domain.ShownAsStickiness):
		return domain.ShownAsStickiness, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDisplayMode, raw)
	}
}

func parseMathMode(raw string) (domain.MathMode, error) {
	switch raw {
	case "", string(domain.MathTotal):
		return domain.MathTotal, nil
	case string(domain.MathDAU):
		return domain.MathDAU, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMathMode, raw)
	}
}
