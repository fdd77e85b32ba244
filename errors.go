package loanengine

import (
	"errors"
)

var (
	ErrInvalidInstallmentCount = errors.New("installment count must be positive")
	ErrNegativeFee             = errors.New("fee must not be negative")
)
