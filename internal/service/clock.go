package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Clock: источник текущего времени. В тестах подменяется фиксированным.
type Clock interface {
	Now() time.Time
}

// SystemClock возвращает реальное время в UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// CodeGenerator выдаёт одноразовые коды.
type CodeGenerator interface {
	Generate() (string, error)
}

// RandomCodeGenerator выдаёт равномерно распределённый 6-значный код из crypto/rand.
type RandomCodeGenerator struct{}

var codeSpace = big.NewInt(1_000_000)

func (RandomCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("генерация кода: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
