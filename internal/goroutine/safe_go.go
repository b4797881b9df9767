package goroutine

import (
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/logger"
)

// Recover логирует panic горутины вместе со стеком. Вызывается через defer.
func Recover(where string) {
	if r := recover(); r != nil {
		logger.Get().WithFields(logrus.Fields{
			"where": where,
			"panic": r,
			"stack": string(debug.Stack()),
		}).Error("panic в горутине")
	}
}

// SafeGo запускает горутину с обработкой panic
func SafeGo(where string, fn func()) {
	go func() {
		defer Recover(where)
		fn()
	}()
}
