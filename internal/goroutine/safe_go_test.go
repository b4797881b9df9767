package goroutine

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/logger"
)

func TestSafeGo_RecoversPanic(t *testing.T) {
	saved := logger.Log
	defer func() { logger.Log = saved }()

	var buf bytes.Buffer
	logger.Log = logrus.New()
	logger.Log.SetOutput(&buf)

	var wg sync.WaitGroup
	wg.Add(1)
	SafeGo("test", func() {
		defer wg.Done()
		panic("boom")
	})
	wg.Wait()

	assert.Eventually(t, func() bool {
		return bytes.Contains(buf.Bytes(), []byte("boom"))
	}, time.Second, 10*time.Millisecond)
}
