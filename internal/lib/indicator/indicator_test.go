package indicator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Spinner_Lifecycle(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewSpinner(buf)

	s.Tick()
	s.Stop()
	assert.Equal(t, 0, buf.Len())

	s.Start("probing")
	s.Tick()
	s.Tick()
	s.Stop()

	assert.Nil(t, s.bar)
}

func Test_Log_Counts(t *testing.T) {
	l := NewLog()

	l.Start("probing")
	l.Tick()
	l.Tick()
	l.Tick()
	l.Stop()

	assert.Equal(t, 3, l.count)
	assert.Equal(t, "probing", l.label)
}
