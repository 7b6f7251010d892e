package trace

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_String_FixedWidthPrefix(t *testing.T) {
	tests := []struct {
		clock float64
		want  string
	}{
		{0, "[T=    0.00] hello"},
		{5.126, "[T=    5.13] hello"},
		{12345.5, "[T=12345.50] hello"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Record{Clock: tt.clock, Message: "hello"}.String())
	}
}

func TestEventLog_RecordAndFilter(t *testing.T) {
	l := NewEventLog()
	l.Recordf(0, 1, "Truck %d starts loading (loaders busy: %d)", 1, 1)
	l.Recordf(0, 2, "Truck %d waits", 2)
	l.Recordf(5, 1, "Truck %d finishes loading", 1)

	require.Len(t, l.Records, 3)
	assert.Equal(t, "[T=    0.00] Truck 1 starts loading (loaders busy: 1)", l.Lines()[0])

	truck1 := l.ForTruck(1)
	require.Len(t, truck1, 2)
	assert.Equal(t, 5.0, truck1[1].Clock)
	assert.Empty(t, l.ForTruck(3))
}

func TestEventLog_WriteTo(t *testing.T) {
	l := NewEventLog()
	l.Recordf(1.5, 1, "a")
	l.Recordf(2, 2, "b")

	var buf bytes.Buffer
	n, err := l.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "[T=    1.50] a\n[T=    2.00] b\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}
