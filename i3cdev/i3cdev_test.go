package i3cdev

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/Alia5/i3ctransfer/xfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrivXferLayout(t *testing.T) {
	assert.Equal(t, 16, PrivXferSize)
	assert.Equal(t, uintptr(0), unsafe.Offsetof(PrivXfer{}.Data))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(PrivXfer{}.Len))
	assert.Equal(t, uintptr(10), unsafe.Offsetof(PrivXfer{}.RnW))
}

func TestPrivXferRequest(t *testing.T) {
	type testCase struct {
		name        string
		n           int
		expected    uint
		expectedErr error
	}

	cases := []testCase{
		{name: "one message", n: 1, expected: 0xC010071E},
		{name: "two messages", n: 2, expected: 0xC020071E},
		{name: "largest batch", n: MaxBatch, expected: 0xFFF0071E},
		{name: "size field overflow", n: MaxBatch + 1, expectedErr: ErrBatchTooLarge},
		{name: "empty", n: 0, expectedErr: xfer.ErrEmptyBatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := PrivXferRequest(tc.n)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, req)
		})
	}
}

func TestDescriptors(t *testing.T) {
	w := &xfer.Transfer{Direction: xfer.Write, Data: []byte{0x10, 0x33}}
	r := &xfer.Transfer{Direction: xfer.Read, Data: make([]byte, 4)}
	empty := &xfer.Transfer{Direction: xfer.Write, Data: []byte{}}

	var pinner runtime.Pinner
	defer pinner.Unpin()

	descs, err := descriptors([]*xfer.Transfer{w, r, empty}, &pinner)
	require.NoError(t, err)
	require.Len(t, descs, 3)

	assert.Equal(t, uint16(2), descs[0].Len)
	assert.Equal(t, uint8(0), descs[0].RnW)
	assert.Equal(t, uint64(uintptr(unsafe.Pointer(&w.Data[0]))), descs[0].Data)

	assert.Equal(t, uint16(4), descs[1].Len)
	assert.Equal(t, uint8(1), descs[1].RnW)
	assert.Equal(t, uint64(uintptr(unsafe.Pointer(&r.Data[0]))), descs[1].Data)

	assert.Equal(t, PrivXfer{}, descs[2])
}

func TestDescriptorsRejectsOversized(t *testing.T) {
	big := &xfer.Transfer{Direction: xfer.Read, Data: make([]byte, xfer.MaxReadLen+1)}
	var pinner runtime.Pinner
	defer pinner.Unpin()

	_, err := descriptors([]*xfer.Transfer{big}, &pinner)
	assert.ErrorIs(t, err, xfer.ErrValueRange)
}

//go:noinline
func growStack(depth int) int {
	var pad [256]byte
	pad[depth%len(pad)] = byte(depth)
	if depth == 0 {
		return int(pad[0])
	}
	return growStack(depth-1) + int(pad[depth%len(pad)])
}

func TestDescriptorsSurviveStackGrowth(t *testing.T) {
	r := &xfer.Transfer{Direction: xfer.Read, Data: make([]byte, 4)}
	w := &xfer.Transfer{Direction: xfer.Write, Data: []byte{0x10, 0x33}}

	var pinner runtime.Pinner
	defer pinner.Unpin()

	descs, err := descriptors([]*xfer.Transfer{r, w}, &pinner)
	require.NoError(t, err)

	_ = growStack(2000)

	assert.Equal(t, uint64(uintptr(unsafe.Pointer(&r.Data[0]))), descs[0].Data)
	assert.Equal(t, uint64(uintptr(unsafe.Pointer(&w.Data[0]))), descs[1].Data)
}
