package api

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgress_Counters(t *testing.T) {
	p := &Progress{}
	p.Update(0, 100)
	p.Add(40)
	p.Add(60)

	require.Equal(t, int64(100), p.Loaded())
	require.Equal(t, int64(100), p.Total())
	require.True(t, p.Complete())
	require.NoError(t, p.Err())
}

func TestProgress_TerminalError(t *testing.T) {
	p := &Progress{}
	p.Update(10, 100)

	failure := errors.New("connection reset")
	p.SetErr(failure)

	require.ErrorIs(t, p.Err(), failure)
	require.False(t, p.Complete())
}

func TestProgress_NilReceiverIsSafe(t *testing.T) {
	var p *Progress
	p.Update(1, 2)
	p.Add(3)
	p.SetErr(errors.New("x"))

	require.Equal(t, int64(0), p.Loaded())
	require.Equal(t, int64(0), p.Total())
	require.NoError(t, p.Err())
	require.False(t, p.Complete())
}

func TestProgressReader_CountsBytes(t *testing.T) {
	p := &Progress{}
	data := bytes.Repeat([]byte("a"), 1000)
	p.Update(0, int64(len(data)))

	r := ProgressReader(bytes.NewReader(data), p)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Len(t, out, 1000)
	require.Equal(t, int64(1000), p.Loaded())
	require.True(t, p.Complete())
}

func TestProgressReader_NilProgressReturnsReaderUnchanged(t *testing.T) {
	r := bytes.NewReader([]byte("x"))
	require.Equal(t, io.Reader(r), ProgressReader(r, nil))
}

func TestProgress_ConcurrentReadsDuringWrites(t *testing.T) {
	p := &Progress{}
	p.Update(0, 1000)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			p.Add(1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = p.Loaded()
			_ = p.Err()
		}
	}()
	wg.Wait()

	require.Equal(t, int64(1000), p.Loaded())
}
