package transport

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalSendRecvRoundTrip(t *testing.T) {
	ranks := NewLocalWorld(2)
	var wg sync.WaitGroup
	wg.Add(2)

	var recvErr error
	dst := make([]byte, 5)
	go func() {
		defer wg.Done()
		ranks[1].Irecv(0, 7, dst)
		recvErr = ranks[1].Waitall()
	}()

	var sendErr error
	go func() {
		defer wg.Done()
		ranks[0].Isend(1, 7, []byte("hello"))
		sendErr = ranks[0].Waitall()
	}()

	wg.Wait()
	require.NoError(t, sendErr)
	require.NoError(t, recvErr)
	require.Equal(t, "hello", string(dst))
}

func TestLocalRecvSizeMismatch(t *testing.T) {
	ranks := NewLocalWorld(2)
	var wg sync.WaitGroup
	wg.Add(2)

	var recvErr error
	dst := make([]byte, 3)
	go func() {
		defer wg.Done()
		ranks[1].Irecv(0, 1, dst)
		recvErr = ranks[1].Waitall()
	}()

	go func() {
		defer wg.Done()
		ranks[0].Isend(1, 1, []byte("hello"))
		_ = ranks[0].Waitall()
	}()

	wg.Wait()
	require.ErrorIs(t, recvErr, ErrRecvSizeMismatch)
}

func TestLocalAllreduceOr(t *testing.T) {
	ranks := NewLocalWorld(4)
	votes := []bool{false, false, true, false}
	results := make([]bool, 4)

	var wg sync.WaitGroup
	wg.Add(4)
	for i := 0; i < 4; i++ {
		i := i
		go func() {
			defer wg.Done()
			r, err := ranks[i].AllreduceOr(votes[i])
			require.NoError(t, err)
			results[i] = r
		}()
	}
	wg.Wait()

	for _, r := range results {
		require.True(t, r)
	}
}

func TestLocalAllreduceOrAllFalse(t *testing.T) {
	ranks := NewLocalWorld(3)
	results := make([]bool, 3)

	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		i := i
		go func() {
			defer wg.Done()
			r, _ := ranks[i].AllreduceOr(false)
			results[i] = r
		}()
	}
	wg.Wait()

	for _, r := range results {
		require.False(t, r)
	}
}
