package transport

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// mailKey names one directed, tagged channel between two ranks of a local
// world.
type mailKey struct {
	from, to, tag int
}

// world is the shared state every rank's Local transport in one
// collective points back into: the mailboxes point-to-point messages flow
// through, and the barrier AllreduceOr synchronizes on.
type world struct {
	size int

	mailMu   sync.Mutex
	mailbox  map[mailKey]chan []byte

	barrierMu  sync.Mutex
	votes      []bool
	arrived    int
	result     bool
	generation chan struct{}
}

func newWorld(size int) *world {
	return &world{
		size:       size,
		mailbox:    make(map[mailKey]chan []byte),
		votes:      make([]bool, size),
		generation: make(chan struct{}),
	}
}

func (w *world) channel(key mailKey) chan []byte {
	w.mailMu.Lock()
	defer w.mailMu.Unlock()
	ch, ok := w.mailbox[key]
	if !ok {
		ch = make(chan []byte, 1)
		w.mailbox[key] = ch
	}
	return ch
}

// Local is an in-process Transport: one rank's view of a world shared by
// NewLocalWorld's other ranks. Isend/Irecv enqueue goroutines into an
// errgroup.Group (spec §5's "post without suspension"); Waitall joins
// them, exactly the fan-out/join errgroup gives for free instead of a
// hand-rolled WaitGroup-plus-error-channel.
type Local struct {
	w    *world
	rank int
	eg   errgroup.Group
}

// NewLocalWorld builds size ranks that can address each other by index
// 0..size-1, sharing one set of mailboxes and one allreduce barrier.
func NewLocalWorld(size int) []*Local {
	w := newWorld(size)
	out := make([]*Local, size)
	for r := 0; r < size; r++ {
		out[r] = &Local{w: w, rank: r}
	}
	return out
}

func (l *Local) Rank() int { return l.rank }
func (l *Local) Size() int { return l.w.size }

func (l *Local) Isend(to, tag int, payload []byte) {
	buf := append([]byte(nil), payload...)
	ch := l.w.channel(mailKey{from: l.rank, to: to, tag: tag})
	l.eg.Go(func() error {
		ch <- buf
		return nil
	})
}

func (l *Local) Irecv(from, tag int, dst []byte) {
	ch := l.w.channel(mailKey{from: from, to: l.rank, tag: tag})
	l.eg.Go(func() error {
		buf := <-ch
		if len(buf) != len(dst) {
			return fmt.Errorf("%w: got %d want %d", ErrRecvSizeMismatch, len(buf), len(dst))
		}
		copy(dst, buf)
		return nil
	})
}

func (l *Local) Waitall() error {
	err := l.eg.Wait()
	l.eg = errgroup.Group{}
	return err
}

// AllreduceOr blocks every rank of the world until all have contributed a
// vote, then releases them all with the same OR result. Reusable across
// repeated calls: each barrier hands the next caller a fresh generation
// channel before releasing the previous one.
func (l *Local) AllreduceOr(local bool) (bool, error) {
	w := l.w
	w.barrierMu.Lock()
	w.votes[l.rank] = local
	w.arrived++
	if w.arrived < w.size {
		gen := w.generation
		w.barrierMu.Unlock()
		<-gen
		w.barrierMu.Lock()
		result := w.result
		w.barrierMu.Unlock()
		return result, nil
	}

	result := false
	for _, v := range w.votes {
		result = result || v
	}
	w.result = result
	w.arrived = 0
	w.votes = make([]bool, w.size)
	released := w.generation
	w.generation = make(chan struct{})
	w.barrierMu.Unlock()
	close(released)
	return result, nil
}
