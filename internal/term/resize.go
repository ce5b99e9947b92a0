package term

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/florentinl/giga/internal/command"
)

// ResizeSource turns SIGWINCH into Resize intents on the shared render
// channel. Go delivers signals to a runtime-managed channel rather than
// running handler code in async-signal-unsafe context, so the allocation
// and back-end-call restrictions the reference design places on its C
// signal handler don't apply here — this goroutine may do both freely.
// The non-blocking send is kept anyway, matching the spec's behavior for
// a full channel: a pending resize is redundant once a newer one lands.
type ResizeSource struct {
	sigCh chan os.Signal
	stop  chan struct{}
}

// NewResizeSource registers for SIGWINCH. Call Run to start forwarding.
func NewResizeSource() *ResizeSource {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	return &ResizeSource{sigCh: sigCh, stop: make(chan struct{})}
}

// Run blocks, posting a Resize intent on ch for every SIGWINCH until
// Stop is called. Intended to run in its own goroutine.
func (r *ResizeSource) Run(ch chan<- command.RefreshIntent) {
	for {
		select {
		case <-r.sigCh:
			select {
			case ch <- command.RefreshIntent{Kind: command.Resize}:
			default:
			}
		case <-r.stop:
			return
		}
	}
}

// Stop ends Run and stops signal delivery.
func (r *ResizeSource) Stop() {
	signal.Stop(r.sigCh)
	close(r.stop)
}
