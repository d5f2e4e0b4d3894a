package poller

import (
	"context"
	"log"
	"sync"
	"time"

	"StorefrontAPI/internal/model"
)

const (
	// DefaultInterval matches the confirmation page's polling cadence.
	DefaultInterval = 3500 * time.Millisecond
	// DefaultRedirectDelay lets the user read the approval before being
	// pointed back at the product listing.
	DefaultRedirectDelay = 2 * time.Second

	productListingPath = "/products"
)

type OrderFetcher interface {
	Order(ctx context.Context, token, id string) (model.Order, error)
}

type CartClearer interface {
	Clear(sessionID string)
}

// State is where a watch stands: checking until the first successful fetch,
// then pending until the order reaches a terminal status.
type State string

const (
	StateChecking State = "checking"
	StatePending  State = "pending"
	StateApproved State = "approved"
	StateRejected State = "rejected"
)

// Snapshot is the displayable view of a watch. A failed fetch leaves the
// previous snapshot in place rather than surfacing an error.
type Snapshot struct {
	State      State        `json:"state"`
	Order      *model.Order `json:"order,omitempty"`
	RedirectTo string       `json:"redirect_to,omitempty"`
}

// Watcher runs payment-confirmation watches. Each watch is an explicit
// cancellable task: it fetches the order immediately, then on a fixed
// interval, until the status is terminal or the watch is torn down. An
// approved order clears the session's cart and, after a short delay, tells
// the client to navigate back to the listing.
type Watcher struct {
	orders        OrderFetcher
	carts         CartClearer
	interval      time.Duration
	redirectDelay time.Duration

	mu      sync.Mutex
	watches map[string]*Watch
}

// NewWatcher builds a watcher; zero durations select the defaults.
func NewWatcher(orders OrderFetcher, carts CartClearer, interval, redirectDelay time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if redirectDelay <= 0 {
		redirectDelay = DefaultRedirectDelay
	}
	return &Watcher{
		orders:        orders,
		carts:         carts,
		interval:      interval,
		redirectDelay: redirectDelay,
		watches:       make(map[string]*Watch),
	}
}

func watchKey(sessionID, orderID string) string {
	return sessionID + "|" + orderID
}

// Start begins watching the order for the session, or returns the watch
// already running for it. The watch dies with ctx even if never cancelled
// explicitly; no timer outlives its owner.
func (w *Watcher) Start(ctx context.Context, sess *model.Session, orderID string) *Watch {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := watchKey(sess.ID, orderID)
	if wt, ok := w.watches[key]; ok {
		return wt
	}

	wctx, cancel := context.WithCancel(ctx)
	wt := &Watch{
		orderID: orderID,
		cancel:  cancel,
		done:    make(chan struct{}),
		snap:    Snapshot{State: StateChecking},
	}
	w.watches[key] = wt
	go w.run(wctx, wt, sess)
	return wt
}

// Get returns the running watch, if any.
func (w *Watcher) Get(sessionID, orderID string) (*Watch, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	wt, ok := w.watches[watchKey(sessionID, orderID)]
	return wt, ok
}

// Cancel tears the watch down and drops it from the registry. Cancelling an
// unknown watch is a no-op.
func (w *Watcher) Cancel(sessionID, orderID string) {
	w.mu.Lock()
	wt, ok := w.watches[watchKey(sessionID, orderID)]
	if ok {
		delete(w.watches, watchKey(sessionID, orderID))
	}
	w.mu.Unlock()
	if ok {
		wt.stop()
	}
}

func (w *Watcher) run(ctx context.Context, wt *Watch, sess *model.Session) {
	defer close(wt.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if terminal := w.check(ctx, wt, sess); terminal {
			return
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

// check fetches the order once. A failed fetch keeps the last-known snapshot
// and the loop continues; a transient hiccup during payment confirmation
// must not block the user.
func (w *Watcher) check(ctx context.Context, wt *Watch, sess *model.Session) bool {
	order, err := w.orders.Order(ctx, sess.Token, wt.orderID)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("order %s: status fetch failed: %v", wt.orderID, err)
		}
		return false
	}

	switch order.Status {
	case model.OrderApproved:
		w.carts.Clear(sess.ID)
		wt.setApproved(order, w.redirectDelay)
		return true
	case model.OrderRejected:
		wt.set(StateRejected, order)
		return true
	default:
		wt.set(StatePending, order)
		return false
	}
}

// Watch is a handle on one confirmation task.
type Watch struct {
	orderID string
	cancel  context.CancelFunc
	done    chan struct{}

	mu            sync.Mutex
	snap          Snapshot
	redirectTimer *time.Timer
}

func (wt *Watch) Snapshot() Snapshot {
	wt.mu.Lock()
	defer wt.mu.Unlock()
	return wt.snap
}

// Done closes when the polling loop has exited.
func (wt *Watch) Done() <-chan struct{} {
	return wt.done
}

func (wt *Watch) stop() {
	wt.cancel()
	wt.mu.Lock()
	if wt.redirectTimer != nil {
		wt.redirectTimer.Stop()
	}
	wt.mu.Unlock()
}

func (wt *Watch) set(state State, order model.Order) {
	wt.mu.Lock()
	defer wt.mu.Unlock()
	o := order
	wt.snap = Snapshot{State: state, Order: &o}
}

func (wt *Watch) setApproved(order model.Order, delay time.Duration) {
	wt.mu.Lock()
	defer wt.mu.Unlock()
	o := order
	wt.snap = Snapshot{State: StateApproved, Order: &o}
	wt.redirectTimer = time.AfterFunc(delay, func() {
		wt.mu.Lock()
		wt.snap.RedirectTo = productListingPath
		wt.mu.Unlock()
	})
}
