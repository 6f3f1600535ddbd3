package limiter

// Limiter bounds concurrent split work with an in-process semaphore. Each
// request reserves a slot for the duration of its processing; when all slots
// are taken the caller should report back-pressure instead of queueing.
type Limiter struct {
    sem chan struct{}
}

func New(maxInflight int) *Limiter {
    if maxInflight <= 0 { maxInflight = 4 }
    return &Limiter{sem: make(chan struct{}, maxInflight)}
}

// Allow tries to reserve a slot. Returns a release function and true if a slot
// was free; otherwise nil-op release and false.
func (l *Limiter) Allow() (func(), bool) {
    select {
    case l.sem <- struct{}{}:
        return func() { <-l.sem }, true
    default:
        return func() {}, false
    }
}

// Inflight reports the number of reserved slots.
func (l *Limiter) Inflight() int { return len(l.sem) }
