package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// DeliveryError reports a failed send for a single message.
type DeliveryError struct {
	Message Message
	Err     error
}

func (e DeliveryError) Error() string {
	return fmt.Sprintf("notify order[%s] to[%s]: %v", e.Message.OrderID, e.Message.To, e.Err)
}

func (e DeliveryError) Unwrap() error {
	return e.Err
}

// Dispatcher sends messages in the background. A send never blocks or fails
// the caller, failures are logged and published on Errors.
type Dispatcher struct {
	sender  Sender
	timeout time.Duration
	logger  *slog.Logger

	errs chan DeliveryError
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewDispatcher(sender Sender, timeout time.Duration, logger *slog.Logger) (*Dispatcher, error) {
	if sender == nil {
		return nil, errors.New("sender is nil")
	}
	if timeout <= 0 {
		return nil, errors.New("timeout must be positive")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		sender:  sender,
		timeout: timeout,
		logger:  logger,
		errs:    make(chan DeliveryError, 64),
	}, nil
}

// Dispatch queues msg for sending and returns immediately.
func (d *Dispatcher) Dispatch(msg Message) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.report(DeliveryError{Message: msg, Err: errors.New("dispatcher is closed")})
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.sender.Send(ctx, msg); err != nil {
			d.report(DeliveryError{Message: msg, Err: err})
			return
		}

		d.logger.Debug("notification sent",
			"method", "Dispatcher.Dispatch",
			"order_id", msg.OrderID,
			"to", msg.To)
	}()
}

// Errors exposes failed sends. The buffer is bounded, failures beyond it are only logged.
func (d *Dispatcher) Errors() <-chan DeliveryError {
	return d.errs
}

// Watch calls fn for every failed send until ctx is done, then for the failures
// still buffered. It is meant to be the only reader of Errors.
func (d *Dispatcher) Watch(ctx context.Context, fn func(DeliveryError)) {
	for {
		select {
		case de := <-d.errs:
			fn(de)
		case <-ctx.Done():
			for {
				select {
				case de := <-d.errs:
					fn(de)
				default:
					return
				}
			}
		}
	}
}

// Close stops accepting messages and waits for in-flight sends or ctx expiry.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for notifications: %w", ctx.Err())
	}
}

func (d *Dispatcher) report(de DeliveryError) {
	d.logger.Error("notification failed",
		"method", "Dispatcher.Dispatch",
		"order_id", de.Message.OrderID,
		"to", de.Message.To,
		"error", de.Err)

	select {
	case d.errs <- de:
	default:
	}
}
