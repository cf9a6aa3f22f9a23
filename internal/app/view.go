package app

import (
	"context"
	"errors"
	"sync"

	"pawbuddy-client/internal/nav"
)

// ErrViewClosed: la vista se cerró mientras la llamada estaba en vuelo y el
// resultado se descartó.
var ErrViewClosed = errors.New("view closed")

// View es el alcance de una pantalla abierta. Los resultados de Load solo se
// entregan mientras la vista sigue abierta.
type View struct {
	dest nav.Destination

	once sync.Once
	done chan struct{}
}

// Open abre la vista de dest. Quien la abre la cierra.
func (a *App) Open(dest nav.Destination) *View {
	return &View{dest: dest, done: make(chan struct{})}
}

func (v *View) Destination() nav.Destination { return v.dest }

// Close es idempotente.
func (v *View) Close() {
	v.once.Do(func() { close(v.done) })
}

func (v *View) Closed() bool {
	select {
	case <-v.done:
		return true
	default:
		return false
	}
}

// Load corre fn en una goroutine aparte (I/O) y devuelve el resultado al
// llamador. Si la vista se cierra antes, devuelve ErrViewClosed sin esperar;
// la llamada no se cancela y su resultado se tira.
func Load[T any](ctx context.Context, v *View, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if v.Closed() {
		return zero, ErrViewClosed
	}

	type result struct {
		val T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		val, err := fn(ctx)
		ch <- result{val: val, err: err}
	}()

	select {
	case r := <-ch:
		if v.Closed() {
			return zero, ErrViewClosed
		}
		return r.val, r.err
	case <-v.done:
		return zero, ErrViewClosed
	}
}

// Run es Load para llamadas sin resultado (borrados, logout).
func Run(ctx context.Context, v *View, fn func(context.Context) error) error {
	_, err := Load(ctx, v, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
