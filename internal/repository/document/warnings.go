package document

import (
	"context"
	"fmt"
	"sync"

	"github.com/bagdasarian/team-voting/internal/domain"
)

// Warning - документ не удалось разобрать, он сброшен к значению по умолчанию
type Warning struct {
	Kind Kind
	Err  error
}

func (w Warning) Error() string {
	return fmt.Sprintf("%s document is corrupted or empty, initialized with defaults: %v", w.Kind, w.Err)
}

func (w Warning) Unwrap() []error {
	return []error{domain.ErrStorageCorrupt, w.Err}
}

// Warnings собирает предупреждения в рамках одного запроса
type Warnings struct {
	mu    sync.Mutex
	items []Warning
}

func (w *Warnings) Add(warning Warning) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = append(w.items, warning)
}

func (w *Warnings) Items() []Warning {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Warning(nil), w.items...)
}

type warningsKey struct{}

// WithWarnings прикрепляет к контексту новый сборщик предупреждений
func WithWarnings(ctx context.Context) (context.Context, *Warnings) {
	w := &Warnings{}
	return context.WithValue(ctx, warningsKey{}, w), w
}

func warningsFromContext(ctx context.Context) *Warnings {
	w, _ := ctx.Value(warningsKey{}).(*Warnings)
	return w
}
