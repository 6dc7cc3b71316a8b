package usecase

import "context"

func (uc *implUseCase) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.alerts.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		uc.l.Warnf(ctx, "internal.fanout.usecase.Shutdown: alerts still pending: %v", ctx.Err())
		return ctx.Err()
	}
}
