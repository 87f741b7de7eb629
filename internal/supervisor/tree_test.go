// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/curriculum/internal/logging"
)

var _ suture.Service = (*mockService)(nil)

func testLogger() *slog.Logger {
	return slog.New(logging.NewSlogHandler(logging.NewTestLogger(io.Discard)))
}

func TestSupervisorTreeConstruction(t *testing.T) {
	t.Run("creates hierarchical supervisor tree", func(t *testing.T) {
		tree, err := NewSupervisorTree(testLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  10 * time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.Root() == nil {
			t.Error("root supervisor should not be nil")
		}
	})

	t.Run("applies default values for zero config", func(t *testing.T) {
		tree, err := NewSupervisorTree(testLogger(), TreeConfig{})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.config != DefaultTreeConfig() {
			t.Errorf("config = %+v, want defaults %+v", tree.config, DefaultTreeConfig())
		}
	})
}

func TestSupervisorTreeLifecycle(t *testing.T) {
	t.Run("tree starts and stops gracefully", func(t *testing.T) {
		tree, err := NewSupervisorTree(testLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   100 * time.Millisecond,
			ShutdownTimeout:  time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}

		tree.AddContentService(newMockService("mock-content"))
		tree.AddAPIService(newMockService("mock-api"))

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		errCh := make(chan error, 1)
		go func() {
			errCh <- tree.Serve(ctx)
		}()

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("tree did not shut down in time")
		}
	})

	t.Run("ServeBackground returns channel", func(t *testing.T) {
		tree, _ := NewSupervisorTree(testLogger(), TreeConfig{ShutdownTimeout: time.Second})

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		select {
		case err := <-tree.ServeBackground(ctx):
			if err != nil && !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(time.Second):
			t.Error("did not receive from error channel")
		}
	})
}

func TestSupervisorTreeWait(t *testing.T) {
	t.Run("returns after shutdown", func(t *testing.T) {
		tree, _ := NewSupervisorTree(testLogger(), TreeConfig{ShutdownTimeout: time.Second})
		tree.AddAPIService(newMockService("api-service"))

		ctx, cancel := context.WithCancel(context.Background())
		errCh := tree.ServeBackground(ctx)
		time.Sleep(50 * time.Millisecond)
		cancel()

		done := make(chan error, 1)
		go func() { done <- tree.Wait(ctx, errCh) }()

		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Wait() = %v, want nil after cancellation", err)
			}
		case <-time.After(3 * time.Second):
			t.Fatal("Wait() still blocked after shutdown")
		}
	})

	t.Run("reports supervisor error", func(t *testing.T) {
		tree, _ := NewSupervisorTree(testLogger(), TreeConfig{ShutdownTimeout: time.Second})

		errCh := make(chan error, 1)
		errCh <- errors.New("root failed")
		if err := tree.Wait(context.Background(), errCh); err == nil || err.Error() != "root failed" {
			t.Errorf("Wait() = %v, want root failed", err)
		}
	})

	t.Run("treats canceled as clean stop", func(t *testing.T) {
		tree, _ := NewSupervisorTree(testLogger(), TreeConfig{ShutdownTimeout: time.Second})

		errCh := make(chan error, 1)
		errCh <- context.Canceled
		if err := tree.Wait(context.Background(), errCh); err != nil {
			t.Errorf("Wait() = %v, want nil", err)
		}
	})
}

func TestSupervisorTreeServiceManagement(t *testing.T) {
	tree, _ := NewSupervisorTree(testLogger(), TreeConfig{ShutdownTimeout: time.Second})

	contentSvc := newMockService("content-service")
	apiSvc := newMockService("api-service")
	tree.AddContentService(contentSvc)
	tree.AddAPIService(apiSvc)

	removable := newMockService("removable")
	token := tree.AddContentService(removable)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	time.Sleep(100 * time.Millisecond)
	if contentSvc.StartCount() < 1 {
		t.Error("content service was not started")
	}
	if apiSvc.StartCount() < 1 {
		t.Error("api service was not started")
	}
	if err := tree.RemoveContentService(token); err != nil {
		t.Errorf("RemoveContentService: %v", err)
	}

	cancel()
	<-errCh
}

func TestSupervisorTreeFailureHandling(t *testing.T) {
	tree, _ := NewSupervisorTree(testLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	failingSvc := newMockService("failing")
	failingSvc.setFailCount(2)
	stableSvc := newMockService("stable")

	tree.AddContentService(failingSvc)
	tree.AddAPIService(stableSvc)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	time.Sleep(200 * time.Millisecond)

	if failingSvc.StartCount() < 3 {
		t.Errorf("expected at least 3 starts for failing service, got %d", failingSvc.StartCount())
	}
	// A failing content service never restarts the api layer.
	if stableSvc.StartCount() != 1 {
		t.Errorf("stable service started %d times, want 1", stableSvc.StartCount())
	}

	cancel()
	<-errCh
}
