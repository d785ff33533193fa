package services

import (
	"sync"
	"testing"
	"time"
)

func TestLockRegistry_MutualExclusion(t *testing.T) {
	registry := NewLockRegistry()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := registry.Acquire("shared-key")
			defer release()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("Expected 50 increments, got %d", counter)
	}
}

func TestLockRegistry_DuplicateKeys(t *testing.T) {
	registry := NewLockRegistry()

	// Duplicate keys in one acquisition must not self-deadlock.
	release := registry.Acquire("a", "a", "b")
	release()

	release = registry.Acquire("a", "b")
	release()
}

func TestLockRegistry_OverlappingSets_NoDeadlock(t *testing.T) {
	registry := NewLockRegistry()

	done := make(chan struct{})
	go func() {
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				release := registry.Acquire("a", "b")
				defer release()
			}()
			go func() {
				defer wg.Done()
				release := registry.Acquire("b", "a", "c")
				defer release()
			}()
		}
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Overlapping acquisitions deadlocked")
	}
}
