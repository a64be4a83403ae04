package main

import (
	"sync"
	"testing"
)

func TestHIDQueue_FIFO(t *testing.T) {
	q := NewHIDQueue()
	q.Push(KeyPressEvent(KeyA))
	q.PushAll([]HIDEvent{KeyReleaseEvent(KeyA), KeyPressEvent(KeyB)})
	want := []HIDEvent{KeyPressEvent(KeyA), KeyReleaseEvent(KeyA), KeyPressEvent(KeyB)}
	for i, w := range want {
		ev, ok := q.Poll()
		if !ok || ev != w {
			t.Fatalf("poll %d = %v (ok=%v), want %v", i, ev, ok, w)
		}
	}
	if _, ok := q.Poll(); ok {
		t.Fatal("expected empty queue")
	}
	if q.Pushed() != 3 {
		t.Fatalf("pushed = %d, want 3", q.Pushed())
	}
}

func TestHIDQueue_Compaction(t *testing.T) {
	q := NewHIDQueue()
	for i := 0; i < 5000; i++ {
		q.Push(KeyPressEvent(KeyCode(i % 100)))
	}
	for i := 0; i < 3000; i++ {
		ev, ok := q.Poll()
		if !ok || ev.Key != KeyCode(i%100) {
			t.Fatalf("poll %d out of order: %v", i, ev)
		}
	}
	if q.Len() != 2000 {
		t.Fatalf("len = %d, want 2000", q.Len())
	}
	for i := 3000; i < 5000; i++ {
		ev, _ := q.Poll()
		if ev.Key != KeyCode(i%100) {
			t.Fatalf("poll %d out of order after compaction: %v", i, ev)
		}
	}
}

func TestHIDQueue_ConcurrentProducer(t *testing.T) {
	q := NewHIDQueue()
	const n = 10000
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Push(KeyPressEvent(KeyA))
		}
	}()
	got := 0
	for got < n {
		if _, ok := q.Poll(); ok {
			got++
		}
	}
	wg.Wait()
	if q.Len() != 0 {
		t.Fatalf("len = %d after draining", q.Len())
	}
}
