package container

import "testing"

func TestDequeStoreBuryOrder(t *testing.T) {
	d := NewDeque[int]()
	d.Store(1)
	d.Bury(2)
	d.Store(3)
	// front-to-back: 3, 1, 2
	want := []int{3, 1, 2}
	for _, w := range want {
		got, ok := d.Pop()
		if !ok || got != w {
			t.Fatalf("got (%d,%v), want %d", got, ok, w)
		}
	}
	if !d.Empty() {
		t.Fatal("expected empty deque")
	}
}

func TestStackMarkBacktrack(t *testing.T) {
	var s Stack[int]
	s.Push(1)
	mark := s.Mark()
	s.Push(2)
	s.Push(3)
	s.Backtrack(mark)
	if s.Mark() != 1 {
		t.Fatalf("expected 1 item after backtrack, got %d", s.Mark())
	}
	v, ok := s.Pop()
	if !ok || v != 1 {
		t.Fatalf("got (%d,%v), want (1,true)", v, ok)
	}
}
