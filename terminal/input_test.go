package terminal

import "testing"

func newTestReader() *inputReader {
	return &inputReader{
		eventCh: make(chan Event, 64),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func drainEvents(r *inputReader) []Event {
	var evs []Event
	for {
		select {
		case ev := <-r.eventCh:
			evs = append(evs, ev)
		default:
			return evs
		}
	}
}

func TestParsePrintableASCII(t *testing.T) {
	r := newTestReader()
	consumed := r.parseInput([]byte("abc"))
	if consumed != 3 {
		t.Errorf("Expected 3 bytes consumed, got %d", consumed)
	}
	evs := drainEvents(r)
	if len(evs) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(evs))
	}
	for i, want := range []rune{'a', 'b', 'c'} {
		if evs[i].Key != KeyRune || evs[i].Rune != want {
			t.Errorf("Event %d: expected rune %q, got %+v", i, want, evs[i])
		}
	}
}

func TestParseArrowKeys(t *testing.T) {
	r := newTestReader()
	r.parseInput([]byte("\x1b[A\x1b[B\x1b[C\x1b[D"))
	evs := drainEvents(r)
	want := []Key{KeyUp, KeyDown, KeyRight, KeyLeft}
	if len(evs) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(evs))
	}
	for i, k := range want {
		if evs[i].Key != k {
			t.Errorf("Event %d: expected key %d, got %d", i, k, evs[i].Key)
		}
	}
}

func TestParseIncompleteEscape(t *testing.T) {
	r := newTestReader()
	consumed := r.parseInput([]byte("\x1b["))
	if consumed != 0 {
		t.Errorf("Expected incomplete CSI to consume 0 bytes, got %d", consumed)
	}
	if evs := drainEvents(r); len(evs) != 0 {
		t.Errorf("Expected no events for incomplete sequence, got %d", len(evs))
	}
}

func TestParseControlKeys(t *testing.T) {
	r := newTestReader()
	r.parseInput([]byte{0x11, 0x09, 0x0d, 0x7f})
	evs := drainEvents(r)
	want := []Key{KeyCtrlQ, KeyTab, KeyEnter, KeyBackspace}
	if len(evs) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(evs))
	}
	for i, k := range want {
		if evs[i].Key != k {
			t.Errorf("Event %d: expected key %d, got %d", i, k, evs[i].Key)
		}
	}
}

func TestParseUTF8Rune(t *testing.T) {
	r := newTestReader()
	consumed := r.parseInput([]byte("é"))
	if consumed != 2 {
		t.Errorf("Expected 2 bytes consumed, got %d", consumed)
	}
	evs := drainEvents(r)
	if len(evs) != 1 || evs[0].Rune != 'é' {
		t.Errorf("Expected single 'é' event, got %+v", evs)
	}
}

func TestParsePartialUTF8(t *testing.T) {
	r := newTestReader()
	data := []byte("é")
	consumed := r.parseInput(data[:1])
	if consumed != 0 {
		t.Errorf("Expected partial UTF-8 to consume 0 bytes, got %d", consumed)
	}
}

func TestParseAltModifier(t *testing.T) {
	r := newTestReader()
	r.parseInput([]byte{0x1b, 'f'})
	evs := drainEvents(r)
	if len(evs) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(evs))
	}
	if evs[0].Key != KeyRune || evs[0].Rune != 'f' || evs[0].Modifiers&ModAlt == 0 {
		t.Errorf("Expected Alt+f, got %+v", evs[0])
	}
}

func TestParseOverlongCSIDropped(t *testing.T) {
	r := newTestReader()
	data := []byte("\x1b[123456789012345678x")
	consumed := r.parseInput(data)
	if consumed != len(data) {
		t.Errorf("Expected overlong CSI plus trailing input consumed (%d bytes), got %d", len(data), consumed)
	}
	evs := drainEvents(r)
	if len(evs) == 0 || evs[len(evs)-1].Rune != 'x' {
		t.Errorf("Expected input after the dropped sequence to parse, got %+v", evs)
	}
}

func TestParseUnknownCSISwallowed(t *testing.T) {
	r := newTestReader()
	consumed := r.parseInput([]byte("\x1b[99~x"))
	if consumed != 6 {
		t.Errorf("Expected unknown CSI plus trailing rune consumed, got %d", consumed)
	}
	evs := drainEvents(r)
	if len(evs) != 1 || evs[0].Rune != 'x' {
		t.Errorf("Expected unknown sequence swallowed and 'x' emitted, got %+v", evs)
	}
}
