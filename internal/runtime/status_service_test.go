package runtime

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestStatusServicePublishesOnlineOnStart(t *testing.T) {
	pub := newFakePublisher()
	svc := NewStatusService(pub, zerolog.Nop())

	if err := svc.Start(); err != nil {
		t.Fatalf("Start(): %v", err)
	}

	msgs := pub.messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d published messages, want 1", len(msgs))
	}
	if msgs[0].topic != pub.Topics().Status() || string(msgs[0].payload) != "online" || !msgs[0].retain {
		t.Fatalf("published %+v, want online/retained on status topic", msgs[0])
	}
}
