package fcm

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
)

type fakeMulticast struct {
	batches [][]string
	fail    map[string]error
}

func (f *fakeMulticast) SendEachForMulticast(_ context.Context, m *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.batches = append(f.batches, m.Tokens)

	resp := &messaging.BatchResponse{}
	for _, t := range m.Tokens {
		if err, ok := f.fail[t]; ok {
			resp.FailureCount++
			resp.Responses = append(resp.Responses, &messaging.SendResponse{Error: err})
			continue
		}
		resp.SuccessCount++
		resp.Responses = append(resp.Responses, &messaging.SendResponse{Success: true, MessageID: t})
	}
	return resp, nil
}

func TestSendSplitsIntoBatches(t *testing.T) {
	client := &fakeMulticast{}
	s := &fcmSender{client: client}

	tokens := make([]string, 0, 1200)
	for i := 0; i < 1200; i++ {
		tokens = append(tokens, "token")
	}

	unregistered, err := s.Send(context.Background(), Message{Tokens: tokens, Title: "t", Body: "b"})
	assert.NoError(t, err)
	assert.Empty(t, unregistered)
	assert.Len(t, client.batches, 3)
	assert.Len(t, client.batches[0], 500)
	assert.Len(t, client.batches[2], 200)
}

func TestSendKeepsOtherFailuresOutOfUnregistered(t *testing.T) {
	client := &fakeMulticast{fail: map[string]error{"bad": errors.New("internal")}}
	s := &fcmSender{client: client}

	unregistered, err := s.Send(context.Background(), Message{Tokens: []string{"good", "bad"}})
	assert.NoError(t, err)
	assert.Empty(t, unregistered)
}

func TestNopSender(t *testing.T) {
	unregistered, err := NopSender{}.Send(context.Background(), Message{Tokens: []string{"a"}})
	assert.NoError(t, err)
	assert.Empty(t, unregistered)
}
