package producers

import (
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func TestWriteMessagePrefixesTopic(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"eventType":"ScoreChanged"}` {
			return errors.New("unexpected payload")
		}
		return nil
	})

	p := NewSaramaProducerFrom(mock, "dronedash.")
	if err := p.WriteMessage("score_events", []byte(`{"eventType":"ScoreChanged"}`)); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	if got := p.Topic("score_events"); got != "dronedash.score_events" {
		t.Fatalf("topic got=%q want=%q", got, "dronedash.score_events")
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestWriteMessageWrapsSendError(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewSaramaProducerFrom(mock, "")
	err := p.WriteMessage("score_events", []byte(`{}`))
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("error got=%v want wrapped %v", err, sarama.ErrOutOfBrokers)
	}
	_ = p.Close()
}
