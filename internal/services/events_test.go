package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := NewMockKafkaWriter(ctrl)
	p := NewEventPublisher(mockKafka)
	ctx := context.Background()

	mockKafka.EXPECT().
		WriteMessages(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "42", string(msgs[0].Key))

			var event models.Event
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, models.EventUserCreated, event.Type)
			assert.Equal(t, int64(42), event.EntityID)
			assert.NotEmpty(t, event.EventID)
			return nil
		})

	p.Publish(ctx, models.EventUserCreated, 42, 0)
}

func TestEventPublisher_WriteErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := NewMockKafkaWriter(ctrl)
	p := NewEventPublisher(mockKafka)
	ctx := context.Background()

	mockKafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("kafka error")).Times(1)

	assert.NotPanics(t, func() {
		p.Publish(ctx, models.EventPostDeleted, 1, 2)
	})
}

func TestEventPublisher_NoWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		NewEventPublisher(nil).Publish(context.Background(), models.EventRoleCreated, 1, 0)
	})
}
