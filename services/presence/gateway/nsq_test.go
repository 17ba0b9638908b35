package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/safetrail/safetrail/internal/pkg/constants"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	topic   string
	message interface{}
	calls   int
	errs    []error
}

func (p *fakePublisher) Publish(topic string, message interface{}) error {
	p.topic = topic
	p.message = message
	p.calls++
	if len(p.errs) == 0 {
		return nil
	}
	err := p.errs[0]
	p.errs = p.errs[1:]
	return err
}

func fastRetry() retry.Config {
	return retry.Config{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 1}
}

func TestPublishPanicAlert(t *testing.T) {
	pub := &fakePublisher{}
	gw := NewAlertGW(pub, "")

	alert := &models.PanicAlert{TouristID: "a", Type: models.AlertTypePanic}
	require.NoError(t, gw.PublishPanicAlert(context.Background(), alert))
	assert.Equal(t, constants.TopicPanicAlert, pub.topic)
	assert.Same(t, alert, pub.message)
	assert.Equal(t, 1, pub.calls)
}

func TestPublishPanicAlert_CustomTopic(t *testing.T) {
	pub := &fakePublisher{}
	gw := NewAlertGW(pub, "alerts.audit")

	require.NoError(t, gw.PublishPanicAlert(context.Background(), &models.PanicAlert{}))
	assert.Equal(t, "alerts.audit", pub.topic)
}

func TestPublishPanicAlert_RetriesTransientFailure(t *testing.T) {
	pub := &fakePublisher{errs: []error{errors.New("nsqd unavailable")}}
	gw := newAlertGW(pub, "", fastRetry())

	require.NoError(t, gw.PublishPanicAlert(context.Background(), &models.PanicAlert{}))
	assert.Equal(t, 2, pub.calls)
}

func TestPublishPanicAlert_Errors(t *testing.T) {
	down := errors.New("nsqd unavailable")
	pub := &fakePublisher{errs: []error{down, down, down}}
	gw := newAlertGW(pub, "", fastRetry())

	err := gw.PublishPanicAlert(context.Background(), &models.PanicAlert{})
	assert.ErrorIs(t, err, down)
	assert.Equal(t, 3, pub.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pub.calls = 0
	err = gw.PublishPanicAlert(ctx, &models.PanicAlert{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, pub.calls)
}
