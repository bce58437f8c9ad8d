package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/mocks"
)

// fakeReader отдаёт сообщения из очереди и запоминает коммиты. Когда очередь пуста, отменяет ctx Run.
type fakeReader struct {
	queue   []kafka.Message
	commits []int64
	stop    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(f.queue) == 0 {
		f.stop()
		return kafka.Message{}, ctx.Err()
	}
	msg := f.queue[0]
	f.queue = f.queue[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		f.commits = append(f.commits, m.Offset)
	}
	return nil
}

func (f *fakeReader) Close() error { return nil }

func estimateMessage(t *testing.T, offset int64, totalBytes int64) (kafka.Message, domain.Estimate) {
	t.Helper()
	est := domain.Estimate{
		FileCount: 1,
		Report:    domain.CostReport{TotalBytes: totalBytes},
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	value, err := json.Marshal(est)
	require.NoError(t, err)
	return kafka.Message{Key: []byte(strconv.FormatInt(totalBytes, 10)), Value: value, Offset: offset}, est
}

func newRunConsumer(t *testing.T, uc *mocks.MockIEstimatorUseCase, msgs ...kafka.Message) (*Consumer, *fakeReader, context.Context) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	r := &fakeReader{queue: msgs, stop: cancel}
	c := newTestConsumer()
	c.r = r
	c.uc = uc
	c.attempts = 3
	c.backoff = time.Millisecond
	return c, r, ctx
}

func TestRun_RetriesFailedMessageBeforeCommittingNext(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimatorUseCase(ctrl)

	msg10, est10 := estimateMessage(t, 10, 1000)
	msg11, est11 := estimateMessage(t, 11, 2000)
	gomock.InOrder(
		uc.EXPECT().HandleEstimateEvent(gomock.Any(), est10).Return(errors.New("clickhouse is down")),
		uc.EXPECT().HandleEstimateEvent(gomock.Any(), est10).Return(nil),
		uc.EXPECT().HandleEstimateEvent(gomock.Any(), est11).Return(nil),
	)

	c, r, ctx := newRunConsumer(t, uc, msg10, msg11)
	err := c.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int64{10, 11}, r.commits)
}

func TestRun_StopsWithoutCommitWhenRetriesExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimatorUseCase(ctrl)

	errDown := errors.New("clickhouse is down")
	msg10, est10 := estimateMessage(t, 10, 1000)
	msg11, _ := estimateMessage(t, 11, 2000)
	uc.EXPECT().HandleEstimateEvent(gomock.Any(), est10).Return(errDown).Times(3)

	c, r, ctx := newRunConsumer(t, uc, msg10, msg11)
	err := c.Run(ctx)

	assert.ErrorIs(t, err, errDown)
	assert.Empty(t, r.commits, "оффсет не должен уйти дальше упавшего сообщения")
	assert.Len(t, r.queue, 1, "следующее сообщение не читаем")
}

func TestRun_SkipsBrokenMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimatorUseCase(ctrl)

	broken := kafka.Message{Value: []byte(`{"fileCount":`), Offset: 10}
	msg11, est11 := estimateMessage(t, 11, 2000)
	uc.EXPECT().HandleEstimateEvent(gomock.Any(), est11).Return(nil)

	c, r, ctx := newRunConsumer(t, uc, broken, msg11)
	err := c.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int64{10, 11}, r.commits)
}
