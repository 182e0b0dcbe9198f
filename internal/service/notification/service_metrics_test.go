package notification

import (
	"context"
	"math"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-burst-notification/internal/observability/metrics"
	"github.com/KasumiMercury/primind-burst-notification/internal/testutil"
)

func TestRunBatchParticipantDurationUsesServiceClock(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(prev)
		_ = provider.Shutdown(context.Background())
	})

	m, err := metrics.NewNotificationMetrics()
	if err != nil {
		t.Fatalf("NewNotificationMetrics: %v", err)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	unverified := false
	p := testutil.Participant("u-skip")
	p.PhoneVerified = &unverified
	f.configRepo.EXPECT().GetNotificationConfig(gomock.Any(), "test-study").Return(testutil.StudyConfig(), nil).AnyTimes()
	f.participants.EXPECT().GetParticipant(gomock.Any(), "test-study", "u-skip").Return(p, nil)
	f.workerLog.EXPECT().WriteWorkerLog(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	// Every reading advances one second.
	tick := testNow
	clock := func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	_, err = f.service(WithClock(clock), WithMetrics(m)).RunBatch(context.Background(), &BatchRequest{
		StudyID:  "test-study",
		Date:     "2018-05-03",
		UserList: []string{"u-skip"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if md.Name != "notification_participant_duration_seconds" {
				continue
			}
			hist, ok := md.Data.(metricdata.Histogram[float64])
			if !ok || len(hist.DataPoints) != 1 {
				t.Fatalf("unexpected histogram data %+v", md.Data)
			}
			found = true
			sum := hist.DataPoints[0].Sum
			if sum < 1 || sum != math.Trunc(sum) {
				t.Errorf("participant duration = %v, want whole seconds from the service clock", sum)
			}
		}
	}
	if !found {
		t.Error("participant duration not recorded")
	}
}
