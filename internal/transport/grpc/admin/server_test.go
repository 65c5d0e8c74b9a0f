package admin

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	probe "github.com/light-bringer/storeadmin-service/internal/pkg/health"
	"github.com/light-bringer/storeadmin-service/internal/pkg/logging"
)

const bufSize = 1024 * 1024

func TestMain(m *testing.M) {
	// spanner imports opencensus, whose view worker starts in init.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type switchable struct {
	down atomic.Bool
}

func (s *switchable) Check(context.Context) error {
	if s.down.Load() {
		return errors.New("database unavailable")
	}
	return nil
}

func start(t *testing.T, checker probe.Checker) (*Server, healthpb.HealthClient) {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	srv := NewServer(checker, logging.Discard())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		srv.Stop()
		<-done
	})
	return srv, healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealth_NotServingBeforeFirstProbe(t *testing.T) {
	_, client := start(t, &switchable{})

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}

func TestHealth_FollowsProbe(t *testing.T) {
	checker := &switchable{}
	srv, client := start(t, checker)

	srv.Probe(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ServiceName))

	checker.down.Store(true)
	srv.Probe(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}

func TestHealth_UnknownService(t *testing.T) {
	_, client := start(t, &switchable{})

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "nope"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestWatch_StopsWithContext(t *testing.T) {
	srv, client := start(t, &switchable{})

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		srv.Watch(ctx, time.Hour)
	}()

	require.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-stopped
}
