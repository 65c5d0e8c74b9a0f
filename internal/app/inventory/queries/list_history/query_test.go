package list_history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storeadmin-service/internal/app/inventory/contracts"
)

type recordingReadModel struct {
	contracts.ReadModel
	gotLimit int64
}

func (r *recordingReadModel) ListHistory(_ context.Context, _ string, limit int64) ([]*contracts.HistoryDTO, error) {
	r.gotLimit = limit
	return []*contracts.HistoryDTO{}, nil
}

func TestQuery_ClampsLimit(t *testing.T) {
	tests := []struct {
		in, want int64
	}{
		{0, DefaultLimit},
		{-4, DefaultLimit},
		{10, 10},
		{MaxLimit, MaxLimit},
		{5000, MaxLimit},
	}
	for _, tt := range tests {
		rm := &recordingReadModel{}
		_, err := NewQuery(rm).Execute(context.Background(), &Request{ProductID: "p-1", Limit: tt.in})
		require.NoError(t, err)
		assert.Equal(t, tt.want, rm.gotLimit)
	}
}
