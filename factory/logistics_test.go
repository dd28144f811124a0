package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDelivery(t *testing.T) {
	assert.Equal(t, "Deliver by road", PlanDelivery(RoadLogistics{}))
	assert.Equal(t, "Deliver by sea", PlanDelivery(SeaLogistics{}))
}

func TestLogisticsFactory(t *testing.T) {
	ctx := context.Background()

	road, err := LogisticsFactory.Create(ctx, RoadTransport)
	require.NoError(t, err)
	assert.Equal(t, "Deliver by road", PlanDelivery(road))

	sea, err := LogisticsFactory.Create(ctx, SeaTransport)
	require.NoError(t, err)
	assert.Equal(t, "Deliver by sea", PlanDelivery(sea))

	_, err = LogisticsFactory.Create(ctx, TransportKind(42))
	assert.ErrorIs(t, err, ErrTransportUnsupported)
}
