package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"garment-stock/core/query"
	"garment-stock/core/reconcile"
	"garment-stock/core/storage"
	"garment-stock/core/storage/mocks"
	"garment-stock/core/ws"
	"garment-stock/feature/inventory/store/memory"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(client storage.Client, hub *ws.Hub) *Service {
	engine := reconcile.NewEngine(memory.New(), zap.NewNop(), 0)
	svc := NewService(engine, client, storage.Config{Bucket: "test-bucket"}, hub, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func item(garmentType, code, size, fabric string, qty int) reconcile.Item {
	return reconcile.Item{Type: garmentType, Code: code, Color: "Blue", Size: size, Fabric: fabric, Qty: qty}
}

func TestService_ImportExport(t *testing.T) {
	svc := newTestService(nil, nil)
	ctx := context.Background()

	rec, err := svc.Import(ctx, item("shirt", "ab1", "xl", "", 3))
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Qty)

	rec, err = svc.Import(ctx, item("Shirt", "AB1", "XL", "", 2))
	require.NoError(t, err)
	assert.Equal(t, 5, rec.Qty)

	rec, err = svc.Export(ctx, item("Shirt", "AB1", "XL", "", 5))
	require.NoError(t, err)
	assert.Nil(t, rec)

	records, err := svc.List(ctx, query.Options{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestService_Adjust(t *testing.T) {
	svc := newTestService(nil, nil)
	ctx := context.Background()

	rec, err := svc.Import(ctx, item("Pants", "P", "32", "Denim", 1))
	require.NoError(t, err)

	rec, err = svc.Adjust(ctx, rec.Key, ActionIncrement, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Qty)

	rec, err = svc.Adjust(ctx, rec.Key, ActionDecrement, 2)
	require.NoError(t, err)
	assert.Nil(t, rec)

	_, err = svc.Adjust(ctx, "missing", ActionDelete, 0)
	assert.True(t, reconcile.IsNotFound(err))

	_, err = svc.Adjust(ctx, "missing", "explode", 0)
	assert.True(t, reconcile.IsValidation(err))
}

func TestService_CSV(t *testing.T) {
	svc := newTestService(nil, nil)
	ctx := context.Background()

	_, err := svc.CSV(ctx, query.Options{})
	assert.ErrorIs(t, err, query.ErrNoData)

	_, err = svc.Import(ctx, item("Lapcod", "L1", "10", "", 1))
	require.NoError(t, err)
	_, err = svc.Import(ctx, item("Shirt", "S1", "M", "", 4))
	require.NoError(t, err)
	_, err = svc.Import(ctx, item("Lapcod", "L2", "2", "", 2))
	require.NoError(t, err)

	data, err := svc.CSV(ctx, query.Options{SortBy: query.SortSize})
	require.NoError(t, err)
	lines := strings.Split(data, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Join(query.Header, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `"Lapcod","L2","BLUE","2",`))
	assert.True(t, strings.HasPrefix(lines[2], `"Lapcod","L1","BLUE","10",`))
	assert.True(t, strings.HasPrefix(lines[3], `"Shirt","S1","BLUE","M",`))

	_, err = svc.CSV(ctx, query.Options{TypeFilter: "Jacket"})
	assert.ErrorIs(t, err, query.ErrNoData)
}

func TestService_PublishCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled", func(t *testing.T) {
		svc := newTestService(nil, nil)
		_, err := svc.PublishCSV(ctx)
		assert.ErrorIs(t, err, ErrPublishDisabled)
		_, err = svc.Exports(ctx)
		assert.ErrorIs(t, err, ErrPublishDisabled)
	})

	t.Run("Empty", func(t *testing.T) {
		client := new(mocks.Client)
		svc := newTestService(client, nil)
		_, err := svc.PublishCSV(ctx)
		assert.ErrorIs(t, err, query.ErrNoData)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Uploads", func(t *testing.T) {
		client := new(mocks.Client)
		svc := newTestService(client, nil)
		_, err := svc.Import(ctx, item("Jacket", "J", "L", "", 1))
		require.NoError(t, err)

		client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		client.On("PutObject", mock.Anything, "test-bucket", "exports/inventory_export_20240301T120000Z.csv",
			mock.Anything, mock.AnythingOfType("int64"), mock.Anything).Return(minio.UploadInfo{}, nil)

		name, err := svc.PublishCSV(ctx)
		require.NoError(t, err)
		assert.Equal(t, "exports/inventory_export_20240301T120000Z.csv", name)
		client.AssertExpectations(t)
	})

	t.Run("UploadFails", func(t *testing.T) {
		client := new(mocks.Client)
		svc := newTestService(client, nil)
		_, err := svc.Import(ctx, item("Jacket", "J", "L", "", 1))
		require.NoError(t, err)

		client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("access denied"))

		_, err = svc.PublishCSV(ctx)
		assert.ErrorContains(t, err, "access denied")
	})
}

type recordingConn struct {
	mu   sync.Mutex
	msgs []ws.Event
}

func (r *recordingConn) WriteMessage(_ int, data []byte) error {
	var ev ws.Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return err
	}
	r.mu.Lock()
	r.msgs = append(r.msgs, ev)
	r.mu.Unlock()
	return nil
}

func (r *recordingConn) Close() error { return nil }

func (r *recordingConn) events() []ws.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ws.Event{}, r.msgs...)
}

func TestService_NotifiesHub(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := ws.NewHub(zap.NewNop())
	go hub.Run(ctx)
	conn := &recordingConn{}
	hub.Register(conn)

	svc := newTestService(nil, hub)
	rec, err := svc.Import(ctx, item("Coverall", "C", "40", "", 2))
	require.NoError(t, err)
	_, err = svc.Clear(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return len(conn.events()) == 2 }, time.Second, 5*time.Millisecond)
	events := conn.events()
	assert.Equal(t, "inventory_changed", events[0].Type)
	assert.Equal(t, "import", events[0].Action)
	assert.Equal(t, rec.Key, events[0].Key)
	assert.Equal(t, 2, events[0].Qty)
	assert.Equal(t, "clear", events[1].Action)
}
