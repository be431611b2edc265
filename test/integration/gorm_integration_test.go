package integration

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
	"ai-bankassist-be/internal/repository/unitofwork"
	"ai-bankassist-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ChannelRepository())
	assert.NotNil(t, uow.AuditEventRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	tenant := "it-" + uuid.New().String()[:8]

	t.Run("Check Channel Repository", func(t *testing.T) {
		count, err := uow.ChannelRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Channel count: %d", count)
	})

	t.Run("Transactional Channel With Details", func(t *testing.T) {
		ctx := context.Background()
		err := uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		seqDate := time.Now().UTC().Format("20060102")
		counter, err := uow.ChannelSequenceRepository().Next(ctx, tenant, seqDate)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), counter)

		dept := "retail"
		channel := &entity.Channel{
			Id:          "CH-" + seqDate + "-0001-" + tenant,
			Name:        "savings-retail",
			ChannelType: "savings",
			Department:  &dept,
			Status:      "active",
			Tenant:      tenant,
		}
		err = uow.ChannelRepository().Create(ctx, channel)
		assert.NoError(t, err)

		doc := "products.pdf"
		citation := "products.pdf (page 3)"
		err = uow.ChannelDetailRepository().CreateBatch(ctx, []*entity.ChannelDetail{
			{ChannelId: channel.Id, Key: "channel_type", Value: "savings", SourceDoc: &doc, Citation: &citation},
		})
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		found, err := uow.ChannelRepository().FindOne(ctx,
			specification.ByChannelId{Id: channel.Id},
			specification.WithDetails{},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Len(t, found.Details, 1)
		}
	})

	// The sequence upsert must hand out distinct counters under concurrent
	// load; duplicate counters would mean duplicate channel IDs.
	t.Run("Concurrent Sequence Counters Are Distinct", func(t *testing.T) {
		ctx := context.Background()
		seqDate := "19990101"
		workers := 16

		var mu sync.Mutex
		seen := make(map[int64]bool)
		var wg sync.WaitGroup

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := uowFactory.NewUnitOfWork(ctx)
				counter, err := w.ChannelSequenceRepository().Next(ctx, tenant, seqDate)
				assert.NoError(t, err)

				mu.Lock()
				defer mu.Unlock()
				assert.False(t, seen[counter], "counter %d handed out twice", counter)
				seen[counter] = true
			}()
		}
		wg.Wait()

		assert.Len(t, seen, workers)
	})
}
