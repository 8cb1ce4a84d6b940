package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"study-canvas-be/internal/entity"
	"study-canvas-be/internal/repository/specification"
	"study-canvas-be/internal/repository/unitofwork"
	"study-canvas-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

	assert.NotNil(t, uow.NoteRepository())
	assert.NotNil(t, uow.ConceptRepository())
	assert.NotNil(t, uow.ConnectionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check Note Repository", func(t *testing.T) {
		count, err := uow.NoteRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Note count: %d", count)
	})

	t.Run("Check Concept Repository", func(t *testing.T) {
		count, err := uow.ConceptRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Concept count: %d", count)
	})
}

func TestConceptLinkTransaction(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)

	note := &entity.Note{
		Id:        uuid.New(),
		Title:     "integration note",
		Kind:      "note",
		Width:     220,
		Height:    180,
		CreatedAt: time.Now(),
	}
	require.NoError(t, uow.NoteRepository().Create(ctx, note))
	defer uow.NoteRepository().Delete(ctx, note.Id)

	concept := &entity.Concept{
		Id:        uuid.New(),
		Name:      "integration-" + uuid.NewString(),
		CreatedAt: time.Now(),
	}
	require.NoError(t, uow.ConceptRepository().Create(ctx, concept))
	defer uow.ConceptRepository().Delete(ctx, concept.Id)

	// Link and increment inside one transaction.
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.NoteConceptRepository().Create(ctx, &entity.NoteConcept{
		NoteId:    note.Id,
		ConceptId: concept.Id,
		CreatedAt: time.Now(),
	}))
	require.NoError(t, uow.ConceptRepository().IncrementFrequency(ctx, concept.Id, 1))
	require.NoError(t, uow.Commit())

	defer uow.NoteConceptRepository().Delete(ctx, note.Id, concept.Id)

	// The stored counter matches the live link count.
	stored, err := uow.ConceptRepository().FindOne(ctx, specification.ByID{ID: concept.Id})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 1, stored.Frequency)

	links, err := uow.NoteConceptRepository().Count(ctx, specification.ByConcept{ConceptID: concept.Id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), links)
}
