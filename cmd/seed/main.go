package main

import (
	"log"
	"os"
	"time"

	"study-canvas-be/internal/model"
	"study-canvas-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds a small canvas: two instructors, two courses, a handful of notes
// with concepts and connections. Intended for local development only.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	now := time.Now()
	strPtr := func(s string) *string { return &s }

	instructors := []model.Instructor{
		{Id: uuid.New(), Name: "Dr. Ada Lovelace", Email: strPtr("ada@university.edu"), Color: "#8b5cf6", CreatedAt: now},
		{Id: uuid.New(), Name: "Prof. Alan Turing", Email: strPtr("alan@university.edu"), Color: "#0ea5e9", CreatedAt: now},
	}
	for i := range instructors {
		if err := db.Create(&instructors[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed instructor: %v", err)
		}
	}

	courses := []model.Course{
		{Id: uuid.New(), Name: "Algorithms", Description: strPtr("Design and analysis of algorithms"), Color: "#f97316", InstructorId: &instructors[0].Id, CreatedAt: now},
		{Id: uuid.New(), Name: "Computability", Description: strPtr("Models of computation"), Color: "#22c55e", InstructorId: &instructors[1].Id, CreatedAt: now},
	}
	for i := range courses {
		if err := db.Create(&courses[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed course: %v", err)
		}
	}

	notes := []model.Note{
		{
			Id: uuid.New(), Title: "Divide and Conquer", Content: "Split, solve, merge.",
			Kind: "note", PositionX: 120, PositionY: 80, Width: 220, Height: 180,
			BackgroundColor: "#fef3c7", TextColor: "#1f2937",
			MainTakeaway: strPtr("Recursion trees bound the work per level."),
			CourseId:     &courses[0].Id, CreatedAt: now,
		},
		{
			Id: uuid.New(), Title: "Halting Problem", Content: "No general decider exists.",
			Kind: "note", PositionX: 480, PositionY: 120, Width: 220, Height: 180,
			BackgroundColor: "#fef3c7", TextColor: "#1f2937",
			CourseId: &courses[1].Id, CreatedAt: now,
		},
		{
			Id: uuid.New(), Title: "Master Theorem", Content: "T(n) = aT(n/b) + f(n)",
			Kind: "note", PositionX: 140, PositionY: 340, Width: 220, Height: 180,
			BackgroundColor: "#fef3c7", TextColor: "#1f2937",
			CourseId: &courses[0].Id, CreatedAt: now,
		},
	}
	for i := range notes {
		if err := db.Create(&notes[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed note: %v", err)
		}
	}

	concepts := []model.Concept{
		{Id: uuid.New(), Name: "recursion", Category: strPtr("technique"), Frequency: 2, CreatedAt: now},
		{Id: uuid.New(), Name: "decidability", Category: strPtr("theory"), Frequency: 1, CreatedAt: now},
	}
	for i := range concepts {
		if err := db.Create(&concepts[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed concept: %v", err)
		}
	}

	links := []model.NoteConcept{
		{NoteId: notes[0].Id, ConceptId: concepts[0].Id, CreatedAt: now},
		{NoteId: notes[2].Id, ConceptId: concepts[0].Id, CreatedAt: now},
		{NoteId: notes[1].Id, ConceptId: concepts[1].Id, CreatedAt: now},
	}
	for i := range links {
		if err := db.Create(&links[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed concept link: %v", err)
		}
	}

	connections := []model.Connection{
		{Id: uuid.New(), FromId: notes[0].Id, ToId: notes[2].Id, Color: "#94a3b8", Style: "curved", StrokeWidth: 2, CreatedAt: now},
	}
	for i := range connections {
		if err := db.Create(&connections[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed connection: %v", err)
		}
	}

	log.Println("✅ Success: Seed data inserted.")
}
