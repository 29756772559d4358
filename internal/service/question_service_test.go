package service

import (
	"context"
	"testing"

	"learning-service/internal/models"
)

func newQuestionFixture() *QuestionService {
	questions := &fakeQuestionStore{questions: map[string]models.Question{
		"q1": mcq("q1", strPtr("c1"), "a"),
		"q2": mcq("q2", strPtr("c2"), "a"),
		"q3": mcq("q3", strPtr("c3"), "a"),
		"q4": mcq("q4", nil, "a"),
	}}
	categories := &fakeCategoryStore{categories: map[string]models.Category{
		"c1": {ID: "c1", Name: "Subnetting", ModuleID: "m1"},
		"c2": {ID: "c2", Name: "Routing", ModuleID: "m1"},
		"c3": {ID: "c3", Name: "SQL", ModuleID: "m2"},
	}}
	modules := &fakeModuleStore{modules: map[string]models.Module{
		"m1": {ID: "m1", Title: "Networking Basics"},
		"m2": {ID: "m2", Title: "Databases"},
	}}
	return NewQuestionService(questions, categories, modules)
}

func questionIDs(questions []models.Question) map[string]bool {
	ids := make(map[string]bool, len(questions))
	for _, q := range questions {
		ids[q.ID] = true
	}
	return ids
}

func TestListQuestionsByTopic(t *testing.T) {
	service := newQuestionFixture()
	ctx := context.Background()

	tests := []struct {
		name  string
		topic string
		want  []string
	}{
		{"substring match", "network", []string{"q1", "q2"}},
		{"case insensitive", "DATABASES", []string{"q3"}},
		{"no matching module", "chemistry", nil},
	}
	for _, tt := range tests {
		questions, err := service.ListQuestions(ctx, tt.topic, "", "")
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if len(questions) != len(tt.want) {
			t.Errorf("%s: got %d questions, want %d", tt.name, len(questions), len(tt.want))
			continue
		}
		ids := questionIDs(questions)
		for _, id := range tt.want {
			if !ids[id] {
				t.Errorf("%s: missing question %s", tt.name, id)
			}
		}
	}
}

func TestListQuestionsFilterPrecedence(t *testing.T) {
	service := newQuestionFixture()
	ctx := context.Background()

	// categoryId beats both moduleId and topic.
	questions, err := service.ListQuestions(ctx, "network", "m2", "c1")
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 1 || questions[0].ID != "q1" {
		t.Errorf("expected only q1 for categoryId=c1, got %v", questionIDs(questions))
	}

	// moduleId beats topic.
	questions, err = service.ListQuestions(ctx, "network", "m2", "")
	if err != nil {
		t.Fatal(err)
	}
	ids := questionIDs(questions)
	if len(ids) != 1 || !ids["q3"] {
		t.Errorf("expected only q3 for moduleId=m2, got %v", ids)
	}

	// No filters returns everything, placement questions included.
	questions, err = service.ListQuestions(ctx, "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 4 {
		t.Errorf("expected all 4 questions, got %d", len(questions))
	}
}
