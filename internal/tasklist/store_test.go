package tasklist_test

import (
	"testing"

	"taskdeck/internal/service"
	"taskdeck/internal/tasklist"
)

func TestReplaceAll(t *testing.T) {
	s := tasklist.NewStore()
	s.Append(service.Task{ID: "old", Title: "stale"})

	s.ReplaceAll([]service.Task{
		{ID: "t1", Title: "a"},
		{ID: "t2", Title: "b"},
	})

	tasks := s.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != "t1" || tasks[1].ID != "t2" {
		t.Errorf("order not preserved: %+v", tasks)
	}
	if _, ok := s.Get("old"); ok {
		t.Error("stale task survived ReplaceAll")
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	s := tasklist.NewStore()
	s.Append(service.Task{ID: "t1", Title: "a"})

	got := s.Tasks()
	got[0].Title = "mutated"

	if task, _ := s.Get("t1"); task.Title != "a" {
		t.Error("caller mutation leaked into the store")
	}
}

func TestRemove(t *testing.T) {
	s := tasklist.NewStore()
	s.ReplaceAll([]service.Task{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}})

	if !s.Remove("t2") {
		t.Fatal("expected Remove to report present")
	}
	if s.Len() != 2 {
		t.Errorf("expected length 2 after remove, got %d", s.Len())
	}
	if _, ok := s.Get("t2"); ok {
		t.Error("t2 still present after remove")
	}

	if s.Remove("t2") {
		t.Error("second remove of same id should report absent")
	}
	if s.Len() != 2 {
		t.Error("removing an absent id must not change the list")
	}
}

func TestReconcileReplacesOnlyMatchingTask(t *testing.T) {
	s := tasklist.NewStore()
	s.ReplaceAll([]service.Task{
		{ID: "t1", Title: "a"},
		{ID: "t2", Title: "b"},
	})

	if !s.Reconcile(service.Task{ID: "t2", Title: "b2", Completed: true}) {
		t.Fatal("expected Reconcile to find t2")
	}

	tasks := s.Tasks()
	if tasks[0].Title != "a" || tasks[0].Completed {
		t.Errorf("unrelated task was altered: %+v", tasks[0])
	}
	if tasks[1].Title != "b2" || !tasks[1].Completed {
		t.Errorf("t2 not replaced by the server record: %+v", tasks[1])
	}

	if s.Reconcile(service.Task{ID: "missing"}) {
		t.Error("Reconcile of an unknown id should report not found")
	}
}
