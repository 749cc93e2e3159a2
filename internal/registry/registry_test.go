package registry

import "testing"

func TestRegisterAndGet(t *testing.T) {
	rows := []string{"#####", "#P.G#", "#####"}
	Register(Layout{ID: "test-get", Title: "Test", Rows: rows})

	rows[1] = "#####"

	l, err := Get("test-get")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if l.Title != "Test" {
		t.Errorf("Title = %q, expected %q", l.Title, "Test")
	}
	if l.Rows[1] != "#P.G#" {
		t.Errorf("Register should copy rows, got %q", l.Rows[1])
	}
	if !Exists("test-get") {
		t.Error("Exists() should be true after Register")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-layout"); err == nil {
		t.Error("Get() of an unknown layout should fail")
	}
	if Exists("no-such-layout") {
		t.Error("Exists() should be false for an unknown layout")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Layout{ID: "test-dup", Rows: []string{"#"}})

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register(Layout{ID: "test-dup", Rows: []string{"#"}})
}

func TestListSorted(t *testing.T) {
	Register(Layout{ID: "test-z", Rows: []string{"#"}})
	Register(Layout{ID: "test-a", Rows: []string{"#"}})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
