// internal/navigation/navigation_test.go
package navigation

import "testing"

func recorder(c *Controller) *[]int {
	var got []int
	c.OnChange(func(i int) { got = append(got, i) })
	return &got
}

func TestNew_ClampsInitial(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		initial int
		want    int
	}{
		{"in range", 5, 3, 3},
		{"negative", 5, -2, 0},
		{"past end", 5, 9, 4},
		{"empty", 0, 3, 0},
		{"negative total", -1, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.total, tt.initial, false)
			if c.Index() != tt.want {
				t.Errorf("Index() = %d, want %d", c.Index(), tt.want)
			}
		})
	}
}

func TestNext_AtEndWithoutLoop(t *testing.T) {
	c := New(3, 2, false)
	got := recorder(c)

	c.Next()

	if c.Index() != 2 {
		t.Errorf("Index() = %d, want 2", c.Index())
	}
	if len(*got) != 0 {
		t.Errorf("notifications = %v, want none", *got)
	}
	if c.CanGoNext() {
		t.Error("CanGoNext() should be false at the end without loop")
	}
}

func TestNext_AtEndWithLoop(t *testing.T) {
	c := New(3, 2, true)
	got := recorder(c)

	c.Next()

	if c.Index() != 0 {
		t.Errorf("Index() = %d, want 0", c.Index())
	}
	if len(*got) != 1 || (*got)[0] != 0 {
		t.Errorf("notifications = %v, want [0]", *got)
	}
}

func TestPrevious_AtStart(t *testing.T) {
	c := New(4, 0, false)
	c.Previous()
	if c.Index() != 0 {
		t.Errorf("without loop: Index() = %d, want 0", c.Index())
	}
	if c.CanGoPrevious() {
		t.Error("CanGoPrevious() should be false at the start without loop")
	}

	c.SetLoop(true)
	if !c.CanGoPrevious() {
		t.Error("CanGoPrevious() should be true with loop")
	}
	c.Previous()
	if c.Index() != 3 {
		t.Errorf("with loop: Index() = %d, want 3", c.Index())
	}
}

func TestNextPrevious_Walk(t *testing.T) {
	c := New(3, 0, false)
	got := recorder(c)

	c.Next()
	c.Next()
	c.Previous()

	want := []int{1, 2, 1}
	if len(*got) != len(want) {
		t.Fatalf("notifications = %v, want %v", *got, want)
	}
	for i := range want {
		if (*got)[i] != want[i] {
			t.Errorf("notification %d = %d, want %d", i, (*got)[i], want[i])
		}
	}
}

func TestSetIndex_AlwaysInRange(t *testing.T) {
	c := New(5, 0, false)
	for i := -20; i <= 20; i++ {
		c.SetIndex(i)
		if c.Index() < 0 || c.Index() > 4 {
			t.Fatalf("SetIndex(%d) left Index() = %d", i, c.Index())
		}
	}

	c.SetIndex(2)
	if c.Index() != 2 {
		t.Errorf("Index() = %d, want 2", c.Index())
	}
}

func TestSetIndex_NotifiesOnlyOnChange(t *testing.T) {
	c := New(5, 2, false)
	got := recorder(c)

	c.SetIndex(2)
	c.SetIndex(99)
	c.SetIndex(100)

	if len(*got) != 1 || (*got)[0] != 4 {
		t.Errorf("notifications = %v, want [4]", *got)
	}
}

func TestEmpty_IsNoop(t *testing.T) {
	c := New(0, 0, true)
	got := recorder(c)

	c.Next()
	c.Previous()
	c.SetIndex(3)
	c.First()
	c.Last()

	if c.Index() != 0 {
		t.Errorf("Index() = %d, want 0", c.Index())
	}
	if len(*got) != 0 {
		t.Errorf("notifications = %v, want none", *got)
	}
	if c.CanGoNext() || c.CanGoPrevious() {
		t.Error("an empty sequence cannot navigate")
	}
}

func TestSetTotal_Reclamps(t *testing.T) {
	c := New(10, 8, false)
	got := recorder(c)

	c.SetTotal(5)
	if c.Index() != 4 {
		t.Errorf("after shrink: Index() = %d, want 4", c.Index())
	}

	c.SetTotal(20)
	if c.Index() != 4 {
		t.Errorf("after grow: Index() = %d, want 4", c.Index())
	}

	c.SetTotal(0)
	if c.Index() != 0 {
		t.Errorf("after empty: Index() = %d, want 0", c.Index())
	}

	if len(*got) != 2 || (*got)[0] != 4 || (*got)[1] != 0 {
		t.Errorf("notifications = %v, want [4 0]", *got)
	}
}

func TestFirstLast(t *testing.T) {
	c := New(6, 3, false)
	c.Last()
	if c.Index() != 5 {
		t.Errorf("Last(): Index() = %d, want 5", c.Index())
	}
	c.First()
	if c.Index() != 0 {
		t.Errorf("First(): Index() = %d, want 0", c.Index())
	}
}
